// ABOUTME: Textkennzeichen classification codes attached to records
// ABOUTME: Raw code preserved verbatim; only the documented names are decoded

package record

import "fmt"

// Textkennzeichen is the classification code of a Kreis, Verband or
// Gemeinde. The raw code is preserved verbatim; the format defines more
// semantics than are decoded here, so callers needing the full meaning must
// interpret the code themselves.
type Textkennzeichen uint8

// Documented codes. Kreis records use 41-45, Verband records 50-58,
// Gemeinde records 60-67.
const (
	TkKreisfreieStadt         Textkennzeichen = 41
	TkStadtkreis              Textkennzeichen = 42
	TkKreis                   Textkennzeichen = 43
	TkLandkreis               Textkennzeichen = 44
	TkRegionalverband         Textkennzeichen = 45
	TkVerbandsfreieGemeinde   Textkennzeichen = 50
	TkAmt                     Textkennzeichen = 51
	TkSamtgemeinde            Textkennzeichen = 52
	TkVerbandsgemeinde        Textkennzeichen = 53
	TkVerwaltungsgemeinschaft Textkennzeichen = 54
	TkKirchspielslandgemeinde Textkennzeichen = 55
	TkVerwaltungsverband      Textkennzeichen = 56
	TkVGTraegermodell         Textkennzeichen = 57
	TkErfuellendeGemeinde     Textkennzeichen = 58
	TkMarkt                   Textkennzeichen = 60
	TkKreisfreieStadtGemeinde Textkennzeichen = 61
	TkStadtkreisGemeinde      Textkennzeichen = 62
	TkStadt                   Textkennzeichen = 63
	TkKreisangehoerigeGemeinde Textkennzeichen = 64
	TkGebietBewohnt            Textkennzeichen = 65
	TkGebietUnbewohnt          Textkennzeichen = 66
	TkGrosseKreisstadt         Textkennzeichen = 67
)

var tkNames = map[Textkennzeichen]string{
	TkKreisfreieStadt:          "Kreisfreie Stadt",
	TkStadtkreis:               "Stadtkreis",
	TkKreis:                    "Kreis",
	TkLandkreis:                "Landkreis",
	TkRegionalverband:          "Regionalverband",
	TkVerbandsfreieGemeinde:    "Verbandsfreie Gemeinde",
	TkAmt:                      "Amt",
	TkSamtgemeinde:             "Samtgemeinde",
	TkVerbandsgemeinde:         "Verbandsgemeinde",
	TkVerwaltungsgemeinschaft:  "Verwaltungsgemeinschaft",
	TkKirchspielslandgemeinde:  "Kirchspielslandgemeinde",
	TkVerwaltungsverband:       "Verwaltungsverband",
	TkVGTraegermodell:          "Verbandsgemeinde Trägermodell",
	TkErfuellendeGemeinde:      "Erfüllende Gemeinde",
	TkMarkt:                    "Markt",
	TkKreisfreieStadtGemeinde:  "Kreisfreie Stadt",
	TkStadtkreisGemeinde:       "Stadtkreis",
	TkStadt:                    "Stadt",
	TkKreisangehoerigeGemeinde: "Kreisangehörige Gemeinde",
	TkGebietBewohnt:            "Gemeindefreies Gebiet (bewohnt)",
	TkGebietUnbewohnt:          "Gemeindefreies Gebiet (unbewohnt)",
	TkGrosseKreisstadt:         "Große Kreisstadt",
}

// Known reports whether a name is documented for the code.
func (t Textkennzeichen) Known() bool {
	_, ok := tkNames[t]
	return ok
}

func (t Textkennzeichen) String() string {
	if name, ok := tkNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Textkennzeichen %d", uint8(t))
}

// ValidFor reports whether the code lies in the documented block for the
// given satzart (40 Kreis, 50 Verband, 60 Gemeinde).
func (t Textkennzeichen) ValidFor(satzart int) bool {
	switch satzart {
	case 40:
		return t >= TkKreisfreieStadt && t <= TkRegionalverband
	case 50:
		return t >= TkVerbandsfreieGemeinde && t <= TkErfuellendeGemeinde
	case 60:
		return t >= TkMarkt && t <= TkGrosseKreisstadt
	default:
		return false
	}
}
