// ABOUTME: Fixed-width hierarchical keys for the six GV100AD entity kinds
// ABOUTME: Covers construction, formatting, ordering and parent derivation

package keys

import "fmt"

// Kind identifies one of the six record kinds of a GV100AD dataset.
type Kind uint8

const (
	KindLand Kind = iota + 1
	KindRegierungsbezirk
	KindRegion
	KindKreis
	KindVerband
	KindGemeinde
)

var kindNames = map[Kind]string{
	KindLand:             "land",
	KindRegierungsbezirk: "regierungsbezirk",
	KindRegion:           "region",
	KindKreis:            "kreis",
	KindVerband:          "verband",
	KindGemeinde:         "gemeinde",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// KindFromString resolves the lower-case kind name used on the CLI and the
// HTTP surface.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Key is the closed set of key types. Exactly the six per-kind key structs
// implement it.
type Key interface {
	fmt.Stringer
	Kind() Kind
	isKey()
}

// BadenWuerttemberg is the only Land that is subdivided into Regionen.
var BadenWuerttemberg = LandKey{Land: 8}

// LandKey identifies a Land (state). Two digits.
type LandKey struct {
	Land uint8
}

func NewLandKey(land uint8) LandKey {
	return LandKey{Land: land}
}

func (k LandKey) Kind() Kind     { return KindLand }
func (k LandKey) String() string { return fmt.Sprintf("%02d", k.Land) }
func (k LandKey) isKey()         {}

func (k LandKey) Compare(o LandKey) int {
	return compareGroups(uint16(k.Land), uint16(o.Land))
}

// RegierungsbezirkKey identifies a Regierungsbezirk (government district).
// Land plus one digit.
type RegierungsbezirkKey struct {
	Land   LandKey
	Bezirk uint8
}

func NewRegierungsbezirkKey(land LandKey, bezirk uint8) RegierungsbezirkKey {
	return RegierungsbezirkKey{Land: land, Bezirk: bezirk}
}

func (k RegierungsbezirkKey) Kind() Kind     { return KindRegierungsbezirk }
func (k RegierungsbezirkKey) String() string { return fmt.Sprintf("%s%d", k.Land, k.Bezirk) }
func (k RegierungsbezirkKey) isKey()         {}

func (k RegierungsbezirkKey) Compare(o RegierungsbezirkKey) int {
	if c := k.Land.Compare(o.Land); c != 0 {
		return c
	}
	return compareGroups(uint16(k.Bezirk), uint16(o.Bezirk))
}

// RegionKey identifies a Region. Regionen exist only in Baden-Wuerttemberg;
// the key is the Regierungsbezirk plus one digit.
type RegionKey struct {
	Regierungsbezirk RegierungsbezirkKey
	Region           uint8
}

func NewRegionKey(bezirk RegierungsbezirkKey, region uint8) RegionKey {
	return RegionKey{Regierungsbezirk: bezirk, Region: region}
}

func (k RegionKey) Kind() Kind     { return KindRegion }
func (k RegionKey) String() string { return fmt.Sprintf("%s%d", k.Regierungsbezirk, k.Region) }
func (k RegionKey) isKey()         {}

// Land returns the state scoping this Region.
func (k RegionKey) Land() LandKey { return k.Regierungsbezirk.Land }

func (k RegionKey) Compare(o RegionKey) int {
	if c := k.Regierungsbezirk.Compare(o.Regierungsbezirk); c != 0 {
		return c
	}
	return compareGroups(uint16(k.Region), uint16(o.Region))
}

// KreisKey identifies a Kreis (district). Regierungsbezirk plus two digits.
type KreisKey struct {
	Regierungsbezirk RegierungsbezirkKey
	Kreis            uint8
}

func NewKreisKey(bezirk RegierungsbezirkKey, kreis uint8) KreisKey {
	return KreisKey{Regierungsbezirk: bezirk, Kreis: kreis}
}

// KreisKeyInLand builds a KreisKey directly under a Land, with the
// Regierungsbezirk group zero. States without Regierungsbezirke key their
// Kreise this way.
func KreisKeyInLand(land LandKey, kreis uint8) KreisKey {
	return KreisKey{Regierungsbezirk: RegierungsbezirkKey{Land: land}, Kreis: kreis}
}

func (k KreisKey) Kind() Kind     { return KindKreis }
func (k KreisKey) String() string { return fmt.Sprintf("%s%02d", k.Regierungsbezirk, k.Kreis) }
func (k KreisKey) isKey()         {}

func (k KreisKey) Land() LandKey { return k.Regierungsbezirk.Land }

func (k KreisKey) Compare(o KreisKey) int {
	if c := k.Regierungsbezirk.Compare(o.Regierungsbezirk); c != 0 {
		return c
	}
	return compareGroups(uint16(k.Kreis), uint16(o.Kreis))
}

// VerbandKey identifies a Gemeindeverband (association of municipalities).
// Verbaende are numbered within their Kreis, not by key prefix.
type VerbandKey struct {
	Kreis   KreisKey
	Verband uint16
}

func NewVerbandKey(kreis KreisKey, verband uint16) VerbandKey {
	return VerbandKey{Kreis: kreis, Verband: verband}
}

func (k VerbandKey) Kind() Kind     { return KindVerband }
func (k VerbandKey) String() string { return fmt.Sprintf("%s%04d", k.Kreis, k.Verband) }
func (k VerbandKey) isKey()         {}

func (k VerbandKey) Land() LandKey { return k.Kreis.Land() }

func (k VerbandKey) Compare(o VerbandKey) int {
	if c := k.Kreis.Compare(o.Kreis); c != 0 {
		return c
	}
	return compareGroups(k.Verband, o.Verband)
}

// GemeindeKey identifies a Gemeinde (municipality). Kreis plus three digits,
// the full eight-digit Regionalschluessel.
type GemeindeKey struct {
	Kreis    KreisKey
	Gemeinde uint16
}

func NewGemeindeKey(kreis KreisKey, gemeinde uint16) GemeindeKey {
	return GemeindeKey{Kreis: kreis, Gemeinde: gemeinde}
}

func (k GemeindeKey) Kind() Kind     { return KindGemeinde }
func (k GemeindeKey) String() string { return fmt.Sprintf("%s%03d", k.Kreis, k.Gemeinde) }
func (k GemeindeKey) isKey()         {}

func (k GemeindeKey) Land() LandKey { return k.Kreis.Land() }

func (k GemeindeKey) Compare(o GemeindeKey) int {
	if c := k.Kreis.Compare(o.Kreis); c != 0 {
		return c
	}
	return compareGroups(k.Gemeinde, o.Gemeinde)
}

func compareGroups(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Contains reports whether parent is the structural ancestor of child. For
// the four hierarchical kinds this is key-prefix equality; Verband and Region
// keys are not prefixes of their parents and use the Land scoping component
// instead.
func Contains(parent, child Key) bool {
	switch p := parent.(type) {
	case LandKey:
		switch c := child.(type) {
		case RegierungsbezirkKey:
			return c.Land == p
		case RegionKey:
			return c.Land() == p
		case KreisKey:
			return c.Land() == p
		case VerbandKey:
			return c.Land() == p
		case GemeindeKey:
			return c.Land() == p
		}
	case RegierungsbezirkKey:
		switch c := child.(type) {
		case RegionKey:
			return c.Regierungsbezirk == p
		case KreisKey:
			return c.Regierungsbezirk == p
		case GemeindeKey:
			return c.Kreis.Regierungsbezirk == p
		}
	case KreisKey:
		switch c := child.(type) {
		case VerbandKey:
			return c.Kreis == p
		case GemeindeKey:
			return c.Kreis == p
		}
	}
	return false
}
