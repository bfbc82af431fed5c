// ABOUTME: Typed records for the six GV100AD satzarten
// ABOUTME: Plain attribute bags keyed by their pkg/keys counterpart

package record

import (
	"time"

	"github.com/nainya/gv100ad/pkg/keys"
)

// Record is the closed set of record types, one per satzart. All queries on
// the database return one of the six concrete structs below.
type Record interface {
	Kind() keys.Kind
	RecordKey() keys.Key
	RecordName() string
	// ReferenceDate returns the Gebietsstand, the date the record describes.
	ReferenceDate() time.Time

	isRecord()
}

// Land is a state record (satzart 10).
type Land struct {
	Gebietsstand time.Time
	Key          keys.LandKey
	Name         string
	// SitzRegierung is the seat of the state government.
	SitzRegierung string
}

func (r *Land) Kind() keys.Kind          { return keys.KindLand }
func (r *Land) RecordKey() keys.Key      { return r.Key }
func (r *Land) RecordName() string       { return r.Name }
func (r *Land) ReferenceDate() time.Time { return r.Gebietsstand }
func (r *Land) isRecord()                {}

// Regierungsbezirk is a government district record (satzart 20).
type Regierungsbezirk struct {
	Gebietsstand   time.Time
	Key            keys.RegierungsbezirkKey
	Name           string
	SitzVerwaltung string
}

func (r *Regierungsbezirk) Kind() keys.Kind          { return keys.KindRegierungsbezirk }
func (r *Regierungsbezirk) RecordKey() keys.Key      { return r.Key }
func (r *Regierungsbezirk) RecordName() string       { return r.Name }
func (r *Regierungsbezirk) ReferenceDate() time.Time { return r.Gebietsstand }
func (r *Regierungsbezirk) isRecord()                {}

// Region is a region record (satzart 30, Baden-Wuerttemberg only).
type Region struct {
	Gebietsstand   time.Time
	Key            keys.RegionKey
	Name           string
	SitzVerwaltung string
}

func (r *Region) Kind() keys.Kind          { return keys.KindRegion }
func (r *Region) RecordKey() keys.Key      { return r.Key }
func (r *Region) RecordName() string       { return r.Name }
func (r *Region) ReferenceDate() time.Time { return r.Gebietsstand }
func (r *Region) isRecord()                {}

// Kreis is a district record (satzart 40).
type Kreis struct {
	Gebietsstand   time.Time
	Key            keys.KreisKey
	Name           string
	SitzVerwaltung string
	// Textkennzeichen classifies the Kreis (41-45).
	Textkennzeichen Textkennzeichen
}

func (r *Kreis) Kind() keys.Kind          { return keys.KindKreis }
func (r *Kreis) RecordKey() keys.Key      { return r.Key }
func (r *Kreis) RecordName() string       { return r.Name }
func (r *Kreis) ReferenceDate() time.Time { return r.Gebietsstand }
func (r *Kreis) isRecord()                {}

// Verband is a municipality association record (satzart 50).
type Verband struct {
	Gebietsstand   time.Time
	Key            keys.VerbandKey
	Name           string
	SitzVerwaltung string
	// Textkennzeichen classifies the Verband (50-58).
	Textkennzeichen Textkennzeichen
}

func (r *Verband) Kind() keys.Kind          { return keys.KindVerband }
func (r *Verband) RecordKey() keys.Key      { return r.Key }
func (r *Verband) RecordName() string       { return r.Name }
func (r *Verband) ReferenceDate() time.Time { return r.Gebietsstand }
func (r *Verband) isRecord()                {}

// Gemeinde is a municipality record (satzart 60), the only satzart carrying
// population and area measures. Measures reported blank in the dataset stay
// nil rather than zero.
type Gemeinde struct {
	Gebietsstand time.Time
	Key          keys.GemeindeKey
	// VerbandNr is the number of the Verband the Gemeinde belongs to,
	// within its Kreis.
	VerbandNr uint16
	Name      string
	// Textkennzeichen classifies the Gemeinde (60-67).
	Textkennzeichen Textkennzeichen

	// AreaHectares is the area in hectares.
	AreaHectares    *uint64
	PopulationTotal *uint64
	PopulationMale  *uint64

	// PLZ is the postcode of the administration seat. PLZUnambiguous is
	// false when the Gemeinde spans several postcodes.
	PLZ            string
	PLZUnambiguous bool

	Finanzamtbezirk      *uint16
	Gerichtbarkeit       *Gerichtbarkeit
	Arbeitsagenturbezirk *uint32
	Bundestagswahlkreise *Wahlkreise
}

func (r *Gemeinde) Kind() keys.Kind          { return keys.KindGemeinde }
func (r *Gemeinde) RecordKey() keys.Key      { return r.Key }
func (r *Gemeinde) RecordName() string       { return r.Name }
func (r *Gemeinde) ReferenceDate() time.Time { return r.Gebietsstand }
func (r *Gemeinde) isRecord()                {}

// VerbandKey returns the full key of the Verband the Gemeinde belongs to.
func (r *Gemeinde) VerbandKey() keys.VerbandKey {
	return keys.NewVerbandKey(r.Key.Kreis, r.VerbandNr)
}

// Gerichtbarkeit identifies the courts responsible for a Gemeinde:
// Oberlandesgericht, Landgericht and Amtsgericht.
type Gerichtbarkeit struct {
	Oberlandesgericht string
	Landgericht       string
	Amtsgericht       string
}

// Wahlkreise is the Bundestag election district assignment, either a single
// district or a von-bis range (which may contain gaps).
type Wahlkreise struct {
	Von uint16
	Bis *uint16
}

// Single reports whether exactly one election district is assigned.
func (w Wahlkreise) Single() bool { return w.Bis == nil }
