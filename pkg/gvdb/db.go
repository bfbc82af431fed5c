// ABOUTME: Immutable in-memory database over one parsed GV100AD dataset
// ABOUTME: Per-kind maps for point lookups plus sorted key indexes for children scans

package gvdb

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/nainya/gv100ad/pkg/keys"
	"github.com/nainya/gv100ad/pkg/parser"
	"github.com/nainya/gv100ad/pkg/record"
)

// Database owns all records of one dataset. It is fully built before the
// first query and never mutated afterwards, so it may be shared across any
// number of concurrent readers without synchronization.
type Database struct {
	laender           map[keys.LandKey]*record.Land
	regierungsbezirke map[keys.RegierungsbezirkKey]*record.Regierungsbezirk
	regionen          map[keys.RegionKey]*record.Region
	kreise            map[keys.KreisKey]*record.Kreis
	verbaende         map[keys.VerbandKey]*record.Verband
	gemeinden         map[keys.GemeindeKey]*record.Gemeinde

	// Sorted key indexes. A range scan over one of these is the
	// parent-to-children adjacency for every ancestor level above it.
	landKeys     []keys.LandKey
	bezirkKeys   []keys.RegierungsbezirkKey
	regionKeys   []keys.RegionKey
	kreisKeys    []keys.KreisKey
	verbandKeys  []keys.VerbandKey
	gemeindeKeys []keys.GemeindeKey
}

// New builds a database from a line-oriented dataset read from r. Options
// are forwarded to the parser. Construction is atomic: the first parse error
// or duplicate key aborts and no partial database is returned.
func New(r io.Reader, opts ...parser.Option) (*Database, error) {
	return FromParser(parser.New(r, opts...))
}

// Open builds a database from the dataset file at path.
func Open(path string, opts ...parser.Option) (*Database, error) {
	p, err := parser.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return FromParser(p)
}

// FromParser drains p and builds the database from every record it yields.
func FromParser(p *parser.Parser) (*Database, error) {
	db := &Database{
		laender:           make(map[keys.LandKey]*record.Land),
		regierungsbezirke: make(map[keys.RegierungsbezirkKey]*record.Regierungsbezirk),
		regionen:          make(map[keys.RegionKey]*record.Region),
		kreise:            make(map[keys.KreisKey]*record.Kreis),
		verbaende:         make(map[keys.VerbandKey]*record.Verband),
		gemeinden:         make(map[keys.GemeindeKey]*record.Gemeinde),
	}

	for {
		rec, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := db.insert(rec); err != nil {
			return nil, err
		}
	}

	sort.Slice(db.landKeys, func(i, j int) bool { return db.landKeys[i].Compare(db.landKeys[j]) < 0 })
	sort.Slice(db.bezirkKeys, func(i, j int) bool { return db.bezirkKeys[i].Compare(db.bezirkKeys[j]) < 0 })
	sort.Slice(db.regionKeys, func(i, j int) bool { return db.regionKeys[i].Compare(db.regionKeys[j]) < 0 })
	sort.Slice(db.kreisKeys, func(i, j int) bool { return db.kreisKeys[i].Compare(db.kreisKeys[j]) < 0 })
	sort.Slice(db.verbandKeys, func(i, j int) bool { return db.verbandKeys[i].Compare(db.verbandKeys[j]) < 0 })
	sort.Slice(db.gemeindeKeys, func(i, j int) bool { return db.gemeindeKeys[i].Compare(db.gemeindeKeys[j]) < 0 })

	return db, nil
}

func (db *Database) insert(rec record.Record) error {
	switch r := rec.(type) {
	case *record.Land:
		if _, ok := db.laender[r.Key]; ok {
			return &DuplicateKeyError{Kind: r.Kind(), Key: r.Key.String()}
		}
		db.laender[r.Key] = r
		db.landKeys = append(db.landKeys, r.Key)
	case *record.Regierungsbezirk:
		if _, ok := db.regierungsbezirke[r.Key]; ok {
			return &DuplicateKeyError{Kind: r.Kind(), Key: r.Key.String()}
		}
		db.regierungsbezirke[r.Key] = r
		db.bezirkKeys = append(db.bezirkKeys, r.Key)
	case *record.Region:
		if _, ok := db.regionen[r.Key]; ok {
			return &DuplicateKeyError{Kind: r.Kind(), Key: r.Key.String()}
		}
		db.regionen[r.Key] = r
		db.regionKeys = append(db.regionKeys, r.Key)
	case *record.Kreis:
		if _, ok := db.kreise[r.Key]; ok {
			return &DuplicateKeyError{Kind: r.Kind(), Key: r.Key.String()}
		}
		db.kreise[r.Key] = r
		db.kreisKeys = append(db.kreisKeys, r.Key)
	case *record.Verband:
		if _, ok := db.verbaende[r.Key]; ok {
			return &DuplicateKeyError{Kind: r.Kind(), Key: r.Key.String()}
		}
		db.verbaende[r.Key] = r
		db.verbandKeys = append(db.verbandKeys, r.Key)
	case *record.Gemeinde:
		if _, ok := db.gemeinden[r.Key]; ok {
			return &DuplicateKeyError{Kind: r.Kind(), Key: r.Key.String()}
		}
		db.gemeinden[r.Key] = r
		db.gemeindeKeys = append(db.gemeindeKeys, r.Key)
	default:
		return fmt.Errorf("gvdb: unhandled record type %T", rec)
	}
	return nil
}

// Land returns the state record for k.
func (db *Database) Land(k keys.LandKey) (*record.Land, error) {
	if r, ok := db.laender[k]; ok {
		return r, nil
	}
	return nil, notFound(k)
}

// Regierungsbezirk returns the government district record for k.
func (db *Database) Regierungsbezirk(k keys.RegierungsbezirkKey) (*record.Regierungsbezirk, error) {
	if r, ok := db.regierungsbezirke[k]; ok {
		return r, nil
	}
	return nil, notFound(k)
}

// Region returns the region record for k.
func (db *Database) Region(k keys.RegionKey) (*record.Region, error) {
	if r, ok := db.regionen[k]; ok {
		return r, nil
	}
	return nil, notFound(k)
}

// Kreis returns the district record for k.
func (db *Database) Kreis(k keys.KreisKey) (*record.Kreis, error) {
	if r, ok := db.kreise[k]; ok {
		return r, nil
	}
	return nil, notFound(k)
}

// Verband returns the association record for k.
func (db *Database) Verband(k keys.VerbandKey) (*record.Verband, error) {
	if r, ok := db.verbaende[k]; ok {
		return r, nil
	}
	return nil, notFound(k)
}

// Gemeinde returns the municipality record for k.
func (db *Database) Gemeinde(k keys.GemeindeKey) (*record.Gemeinde, error) {
	if r, ok := db.gemeinden[k]; ok {
		return r, nil
	}
	return nil, notFound(k)
}

func notFound(k keys.Key) error {
	return fmt.Errorf("%s %s: %w", k.Kind(), k, ErrNotFound)
}

// Lookup parses keyText for the given kind and returns the matching record.
// Malformed key text fails with a keys.FormatError before any lookup.
func (db *Database) Lookup(kind keys.Kind, keyText string) (record.Record, error) {
	key, err := keys.Parse(kind, keyText)
	if err != nil {
		return nil, err
	}
	return db.Get(key)
}

// Get returns the record stored under the already-parsed key.
func (db *Database) Get(key keys.Key) (record.Record, error) {
	switch k := key.(type) {
	case keys.LandKey:
		return db.Land(k)
	case keys.RegierungsbezirkKey:
		return db.Regierungsbezirk(k)
	case keys.RegionKey:
		return db.Region(k)
	case keys.KreisKey:
		return db.Kreis(k)
	case keys.VerbandKey:
		return db.Verband(k)
	case keys.GemeindeKey:
		return db.Gemeinde(k)
	default:
		return nil, fmt.Errorf("gvdb: unhandled key type %T", key)
	}
}

// Len returns the number of records stored for a kind.
func (db *Database) Len(kind keys.Kind) int {
	switch kind {
	case keys.KindLand:
		return len(db.laender)
	case keys.KindRegierungsbezirk:
		return len(db.regierungsbezirke)
	case keys.KindRegion:
		return len(db.regionen)
	case keys.KindKreis:
		return len(db.kreise)
	case keys.KindVerband:
		return len(db.verbaende)
	case keys.KindGemeinde:
		return len(db.gemeinden)
	default:
		return 0
	}
}
