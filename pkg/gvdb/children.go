// ABOUTME: Children and enumeration queries over the sorted key indexes
// ABOUTME: Range scans cost O(log n) to locate plus the size of the result

package gvdb

import (
	"fmt"
	"sort"

	"github.com/nainya/gv100ad/pkg/keys"
	"github.com/nainya/gv100ad/pkg/record"
)

// KreisScope is an ancestor key that spans a range of Kreis keys: a LandKey
// or a RegierungsbezirkKey.
type KreisScope interface {
	KreisRange() (keys.KreisKey, keys.KreisKey)
}

// VerbandScope is an ancestor key that spans a range of Verband keys: a
// LandKey or a KreisKey.
type VerbandScope interface {
	VerbandRange() (keys.VerbandKey, keys.VerbandKey)
}

// GemeindeScope is an ancestor key that spans a range of Gemeinde keys: a
// LandKey, a RegierungsbezirkKey or a KreisKey.
type GemeindeScope interface {
	GemeindeRange() (keys.GemeindeKey, keys.GemeindeKey)
}

// RegierungsbezirkeIn returns the government districts of a state in
// ascending key order. A state without districts yields an empty slice, as
// does a key absent from the dataset.
func (db *Database) RegierungsbezirkeIn(land keys.LandKey) []*record.Regierungsbezirk {
	lo, hi := land.RegierungsbezirkRange()
	var out []*record.Regierungsbezirk
	i := sort.Search(len(db.bezirkKeys), func(n int) bool { return db.bezirkKeys[n].Compare(lo) >= 0 })
	for ; i < len(db.bezirkKeys) && db.bezirkKeys[i].Compare(hi) <= 0; i++ {
		out = append(out, db.regierungsbezirke[db.bezirkKeys[i]])
	}
	return out
}

// RegionenIn returns the regions scoped to a state in ascending key order.
// Only Baden-Wuerttemberg holds regions; any other state yields an empty
// slice.
func (db *Database) RegionenIn(land keys.LandKey) []*record.Region {
	lo, hi := land.RegionRange()
	var out []*record.Region
	i := sort.Search(len(db.regionKeys), func(n int) bool { return db.regionKeys[n].Compare(lo) >= 0 })
	for ; i < len(db.regionKeys) && db.regionKeys[i].Compare(hi) <= 0; i++ {
		out = append(out, db.regionen[db.regionKeys[i]])
	}
	return out
}

// KreiseIn returns the districts under a state or government district in
// ascending key order.
func (db *Database) KreiseIn(scope KreisScope) []*record.Kreis {
	lo, hi := scope.KreisRange()
	var out []*record.Kreis
	i := sort.Search(len(db.kreisKeys), func(n int) bool { return db.kreisKeys[n].Compare(lo) >= 0 })
	for ; i < len(db.kreisKeys) && db.kreisKeys[i].Compare(hi) <= 0; i++ {
		out = append(out, db.kreise[db.kreisKeys[i]])
	}
	return out
}

// VerbaendeIn returns the associations scoped to a state or district in
// ascending key order.
func (db *Database) VerbaendeIn(scope VerbandScope) []*record.Verband {
	lo, hi := scope.VerbandRange()
	var out []*record.Verband
	i := sort.Search(len(db.verbandKeys), func(n int) bool { return db.verbandKeys[n].Compare(lo) >= 0 })
	for ; i < len(db.verbandKeys) && db.verbandKeys[i].Compare(hi) <= 0; i++ {
		out = append(out, db.verbaende[db.verbandKeys[i]])
	}
	return out
}

// GemeindenIn returns the municipalities under a state, government district
// or district in ascending key order.
func (db *Database) GemeindenIn(scope GemeindeScope) []*record.Gemeinde {
	lo, hi := scope.GemeindeRange()
	var out []*record.Gemeinde
	i := sort.Search(len(db.gemeindeKeys), func(n int) bool { return db.gemeindeKeys[n].Compare(lo) >= 0 })
	for ; i < len(db.gemeindeKeys) && db.gemeindeKeys[i].Compare(hi) <= 0; i++ {
		out = append(out, db.gemeinden[db.gemeindeKeys[i]])
	}
	return out
}

// ChildrenOf returns the records of childKind scoped under parent, for the
// supported ancestor/descendant pairings. This is the kind-parameterized
// surface used by the CLI and the HTTP service; library callers normally use
// the typed methods above.
func (db *Database) ChildrenOf(childKind keys.Kind, parent keys.Key) ([]record.Record, error) {
	switch childKind {
	case keys.KindRegierungsbezirk:
		if land, ok := parent.(keys.LandKey); ok {
			return asRecords(db.RegierungsbezirkeIn(land)), nil
		}
	case keys.KindRegion:
		if land, ok := parent.(keys.LandKey); ok {
			return asRecords(db.RegionenIn(land)), nil
		}
	case keys.KindKreis:
		if scope, ok := parent.(KreisScope); ok {
			return asRecords(db.KreiseIn(scope)), nil
		}
	case keys.KindVerband:
		if scope, ok := parent.(VerbandScope); ok {
			return asRecords(db.VerbaendeIn(scope)), nil
		}
	case keys.KindGemeinde:
		if scope, ok := parent.(GemeindeScope); ok {
			return asRecords(db.GemeindenIn(scope)), nil
		}
	}
	return nil, fmt.Errorf("gvdb: no %s records below a %s key", childKind, parent.Kind())
}

func asRecords[R record.Record](rs []R) []record.Record {
	out := make([]record.Record, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}

// Laender returns all states in ascending key order.
func (db *Database) Laender() []*record.Land {
	out := make([]*record.Land, 0, len(db.landKeys))
	for _, k := range db.landKeys {
		out = append(out, db.laender[k])
	}
	return out
}

// Regierungsbezirke returns all government districts in ascending key order.
func (db *Database) Regierungsbezirke() []*record.Regierungsbezirk {
	out := make([]*record.Regierungsbezirk, 0, len(db.bezirkKeys))
	for _, k := range db.bezirkKeys {
		out = append(out, db.regierungsbezirke[k])
	}
	return out
}

// Regionen returns all regions in ascending key order.
func (db *Database) Regionen() []*record.Region {
	out := make([]*record.Region, 0, len(db.regionKeys))
	for _, k := range db.regionKeys {
		out = append(out, db.regionen[k])
	}
	return out
}

// Kreise returns all districts in ascending key order.
func (db *Database) Kreise() []*record.Kreis {
	out := make([]*record.Kreis, 0, len(db.kreisKeys))
	for _, k := range db.kreisKeys {
		out = append(out, db.kreise[k])
	}
	return out
}

// Verbaende returns all associations in ascending key order.
func (db *Database) Verbaende() []*record.Verband {
	out := make([]*record.Verband, 0, len(db.verbandKeys))
	for _, k := range db.verbandKeys {
		out = append(out, db.verbaende[k])
	}
	return out
}

// Gemeinden returns all municipalities in ascending key order.
func (db *Database) Gemeinden() []*record.Gemeinde {
	out := make([]*record.Gemeinde, 0, len(db.gemeindeKeys))
	for _, k := range db.gemeindeKeys {
		out = append(out, db.gemeinden[k])
	}
	return out
}

// All returns every record of a kind in ascending key order.
func (db *Database) All(kind keys.Kind) []record.Record {
	switch kind {
	case keys.KindLand:
		return asRecords(db.Laender())
	case keys.KindRegierungsbezirk:
		return asRecords(db.Regierungsbezirke())
	case keys.KindRegion:
		return asRecords(db.Regionen())
	case keys.KindKreis:
		return asRecords(db.Kreise())
	case keys.KindVerband:
		return asRecords(db.Verbaende())
	case keys.KindGemeinde:
		return asRecords(db.Gemeinden())
	default:
		return nil
	}
}
