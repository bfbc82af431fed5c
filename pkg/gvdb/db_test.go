// ABOUTME: Tests for database construction and queries
// ABOUTME: Uses a small Saarland dataset plus Berlin as a second state

package gvdb

import (
	"errors"
	"strings"
	"testing"

	"github.com/nainya/gv100ad/pkg/keys"
	"github.com/nainya/gv100ad/pkg/record"
)

const testset = `102021043010          Saarland                                          Saarbrücken, Landeshauptstadt
402021043010041       Regionalverband Saarbrücken                       Saarbrücken, Landeshauptstadt                     45
502021043010041   0100Saarbrücken, Landeshauptstadt                                                                       50
502021043010041   0511Friedrichsthal, Stadt                                                                               50
6020210430100411000100Saarbrücken, Landeshauptstadt                                                                       63    000000167520000018037400000089528    66111*****  1040110955501296
6020210430100415110511Friedrichsthal, Stadt                                                                               63    000000008990000000998700000004907    66299       1070110955513299
402021043010042       Merzig-Wadern                                     Merzig, Kreisstadt                                44
502021043010042   0111Beckingen                                                                                           50
502021043010042   0112Losheim am See                                                                                      50
6020210430100421110111Beckingen                                                                                           64    000000051850000001488900000007315    66701       1020110455523297
6020210430100421120112Losheim am See                                                                                      64    000000096950000001603800000007974    66679       1020110455525297
102021043011          Berlin                                            Berlin                                                                                                                                              `

func loadTestset(t *testing.T) *Database {
	t.Helper()
	db, err := New(strings.NewReader(testset))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return db
}

var saarland = keys.NewLandKey(10)

func TestGetLand(t *testing.T) {
	db := loadTestset(t)
	land, err := db.Land(saarland)
	if err != nil {
		t.Fatalf("Land: %v", err)
	}
	if land.Name != "Saarland" {
		t.Errorf("unexpected name %q", land.Name)
	}
}

func TestGetGemeinde(t *testing.T) {
	db := loadTestset(t)
	key, err := keys.ParseGemeindeKey("10042111")
	if err != nil {
		t.Fatal(err)
	}
	gemeinde, err := db.Gemeinde(key)
	if err != nil {
		t.Fatalf("Gemeinde: %v", err)
	}
	if gemeinde.Name != "Beckingen" {
		t.Errorf("unexpected name %q", gemeinde.Name)
	}
	if gemeinde.PopulationTotal == nil || *gemeinde.PopulationTotal != 14889 {
		t.Errorf("unexpected population %v", gemeinde.PopulationTotal)
	}
}

func TestGetNotFound(t *testing.T) {
	db := loadTestset(t)
	key, err := keys.ParseKreisKey("10099")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Kreis(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	db := loadTestset(t)
	rec, err := db.Lookup(keys.KindVerband, "100410511")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rec.RecordName() != "Friedrichsthal, Stadt" {
		t.Errorf("unexpected name %q", rec.RecordName())
	}
}

func TestLookupBadKeyFailsBeforeLookup(t *testing.T) {
	db := loadTestset(t)
	_, err := db.Lookup(keys.KindLand, "1x")
	if !errors.Is(err, keys.ErrDigits) {
		t.Fatalf("expected keys.ErrDigits, got %v", err)
	}
	var formatErr *keys.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *keys.FormatError, got %T", err)
	}
}

func TestKreiseInLand(t *testing.T) {
	db := loadTestset(t)
	kreise := db.KreiseIn(saarland)
	if len(kreise) != 2 {
		t.Fatalf("expected 2 Kreise, got %d", len(kreise))
	}
	if kreise[0].Name != "Regionalverband Saarbrücken" || kreise[1].Name != "Merzig-Wadern" {
		t.Errorf("unexpected order: %q, %q", kreise[0].Name, kreise[1].Name)
	}
}

func TestGemeindenInKreis(t *testing.T) {
	db := loadTestset(t)
	kreis := keys.KreisKeyInLand(saarland, 41)
	gemeinden := db.GemeindenIn(kreis)
	if len(gemeinden) != 2 {
		t.Fatalf("expected 2 Gemeinden, got %d", len(gemeinden))
	}
	if gemeinden[0].Name != "Saarbrücken, Landeshauptstadt" || gemeinden[1].Name != "Friedrichsthal, Stadt" {
		t.Errorf("unexpected order: %q, %q", gemeinden[0].Name, gemeinden[1].Name)
	}
}

func TestGemeindenInLandAscending(t *testing.T) {
	db := loadTestset(t)
	gemeinden := db.GemeindenIn(saarland)
	if len(gemeinden) != 4 {
		t.Fatalf("expected 4 Gemeinden, got %d", len(gemeinden))
	}
	for i := 1; i < len(gemeinden); i++ {
		if gemeinden[i-1].Key.Compare(gemeinden[i].Key) >= 0 {
			t.Errorf("not ascending: %s before %s", gemeinden[i-1].Key, gemeinden[i].Key)
		}
	}
	for _, g := range gemeinden {
		if !keys.Contains(saarland, g.Key) {
			t.Errorf("%s not contained in %s", g.Key, saarland)
		}
	}
}

func TestVerbaendeInKreis(t *testing.T) {
	db := loadTestset(t)
	kreis := keys.KreisKeyInLand(saarland, 42)
	verbaende := db.VerbaendeIn(kreis)
	if len(verbaende) != 2 {
		t.Fatalf("expected 2 Verbaende, got %d", len(verbaende))
	}
	if verbaende[0].Name != "Beckingen" || verbaende[1].Name != "Losheim am See" {
		t.Errorf("unexpected order: %q, %q", verbaende[0].Name, verbaende[1].Name)
	}
	for _, v := range verbaende {
		if !keys.Contains(kreis, v.Key) {
			t.Errorf("%s not contained in %s", v.Key, kreis)
		}
	}
}

func TestChildrenOfGenericSurface(t *testing.T) {
	db := loadTestset(t)
	children, err := db.ChildrenOf(keys.KindKreis, saarland)
	if err != nil {
		t.Fatalf("ChildrenOf: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	for _, c := range children {
		if c.Kind() != keys.KindKreis {
			t.Errorf("unexpected kind %s", c.Kind())
		}
		if !keys.Contains(saarland, c.RecordKey()) {
			t.Errorf("%s not contained in %s", c.RecordKey(), saarland)
		}
	}

	if _, err := db.ChildrenOf(keys.KindLand, saarland); err == nil {
		t.Error("expected error for unsupported pairing")
	}
}

func TestChildrenEmptyForLeafOrUnknownParent(t *testing.T) {
	db := loadTestset(t)
	if got := db.KreiseIn(keys.NewLandKey(11)); len(got) != 0 {
		t.Errorf("expected no Kreise in Berlin fixture, got %d", len(got))
	}
	if got := db.GemeindenIn(keys.NewLandKey(12)); len(got) != 0 {
		t.Errorf("expected no Gemeinden for unknown Land, got %d", len(got))
	}
}

func TestChildrenRestartable(t *testing.T) {
	db := loadTestset(t)
	first := db.KreiseIn(saarland)
	second := db.KreiseIn(saarland)
	if len(first) != len(second) {
		t.Fatalf("scans differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("scans differ at %d", i)
		}
	}
}

func TestEnumerationAscending(t *testing.T) {
	db := loadTestset(t)
	laender := db.Laender()
	if len(laender) != 2 {
		t.Fatalf("expected 2 Laender, got %d", len(laender))
	}
	if laender[0].Name != "Saarland" || laender[1].Name != "Berlin" {
		t.Errorf("unexpected order: %q, %q", laender[0].Name, laender[1].Name)
	}
	if got := len(db.All(keys.KindGemeinde)); got != 4 {
		t.Errorf("expected 4 Gemeinden, got %d", got)
	}
}

func TestLen(t *testing.T) {
	db := loadTestset(t)
	counts := map[keys.Kind]int{
		keys.KindLand:     2,
		keys.KindKreis:    2,
		keys.KindVerband:  4,
		keys.KindGemeinde: 4,
		keys.KindRegion:   0,
	}
	for kind, want := range counts {
		if got := db.Len(kind); got != want {
			t.Errorf("Len(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestDuplicateKeyAbortsConstruction(t *testing.T) {
	lines := strings.Split(testset, "\n")
	data := strings.Join(append(lines, lines[0]), "\n")
	db, err := New(strings.NewReader(data))
	if db != nil {
		t.Fatal("expected no database on duplicate key")
	}
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateKeyError, got %v", err)
	}
	if dup.Kind != keys.KindLand || dup.Key != "10" {
		t.Errorf("unexpected duplicate detail: %+v", dup)
	}
}

func TestConstructionFailsOnMalformedLine(t *testing.T) {
	data := testset + "\n" + "99garbage"
	db, err := New(strings.NewReader(data))
	if db != nil || err == nil {
		t.Fatal("expected construction to fail")
	}
}

func TestRecordsRoundTripThroughGet(t *testing.T) {
	db := loadTestset(t)
	for _, rec := range db.All(keys.KindGemeinde) {
		got, err := db.Get(rec.RecordKey())
		if err != nil {
			t.Fatalf("Get(%s): %v", rec.RecordKey(), err)
		}
		if got != rec {
			t.Errorf("Get(%s) returned a different record", rec.RecordKey())
		}
	}
}

func TestGemeindeVerbandLink(t *testing.T) {
	db := loadTestset(t)
	key, err := keys.ParseGemeindeKey("10041511")
	if err != nil {
		t.Fatal(err)
	}
	gemeinde, err := db.Gemeinde(key)
	if err != nil {
		t.Fatal(err)
	}
	verband, err := db.Verband(gemeinde.VerbandKey())
	if err != nil {
		t.Fatalf("Verband: %v", err)
	}
	if verband.Name != "Friedrichsthal, Stadt" {
		t.Errorf("unexpected Verband %q", verband.Name)
	}
	var _ record.Record = verband
}
