// ABOUTME: Tests for record types and Textkennzeichen code handling
// ABOUTME: Covers code naming, satzart blocks and the Verband back-link

package record

import (
	"testing"
	"time"

	"github.com/nainya/gv100ad/pkg/keys"
)

func TestTextkennzeichenNames(t *testing.T) {
	if !TkLandkreis.Known() || TkLandkreis.String() != "Landkreis" {
		t.Errorf("unexpected name %q", TkLandkreis.String())
	}
	unknown := Textkennzeichen(99)
	if unknown.Known() {
		t.Error("code 99 should not be known")
	}
	if unknown.String() != "Textkennzeichen 99" {
		t.Errorf("unexpected fallback %q", unknown.String())
	}
}

func TestTextkennzeichenValidFor(t *testing.T) {
	cases := []struct {
		code    Textkennzeichen
		satzart int
		want    bool
	}{
		{TkLandkreis, 40, true},
		{TkLandkreis, 60, false},
		{TkAmt, 50, true},
		{TkStadt, 60, true},
		{TkStadt, 40, false},
		{Textkennzeichen(99), 60, false},
		{TkStadt, 10, false},
	}
	for _, c := range cases {
		if got := c.code.ValidFor(c.satzart); got != c.want {
			t.Errorf("ValidFor(%d, %d) = %v, want %v", c.code, c.satzart, got, c.want)
		}
	}
}

func TestGemeindeVerbandKey(t *testing.T) {
	kreis, err := keys.ParseKreisKey("10041")
	if err != nil {
		t.Fatal(err)
	}
	g := &Gemeinde{
		Key:       keys.NewGemeindeKey(kreis, 100),
		VerbandNr: 100,
	}
	if got := g.VerbandKey().String(); got != "100410100" {
		t.Errorf("VerbandKey = %q", got)
	}
}

func TestWahlkreiseSingle(t *testing.T) {
	w := Wahlkreise{Von: 296}
	if !w.Single() {
		t.Error("expected single constituency")
	}
	bis := uint16(299)
	w.Bis = &bis
	if w.Single() {
		t.Error("expected range")
	}
}

func TestRecordInterface(t *testing.T) {
	land := &Land{
		Gebietsstand: time.Date(2021, 4, 30, 0, 0, 0, 0, time.UTC),
		Key:          keys.NewLandKey(10),
		Name:         "Saarland",
	}
	var rec Record = land
	if rec.Kind() != keys.KindLand || rec.RecordName() != "Saarland" {
		t.Errorf("unexpected record surface: %v %q", rec.Kind(), rec.RecordName())
	}
	if rec.RecordKey().String() != "10" {
		t.Errorf("unexpected key %s", rec.RecordKey())
	}
	if !rec.ReferenceDate().Equal(land.Gebietsstand) {
		t.Error("reference date mismatch")
	}
}
