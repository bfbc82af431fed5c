package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nainya/gv100ad/internal/logger"
	"github.com/nainya/gv100ad/internal/metrics"
	"github.com/nainya/gv100ad/pkg/gvdb"
)

const testset = `102021043010          Saarland                                          Saarbrücken, Landeshauptstadt
402021043010041       Regionalverband Saarbrücken                       Saarbrücken, Landeshauptstadt                     45
402021043010042       Merzig-Wadern                                     Merzig, Kreisstadt                                44
6020210430100411000100Saarbrücken, Landeshauptstadt                                                                       63    000000167520000018037400000089528    66111*****  1040110955501296
`

// Prometheus collectors register globally, so all tests share one instance.
var testMetrics = metrics.NewMetrics()

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	db, err := gvdb.New(strings.NewReader(testset))
	if err != nil {
		t.Fatalf("build database: %v", err)
	}
	log := logger.NewLogger(logger.Config{Level: "error", Output: io.Discard})
	return NewServer(db, log, testMetrics).Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLookupRoute(t *testing.T) {
	h := newTestHandler(t)
	rec := get(t, h, "/api/land/10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body recordJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Kind != "land" || body.Key != "10" || body.Name != "Saarland" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Gebietsstand != "2021-04-30" {
		t.Errorf("unexpected gebietsstand %q", body.Gebietsstand)
	}
}

func TestLookupRouteGemeindeFields(t *testing.T) {
	h := newTestHandler(t)
	rec := get(t, h, "/api/gemeinde/10041100")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body recordJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.VerbandKey != "100410100" {
		t.Errorf("unexpected verband_key %q", body.VerbandKey)
	}
	if body.PopulationTotal == nil || *body.PopulationTotal != 180374 {
		t.Errorf("unexpected population %v", body.PopulationTotal)
	}
	if body.PLZ != "66111" {
		t.Errorf("unexpected plz %q", body.PLZ)
	}
	if body.PLZUnambiguous == nil || *body.PLZUnambiguous {
		t.Errorf("expected ambiguous plz, got %v", body.PLZUnambiguous)
	}
	if body.Textkennzeichen == nil || *body.Textkennzeichen != 63 {
		t.Errorf("unexpected textkennzeichen %v", body.Textkennzeichen)
	}
}

func TestLookupRouteNotFound(t *testing.T) {
	h := newTestHandler(t)
	if rec := get(t, h, "/api/kreis/10099"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLookupRouteBadKey(t *testing.T) {
	h := newTestHandler(t)
	if rec := get(t, h, "/api/land/1x"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if rec := get(t, h, "/api/planet/10"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown kind", rec.Code)
	}
}

func TestChildrenRoute(t *testing.T) {
	h := newTestHandler(t)
	rec := get(t, h, "/api/land/10/children/kreis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body []recordJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 children, got %d", len(body))
	}
	if body[0].Key != "10041" || body[1].Key != "10042" {
		t.Errorf("unexpected keys: %q, %q", body[0].Key, body[1].Key)
	}
}

func TestChildrenRouteUnsupportedPairing(t *testing.T) {
	h := newTestHandler(t)
	if rec := get(t, h, "/api/gemeinde/10041100/children/land"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListRoute(t *testing.T) {
	h := newTestHandler(t)
	rec := get(t, h, "/api/kreis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var body []recordJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 {
		t.Errorf("expected 2 records, got %d", len(body))
	}
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)
	if rec := get(t, h, "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
