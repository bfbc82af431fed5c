// Package server exposes a constructed database over a thin HTTP JSON API
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nainya/gv100ad/internal/logger"
	"github.com/nainya/gv100ad/internal/metrics"
	"github.com/nainya/gv100ad/pkg/gvdb"
	"github.com/nainya/gv100ad/pkg/keys"
	"github.com/nainya/gv100ad/pkg/record"
)

// Server serves read-only queries against one immutable database. The
// database needs no synchronization, so handlers share it freely.
type Server struct {
	db   *gvdb.Database
	log  *logger.Logger
	m    *metrics.Metrics
	http *http.Server
}

// NewServer creates a query server over db
func NewServer(db *gvdb.Database, log *logger.Logger, m *metrics.Metrics) *Server {
	return &Server{db: db, log: log.HTTPLogger(), m: m}
}

// Handler returns the full route table, including /metrics and /healthz
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	mux.HandleFunc("GET /api/{kind}", s.instrument("list", s.handleList))
	mux.HandleFunc("GET /api/{kind}/{key}", s.instrument("lookup", s.handleLookup))
	mux.HandleFunc("GET /api/{kind}/{key}/children/{childkind}", s.instrument("children", s.handleChildren))

	return mux
}

// Serve starts listening on the given port and blocks until shutdown
func (s *Server) Serve(port int) error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.log.Info().Int("port", port).Msg("query service listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// statusWriter captures the response status for logs and metrics
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.m.HTTPRequestsInFlight.Inc()
		defer s.m.HTTPRequestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)

		duration := time.Since(start)
		s.m.RecordHTTPRequest(route, fmt.Sprintf("%d", sw.status), duration)
		s.log.LogHTTPRequest(r.Method, r.URL.Path, sw.status, duration)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	kind, ok := keys.KindFromString(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", r.PathValue("kind")))
		return
	}
	records := s.db.All(kind)
	out := make([]recordJSON, len(records))
	for i, rec := range records {
		out[i] = toJSON(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	kind, ok := keys.KindFromString(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", r.PathValue("kind")))
		return
	}
	rec, err := s.db.Lookup(kind, r.PathValue("key"))
	if err != nil {
		var formatErr *keys.FormatError
		switch {
		case errors.As(err, &formatErr):
			s.m.RecordLookup(kind, "bad_key")
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, gvdb.ErrNotFound):
			s.m.RecordLookup(kind, "not_found")
			writeError(w, http.StatusNotFound, err.Error())
		default:
			s.m.RecordLookup(kind, "error")
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.m.RecordLookup(kind, "hit")
	writeJSON(w, http.StatusOK, toJSON(rec))
}

func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	kind, ok := keys.KindFromString(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", r.PathValue("kind")))
		return
	}
	childKind, ok := keys.KindFromString(r.PathValue("childkind"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", r.PathValue("childkind")))
		return
	}
	parent, err := keys.Parse(kind, r.PathValue("key"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	children, err := s.db.ChildrenOf(childKind, parent)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.m.RecordChildren(childKind)
	out := make([]recordJSON, len(children))
	for i, rec := range children {
		out[i] = toJSON(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// recordJSON is the wire form shared by all six record kinds; kind-specific
// fields stay empty for the others.
type recordJSON struct {
	Kind         string `json:"kind"`
	Key          string `json:"key"`
	Name         string `json:"name"`
	Gebietsstand string `json:"gebietsstand"`
	Seat         string `json:"seat,omitempty"`

	Textkennzeichen     *uint8 `json:"textkennzeichen,omitempty"`
	TextkennzeichenName string `json:"textkennzeichen_name,omitempty"`

	VerbandKey           string  `json:"verband_key,omitempty"`
	AreaHectares         *uint64 `json:"area_hectares,omitempty"`
	PopulationTotal      *uint64 `json:"population_total,omitempty"`
	PopulationMale       *uint64 `json:"population_male,omitempty"`
	PLZ                  string  `json:"plz,omitempty"`
	PLZUnambiguous       *bool   `json:"plz_unambiguous,omitempty"`
	Finanzamtbezirk      *uint16 `json:"finanzamtbezirk,omitempty"`
	Arbeitsagenturbezirk *uint32 `json:"arbeitsagenturbezirk,omitempty"`
	WahlkreisVon         *uint16 `json:"wahlkreis_von,omitempty"`
	WahlkreisBis         *uint16 `json:"wahlkreis_bis,omitempty"`
}

func toJSON(rec record.Record) recordJSON {
	out := recordJSON{
		Kind:         rec.Kind().String(),
		Key:          rec.RecordKey().String(),
		Name:         rec.RecordName(),
		Gebietsstand: rec.ReferenceDate().Format("2006-01-02"),
	}
	switch r := rec.(type) {
	case *record.Land:
		out.Seat = r.SitzRegierung
	case *record.Regierungsbezirk:
		out.Seat = r.SitzVerwaltung
	case *record.Region:
		out.Seat = r.SitzVerwaltung
	case *record.Kreis:
		out.Seat = r.SitzVerwaltung
		setTextkennzeichen(&out, r.Textkennzeichen)
	case *record.Verband:
		out.Seat = r.SitzVerwaltung
		setTextkennzeichen(&out, r.Textkennzeichen)
	case *record.Gemeinde:
		setTextkennzeichen(&out, r.Textkennzeichen)
		out.VerbandKey = r.VerbandKey().String()
		out.AreaHectares = r.AreaHectares
		out.PopulationTotal = r.PopulationTotal
		out.PopulationMale = r.PopulationMale
		out.PLZ = r.PLZ
		unambiguous := r.PLZUnambiguous
		out.PLZUnambiguous = &unambiguous
		out.Finanzamtbezirk = r.Finanzamtbezirk
		out.Arbeitsagenturbezirk = r.Arbeitsagenturbezirk
		if w := r.Bundestagswahlkreise; w != nil {
			von := w.Von
			out.WahlkreisVon = &von
			out.WahlkreisBis = w.Bis
		}
	}
	return out
}

func setTextkennzeichen(out *recordJSON, tk record.Textkennzeichen) {
	if tk == 0 {
		return
	}
	raw := uint8(tk)
	out.Textkennzeichen = &raw
	if tk.Known() {
		out.TextkennzeichenName = tk.String()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
