// ABOUTME: Line parser for GV100AD fixed-width datasets
// ABOUTME: Dispatches on the satzart discriminator to one of six record layouts

package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/nainya/gv100ad/pkg/keys"
	"github.com/nainya/gv100ad/pkg/record"
)

// Satzart discriminators, at offset 0 of every line.
const (
	satzartLand             = 10
	satzartRegierungsbezirk = 20
	satzartRegion           = 30
	satzartKreis            = 40
	satzartVerband          = 50
	satzartGemeinde         = 60
)

// Gebietsstand layout, YYYYMMDD without separators.
const dateLayout = "20060102"

type config struct {
	enc     encoding.Encoding
	lenient bool
	log     zerolog.Logger
}

// Option configures a Parser.
type Option func(*config)

// WithEncoding decodes the input from the given character set before
// parsing. Older datasets are published in ISO 8859-1; the default expects
// UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.enc = enc }
}

// WithLenient skips lines with an unknown satzart instead of failing.
// Blank lines are always skipped; lenient mode never skips malformed lines
// of a known satzart.
func WithLenient() Option {
	return func(c *config) { c.lenient = true }
}

// WithLogger enables per-record trace logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// Parser reads a GV100AD dataset line by line and yields one typed record
// per data line.
type Parser struct {
	sc      *bufio.Scanner
	closer  io.Closer
	log     zerolog.Logger
	line    int
	lenient bool
	skipped int
}

// New creates a parser reading from r.
func New(r io.Reader, opts ...Option) *Parser {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.enc != nil {
		r = transform.NewReader(r, cfg.enc.NewDecoder())
	}
	return &Parser{
		sc:      bufio.NewScanner(r),
		log:     cfg.log,
		lenient: cfg.lenient,
	}
}

// Open creates a parser reading from the dataset file at path. Close must be
// called when done.
func Open(path string, opts ...Option) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	p := New(f, opts...)
	p.closer = f
	return p, nil
}

// Close releases the underlying file, if any.
func (p *Parser) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// Line returns the 1-based number of the last line read.
func (p *Parser) Line() int { return p.line }

// Skipped returns the number of unknown-satzart lines skipped in lenient
// mode.
func (p *Parser) Skipped() int { return p.skipped }

// Next returns the next record. io.EOF signals the end of the dataset.
func (p *Parser) Next() (record.Record, error) {
	for p.sc.Scan() {
		p.line++
		line := strings.TrimRight(p.sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := p.parseLine(line)
		if err != nil {
			if p.lenient && errors.Is(err, ErrUnknownSatzart) {
				p.skipped++
				p.log.Debug().Int("line", p.line).Msg("skipping unknown satzart")
				continue
			}
			return nil, err
		}
		p.log.Trace().
			Int("line", p.line).
			Stringer("kind", rec.Kind()).
			Stringer("key", rec.RecordKey()).
			Msg("record parsed")
		return rec, nil
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return nil, io.EOF
}

func (p *Parser) errAt(field string, err error) error {
	return &LineError{Line: p.line, Field: field, Err: err}
}

func (p *Parser) parseLine(line string) (record.Record, error) {
	f := newFieldReader(line)

	satzart, err := strconv.Atoi(f.next(2))
	if err != nil {
		return nil, p.errAt("satzart", fmt.Errorf("%w: %v", ErrNumeric, err))
	}

	gebietsstand, err := time.Parse(dateLayout, f.next(8))
	if err != nil {
		return nil, p.errAt("gebietsstand", fmt.Errorf("%w: %v", ErrNumeric, err))
	}

	switch satzart {
	case satzartLand:
		return p.parseLand(f, gebietsstand)
	case satzartRegierungsbezirk:
		return p.parseRegierungsbezirk(f, gebietsstand)
	case satzartRegion:
		return p.parseRegion(f, gebietsstand)
	case satzartKreis:
		return p.parseKreis(f, gebietsstand)
	case satzartVerband:
		return p.parseVerband(f, gebietsstand)
	case satzartGemeinde:
		return p.parseGemeinde(f, gebietsstand)
	default:
		return nil, p.errAt("satzart", fmt.Errorf("%w: %d", ErrUnknownSatzart, satzart))
	}
}

func (p *Parser) parseLand(f *fieldReader, gebietsstand time.Time) (record.Record, error) {
	key, err := keys.ParseLandKey(f.next(2))
	if err != nil {
		return nil, p.errAt("schluessel", err)
	}
	f.skip(10)
	return &record.Land{
		Gebietsstand:  gebietsstand,
		Key:           key,
		Name:          f.trimmed(50),
		SitzRegierung: f.trimmed(50),
	}, nil
}

func (p *Parser) parseRegierungsbezirk(f *fieldReader, gebietsstand time.Time) (record.Record, error) {
	key, err := keys.ParseRegierungsbezirkKey(f.next(3))
	if err != nil {
		return nil, p.errAt("schluessel", err)
	}
	f.skip(9)
	return &record.Regierungsbezirk{
		Gebietsstand:   gebietsstand,
		Key:            key,
		Name:           f.trimmed(50),
		SitzVerwaltung: f.trimmed(50),
	}, nil
}

func (p *Parser) parseRegion(f *fieldReader, gebietsstand time.Time) (record.Record, error) {
	key, err := keys.ParseRegionKey(f.next(4))
	if err != nil {
		return nil, p.errAt("schluessel", err)
	}
	return &record.Region{
		Gebietsstand:   gebietsstand,
		Key:            key,
		Name:           f.trimmed(50),
		SitzVerwaltung: f.trimmed(50),
	}, nil
}

func (p *Parser) parseKreis(f *fieldReader, gebietsstand time.Time) (record.Record, error) {
	key, err := keys.ParseKreisKey(f.next(5))
	if err != nil {
		return nil, p.errAt("schluessel", err)
	}
	f.skip(7)
	name := f.trimmed(50)
	sitz := f.trimmed(50)
	tk, err := p.textkennzeichen(f, satzartKreis)
	if err != nil {
		return nil, err
	}
	return &record.Kreis{
		Gebietsstand:    gebietsstand,
		Key:             key,
		Name:            name,
		SitzVerwaltung:  sitz,
		Textkennzeichen: tk,
	}, nil
}

func (p *Parser) parseVerband(f *fieldReader, gebietsstand time.Time) (record.Record, error) {
	kreis, err := keys.ParseKreisKey(f.next(5))
	if err != nil {
		return nil, p.errAt("schluessel", err)
	}
	f.skip(3)
	verband, err := p.uintField(f, "gemeindeverband", 4)
	if err != nil {
		return nil, err
	}
	name := f.trimmed(50)
	sitz := f.trimmed(50)
	tk, err := p.textkennzeichen(f, satzartVerband)
	if err != nil {
		return nil, err
	}
	return &record.Verband{
		Gebietsstand:    gebietsstand,
		Key:             keys.NewVerbandKey(kreis, uint16(verband)),
		Name:            name,
		SitzVerwaltung:  sitz,
		Textkennzeichen: tk,
	}, nil
}

func (p *Parser) parseGemeinde(f *fieldReader, gebietsstand time.Time) (record.Record, error) {
	key, err := keys.ParseGemeindeKey(f.next(8))
	if err != nil {
		return nil, p.errAt("schluessel", err)
	}
	verband, err := p.uintField(f, "gemeindeverband", 4)
	if err != nil {
		return nil, err
	}
	name := f.trimmed(50)
	f.skip(50)
	tk, err := p.textkennzeichen(f, satzartGemeinde)
	if err != nil {
		return nil, err
	}
	f.skip(4)

	area, err := p.optUintField(f, "flaeche", 11)
	if err != nil {
		return nil, err
	}
	popTotal, err := p.optUintField(f, "bevoelkerung_gesamt", 11)
	if err != nil {
		return nil, err
	}
	popMale, err := p.optUintField(f, "bevoelkerung_maennlich", 11)
	if err != nil {
		return nil, err
	}
	f.skip(4)

	plz := f.trimmed(5)
	_, plzAmbiguous := f.optional(5)
	f.skip(2)

	finanzamt, err := p.optUintField(f, "finanzamtbezirk", 4)
	if err != nil {
		return nil, err
	}
	gericht := parseGerichtbarkeit(f.optional(4))
	arbeitsagentur, err := p.optUintField(f, "arbeitsagenturbezirk", 5)
	if err != nil {
		return nil, err
	}
	wahlkreise, err := p.parseWahlkreise(f)
	if err != nil {
		return nil, err
	}

	g := &record.Gemeinde{
		Gebietsstand:         gebietsstand,
		Key:                  key,
		VerbandNr:            uint16(verband),
		Name:                 name,
		Textkennzeichen:      tk,
		AreaHectares:         area,
		PopulationTotal:      popTotal,
		PopulationMale:       popMale,
		PLZ:                  plz,
		PLZUnambiguous:       !plzAmbiguous,
		Gerichtbarkeit:       gericht,
		Arbeitsagenturbezirk: narrow32(arbeitsagentur),
		Bundestagswahlkreise: wahlkreise,
	}
	if finanzamt != nil {
		v := uint16(*finanzamt)
		g.Finanzamtbezirk = &v
	}
	return g, nil
}

// textkennzeichen reads the two-digit classification code following the name
// fields of satzart 40, 50 and 60. A blank field stays zero; a present code
// must lie in the documented block for its satzart.
func (p *Parser) textkennzeichen(f *fieldReader, satzart int) (record.Textkennzeichen, error) {
	s, ok := f.optional(2)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, p.errAt("textkennzeichen", fmt.Errorf("%w: %q", ErrNumeric, s))
	}
	tk := record.Textkennzeichen(n)
	if !tk.ValidFor(satzart) {
		return 0, p.errAt("textkennzeichen", fmt.Errorf("%w: %d for satzart %d", ErrTextkennzeichen, n, satzart))
	}
	return tk, nil
}

func (p *Parser) parseWahlkreise(f *fieldReader) (*record.Wahlkreise, error) {
	s, ok := f.optional(6)
	if !ok {
		return nil, nil
	}
	if len(s) < 3 {
		return nil, p.errAt("bundestagswahlkreise", fmt.Errorf("%w: %q", ErrNumeric, s))
	}
	von, err := strconv.ParseUint(strings.TrimSpace(s[:3]), 10, 16)
	if err != nil {
		return nil, p.errAt("bundestagswahlkreise", fmt.Errorf("%w: %q", ErrNumeric, s))
	}
	w := &record.Wahlkreise{Von: uint16(von)}
	if bis := s[3:]; strings.TrimSpace(bis) != "" {
		v, err := strconv.ParseUint(bis, 10, 16)
		if err != nil {
			return nil, p.errAt("bundestagswahlkreise", fmt.Errorf("%w: %q", ErrNumeric, s))
		}
		b := uint16(v)
		w.Bis = &b
	}
	return w, nil
}

func parseGerichtbarkeit(s string, ok bool) *record.Gerichtbarkeit {
	if !ok || len(s) < 4 {
		return nil
	}
	return &record.Gerichtbarkeit{
		Oberlandesgericht: s[0:1],
		Landgericht:       s[1:2],
		Amtsgericht:       s[2:4],
	}
}

// uintField reads a mandatory zero-padded numeric field.
func (p *Parser) uintField(f *fieldReader, field string, n int) (uint64, error) {
	s := f.next(n)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, p.errAt(field, fmt.Errorf("%w: %q", ErrNumeric, s))
	}
	return v, nil
}

// optUintField reads a numeric field where an all-blank value means the
// measure was not reported. Absence is explicit, never coerced to zero.
func (p *Parser) optUintField(f *fieldReader, field string, n int) (*uint64, error) {
	s, ok := f.optional(n)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, p.errAt(field, fmt.Errorf("%w: %q", ErrNumeric, s))
	}
	return &v, nil
}

func narrow32(v *uint64) *uint32 {
	if v == nil {
		return nil
	}
	n := uint32(*v)
	return &n
}
