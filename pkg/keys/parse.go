// ABOUTME: Parsing of key texts in their canonical fixed-width decimal form
// ABOUTME: Per-kind parsers plus a kind-dispatched entry point for callers

package keys

import "fmt"

// parseGroup decodes one fixed-width digit group. The width bounds the value,
// so a successful parse is always in range for its level.
func parseGroup(s string) (uint16, bool) {
	var n uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint16(c-'0')
	}
	return n, true
}

func parseGroups(kind Kind, text string, widths ...int) ([]uint16, error) {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(text) != total {
		return nil, formatErr(kind, text, fmt.Errorf("%w: expected %d digits, got %d", ErrLength, total, len(text)))
	}
	groups := make([]uint16, len(widths))
	pos := 0
	for i, w := range widths {
		n, ok := parseGroup(text[pos : pos+w])
		if !ok {
			return nil, formatErr(kind, text, ErrDigits)
		}
		groups[i] = n
		pos += w
	}
	return groups, nil
}

// ParseLandKey parses a two-digit Land key, e.g. "10" for Saarland.
func ParseLandKey(text string) (LandKey, error) {
	g, err := parseGroups(KindLand, text, 2)
	if err != nil {
		return LandKey{}, err
	}
	return LandKey{Land: uint8(g[0])}, nil
}

// ParseRegierungsbezirkKey parses a three-digit Regierungsbezirk key ("LLB").
func ParseRegierungsbezirkKey(text string) (RegierungsbezirkKey, error) {
	g, err := parseGroups(KindRegierungsbezirk, text, 2, 1)
	if err != nil {
		return RegierungsbezirkKey{}, err
	}
	return RegierungsbezirkKey{Land: LandKey{Land: uint8(g[0])}, Bezirk: uint8(g[1])}, nil
}

// ParseRegionKey parses a Region key. The full form is four digits ("LLBR");
// because only Baden-Wuerttemberg holds Regionen, the Land prefix may be
// omitted ("BR"). Any explicit Land other than 08 is rejected.
func ParseRegionKey(text string) (RegionKey, error) {
	var g []uint16
	var err error
	switch len(text) {
	case 2:
		if g, err = parseGroups(KindRegion, text, 1, 1); err != nil {
			return RegionKey{}, err
		}
		g = []uint16{uint16(BadenWuerttemberg.Land), g[0], g[1]}
	default:
		if g, err = parseGroups(KindRegion, text, 2, 1, 1); err != nil {
			return RegionKey{}, err
		}
	}
	land := LandKey{Land: uint8(g[0])}
	if land != BadenWuerttemberg {
		return RegionKey{}, formatErr(KindRegion, text,
			fmt.Errorf("%w: only Land %s has Regionen", ErrRange, BadenWuerttemberg))
	}
	return RegionKey{
		Regierungsbezirk: RegierungsbezirkKey{Land: land, Bezirk: uint8(g[1])},
		Region:           uint8(g[2]),
	}, nil
}

// ParseKreisKey parses a five-digit Kreis key ("LLBKK").
func ParseKreisKey(text string) (KreisKey, error) {
	g, err := parseGroups(KindKreis, text, 2, 1, 2)
	if err != nil {
		return KreisKey{}, err
	}
	return KreisKey{
		Regierungsbezirk: RegierungsbezirkKey{Land: LandKey{Land: uint8(g[0])}, Bezirk: uint8(g[1])},
		Kreis:            uint8(g[2]),
	}, nil
}

// ParseVerbandKey parses a nine-digit Verband key ("LLBKKVVVV"), the Kreis
// key followed by the four-digit Verband number.
func ParseVerbandKey(text string) (VerbandKey, error) {
	g, err := parseGroups(KindVerband, text, 2, 1, 2, 4)
	if err != nil {
		return VerbandKey{}, err
	}
	return VerbandKey{
		Kreis: KreisKey{
			Regierungsbezirk: RegierungsbezirkKey{Land: LandKey{Land: uint8(g[0])}, Bezirk: uint8(g[1])},
			Kreis:            uint8(g[2]),
		},
		Verband: g[3],
	}, nil
}

// ParseGemeindeKey parses an eight-digit Gemeinde key ("LLBKKGGG"), the
// Regionalschluessel.
func ParseGemeindeKey(text string) (GemeindeKey, error) {
	g, err := parseGroups(KindGemeinde, text, 2, 1, 2, 3)
	if err != nil {
		return GemeindeKey{}, err
	}
	return GemeindeKey{
		Kreis: KreisKey{
			Regierungsbezirk: RegierungsbezirkKey{Land: LandKey{Land: uint8(g[0])}, Bezirk: uint8(g[1])},
			Kreis:            uint8(g[2]),
		},
		Gemeinde: g[3],
	}, nil
}

// Parse parses a key text for the given kind. This is the entry point for
// externally supplied key text, e.g. typed on a command line.
func Parse(kind Kind, text string) (Key, error) {
	switch kind {
	case KindLand:
		return ParseLandKey(text)
	case KindRegierungsbezirk:
		return ParseRegierungsbezirkKey(text)
	case KindRegion:
		return ParseRegionKey(text)
	case KindKreis:
		return ParseKreisKey(text)
	case KindVerband:
		return ParseVerbandKey(text)
	case KindGemeinde:
		return ParseGemeindeKey(text)
	default:
		return nil, fmt.Errorf("keys: unknown kind %s", kind)
	}
}
