// ABOUTME: Rune-accurate cursor over one fixed-width data line
// ABOUTME: Field widths are in characters, not bytes, so umlauts keep offsets stable

package parser

import "strings"

// fieldReader walks a single line field by field. The GV100AD layout is
// defined in characters; names containing multi-byte characters must not
// shift later fields, so the cursor operates on runes.
type fieldReader struct {
	runes []rune
	pos   int
}

func newFieldReader(line string) *fieldReader {
	return &fieldReader{runes: []rune(line)}
}

// next reads the raw content of a field of width n. Short lines yield the
// remaining characters; a fully consumed line yields the empty string.
func (f *fieldReader) next(n int) string {
	if f.pos >= len(f.runes) {
		return ""
	}
	end := f.pos + n
	if end > len(f.runes) {
		end = len(f.runes)
	}
	s := string(f.runes[f.pos:end])
	f.pos = end
	return s
}

// trimmed reads a field of width n with surrounding padding removed.
// Internal spacing is preserved.
func (f *fieldReader) trimmed(n int) string {
	return strings.TrimSpace(f.next(n))
}

// optional reads a field of width n; a field consisting entirely of fill
// characters reports absent.
func (f *fieldReader) optional(n int) (string, bool) {
	s := f.next(n)
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// skip advances the cursor over n characters.
func (f *fieldReader) skip(n int) {
	f.pos += n
	if f.pos > len(f.runes) {
		f.pos = len(f.runes)
	}
}
