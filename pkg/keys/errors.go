// ABOUTME: Error types for key parsing
// ABOUTME: FormatError wraps the sentinel reasons length, digits, range

package keys

import (
	"errors"
	"fmt"
)

var (
	// ErrLength indicates a key text with the wrong digit count
	ErrLength = errors.New("keys: invalid length")

	// ErrDigits indicates non-digit characters in a key text
	ErrDigits = errors.New("keys: non-digit character")

	// ErrRange indicates a digit group outside its declared range
	ErrRange = errors.New("keys: group out of range")
)

// FormatError describes why a key text could not be parsed. It wraps one of
// the sentinel errors above.
type FormatError struct {
	Kind Kind
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s key %q: %v", e.Kind, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(kind Kind, text string, err error) error {
	return &FormatError{Kind: kind, Text: text, Err: err}
}
