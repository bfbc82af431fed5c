// ABOUTME: Error types for line parsing
// ABOUTME: LineError pins every failure to its 1-based line and field name

package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSatzart indicates a line whose discriminator matches no
	// documented record layout
	ErrUnknownSatzart = errors.New("parser: unknown satzart")

	// ErrNumeric indicates a malformed numeric field
	ErrNumeric = errors.New("parser: malformed numeric field")

	// ErrTextkennzeichen indicates a classification code outside the
	// documented block for its satzart
	ErrTextkennzeichen = errors.New("parser: textkennzeichen out of range")
)

// LineError describes why a data line could not be parsed. Datasets are
// externally authored, so the line number and field name are part of the
// contract.
type LineError struct {
	Line  int
	Field string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d, field %s: %v", e.Line, e.Field, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
