// ABOUTME: Error types for database construction and queries
// ABOUTME: NotFound is an ordinary outcome, duplicate keys abort construction

package gvdb

import (
	"errors"
	"fmt"

	"github.com/nainya/gv100ad/pkg/keys"
)

// ErrNotFound indicates a well-formed key with no record in the dataset.
// An expected query outcome, not a defect.
var ErrNotFound = errors.New("gvdb: record not found")

// DuplicateKeyError indicates that construction read the same key twice for
// one kind. Construction is all-or-nothing, so the partially built database
// is discarded.
type DuplicateKeyError struct {
	Kind keys.Kind
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("gvdb: duplicate %s key %s", e.Kind, e.Key)
}
