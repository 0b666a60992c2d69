package catalog

import (
	"errors"
	"fmt"
)

// Load operations reported in LoadError.Op.
const (
	OpRead   = "read"
	OpParse  = "parse"
	OpDecode = "decode"
)

// ErrInvalidRecord marks a record that failed validation.
var ErrInvalidRecord = errors.New("invalid icon record")

// LoadError describes a manifest source that could not be loaded.
type LoadError struct {
	Library string
	Path    string
	Op      string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to %s %s manifest %s: %v", e.Op, e.Library, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
