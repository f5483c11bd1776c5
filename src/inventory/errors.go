package inventory

import (
	"errors"
	"fmt"
)

// ErrMissingSource is matched (via errors.Is) by every MissingSourceError
var ErrMissingSource = errors.New("source does not exist")

// MissingSourceError means a file some stage needs to read isn't there
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("%q does not exist", e.Path)
}

// Is lets errors.Is(err, ErrMissingSource) work
func (e *MissingSourceError) Is(target error) bool {
	return target == ErrMissingSource
}

// IOError wraps a failure opening, reading, or writing a resource, naming
// what we were trying to do and to what
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to %s %q: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
