package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = errors.New("no data rows")
	ErrRagged     = errors.New("rows have different lengths")
	ErrNotNumeric = errors.New("non-numeric value")
	ErrShape      = errors.New("unsupported column layout")
)

// LoadError reports a file that could not be turned into a SignalMatrix.
// No partial data is ever returned alongside it.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	msg := "load failed"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
