package render

import (
	"errors"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNoPoints          = errors.New("no spectrum points in display range")
)

// ExportError reports a failed save. Any partially written file is removed.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return "export " + e.Path + ": " + e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
