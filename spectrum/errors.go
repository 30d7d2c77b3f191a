package spectrum

import (
	"errors"
)

var (
	ErrEmptySignal      = errors.New("empty signal")
	ErrComponentRange   = errors.New("component index out of range")
	ErrNonFinite        = errors.New("signal contains non-finite values")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrTooFewSamples    = errors.New("too few samples for a spectrum")
)

// ComputationError reports a pipeline run that produced no result. The
// caller's previous result stays valid.
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return "spectrum " + e.Stage + ": " + e.Err.Error()
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) error {
	return &ComputationError{Stage: stage, Err: err}
}
