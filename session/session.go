// Package session holds the state an interactive or watching front end
// keeps between actions: the loaded data, the last good spectrum and a
// status line. Every error is absorbed here and turned into a status.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RyanBlaney/sonido-spectra/dataset"
	"github.com/RyanBlaney/sonido-spectra/logging"
	"github.com/RyanBlaney/sonido-spectra/render"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

var (
	ErrNoData   = errors.New("no data loaded")
	ErrNoResult = errors.New("nothing to export")
)

// StatusKind classifies a status message
type StatusKind string

const (
	StatusInfo    StatusKind = "info"
	StatusSuccess StatusKind = "success"
	StatusWarn    StatusKind = "warn"
	StatusError   StatusKind = "error"
)

// Status is the transient message shown after an action
type Status struct {
	Kind    StatusKind
	Message string
}

func (s Status) String() string {
	if s.Message == "" {
		return ""
	}
	var icon string
	switch s.Kind {
	case StatusInfo:
		icon = "ℹ"
	case StatusSuccess:
		icon = "✓"
	case StatusWarn:
		icon = "!"
	case StatusError:
		icon = "×"
	}
	if icon == "" {
		return s.Message
	}
	return icon + " " + s.Message
}

// Session is safe for use from several goroutines; callers still see at
// most one pipeline run at a time.
type Session struct {
	mu       sync.Mutex
	logger   logging.Logger
	pipeline *spectrum.Pipeline

	path   string
	matrix *dataset.SignalMatrix
	result *spectrum.Result
	params spectrum.Parameters
	status Status
}

// New creates an empty session
func New() *Session {
	return &Session{
		logger: logging.WithFields(logging.Fields{
			"component": "session",
		}),
		pipeline: spectrum.NewPipeline(),
		params:   spectrum.DefaultParameters(),
	}
}

// Load replaces the data matrix with the contents of path. On failure
// the previous matrix is discarded. The last result stays displayed and
// exportable until a recompute replaces it.
func (s *Session) Load(path string, timeStepFs float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := dataset.Load(path, timeStepFs)
	if err != nil {
		s.path = ""
		s.matrix = nil
		s.setStatus(StatusError, err.Error())
		return err
	}

	s.path = path
	s.matrix = m
	s.setStatus(StatusInfo, fmt.Sprintf("loaded %d samples × %d components", m.Samples(), m.Components()))
	return nil
}

// Recompute runs the pipeline on the loaded matrix. A failed run keeps
// the previous result.
func (s *Session) Recompute(params spectrum.Parameters) (*spectrum.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matrix == nil {
		s.setStatus(StatusWarn, ErrNoData.Error())
		return s.result, ErrNoData
	}

	res, err := s.pipeline.ComputeFromMatrix(s.matrix, params)
	if err != nil {
		s.logger.Warn("Recompute failed, keeping previous result", logging.Fields{
			"error":            err.Error(),
			"signal_component": params.Component,
		})
		s.setStatus(StatusError, err.Error())
		return s.result, err
	}

	s.result = res
	s.params = params.Clone()
	s.setStatus(StatusSuccess, fmt.Sprintf("%d bins, peak %.1f cm⁻¹", res.Len(), res.PeakFrequency()))
	return res, nil
}

// Export writes the current result to path
func (s *Session) Export(path string, opts render.PlotOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		err := &render.ExportError{Path: path, Err: ErrNoResult}
		s.setStatus(StatusWarn, err.Error())
		return err
	}

	if err := render.Export(path, s.result, s.params, opts); err != nil {
		s.setStatus(StatusError, err.Error())
		return err
	}
	s.setStatus(StatusSuccess, "saved "+path)
	return nil
}

// Process loads path, computes the spectrum and, when output is set,
// exports it. It stops at the first failing step.
func (s *Session) Process(path string, params spectrum.Parameters, output string, opts render.PlotOptions) error {
	if err := s.Load(path, params.TimeStepFs); err != nil {
		return err
	}
	if _, err := s.Recompute(params); err != nil {
		return err
	}
	if output == "" {
		return nil
	}
	return s.Export(output, opts)
}

// Result returns the last good spectrum and the parameters it was
// computed with. The result is nil until a computation succeeds.
func (s *Session) Result() (*spectrum.Result, spectrum.Parameters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.params
}

// Matrix returns the loaded data, nil if none
func (s *Session) Matrix() *dataset.SignalMatrix {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matrix
}

// Path returns the file the matrix was loaded from
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Status returns the message left by the most recent action
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetStatus overrides the status line
func (s *Session) SetStatus(kind StatusKind, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStatus(kind, msg)
}

func (s *Session) setStatus(kind StatusKind, msg string) {
	s.status = Status{Kind: kind, Message: msg}
	s.logger.Debug("Status changed", logging.Fields{"kind": kind, "message": msg})
}
