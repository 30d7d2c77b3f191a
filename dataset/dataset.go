// Package dataset loads whitespace-delimited trajectory files into a
// SignalMatrix: one time column followed by the signal components.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-spectra/logging"
)

// Raw column layouts accepted by Parse
const (
	// one scalar signal, time synthesized
	ScalarColumns = 1
	// x, y, z and magnitude, time synthesized
	ComponentColumns = 4
	// explicit time column followed by x, y, z and magnitude
	TimedComponentColumns = 5
)

// ComponentNames labels the components of the four-component layout
var ComponentNames = []string{"x", "y", "z", "magnitude"}

// SignalMatrix holds samples row-wise; column 0 is time in femtoseconds and
// columns 1..K are signal components
type SignalMatrix struct {
	data          *mat.Dense
	timeGenerated bool
}

// NewSignalMatrix wraps an existing matrix whose first column is time
func NewSignalMatrix(data *mat.Dense) (*SignalMatrix, error) {
	if data == nil {
		return nil, &LoadError{Err: ErrEmpty}
	}
	rows, cols := data.Dims()
	if rows == 0 || cols < 2 {
		return nil, &LoadError{Err: fmt.Errorf("%w: need a time column and at least one component, got %d columns", ErrShape, cols)}
	}
	return &SignalMatrix{data: data}, nil
}

// Samples returns the number of rows
func (m *SignalMatrix) Samples() int {
	rows, _ := m.data.Dims()
	return rows
}

// Components returns the number of signal columns, excluding time
func (m *SignalMatrix) Components() int {
	_, cols := m.data.Dims()
	return cols - 1
}

// TimeGenerated reports whether the time column was synthesized on load
func (m *SignalMatrix) TimeGenerated() bool {
	return m.timeGenerated
}

// ComponentName returns a display label for component i
func (m *SignalMatrix) ComponentName(i int) string {
	if m.Components() == 1 {
		return "signal"
	}
	if i >= 0 && i < len(ComponentNames) {
		return ComponentNames[i]
	}
	return fmt.Sprintf("component %d", i)
}

// Component returns a copy of component i (0-based, time excluded)
func (m *SignalMatrix) Component(i int) ([]float64, error) {
	if i < 0 || i >= m.Components() {
		return nil, fmt.Errorf("component index %d out of range [0, %d)", i, m.Components())
	}
	return mat.Col(nil, i+1, m.data), nil
}

// Time returns a copy of the time column in femtoseconds
func (m *SignalMatrix) Time() []float64 {
	return mat.Col(nil, 0, m.data)
}

// Load reads a data file, synthesizing a time axis with step timeStepFs
// when the layout carries none
func Load(path string, timeStepFs float64) (*SignalMatrix, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "dataset",
		"function":  "Load",
		"path":      path,
	})

	f, err := os.Open(path)
	if err != nil {
		logger.Error(err, "Failed to open data file")
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := Parse(f, timeStepFs)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		logger.Error(err, "Failed to parse data file")
		return nil, err
	}

	logger.Info("Loaded data file", logging.Fields{
		"samples":        m.Samples(),
		"components":     m.Components(),
		"time_generated": m.TimeGenerated(),
	})
	return m, nil
}

// Parse reads whitespace-delimited rows from r. Everything after a '#' is
// a comment; lines left blank are skipped.
func Parse(r io.Reader, timeStepFs float64) (*SignalMatrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var values []float64
	width := 0
	rows := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, &LoadError{Line: lineNo, Err: fmt.Errorf("%w: expected %d columns, got %d", ErrRagged, width, len(fields))}
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &LoadError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrNotNumeric, field)}
			}
			values = append(values, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	if rows == 0 {
		return nil, &LoadError{Err: ErrEmpty}
	}

	raw := mat.NewDense(rows, width, values)

	switch width {
	case ScalarColumns, ComponentColumns:
		if timeStepFs <= 0 {
			return nil, &LoadError{Err: fmt.Errorf("time step must be positive to synthesize a time axis, got %g", timeStepFs)}
		}
		return &SignalMatrix{data: withTimeColumn(raw, timeStepFs), timeGenerated: true}, nil
	case TimedComponentColumns:
		return &SignalMatrix{data: raw}, nil
	default:
		return nil, &LoadError{Err: fmt.Errorf("%w: %d columns (want %d, %d or %d)",
			ErrShape, width, ScalarColumns, ComponentColumns, TimedComponentColumns)}
	}
}

// withTimeColumn prepends t_i = i·dt to raw
func withTimeColumn(raw *mat.Dense, dt float64) *mat.Dense {
	rows, cols := raw.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, float64(i)*dt)
	}
	out.Slice(0, rows, 1, cols+1).(*mat.Dense).Copy(raw)
	return out
}
