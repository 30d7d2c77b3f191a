package spectrum

import (
	"slices"

	"github.com/RyanBlaney/sonido-spectra/algorithms/windowing"
)

// FemtosecondsToSeconds converts the user facing time step into seconds
const FemtosecondsToSeconds = 1e-15

// Parameters is the snapshot of user choices a single computation runs
// with. Callers build a fresh value before every call; Compute never
// modifies it.
type Parameters struct {
	// Component is the 0-based signal column, time excluded
	Component int `json:"component"`

	// TimeStepFs is the sampling interval in femtoseconds
	TimeStepFs float64 `json:"time_step_fs"`

	Window          windowing.Type `json:"window"`
	Autocorrelation bool           `json:"autocorrelation"`

	// FreqMin/FreqMax bound the displayed range in cm⁻¹; ignored unless FreqMin < FreqMax
	FreqMin float64 `json:"freq_min"`
	FreqMax float64 `json:"freq_max"`

	// ZeroCount bins at the start of the spectrum are forced to zero
	ZeroCount int `json:"zero_count"`

	// ZeroFrequencies lists wavenumbers whose nearest bin is forced to zero
	ZeroFrequencies []float64 `json:"zero_frequencies,omitempty"`
}

// DefaultParameters mirrors the initial state of the interactive tool
func DefaultParameters() Parameters {
	return Parameters{
		Component:  0,
		TimeStepFs: 1.0,
		Window:     windowing.TypeNone,
		FreqMin:    0,
		FreqMax:    100,
	}
}

// Clone returns a copy that shares no memory with p
func (p Parameters) Clone() Parameters {
	p.ZeroFrequencies = slices.Clone(p.ZeroFrequencies)
	return p
}

// HasRange reports whether the display range is active
func (p Parameters) HasRange() bool {
	return p.FreqMin < p.FreqMax
}
