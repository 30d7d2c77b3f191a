// Package spectrum turns a sampled trajectory component into a normalized
// magnitude spectrum on a wavenumber axis.
//
// The pipeline is detrend → optional window → optional autocorrelation →
// DFT (non-negative half) → peak normalization → selective zeroing. It is
// a pure function of its inputs; range selection for display happens on
// the returned Result.
package spectrum

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-spectra/algorithms/common"
	"github.com/RyanBlaney/sonido-spectra/algorithms/filters"
	"github.com/RyanBlaney/sonido-spectra/algorithms/spectral"
	"github.com/RyanBlaney/sonido-spectra/algorithms/stats"
	"github.com/RyanBlaney/sonido-spectra/algorithms/windowing"
	"github.com/RyanBlaney/sonido-spectra/dataset"
	"github.com/RyanBlaney/sonido-spectra/logging"
)

// diagnosticPoints is how many leading bins are logged at debug level
const diagnosticPoints = 10

// Pipeline computes spectra
type Pipeline struct {
	logger logging.Logger
	fft    *spectral.FFT
	acf    *stats.Autocorrelation
}

// NewPipeline creates a pipeline logging through the global logger
func NewPipeline() *Pipeline {
	return &Pipeline{
		logger: logging.WithFields(logging.Fields{
			"component": "spectrum_pipeline",
		}),
		fft: spectral.NewFFT(),
		acf: stats.NewAutocorrelation(),
	}
}

// Compute runs the pipeline with a default Pipeline
func Compute(signal []float64, params Parameters) (*Result, error) {
	return NewPipeline().Compute(signal, params)
}

// ComputeFromMatrix extracts params.Component from m and computes its spectrum
func ComputeFromMatrix(m *dataset.SignalMatrix, params Parameters) (*Result, error) {
	return NewPipeline().ComputeFromMatrix(m, params)
}

// ComputeFromMatrix extracts params.Component from m and computes its spectrum
func (p *Pipeline) ComputeFromMatrix(m *dataset.SignalMatrix, params Parameters) (*Result, error) {
	if m == nil {
		return nil, stageError("extract", ErrEmptySignal)
	}
	if params.Component < 0 || params.Component >= m.Components() {
		return nil, stageError("extract", fmt.Errorf("%w: %d not in [0, %d)",
			ErrComponentRange, params.Component, m.Components()))
	}

	signal, err := m.Component(params.Component)
	if err != nil {
		return nil, stageError("extract", fmt.Errorf("%w: %v", ErrComponentRange, err))
	}
	return p.Compute(signal, params)
}

// Compute transforms signal into a spectrum. signal is not modified.
func (p *Pipeline) Compute(signal []float64, params Parameters) (*Result, error) {
	logger := p.logger.WithFields(logging.Fields{
		"function":        "Compute",
		"samples":         len(signal),
		"window":          params.Window,
		"autocorrelation": params.Autocorrelation,
	})

	if err := validate(params); err != nil {
		logger.Error(err, "Rejected parameters")
		return nil, err
	}
	if len(signal) == 0 {
		return nil, stageError("extract", ErrEmptySignal)
	}

	x := filters.NewDCRemoval().ProcessBuffer(signal)

	window, err := windowing.New(params.Window, len(x))
	if err != nil {
		return nil, stageError("window", fmt.Errorf("%w: %v", ErrInvalidParameter, err))
	}
	if err := window.ApplyInPlace(x); err != nil {
		return nil, stageError("window", err)
	}

	if !common.AllFinite(x) {
		return nil, stageError("detrend", ErrNonFinite)
	}

	if params.Autocorrelation {
		x, err = p.acf.CentralHalf(x)
		if err != nil {
			return nil, stageError("autocorrelation", err)
		}
	}

	n := len(x)
	if n/2 == 0 {
		return nil, stageError("transform", fmt.Errorf("%w: %d samples reach the transform", ErrTooFewSamples, n))
	}

	dt := params.TimeStepFs * FemtosecondsToSeconds
	magnitudes := p.fft.HalfMagnitude(x)
	frequencies := spectral.Wavenumbers(n, dt)

	if !common.AllFinite(magnitudes) {
		return nil, stageError("transform", ErrNonFinite)
	}

	normalized := common.PeakNormalize(magnitudes)

	zeroLeading(magnitudes, params.ZeroCount)
	zeroNearest(frequencies, magnitudes, params.ZeroFrequencies)

	result := &Result{
		Frequencies:    frequencies,
		Magnitudes:     magnitudes,
		SampleCount:    n,
		BinWidth:       spectral.BinWidth(n, dt),
		PeakIndex:      peakIndex(magnitudes),
		Autocorrelated: params.Autocorrelation,
		Normalized:     normalized,
	}

	logger.Debug("Spectrum computed", logging.Fields{
		"bins":        result.Len(),
		"bin_width":   result.BinWidth,
		"magnitudes":  head(magnitudes, diagnosticPoints),
		"frequencies": head(frequencies, diagnosticPoints),
	})

	return result, nil
}

func validate(params Parameters) error {
	if !(params.TimeStepFs > 0) || math.IsInf(params.TimeStepFs, 0) {
		return stageError("parameters", fmt.Errorf("%w: time step must be positive, got %g", ErrInvalidParameter, params.TimeStepFs))
	}
	if params.ZeroCount < 0 {
		return stageError("parameters", fmt.Errorf("%w: zero count must be non-negative, got %d", ErrInvalidParameter, params.ZeroCount))
	}
	return nil
}

// zeroLeading clears the first count bins, fewer if the spectrum is shorter
func zeroLeading(magnitudes []float64, count int) {
	count = min(count, len(magnitudes))
	for i := 0; i < count; i++ {
		magnitudes[i] = 0
	}
}

// zeroNearest clears the bin closest to each target frequency
func zeroNearest(frequencies, magnitudes []float64, targets []float64) {
	for _, target := range targets {
		if math.IsNaN(target) || math.IsInf(target, 0) {
			continue
		}
		if idx := common.NearestIndex(frequencies, target); idx >= 0 {
			magnitudes[idx] = 0
		}
	}
}

func peakIndex(magnitudes []float64) int {
	idx := common.ArgMax(magnitudes)
	if idx < 0 || magnitudes[idx] <= 0 {
		return -1
	}
	return idx
}

func head(data []float64, n int) []float64 {
	return data[:min(n, len(data))]
}
