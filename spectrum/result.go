package spectrum

import (
	"github.com/RyanBlaney/sonido-spectra/algorithms/spectral"
)

const (
	// peakMinHeight ignores maxima below this fraction of the normalized peak
	peakMinHeight = 0.05
	peakMinBins   = 2
)

// Result holds one computed spectrum. Frequencies are wavenumbers in cm⁻¹;
// both slices have length floor(N/2) for the N samples that were
// transformed.
type Result struct {
	Frequencies []float64 `json:"frequencies"`
	Magnitudes  []float64 `json:"magnitudes"`

	// SampleCount is N, after autocorrelation cropping
	SampleCount int `json:"sample_count"`

	// BinWidth is the wavenumber spacing between bins
	BinWidth float64 `json:"bin_width"`

	// PeakIndex is the strongest bin after zeroing, -1 when all bins are zero
	PeakIndex int `json:"peak_index"`

	Autocorrelated bool `json:"autocorrelated"`
	Normalized     bool `json:"normalized"`
}

// Len returns the number of bins
func (r *Result) Len() int {
	return len(r.Frequencies)
}

// PeakFrequency returns the wavenumber of PeakIndex, 0 if there is none
func (r *Result) PeakFrequency() float64 {
	if r.PeakIndex < 0 || r.PeakIndex >= len(r.Frequencies) {
		return 0
	}
	return r.Frequencies[r.PeakIndex]
}

// Within returns copies of the points with min <= frequency <= max. When
// min >= max the range is inactive and every point is returned. The result
// itself is not modified.
func (r *Result) Within(min, max float64) (freqs, mags []float64) {
	if min >= max {
		freqs = make([]float64, len(r.Frequencies))
		mags = make([]float64, len(r.Magnitudes))
		copy(freqs, r.Frequencies)
		copy(mags, r.Magnitudes)
		return freqs, mags
	}

	for i, f := range r.Frequencies {
		if f >= min && f <= max {
			freqs = append(freqs, f)
			mags = append(mags, r.Magnitudes[i])
		}
	}
	return freqs, mags
}

// Display applies the range carried by params
func (r *Result) Display(params Parameters) (freqs, mags []float64) {
	return r.Within(params.FreqMin, params.FreqMax)
}

// Peaks returns up to n of the strongest spectral lines, positions refined
// between bins
func (r *Result) Peaks(n int) []spectral.Peak {
	return spectral.NewPeakPicker(peakMinHeight, peakMinBins, n).Find(r.Magnitudes, r.BinWidth)
}
