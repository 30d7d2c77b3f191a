package filters

import (
	"github.com/RyanBlaney/sonido-spectra/algorithms/common"
)

// DCRemoval removes the constant (zero-frequency) offset from a finite
// signal by subtracting its arithmetic mean.
//
// Trajectory components usually sit on a large static offset (an atom's
// mean position, a dipole's permanent moment). Left in place, that offset
// lands entirely in bin 0 and dwarfs every vibrational line once the
// spectrum is normalized to its peak.
//
// Unlike a recursive DC blocker this works on the whole record at once, has
// no transient at the start of the signal and leaves every non-zero bin of
// the transform untouched.
type DCRemoval struct {
	lastOffset float64 // mean subtracted by the most recent call
}

// NewDCRemoval creates a new mean-subtraction filter
func NewDCRemoval() *DCRemoval {
	return &DCRemoval{}
}

// ProcessBuffer returns a detrended copy of input.
func (dc *DCRemoval) ProcessBuffer(input []float64) []float64 {
	output := make([]float64, len(input))
	copy(output, input)
	dc.ProcessInPlace(output)
	return output
}

// ProcessInPlace subtracts the mean of signal from every sample.
func (dc *DCRemoval) ProcessInPlace(signal []float64) {
	if len(signal) == 0 {
		dc.lastOffset = 0
		return
	}

	mean := common.Mean(signal)
	for i := range signal {
		signal[i] -= mean
	}
	dc.lastOffset = mean
}

// GetOffset returns the mean removed by the most recent call.
func (dc *DCRemoval) GetOffset() float64 {
	return dc.lastOffset
}
