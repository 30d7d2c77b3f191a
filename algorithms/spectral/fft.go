package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// SpeedOfLight in cm/s, converts Hz into wavenumbers (cm⁻¹)
const SpeedOfLight = 2.99792458e10

// FFT provides Fast Fourier Transform functionality for real signals
type FFT struct {
	// No state needed
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes Fast Fourier Transform using mjibson/go-dsp
// Takes []float64 input and returns []complex128 output
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// go-dsp handles non-power-of-2 lengths, trajectories are rarely 2^k frames
	return fft.FFTReal(x)
}

// ComputeInverseReal computes inverse FFT and returns real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// HalfMagnitude returns |X[k]| for k = 0..N/2-1, the non-negative frequency
// half of the transform of a real signal of length N.
func (f *FFT) HalfMagnitude(x []float64) []float64 {
	n := len(x)
	half := n / 2
	if half == 0 {
		return []float64{}
	}

	coeffs := f.Compute(x)
	magnitude := make([]float64, half)
	for k := 0; k < half; k++ {
		magnitude[k] = cmplx.Abs(coeffs[k])
	}
	return magnitude
}

// Frequencies returns the first N/2 sample frequencies in Hz of an N point
// transform sampled every dt seconds: k/(N·dt).
func Frequencies(n int, dt float64) []float64 {
	half := n / 2
	freqs := make([]float64, half)
	if half == 0 || dt <= 0 {
		return freqs
	}

	scale := 1.0 / (float64(n) * dt)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) * scale
	}
	return freqs
}

// Wavenumbers returns Frequencies(n, dt) converted to cm⁻¹
func Wavenumbers(n int, dt float64) []float64 {
	freqs := Frequencies(n, dt)
	for k := range freqs {
		freqs[k] /= SpeedOfLight
	}
	return freqs
}

// BinWidth is the wavenumber spacing between adjacent bins
func BinWidth(n int, dt float64) float64 {
	if n <= 0 || dt <= 0 {
		return 0
	}
	return 1.0 / (float64(n) * dt * SpeedOfLight)
}
