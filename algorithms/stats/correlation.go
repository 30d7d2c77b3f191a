package stats

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/sonido-spectra/algorithms/common"
)

// CorrelationMethod represents different computational approaches
type CorrelationMethod int

const (
	// Direct time-domain summation, O(N²)
	TimeDomain CorrelationMethod = iota

	// Zero-padded FFT (Wiener-Khinchin), O(N log N)
	FrequencyDomain
)

// Autocorrelation computes the linear autocorrelation of a real signal
//
// References:
// - Oppenheim, A.V., Schafer, R.W. (2010). "Discrete-Time Signal Processing"
// - Press, W.H. et al. (2007). "Numerical Recipes", §13.2
//
// The raw (unnormalized) sum r[k] = Σ x[n+k]·x[n] is used, so the transform
// of the result is the power spectrum of the input.
type Autocorrelation struct {
	method       CorrelationMethod
	useFFT       bool
	fftThreshold int
}

// NewAutocorrelation creates an autocorrelation calculator that switches to
// the FFT path for signals longer than 64 samples
func NewAutocorrelation() *Autocorrelation {
	return &Autocorrelation{
		method:       TimeDomain,
		useFFT:       true,
		fftThreshold: 64,
	}
}

// NewAutocorrelationWithMethod forces a computational method
func NewAutocorrelationWithMethod(method CorrelationMethod) *Autocorrelation {
	return &Autocorrelation{
		method:       method,
		useFFT:       method == FrequencyDomain,
		fftThreshold: 0,
	}
}

// Full returns all 2N-1 lags, index j holding lag j-(N-1)
func (ac *Autocorrelation) Full(signal []float64) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return nil, fmt.Errorf("empty signal provided")
	}

	method := ac.method
	if ac.useFFT && n > ac.fftThreshold {
		method = FrequencyDomain
	}

	var positive []float64
	switch method {
	case FrequencyDomain:
		positive = ac.computeFFT(signal)
	case TimeDomain:
		positive = ac.computeTimeDomain(signal)
	default:
		return nil, fmt.Errorf("unsupported correlation method")
	}

	full := make([]float64, 2*n-1)
	for lag := 0; lag < n; lag++ {
		full[n-1+lag] = positive[lag]
		full[n-1-lag] = positive[lag]
	}
	return full, nil
}

// Same returns the N central lags of the full autocorrelation, matching the
// "same" output mode of the usual correlate routines.
func (ac *Autocorrelation) Same(signal []float64) ([]float64, error) {
	full, err := ac.Full(signal)
	if err != nil {
		return nil, err
	}

	n := len(signal)
	start := (n - 1) / 2
	same := make([]float64, n)
	copy(same, full[start:start+n])
	return same, nil
}

// CentralHalf computes Same and keeps [N/4, 3N/4), dropping the outer quarter
// on each side where the triangular overlap taper is weakest.
func (ac *Autocorrelation) CentralHalf(signal []float64) ([]float64, error) {
	same, err := ac.Same(signal)
	if err != nil {
		return nil, err
	}

	n := len(same)
	lo, hi := n/4, 3*n/4
	central := make([]float64, hi-lo)
	copy(central, same[lo:hi])
	return central, nil
}

// computeTimeDomain returns r[0..N-1] by direct summation
func (ac *Autocorrelation) computeTimeDomain(signal []float64) []float64 {
	n := len(signal)
	r := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		sum := 0.0
		for i := 0; i+lag < n; i++ {
			sum += signal[i+lag] * signal[i]
		}
		r[lag] = sum
	}
	return r
}

// computeFFT returns r[0..N-1] as the inverse transform of |X|², with enough
// zero padding that the circular correlation equals the linear one
func (ac *Autocorrelation) computeFFT(signal []float64) []float64 {
	n := len(signal)
	fftSize := common.NextPowerOfTwo(2*n - 1)

	padded := make([]float64, fftSize)
	copy(padded, signal)

	spectrum := fft.FFTReal(padded)
	for i, c := range spectrum {
		re, im := real(c), imag(c)
		spectrum[i] = complex(re*re+im*im, 0)
	}

	circular := fft.IFFT(spectrum)
	r := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		r[lag] = real(circular[lag])
	}
	return r
}
