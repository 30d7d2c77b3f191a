package windowing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Type names one of the supported taper functions. The set is closed: any
// name outside it is rejected rather than resolved dynamically.
type Type string

const (
	TypeNone     Type = "none"
	TypeHann     Type = "hann"
	TypeHamming  Type = "hamming"
	TypeBlackman Type = "blackman"
)

// ErrUnknownWindow is returned for window names outside the supported set
var ErrUnknownWindow = errors.New("unknown window function")

// Window is a fixed-length taper that can be multiplied into a signal
type Window interface {
	// Apply returns a windowed copy of signal, nil on length mismatch
	Apply(signal []float64) []float64
	// ApplyInPlace multiplies the taper into signal
	ApplyInPlace(signal []float64) error
	GetCoefficients() []float64
	GetType() Type
}

// Types returns the supported window types in display order
func Types() []Type {
	return []Type{TypeNone, TypeHann, TypeHamming, TypeBlackman}
}

// ParseType resolves a user supplied window name, case-insensitively.
// The empty string maps to TypeNone.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return TypeNone, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
}

// Label returns the capitalised display name
func (t Type) Label() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeHann:
		return "Hann"
	case TypeHamming:
		return "Hamming"
	case TypeBlackman:
		return "Blackman"
	default:
		return string(t)
	}
}

// Next returns the type following t in display order, wrapping around
func (t Type) Next() Type {
	all := Types()
	for i, candidate := range all {
		if candidate == t {
			return all[(i+1)%len(all)]
		}
	}
	return TypeNone
}

// New builds a symmetric window of the given type and length
func New(t Type, size int) (Window, error) {
	if size < 0 {
		return nil, fmt.Errorf("window size must be non-negative, got %d", size)
	}

	switch t {
	case TypeNone, "":
		return NewRectangular(size), nil
	case TypeHann:
		return NewHann(size), nil
	case TypeHamming:
		return NewHamming(size), nil
	case TypeBlackman:
		return NewBlackman(size), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, string(t))
	}
}

// cosineSum evaluates the symmetric generalized cosine window
//
//	w[n] = Σ_k (-1)^k a_k cos(2πkn/(N-1)),  n = 0..N-1
//
// A single-point window is [1].
func cosineSum(size int, a ...float64) []float64 {
	coefficients := make([]float64, size)
	if size == 1 {
		coefficients[0] = 1.0
		return coefficients
	}

	denominator := float64(size - 1)
	for n := 0; n < size; n++ {
		arg := 2 * math.Pi * float64(n) / denominator
		sign := 1.0
		value := 0.0
		for k, ak := range a {
			value += sign * ak * math.Cos(float64(k)*arg)
			sign = -sign
		}
		coefficients[n] = value
	}
	return coefficients
}

// taper holds the coefficient table shared by every window type
type taper struct {
	kind         Type
	coefficients []float64
}

func (w *taper) Apply(signal []float64) []float64 {
	if len(signal) != len(w.coefficients) {
		return nil
	}

	windowed := make([]float64, len(signal))
	for i, c := range w.coefficients {
		windowed[i] = signal[i] * c
	}
	return windowed
}

func (w *taper) ApplyInPlace(signal []float64) error {
	if len(signal) != len(w.coefficients) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(w.coefficients))
	}

	for i, c := range w.coefficients {
		signal[i] *= c
	}
	return nil
}

func (w *taper) GetCoefficients() []float64 {
	coeffs := make([]float64, len(w.coefficients))
	copy(coeffs, w.coefficients)
	return coeffs
}

func (w *taper) GetType() Type {
	return w.kind
}
