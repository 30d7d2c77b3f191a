package windowing

// Hann is the raised-cosine window 0.5 - 0.5·cos(2πn/(N-1)).
// Both end points are zero; for odd N the centre is exactly one.
type Hann struct {
	taper
}

// NewHann creates a symmetric Hann window
func NewHann(size int) *Hann {
	return &Hann{taper{kind: TypeHann, coefficients: cosineSum(size, 0.5, 0.5)}}
}
