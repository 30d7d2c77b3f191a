package windowing

// Hamming is 0.54 - 0.46·cos(2πn/(N-1)); its end points sit at 0.08.
type Hamming struct {
	taper
}

// NewHamming creates a symmetric Hamming window
func NewHamming(size int) *Hamming {
	return &Hamming{taper{kind: TypeHamming, coefficients: cosineSum(size, 0.54, 0.46)}}
}
