package windowing

// Blackman is the three-term window
// 0.42 - 0.5·cos(2πn/(N-1)) + 0.08·cos(4πn/(N-1)).
type Blackman struct {
	taper
}

// NewBlackman creates a symmetric Blackman window
func NewBlackman(size int) *Blackman {
	return &Blackman{taper{kind: TypeBlackman, coefficients: cosineSum(size, 0.42, 0.5, 0.08)}}
}
