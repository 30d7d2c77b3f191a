package windowing

// Rectangular is the identity taper used when no window is selected
type Rectangular struct {
	taper
}

// NewRectangular creates a window of ones
func NewRectangular(size int) *Rectangular {
	coefficients := make([]float64, size)
	for i := range coefficients {
		coefficients[i] = 1.0
	}
	return &Rectangular{taper{kind: TypeNone, coefficients: coefficients}}
}
