package spectral

import (
	"math"
	"sort"
)

// Peak is a local maximum of a magnitude spectrum
type Peak struct {
	Frequency float64 // interpolated position, in the unit of the bin width
	Magnitude float64 // interpolated height
	Bin       int     // index of the local maximum
}

// PeakPicker finds the strongest local maxima of a spectrum
type PeakPicker struct {
	minHeight   float64
	minDistance int // in bins
	maxPeaks    int
}

// NewPeakPicker creates a picker that keeps at most maxPeaks maxima of at
// least minHeight, no two closer than minDistance bins
func NewPeakPicker(minHeight float64, minDistance, maxPeaks int) *PeakPicker {
	return &PeakPicker{
		minHeight:   minHeight,
		minDistance: max(minDistance, 1),
		maxPeaks:    maxPeaks,
	}
}

// Find returns peaks ordered by descending magnitude. Bin k sits at
// k*binWidth.
func (pp *PeakPicker) Find(magnitudes []float64, binWidth float64) []Peak {
	if len(magnitudes) < 3 || pp.maxPeaks <= 0 {
		return nil
	}

	var candidates []int
	for i := 1; i < len(magnitudes)-1; i++ {
		if magnitudes[i] > magnitudes[i-1] &&
			magnitudes[i] >= magnitudes[i+1] &&
			magnitudes[i] >= pp.minHeight {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return magnitudes[candidates[a]] > magnitudes[candidates[b]]
	})

	// strongest first, so a weaker neighbour never displaces a stronger one
	var peaks []Peak
	for _, bin := range candidates {
		if len(peaks) == pp.maxPeaks {
			break
		}
		if pp.tooClose(peaks, bin) {
			continue
		}
		peaks = append(peaks, refine(magnitudes, bin, binWidth))
	}
	return peaks
}

func (pp *PeakPicker) tooClose(peaks []Peak, bin int) bool {
	for _, p := range peaks {
		d := bin - p.Bin
		if d < 0 {
			d = -d
		}
		if d < pp.minDistance {
			return true
		}
	}
	return false
}

// refine fits a parabola through the maximum and its neighbours
func refine(magnitudes []float64, bin int, binWidth float64) Peak {
	peak := Peak{
		Frequency: float64(bin) * binWidth,
		Magnitude: magnitudes[bin],
		Bin:       bin,
	}

	y1, y2, y3 := magnitudes[bin-1], magnitudes[bin], magnitudes[bin+1]
	denom := 2.0 * (2.0*y2 - y1 - y3)
	if math.Abs(denom) < 1e-12 {
		return peak
	}

	offset := (y3 - y1) / denom
	a := 0.5 * (y1 - 2.0*y2 + y3)
	b := 0.5 * (y3 - y1)

	peak.Frequency = (float64(bin) + offset) * binWidth
	peak.Magnitude = y2 + a*offset*offset + b*offset
	return peak
}
