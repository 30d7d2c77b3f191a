package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic numeric helpers shared by the spectrum pipeline, backed by gonum

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Max returns the largest value of data, or 0 for an empty slice
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// PeakNormalize scales data in place so that its maximum becomes 1.0.
// A non-positive maximum leaves data untouched and reports false.
func PeakNormalize(data []float64) bool {
	peak := Max(data)
	if peak <= 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		return false
	}
	floats.Scale(1.0/peak, data)
	return true
}

// ArgMax returns the index of the first maximum, -1 when data is empty
func ArgMax(data []float64) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MaxIdx(data)
}

// NearestIndex returns the index whose value is closest to target.
// Ties resolve to the lowest index; -1 when data is empty.
func NearestIndex(data []float64, target float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, v := range data {
		d := math.Abs(v - target)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// AllFinite reports whether every element is neither NaN nor ±Inf
func AllFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NextPowerOfTwo finds the next power of 2 >= n
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}

	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
