package spectrum

import (
	"math"
	"strconv"
	"strings"
)

// ParseZeroFrequencies reads a comma-separated list of wavenumbers.
//
// Each entry stands alone: entries that do not parse as a finite number are
// returned in rejected and skipped, every other entry is kept regardless of
// where the bad ones appear. Empty entries are ignored silently.
func ParseZeroFrequencies(text string) (values []float64, rejected []string) {
	for _, entry := range strings.Split(text, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		v, err := strconv.ParseFloat(entry, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			rejected = append(rejected, entry)
			continue
		}
		values = append(values, v)
	}
	return values, rejected
}

// FormatZeroFrequencies renders values in the form ParseZeroFrequencies reads
func FormatZeroFrequencies(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
