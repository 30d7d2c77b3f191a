package spectrum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseZeroFrequencies(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		values   []float64
		rejected []string
	}{
		{"empty", "", nil, nil},
		{"single", "1600", []float64{1600}, nil},
		{"spaces and empties", " 1600 , ,3400.5,", []float64{1600, 3400.5}, nil},
		{"bad entry in the middle keeps later ones", "100, abc, 200", []float64{100, 200}, []string{"abc"}},
		{"non-finite rejected", "NaN, inf, 5", []float64{5}, []string{"NaN", "inf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, rejected := ParseZeroFrequencies(tt.in)
			if diff := cmp.Diff(tt.values, values); diff != "" {
				t.Errorf("values (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.rejected, rejected); diff != "" {
				t.Errorf("rejected (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatZeroFrequencies(t *testing.T) {
	text := FormatZeroFrequencies([]float64{1600, 3400.5})
	if text != "1600, 3400.5" {
		t.Errorf("Format = %q", text)
	}
	values, rejected := ParseZeroFrequencies(text)
	if len(rejected) != 0 || len(values) != 2 {
		t.Errorf("round trip failed: %v %v", values, rejected)
	}
}
