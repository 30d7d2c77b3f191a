package stats

import (
	"math"
	"testing"
)

func TestFullMatchesDirectSum(t *testing.T) {
	signal := []float64{1, 2, 3}

	full, err := NewAutocorrelationWithMethod(TimeDomain).Full(signal)
	if err != nil {
		t.Fatal(err)
	}
	// full linear autocorrelation of [1,2,3]
	want := []float64{3, 8, 14, 8, 3}
	for i := range want {
		if math.Abs(full[i]-want[i]) > 1e-12 {
			t.Errorf("full[%d] = %g, want %g", i, full[i], want[i])
		}
	}
}

func TestMethodsAgree(t *testing.T) {
	signal := make([]float64, 301)
	for i := range signal {
		signal[i] = math.Sin(0.3*float64(i)) + 0.25*math.Cos(1.7*float64(i))
	}

	direct, err := NewAutocorrelationWithMethod(TimeDomain).Full(signal)
	if err != nil {
		t.Fatal(err)
	}
	viaFFT, err := NewAutocorrelationWithMethod(FrequencyDomain).Full(signal)
	if err != nil {
		t.Fatal(err)
	}

	for i := range direct {
		if math.Abs(direct[i]-viaFFT[i]) > 1e-8 {
			t.Fatalf("lag index %d: direct %g, fft %g", i, direct[i], viaFFT[i])
		}
	}
}

func TestSameCentring(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		want   []float64
	}{
		// centered "same" length window of the full correlation
		{"odd", []float64{1, 2, 3}, []float64{8, 14, 8}},
		{"even", []float64{1, 2, 3, 4}, []float64{11, 20, 30, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same, err := NewAutocorrelation().Same(tt.signal)
			if err != nil {
				t.Fatal(err)
			}
			for i := range tt.want {
				if math.Abs(same[i]-tt.want[i]) > 1e-12 {
					t.Errorf("same[%d] = %g, want %g", i, same[i], tt.want[i])
				}
			}
		})
	}
}

func TestCentralHalfLength(t *testing.T) {
	for _, n := range []int{4, 7, 10, 1000} {
		out, err := NewAutocorrelation().CentralHalf(make([]float64, n))
		if err != nil {
			t.Fatal(err)
		}
		if want := 3*n/4 - n/4; len(out) != want {
			t.Errorf("n=%d: len = %d, want %d", n, len(out), want)
		}
	}
}

func TestEmptySignal(t *testing.T) {
	if _, err := NewAutocorrelation().Full(nil); err == nil {
		t.Fatal("expected error for empty signal")
	}
}
