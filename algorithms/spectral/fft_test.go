package spectral

import (
	"math"
	"testing"
)

func genSine(freq float64, num int, dt float64) []float64 {
	res := make([]float64, num)
	for step := range res {
		res[step] = math.Sin(2 * math.Pi * freq * dt * float64(step))
	}
	return res
}

func TestHalfMagnitudePeak(t *testing.T) {
	const n = 64
	// bin 5 of a 64 point transform at unit sample spacing
	signal := genSine(5.0/n, n, 1)

	mag := NewFFT().HalfMagnitude(signal)
	if len(mag) != n/2 {
		t.Fatalf("len = %d, want %d", len(mag), n/2)
	}

	peak := 0
	for k := range mag {
		if mag[k] > mag[peak] {
			peak = k
		}
	}
	if peak != 5 {
		t.Errorf("peak bin = %d, want 5", peak)
	}
	// a unit sine concentrates N/2 into its bin
	if math.Abs(mag[5]-n/2) > 1e-9 {
		t.Errorf("peak magnitude = %g, want %d", mag[5], n/2)
	}
}

func TestHalfMagnitudeOddLength(t *testing.T) {
	mag := NewFFT().HalfMagnitude(make([]float64, 7))
	if len(mag) != 3 {
		t.Errorf("len = %d, want 3", len(mag))
	}
	if got := NewFFT().HalfMagnitude([]float64{1}); len(got) != 0 {
		t.Errorf("single sample should give no bins, got %v", got)
	}
}

func TestFrequencies(t *testing.T) {
	got := Frequencies(8, 0.5)
	want := []float64{0, 0.25, 0.5, 0.75}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("freq[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestWavenumbers(t *testing.T) {
	const dt = 1e-15
	const n = 1000
	w := Wavenumbers(n, dt)
	step := BinWidth(n, dt)

	// 1 fs sampling over 1000 frames resolves ~33.356 cm⁻¹
	if math.Abs(step-33.35640951981521) > 1e-9 {
		t.Errorf("bin width = %.12f", step)
	}
	if math.Abs(w[3]-3*step) > 1e-9 {
		t.Errorf("w[3] = %g, want %g", w[3], 3*step)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	f := NewFFT()
	signal := []float64{1, -2, 3.5, 0, 4}
	back := f.ComputeInverseReal(f.Compute(signal))
	for i := range signal {
		if math.Abs(back[i]-signal[i]) > 1e-9 {
			t.Errorf("sample %d = %g, want %g", i, back[i], signal[i])
		}
	}
}
