package spectrum

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/RyanBlaney/sonido-spectra/algorithms/windowing"
	"github.com/RyanBlaney/sonido-spectra/dataset"
)

const (
	samples = 1000
	bin     = 50
)

// genSine returns n samples of sin(2π·k·i/n) plus offset, i.e. a tone that
// lands exactly on bin k of an n point transform
func genSine(n, k int, offset float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = offset + math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n))
	}
	return res
}

func params() Parameters {
	p := DefaultParameters()
	p.TimeStepFs = 1
	return p
}

func TestEndToEndSinusoid(t *testing.T) {
	res, err := Compute(genSine(samples, bin, 0), params())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Len() != samples/2 || len(res.Magnitudes) != samples/2 {
		t.Fatalf("len = %d/%d, want %d", res.Len(), len(res.Magnitudes), samples/2)
	}
	if res.PeakIndex != bin {
		t.Fatalf("peak index = %d, want %d", res.PeakIndex, bin)
	}
	if math.Abs(res.Magnitudes[bin]-1) > 1e-12 {
		t.Errorf("peak magnitude = %g, want 1", res.Magnitudes[bin])
	}
	for k, m := range res.Magnitudes {
		if k != bin && m > 1e-9 {
			t.Errorf("bin %d = %g, want ~0", k, m)
		}
	}

	// f0 = k/(N·dt) expressed in cm⁻¹
	f0 := float64(bin) / (samples * 1e-15) / 2.99792458e10
	if math.Abs(res.PeakFrequency()-f0) > res.BinWidth {
		t.Errorf("peak at %g cm⁻¹, want %g ± %g", res.PeakFrequency(), f0, res.BinWidth)
	}
	if !res.Normalized {
		t.Error("expected result to be normalized")
	}
}

func TestPeakWithinOneBinForOffGridTone(t *testing.T) {
	const dtFs = 0.5
	const f0 = 1234.5 // cm⁻¹
	hz := f0 * 2.99792458e10

	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = 3 + math.Sin(2*math.Pi*hz*float64(i)*dtFs*1e-15)
	}

	p := params()
	p.TimeStepFs = dtFs
	p.Window = windowing.TypeHann

	res, err := Compute(signal, p)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.PeakFrequency()-f0) > res.BinWidth {
		t.Errorf("peak at %g, want %g within %g", res.PeakFrequency(), f0, res.BinWidth)
	}
}

func TestDetrendRemovesDC(t *testing.T) {
	res, err := Compute(genSine(samples, bin, 500), params())
	if err != nil {
		t.Fatal(err)
	}
	if res.Magnitudes[0] > 1e-9 {
		t.Errorf("DC bin = %g, want ~0 after detrend", res.Magnitudes[0])
	}
	if res.PeakIndex != bin {
		t.Errorf("peak index = %d, want %d", res.PeakIndex, bin)
	}
}

func TestAutocorrelationKeepsPeak(t *testing.T) {
	p := params()
	plain, err := Compute(genSine(samples, bin, 0), p)
	if err != nil {
		t.Fatal(err)
	}

	p.Autocorrelation = true
	acf, err := Compute(genSine(samples, bin, 0), p)
	if err != nil {
		t.Fatal(err)
	}

	if acf.SampleCount != 3*samples/4-samples/4 {
		t.Errorf("sample count = %d, want %d", acf.SampleCount, samples/2)
	}
	if acf.Len() != acf.SampleCount/2 {
		t.Errorf("len = %d, want %d", acf.Len(), acf.SampleCount/2)
	}
	if !acf.Autocorrelated {
		t.Error("Autocorrelated flag not set")
	}
	if math.Abs(acf.PeakFrequency()-plain.PeakFrequency()) > acf.BinWidth {
		t.Errorf("autocorrelation moved peak from %g to %g", plain.PeakFrequency(), acf.PeakFrequency())
	}
}

func TestZeroCount(t *testing.T) {
	signal := make([]float64, 256)
	for i := range signal {
		// broadband content so every bin is non-zero
		signal[i] = math.Sin(0.37*float64(i)) + 0.5*math.Cos(0.011*float64(i*i))
	}

	p := params()
	base, err := Compute(signal, p)
	if err != nil {
		t.Fatal(err)
	}

	const k = 4
	p.ZeroCount = k
	zeroed, err := Compute(signal, p)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < k; i++ {
		if zeroed.Magnitudes[i] != 0 {
			t.Errorf("bin %d = %g, want exactly 0", i, zeroed.Magnitudes[i])
		}
	}
	if zeroed.Magnitudes[k] != base.Magnitudes[k] {
		t.Errorf("bin %d changed: %g -> %g", k, base.Magnitudes[k], zeroed.Magnitudes[k])
	}

	p.ZeroCount = 10000
	all, err := Compute(signal, p)
	if err != nil {
		t.Fatalf("zero count beyond length: %v", err)
	}
	for i, m := range all.Magnitudes {
		if m != 0 {
			t.Fatalf("bin %d = %g, want 0", i, m)
		}
	}
	if all.PeakIndex != -1 {
		t.Errorf("PeakIndex = %d, want -1", all.PeakIndex)
	}
}

func TestZeroNearest(t *testing.T) {
	freqs := []float64{0, 1, 2, 3, 4}
	mags := []float64{1, 1, 1, 1, 1}

	zeroNearest(freqs, mags, []float64{2.4})
	if diff := cmp.Diff([]float64{1, 1, 0, 1, 1}, mags); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	zeroNearest(freqs, mags, []float64{3.5, math.NaN()})
	if diff := cmp.Diff([]float64{1, 1, 0, 0, 1}, mags); diff != "" {
		t.Errorf("tie should zero the lower index (-want +got):\n%s", diff)
	}
}

func TestZeroFrequenciesThroughPipeline(t *testing.T) {
	p := params()
	base, err := Compute(genSine(samples, bin, 0), p)
	if err != nil {
		t.Fatal(err)
	}

	p.ZeroFrequencies = []float64{base.Frequencies[bin] + 0.3*base.BinWidth}
	res, err := Compute(genSine(samples, bin, 0), p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Magnitudes[bin] != 0 {
		t.Errorf("bin %d = %g, want 0", bin, res.Magnitudes[bin])
	}
	if res.PeakIndex == bin {
		t.Error("peak should have moved off the zeroed bin")
	}
}

func TestRangeMask(t *testing.T) {
	res := &Result{
		Frequencies: []float64{0, 5, 10, 15, 20, 25},
		Magnitudes:  []float64{1, 2, 3, 4, 5, 6},
	}

	freqs, mags := res.Within(10, 20)
	if diff := cmp.Diff([]float64{10, 15, 20}, freqs); diff != "" {
		t.Errorf("freqs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3, 4, 5}, mags); diff != "" {
		t.Errorf("mags (-want +got):\n%s", diff)
	}

	// inactive range returns everything, and never aliases the result
	freqs, _ = res.Within(20, 10)
	if len(freqs) != 6 {
		t.Errorf("inactive range returned %d points, want 6", len(freqs))
	}
	freqs[0] = -1
	if res.Frequencies[0] != 0 {
		t.Error("Within returned a view into the result")
	}
}

func TestComputeErrors(t *testing.T) {
	nanSignal := genSine(64, 3, 0)
	nanSignal[10] = math.NaN()

	tests := []struct {
		name   string
		signal []float64
		mutate func(*Parameters)
		want   error
	}{
		{"empty", nil, nil, ErrEmptySignal},
		{"single sample", []float64{1}, nil, ErrTooFewSamples},
		{"non-finite", nanSignal, nil, ErrNonFinite},
		{"zero time step", genSine(64, 3, 0), func(p *Parameters) { p.TimeStepFs = 0 }, ErrInvalidParameter},
		{"negative zero count", genSine(64, 3, 0), func(p *Parameters) { p.ZeroCount = -1 }, ErrInvalidParameter},
		{"unknown window", genSine(64, 3, 0), func(p *Parameters) { p.Window = "kaiser" }, ErrInvalidParameter},
		{"autocorrelation of too short signal", []float64{1, 2}, func(p *Parameters) { p.Autocorrelation = true }, ErrTooFewSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			res, err := Compute(tt.signal, p)
			if res != nil {
				t.Errorf("expected no result, got %d bins", res.Len())
			}
			var ce *ComputationError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ComputationError", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAutocorrelationOfThreeSamples(t *testing.T) {
	p := params()
	p.Autocorrelation = true

	// the central half of a 3 sample correlation keeps 2 samples, one bin
	res, err := Compute([]float64{1, 2, 3}, p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.SampleCount != 2 || res.Len() != 1 {
		t.Errorf("samples = %d, bins = %d; want 2 and 1", res.SampleCount, res.Len())
	}
}

func TestConstantSignalStaysZero(t *testing.T) {
	signal := []float64{7, 7, 7, 7, 7, 7, 7, 7}
	res, err := Compute(signal, params())
	if err != nil {
		t.Fatal(err)
	}
	if res.Normalized {
		t.Error("all-zero spectrum should not report normalization")
	}
	for i, m := range res.Magnitudes {
		if m != 0 || math.IsNaN(m) {
			t.Errorf("bin %d = %g, want 0", i, m)
		}
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	signal := genSine(128, 5, 2)
	orig := append([]float64(nil), signal...)

	p := params()
	p.Window = windowing.TypeBlackman
	p.ZeroFrequencies = []float64{100}
	zeros := append([]float64(nil), p.ZeroFrequencies...)

	if _, err := Compute(signal, p); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig, signal); diff != "" {
		t.Errorf("signal mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(zeros, p.ZeroFrequencies); diff != "" {
		t.Errorf("params mutated (-want +got):\n%s", diff)
	}
}

func TestComputeFromMatrix(t *testing.T) {
	var b strings.Builder
	for _, v := range genSine(samples, bin, 0) {
		fmt.Fprintf(&b, "0 0 0 %.17g\n", v)
	}
	m, err := dataset.Parse(strings.NewReader(b.String()), 1)
	if err != nil {
		t.Fatal(err)
	}

	p := params()
	p.Component = 3
	res, err := ComputeFromMatrix(m, p)
	if err != nil {
		t.Fatal(err)
	}
	if res.PeakIndex != bin {
		t.Errorf("peak = %d, want %d", res.PeakIndex, bin)
	}

	p.Component = 4
	if _, err := ComputeFromMatrix(m, p); !errors.Is(err, ErrComponentRange) {
		t.Errorf("err = %v, want ErrComponentRange", err)
	}
	p.Component = -1
	if _, err := ComputeFromMatrix(m, p); !errors.Is(err, ErrComponentRange) {
		t.Errorf("err = %v, want ErrComponentRange", err)
	}
}

func TestResultPeaks(t *testing.T) {
	signal := genSine(samples, bin, 0)
	strong := genSine(samples, 120, 0)
	for i := range signal {
		signal[i] += 0.5 * strong[i]
	}

	params := DefaultParameters()
	res, err := Compute(signal, params)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	peaks := res.Peaks(5)
	if len(peaks) != 2 {
		t.Fatalf("got %d peaks, want 2: %+v", len(peaks), peaks)
	}
	if peaks[0].Bin != bin || peaks[1].Bin != 120 {
		t.Errorf("peak bins = %d, %d; want %d, 120", peaks[0].Bin, peaks[1].Bin, bin)
	}
	if math.Abs(peaks[0].Frequency-res.Frequencies[bin]) > 1e-9 {
		t.Errorf("on-grid peak moved to %v, want %v", peaks[0].Frequency, res.Frequencies[bin])
	}
	if math.Abs(peaks[1].Magnitude-0.5) > 1e-9 {
		t.Errorf("second peak magnitude = %v, want 0.5", peaks[1].Magnitude)
	}
}
