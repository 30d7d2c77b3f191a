package session

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/RyanBlaney/sonido-spectra/dataset"
	"github.com/RyanBlaney/sonido-spectra/render"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

// writeTrajectory writes n rows of x y z magnitude with a tone on bin 50 in x
func writeTrajectory(t *testing.T, dir string, n int) string {
	t.Helper()

	var b strings.Builder
	for i := 0; i < n; i++ {
		x := math.Sin(2 * math.Pi * 50 * float64(i) / float64(n))
		fmt.Fprintf(&b, "%.17g 0 0 %.17g\n", x, math.Abs(x))
	}

	path := filepath.Join(dir, "traj.dat")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write trajectory: %v", err)
	}
	return path
}

func TestSessionLoadAndRecompute(t *testing.T) {
	path := writeTrajectory(t, t.TempDir(), 1000)

	s := New()
	if err := s.Load(path, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Matrix().Components() != 4 {
		t.Errorf("components = %d, want 4", s.Matrix().Components())
	}
	if s.Status().Kind != StatusInfo {
		t.Errorf("status after load = %+v", s.Status())
	}

	res, err := s.Recompute(spectrum.DefaultParameters())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if res.PeakIndex != 50 {
		t.Errorf("peak index = %d, want 50", res.PeakIndex)
	}
	if got := s.Status(); got.Kind != StatusSuccess || !strings.Contains(got.Message, "500 bins") {
		t.Errorf("status after recompute = %+v", got)
	}
}

func TestSessionBadComponentKeepsResult(t *testing.T) {
	path := writeTrajectory(t, t.TempDir(), 1000)

	s := New()
	if err := s.Load(path, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	good, err := s.Recompute(spectrum.DefaultParameters())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	before := append([]float64(nil), good.Magnitudes...)

	params := spectrum.DefaultParameters()
	params.Component = 7
	res, err := s.Recompute(params)

	var ce *spectrum.ComputationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ComputationError, got %v", err)
	}
	if !errors.Is(err, spectrum.ErrComponentRange) {
		t.Errorf("expected ErrComponentRange, got %v", err)
	}
	if res != good {
		t.Error("failed recompute should hand back the previous result")
	}

	current, used := s.Result()
	if current != good {
		t.Error("session result was replaced")
	}
	if used.Component != 0 {
		t.Errorf("stored parameters changed to component %d", used.Component)
	}
	if diff := cmp.Diff(before, current.Magnitudes); diff != "" {
		t.Errorf("previous magnitudes changed (-before +after):\n%s", diff)
	}
	if s.Status().Kind != StatusError {
		t.Errorf("status = %+v, want error", s.Status())
	}
}

func TestSessionLoadFailureDiscardsMatrix(t *testing.T) {
	dir := t.TempDir()
	path := writeTrajectory(t, dir, 200)

	s := New()
	if err := s.Load(path, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	good, err := s.Recompute(spectrum.DefaultParameters())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	bad := filepath.Join(dir, "bad.dat")
	if err := os.WriteFile(bad, []byte("1 2\n3 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err = s.Load(bad, 1)
	var le *dataset.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if s.Matrix() != nil {
		t.Error("matrix kept after failed load")
	}
	if res, _ := s.Result(); res != good {
		t.Error("last result should stay displayed after a failed load")
	}
	if s.Status().Kind != StatusError {
		t.Errorf("status = %+v, want error", s.Status())
	}

	// the plot on screen can still be saved
	out := filepath.Join(dir, "kept.dat")
	if err := s.Export(out, render.DefaultPlotOptions()); err != nil {
		t.Fatalf("export after failed load: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("export missing: %v", err)
	}
	if s.Path() != "" {
		t.Errorf("path = %q, want empty", s.Path())
	}

	if _, err := s.Recompute(spectrum.DefaultParameters()); !errors.Is(err, ErrNoData) {
		t.Errorf("recompute without data: got %v, want ErrNoData", err)
	}
}

func TestSessionExport(t *testing.T) {
	dir := t.TempDir()
	path := writeTrajectory(t, dir, 1000)

	s := New()
	out := filepath.Join(dir, "spectrum.dat")

	err := s.Export(out, render.DefaultPlotOptions())
	var ee *render.ExportError
	if !errors.As(err, &ee) || !errors.Is(err, ErrNoResult) {
		t.Fatalf("export before compute: got %v", err)
	}

	params := spectrum.DefaultParameters()
	params.FreqMax = 2000
	if err := s.Process(path, params, out, render.DefaultPlotOptions()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if got := s.Status(); got.Kind != StatusSuccess || !strings.HasPrefix(got.String(), "✓ saved") {
		t.Errorf("status = %q", got.String())
	}

	err = s.Export(filepath.Join(dir, "spectrum.bmp"), render.DefaultPlotOptions())
	if !errors.Is(err, render.ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
	if s.Status().Kind != StatusError {
		t.Errorf("status = %+v, want error", s.Status())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Status{}, ""},
		{Status{Kind: StatusError, Message: "boom"}, "× boom"},
		{Status{Kind: StatusWarn, Message: "careful"}, "! careful"},
		{Status{Message: "plain"}, "plain"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
