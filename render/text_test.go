package render

import (
	"testing"
	"unicode/utf8"
)

func TestTextPlot(t *testing.T) {
	fig := &Figure{
		Frequencies: []float64{0, 1, 2, 3},
		Magnitudes:  []float64{0, 0.5, 1, 0},
		Options:     DefaultPlotOptions(),
	}

	rows := fig.TextPlot(4, 2)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for i, r := range rows {
		if utf8.RuneCountInString(r) != 4 {
			t.Errorf("row %d width = %d, want 4", i, utf8.RuneCountInString(r))
		}
	}

	top := []rune(rows[0])
	bottom := []rune(rows[1])
	if top[2] != '█' || bottom[2] != '█' {
		t.Errorf("peak column should be full: %q / %q", rows[0], rows[1])
	}
	if top[1] != ' ' || bottom[1] != '█' {
		t.Errorf("half column should fill the bottom cell only: %q / %q", rows[0], rows[1])
	}
	if bottom[0] != ' ' || bottom[3] != ' ' {
		t.Errorf("zero columns should be blank: %q", rows[1])
	}
}

func TestTextPlotEmpty(t *testing.T) {
	fig := &Figure{}
	if rows := fig.TextPlot(10, 3); rows != nil {
		t.Errorf("expected nil, got %v", rows)
	}

	zero := &Figure{Frequencies: []float64{1, 2}, Magnitudes: []float64{0, 0}}
	rows := zero.TextPlot(3, 2)
	if len(rows) != 2 || rows[0] != "   " {
		t.Errorf("all-zero plot = %q", rows)
	}
}
