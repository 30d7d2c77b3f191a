package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/RyanBlaney/sonido-spectra/algorithms/common"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

// Figure is the plottable view of a spectrum: the masked points plus the
// x-axis limits that should frame them
type Figure struct {
	Frequencies []float64
	Magnitudes  []float64

	// XMin/XMax are used when XMin < XMax, otherwise the data extent frames the plot
	XMin, XMax float64

	Options PlotOptions
}

// NewFigure applies the display range of params to res
func NewFigure(res *spectrum.Result, params spectrum.Parameters, opts PlotOptions) (*Figure, error) {
	if res == nil {
		return nil, ErrNoPoints
	}
	if opts.Title == "" {
		opts.Title = Title(res.Autocorrelated)
	}

	freqs, mags := res.Display(params)
	fig := &Figure{
		Frequencies: freqs,
		Magnitudes:  mags,
		Options:     opts,
	}
	if params.HasRange() {
		fig.XMin, fig.XMax = params.FreqMin, params.FreqMax
	}

	if err := fig.check(); err != nil {
		return nil, err
	}
	return fig, nil
}

func (f *Figure) hasRange() bool {
	return f.XMin < f.XMax
}

func (f *Figure) check() error {
	need := 2
	if f.hasRange() {
		need = 1
	}
	if len(f.Frequencies) < need {
		return fmt.Errorf("%w: %d points", ErrNoPoints, len(f.Frequencies))
	}
	return f.Options.Validate()
}

// xExtent is the framed frequency interval
func (f *Figure) xExtent() (lo, hi float64) {
	if f.hasRange() {
		return f.XMin, f.XMax
	}
	lo, hi = f.Frequencies[0], f.Frequencies[len(f.Frequencies)-1]
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// yExtent starts at zero and leaves headroom above the highest point
func (f *Figure) yExtent() (lo, hi float64) {
	yMax := common.Max(f.Magnitudes)
	if yMax <= 0 {
		yMax = 1
	}
	return 0, yMax * 1.05
}

// Chart builds the go-chart description of the figure
func (f *Figure) Chart() chart.Chart {
	opts := f.Options
	width, height := opts.pixels()

	xs, ys := seriesPoints(opts.Style, f.Frequencies, f.Magnitudes)

	xMin, xMax := f.xExtent()
	yMin, yMax := f.yExtent()

	grid := chart.Style{
		StrokeColor: drawing.ColorFromHex("d0d0d0"),
		StrokeWidth: 1.0,
	}

	return chart.Chart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		DPI:    float64(opts.DPI),
		// tight bounding box: only enough padding for the title and tick labels
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 30, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: grid,
			GridMinorStyle: chart.Style{Hidden: true},
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			GridMajorStyle: grid,
			GridMinorStyle: chart.Style{Hidden: true},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "spectrum",
				XValues: xs,
				YValues: ys,
				Style:   seriesStyle(opts.Style, opts.Color),
			},
		},
	}
}

// RenderPNG writes the figure as PNG
func (f *Figure) RenderPNG(w io.Writer) error {
	c := f.Chart()
	return c.Render(chart.PNG, w)
}

// RenderSVG writes the figure as SVG
func (f *Figure) RenderSVG(w io.Writer) error {
	c := f.Chart()
	return c.Render(chart.SVG, w)
}

// seriesStyle returns line or point styling for the series
func seriesStyle(style Style, color Color) chart.Style {
	col := color.drawing()
	if style == StyleScatter {
		// points only, no connecting line
		return chart.Style{
			StrokeWidth: 0,
			StrokeColor: drawing.ColorTransparent,
			DotWidth:    3,
			DotColor:    col,
		}
	}
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 1.5,
	}
}

// seriesPoints expands the spectrum into the polyline drawn for style.
// Step holds each value from the previous abscissa up to its own; bar
// draws a stem from the baseline for every bin.
func seriesPoints(style Style, freqs, mags []float64) (xs, ys []float64) {
	switch style {
	case StyleStep:
		xs = make([]float64, 0, 2*len(freqs))
		ys = make([]float64, 0, 2*len(freqs))
		for i := range freqs {
			if i > 0 {
				xs = append(xs, freqs[i-1])
				ys = append(ys, mags[i])
			}
			xs = append(xs, freqs[i])
			ys = append(ys, mags[i])
		}
		return xs, ys
	case StyleBar:
		xs = make([]float64, 0, 3*len(freqs))
		ys = make([]float64, 0, 3*len(freqs))
		for i := range freqs {
			xs = append(xs, freqs[i], freqs[i], freqs[i])
			ys = append(ys, 0, mags[i], 0)
		}
		return xs, ys
	default:
		xs = make([]float64, len(freqs))
		ys = make([]float64, len(mags))
		copy(xs, freqs)
		copy(ys, mags)
		return xs, ys
	}
}
