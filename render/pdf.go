package render

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pointsPerInch = 72.0
	pdfFont       = "Helvetica"

	// base font size for a 10×6 in figure, scaled with the page
	pdfFontSize = 10.0
	xTickTarget = 8
	yTickTarget = 5
)

// core PDF fonts are cp1252; superscript minus has no code point there
var pdfReplacer = strings.NewReplacer("⁻", "-")

// pdfFrame is the plotting area in page points, origin top left
type pdfFrame struct {
	left, top, right, bottom float64

	xMin, xMax float64
	yMin, yMax float64
}

func (fr pdfFrame) x(v float64) float64 {
	return fr.left + (v-fr.xMin)/(fr.xMax-fr.xMin)*(fr.right-fr.left)
}

func (fr pdfFrame) y(v float64) float64 {
	return fr.bottom - (v-fr.yMin)/(fr.yMax-fr.yMin)*(fr.bottom-fr.top)
}

// encodePDF draws the figure with PDF path and text operators
func (f *Figure) encodePDF(w io.Writer) error {
	pdf := f.pdfDocument()
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// pdfDocument lays out a single page the size of the figure
func (f *Figure) pdfDocument() *gofpdf.Fpdf {
	opts := f.Options
	width := opts.WidthInches * pointsPerInch
	height := opts.HeightInches * pointsPerInch

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("sonido-spectra", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfReplacer.Replace(s)) }

	size := pdfFontSize * math.Min(width/(10*pointsPerInch), height/(6*pointsPerInch))
	size = math.Max(size, 5)

	xMin, xMax := f.xExtent()
	yMin, yMax := f.yExtent()
	frame := pdfFrame{
		left:   5.5 * size,
		top:    3 * size,
		right:  width - 2*size,
		bottom: height - 4*size,
		xMin:   xMin,
		xMax:   xMax,
		yMin:   yMin,
		yMax:   yMax,
	}

	pdf.SetFont(pdfFont, "", size)
	pdf.SetTextColor(0x33, 0x33, 0x33)

	// grid and tick labels
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(0xd0, 0xd0, 0xd0)
	ticks, step := niceTicks(xMin, xMax, xTickTarget)
	for _, t := range ticks {
		x := frame.x(t)
		pdf.Line(x, frame.top, x, frame.bottom)
		label := text(formatTick(t, step))
		pdf.Text(x-pdf.GetStringWidth(label)/2, frame.bottom+1.4*size, label)
	}
	ticks, step = niceTicks(yMin, yMax, yTickTarget)
	for _, t := range ticks {
		y := frame.y(t)
		pdf.Line(frame.left, y, frame.right, y)
		label := text(formatTick(t, step))
		pdf.Text(frame.left-pdf.GetStringWidth(label)-0.5*size, y+0.35*size, label)
	}

	pdf.SetDrawColor(0x33, 0x33, 0x33)
	pdf.Rect(frame.left, frame.top, frame.right-frame.left, frame.bottom-frame.top, "D")

	f.drawPDFSeries(pdf, frame, size)

	// title and axis names
	pdf.SetFont(pdfFont, "B", 1.2*size)
	title := text(opts.Title)
	pdf.Text((width-pdf.GetStringWidth(title))/2, 1.8*size, title)

	pdf.SetFont(pdfFont, "", size)
	xLabel := text(opts.XLabel)
	pdf.Text((frame.left+frame.right-pdf.GetStringWidth(xLabel))/2, height-1.2*size, xLabel)

	yLabel := text(opts.YLabel)
	cx, cy := 1.5*size, (frame.top+frame.bottom)/2
	pdf.TransformBegin()
	pdf.TransformRotate(90, cx, cy)
	pdf.Text(cx-pdf.GetStringWidth(yLabel)/2, cy, yLabel)
	pdf.TransformEnd()

	return pdf
}

func (f *Figure) drawPDFSeries(pdf *gofpdf.Fpdf, frame pdfFrame, size float64) {
	col := f.Options.Color.drawing()
	r, g, b := int(col.R), int(col.G), int(col.B)

	pdf.ClipRect(frame.left, frame.top, frame.right-frame.left, frame.bottom-frame.top, false)
	defer pdf.ClipEnd()

	if f.Options.Style == StyleScatter {
		pdf.SetFillColor(r, g, b)
		for i, freq := range f.Frequencies {
			pdf.Circle(frame.x(freq), frame.y(f.Magnitudes[i]), 0.15*size, "F")
		}
		return
	}

	xs, ys := seriesPoints(f.Options.Style, f.Frequencies, f.Magnitudes)
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.1 * size)
	pdf.SetLineJoinStyle("round")
	pdf.MoveTo(frame.x(xs[0]), frame.y(ys[0]))
	for i := 1; i < len(xs); i++ {
		pdf.LineTo(frame.x(xs[i]), frame.y(ys[i]))
	}
	pdf.DrawPath("D")
}

// niceTicks returns round tick positions within [lo, hi], about target
// of them, and the spacing used
func niceTicks(lo, hi float64, target int) ([]float64, float64) {
	span := hi - lo
	if span <= 0 || target <= 0 {
		return []float64{lo}, 1
	}

	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	switch r := raw / mag; {
	case r < 1.5:
		step = mag
	case r < 3:
		step = 2 * mag
	case r < 7:
		step = 5 * mag
	default:
		step = 10 * mag
	}

	var ticks []float64
	start := math.Ceil(lo/step) * step
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks, step
}

// formatTick prints v with as many decimals as step needs
func formatTick(v, step float64) string {
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
