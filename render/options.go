package render

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style selects how the spectrum series is drawn
type Style string

const (
	StyleLine    Style = "line"
	StyleScatter Style = "scatter"
	StyleStep    Style = "step"
	StyleBar     Style = "bar"
)

// Styles returns the supported plot styles in display order
func Styles() []Style {
	return []Style{StyleLine, StyleScatter, StyleStep, StyleBar}
}

// ParseStyle resolves a style name, case-insensitively
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return StyleLine, nil
	}
	for _, known := range Styles() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown plot style %q", name)
}

// Next returns the style following s, wrapping around
func (s Style) Next() Style {
	all := Styles()
	for i, candidate := range all {
		if candidate == s {
			return all[(i+1)%len(all)]
		}
	}
	return StyleLine
}

// Color is one of the named plot colors
type Color string

const (
	ColorBlue    Color = "blue"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorBlack   Color = "black"
	ColorMagenta Color = "magenta"
	ColorPurple  Color = "purple"
)

var colorHex = map[Color]string{
	ColorBlue:    "0000ff",
	ColorRed:     "ff0000",
	ColorGreen:   "008000",
	ColorBlack:   "000000",
	ColorMagenta: "ff00ff",
	ColorPurple:  "800080",
}

// Colors returns the supported colors in display order
func Colors() []Color {
	return []Color{ColorBlue, ColorRed, ColorGreen, ColorBlack, ColorMagenta, ColorPurple}
}

// ParseColor resolves a color name, case-insensitively
func ParseColor(name string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if c == "" {
		return ColorBlue, nil
	}
	if _, ok := colorHex[c]; !ok {
		return "", fmt.Errorf("unknown plot color %q", name)
	}
	return c, nil
}

// Next returns the color following c, wrapping around
func (c Color) Next() Color {
	all := Colors()
	for i, candidate := range all {
		if candidate == c {
			return all[(i+1)%len(all)]
		}
	}
	return ColorBlue
}

// Hex returns the RRGGBB code of c, blue for unknown names
func (c Color) Hex() string {
	if hex, ok := colorHex[c]; ok {
		return hex
	}
	return colorHex[ColorBlue]
}

func (c Color) drawing() drawing.Color {
	return drawing.ColorFromHex(c.Hex())
}

// PlotOptions carries rendering-only settings; none of them affect the
// computed spectrum
type PlotOptions struct {
	Color  Color  `json:"color"`
	Style  Style  `json:"style"`
	Title  string `json:"title,omitempty"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`

	// DPI sets raster resolution and font scaling
	DPI int `json:"dpi"`

	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
}

// DefaultPlotOptions returns a 10×6 inch blue line plot at 300 DPI
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Color:        ColorBlue,
		Style:        StyleLine,
		XLabel:       "Frequency (cm⁻¹)",
		YLabel:       "Intensity",
		DPI:          300,
		WidthInches:  10,
		HeightInches: 6,
	}
}

// Validate checks the numeric fields and the enums
func (o PlotOptions) Validate() error {
	if o.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", o.DPI)
	}
	if o.WidthInches <= 0 || o.HeightInches <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g in", o.WidthInches, o.HeightInches)
	}
	if _, err := ParseStyle(string(o.Style)); err != nil {
		return err
	}
	if _, err := ParseColor(string(o.Color)); err != nil {
		return err
	}
	return nil
}

// Title returns the default plot title
func Title(autocorrelated bool) string {
	if autocorrelated {
		return "Spectrum (autocorr.)"
	}
	return "Spectrum"
}

// pixels converts a figure dimension to raster pixels
func (o PlotOptions) pixels() (width, height int) {
	return int(o.WidthInches*float64(o.DPI) + 0.5), int(o.HeightInches*float64(o.DPI) + 0.5)
}
