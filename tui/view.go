package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RyanBlaney/sonido-spectra/render"
	"github.com/RyanBlaney/sonido-spectra/session"
	"github.com/RyanBlaney/sonido-spectra/spectrum"
)

const (
	minPlotWidth  = 10
	minPlotHeight = 4
	// rows used by everything around the plot
	chromeHeight = 12
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(paramStyle.Render(m.renderParams()))
	b.WriteString("\n")
	b.WriteString(m.renderPlot())
	b.WriteString("\n")

	if m.mode != modeView {
		b.WriteString(inputStyle.Render(m.editorLabel() + m.editor.View()))
		b.WriteString("\n")
	}

	b.WriteString(renderStatus(m.session.Status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return appStyle.Render(b.String())
}

func (m *Model) renderTitle() string {
	title := m.opts.Title
	if title == "" {
		title = render.Title(m.params.Autocorrelation)
	}
	if m.input != "" {
		title += " · " + filepath.Base(m.input)
	}
	return titleStyle.Render(title)
}

func (m *Model) renderParams() string {
	p := m.params

	component := fmt.Sprintf("component %d", p.Component)
	if matrix := m.session.Matrix(); matrix != nil {
		component = matrix.ComponentName(p.Component)
	}
	autocorr := "off"
	if p.Autocorrelation {
		autocorr = "on"
	}

	parts := []string{
		component,
		fmt.Sprintf("dt %g fs", p.TimeStepFs),
		"window " + p.Window.Label(),
		"autocorr " + autocorr,
		fmt.Sprintf("range %g–%g cm⁻¹", p.FreqMin, p.FreqMax),
		fmt.Sprintf("zero %d", p.ZeroCount),
	}
	if len(p.ZeroFrequencies) > 0 {
		parts = append(parts, "zero at "+spectrum.FormatZeroFrequencies(p.ZeroFrequencies))
	}
	if len(m.rejected) > 0 {
		parts = append(parts, "ignored "+strings.Join(m.rejected, ", "))
	}
	parts = append(parts, fmt.Sprintf("%s %s", m.opts.Color, m.opts.Style))

	return strings.Join(parts, " · ")
}

func (m *Model) plotSize() (width, height int) {
	// app margin and plot border on both sides
	width = max(minPlotWidth, m.width-8)
	height = max(minPlotHeight, m.height-chromeHeight)
	return width, height
}

func (m *Model) renderPlot() string {
	width, height := m.plotSize()

	res, used := m.session.Result()
	if res == nil {
		return plotStyle.Render(placeholder(width, height, "no spectrum"))
	}

	fig, err := render.NewFigure(res, used, m.opts)
	if err != nil {
		return plotStyle.Render(placeholder(width, height, err.Error()))
	}

	bars := lipgloss.NewStyle().Foreground(lipgloss.Color(m.opts.Color.Hex()))
	rows := fig.TextPlot(width, height)
	for i, row := range rows {
		rows[i] = bars.Render(row)
	}

	lo, hi := fig.Frequencies[0], fig.Frequencies[len(fig.Frequencies)-1]
	if used.HasRange() {
		lo, hi = used.FreqMin, used.FreqMax
	}

	peak := fmt.Sprintf("peak %.1f cm⁻¹", res.PeakFrequency())
	return plotStyle.Render(strings.Join(rows, "\n")) + "\n" + axisStyle.Render(axisLine(width+2, lo, hi, peak))
}

// axisLine spreads the range bounds and a caption across width columns
func axisLine(width int, lo, hi float64, caption string) string {
	left := fmt.Sprintf("%g", lo)
	right := fmt.Sprintf("%g", hi)

	gap := width - len(left) - len(right) - lipgloss.Width(caption)
	if gap < 2 {
		return left + " " + right
	}
	pad := gap / 2
	return left + strings.Repeat(" ", pad) + caption + strings.Repeat(" ", gap-pad) + right
}

func placeholder(width, height int, msg string) string {
	if len(msg) > width {
		msg = msg[:width]
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	rows[height/2] = lipgloss.PlaceHorizontal(width, lipgloss.Center, msg)
	return strings.Join(rows, "\n")
}

func (m *Model) editorLabel() string {
	switch m.mode {
	case modeZeroList:
		return "Zero frequencies (cm⁻¹): "
	case modeSavePath:
		return "Export to: "
	}
	return ""
}

func renderStatus(st session.Status) string {
	text := st.String()
	switch st.Kind {
	case session.StatusError:
		return errorStyle.Render(text)
	case session.StatusWarn:
		return warnStyle.Render(text)
	case session.StatusSuccess:
		return okStyle.Render(text)
	}
	return statusStyle.Render(text)
}
