package render

import (
	"strings"
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// TextPlot draws the figure as a width×height grid of block characters,
// one column per frequency slice holding the largest magnitude in it.
// Rows are returned top first.
func (f *Figure) TextPlot(width, height int) []string {
	if width <= 0 || height <= 0 || len(f.Frequencies) == 0 {
		return nil
	}

	lo, hi := f.Frequencies[0], f.Frequencies[len(f.Frequencies)-1]
	if f.hasRange() {
		lo, hi = f.XMin, f.XMax
	}

	columns := make([]float64, width)
	for i, freq := range f.Frequencies {
		col := 0
		if hi > lo {
			col = int((freq - lo) / (hi - lo) * float64(width-1))
		}
		if col < 0 || col >= width {
			continue
		}
		columns[col] = max(columns[col], f.Magnitudes[i])
	}

	peak := 0.0
	for _, v := range columns {
		peak = max(peak, v)
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	if peak <= 0 {
		return joinRows(grid)
	}

	for c, v := range columns {
		// column height in eighths of a cell
		units := int(v/peak*float64(height*8) + 0.5)
		for r := height - 1; r >= 0 && units > 0; r-- {
			fill := min(units, 8)
			grid[r][c] = eighths[fill]
			units -= fill
		}
	}
	return joinRows(grid)
}

func joinRows(grid [][]rune) []string {
	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = string(r)
	}
	return rows
}
