package grid

import (
	"unicode/utf8"

	"github.com/praetorian-inc/gridscan/pkg/types"
)

// Builder scans rows into cells. The zero value is ready to use.
type Builder struct {
	cells []types.Cell
	lines []string
	width int
	// first row width, -1 once rows disagree
	rowWidth int
}

// openNumber is a digit run that has not been closed yet.
type openNumber struct {
	span   types.Span
	number types.PartNumber
}

// AddRow scans one row. Columns are rune indexes within the row.
func (b *Builder) AddRow(row string) {
	y := len(b.lines)
	b.lines = append(b.lines, row)

	w := utf8.RuneCountInString(row)
	switch {
	case y == 0:
		b.rowWidth = w
	case b.rowWidth != w:
		b.rowWidth = -1
	}
	if w > b.width {
		b.width = w
	}

	var open *openNumber
	closeOpen := func() {
		if open != nil {
			b.cells = append(b.cells, types.NumberCell(open.span, open.number))
			open = nil
		}
	}

	x := 0
	for _, r := range row {
		p := types.Point{X: x, Y: y}
		switch {
		case r == '.':
			closeOpen()
			b.cells = append(b.cells, types.EmptyCell(p))
		case types.IsDigit(r):
			if open == nil {
				open = &openNumber{span: types.PointSpan(p)}
			}
			open.span.EndX = x
			open.number = open.number.Append(r)
		default:
			closeOpen()
			b.cells = append(b.cells, types.SymbolCell(p, r))
		}
		x++
	}

	// digit run reaching the end of the row
	closeOpen()
}

// Grid returns the grid scanned so far. Later AddRow calls do not affect it.
func (b *Builder) Grid() *Grid {
	g := &Grid{
		cells:       make([]types.Cell, len(b.cells)),
		lines:       make([]string, len(b.lines)),
		width:       b.width,
		rectangular: b.rowWidth >= 0,
	}
	copy(g.cells, b.cells)
	copy(g.lines, b.lines)
	return g
}

// Parse scans every line into a Grid.
func Parse(lines []string) *Grid {
	var b Builder
	for _, line := range lines {
		b.AddRow(line)
	}
	return b.Grid()
}
