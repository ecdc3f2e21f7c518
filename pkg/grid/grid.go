// Package grid turns a character grid into typed cells and sums the numbers
// that touch a symbol.
//
// A grid is scanned row by row. Every '.' becomes an empty cell, every run of
// ASCII digits becomes one number cell, and every other character becomes a
// symbol cell. A number is a part number when its span is adjacent to at
// least one symbol span in any of the eight directions.
package grid

import "github.com/praetorian-inc/gridscan/pkg/types"

// Grid is the immutable result of scanning a set of rows.
type Grid struct {
	cells       []types.Cell
	lines       []string
	width       int
	rectangular bool
}

// Cells returns a copy of every cell in scan order.
func (g *Grid) Cells() []types.Cell {
	cells := make([]types.Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Len is the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Lines returns a copy of the scanned rows.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.lines))
	copy(lines, g.lines)
	return lines
}

// Rows is the number of scanned rows, including empty ones.
func (g *Grid) Rows() int {
	return len(g.lines)
}

// Width is the length in characters of the widest row.
func (g *Grid) Width() int {
	return g.width
}

// Rectangular reports whether every row has the same width.
func (g *Grid) Rectangular() bool {
	return g.rectangular
}

// Numbers returns the number cells in scan order.
func (g *Grid) Numbers() []types.Cell {
	return g.filter(types.KindNumber)
}

// Symbols returns the symbol cells in scan order.
func (g *Grid) Symbols() []types.Cell {
	return g.filter(types.KindSymbol)
}

func (g *Grid) filter(kind types.CellKind) []types.Cell {
	var out []types.Cell
	for _, c := range g.cells {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
