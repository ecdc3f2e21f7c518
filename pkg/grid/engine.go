package grid

import (
	"fmt"

	"github.com/praetorian-inc/gridscan/pkg/types"
)

// Part is a number cell together with the symbols it touches.
type Part struct {
	Cell types.Cell
	// Value is zero for an orphan whose digits do not fit in a uint64.
	Value   uint64
	Symbols []types.Cell
}

// Report is the outcome of analysing a grid.
type Report struct {
	// Sum of the values of all part numbers.
	Sum uint64
	// Parts are the numbers adjacent to at least one symbol, in scan order.
	Parts []Part
	// Orphans are the numbers adjacent to no symbol, in scan order.
	Orphans []Part
}

// Analyze partitions the grid's number cells into part numbers and orphans
// and sums the part numbers. Each number is counted once however many
// symbols it touches. Only part numbers must fit in a uint64.
func Analyze(g *Grid) (*Report, error) {
	symbols := g.Symbols()
	report := &Report{}

	for _, cell := range g.Numbers() {
		part := Part{Cell: cell}
		for _, sym := range symbols {
			if cell.AdjacentTo(sym) {
				part.Symbols = append(part.Symbols, sym)
			}
		}

		value, err := cell.Number.Value()
		if len(part.Symbols) == 0 {
			if err == nil {
				part.Value = value
			}
			report.Orphans = append(report.Orphans, part)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("number at %s: %w", cell.Span, err)
		}
		if report.Sum+value < report.Sum {
			return nil, fmt.Errorf("sum at %s: %w", cell.Span, types.ErrValueOverflow)
		}
		part.Value = value
		report.Sum += value
		report.Parts = append(report.Parts, part)
	}

	return report, nil
}

// Sum returns the total of all part numbers in the grid.
// A grid without numbers sums to zero.
func Sum(g *Grid) (uint64, error) {
	report, err := Analyze(g)
	if err != nil {
		return 0, err
	}
	return report.Sum, nil
}

// PartNumbers returns the number cells adjacent to at least one symbol.
func PartNumbers(g *Grid) []types.Cell {
	symbols := g.Symbols()
	var out []types.Cell
	for _, cell := range g.Numbers() {
		if touchesAny(cell, symbols) {
			out = append(out, cell)
		}
	}
	return out
}

// Orphans returns the number cells adjacent to no symbol.
func Orphans(g *Grid) []types.Cell {
	symbols := g.Symbols()
	var out []types.Cell
	for _, cell := range g.Numbers() {
		if !touchesAny(cell, symbols) {
			out = append(out, cell)
		}
	}
	return out
}

func touchesAny(cell types.Cell, others []types.Cell) bool {
	for _, o := range others {
		if cell.AdjacentTo(o) {
			return true
		}
	}
	return false
}
