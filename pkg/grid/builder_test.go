package grid

import (
	"testing"

	"github.com/praetorian-inc/gridscan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Coordinates(t *testing.T) {
	g := Parse([]string{"467..11.633"})
	cells := g.Cells()
	require.NotEmpty(t, cells)

	first := cells[0]
	assert.Equal(t, types.KindNumber, first.Kind)
	assert.Equal(t, types.Span{StartX: 0, EndX: 2, StartY: 0, EndY: 0}, first.Span)
	assert.Equal(t, "467", first.Number.Digits())

	last := cells[len(cells)-1]
	assert.Equal(t, types.KindNumber, last.Kind)
	assert.Equal(t, types.Span{StartX: 8, EndX: 10, StartY: 0, EndY: 0}, last.Span)
	assert.Equal(t, "633", last.Number.Digits())
}

func TestBuilder_CellSequence(t *testing.T) {
	g := Parse([]string{"1.#23", "*45"})

	var got []string
	for _, c := range g.Cells() {
		got = append(got, c.String())
	}

	assert.Equal(t, []string{
		`number "1" [0..0]x[0..0]`,
		`empty "." [1..1]x[0..0]`,
		`symbol "#" [2..2]x[0..0]`,
		`number "23" [3..4]x[0..0]`,
		`symbol "*" [0..0]x[1..1]`,
		`number "45" [1..2]x[1..1]`,
	}, got)
}

func TestBuilder_SymbolInterruptsNumber(t *testing.T) {
	g := Parse([]string{"12$34"})
	numbers := g.Numbers()
	require.Len(t, numbers, 2)
	assert.Equal(t, "12", numbers[0].Number.Digits())
	assert.Equal(t, "34", numbers[1].Number.Digits())
	assert.Equal(t, 3, numbers[1].Span.StartX)
}

func TestBuilder_CoversEveryCharacterOnce(t *testing.T) {
	lines := exampleGrid()
	g := Parse(lines)

	seen := make(map[types.Point]int)
	for _, c := range g.Cells() {
		require.True(t, c.Span.Valid())
		assert.Equal(t, c.Span.StartY, c.Span.EndY, "cells are single-row")
		for _, p := range c.Span.Points() {
			seen[p]++
		}
	}

	total := 0
	for y, line := range lines {
		for x := range []rune(line) {
			assert.Equal(t, 1, seen[types.Point{X: x, Y: y}], "position %d,%d", x, y)
			total++
		}
	}
	assert.Len(t, seen, total)
}

func TestBuilder_RuneColumns(t *testing.T) {
	g := Parse([]string{"é12"})
	numbers := g.Numbers()
	require.Len(t, numbers, 1)
	assert.Equal(t, 1, numbers[0].Span.StartX)
	assert.Equal(t, 2, numbers[0].Span.EndX)

	symbols := g.Symbols()
	require.Len(t, symbols, 1)
	assert.Equal(t, 'é', symbols[0].Symbol)
}

func TestBuilder_EmptyRowsAdvanceRowIndex(t *testing.T) {
	g := Parse([]string{"1", "", "*"})
	assert.Equal(t, 3, g.Rows())

	symbols := g.Symbols()
	require.Len(t, symbols, 1)
	assert.Equal(t, 2, symbols[0].Span.StartY)
	assert.False(t, g.Rectangular())
}

func TestBuilder_Shape(t *testing.T) {
	g := Parse(exampleGrid())
	assert.Equal(t, 10, g.Rows())
	assert.Equal(t, 10, g.Width())
	assert.True(t, g.Rectangular())

	ragged := Parse([]string{"...", "....."})
	assert.Equal(t, 5, ragged.Width())
	assert.False(t, ragged.Rectangular())

	empty := Parse(nil)
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Rectangular())
}

func TestBuilder_GridIsSnapshot(t *testing.T) {
	var b Builder
	b.AddRow("1*")
	g := b.Grid()
	b.AddRow("2*")

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.Rows())

	cells := g.Cells()
	cells[0] = types.EmptyCell(types.Point{})
	assert.Equal(t, types.KindNumber, g.Cells()[0].Kind)
}

func TestParse_Idempotent(t *testing.T) {
	first := Parse(exampleGrid())
	second := Parse(exampleGrid())
	assert.Equal(t, first.Cells(), second.Cells())

	sum1, err := Sum(first)
	require.NoError(t, err)
	sum2, err := Sum(second)
	require.NoError(t, err)
	assert.Equal(t, sum1, sum2)
}
