package grid

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/praetorian-inc/gridscan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleGrid() []string {
	return []string{
		"467..114..",
		"...*......",
		"..35..633.",
		"......#...",
		"617*......",
		".....+.58.",
		"..592.....",
		"......755.",
		"...$.*....",
		".664.598..",
	}
}

func digitsOf(cells []types.Cell) []string {
	var out []string
	for _, c := range cells {
		out = append(out, c.Number.Digits())
	}
	return out
}

func TestSum_Example(t *testing.T) {
	g := Parse(exampleGrid())

	sum, err := Sum(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(4361), sum)

	assert.Equal(t, []string{"467", "35", "633", "617", "592", "755", "664", "598"}, digitsOf(PartNumbers(g)))
	assert.Equal(t, []string{"114", "58"}, digitsOf(Orphans(g)))
}

func TestAnalyze_Example(t *testing.T) {
	report, err := Analyze(Parse(exampleGrid()))
	require.NoError(t, err)

	assert.Equal(t, uint64(4361), report.Sum)
	require.Len(t, report.Parts, 8)
	require.Len(t, report.Orphans, 2)

	first := report.Parts[0]
	assert.Equal(t, uint64(467), first.Value)
	require.Len(t, first.Symbols, 1)
	assert.Equal(t, '*', first.Symbols[0].Symbol)

	for _, o := range report.Orphans {
		assert.Empty(t, o.Symbols)
	}
}

func TestSum_NumberTouchingSeveralSymbolsCountsOnce(t *testing.T) {
	g := Parse([]string{
		"*.#",
		".5.",
		"$.%",
	})

	report, err := Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), report.Sum)
	require.Len(t, report.Parts, 1)
	assert.Len(t, report.Parts[0].Symbols, 4)
}

func TestSum_NoNumbers(t *testing.T) {
	sum, err := Sum(Parse([]string{"..*", "#.."}))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)

	sum, err = Sum(Parse(nil))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)
}

func TestSum_Borders(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  uint64
	}{
		{"first column", []string{"12.", "*.."}, 12},
		{"last column", []string{"..12", ".*.."}, 12},
		{"first row above nothing", []string{"7..", "..."}, 0},
		{"last row", []string{"..#", ".9."}, 9},
		{"symbol at origin", []string{"*", "3"}, 3},
		{"number fills row", []string{"123", "..$"}, 123},
		{"far corner only", []string{"12..", "...*"}, 0},
		{"symbol above middle digit", []string{".*...", "4567."}, 4567},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Sum(Parse(tt.lines))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sum)
		})
	}
}

func TestSum_Overflow(t *testing.T) {
	g := Parse([]string{strings.Repeat("9", 30) + "*"})
	_, err := Sum(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValueOverflow)
}

func TestAnalyze_OversizedOrphanDoesNotFail(t *testing.T) {
	lines := []string{
		strings.Repeat("9", 25) + "..",
		strings.Repeat(".", 27),
		"......1*",
	}
	g := Parse(lines)

	report, err := Analyze(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), report.Sum)
	require.Len(t, report.Orphans, 1)
	assert.Equal(t, strings.Repeat("9", 25), report.Orphans[0].Cell.Text())
	assert.Zero(t, report.Orphans[0].Value)

	want, err := ReferenceSum(lines)
	require.NoError(t, err)
	assert.Equal(t, want, report.Sum)
	assert.NoError(t, Verify(g, report))
}

func TestReferenceSum_Example(t *testing.T) {
	sum, err := ReferenceSum(exampleGrid())
	require.NoError(t, err)
	assert.Equal(t, uint64(4361), sum)
}

func randomGrid(rng *rand.Rand, rows, cols int) []string {
	const alphabet = "......0123456789*#+$/"
	lines := make([]string, rows)
	for y := range lines {
		var sb strings.Builder
		for range cols {
			sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		lines[y] = sb.String()
	}
	return lines
}

func TestSum_MatchesReferenceOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewPCG(2023, 3))

	for i := 0; i < 500; i++ {
		lines := randomGrid(rng, 1+rng.IntN(8), 1+rng.IntN(12))
		g := Parse(lines)

		report, err := Analyze(g)
		require.NoError(t, err)

		want, err := ReferenceSum(lines)
		require.NoError(t, err)
		require.Equal(t, want, report.Sum, "grid:\n%s", strings.Join(lines, "\n"))
		require.NoError(t, Verify(g, report))
	}
}

func TestCellAdjacency_SymmetricOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	a := Parse(randomGrid(rng, 6, 9)).Cells()
	b := Parse(randomGrid(rng, 6, 9)).Cells()

	for _, x := range a {
		for _, y := range b {
			require.Equal(t, x.AdjacentTo(y), y.AdjacentTo(x), "%s vs %s", x, y)
		}
	}
}

func TestVerify_Mismatch(t *testing.T) {
	g := Parse(exampleGrid())
	report, err := Analyze(g)
	require.NoError(t, err)

	report.Sum++
	err = Verify(g, report)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerificationMismatch)
}
