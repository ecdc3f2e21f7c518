package grid

import (
	"errors"
	"fmt"

	"github.com/praetorian-inc/gridscan/pkg/types"
)

// ErrVerificationMismatch is returned when the span-based sum disagrees with
// the character-by-character reference sum.
var ErrVerificationMismatch = errors.New("sum does not match reference scan")

// ReferenceSum computes the part-number total by checking the eight raw
// character neighbours of every digit, without building cells or spans.
func ReferenceSum(lines []string) (uint64, error) {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	symbolAt := func(x, y int) bool {
		if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) {
			return false
		}
		return types.IsSymbol(rows[y][x])
	}

	var sum uint64
	for y, row := range rows {
		for x := 0; x < len(row); {
			if !types.IsDigit(row[x]) {
				x++
				continue
			}

			start := x
			touched := false
			for x < len(row) && types.IsDigit(row[x]) {
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if (dx != 0 || dy != 0) && symbolAt(x+dx, y+dy) {
							touched = true
						}
					}
				}
				x++
			}
			if !touched {
				continue
			}

			n, err := types.ParsePartNumber(string(row[start:x]))
			if err != nil {
				return 0, fmt.Errorf("row %d: %w", y, err)
			}
			v, err := n.Value()
			if err != nil {
				return 0, fmt.Errorf("row %d: %w", y, err)
			}
			if sum+v < sum {
				return 0, fmt.Errorf("row %d: %w", y, types.ErrValueOverflow)
			}
			sum += v
		}
	}
	return sum, nil
}

// Verify checks that the span-based report agrees with ReferenceSum.
func Verify(g *Grid, report *Report) error {
	want, err := ReferenceSum(g.Lines())
	if err != nil {
		return fmt.Errorf("reference scan: %w", err)
	}
	if report.Sum != want {
		return fmt.Errorf("%w: got %d, reference %d", ErrVerificationMismatch, report.Sum, want)
	}
	return nil
}
