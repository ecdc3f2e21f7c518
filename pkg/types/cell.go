package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrValueOverflow is returned when a digit run does not fit in a uint64.
var ErrValueOverflow = errors.New("part number overflows uint64")

// CellKind tags what a cell holds.
type CellKind int

const (
	// KindEmpty is a '.' position.
	KindEmpty CellKind = iota
	// KindSymbol is any single character that is neither a digit nor '.'.
	KindSymbol
	// KindNumber is a run of consecutive decimal digits on one row.
	KindNumber
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSymbol:
		return "symbol"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// PartNumber is an ordered accumulation of decimal digit characters.
// The zero value holds no digits.
type PartNumber struct {
	digits string
}

// ParsePartNumber builds a PartNumber from a string of ASCII digits.
func ParsePartNumber(digits string) (PartNumber, error) {
	if digits == "" {
		return PartNumber{}, fmt.Errorf("empty part number")
	}
	for i := 0; i < len(digits); i++ {
		if !IsDigit(rune(digits[i])) {
			return PartNumber{}, fmt.Errorf("invalid digit %q at index %d", digits[i], i)
		}
	}
	return PartNumber{digits: digits}, nil
}

// Append returns a copy of p with d added as the least significant digit.
// d must be an ASCII digit.
func (p PartNumber) Append(d rune) PartNumber {
	return PartNumber{digits: p.digits + string(d)}
}

// Digits returns the accumulated characters in order.
func (p PartNumber) Digits() string {
	return p.digits
}

// Len is the number of accumulated digits.
func (p PartNumber) Len() int {
	return len(p.digits)
}

// Value parses the digits as a base-10 integer.
func (p PartNumber) Value() (uint64, error) {
	v, err := strconv.ParseUint(p.digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s: %w", p.digits, ErrValueOverflow)
		}
		return 0, fmt.Errorf("parsing part number %q: %w", p.digits, err)
	}
	return v, nil
}

func (p PartNumber) String() string {
	return p.digits
}

// Cell is one typed, located unit of a scanned grid.
type Cell struct {
	Span   Span
	Kind   CellKind
	Symbol rune       // set for KindSymbol
	Number PartNumber // set for KindNumber
}

// EmptyCell returns the cell for a '.' at p.
func EmptyCell(p Point) Cell {
	return Cell{Span: PointSpan(p), Kind: KindEmpty}
}

// SymbolCell returns the cell for symbol r at p.
func SymbolCell(p Point, r rune) Cell {
	return Cell{Span: PointSpan(p), Kind: KindSymbol, Symbol: r}
}

// NumberCell returns the cell for a digit run covering span.
func NumberCell(span Span, n PartNumber) Cell {
	return Cell{Span: span, Kind: KindNumber, Number: n}
}

// AdjacentTo reports whether the cells' spans touch in any of the eight
// directions without overlapping.
func (c Cell) AdjacentTo(other Cell) bool {
	return c.Span.Adjacent(other.Span)
}

// IsNumber reports whether the cell holds a digit run.
func (c Cell) IsNumber() bool {
	return c.Kind == KindNumber
}

// IsSymbol reports whether the cell holds a symbol character.
func (c Cell) IsSymbol() bool {
	return c.Kind == KindSymbol
}

// Text returns the characters the cell was scanned from.
func (c Cell) Text() string {
	switch c.Kind {
	case KindSymbol:
		return string(c.Symbol)
	case KindNumber:
		return c.Number.Digits()
	default:
		return "."
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("%s %q %s", c.Kind, c.Text(), c.Span)
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsSymbol reports whether r is scanned as a symbol: not a digit and not '.'.
func IsSymbol(r rune) bool {
	return r != '.' && !IsDigit(r)
}
