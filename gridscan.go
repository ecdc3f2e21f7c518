// Package gridscan finds the part numbers of an engine schematic.
//
// A schematic is a grid of characters: digits, '.' for empty positions, and
// any other character as a symbol. Every horizontal run of digits is a
// number; a number is a part number when it touches a symbol horizontally,
// vertically, or diagonally. gridscan sums the part numbers.
//
// # Basic Usage
//
//	scanner, err := gridscan.NewScanner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := scanner.ScanFile("schematic.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Report.Sum)
//
// # With Verification
//
// Cross-check the span-based sum against a character-by-character scan:
//
//	scanner, err := gridscan.NewScanner(gridscan.WithVerification())
package gridscan

import (
	"fmt"
	"io"
	"strings"

	"github.com/praetorian-inc/gridscan/pkg/grid"
	"github.com/praetorian-inc/gridscan/pkg/input"
	"github.com/praetorian-inc/gridscan/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// Cell is one typed, located unit of a scanned grid.
	Cell = types.Cell

	// Span is the inclusive bounding box of a cell.
	Span = types.Span

	// GridID is the content hash of a grid's rows.
	GridID = types.GridID

	// Grid is the immutable cell sequence of a scanned input.
	Grid = grid.Grid

	// Report holds the sum, part numbers, and orphans of a grid.
	Report = grid.Report

	// Part is a number cell with the symbols it touches.
	Part = grid.Part
)

// Re-export sentinel errors.
var (
	ErrValueOverflow        = types.ErrValueOverflow
	ErrVerificationMismatch = grid.ErrVerificationMismatch
	ErrInvalidUTF8          = input.ErrInvalidUTF8
)

// Result is the outcome of scanning one input.
type Result struct {
	// ID identifies the grid's content.
	ID GridID
	// Path is the resolved file path, empty for in-memory input.
	Path string
	Grid *Grid
	// Report is never nil on success.
	Report *Report
	// Verified is true when the reference scan agreed with Report.Sum.
	Verified bool
}

// Scanner scans grids.
type Scanner struct {
	config *scannerConfig
}

type scannerConfig struct {
	root   string
	verify bool
}

// Option configures a Scanner.
type Option func(*scannerConfig)

// WithVerification cross-checks every sum against a brute-force
// 8-neighbour scan of the raw characters. A disagreement fails the scan
// with ErrVerificationMismatch.
func WithVerification() Option {
	return func(c *scannerConfig) {
		c.verify = true
	}
}

// WithRoot sets the directory relative file names are resolved against.
// If not specified, $GRIDSCAN_ROOT or the working directory is used.
func WithRoot(dir string) Option {
	return func(c *scannerConfig) {
		c.root = dir
	}
}

// NewScanner creates a new Scanner with the given options.
func NewScanner(opts ...Option) (*Scanner, error) {
	config := &scannerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	root, err := input.Root(config.root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	config.root = root

	return &Scanner{config: config}, nil
}

// Root returns the directory relative file names are resolved against.
func (s *Scanner) Root() string {
	return s.config.root
}

// VerificationEnabled returns whether sums are cross-checked.
func (s *Scanner) VerificationEnabled() bool {
	return s.config.verify
}

// ScanLines scans rows that have already been split.
func (s *Scanner) ScanLines(lines []string) (*Result, error) {
	g := grid.Parse(lines)

	report, err := grid.Analyze(g)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:     ComputeGridID(lines),
		Grid:   g,
		Report: report,
	}

	if s.config.verify {
		if err := grid.Verify(g, report); err != nil {
			return nil, err
		}
		result.Verified = true
	}

	return result, nil
}

// ScanString scans grid text. Lines may end in "\n" or "\r\n".
func (s *Scanner) ScanString(content string) (*Result, error) {
	return s.ScanReader(strings.NewReader(content))
}

// ScanReader reads every line from r once and scans them.
func (s *Scanner) ScanReader(r io.Reader) (*Result, error) {
	lines, err := input.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return s.ScanLines(lines)
}

// ScanFile resolves name against the scanner root, reads it, and scans it.
func (s *Scanner) ScanFile(name string) (*Result, error) {
	path := input.ResolvePath(s.config.root, name)

	lines, err := input.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := s.ScanLines(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Path = path
	return result, nil
}

// ComputeGridID hashes the rows joined by "\n", each row terminated, so
// "\r\n" and "\n" files with the same rows share an ID.
func ComputeGridID(lines []string) GridID {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return types.ComputeGridID([]byte(sb.String()))
}
