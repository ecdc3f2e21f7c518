package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/praetorian-inc/gridscan"
	"github.com/praetorian-inc/gridscan/pkg/sarif"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatPlain = "plain"
	formatHuman = "human"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatSARIF = "sarif"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format: %s (want one of %s)", format, strings.Join(allowed, ", "))
}

// styles holds color formatters for human output
type styles struct {
	heading *color.Color
	id      *color.Color
	part    *color.Color
	orphan  *color.Color
	symbol  *color.Color
	sum     *color.Color
}

// newStyles creates color formatters; enabled=false strips all colors.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		id:      color.New(color.FgHiGreen),
		part:    color.New(color.Bold, color.FgHiBlue),
		orphan:  color.New(color.FgYellow),
		symbol:  color.New(color.FgHiMagenta),
		sum:     color.New(color.Bold, color.FgHiWhite),
	}

	if !enabled {
		for _, c := range []*color.Color{s.heading, s.id, s.part, s.orphan, s.symbol, s.sum} {
			c.DisableColor()
		}
	}

	return s
}

// colorEnabled resolves --color: "always", "never", or "auto" (stdout is a
// terminal and NO_COLOR is unset).
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func writePlain(out io.Writer, results []*gridscan.Result) error {
	for _, r := range results {
		if len(results) == 1 {
			fmt.Fprintf(out, "%d\n", r.Report.Sum)
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", r.Path, r.Report.Sum)
	}
	return nil
}

func writeHuman(out io.Writer, results []*gridscan.Result, s *styles) error {
	for i, r := range results {
		fmt.Fprintf(out, "%s (%s %s)\n",
			s.heading.Sprintf("Grid %d/%d", i+1, len(results)),
			s.heading.Sprint("id"),
			s.id.Sprint(r.ID.Short()))
		fmt.Fprintf(out, "%s %s\n", s.heading.Sprint("File:"), r.Path)
		fmt.Fprintf(out, "%s %d rows x %d columns\n", s.heading.Sprint("Size:"), r.Grid.Rows(), r.Grid.Width())

		for j, p := range r.Report.Parts {
			symbols := make([]string, 0, len(p.Symbols))
			for _, sym := range p.Symbols {
				symbols = append(symbols, s.symbol.Sprint(sym.Text()))
			}
			fmt.Fprintf(out, "    %s %s at %s touches %s\n",
				s.heading.Sprintf("Part %d/%d:", j+1, len(r.Report.Parts)),
				s.part.Sprint(p.Value),
				formatPosition(p),
				strings.Join(symbols, " "))
		}
		for j, p := range r.Report.Orphans {
			fmt.Fprintf(out, "    %s %s at %s\n",
				s.heading.Sprintf("Orphan %d/%d:", j+1, len(r.Report.Orphans)),
				s.orphan.Sprint(p.Cell.Text()),
				formatPosition(p))
		}

		verified := ""
		if r.Verified {
			verified = " (verified)"
		}
		fmt.Fprintf(out, "%s %s%s\n\n", s.heading.Sprint("Sum:"), s.sum.Sprint(r.Report.Sum), verified)
	}
	return nil
}

// formatPosition renders a span as 1-based line:column-line:column.
func formatPosition(p gridscan.Part) string {
	src := p.Cell.Span.Source()
	return fmt.Sprintf("%d:%d-%d:%d", src.Start.Line, src.Start.Column, src.End.Line, src.End.Column)
}

// partView is the serialized form of a number cell.
type partView struct {
	Value     uint64   `json:"value" yaml:"value"`
	Digits    string   `json:"digits" yaml:"digits"`
	Line      int      `json:"line" yaml:"line"`
	Column    int      `json:"column" yaml:"column"`
	EndColumn int      `json:"end_column" yaml:"end_column"`
	Symbols   []string `json:"symbols,omitempty" yaml:"symbols,omitempty"`
}

// sumView is the serialized form of one scanned file.
type sumView struct {
	File     string          `json:"file" yaml:"file"`
	GridID   gridscan.GridID `json:"grid_id" yaml:"grid_id"`
	Sum      uint64          `json:"sum" yaml:"sum"`
	Verified bool            `json:"verified" yaml:"verified"`
	Parts    []partView      `json:"parts" yaml:"parts"`
	Orphans  []partView      `json:"orphans" yaml:"orphans"`
}

func newPartView(p gridscan.Part) partView {
	src := p.Cell.Span.Source()
	v := partView{
		Value:     p.Value,
		Digits:    p.Cell.Text(),
		Line:      src.Start.Line,
		Column:    src.Start.Column,
		EndColumn: src.End.Column,
	}
	for _, sym := range p.Symbols {
		v.Symbols = append(v.Symbols, sym.Text())
	}
	return v
}

func sumViews(results []*gridscan.Result) []sumView {
	views := make([]sumView, 0, len(results))
	for _, r := range results {
		v := sumView{
			File:     r.Path,
			GridID:   r.ID,
			Sum:      r.Report.Sum,
			Verified: r.Verified,
			Parts:    []partView{},
			Orphans:  []partView{},
		}
		for _, p := range r.Report.Parts {
			v.Parts = append(v.Parts, newPartView(p))
		}
		for _, p := range r.Report.Orphans {
			v.Orphans = append(v.Orphans, newPartView(p))
		}
		views = append(views, v)
	}
	return views
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(out io.Writer, v any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}

func writeSARIF(out io.Writer, results []*gridscan.Result) error {
	report := sarif.NewReport()
	for _, r := range results {
		report.AddReport(r.Report, r.Path)
	}

	data, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("encoding sarif: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
