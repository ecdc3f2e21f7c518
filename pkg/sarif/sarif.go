package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/gridscan/pkg/grid"
)

// SARIF 2.1.0 constants
const (
	SchemaURI   = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version     = "2.1.0"
	ToolName    = "gridscan"
	ToolVersion = "0.1.0"
)

// Rule IDs reported by gridscan.
const (
	RulePartNumber   = "gridscan.part-number"
	RuleOrphanNumber = "gridscan.orphan-number"
)

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes one kind of result
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result represents a single located number
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range
type Region struct {
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn"`
	EndLine     int      `json:"endLine"`
	EndColumn   int      `json:"endColumn"`
	Snippet     *Snippet `json:"snippet,omitempty"`
}

// Snippet contains the number's digits
type Snippet struct {
	Text string `json:"text"`
}

// NewReport creates a new SARIF report with both gridscan rules registered.
func NewReport() *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules: []Rule{
							{
								ID:               RulePartNumber,
								Name:             "PartNumber",
								ShortDescription: ShortDescription{Text: "Number adjacent to at least one symbol"},
							},
							{
								ID:               RuleOrphanNumber,
								Name:             "OrphanNumber",
								ShortDescription: ShortDescription{Text: "Number adjacent to no symbol"},
							},
						},
					},
				},
				Results: []Result{},
			},
		},
	}
}

// AddReport adds every part number and orphan of a grid report.
func (r *Report) AddReport(report *grid.Report, filePath string) {
	for _, p := range report.Parts {
		r.AddPart(p, filePath)
	}
	for _, p := range report.Orphans {
		r.AddOrphan(p, filePath)
	}
}

// AddPart adds a part number result.
func (r *Report) AddPart(part grid.Part, filePath string) {
	symbols := make([]string, 0, len(part.Symbols))
	for _, s := range part.Symbols {
		symbols = append(symbols, s.Text())
	}
	msg := fmt.Sprintf("Part number %d touches %s", part.Value, strings.Join(symbols, " "))
	r.addResult(RulePartNumber, "note", msg, part, filePath)
}

// AddOrphan adds a result for a number that touches no symbol.
func (r *Report) AddOrphan(part grid.Part, filePath string) {
	msg := fmt.Sprintf("Number %s touches no symbol", part.Cell.Text())
	r.addResult(RuleOrphanNumber, "warning", msg, part, filePath)
}

func (r *Report) addResult(ruleID, level, msg string, part grid.Part, filePath string) {
	src := part.Cell.Span.Source()

	result := Result{
		RuleID: ruleID,
		Level:  level,
		Message: Message{
			Text: msg,
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(filePath),
					},
					Region: Region{
						StartLine:   src.Start.Line,
						StartColumn: src.Start.Column,
						EndLine:     src.End.Line,
						// SARIF end columns are exclusive
						EndColumn: src.End.Column + 1,
						Snippet:   &Snippet{Text: part.Cell.Text()},
					},
				},
			},
		},
	}

	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
