package main

import (
	"fmt"

	"github.com/praetorian-inc/gridscan"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	sumFormat string
	sumVerify bool
	sumColor  string
)

var sumCmd = &cobra.Command{
	Use:   "sum <file>...",
	Short: "Sum the part numbers of each grid file",
	Long: `Scan each grid file and print the sum of every number adjacent to a symbol.

Every file is scanned before anything is printed; one failing file fails
the whole run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSum,
}

func init() {
	sumCmd.Flags().StringVar(&sumFormat, "format", formatPlain, "Output format: plain, human, json, yaml, sarif")
	sumCmd.Flags().BoolVar(&sumVerify, "verify", false, "Cross-check each sum against a character-by-character scan")
	sumCmd.Flags().StringVar(&sumColor, "color", "auto", "Color output for human format: auto, always, never")
}

func runSum(cmd *cobra.Command, args []string) error {
	if err := checkFormat(sumFormat, formatPlain, formatHuman, formatJSON, formatYAML, formatSARIF); err != nil {
		return err
	}

	opts := []gridscan.Option{gridscan.WithRoot(rootPath)}
	if sumVerify {
		opts = append(opts, gridscan.WithVerification())
	}

	scanner, err := gridscan.NewScanner(opts...)
	if err != nil {
		return fmt.Errorf("creating scanner: %w", err)
	}

	results := make([]*gridscan.Result, 0, len(args))
	for _, name := range args {
		result, err := scanner.ScanFile(name)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", name, err)
		}
		logResult(result)
		results = append(results, result)
	}

	out := cmd.OutOrStdout()
	switch sumFormat {
	case formatHuman:
		return writeHuman(out, results, newStyles(colorEnabled(sumColor)))
	case formatJSON:
		return writeJSON(out, sumViews(results))
	case formatYAML:
		return writeYAML(out, sumViews(results))
	case formatSARIF:
		return writeSARIF(out, results)
	default:
		return writePlain(out, results)
	}
}

func logResult(result *gridscan.Result) {
	log := logrus.WithField("file", result.Path)

	if !result.Grid.Rectangular() {
		log.Warnf("grid is not rectangular: %d rows, widest row %d", result.Grid.Rows(), result.Grid.Width())
	}
	for _, p := range result.Report.Parts {
		log.Debugf("part number %d at %s", p.Value, p.Cell.Span)
	}
	for _, p := range result.Report.Orphans {
		log.Debugf("orphan number %s at %s", p.Cell.Text(), p.Cell.Span)
	}
	log.WithField("grid", result.ID.Short()).Infof("sum %d from %d part numbers", result.Report.Sum, len(result.Report.Parts))
}
