package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	quiet    bool
	rootPath string
)

var rootCmd = &cobra.Command{
	Use:   "gridscan",
	Short: "Gridscan - sum the part numbers of an engine schematic",
	Long: `Gridscan reads a character grid, types every position as empty ('.'),
a symbol, or part of a number, and sums the numbers that touch a symbol
horizontally, vertically, or diagonally.

Relative file names are resolved against --root, $GRIDSCAN_ROOT, or the
working directory, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLogger(cmd.ErrOrStderr(), verbose, quiet)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", "", "Directory relative input paths are resolved against")

	// Add subcommands
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(cellsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
