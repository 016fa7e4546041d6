package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "statements-tracker",
	Short: "Extract account numbers and closing values from custodian statement PDFs",
	Long: `statements-tracker scans a directory of custodian statement PDFs,
classifies each document's institution layout, extracts the account number
(from the filename) and closing value (from the statement pages), and
writes an XLSX summary workbook plus a console report.

Documents that are missing a field are never dropped: they appear in the
report as NEEDS_REVIEW with the specific missing fields listed.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
