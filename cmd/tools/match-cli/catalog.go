// cmd/tools/match-cli/catalog.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"idea-match-workers/internal/matching"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in idea catalog",
	RunE:  runCatalog,
}

var catalogJSON bool

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print full templates as JSON")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	ideas := matching.DefaultCatalog().All()
	if catalogJSON {
		return writeJSON(cmd, ideas)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tRISK\tCOMPLEXITY\tCAPITAL\tTITLE")
	for _, idea := range ideas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			idea.ID, idea.Category, idea.RiskLevel, idea.ExecutionComplexity, idea.CapitalNeeded, idea.Title)
	}
	return w.Flush()
}
