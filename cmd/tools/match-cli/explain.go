// cmd/tools/match-cli/explain.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"idea-match-workers/internal/matching"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show the factor breakdown for one idea",
	RunE:  runExplain,
}

var (
	explainProfile string
	explainIdea    string
)

func init() {
	explainCmd.Flags().StringVarP(&explainProfile, "profile", "p", "", "Path to founder profile JSON, or - for stdin (required)")
	explainCmd.Flags().StringVarP(&explainIdea, "idea", "i", "", "Catalog idea id (required)")
	markRequired(explainCmd, "profile", "idea")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	idea, ok := matching.DefaultCatalog().Lookup(explainIdea)
	if !ok {
		return fmt.Errorf("unknown idea id %q", explainIdea)
	}

	p, err := readProfile(cmd, explainProfile)
	if err != nil {
		return err
	}
	return writeJSON(cmd, matching.Breakdown(p, idea))
}
