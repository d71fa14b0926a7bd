// cmd/tools/match-cli/summarize.go
package main

import (
	"github.com/spf13/cobra"

	"idea-match-workers/internal/matching"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a founder profile",
	RunE:  runSummarize,
}

var summarizeProfile string

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeProfile, "profile", "p", "", "Path to founder profile JSON, or - for stdin (required)")
	markRequired(summarizeCmd, "profile")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	p, err := readProfile(cmd, summarizeProfile)
	if err != nil {
		return err
	}
	return writeJSON(cmd, matching.Summarize(p))
}
