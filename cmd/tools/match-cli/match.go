// cmd/tools/match-cli/match.go
package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"idea-match-workers/internal/matching"
)

var errCatalogExhausted = errors.New("every catalog idea is excluded")

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Pick the best idea for a founder profile",
	RunE:  runMatch,
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "List every remaining idea ordered by score",
	RunE:  runRank,
}

var (
	matchProfile string
	matchExclude []string
	rankProfile  string
	rankExclude  []string
	rankLimit    int
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to founder profile JSON, or - for stdin (required)")
	matchCmd.Flags().StringSliceVarP(&matchExclude, "exclude", "x", nil, "Idea ids to skip")
	markRequired(matchCmd, "profile")

	rankCmd.Flags().StringVarP(&rankProfile, "profile", "p", "", "Path to founder profile JSON, or - for stdin (required)")
	rankCmd.Flags().StringSliceVarP(&rankExclude, "exclude", "x", nil, "Idea ids to skip")
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "Show at most n ideas (0 for all)")
	markRequired(rankCmd, "profile")

	rootCmd.AddCommand(matchCmd, rankCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	p, err := readProfile(cmd, matchProfile)
	if err != nil {
		return err
	}

	idea, ok := matching.DefaultMatcher().PickBestIdea(p, matching.Summarize(p), matching.ExcludeSet(matchExclude))
	if !ok {
		return errCatalogExhausted
	}
	return writeJSON(cmd, idea)
}

func runRank(cmd *cobra.Command, _ []string) error {
	p, err := readProfile(cmd, rankProfile)
	if err != nil {
		return err
	}

	ranked := matching.DefaultMatcher().Rank(p, matching.ExcludeSet(rankExclude))
	if len(ranked) == 0 {
		return errCatalogExhausted
	}
	if rankLimit > 0 && len(ranked) > rankLimit {
		ranked = ranked[:rankLimit]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tID\tSCORE\tRAW\tTITLE")
	for i, s := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", i+1, s.Idea.ID, s.Breakdown.TotalScore, s.Breakdown.RawScore, s.Idea.Title)
	}
	return w.Flush()
}
