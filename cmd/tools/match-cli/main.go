// cmd/tools/match-cli/main.go
// Package main implements match-cli, a local front end for the idea matching
// core and the activity registry.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "match-cli",
	Short:        "Score founder profiles against the idea catalog",
	Long:         "Runs the summarizer, matcher and breakdown against a founder profile JSON file, and maintains the activity registry used by the workers.",
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
