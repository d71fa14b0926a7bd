// cmd/tools/match-cli/io.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/models"
)

// readProfile loads and validates a profile from path, or stdin when path is "-".
func readProfile(cmd *cobra.Command, path string) (models.FounderProfile, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return models.FounderProfile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := profiles.DecodeProfile(raw)
	if err != nil {
		return models.FounderProfile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
