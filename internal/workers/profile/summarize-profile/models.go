// internal/workers/profile/summarize-profile/models.go
package summarizeprofile

import (
	"encoding/json"

	"idea-match-workers/internal/models"
)

type Input struct {
	UserID  string          `json:"userId,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

type Output struct {
	Summary models.FounderProfileSummary `json:"summary"`
}
