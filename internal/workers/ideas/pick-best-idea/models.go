// internal/workers/ideas/pick-best-idea/models.go
package pickbestidea

import (
	"encoding/json"

	"idea-match-workers/internal/models"
)

// Input carries the founder either by userId or inline. Dismissed ideas
// stored for userId are excluded on top of ExcludedIDs.
type Input struct {
	UserID      string                        `json:"userId,omitempty"`
	Profile     json.RawMessage               `json:"profile,omitempty"`
	Summary     *models.FounderProfileSummary `json:"summary,omitempty"`
	ExcludedIDs []string                      `json:"excludedIds,omitempty"`
}

type Output struct {
	Idea            *models.BusinessIdea `json:"idea,omitempty"`
	GeneratedIdeaID string               `json:"generatedIdeaId,omitempty"`
	Exhausted       bool                 `json:"exhausted"`
	Remaining       int                  `json:"remaining"`
}
