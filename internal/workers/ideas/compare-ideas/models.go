// internal/workers/ideas/compare-ideas/models.go
package compareideas

import (
	"encoding/json"

	"idea-match-workers/internal/models"
)

type Input struct {
	UserID  string          `json:"userId,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
	IdeaIDs []string        `json:"ideaIds"`
}

// Comparison is one idea's breakdown, in the order the ideas were requested.
type Comparison struct {
	IdeaID     string               `json:"ideaId"`
	Title      string               `json:"title"`
	TotalScore int                  `json:"totalScore"`
	RawScore   int                  `json:"rawScore"`
	Factors    []models.MatchFactor `json:"factors"`
}

type Output struct {
	Comparisons []Comparison `json:"comparisons"`
	BestIdeaID  string       `json:"bestIdeaId"`
}
