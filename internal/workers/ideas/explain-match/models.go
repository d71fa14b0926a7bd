// internal/workers/ideas/explain-match/models.go
package explainmatch

import (
	"encoding/json"

	"idea-match-workers/internal/models"
)

type Input struct {
	UserID  string          `json:"userId,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
	IdeaID  string          `json:"ideaId"`
}

type Output struct {
	IdeaID     string               `json:"ideaId"`
	Title      string               `json:"title"`
	Factors    []models.MatchFactor `json:"factors"`
	TotalScore int                  `json:"totalScore"`
	RawScore   int                  `json:"rawScore"`
}
