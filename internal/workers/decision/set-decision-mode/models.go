// internal/workers/decision/set-decision-mode/models.go
package setdecisionmode

import "idea-match-workers/internal/models"

type Input struct {
	UserID string              `json:"userId"`
	IdeaID string              `json:"ideaId,omitempty"`
	Mode   models.DecisionMode `json:"mode"`
}

type Output struct {
	DecisionID  string              `json:"decisionId"`
	Mode        models.DecisionMode `json:"mode"`
	IdeaID      string              `json:"ideaId,omitempty"`
	CommittedAt string              `json:"committedAt,omitempty"`
	EventID     string              `json:"eventId,omitempty"`
}
