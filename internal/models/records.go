// internal/models/records.go
package models

// SavedIdea is the document stored in the saved-ideas table and search index.
type SavedIdea struct {
	ID         string `json:"savedIdeaId"`
	UserID     string `json:"userId"`
	IdeaID     string `json:"ideaId"`
	Title      string `json:"title"`
	Tagline    string `json:"tagline"`
	Category   string `json:"category"`
	Note       string `json:"note,omitempty"`
	Collection string `json:"collection,omitempty"`
	SavedAt    string `json:"savedAt"`
}

type DecisionMode string

const (
	DecisionExploring DecisionMode = "exploring"
	DecisionCommitted DecisionMode = "committed"
)

type Decision struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	IdeaID      string       `json:"ideaId,omitempty"`
	Mode        DecisionMode `json:"mode"`
	CommittedAt string       `json:"committedAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt"`
}
