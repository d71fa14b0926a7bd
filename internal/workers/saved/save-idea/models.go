// internal/workers/saved/save-idea/models.go
package saveidea

type Input struct {
	UserID     string `json:"userId"`
	IdeaID     string `json:"ideaId"`
	Note       string `json:"note,omitempty"`
	Collection string `json:"collection,omitempty"`
}

type Output struct {
	SavedIdeaID string `json:"savedIdeaId"`
	SavedAt     string `json:"savedAt"`
}
