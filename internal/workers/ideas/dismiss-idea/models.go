// internal/workers/ideas/dismiss-idea/models.go
package dismissidea

type Input struct {
	UserID string `json:"userId"`
	IdeaID string `json:"ideaId"`
}

type Output struct {
	DismissedIDs []string `json:"dismissedIds"`
	Remaining    int      `json:"remaining"`
	Exhausted    bool     `json:"exhausted"`
}
