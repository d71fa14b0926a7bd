// internal/workers/saved/search-saved-ideas/models.go
package searchsavedideas

import "idea-match-workers/internal/models"

type Input struct {
	UserID     string `json:"userId"`
	Query      string `json:"query,omitempty"`
	Collection string `json:"collection,omitempty"`
	Size       int    `json:"size,omitempty"`
	From       int    `json:"from,omitempty"`
}

type Output struct {
	Results []models.SavedIdea `json:"results"`
	Total   int                `json:"total"`
}

// searchResponse is the part of the _search response we read.
type searchResponse struct {
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source models.SavedIdea `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}
