// internal/workers/saved/search-saved-ideas/query.go
package searchsavedideas

// buildQuery scopes every search to one user. Free text is matched against
// the idea and the founder's note; without text the newest saves come first.
func buildQuery(input *Input) map[string]interface{} {
	filters := []interface{}{
		map[string]interface{}{"term": map[string]interface{}{"userId": input.UserID}},
	}
	if input.Collection != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"collection": input.Collection},
		})
	}

	boolQuery := map[string]interface{}{"filter": filters}
	query := map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	}

	if input.Query != "" {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":  input.Query,
					"fields": []string{"title^3", "tagline^2", "note", "category"},
					"type":   "best_fields",
				},
			},
		}
	} else {
		query["sort"] = []interface{}{
			map[string]interface{}{"savedAt": map[string]interface{}{"order": "desc"}},
		}
	}
	return query
}
