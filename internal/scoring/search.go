package scoring

import (
	"fmt"
	"sort"
	"strings"

	"agenthub/internal/models"
)

const (
	nameMatchWeight        = 3
	descriptionMatchWeight = 2
	tagMatchWeight         = 2
	categoryMatchWeight    = 1
)

// Search ranks items by substring matches of each whitespace-separated query
// term. A blank query matches nothing.
//
// Score is relevance*10 and is not capped; only the percentage shown in
// Reason is capped at 100.
func Search(s *Snapshot, query string, limit int) []models.RecommendationResult {
	results := []models.RecommendationResult{}
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || limit <= 0 {
		return results
	}

	type scored struct {
		item      models.Item
		relevance int
	}
	var matched []scored
	for _, item := range s.items {
		if rel := Relevance(item, terms); rel > 0 {
			matched = append(matched, scored{item: item, relevance: rel})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].relevance > matched[j].relevance
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	for _, m := range matched {
		results = append(results, models.RecommendationResult{
			Item:        m.item,
			Score:       float64(m.relevance * 10),
			Reason:      fmt.Sprintf("Matches %q (%d%% relevance)", query, min(m.relevance*10, 100)),
			StrategyTag: models.StrategyContentBased,
		})
	}
	return results
}

// Relevance sums the weighted matches of lower-cased terms against item.
func Relevance(item models.Item, terms []string) int {
	name := strings.ToLower(item.Name)
	description := strings.ToLower(item.Description)
	tags := strings.ToLower(strings.Join(item.Tags, " "))
	category := strings.ToLower(item.Category)

	relevance := 0
	for _, term := range terms {
		if strings.Contains(name, term) {
			relevance += nameMatchWeight
		}
		if strings.Contains(description, term) {
			relevance += descriptionMatchWeight
		}
		if strings.Contains(tags, term) {
			relevance += tagMatchWeight
		}
		if strings.Contains(category, term) {
			relevance += categoryMatchWeight
		}
	}
	return relevance
}
