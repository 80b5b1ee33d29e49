package scoring

import (
	"fmt"
	"sort"

	"agenthub/internal/models"
)

// ByCategory returns the most popular items whose inferred category matches.
// An unknown or empty category yields an empty list.
func ByCategory(s *Snapshot, category string, limit int) []models.RecommendationResult {
	results := []models.RecommendationResult{}
	if limit <= 0 || category == "" {
		return results
	}

	var matched []models.Item
	for _, item := range s.items {
		if item.Category == category {
			matched = append(matched, item)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PopularityScore > matched[j].PopularityScore
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	for _, item := range matched {
		results = append(results, models.RecommendationResult{
			Item:        item,
			Score:       item.PopularityScore * 100,
			Reason:      fmt.Sprintf("Popular in %s", category),
			StrategyTag: models.StrategyCategory,
		})
	}
	return results
}
