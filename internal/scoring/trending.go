package scoring

import (
	"fmt"
	"sort"

	"agenthub/internal/models"
)

// Trending ranks items by popularity, with raw usage count as a secondary amplifier.
func Trending(s *Snapshot, limit int) []models.RecommendationResult {
	if limit <= 0 {
		return []models.RecommendationResult{}
	}
	ranked := trendingOrder(s)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	results := make([]models.RecommendationResult, 0, len(ranked))
	for _, item := range ranked {
		results = append(results, trendingResult(item))
	}
	return results
}

// trendingOrder returns every item in trending order. Ties keep snapshot order.
func trendingOrder(s *Snapshot) []models.Item {
	ranked := s.Items()
	sort.SliceStable(ranked, func(i, j int) bool {
		return trendingKey(ranked[i]) > trendingKey(ranked[j])
	})
	return ranked
}

func trendingKey(item models.Item) float64 {
	return item.PopularityScore + float64(item.UsageCount)*0.01
}

func trendingResult(item models.Item) models.RecommendationResult {
	return models.RecommendationResult{
		Item:        item,
		Score:       item.PopularityScore * 100,
		Reason:      fmt.Sprintf("Trending: used %d times", item.UsageCount),
		StrategyTag: models.StrategyTrending,
	}
}
