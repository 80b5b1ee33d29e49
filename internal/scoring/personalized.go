package scoring

import (
	"sort"

	"agenthub/internal/models"
)

const (
	PersonalizedReason = "Based on your usage habits"

	recentSeedCount   = 3
	perSeedSimilarCap = 3
)

// Personalize builds a ranking from the items a user used most recently.
// usedIDs must be distinct and ordered newest first. The three most recent
// items that still exist in the snapshot seed content-similarity lookups; the
// remainder is padded from the trending order. Every result is relabeled as
// personalized, so with no usable history the output is Trending(s, limit)
// under a personalized label.
func Personalize(s *Snapshot, usedIDs []string, limit int) []models.RecommendationResult {
	if limit <= 0 {
		return []models.RecommendationResult{}
	}

	var seeds []models.Item
	for _, id := range usedIDs {
		if len(seeds) == recentSeedCount {
			break
		}
		if item, ok := s.Item(id); ok {
			seeds = append(seeds, item)
		}
	}

	exclude := idSet(usedIDs)
	var collected []models.RecommendationResult
	for _, seed := range seeds {
		for _, r := range SimilarTo(s, seed, perSeedSimilarCap, exclude) {
			collected = append(collected, r)
			exclude[r.Item.ID] = struct{}{}
		}
	}

	results := dedupe(collected)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	if len(results) < limit {
		present := make(map[string]struct{}, len(results))
		for _, r := range results {
			present[r.Item.ID] = struct{}{}
		}
		for _, item := range trendingOrder(s) {
			if len(results) == limit {
				break
			}
			if _, ok := present[item.ID]; ok {
				continue
			}
			results = append(results, trendingResult(item))
		}
	}

	return Relabel(results)
}

// Relabel rewrites reason and strategy of every result to the personalized
// presentation. The input slice is not modified.
func Relabel(results []models.RecommendationResult) []models.RecommendationResult {
	out := make([]models.RecommendationResult, len(results))
	for i, r := range results {
		r.Reason = PersonalizedReason
		r.StrategyTag = models.StrategyPersonalized
		out[i] = r
	}
	return out
}

// dedupe keeps the first occurrence of each item id.
func dedupe(results []models.RecommendationResult) []models.RecommendationResult {
	seen := make(map[string]struct{}, len(results))
	out := make([]models.RecommendationResult, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.Item.ID]; ok {
			continue
		}
		seen[r.Item.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
