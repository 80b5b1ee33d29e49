package scoring

import (
	"fmt"
	"sort"

	"agenthub/internal/models"
)

const (
	sameCategoryWeight  = 0.4
	tagOverlapWeight    = 0.6
	similarityThreshold = 0.2
)

// Similarity scores candidate against target in [0,1]: a flat bonus for a shared
// category plus the tag overlap relative to the larger tag set.
func Similarity(target, candidate models.Item) float64 {
	var sim float64
	if candidate.Category == target.Category {
		sim = sameCategoryWeight
	}

	targetTags := idSet(target.Tags)
	shared := 0
	for _, t := range candidate.Tags {
		if _, ok := targetTags[t]; ok {
			shared++
		}
	}
	denom := max(len(targetTags), len(candidate.Tags), 1)
	return sim + float64(shared)/float64(denom)*tagOverlapWeight
}

// SimilarTo ranks items by content similarity to target. The target itself and
// any id in exclude never appear in the result.
func SimilarTo(s *Snapshot, target models.Item, limit int, exclude map[string]struct{}) []models.RecommendationResult {
	results := []models.RecommendationResult{}
	if limit <= 0 {
		return results
	}

	type scored struct {
		item models.Item
		sim  float64
	}
	var candidates []scored
	for _, item := range s.items {
		if item.ID == target.ID {
			continue
		}
		if _, skip := exclude[item.ID]; skip {
			continue
		}
		sim := Similarity(target, item)
		if sim <= similarityThreshold {
			continue
		}
		candidates = append(candidates, scored{item: item, sim: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].sim > candidates[j].sim
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	for _, c := range candidates {
		results = append(results, models.RecommendationResult{
			Item:        c.item,
			Score:       c.sim * 100,
			Reason:      fmt.Sprintf("Similar to %s (%.0f%% match)", target.Name, c.sim*100),
			StrategyTag: models.StrategyContentBased,
		})
	}
	return results
}
