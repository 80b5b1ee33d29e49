package scoring

import "agenthub/internal/models"

// MixQuotas splits limit between the mixed buckets: ceil(40%) trending,
// ceil(40%) personalized and ceil(20%) category, counting only the buckets that
// are enabled. Rounding up can overshoot limit for small limits, so the excess
// is taken back from category, then personalized, then trending.
func MixQuotas(limit int, withPersonalized, withCategory bool) (trending, personalized, category int) {
	if limit <= 0 {
		return 0, 0, 0
	}
	trending = (limit*2 + 4) / 5
	if withPersonalized {
		personalized = (limit*2 + 4) / 5
	}
	if withCategory {
		category = (limit + 4) / 5
	}

	excess := trending + personalized + category - limit
	for _, q := range []*int{&category, &personalized, &trending} {
		if excess <= 0 {
			break
		}
		cut := min(*q, excess)
		*q -= cut
		excess -= cut
	}
	return trending, personalized, category
}

// ExcludeIDs drops every result whose item id is in exclude, preserving order.
func ExcludeIDs(results []models.RecommendationResult, exclude map[string]struct{}) []models.RecommendationResult {
	out := make([]models.RecommendationResult, 0, len(results))
	for _, r := range results {
		if _, skip := exclude[r.Item.ID]; skip {
			continue
		}
		out = append(out, r)
	}
	return out
}

func IDSet(ids []string) map[string]struct{} {
	return idSet(ids)
}
