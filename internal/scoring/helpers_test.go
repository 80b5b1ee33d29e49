package scoring

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agenthub/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return testNow.AddDate(0, 0, -d)
}

func rawItem(name, description string, createdAt time.Time, usage int, tags ...string) models.RawItem {
	return models.RawItem{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Tags:        tags,
		UsageCount:  usage,
		CreatedAt:   createdAt,
		IsActive:    true,
		IsPublic:    true,
	}
}

func resultIDs(results []models.RecommendationResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Item.ID
	}
	return ids
}
