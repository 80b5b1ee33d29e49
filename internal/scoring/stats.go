package scoring

import (
	"sort"

	"agenthub/internal/models"
)

const topTagCount = 20

// Aggregate counts categories and tags across the snapshot. TotalItems is left
// for the caller, since the snapshot only holds active items.
func Aggregate(s *Snapshot) models.CatalogStats {
	categoryCounts := make(map[string]int)
	tagCounts := make(map[string]int)
	for _, item := range s.items {
		categoryCounts[item.Category]++
		for _, tag := range item.Tags {
			tagCounts[tag]++
		}
	}

	categories := make([]models.CategoryCount, 0, len(categoryCounts))
	for name, count := range categoryCounts {
		categories = append(categories, models.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})

	tags := make([]models.TagCount, 0, len(tagCounts))
	for tag, count := range tagCounts {
		tags = append(tags, models.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if len(tags) > topTagCount {
		tags = tags[:topTagCount]
	}

	return models.CatalogStats{
		ActiveItems: len(s.items),
		Categories:  categories,
		TopTags:     tags,
		GeneratedAt: s.takenAt,
	}
}
