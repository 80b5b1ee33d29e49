package models

import "time"

type CategoryCount struct {
	Name  string `json:"name" bson:"name"`
	Count int    `json:"count" bson:"count"`
}

type TagCount struct {
	Tag   string `json:"tag" bson:"tag"`
	Count int    `json:"count" bson:"count"`
}

// CatalogStats summarises a snapshot for reporting. It plays no part in ranking.
type CatalogStats struct {
	TotalItems  int64           `json:"total_items" bson:"total_items"`
	ActiveItems int             `json:"active_items" bson:"active_items"`
	Categories  []CategoryCount `json:"categories" bson:"categories"`
	TopTags     []TagCount      `json:"top_tags" bson:"top_tags"`
	GeneratedAt time.Time       `json:"generated_at" bson:"generated_at"`
}
