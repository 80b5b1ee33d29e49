package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RawItem is an agent document as stored in the catalog.
type RawItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Tags        []string           `json:"tags" bson:"tags"`
	UsageCount  int                `json:"usage_count" bson:"usage_count"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	IsPublic    bool               `json:"is_public" bson:"is_public"`
	IsDeleted   bool               `json:"is_deleted" bson:"is_deleted"`
}

// Item is a catalog entry annotated with the signals derived when a snapshot is built.
// Category and PopularityScore are never persisted.
type Item struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Tags            []string  `json:"tags"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at"`
	UsageCount      int       `json:"usage_count"`
	PopularityScore float64   `json:"popularity_score"`
}
