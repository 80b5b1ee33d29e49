package utils

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIndex creates a non-unique index on the specified collection and keys.
func CreateIndex(ctx context.Context, collection *mongo.Collection, keys interface{}, name string) error {
	indexModel := mongo.IndexModel{Keys: keys}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index for %s: %w", name, err)
	}
	return nil
}
