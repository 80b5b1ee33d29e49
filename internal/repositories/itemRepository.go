package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"agenthub/internal/database"
	"agenthub/internal/models"
	"agenthub/internal/utils"
)

const itemsCollection = "agents"

// ItemRepository is the read side of the agent catalog.
type ItemRepository interface {
	// ListActiveItems returns every active, public, non-deleted item.
	ListActiveItems(ctx context.Context) ([]models.RawItem, error)
	// CountItems counts all non-deleted items, active or not.
	CountItems(ctx context.Context) (int64, error)
}

type itemRepository struct {
	db database.Service
}

func NewItemRepository(db database.Service) ItemRepository {
	return &itemRepository{db: db}
}

func activeItemsFilter() bson.M {
	return bson.M{
		"is_active":  true,
		"is_public":  bson.M{"$ne": false},
		"is_deleted": bson.M{"$ne": true},
	}
}

func (r *itemRepository) ListActiveItems(ctx context.Context) ([]models.RawItem, error) {
	queryType := "listActive"
	repository := "item"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Database().Collection(itemsCollection)
	cursor, err := collection.Find(ctx, activeItemsFilter())
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to find active items")
		return nil, fmt.Errorf("failed to find active items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.RawItem{}
	if err := cursor.All(ctx, &items); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to decode active items")
		return nil, fmt.Errorf("failed to decode active items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) CountItems(ctx context.Context) (int64, error) {
	queryType := "count"
	repository := "item"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Database().Collection(itemsCollection)
	count, err := collection.CountDocuments(ctx, bson.M{"is_deleted": bson.M{"$ne": true}})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}
