package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agenthub/internal/database"
	"agenthub/internal/models"
	"agenthub/internal/utils"
)

const activityCollection = "activity_logs"

// ErrInvalidUserID is returned when a user id is not a valid ObjectID hex string.
var ErrInvalidUserID = errors.New("invalid user ID")

type ActivityRepository interface {
	// ListRecentEvents returns at most limit events of eventType for userID, newest first.
	ListRecentEvents(ctx context.Context, userID, eventType string, limit int64) ([]models.ActivityEvent, error)
}

type activityRepository struct {
	db database.Service
}

func NewActivityRepository(db database.Service) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListRecentEvents(ctx context.Context, userID, eventType string, limit int64) ([]models.ActivityEvent, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	}

	queryType := "listRecent"
	repository := "activity"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Database().Collection(activityCollection)
	filter := bson.M{"user_id": uid, "event_type": eventType}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve activity events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.ActivityEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding activity events: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the index that backs history lookups.
func EnsureIndexes(ctx context.Context, db database.Service) error {
	collection := db.Database().Collection(activityCollection)
	keys := bson.D{{Key: "user_id", Value: 1}, {Key: "event_type", Value: 1}, {Key: "created_at", Value: -1}}
	return utils.CreateIndex(ctx, collection, keys, "activity history")
}
