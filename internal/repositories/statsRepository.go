package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"agenthub/internal/database"
	"agenthub/internal/models"
	"agenthub/internal/utils"
)

const statsCollection = "catalog_stats"

// StatsRepository is the write-only sink for catalog statistics.
type StatsRepository interface {
	Save(ctx context.Context, stats *models.CatalogStats) error
}

type statsRepository struct {
	db database.Service
}

func NewStatsRepository(db database.Service) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Save(ctx context.Context, stats *models.CatalogStats) error {
	queryType := "create"
	repository := "stats"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Database().Collection(statsCollection)
	if _, err := collection.InsertOne(ctx, stats); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return fmt.Errorf("failed to save catalog stats: %w", err)
	}
	return nil
}
