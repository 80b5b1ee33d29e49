package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agenthub/internal/utils"
)

type Service interface {
	Health() map[string]string
	Client() *mongo.Client
	Database() *mongo.Database
	Close(ctx context.Context) error
}

type service struct {
	db     *mongo.Client
	dbName string
}

func New(mongoURI, dbName string) (Service, error) {
	if mongoURI == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	opts := options.Client().ApplyURI(mongoURI).SetPoolMonitor(poolMonitor(dbName))
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	return &service{
		db:     client,
		dbName: dbName,
	}, nil
}

// poolMonitor mirrors the driver's connection pool into the db_connections_* gauges.
func poolMonitor(dbName string) *event.PoolMonitor {
	open := utils.DBConnectionsOpen.WithLabelValues(dbName)
	inUse := utils.DBConnectionsInUse.WithLabelValues(dbName)
	idle := utils.DBConnectionsIdle.WithLabelValues(dbName)
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionReady:
				open.Inc()
				idle.Inc()
			case event.ConnectionClosed:
				open.Dec()
				idle.Dec()
			case event.GetSucceeded:
				inUse.Inc()
				idle.Dec()
			case event.ConnectionReturned:
				inUse.Dec()
				idle.Inc()
			}
		},
	}
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := s.db.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
	}
}

func (s *service) Client() *mongo.Client {
	return s.db
}

func (s *service) Database() *mongo.Database {
	return s.db.Database(s.dbName)
}

func (s *service) Close(ctx context.Context) error {
	log.Info().Str("database", s.dbName).Msg("Disconnecting from MongoDB")
	return s.db.Disconnect(ctx)
}
