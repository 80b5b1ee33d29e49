package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"agenthub/internal/config"
	"agenthub/internal/database"
	"agenthub/internal/middlewares"
	"agenthub/internal/repositories"
	"agenthub/internal/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg                   *config.Config
	httpServer            *http.Server
	db                    database.Service
	limiter               *middlewares.RateLimiter
	recommendationService services.RecommendationService
}

// NewServer wires repositories, services and routes on top of an open database.
func NewServer(cfg *config.Config, db database.Service) *Server {
	breaker := repositories.BreakerSettings{
		MaxFailures: cfg.BreakerMaxFailures,
		OpenTimeout: cfg.BreakerOpenTimeout,
	}
	itemRepo := repositories.NewBreakingItemRepository(repositories.NewItemRepository(db), breaker)
	activityRepo := repositories.NewBreakingActivityRepository(repositories.NewActivityRepository(db), breaker)

	var statsRepo repositories.StatsRepository
	if cfg.StatsSinkEnabled {
		statsRepo = repositories.NewStatsRepository(db)
	}

	s := &Server{
		cfg:     cfg,
		db:      db,
		limiter: middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		recommendationService: services.NewRecommendationService(itemRepo, activityRepo, statsRepo, services.Options{
			CatalogTimeout: cfg.CatalogTimeout,
			HistoryTimeout: cfg.HistoryTimeout,
			SinkTimeout:    cfg.StatsTimeout,
		}),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go s.limiter.Cleanup(ctx, time.Minute)

	indexCtx, cancel := context.WithTimeout(ctx, s.cfg.CatalogTimeout)
	if err := repositories.EnsureIndexes(indexCtx, s.db); err != nil {
		log.Warn().Err(err).Msg("Could not ensure activity indexes")
	}
	cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", s.cfg.Port).Msg("Starting server")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
		return err
	}

	log.Info().Msg("Server exiting")
	return nil
}
