package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"agenthub/internal/models"
)

// BreakerSettings configures the circuit breakers placed in front of the
// upstream stores. Once MaxFailures consecutive calls fail, calls fail fast
// with gobreaker.ErrOpenState until OpenTimeout has passed.
type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

func newBreaker[T any](name string, cfg BreakerSettings) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
		},
		IsSuccessful: isUpstreamHealthy,
	})
}

// Caller mistakes and cancellations say nothing about the store's health.
func isUpstreamHealthy(err error) bool {
	return err == nil ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, context.Canceled)
}

type breakingItemRepository struct {
	inner ItemRepository
	list  *gobreaker.CircuitBreaker[[]models.RawItem]
	count *gobreaker.CircuitBreaker[int64]
}

// NewBreakingItemRepository wraps inner so that a failing catalog fails fast.
func NewBreakingItemRepository(inner ItemRepository, cfg BreakerSettings) ItemRepository {
	return &breakingItemRepository{
		inner: inner,
		list:  newBreaker[[]models.RawItem]("catalog-list", cfg),
		count: newBreaker[int64]("catalog-count", cfg),
	}
}

func (r *breakingItemRepository) ListActiveItems(ctx context.Context) ([]models.RawItem, error) {
	return r.list.Execute(func() ([]models.RawItem, error) {
		return r.inner.ListActiveItems(ctx)
	})
}

func (r *breakingItemRepository) CountItems(ctx context.Context) (int64, error) {
	return r.count.Execute(func() (int64, error) {
		return r.inner.CountItems(ctx)
	})
}

type breakingActivityRepository struct {
	inner ActivityRepository
	cb    *gobreaker.CircuitBreaker[[]models.ActivityEvent]
}

// NewBreakingActivityRepository wraps inner so that a failing history store
// fails fast; personalization then degrades without waiting on timeouts.
func NewBreakingActivityRepository(inner ActivityRepository, cfg BreakerSettings) ActivityRepository {
	return &breakingActivityRepository{
		inner: inner,
		cb:    newBreaker[[]models.ActivityEvent]("activity-history", cfg),
	}
}

func (r *breakingActivityRepository) ListRecentEvents(ctx context.Context, userID, eventType string, limit int64) ([]models.ActivityEvent, error) {
	return r.cb.Execute(func() ([]models.ActivityEvent, error) {
		return r.inner.ListRecentEvents(ctx, userID, eventType, limit)
	})
}
