package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"agenthub/internal/metrics"
	"agenthub/internal/models"
	"agenthub/internal/repositories"
	"agenthub/internal/scoring"
)

var (
	// ErrCatalogUnavailable means the catalog could not be loaded. Callers
	// should treat it as "try again", never as "no results".
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrItemNotFound       = errors.New("item not found")
)

const (
	historyEventLimit = 50
	DefaultMixedLimit = 20
)

// RecommendationService defines the interface for recommendation business logic.
type RecommendationService interface {
	GetTrending(ctx context.Context, limit int) ([]models.RecommendationResult, error)
	GetByCategory(ctx context.Context, category string, limit int) ([]models.RecommendationResult, error)
	GetSimilar(ctx context.Context, itemID string, limit int, excludeIDs []string) ([]models.RecommendationResult, error)
	// GetPersonalized never fails; it degrades to trending instead.
	GetPersonalized(ctx context.Context, userID string, limit int) []models.RecommendationResult
	Search(ctx context.Context, query string, limit int) ([]models.RecommendationResult, error)
	GetMixed(ctx context.Context, req models.MixedRequest) (*models.MixedResponse, error)
	GetStats(ctx context.Context) (*models.CatalogStats, error)
	Categories() []string
}

// Options tunes the service. Zero values fall back to sane defaults.
type Options struct {
	CatalogTimeout time.Duration
	HistoryTimeout time.Duration
	SinkTimeout    time.Duration
	Now            func() time.Time
}

type recommendationServiceImpl struct {
	itemRepo     repositories.ItemRepository
	activityRepo repositories.ActivityRepository
	statsRepo    repositories.StatsRepository
	opts         Options
}

// NewRecommendationService creates a new RecommendationService. statsRepo may
// be nil, in which case stats are not forwarded anywhere.
func NewRecommendationService(itemRepo repositories.ItemRepository, activityRepo repositories.ActivityRepository, statsRepo repositories.StatsRepository, opts Options) RecommendationService {
	if opts.CatalogTimeout <= 0 {
		opts.CatalogTimeout = 5 * time.Second
	}
	if opts.HistoryTimeout <= 0 {
		opts.HistoryTimeout = 2 * time.Second
	}
	if opts.SinkTimeout <= 0 {
		opts.SinkTimeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &recommendationServiceImpl{
		itemRepo:     itemRepo,
		activityRepo: activityRepo,
		statsRepo:    statsRepo,
		opts:         opts,
	}
}

// loadSnapshot fetches the active catalog and freezes it. A failed fetch
// fails the caller; partial snapshots are never built.
func (s *recommendationServiceImpl) loadSnapshot(ctx context.Context) (*scoring.Snapshot, error) {
	timer := prometheus.NewTimer(metrics.CatalogSnapshotLoadSeconds)
	defer timer.ObserveDuration()

	ctx, cancel := context.WithTimeout(ctx, s.opts.CatalogTimeout)
	defer cancel()

	raw, err := s.itemRepo.ListActiveItems(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load catalog snapshot")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	snap := scoring.NewSnapshot(raw, s.opts.Now())
	metrics.CatalogSnapshotItems.Set(float64(snap.Len()))
	log.Debug().Int("count", snap.Len()).Msg("Catalog snapshot loaded")
	return snap, nil
}

func served(results []models.RecommendationResult, tag models.StrategyTag) []models.RecommendationResult {
	metrics.RecommendationsServedTotal.WithLabelValues(string(tag)).Add(float64(len(results)))
	return results
}

func (s *recommendationServiceImpl) GetTrending(ctx context.Context, limit int) ([]models.RecommendationResult, error) {
	log.Debug().Int("limit", limit).Msg("Attempting to retrieve trending items")
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	results := scoring.Trending(snap, limit)
	log.Info().Int("count", len(results)).Msg("Trending items retrieved successfully")
	return served(results, models.StrategyTrending), nil
}

func (s *recommendationServiceImpl) GetByCategory(ctx context.Context, category string, limit int) ([]models.RecommendationResult, error) {
	log.Debug().Str("category", category).Int("limit", limit).Msg("Attempting to retrieve items by category")
	if !scoring.IsKnownCategory(category) {
		log.Debug().Str("category", category).Msg("Unknown category requested")
		return []models.RecommendationResult{}, nil
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	results := scoring.ByCategory(snap, category, limit)
	log.Info().Str("category", category).Int("count", len(results)).Msg("Category items retrieved successfully")
	return served(results, models.StrategyCategory), nil
}

func (s *recommendationServiceImpl) GetSimilar(ctx context.Context, itemID string, limit int, excludeIDs []string) ([]models.RecommendationResult, error) {
	log.Debug().Str("itemID", itemID).Int("limit", limit).Msg("Attempting to retrieve similar items")
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	target, ok := snap.Item(itemID)
	if !ok {
		log.Warn().Str("itemID", itemID).Msg("Similarity target not found in catalog")
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	results := scoring.SimilarTo(snap, target, limit, scoring.IDSet(excludeIDs))
	log.Info().Str("itemID", itemID).Int("count", len(results)).Msg("Similar items retrieved successfully")
	return served(results, models.StrategyContentBased), nil
}

func (s *recommendationServiceImpl) GetPersonalized(ctx context.Context, userID string, limit int) []models.RecommendationResult {
	log.Debug().Str("userID", userID).Int("limit", limit).Msg("Attempting to build personalized recommendations")
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("Catalog unavailable, returning no personalized items")
		return []models.RecommendationResult{}
	}
	return served(s.personalize(ctx, snap, userID, limit), models.StrategyPersonalized)
}

// personalize runs the personalization engine over an already loaded snapshot.
func (s *recommendationServiceImpl) personalize(ctx context.Context, snap *scoring.Snapshot, userID string, limit int) []models.RecommendationResult {
	usedIDs, err := s.recentlyUsed(ctx, userID)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("userID", userID).Msg("History unavailable, falling back to trending")
		metrics.PersonalizationFallbackTotal.WithLabelValues("history_error").Inc()
	case len(usedIDs) == 0:
		log.Debug().Str("userID", userID).Msg("No usage history, falling back to trending")
		metrics.PersonalizationFallbackTotal.WithLabelValues("no_history").Inc()
	}

	results := scoring.Personalize(snap, usedIDs, limit)
	log.Info().Str("userID", userID).Int("count", len(results)).Msg("Personalized recommendations built successfully")
	return results
}

// recentlyUsed returns the distinct ids of items the user used, newest first.
func (s *recommendationServiceImpl) recentlyUsed(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.HistoryTimeout)
	defer cancel()

	events, err := s.activityRepo.ListRecentEvents(ctx, userID, models.EventTypeUsage, historyEventLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		id := e.ItemID.Hex()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *recommendationServiceImpl) Search(ctx context.Context, query string, limit int) ([]models.RecommendationResult, error) {
	log.Debug().Str("query", query).Int("limit", limit).Msg("Attempting to search items")
	if strings.TrimSpace(query) == "" {
		return []models.RecommendationResult{}, nil
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	results := scoring.Search(snap, query, limit)
	log.Info().Str("query", query).Int("count", len(results)).Msg("Search completed successfully")
	return served(results, models.StrategyContentBased), nil
}

// GetMixed blends trending, personalized and category buckets computed over a
// single snapshot. Buckets are not deduplicated against each other.
func (s *recommendationServiceImpl) GetMixed(ctx context.Context, req models.MixedRequest) (*models.MixedResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultMixedLimit
	}
	log.Debug().Str("userID", req.UserID).Str("category", req.Category).Int("limit", limit).Msg("Attempting to build mixed recommendations")

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	trendingQuota, personalizedQuota, categoryQuota := scoring.MixQuotas(limit, req.UserID != "", req.Category != "")
	resp := &models.MixedResponse{
		Trending:      []models.RecommendationResult{},
		Personalized:  []models.RecommendationResult{},
		CategoryBased: []models.RecommendationResult{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.Trending = scoring.Trending(snap, trendingQuota)
		return nil
	})
	if personalizedQuota > 0 {
		g.Go(func() error {
			resp.Personalized = s.personalize(gctx, snap, req.UserID, personalizedQuota)
			return nil
		})
	}
	if categoryQuota > 0 {
		g.Go(func() error {
			resp.CategoryBased = scoring.ByCategory(snap, req.Category, categoryQuota)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exclude := scoring.IDSet(req.ExcludeIDs)
	resp.Trending = served(scoring.ExcludeIDs(resp.Trending, exclude), models.StrategyTrending)
	resp.Personalized = served(scoring.ExcludeIDs(resp.Personalized, exclude), models.StrategyPersonalized)
	resp.CategoryBased = served(scoring.ExcludeIDs(resp.CategoryBased, exclude), models.StrategyCategory)
	resp.TotalCount = len(resp.Trending) + len(resp.Personalized) + len(resp.CategoryBased)

	log.Info().Str("userID", req.UserID).Int("count", resp.TotalCount).Msg("Mixed recommendations built successfully")
	return resp, nil
}

func (s *recommendationServiceImpl) GetStats(ctx context.Context) (*models.CatalogStats, error) {
	log.Debug().Msg("Attempting to aggregate catalog stats")
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	countCtx, cancel := context.WithTimeout(ctx, s.opts.CatalogTimeout)
	defer cancel()
	total, err := s.itemRepo.CountItems(countCtx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count catalog items")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	stats := scoring.Aggregate(snap)
	stats.TotalItems = total
	s.publishStats(stats)

	log.Info().Int64("totalItems", stats.TotalItems).Int("activeItems", stats.ActiveItems).Msg("Catalog stats aggregated successfully")
	return &stats, nil
}

// publishStats hands a copy of stats to the sink without waiting for it.
func (s *recommendationServiceImpl) publishStats(stats models.CatalogStats) {
	if s.statsRepo == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.SinkTimeout)
		defer cancel()
		if err := s.statsRepo.Save(ctx, &stats); err != nil {
			metrics.StatsSinkWritesTotal.WithLabelValues("error").Inc()
			log.Warn().Err(err).Msg("Failed to publish catalog stats")
			return
		}
		metrics.StatsSinkWritesTotal.WithLabelValues("success").Inc()
	}()
}

func (s *recommendationServiceImpl) Categories() []string {
	return scoring.Categories()
}
