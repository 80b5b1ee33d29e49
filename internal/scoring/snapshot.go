// Package scoring holds the ranking strategies. Every function here is a pure
// transformation over an immutable Snapshot, so callers may run them from any
// goroutine without locking.
package scoring

import (
	"math"
	"strings"
	"time"

	"agenthub/internal/models"
)

const (
	recencyWindowDays = 30.0
	usageSaturation   = 100.0
	recencyWeight     = 0.3
	usageWeight       = 0.7
)

// Snapshot is a point-in-time, read-only view of the active catalog.
type Snapshot struct {
	items   []models.Item
	byID    map[string]int
	takenAt time.Time
}

// NewSnapshot annotates raw catalog items with their category and popularity
// as of now. The raw items are copied, never modified.
func NewSnapshot(raw []models.RawItem, now time.Time) *Snapshot {
	s := &Snapshot{
		items:   make([]models.Item, 0, len(raw)),
		byID:    make(map[string]int, len(raw)),
		takenAt: now,
	}
	for _, r := range raw {
		id := r.ID.Hex()
		if _, dup := s.byID[id]; dup {
			continue
		}
		tags := normalizeTags(r.Tags)
		s.byID[id] = len(s.items)
		s.items = append(s.items, models.Item{
			ID:              id,
			Name:            r.Name,
			Description:     r.Description,
			Tags:            tags,
			Category:        InferCategory(r.Name, r.Description, tags),
			CreatedAt:       r.CreatedAt,
			UsageCount:      r.UsageCount,
			PopularityScore: PopularityScore(r.CreatedAt, r.UsageCount, now),
		})
	}
	return s
}

// Items returns the snapshot's items in catalog order. The slice is a copy.
func (s *Snapshot) Items() []models.Item {
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Snapshot) Item(id string) (models.Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Item{}, false
	}
	return s.items[i], true
}

func (s *Snapshot) Len() int { return len(s.items) }

func (s *Snapshot) TakenAt() time.Time { return s.takenAt }

// RecencyScore decays linearly from 1 for a brand new item to 0 at 30 days old.
func RecencyScore(createdAt, now time.Time) float64 {
	days := now.Sub(createdAt).Hours() / 24
	score := math.Max(0, recencyWindowDays-days) / recencyWindowDays
	return math.Min(score, 1)
}

// UsageScore ramps linearly and saturates at 100 uses.
func UsageScore(usageCount int) float64 {
	if usageCount <= 0 {
		return 0
	}
	return math.Min(float64(usageCount)/usageSaturation, 1)
}

func PopularityScore(createdAt time.Time, usageCount int, now time.Time) float64 {
	return RecencyScore(createdAt, now)*recencyWeight + UsageScore(usageCount)*usageWeight
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
