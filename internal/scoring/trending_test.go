package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenthub/internal/models"
)

func TestTrendingPicksFreshHeavilyUsedItem(t *testing.T) {
	a := rawItem("A", "", testNow, 200)
	b := rawItem("B", "", daysAgo(40), 0)
	snap := NewSnapshot([]models.RawItem{b, a}, testNow)

	got := Trending(snap, 1)

	require.Len(t, got, 1)
	assert.Equal(t, a.ID.Hex(), got[0].Item.ID)
	assert.InDelta(t, 100.0, got[0].Score, 1e-9)
	assert.Equal(t, models.StrategyTrending, got[0].StrategyTag)
	assert.Contains(t, got[0].Reason, "200")
}

func TestTrendingUsageAmplifiesBeyondSaturation(t *testing.T) {
	// Both saturate the usage score; the raw count still separates them.
	low := rawItem("low", "", daysAgo(60), 150)
	high := rawItem("high", "", daysAgo(60), 900)
	snap := NewSnapshot([]models.RawItem{low, high}, testNow)

	got := Trending(snap, 2)

	assert.Equal(t, []string{high.ID.Hex(), low.ID.Hex()}, resultIDs(got))
	assert.Equal(t, got[0].Score, got[1].Score)
}

func TestTrendingIsStable(t *testing.T) {
	raw := []models.RawItem{
		rawItem("x", "", daysAgo(50), 0),
		rawItem("y", "", daysAgo(50), 0),
		rawItem("z", "", daysAgo(50), 0),
	}
	snap := NewSnapshot(raw, testNow)

	got := Trending(snap, 10)

	assert.Equal(t, []string{raw[0].ID.Hex(), raw[1].ID.Hex(), raw[2].ID.Hex()}, resultIDs(got))
}

func TestTrendingLimits(t *testing.T) {
	snap := NewSnapshot([]models.RawItem{rawItem("x", "", testNow, 1)}, testNow)

	assert.Empty(t, Trending(snap, 0))
	assert.Empty(t, Trending(snap, -3))
	assert.Len(t, Trending(snap, 5), 1)
	assert.NotNil(t, Trending(NewSnapshot(nil, testNow), 5))
}

func TestByCategory(t *testing.T) {
	quiz := rawItem("Quiz master", "", daysAgo(20), 5, "edu")
	tutor := rawItem("Tutor", "", testNow, 80, "edu")
	game := rawItem("Arcade", "", testNow, 100, "game")
	snap := NewSnapshot([]models.RawItem{quiz, game, tutor}, testNow)

	got := ByCategory(snap, CategoryEducation, 10)

	assert.Equal(t, []string{tutor.ID.Hex(), quiz.ID.Hex()}, resultIDs(got))
	for _, r := range got {
		assert.Equal(t, models.StrategyCategory, r.StrategyTag)
		assert.Equal(t, CategoryEducation, r.Item.Category)
	}

	assert.Len(t, ByCategory(snap, CategoryEducation, 1), 1)
	assert.Empty(t, ByCategory(snap, CategorySocial, 10))
	assert.Empty(t, ByCategory(snap, "nope", 10))
	assert.Empty(t, ByCategory(snap, "", 10))
}
