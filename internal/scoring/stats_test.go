package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenthub/internal/models"
)

func TestAggregate(t *testing.T) {
	raw := []models.RawItem{
		rawItem("Quiz", "", testNow, 1, "edu", "fun"),
		rawItem("Tutor", "", testNow, 1, "edu"),
		rawItem("Arcade", "", testNow, 1, "game", "fun"),
		rawItem("Thing", "", testNow, 1),
	}
	snap := NewSnapshot(raw, testNow)

	stats := Aggregate(snap)

	assert.Equal(t, 4, stats.ActiveItems)
	assert.Equal(t, testNow, stats.GeneratedAt)
	assert.Equal(t, []models.CategoryCount{
		{Name: CategoryEducation, Count: 2},
		{Name: CategoryEntertainment, Count: 1},
		{Name: CategoryGeneral, Count: 1},
	}, stats.Categories)
	assert.Equal(t, []models.TagCount{
		{Tag: "edu", Count: 2},
		{Tag: "fun", Count: 2},
		{Tag: "game", Count: 1},
	}, stats.TopTags)
}

func TestAggregateKeepsTopTwentyTags(t *testing.T) {
	var raw []models.RawItem
	for i := 0; i < 30; i++ {
		tags := []string{fmt.Sprintf("tag%02d", i)}
		if i < 5 {
			tags = append(tags, "common")
		}
		raw = append(raw, rawItem(fmt.Sprintf("item%d", i), "", testNow, 0, tags...))
	}

	stats := Aggregate(NewSnapshot(raw, testNow))

	require.Len(t, stats.TopTags, 20)
	assert.Equal(t, models.TagCount{Tag: "common", Count: 5}, stats.TopTags[0])
	for i := 1; i < len(stats.TopTags); i++ {
		assert.GreaterOrEqual(t, stats.TopTags[i-1].Count, stats.TopTags[i].Count)
	}
}
