package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		description string
		tags        []string
		want        string
	}{
		{"education tag", "Helper", "", []string{"EDU"}, CategoryEducation},
		{"entertainment in description", "Buddy", "recommends a movie for tonight", nil, CategoryEntertainment},
		{"work from name", "工作助手", "", nil, CategoryWork},
		{"creative", "Poet", "creative writing partner", nil, CategoryCreative},
		{"social", "Pal", "", []string{"聊天"}, CategorySocial},
		{"fallback", "Thing", "does stuff", []string{"misc"}, CategoryGeneral},
		{"priority education before work", "学习助手", "", nil, CategoryEducation},
		{"priority entertainment before social", "Chat", "", []string{"game"}, CategoryEntertainment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.itemName, tt.description, tt.tags))
		})
	}
}

func TestCategories(t *testing.T) {
	got := Categories()
	assert.Equal(t, []string{CategoryEducation, CategoryEntertainment, CategoryWork, CategoryCreative, CategorySocial, CategoryGeneral}, got)
	for _, c := range got {
		assert.True(t, IsKnownCategory(c))
	}
	assert.False(t, IsKnownCategory("unknown"))
	assert.False(t, IsKnownCategory(""))
}
