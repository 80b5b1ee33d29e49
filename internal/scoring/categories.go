package scoring

import "strings"

const (
	CategoryEducation     = "学习教育"
	CategoryEntertainment = "娱乐休闲"
	CategoryWork          = "工作效率"
	CategoryCreative      = "创意设计"
	CategorySocial        = "社交互动"
	CategoryGeneral       = "通用"
)

type categoryRule struct {
	name     string
	keywords []string
}

// Evaluated in order; the first rule with a matching keyword wins.
// Keywords must be lower case.
var categoryRules = []categoryRule{
	{name: CategoryEducation, keywords: []string{"学习", "教育", "课程", "知识", "考试", "edu", "learn", "study", "quiz", "tutor"}},
	{name: CategoryEntertainment, keywords: []string{"娱乐", "游戏", "音乐", "电影", "笑话", "game", "music", "movie", "entertainment"}},
	{name: CategoryWork, keywords: []string{"工作", "办公", "效率", "助手", "职场", "work", "office", "productivity", "assistant"}},
	{name: CategoryCreative, keywords: []string{"创意", "设计", "写作", "绘画", "创作", "creative", "design", "writing", "drawing"}},
	{name: CategorySocial, keywords: []string{"社交", "聊天", "交友", "情感", "social", "chat", "friend", "dating"}},
}

// InferCategory derives a category from an item's tags, description and name.
// It is a heuristic label, not an authoritative one.
func InferCategory(name, description string, tags []string) string {
	text := strings.ToLower(strings.Join(tags, " ") + " " + description + " " + name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.name
			}
		}
	}
	return CategoryGeneral
}

// Categories lists every category InferCategory can produce, in priority order.
func Categories() []string {
	names := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		names = append(names, rule.name)
	}
	return append(names, CategoryGeneral)
}

func IsKnownCategory(category string) bool {
	if category == CategoryGeneral {
		return true
	}
	for _, rule := range categoryRules {
		if rule.name == category {
			return true
		}
	}
	return false
}
