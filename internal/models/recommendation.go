package models

type StrategyTag string

const (
	StrategyTrending      StrategyTag = "trending"
	StrategyPersonalized  StrategyTag = "personalized"
	StrategyCategory      StrategyTag = "category"
	StrategyContentBased  StrategyTag = "content_based"
	StrategyCollaborative StrategyTag = "collaborative"
)

// RecommendationResult is one scored suggestion. Score is only comparable
// between results carrying the same StrategyTag.
type RecommendationResult struct {
	Item        Item        `json:"item"`
	Score       float64     `json:"score"`
	Reason      string      `json:"reason"`
	StrategyTag StrategyTag `json:"strategy_tag"`
}

type MixedRequest struct {
	UserID     string   `json:"user_id,omitempty"`
	Category   string   `json:"category,omitempty"`
	Limit      int      `json:"limit" validate:"min=0,max=100"`
	ExcludeIDs []string `json:"exclude_ids,omitempty" validate:"max=500"`
}

type MixedResponse struct {
	Trending      []RecommendationResult `json:"trending"`
	Personalized  []RecommendationResult `json:"personalized"`
	CategoryBased []RecommendationResult `json:"category_based"`
	TotalCount    int                    `json:"total_count"`
}
