package model

// TipCategory 洞察建议的分类，只有四个合法值。
type TipCategory string

const (
	TipCategoryActivity   TipCategory = "activity"
	TipCategoryReflection TipCategory = "reflection"
	TipCategorySocial     TipCategory = "social"
	TipCategoryWellness   TipCategory = "wellness"
)

// Valid 校验是否为四个分类之一。
func (c TipCategory) Valid() bool {
	switch c {
	case TipCategoryActivity, TipCategoryReflection, TipCategorySocial, TipCategoryWellness:
		return true
	}
	return false
}

// Tip 单条可执行建议。
type Tip struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    TipCategory `json:"category"`
}

// MoodInsights AI 生成的当日洞察，仅存活于会话内，不落盘。
type MoodInsights struct {
	Summary string `json:"summary"`
	Tips    []Tip  `json:"tips"`
}

// 洞察来源标记，放进响应 meta 便于观察降级情况。
const (
	InsightSourceAI       = "ai"
	InsightSourceFallback = "fallback"
)

// fallbackInsights 固定降级文案。AI 调用失败时整包返回，不做局部拼装。
var fallbackInsights = MoodInsights{
	Summary: "I'm here for you. Taking a moment to acknowledge how you feel is the first step.",
	Tips: []Tip{
		{
			Title:       "Breathe Deeply",
			Description: "Take 5 deep breaths, focusing only on the air entering and leaving your body.",
			Category:    TipCategoryWellness,
		},
		{
			Title:       "Small Win",
			Description: "Complete one tiny task you've been putting off to feel a sense of accomplishment.",
			Category:    TipCategoryActivity,
		},
		{
			Title:       "Hydrate",
			Description: "Drink a glass of water. It's a simple act of self-care.",
			Category:    TipCategoryWellness,
		},
	},
}

// FallbackInsights 返回降级文案的副本，防止调用方改写常量。
func FallbackInsights() MoodInsights {
	out := fallbackInsights
	out.Tips = make([]Tip, len(fallbackInsights.Tips))
	copy(out.Tips, fallbackInsights.Tips)
	return out
}
