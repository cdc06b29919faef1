package model

// Mood 心情枚举，与客户端展示的 8 宫格一一对应。
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodTired   Mood = "tired"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
	MoodAngry   Mood = "angry"
)

// MoodConfig 心情的展示配置。
type MoodConfig struct {
	Type  Mood   `json:"type"`
	Label string `json:"label"`
}

// MoodCatalog 客户端选择面板的展示顺序。
var MoodCatalog = []MoodConfig{
	{Type: MoodHappy, Label: "Radiant"},
	{Type: MoodExcited, Label: "Electric"},
	{Type: MoodCalm, Label: "Zen"},
	{Type: MoodNeutral, Label: "Steady"},
	{Type: MoodTired, Label: "Dreamy"},
	{Type: MoodSad, Label: "Gloomy"},
	{Type: MoodAnxious, Label: "Swirly"},
	{Type: MoodAngry, Label: "Blazing"},
}

// Valid 校验是否为 8 个枚举值之一。
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodExcited, MoodCalm, MoodNeutral,
		MoodTired, MoodSad, MoodAnxious, MoodAngry:
		return true
	}
	return false
}

// Label 返回展示名，未知心情返回原始值。
func (m Mood) Label() string {
	for _, cfg := range MoodCatalog {
		if cfg.Type == m {
			return cfg.Label
		}
	}
	return string(m)
}
