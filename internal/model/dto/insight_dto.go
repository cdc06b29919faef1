package dto

import (
	"github.com/turi333-pixel/MoodFlow/internal/model"
)

// ========== Insight 相关 DTO ==========

// GetInsightsRequest 请求当日洞察
type GetInsightsRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

// WeeklySummaryData 近 7 天概览
type WeeklySummaryData struct {
	Overview         string `json:"overview"`
	MostFrequentMood string `json:"most_frequent_mood"`
	MoodCount        int    `json:"mood_count"`
}

// NewWeeklySummaryData 从领域模型构建 DTO
func NewWeeklySummaryData(s model.WeeklySummary) WeeklySummaryData {
	return WeeklySummaryData{
		Overview:         s.Overview,
		MostFrequentMood: string(s.MostFrequentMood),
		MoodCount:        s.MoodCount,
	}
}
