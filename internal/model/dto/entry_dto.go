package dto

import (
	"time"

	"github.com/turi333-pixel/MoodFlow/internal/model"
)

// ========== Entry 相关 DTO ==========

// SubmitEntryRequest 提交（或覆盖）当日打卡
type SubmitEntryRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

// EntryData 单条打卡记录
type EntryData struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Mood  string    `json:"mood"`
	Label string    `json:"label"`
	Note  string    `json:"note"`
}

// HistoryData 打卡历史，保持存储内的插入顺序
type HistoryData struct {
	Entries []EntryData `json:"entries"`
	Total   int         `json:"total"`
}

// NewEntryData 从领域模型构建 DTO
func NewEntryData(e model.MoodEntry) EntryData {
	return EntryData{
		ID:    e.ID,
		Date:  e.Date,
		Mood:  string(e.Mood),
		Label: e.Mood.Label(),
		Note:  e.Note,
	}
}

// NewHistoryData 批量转换
func NewHistoryData(entries []model.MoodEntry) HistoryData {
	out := HistoryData{
		Entries: make([]EntryData, 0, len(entries)),
		Total:   len(entries),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, NewEntryData(e))
	}
	return out
}
