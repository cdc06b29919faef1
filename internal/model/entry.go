package model

import "time"

// MoodEntry 一条心情打卡记录。
// 不变式：历史中任意两条记录的本地日历日投影互不相同，
// 当天重复提交时旧记录被整体替换（ID 也会改变），不做合并。
type MoodEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"` // 打卡时刻，不只是日期
	Mood Mood      `json:"mood"`
	Note string    `json:"note"`
}

// WeeklySummary 近 7 天的心情概览。
type WeeklySummary struct {
	Overview         string `json:"overview"`
	MostFrequentMood Mood   `json:"most_frequent_mood"`
	MoodCount        int    `json:"mood_count"`
}
