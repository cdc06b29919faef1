package model

// ReminderSettings 每日提醒配置，整体读整体写。
// LastDismissedDate 是纯粹的当日去抖标记：与今天不相等即自动重新武装，
// 永远不需要显式清空。
type ReminderSettings struct {
	Enabled           bool   `json:"enabled"`
	Time              string `json:"time"` // HH:MM，本地墙钟
	Message           string `json:"message"`
	LastDismissedDate string `json:"last_dismissed_date,omitempty"` // 2006-01-02
}

// DefaultReminderSettings 首次读取（或记录损坏）时的默认配置。
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		Enabled:           false,
		Time:              "09:00",
		Message:           "Time for a quick mood check-in! How are you feeling?",
		LastDismissedDate: "",
	}
}
