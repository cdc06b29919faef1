package dto

// ========== Reminder 相关 DTO ==========

// UpdateReminderSettingsRequest 修改提醒配置
type UpdateReminderSettingsRequest struct {
	Enabled *bool   `json:"enabled"`
	Time    *string `json:"time"`
	Message *string `json:"message"`
}

// ReminderSettingsData 提醒配置
type ReminderSettingsData struct {
	Enabled           bool   `json:"enabled"`
	Time              string `json:"time"`
	Message           string `json:"message"`
	LastDismissedDate string `json:"last_dismissed_date,omitempty"`
}

// ReminderStateData 调度器当前状态，客户端据此决定是否展示提醒浮层
type ReminderStateData struct {
	State   string `json:"state"` // idle, armed, due, snoozed, dismissed
	Due     bool   `json:"due"`
	Message string `json:"message,omitempty"`
}
