package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/turi333-pixel/MoodFlow/internal/model/dto"
	"github.com/turi333-pixel/MoodFlow/internal/schedule"
	pkgerrors "github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/response"
	"github.com/turi333-pixel/MoodFlow/storage"
	"github.com/turi333-pixel/MoodFlow/utils"
)

// GetReminderSettings 查询提醒配置
// GET /v1/reminders/settings
func GetReminderSettings(ctx context.Context, c *app.RequestContext) {
	settings := storage.LoadSettings(ctx)

	response.Success(ctx, c, dto.ReminderSettingsData{
		Enabled:           settings.Enabled,
		Time:              settings.Time,
		Message:           settings.Message,
		LastDismissedDate: settings.LastDismissedDate,
	})
}

// UpdateReminderSettings 修改提醒配置，未提供的字段保持原值
// PUT /v1/reminders/settings
func UpdateReminderSettings(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateReminderSettingsRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	settings := storage.LoadSettings(ctx)

	if req.Time != nil {
		if !utils.ValidateClock(*req.Time) {
			response.Error(ctx, c, pkgerrors.ReminderTimeInvalid)
			return
		}
		settings.Time = *req.Time
	}
	if req.Enabled != nil {
		settings.Enabled = *req.Enabled
	}
	if req.Message != nil {
		settings.Message = *req.Message
	}

	if err := storage.SaveSettings(ctx, settings); err != nil {
		response.Error(ctx, c, pkgerrors.StorageFailure)
		return
	}

	// 配置变了就重置状态机
	schedule.GetScheduler().Reconfigure(ctx)

	response.Success(ctx, c, dto.ReminderSettingsData{
		Enabled:           settings.Enabled,
		Time:              settings.Time,
		Message:           settings.Message,
		LastDismissedDate: settings.LastDismissedDate,
	})
}

// GetReminderState 查询调度器当前状态
// GET /v1/reminders/state
func GetReminderState(ctx context.Context, c *app.RequestContext) {
	state := schedule.GetScheduler().State()

	data := dto.ReminderStateData{
		State: string(state),
		Due:   state == schedule.StateDue,
	}
	if data.Due {
		data.Message = storage.LoadSettings(ctx).Message
	}

	response.Success(ctx, c, data)
}

// DismissReminder 今天不再提醒
// POST /v1/reminders/dismiss
func DismissReminder(ctx context.Context, c *app.RequestContext) {
	if err := schedule.GetScheduler().Dismiss(ctx); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ReminderStateData{
		State: string(schedule.StateDismissed),
	})
}

// SnoozeReminder 稍后提醒
// POST /v1/reminders/snooze
func SnoozeReminder(ctx context.Context, c *app.RequestContext) {
	if err := schedule.GetScheduler().Snooze(ctx); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ReminderStateData{
		State: string(schedule.StateSnoozed),
	})
}
