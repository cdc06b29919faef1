package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/turi333-pixel/MoodFlow/internal/model/dto"
	"github.com/turi333-pixel/MoodFlow/internal/schedule"
	"github.com/turi333-pixel/MoodFlow/internal/service"
	"github.com/turi333-pixel/MoodFlow/pkg/response"
)

// SubmitEntry 提交（或覆盖）今天的打卡
// POST /v1/entries
func SubmitEntry(ctx context.Context, c *app.RequestContext) {
	var req dto.SubmitEntryRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Journal().SubmitEntry(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	// 打卡后提醒就不需要再触发了，立刻重新评估
	schedule.GetScheduler().Evaluate(ctx)

	response.Success(ctx, c, result)
}

// GetTodayEntry 查询今天的打卡记录
// GET /v1/entries/today
func GetTodayEntry(ctx context.Context, c *app.RequestContext) {
	result, err := service.Journal().TodayEntry(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetHistory 查询全部打卡历史
// GET /v1/entries
func GetHistory(ctx context.Context, c *app.RequestContext) {
	result, err := service.Journal().History(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ClearHistory 清空全部打卡历史
// DELETE /v1/entries
func ClearHistory(ctx context.Context, c *app.RequestContext) {
	if err := service.Journal().ClearHistory(ctx); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// GetWeeklySummary 查询近 7 天概览
// GET /v1/entries/summary/weekly
func GetWeeklySummary(ctx context.Context, c *app.RequestContext) {
	result, err := service.Journal().WeeklySummary(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
