package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/turi333-pixel/MoodFlow/internal/handler"
	"github.com/turi333-pixel/MoodFlow/internal/middleware"
)

// Register 注册全部路由。tracingMiddleware 为 nil 时不挂载追踪。
func Register(h *server.Hertz, tracingMiddleware app.HandlerFunc) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	if tracingMiddleware != nil {
		h.Use(tracingMiddleware)
	}
	h.Use(middleware.MetricsMiddleware())

	h.GET("/healthz", handler.Health)

	v1 := h.Group("/v1")

	// 打卡路由
	entries := v1.Group("/entries")
	{
		entries.GET("", handler.GetHistory)
		entries.POST("", handler.SubmitEntry)
		entries.DELETE("", handler.ClearHistory)
		entries.GET("/today", handler.GetTodayEntry)
		entries.GET("/summary/weekly", handler.GetWeeklySummary)
	}

	// 提醒路由
	reminders := v1.Group("/reminders")
	{
		reminders.GET("/settings", handler.GetReminderSettings)
		reminders.PUT("/settings", handler.UpdateReminderSettings)
		reminders.GET("/state", handler.GetReminderState)
		reminders.POST("/dismiss", handler.DismissReminder)
		reminders.POST("/snooze", handler.SnoozeReminder)
	}

	// AI 洞察路由，带限流
	insights := v1.Group("/insights")
	insights.Use(middleware.InsightRateLimitMiddleware())
	{
		insights.POST("", handler.GetInsights)
	}

	// 心情目录
	v1.GET("/moods", handler.ListMoods)
}
