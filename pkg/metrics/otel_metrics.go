package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 打卡相关指标
	CheckinsTotal       metric.Int64Counter
	HistoryClearedTotal metric.Int64Counter

	// 提醒相关指标
	RemindersDueTotal       metric.Int64Counter
	RemindersDismissedTotal metric.Int64Counter
	RemindersSnoozedTotal   metric.Int64Counter

	// 洞察相关指标
	InsightRequestsTotal   metric.Int64Counter
	InsightRequestDuration metric.Float64Histogram

	// webhook 通知指标
	NotifySentTotal metric.Int64Counter
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("moodflow")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.CheckinsTotal, err = meter.Int64Counter(
		"checkins_total",
		metric.WithDescription("Total number of mood check-ins"),
		metric.WithUnit("{checkin}"),
	)
	if err != nil {
		return err
	}

	metrics.HistoryClearedTotal, err = meter.Int64Counter(
		"history_cleared_total",
		metric.WithDescription("Total number of bulk history clears"),
		metric.WithUnit("{clear}"),
	)
	if err != nil {
		return err
	}

	metrics.RemindersDueTotal, err = meter.Int64Counter(
		"reminders_due_total",
		metric.WithDescription("Total number of reminder triggers raised"),
		metric.WithUnit("{trigger}"),
	)
	if err != nil {
		return err
	}

	metrics.RemindersDismissedTotal, err = meter.Int64Counter(
		"reminders_dismissed_total",
		metric.WithDescription("Total number of reminders dismissed for the day"),
		metric.WithUnit("{dismiss}"),
	)
	if err != nil {
		return err
	}

	metrics.RemindersSnoozedTotal, err = meter.Int64Counter(
		"reminders_snoozed_total",
		metric.WithDescription("Total number of reminders snoozed"),
		metric.WithUnit("{snooze}"),
	)
	if err != nil {
		return err
	}

	metrics.InsightRequestsTotal, err = meter.Int64Counter(
		"insight_requests_total",
		metric.WithDescription("Total number of insight requests by source"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	metrics.InsightRequestDuration, err = meter.Float64Histogram(
		"insight_request_duration_seconds",
		metric.WithDescription("Time spent fetching AI insights in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 15.0),
	)
	if err != nil {
		return err
	}

	metrics.NotifySentTotal, err = meter.Int64Counter(
		"notify_sent_total",
		metric.WithDescription("Total number of webhook notifications by status"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例，未初始化时返回 nil，Record 方法对 nil 安全
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordCheckin 记录一次打卡，overwrite 表示是否覆盖了当日旧记录
func (m *OTelMetrics) RecordCheckin(ctx context.Context, mood string, overwrite bool) {
	if m == nil || m.CheckinsTotal == nil {
		return
	}
	m.CheckinsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mood", mood),
		attribute.Bool("overwrite", overwrite),
	))
}

// RecordHistoryCleared 记录一次历史清空
func (m *OTelMetrics) RecordHistoryCleared(ctx context.Context) {
	if m == nil || m.HistoryClearedTotal == nil {
		return
	}
	m.HistoryClearedTotal.Add(ctx, 1)
}

// RecordReminderDue 记录一次提醒触发
func (m *OTelMetrics) RecordReminderDue(ctx context.Context) {
	if m == nil || m.RemindersDueTotal == nil {
		return
	}
	m.RemindersDueTotal.Add(ctx, 1)
}

// RecordReminderDismissed 记录一次提醒当日关闭
func (m *OTelMetrics) RecordReminderDismissed(ctx context.Context) {
	if m == nil || m.RemindersDismissedTotal == nil {
		return
	}
	m.RemindersDismissedTotal.Add(ctx, 1)
}

// RecordReminderSnoozed 记录一次提醒稍后再说
func (m *OTelMetrics) RecordReminderSnoozed(ctx context.Context) {
	if m == nil || m.RemindersSnoozedTotal == nil {
		return
	}
	m.RemindersSnoozedTotal.Add(ctx, 1)
}

// RecordInsightRequest 记录一次洞察请求，source 为 ai 或 fallback
func (m *OTelMetrics) RecordInsightRequest(ctx context.Context, source string, duration float64) {
	if m == nil || m.InsightRequestsTotal == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("source", source))
	m.InsightRequestsTotal.Add(ctx, 1, attrs)
	m.InsightRequestDuration.Record(ctx, duration, attrs)
}

// RecordNotifySent 记录一次 webhook 通知结果
func (m *OTelMetrics) RecordNotifySent(ctx context.Context, status string) {
	if m == nil || m.NotifySentTotal == nil {
		return
	}
	m.NotifySentTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", status),
	))
}
