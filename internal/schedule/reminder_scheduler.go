package schedule

// 提醒调度器：轮询判断是否到达提醒时刻，驱动 due / snoozed / dismissed 状态机。
// 同一天被关闭后当天不再触发，贪睡到期后重新触发。

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/internal/service"
	pkgerrors "github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
	"github.com/turi333-pixel/MoodFlow/pkg/metrics"
	"github.com/turi333-pixel/MoodFlow/pkg/notify"
	"github.com/turi333-pixel/MoodFlow/storage"
	"github.com/turi333-pixel/MoodFlow/utils"
)

// State 调度器对外可见的状态
type State string

const (
	StateIdle      State = "idle"      // 提醒未开启
	StateArmed     State = "armed"     // 已开启，等待提醒时刻
	StateDue       State = "due"       // 已触发，等待用户处理
	StateSnoozed   State = "snoozed"   // 贪睡中，到期后重新触发
	StateDismissed State = "dismissed" // 今天已关闭，次日自动恢复
)

// Clock 可注入的时间源
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CheckinSource 查询今天是否已打卡
type CheckinSource interface {
	HasEntryForToday(ctx context.Context) bool
}

// SettingsStore 提醒配置的读写
type SettingsStore interface {
	Load(ctx context.Context) model.ReminderSettings
	Save(ctx context.Context, settings model.ReminderSettings) error
}

// StorageSettings 默认的配置存取实现，落在本地 KV 上
type StorageSettings struct{}

func (StorageSettings) Load(ctx context.Context) model.ReminderSettings {
	return storage.LoadSettings(ctx)
}

func (StorageSettings) Save(ctx context.Context, settings model.ReminderSettings) error {
	return storage.SaveSettings(ctx, settings)
}

type ReminderScheduler struct {
	clock    Clock
	checkins CheckinSource
	settings SettingsStore
	notifier notify.Notifier
	logger   *zap.Logger

	tick      time.Duration
	snoozeFor time.Duration

	mu          sync.Mutex
	state       State
	snoozeUntil time.Time
	firedDay    string // 最近一次触发的日期，跨天后 due 状态失效

	cancel context.CancelFunc
	done   chan struct{}
}

var (
	schedulerOnce sync.Once
	schedulerInst *ReminderScheduler
)

func GetScheduler() *ReminderScheduler {
	schedulerOnce.Do(func() {
		schedulerInst = NewScheduler(
			service.Journal(),
			StorageSettings{},
			notify.Get(),
			systemClock{},
			time.Duration(config.Cfg.ReminderTickSeconds)*time.Second,
			time.Duration(config.Cfg.ReminderSnoozeMinutes)*time.Minute,
		)
	})
	return schedulerInst
}

func NewScheduler(
	checkins CheckinSource,
	settings SettingsStore,
	notifier notify.Notifier,
	clock Clock,
	tick time.Duration,
	snoozeFor time.Duration,
) *ReminderScheduler {
	return &ReminderScheduler{
		clock:     clock,
		checkins:  checkins,
		settings:  settings,
		notifier:  notifier,
		logger:    logger.Logger,
		tick:      tick,
		snoozeFor: snoozeFor,
		state:     StateIdle,
	}
}

// Start 启动轮询循环，首次评估立即执行。
func (s *ReminderScheduler) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		s.Evaluate(runCtx)

		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				s.Evaluate(runCtx)
			}
		}
	}()

	s.logger.Info("Reminder scheduler started",
		zap.Duration("tick", s.tick),
		zap.Duration("snooze", s.snoozeFor),
	)
}

// Stop 停止轮询并等待循环退出。
func (s *ReminderScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Reminder scheduler stopped")
}

// Evaluate 单次评估，tick 循环和配置变更后都会调用。
func (s *ReminderScheduler) Evaluate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	today := utils.DayKey(now)
	settings := s.settings.Load(ctx)

	if !settings.Enabled {
		s.transition(StateIdle)
		s.snoozeUntil = time.Time{}
		return
	}

	if settings.LastDismissedDate == today {
		s.transition(StateDismissed)
		return
	}

	if s.checkins.HasEntryForToday(ctx) {
		s.transition(StateArmed)
		s.snoozeUntil = time.Time{}
		return
	}

	switch s.state {
	case StateDue:
		if s.firedDay == today {
			return // 等待用户处理，不重复触发
		}
	case StateSnoozed:
		if now.Before(s.snoozeUntil) {
			return
		}
		s.fire(ctx, settings, today)
		return
	}

	if utils.MatchesClock(now, settings.Time) {
		if s.firedDay == today {
			// 同一分钟内多次 tick 只触发一次
			s.transition(StateDue)
			return
		}
		s.fire(ctx, settings, today)
		return
	}

	s.transition(StateArmed)
}

// fire 触发提醒：记状态、发通知。通知失败不影响状态机。
func (s *ReminderScheduler) fire(ctx context.Context, settings model.ReminderSettings, today string) {
	s.transition(StateDue)
	s.firedDay = today
	s.snoozeUntil = time.Time{}

	metrics.GetMetrics().RecordReminderDue(ctx)
	s.logger.Info("Reminder due",
		zap.String("day", today),
		zap.String("message", settings.Message),
	)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, "MoodFlow", settings.Message); err != nil {
			s.logger.Warn("Failed to deliver reminder notification", zap.Error(err))
		}
	}
}

// Dismiss 关闭今天的提醒，当天不再触发。只有 due 或 snoozed 状态可关闭。
func (s *ReminderScheduler) Dismiss(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDue && s.state != StateSnoozed {
		return pkgerrors.ReminderNotDue
	}

	settings := s.settings.Load(ctx)
	settings.LastDismissedDate = utils.DayKey(s.clock.Now())
	if err := s.settings.Save(ctx, settings); err != nil {
		s.logger.Error("Failed to persist dismissal", zap.Error(err))
		return pkgerrors.StorageFailure
	}

	s.transition(StateDismissed)
	s.snoozeUntil = time.Time{}
	metrics.GetMetrics().RecordReminderDismissed(ctx)
	s.logger.Info("Reminder dismissed for today",
		zap.String("day", settings.LastDismissedDate),
	)
	return nil
}

// Snooze 推迟当前提醒，到期后重新触发。贪睡中再按一次会重新计时。
func (s *ReminderScheduler) Snooze(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDue && s.state != StateSnoozed {
		return pkgerrors.ReminderNotDue
	}

	s.transition(StateSnoozed)
	s.snoozeUntil = s.clock.Now().Add(s.snoozeFor)
	metrics.GetMetrics().RecordReminderSnoozed(ctx)
	s.logger.Info("Reminder snoozed",
		zap.Time("until", s.snoozeUntil),
	)
	return nil
}

// Reconfigure 配置变更后立即重新评估。进行中的贪睡保留，只重置由旧配置
// 推导出的 due / dismissed 记账；贪睡是否继续由随后的评估决定。
func (s *ReminderScheduler) Reconfigure(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateSnoozed {
		s.state = StateIdle
		s.snoozeUntil = time.Time{}
	}
	s.firedDay = ""
	s.mu.Unlock()

	s.Evaluate(ctx)
}

// State 返回当前状态快照。
func (s *ReminderScheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ReminderScheduler) transition(next State) {
	if s.state == next {
		return
	}
	s.logger.Debug("Reminder state transition",
		zap.String("from", string(s.state)),
		zap.String("to", string(next)),
	)
	s.state = next
}
