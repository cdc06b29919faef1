package schedule

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/internal/model"
	pkgerrors "github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

type fakeCheckins struct {
	hasEntry bool
}

func (f *fakeCheckins) HasEntryForToday(ctx context.Context) bool { return f.hasEntry }

type fakeSettings struct {
	settings model.ReminderSettings
	saveErr  error
}

func (f *fakeSettings) Load(ctx context.Context) model.ReminderSettings { return f.settings }

func (f *fakeSettings) Save(ctx context.Context, settings model.ReminderSettings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.settings = settings
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(ctx context.Context, title, message string) error {
	r.messages = append(r.messages, message)
	return nil
}

type fixture struct {
	scheduler *ReminderScheduler
	clock     *fakeClock
	checkins  *fakeCheckins
	settings  *fakeSettings
	notifier  *recordingNotifier
}

// 默认场景：提醒开启在 09:00，时钟停在 08:00，今天还没打卡
func newFixture() *fixture {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)}
	checkins := &fakeCheckins{}
	settings := &fakeSettings{settings: model.ReminderSettings{
		Enabled: true,
		Time:    "09:00",
		Message: "check in now",
	}}
	notifier := &recordingNotifier{}

	return &fixture{
		scheduler: NewScheduler(checkins, settings, notifier, clock, 30*time.Second, 10*time.Minute),
		clock:     clock,
		checkins:  checkins,
		settings:  settings,
		notifier:  notifier,
	}
}

func (f *fixture) evalAt(t *testing.T, hour, minute int) {
	t.Helper()
	f.clock.now = time.Date(2025, 3, 10, hour, minute, 0, 0, time.Local)
	f.scheduler.Evaluate(context.Background())
}

func TestDisabledStaysIdle(t *testing.T) {
	f := newFixture()
	f.settings.settings.Enabled = false

	f.evalAt(t, 9, 0)

	if got := f.scheduler.State(); got != StateIdle {
		t.Errorf("state = %s, want idle", got)
	}
	if len(f.notifier.messages) != 0 {
		t.Error("disabled reminder must not notify")
	}
}

func TestFiresAtExactMinute(t *testing.T) {
	f := newFixture()

	f.evalAt(t, 8, 59)
	if got := f.scheduler.State(); got != StateArmed {
		t.Fatalf("state before reminder time = %s, want armed", got)
	}

	f.evalAt(t, 9, 0)
	if got := f.scheduler.State(); got != StateDue {
		t.Fatalf("state at reminder time = %s, want due", got)
	}
	if len(f.notifier.messages) != 1 || f.notifier.messages[0] != "check in now" {
		t.Errorf("notifications = %v, want the configured message once", f.notifier.messages)
	}
}

func TestDoesNotRefireWithinSameMinute(t *testing.T) {
	f := newFixture()

	f.evalAt(t, 9, 0)
	f.clock.advance(30 * time.Second)
	f.scheduler.Evaluate(context.Background())

	if len(f.notifier.messages) != 1 {
		t.Errorf("fired %d times within the same minute, want 1", len(f.notifier.messages))
	}
}

func TestMissedMinuteDoesNotFire(t *testing.T) {
	f := newFixture()

	// 直接跳过提醒分钟（比如进程挂起）
	f.evalAt(t, 9, 5)

	if got := f.scheduler.State(); got != StateArmed {
		t.Errorf("state = %s, want armed", got)
	}
	if len(f.notifier.messages) != 0 {
		t.Error("reminder fired outside its minute window")
	}
}

func TestCheckinSuppressesReminder(t *testing.T) {
	f := newFixture()
	f.checkins.hasEntry = true

	f.evalAt(t, 9, 0)

	if got := f.scheduler.State(); got != StateArmed {
		t.Errorf("state = %s, want armed", got)
	}
	if len(f.notifier.messages) != 0 {
		t.Error("reminder fired although today's entry exists")
	}
}

func TestCheckinClearsDueState(t *testing.T) {
	f := newFixture()

	f.evalAt(t, 9, 0)
	if f.scheduler.State() != StateDue {
		t.Fatal("expected due state")
	}

	f.checkins.hasEntry = true
	f.clock.advance(30 * time.Second)
	f.scheduler.Evaluate(context.Background())

	if got := f.scheduler.State(); got != StateArmed {
		t.Errorf("state after check-in = %s, want armed", got)
	}
}

func TestDismissHoldsForRestOfDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Dismiss(ctx); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}

	if f.settings.settings.LastDismissedDate != "2025-03-10" {
		t.Errorf("LastDismissedDate = %q, want 2025-03-10", f.settings.settings.LastDismissedDate)
	}
	if got := f.scheduler.State(); got != StateDismissed {
		t.Fatalf("state = %s, want dismissed", got)
	}

	// 当天再怎么评估都不会触发
	f.evalAt(t, 9, 0)
	f.evalAt(t, 23, 59)
	if len(f.notifier.messages) != 1 {
		t.Errorf("fired %d times after dismissal, want 1", len(f.notifier.messages))
	}
}

func TestDismissalExpiresNextDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Dismiss(ctx); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}

	// 次日同一时刻重新触发
	f.clock.now = time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local)
	f.scheduler.Evaluate(ctx)

	if got := f.scheduler.State(); got != StateDue {
		t.Errorf("state next day = %s, want due", got)
	}
	if len(f.notifier.messages) != 2 {
		t.Errorf("notifications = %d, want 2", len(f.notifier.messages))
	}
}

func TestDismissRequiresDue(t *testing.T) {
	f := newFixture()
	f.evalAt(t, 8, 0)

	err := f.scheduler.Dismiss(context.Background())
	var def pkgerrors.Definition
	if !errors.As(err, &def) || def.Code != "REMINDER_NOT_DUE" {
		t.Fatalf("Dismiss while armed = %v, want REMINDER_NOT_DUE", err)
	}
}

func TestSnoozeRefiresAfterDelay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Snooze(ctx); err != nil {
		t.Fatalf("Snooze: %v", err)
	}
	if got := f.scheduler.State(); got != StateSnoozed {
		t.Fatalf("state = %s, want snoozed", got)
	}

	// 贪睡期内不触发
	f.clock.advance(5 * time.Minute)
	f.scheduler.Evaluate(ctx)
	if got := f.scheduler.State(); got != StateSnoozed {
		t.Fatalf("state mid-snooze = %s, want snoozed", got)
	}

	// 到期后重新触发
	f.clock.advance(5 * time.Minute)
	f.scheduler.Evaluate(ctx)
	if got := f.scheduler.State(); got != StateDue {
		t.Fatalf("state after snooze expiry = %s, want due", got)
	}
	if len(f.notifier.messages) != 2 {
		t.Errorf("notifications = %d, want 2", len(f.notifier.messages))
	}
}

func TestSnoozeAgainRestartsDelay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Snooze(ctx); err != nil {
		t.Fatalf("first Snooze: %v", err)
	}

	// 8 分钟后再按一次，重新计 10 分钟
	f.clock.advance(8 * time.Minute)
	if err := f.scheduler.Snooze(ctx); err != nil {
		t.Fatalf("second Snooze: %v", err)
	}

	f.clock.advance(5 * time.Minute) // 原计时此刻已过期
	f.scheduler.Evaluate(ctx)
	if got := f.scheduler.State(); got != StateSnoozed {
		t.Fatalf("state = %s, want snoozed until the restarted delay elapses", got)
	}

	f.clock.advance(5 * time.Minute)
	f.scheduler.Evaluate(ctx)
	if got := f.scheduler.State(); got != StateDue {
		t.Errorf("state = %s, want due after restarted delay", got)
	}
}

func TestSnoozeCancelledByCheckin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Snooze(ctx); err != nil {
		t.Fatalf("Snooze: %v", err)
	}

	f.checkins.hasEntry = true
	f.clock.advance(15 * time.Minute)
	f.scheduler.Evaluate(ctx)

	if got := f.scheduler.State(); got != StateArmed {
		t.Errorf("state = %s, want armed", got)
	}
	if len(f.notifier.messages) != 1 {
		t.Errorf("snoozed reminder fired after check-in, notifications = %d", len(f.notifier.messages))
	}
}

func TestSnoozeRequiresDue(t *testing.T) {
	f := newFixture()
	f.evalAt(t, 8, 0)

	err := f.scheduler.Snooze(context.Background())
	var def pkgerrors.Definition
	if !errors.As(err, &def) || def.Code != "REMINDER_NOT_DUE" {
		t.Fatalf("Snooze while armed = %v, want REMINDER_NOT_DUE", err)
	}
}

func TestReconfigureResetsStateMachine(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if got := f.scheduler.State(); got != StateDue {
		t.Fatalf("state = %s, want due", got)
	}

	// 改到 10:00 并重置：旧时刻的 due 作废，新时刻照常触发
	f.settings.settings.Time = "10:00"
	f.scheduler.Reconfigure(ctx)
	if got := f.scheduler.State(); got != StateArmed {
		t.Fatalf("state after reconfigure = %s, want armed", got)
	}

	f.evalAt(t, 10, 0)
	if got := f.scheduler.State(); got != StateDue {
		t.Errorf("state at new time = %s, want due", got)
	}
}

func TestSnoozeSurvivesSettingsChange(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Snooze(ctx); err != nil {
		t.Fatalf("Snooze: %v", err)
	}

	// 贪睡期内只改提醒文案，贪睡计时不受影响
	f.clock.advance(2 * time.Minute)
	f.settings.settings.Message = "time for a check-in"
	f.scheduler.Reconfigure(ctx)
	if got := f.scheduler.State(); got != StateSnoozed {
		t.Fatalf("state after reconfigure = %s, want snoozed", got)
	}

	f.clock.advance(8 * time.Minute)
	f.scheduler.Evaluate(ctx)
	if got := f.scheduler.State(); got != StateDue {
		t.Fatalf("state after snooze delay = %s, want due", got)
	}
	if got := f.notifier.messages[len(f.notifier.messages)-1]; got != "time for a check-in" {
		t.Errorf("refire message = %q, want the updated message", got)
	}
}

func TestDisableCancelsSnooze(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	if err := f.scheduler.Snooze(ctx); err != nil {
		t.Fatalf("Snooze: %v", err)
	}

	f.settings.settings.Enabled = false
	f.scheduler.Reconfigure(ctx)
	if got := f.scheduler.State(); got != StateIdle {
		t.Fatalf("state after disable = %s, want idle", got)
	}

	// 重新开启后旧贪睡已失效，不补触发
	f.clock.advance(10 * time.Minute)
	f.settings.settings.Enabled = true
	f.scheduler.Reconfigure(ctx)
	if got := f.scheduler.State(); got != StateArmed {
		t.Fatalf("state after re-enable = %s, want armed", got)
	}
	if len(f.notifier.messages) != 1 {
		t.Errorf("cancelled snooze fired anyway, notifications = %d", len(f.notifier.messages))
	}
}

func TestInvalidClockNeverFires(t *testing.T) {
	f := newFixture()
	f.settings.settings.Time = "9 o'clock"

	f.evalAt(t, 9, 0)

	if got := f.scheduler.State(); got != StateArmed {
		t.Errorf("state = %s, want armed", got)
	}
	if len(f.notifier.messages) != 0 {
		t.Error("invalid reminder time must stay silent")
	}
}

func TestDismissPersistFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.evalAt(t, 9, 0)
	f.settings.saveErr = errors.New("disk full")

	err := f.scheduler.Dismiss(ctx)
	var def pkgerrors.Definition
	if !errors.As(err, &def) || def.Code != "STORAGE_FAILURE" {
		t.Fatalf("Dismiss with failing store = %v, want STORAGE_FAILURE", err)
	}
	if got := f.scheduler.State(); got != StateDue {
		t.Errorf("state after failed dismiss = %s, want due", got)
	}
}
