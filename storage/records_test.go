package storage

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
)

// fakeKV 内存后端，可注入读写错误
type fakeKV struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	val, ok := f.data[key]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return val, nil
}

func (f *fakeKV) Put(ctx context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Del(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeKV) Close(ctx context.Context) error { return nil }

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func withFakeKV(t *testing.T) *fakeKV {
	t.Helper()
	fake := newFakeKV()
	prev := kv
	kv = fake
	t.Cleanup(func() { kv = prev })
	return fake
}

func TestLoadHistoryMissing(t *testing.T) {
	withFakeKV(t)

	entries := LoadHistory(context.Background())
	if entries == nil {
		t.Fatal("LoadHistory returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Fatalf("LoadHistory returned %d entries, want 0", len(entries))
	}
}

func TestLoadHistoryCorrupt(t *testing.T) {
	fake := withFakeKV(t)
	fake.data[KeyHistory] = []byte("{not json!")

	entries := LoadHistory(context.Background())
	if len(entries) != 0 {
		t.Fatalf("corrupt history should load as empty, got %d entries", len(entries))
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	withFakeKV(t)
	ctx := context.Background()

	in := []model.MoodEntry{
		{ID: "1", Date: time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), Mood: model.MoodHappy, Note: "sunny"},
		{ID: "2", Date: time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local), Mood: model.MoodSad},
	}
	if err := SaveHistory(ctx, in); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}

	out := LoadHistory(ctx)
	if len(out) != 2 {
		t.Fatalf("LoadHistory returned %d entries, want 2", len(out))
	}
	if out[0].ID != "1" || out[1].ID != "2" {
		t.Errorf("insertion order not preserved: got %s, %s", out[0].ID, out[1].ID)
	}
	if out[0].Mood != model.MoodHappy || out[0].Note != "sunny" {
		t.Errorf("first entry mismatch: %+v", out[0])
	}
}

func TestClearHistory(t *testing.T) {
	withFakeKV(t)
	ctx := context.Background()

	if err := SaveHistory(ctx, []model.MoodEntry{{ID: "1", Mood: model.MoodCalm}}); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}
	if err := ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if entries := LoadHistory(ctx); len(entries) != 0 {
		t.Fatalf("history not empty after clear: %d entries", len(entries))
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	withFakeKV(t)

	settings := LoadSettings(context.Background())
	defaults := model.DefaultReminderSettings()
	if settings != defaults {
		t.Errorf("LoadSettings = %+v, want defaults %+v", settings, defaults)
	}
}

func TestLoadSettingsCorrupt(t *testing.T) {
	fake := withFakeKV(t)
	fake.data[KeySettings] = []byte("][")

	settings := LoadSettings(context.Background())
	if settings != model.DefaultReminderSettings() {
		t.Errorf("corrupt settings should load as defaults, got %+v", settings)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	withFakeKV(t)
	ctx := context.Background()

	in := model.ReminderSettings{
		Enabled:           true,
		Time:              "21:30",
		Message:           "evening check-in",
		LastDismissedDate: "2025-03-10",
	}
	if err := SaveSettings(ctx, in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	if out := LoadSettings(ctx); out != in {
		t.Errorf("LoadSettings = %+v, want %+v", out, in)
	}
}
