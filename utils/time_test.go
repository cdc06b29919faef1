package utils

import (
	"testing"
	"time"
)

func TestSameLocalDay(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different hour", base, base.Add(10 * time.Hour), true},
		{"just before midnight vs just after", time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local), time.Date(2025, 3, 11, 0, 0, 1, 0, time.Local), false},
		{"next day", base, base.AddDate(0, 0, 1), false},
		{"same day next month", base, base.AddDate(0, 1, 0), false},
		{"same day next year", base, base.AddDate(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameLocalDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameLocalDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2025, 3, 5, 23, 59, 0, 0, time.Local))
	if got != "2025-03-05" {
		t.Errorf("DayKey = %q, want %q", got, "2025-03-05")
	}
}

func TestMatchesClock(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		clock string
		want  bool
	}{
		{"exact minute", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), "09:00", true},
		{"end of minute", time.Date(2025, 3, 10, 9, 0, 59, 0, time.Local), "09:00", true},
		{"one minute late", time.Date(2025, 3, 10, 9, 1, 0, 0, time.Local), "09:00", false},
		{"one minute early", time.Date(2025, 3, 10, 8, 59, 59, 0, time.Local), "09:00", false},
		{"invalid clock is silent", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), "25:99", false},
		{"empty clock is silent", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesClock(tt.now, tt.clock); got != tt.want {
				t.Errorf("MatchesClock(%v, %q) = %v, want %v", tt.now, tt.clock, got, tt.want)
			}
		})
	}
}

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "09:00", "23:59", "12:30"}
	for _, clock := range valid {
		if !ValidateClock(clock) {
			t.Errorf("ValidateClock(%q) = false, want true", clock)
		}
	}

	invalid := []string{"", "24:00", "9:00", "09:60", "0900", "09:00:00", "ab:cd"}
	for _, clock := range invalid {
		if ValidateClock(clock) {
			t.Errorf("ValidateClock(%q) = true, want false", clock)
		}
	}
}
