package utils

import (
	"fmt"
	"time"
)

// SameLocalDay 判断两个时间点是否落在同一个本地日历日。
// 入口唯一：条目生命周期和提醒调度器都必须通过这里比较日历日，
// 否则跨午夜/时区边界时写读两侧会出现重复或丢失。
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DayKey 返回时间点对应的本地日历日标识（2006-01-02）。
// ReminderSettings.LastDismissedDate 用的就是这个格式。
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// ParseClock 解析 HH:MM 格式的墙钟时间。
func ParseClock(clock string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// MatchesClock 判断 now 是否精确落在 clock 指定的那一分钟窗口内。
// clock 非法时返回 false，提醒静默不触发。
func MatchesClock(now time.Time, clock string) bool {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return false
	}
	local := now.Local()
	return local.Hour() == hour && local.Minute() == minute
}
