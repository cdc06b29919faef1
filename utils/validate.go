package utils

import (
	"regexp"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidateClock 校验 24 小时制 HH:MM 字符串。
func ValidateClock(clock string) bool {
	return clockPattern.MatchString(clock)
}
