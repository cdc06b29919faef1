package middleware

import (
	"testing"
	"time"

	"github.com/turi333-pixel/MoodFlow/pkg/errors"
)

func TestRateLimiterAllowsWithinWindow(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		Window:      time.Minute,
		MaxRequests: 3,
		Err:         errors.InsightRateLimited,
	})

	for i := 0; i < 3; i++ {
		if allowed, _ := limiter.Allow(); !allowed {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}

	if allowed, count := limiter.Allow(); allowed {
		t.Fatalf("request over limit allowed, count = %d", count)
	}
}

func TestRateLimiterSlidesWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	limiter := NewRateLimiter(RateLimitConfig{
		Window:      time.Minute,
		MaxRequests: 2,
		Err:         errors.InsightRateLimited,
	})
	limiter.nowFn = func() time.Time { return now }

	limiter.Allow()
	limiter.Allow()
	if allowed, _ := limiter.Allow(); allowed {
		t.Fatal("third request within the window should be denied")
	}

	// 窗口滑过之后重新放行
	now = now.Add(61 * time.Second)
	if allowed, _ := limiter.Allow(); !allowed {
		t.Fatal("request after window expiry should be allowed")
	}
}
