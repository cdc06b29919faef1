package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/response"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 时间窗口
	Window time.Duration
	// 时间窗口内最大请求数
	MaxRequests int
	// 超限时返回的业务错误
	Err errors.Definition
}

// RateLimiter 进程内滑动窗口限流器。单用户单进程，不需要共享存储。
type RateLimiter struct {
	cfg RateLimitConfig

	mu    sync.Mutex
	hits  []time.Time
	nowFn func() time.Time
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:   cfg,
		nowFn: time.Now,
	}
}

// Allow 检查是否允许请求，返回窗口内已用次数。
func (rl *RateLimiter) Allow() (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.nowFn()
	windowStart := now.Add(-rl.cfg.Window)

	// 淘汰窗口外的记录
	kept := rl.hits[:0]
	for _, t := range rl.hits {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	rl.hits = kept

	if len(rl.hits) >= rl.cfg.MaxRequests {
		return false, len(rl.hits)
	}

	rl.hits = append(rl.hits, now)
	return true, len(rl.hits)
}

// RateLimitMiddleware 创建限流中间件
func RateLimitMiddleware(cfg RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(cfg)

	return func(ctx context.Context, c *app.RequestContext) {
		allowed, count := limiter.Allow()

		c.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		remaining := cfg.MaxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		c.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			response.Error(ctx, c, cfg.Err)
			c.Abort()
			return
		}

		c.Next(ctx)
	}
}

// InsightRateLimitMiddleware AI 洞察接口限流，防止打爆上游配额
func InsightRateLimitMiddleware() app.HandlerFunc {
	return RateLimitMiddleware(RateLimitConfig{
		Window:      time.Duration(config.Cfg.InsightRateWindowSeconds) * time.Second,
		MaxRequests: config.Cfg.InsightRateMaxRequests,
		Err:         errors.InsightRateLimited,
	})
}
