package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
)

// Notifier 提醒触达通道。失败仅记录日志，应用内提醒不依赖它。
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

var (
	notifier Notifier
	once     sync.Once
)

// Init 初始化通知通道：配置了 webhook 就走 webhook，否则只打日志。
func Init() {
	once.Do(func() {
		if url := config.Cfg.NotifyWebhookURL; url != "" {
			notifier = NewWebhookNotifier(url)
			logger.Logger.Info("Notifier initialized", zap.String("channel", "webhook"))
			return
		}
		notifier = &LogNotifier{}
		logger.Logger.Info("Notifier initialized", zap.String("channel", "log"))
	})
}

func Get() Notifier {
	if notifier == nil {
		Init()
	}
	return notifier
}

// LogNotifier 仅写日志的降级通道
type LogNotifier struct{}

func (n *LogNotifier) Notify(ctx context.Context, title, message string) error {
	logger.Logger.Info("Reminder notification",
		zap.String("title", title),
		zap.String("message", message),
	)
	return nil
}
