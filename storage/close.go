package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/pkg/logger"
)

// Close 优雅关闭存储后端。disk 后端是空操作，redis 后端断开连接。
func Close() {
	if kv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Logger.Info("Closing storage backend...")

	if err := kv.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close storage backend", zap.Error(err))
	} else {
		logger.Logger.Info("Storage backend closed successfully")
	}
}
