package genai

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
)

// Client 生成式 AI 客户端接口
type Client interface {
	// GenerateInsights 根据心情和笔记生成当日洞察
	// 单次外呼，不重试；任何失败都返回 error，降级由上层统一处理
	GenerateInsights(ctx context.Context, mood model.Mood, note string) (*model.MoodInsights, error)
}

var (
	genaiClient Client
	genaiOnce   sync.Once
	genaiErr    error
)

// Init 初始化 AI 客户端
func Init() error {
	genaiOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.GenAIProvider {
		case "gemini":
			genaiClient, genaiErr = NewGeminiClient()
		case "mock":
			genaiClient = NewMockClient()
		default:
			genaiErr = fmt.Errorf("unsupported genai provider: %s", cfg.GenAIProvider)
		}

		if genaiErr != nil {
			logger.Logger.Error("Failed to initialize genai client", zap.Error(genaiErr))
			return
		}

		logger.Logger.Info("GenAI client initialized successfully",
			zap.String("provider", cfg.GenAIProvider),
			zap.String("model", cfg.GenAIModel),
		)
	})

	return genaiErr
}

func GetClient() Client {
	if genaiClient == nil {
		panic("genai client not initialized, call genai.Init() first")
	}
	return genaiClient
}
