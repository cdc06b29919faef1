package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/internal/model/dto"
	pkgerrors "github.com/turi333-pixel/MoodFlow/pkg/errors"
	"github.com/turi333-pixel/MoodFlow/pkg/genai"
	"github.com/turi333-pixel/MoodFlow/pkg/logger"
	"github.com/turi333-pixel/MoodFlow/pkg/metrics"
)

// InsightService 负责当日 AI 洞察。AI 失败时整包降级为固定文案，
// 调用方永远能拿到一份合法的洞察，不向外暴露上游错误。
type InsightService struct{}

var (
	insightService *InsightService
	insightOnce    sync.Once
)

func Insight() *InsightService {
	insightOnce.Do(func() {
		insightService = &InsightService{}
	})
	return insightService
}

// GenerateInsights 请求当日洞察。返回的 source 标记结果来自 AI 还是降级文案。
func (s *InsightService) GenerateInsights(
	ctx context.Context,
	req dto.GetInsightsRequest,
) (*model.MoodInsights, string, error) {
	mood := model.Mood(req.Mood)
	if !mood.Valid() {
		logger.Logger.Warn("Rejected unknown mood type", zap.String("mood", req.Mood))
		return nil, "", pkgerrors.MoodInvalid
	}

	timeout := time.Duration(config.Cfg.GenAITimeoutSeconds) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	insights, err := genai.GetClient().GenerateInsights(callCtx, mood, req.Note)
	elapsed := time.Since(start)

	if err != nil {
		logger.Logger.Warn("AI insight generation failed, serving fallback",
			zap.String("mood", string(mood)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		fallback := model.FallbackInsights()
		metrics.GetMetrics().RecordInsightRequest(ctx, model.InsightSourceFallback, elapsed.Seconds())
		return &fallback, model.InsightSourceFallback, nil
	}

	metrics.GetMetrics().RecordInsightRequest(ctx, model.InsightSourceAI, elapsed.Seconds())
	logger.Logger.Info("AI insights generated",
		zap.String("mood", string(mood)),
		zap.Int("tips", len(insights.Tips)),
		zap.Duration("elapsed", elapsed),
	)
	return insights, model.InsightSourceAI, nil
}
