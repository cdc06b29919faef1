package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/turi333-pixel/MoodFlow/internal/model/dto"
	"github.com/turi333-pixel/MoodFlow/internal/service"
	"github.com/turi333-pixel/MoodFlow/pkg/response"
)

// GetInsights 请求当日 AI 洞察，AI 不可用时返回降级文案
// POST /v1/insights
func GetInsights(ctx context.Context, c *app.RequestContext) {
	var req dto.GetInsightsRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	insights, source, err := service.Insight().GenerateInsights(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, insights, map[string]interface{}{
		"source": source,
	})
}
