package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/turi333-pixel/MoodFlow/internal/model"
	"github.com/turi333-pixel/MoodFlow/pkg/response"
)

// ListMoods 返回全部可选心情
// GET /v1/moods
func ListMoods(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, model.MoodCatalog)
}
