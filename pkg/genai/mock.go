package genai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/turi333-pixel/MoodFlow/internal/model"
)

type MockCall struct {
	Mood model.Mood
	Note string
}

// MockClient 可配置的 AI 客户端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool

	// FailAlways 置为 true 时，每次调用都失败（模拟持续故障的后端）
	FailAlways bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockClient) GenerateInsights(ctx context.Context, mood model.Mood, note string) (*model.MoodInsights, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Mood: mood, Note: note})

	if m.FailAlways {
		return nil, errors.New("mock genai permanent failure")
	}
	if m.FailNext {
		m.FailNext = false
		return nil, errors.New("mock genai failure")
	}

	return &model.MoodInsights{
		Summary: fmt.Sprintf("Mock summary for a %s day.", mood),
		Tips: []model.Tip{
			{Title: "Mock Walk", Description: "Take a ten minute walk outside.", Category: model.TipCategoryActivity},
			{Title: "Mock Journal", Description: "Write down one thing on your mind.", Category: model.TipCategoryReflection},
			{Title: "Mock Call", Description: "Call someone you trust.", Category: model.TipCategorySocial},
		},
	}, nil
}
