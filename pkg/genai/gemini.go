package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/turi333-pixel/MoodFlow/config"
	"github.com/turi333-pixel/MoodFlow/internal/model"
)

// GeminiClient 调用 generateContent REST 接口。
// 响应通过 responseSchema 约束成 JSON，解码失败视同调用失败。
type GeminiClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
}

func NewGeminiClient() (*GeminiClient, error) {
	cfg := config.Cfg

	if cfg.GenAIEndpoint == "" {
		return nil, errors.New("genai endpoint is empty")
	}

	return &GeminiClient{
		httpClient: &http.Client{
			// 整体超时兜底，调用方还会用 context 限定单次请求
			Timeout: time.Duration(cfg.GenAITimeoutSeconds+3) * time.Second,
		},
		endpoint: strings.TrimRight(cfg.GenAIEndpoint, "/"),
		apiKey:   cfg.GenAIAPIKey,
		model:    cfg.GenAIModel,
	}, nil
}

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// insightSchema 约束模型输出：摘要 + 3 条带分类的建议
var insightSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "summary": {"type": "STRING", "description": "A short empathetic summary"},
    "tips": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "title": {"type": "STRING"},
          "description": {"type": "STRING"},
          "category": {"type": "STRING", "description": "One of: activity, reflection, social, wellness"}
        },
        "required": ["title", "description", "category"]
      }
    }
  },
  "required": ["summary", "tips"]
}`)

func (c *GeminiClient) GenerateInsights(ctx context.Context, mood model.Mood, note string) (*model.MoodInsights, error) {
	payload := generateContentRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(mood, note)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode genai request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build genai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genai request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read genai response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("genai returned status %d: %s", resp.StatusCode, truncate(string(raw), 256))
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode genai response: %w", err)
	}

	text := firstText(decoded)
	if text == "" {
		return nil, errors.New("no response text from genai")
	}

	var insights model.MoodInsights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, fmt.Errorf("genai response is not valid insights JSON: %w", err)
	}

	if err := validateInsights(&insights); err != nil {
		return nil, err
	}

	return &insights, nil
}

func buildPrompt(mood model.Mood, note string) string {
	if strings.TrimSpace(note) == "" {
		note = "No note provided."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("The user is feeling %s.\n", mood))
	sb.WriteString(fmt.Sprintf("User's personal note: %q\n\n", note))
	sb.WriteString("Please provide:\n")
	sb.WriteString("1. A short, empathetic summary of their current state.\n")
	sb.WriteString("2. 3 actionable tips or tricks to help them navigate their day or improve their mental wellbeing based on this specific mood.\n\n")
	sb.WriteString("Be supportive, kind, and professional. Return the response in JSON format.")
	return sb.String()
}

func firstText(resp generateContentResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// validateInsights 结构校验：空摘要、建议数不是 3、未知分类都按失败处理
func validateInsights(insights *model.MoodInsights) error {
	if strings.TrimSpace(insights.Summary) == "" {
		return errors.New("genai insights missing summary")
	}
	if len(insights.Tips) != 3 {
		return fmt.Errorf("genai insights returned %d tips, want 3", len(insights.Tips))
	}
	for _, tip := range insights.Tips {
		if !tip.Category.Valid() {
			return fmt.Errorf("genai insights tip has invalid category %q", tip.Category)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
