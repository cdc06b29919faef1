package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/turi333-pixel/MoodFlow/pkg/metrics"
)

// WebhookNotifier 把提醒 POST 到用户配置的 webhook（如 ntfy、飞书机器人）。
type WebhookNotifier struct {
	httpClient *http.Client
	url        string
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		url:        url,
	}
}

type webhookPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, title, message string) error {
	body, err := json.Marshal(webhookPayload{
		Title:   title,
		Message: message,
		SentAt:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		metrics.GetMetrics().RecordNotifySent(ctx, "error")
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		metrics.GetMetrics().RecordNotifySent(ctx, "error")
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	metrics.GetMetrics().RecordNotifySent(ctx, "success")
	return nil
}
