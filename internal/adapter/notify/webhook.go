package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const (
	webhookTimeout    = 10 * time.Second
	defaultRetryAfter = 5 * time.Second
	maxErrorBody      = 512
)

// ThrottledError reports that the webhook endpoint asked to slow down.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e ThrottledError) Error() string {
	return fmt.Sprintf("webhook throttled, retry after %s", e.RetryAfter)
}

// WebhookSender posts notifications as JSON to an HTTP endpoint.
type WebhookSender struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookSender validates the endpoint and creates a sender with a default timeout.
func NewWebhookSender(endpoint string, logger *slog.Logger) (*WebhookSender, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &WebhookSender{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: webhookTimeout,
		},
	}, nil
}

func (s *WebhookSender) Send(ctx context.Context, n model.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", string(n.Kind))
	req.Header.Set("X-Recipient", n.Recipient)
	req.Header.Set("Idempotency-Key", n.Key())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", n.Kind, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return ThrottledError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		s.logger.WarnContext(ctx, "webhook rejected notification",
			slog.Int("status", resp.StatusCode), slog.String("body", string(snippet)))
		return fmt.Errorf("webhook error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return defaultRetryAfter
}
