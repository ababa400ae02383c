package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Severity levels for operator alerts
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Webhook posts operator alerts to a configured HTTP endpoint. Alerts are
// best-effort: callers log a returned error and move on. With no URL
// configured, alerts are logged locally and Notify always succeeds.
type Webhook struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewWebhook creates an alert webhook client
func NewWebhook(url string, log *slog.Logger) *Webhook {
	return &Webhook{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

type webhookPayload struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

// Notify sends one alert
func (w *Webhook) Notify(ctx context.Context, message, severity string) error {
	if w.url == "" {
		w.log.Warn("operator alert", "severity", severity, "message", message)
		return nil
	}

	body, err := json.Marshal(webhookPayload{Text: message, Severity: severity})
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver alert: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

	if resp.StatusCode >= 300 {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
	}
	return nil
}
