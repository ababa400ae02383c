package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

// Record is an already-structured menu entry returned by the recognition
// service. Field presence varies between providers, hence the alternate
// title/desc fields. Price may arrive as a number or as raw text.
type Record struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Desc        string `json:"desc"`
	Price       any    `json:"price"`
	Category    string `json:"category"`
}

// Result is the recognition service's output: raw extracted text, and
// structured records when the provider managed to segment the menu itself.
type Result struct {
	Text  string   `json:"text,omitempty"`
	Items []Record `json:"items,omitempty"`
}

// recognizeResponse is the provider's wire envelope
type recognizeResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Text    string   `json:"text,omitempty"`
	Items   []Record `json:"items,omitempty"`
}

// Client calls the external text-recognition service over HTTP
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a recognition client. The timeout bounds the full
// recognition call; there is no automatic retry on expiry.
func NewClient(endpoint, apiKey string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Recognize submits an image to the recognition service and returns its
// extracted text and any structured records
func (c *Client) Recognize(ctx context.Context, image []byte) (*Result, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("image", "menu.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("recognition service returned status %d", resp.StatusCode)
	}

	var wire recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode recognition response: %w", err)
	}

	if !wire.Success {
		return nil, fmt.Errorf("recognition service reported failure: %s", wire.Error)
	}

	c.log.Debug("recognition call completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"structured_records", len(wire.Items),
		"text_length", len(wire.Text),
	)

	return &Result{
		Text:  wire.Text,
		Items: wire.Items,
	}, nil
}
