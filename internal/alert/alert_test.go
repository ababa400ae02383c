package alert

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BVEnterprisess/table1837-tavern-app/pkg/logger"
)

func TestWebhook_Notify(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, logger.New("error"))

	if err := wh.Notify(context.Background(), "recognition down", SeverityCritical); err != nil {
		t.Fatalf("Notify() unexpected error = %v", err)
	}

	if got.Text != "recognition down" {
		t.Errorf("text = %q, want 'recognition down'", got.Text)
	}
	if got.Severity != SeverityCritical {
		t.Errorf("severity = %q, want critical", got.Severity)
	}
}

func TestWebhook_Notify_NoURL(t *testing.T) {
	wh := NewWebhook("", logger.New("error"))

	// With no webhook configured, alerts are logged and never fail
	if err := wh.Notify(context.Background(), "something broke", SeverityWarning); err != nil {
		t.Errorf("Notify() without URL must succeed, got %v", err)
	}
}

func TestWebhook_Notify_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, logger.New("error"))

	if err := wh.Notify(context.Background(), "something broke", SeverityWarning); err == nil {
		t.Error("expected error for non-2xx webhook response")
	}
}
