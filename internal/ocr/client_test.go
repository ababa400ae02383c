package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/pkg/logger"
)

func TestClient_Recognize(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart request: %v", err)
		}
		if _, _, err := r.FormFile("image"); err != nil {
			t.Errorf("expected image part: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"text":"Old Fashioned $14.00","items":[{"name":"Old Fashioned","price":"$14.00"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", time.Minute, logger.New("error"))

	result, err := client.Recognize(context.Background(), []byte("fake image"))
	if err != nil {
		t.Fatalf("Recognize() unexpected error = %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if result.Text != "Old Fashioned $14.00" {
		t.Errorf("unexpected text %q", result.Text)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "Old Fashioned" {
		t.Errorf("unexpected items %+v", result.Items)
	}
}

func TestClient_Recognize_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Minute, logger.New("error"))

	if _, err := client.Recognize(context.Background(), []byte("fake image")); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestClient_Recognize_ReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error":"unreadable image"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Minute, logger.New("error"))

	if _, err := client.Recognize(context.Background(), []byte("fake image")); err == nil {
		t.Error("expected error when the provider reports failure")
	}
}

func TestClient_Recognize_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Minute, logger.New("error"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Recognize(ctx, []byte("fake image")); err == nil {
		t.Error("expected error when the context deadline expires")
	}
}
