package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newGeminiServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "gm-test" {
			t.Errorf("x-goog-api-key = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiProvider_Complete(t *testing.T) {
	srv := newGeminiServer(t, http.StatusOK, `{"candidates": [
		{"content": {"role": "model", "parts": [{"text": "full"}, {"text": "1. Fix build"}]}, "finishReason": "STOP"}
	]}`)

	p, err := NewGeminiProvider("gm-test", srv.URL)
	if err != nil {
		t.Fatalf("NewGeminiProvider() error = %v", err)
	}

	text, err := p.Complete(context.Background(), "gemini-2.0-flash", "plan please")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "full\n1. Fix build" {
		t.Errorf("Complete() = %q", text)
	}
}

func TestGeminiProvider_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{
			name:     "model not found",
			status:   http.StatusNotFound,
			body:     `{"error": {"code": 404, "message": "models/x is not found", "status": "NOT_FOUND"}}`,
			wantKind: KindModelUnavailable,
		},
		{
			name:     "server overloaded",
			status:   http.StatusServiceUnavailable,
			body:     `{"error": {"code": 503, "message": "The service is overloaded", "status": "UNAVAILABLE"}}`,
			wantKind: KindServer,
		},
		{
			name:     "bad key",
			status:   http.StatusForbidden,
			body:     `{"error": {"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"}}`,
			wantKind: KindAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newGeminiServer(t, tt.status, tt.body)

			p, err := NewGeminiProvider("gm-test", srv.URL)
			if err != nil {
				t.Fatalf("NewGeminiProvider() error = %v", err)
			}

			_, err = p.Complete(context.Background(), "x", "plan please")
			if KindOf(err) != tt.wantKind {
				t.Errorf("KindOf(err) = %s, want %s (%v)", KindOf(err), tt.wantKind, err)
			}
		})
	}
}
