package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/webicons/pkg/logging"
)

// TestChain tests middleware composition.
func TestChain(t *testing.T) {
	tests := []struct {
		name              string
		numMiddleware     int
		expectedCallOrder []string
	}{
		{"no middleware", 0, []string{"handler"}},
		{"single middleware", 1, []string{"m1", "handler"}},
		{"three middleware", 3, []string{"m1", "m2", "m3", "handler"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var callOrder []string

			middlewares := make([]func(http.Handler) http.Handler, tt.numMiddleware)
			for i := 0; i < tt.numMiddleware; i++ {
				name := "m" + string(rune('1'+i))
				middlewares[i] = func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						callOrder = append(callOrder, name)
						next.ServeHTTP(w, r)
					})
				}
			}

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				callOrder = append(callOrder, "handler")
				w.WriteHeader(http.StatusOK)
			})

			Chain(middlewares...)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/emojis/1f600", nil))

			if strings.Join(callOrder, ",") != strings.Join(tt.expectedCallOrder, ",") {
				t.Errorf("expected call order %v, got %v", tt.expectedCallOrder, callOrder)
			}
		})
	}
}

// TestLogger tests request logging and the per-request context logger.
func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{"success logs info", http.StatusOK, "info"},
		{"redirect logs info", http.StatusSeeOther, "info"},
		{"not found logs warn", http.StatusNotFound, "warn"},
		{"server error logs error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).Debug().Msg("inside handler")
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest("GET", "/emojis/grinning?vendor=OpenMoji", nil)
			w := httptest.NewRecorder()
			Logger(&logger)(handler).ServeHTTP(w, req)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if len(lines) != 2 {
				t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), buf.String())
			}

			var inner map[string]any
			if err := json.Unmarshal([]byte(lines[0]), &inner); err != nil {
				t.Fatalf("invalid handler log: %v", err)
			}
			if inner["path"] != "/emojis/grinning" {
				t.Errorf("handler log missing path, got %v", inner["path"])
			}
			if inner["request_id"] == "" || inner["request_id"] == nil {
				t.Error("handler log missing request_id")
			}

			var entry map[string]any
			if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
				t.Fatalf("invalid request log: %v", err)
			}
			if entry["level"] != tt.expectedLevel {
				t.Errorf("expected level %s, got %v", tt.expectedLevel, entry["level"])
			}
			if int(entry["status"].(float64)) != tt.status {
				t.Errorf("expected status %d, got %v", tt.status, entry["status"])
			}
			if entry["query"] != "vendor=OpenMoji" {
				t.Errorf("expected query logged, got %v", entry["query"])
			}
			if entry["request_id"] != w.Header().Get(RequestIDHeader) {
				t.Errorf("request_id %v does not match response header %q", entry["request_id"], w.Header().Get(RequestIDHeader))
			}
		})
	}
}

// TestLogger_PropagatesRequestID keeps a caller-supplied request ID.
func TestLogger_PropagatesRequestID(t *testing.T) {
	logger := zerolog.Nop()
	var seen string

	handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
	})

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	Logger(&logger)(handler).ServeHTTP(w, req)

	if seen != "abc-123" {
		t.Errorf("expected request ID abc-123 in context, got %q", seen)
	}
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected request ID echoed, got %q", got)
	}
}

// TestRecovery tests panic recovery.
func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recovery(&logger)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/emojis/1f600", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}

	var resp struct {
		Data  any `json:"data"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %s", resp.Error.Code)
	}
	if !strings.Contains(buf.String(), "Panic recovered") {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
}

// TestRecovery_NoPanic passes responses through untouched.
func TestRecovery_NoPanic(t *testing.T) {
	logger := zerolog.Nop()
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	Recovery(&logger)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusAccepted {
		t.Errorf("expected status 202, got %d", w.Code)
	}
}

// TestResponseWriter tests status capture.
func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusTeapot)

	if rw.statusCode != http.StatusTeapot {
		t.Errorf("expected captured status 418, got %d", rw.statusCode)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected underlying status 418, got %d", rec.Code)
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap should return the underlying writer")
	}
}
