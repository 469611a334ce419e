package response

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	webiconsErrors "github.com/agentstation/webicons/pkg/errors"
)

// TestJSON tests the JSON helper function.
func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, Success(map[string]string{"test": "data"}))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", ct)
	}

	var decoded Response
	if err := json.NewDecoder(w.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Data == nil {
		t.Error("expected decoded Data to be set")
	}
	if decoded.Error != nil {
		t.Error("expected decoded Error to be nil")
	}
}

type page string

func (p page) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(p))
	return int64(n), err
}

// TestHTML tests writing a rendered page.
func TestHTML(t *testing.T) {
	w := httptest.NewRecorder()
	HTML(w, "text/html; charset=utf-8", page("<!DOCTYPE html><html></html>"))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("unexpected Content-Type %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("<!DOCTYPE html>")) {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

// TestErrorHelpers tests all error response helpers.
func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name           string
		fn             func(w http.ResponseWriter)
		expectedStatus int
		expectedCode   string
	}{
		{"BadRequest", func(w http.ResponseWriter) { BadRequest(w, "Invalid request", "Missing field") }, http.StatusBadRequest, "BAD_REQUEST"},
		{"Unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "Auth failed", "Invalid key") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"NotFound", func(w http.ResponseWriter) { NotFound(w, "Resource not found", "") }, http.StatusNotFound, "NOT_FOUND"},
		{"RateLimited", func(w http.ResponseWriter) { RateLimited(w, "Too many requests") }, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"InternalError", func(w http.ResponseWriter) { InternalError(w, errors.New("internal error")) }, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"ServiceUnavailable", func(w http.ResponseWriter) { ServiceUnavailable(w, "Service down") }, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"GatewayTimeout", func(w http.ResponseWriter) { GatewayTimeout(w, "slow") }, http.StatusGatewayTimeout, "TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.fn(w)
			assertError(t, w, tt.expectedStatus, tt.expectedCode)
		})
	}
}

// TestErrorFromType tests typed error mapping.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"unknown family", webiconsErrors.NewNotFoundError("family", "stickers"), http.StatusNotFound, "UNKNOWN_FAMILY"},
		{"unknown vendor", webiconsErrors.NewScopedNotFoundError("vendor", "Fluent", "emojis"), http.StatusNotFound, "UNKNOWN_VENDOR"},
		{"unknown shortcode", webiconsErrors.NewNotFoundError("shortcode", "nope"), http.StatusNotFound, "UNKNOWN_SHORTCODE"},
		{"unknown emoji", webiconsErrors.NewNotFoundError("emoji", "41"), http.StatusNotFound, "UNKNOWN_EMOJI"},
		{"empty vendor table", webiconsErrors.NewEmptyTableError("emojis"), http.StatusNotFound, "EMPTY_VENDOR_TABLE"},
		{"invalid codepoint", webiconsErrors.NewCodepointError("zz", nil), http.StatusBadRequest, "INVALID_CODEPOINT"},
		{"invalid input", webiconsErrors.NewValidationError("id", "", "required"), http.StatusBadRequest, "BAD_REQUEST"},
		{"config unreadable", webiconsErrors.NewIOError("open", "metadata.json", os.ErrNotExist), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"config malformed", webiconsErrors.NewParseError("json", "metadata.json", "bad", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"load deadline", webiconsErrors.NewIOError("read", "metadata.json", context.DeadlineExceeded), http.StatusGatewayTimeout, "TIMEOUT"},
		{"load timeout", webiconsErrors.NewTimeoutError("metadata load", "5s", webiconsErrors.NewIOError("read", "metadata.json", context.DeadlineExceeded)), http.StatusGatewayTimeout, "TIMEOUT"},
		{"wrapped not found", fmt.Errorf("resolving: %w", webiconsErrors.NewNotFoundError("vendor", "x")), http.StatusNotFound, "UNKNOWN_VENDOR"},
		{"generic error", errors.New("generic error"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)
			assertError(t, w, tt.expectedStatus, tt.expectedCode)

			if got := Status(tt.err); got != tt.expectedStatus {
				t.Errorf("Status() = %d, want %d", got, tt.expectedStatus)
			}
		})
	}
}

// TestInternalErrorHidesCause ensures internal details never reach the client.
func TestInternalErrorHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorFromType(w, webiconsErrors.NewIOError("open", "/etc/webicons/metadata.json", os.ErrPermission))

	if bytes.Contains(w.Body.Bytes(), []byte("/etc/webicons")) {
		t.Errorf("response leaks source path: %s", w.Body.String())
	}
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if w.Code != status {
		t.Errorf("expected status %d, got %d", status, w.Code)
	}

	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data != nil {
		t.Error("expected Data to be nil for error response")
	}
	if resp.Error == nil {
		t.Fatal("expected Error to be set")
	}
	if resp.Error.Code != code {
		t.Errorf("expected Code=%s, got %s", code, resp.Error.Code)
	}
}
