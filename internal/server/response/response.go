// Package response provides standardized HTTP response structures and helpers
// for the webicons server. JSON responses carry a data field on success and an
// error field on failure; attribution pages are written as HTML.
package response

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/agentstation/webicons/pkg/errors"
)

// Response represents the standardized API response structure.
// All endpoints return this format for consistency.
type Response struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

// Error represents an API error with code, message, and optional details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success creates a successful response with data.
func Success(data any) Response {
	return Response{
		Data:  data,
		Error: nil,
	}
}

// Fail creates an error response.
func Fail(code, message, details string) Response {
	return Response{
		Data: nil,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are ignored as headers are already sent (best effort)
	_ = json.NewEncoder(w).Encode(resp)
}

// HTML writes a rendered page with 200 status.
func HTML(w http.ResponseWriter, contentType string, page io.WriterTo) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = page.WriteTo(w)
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success(data))
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadRequest, Fail("BAD_REQUEST", message, details))
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusUnauthorized, Fail("UNAUTHORIZED", message, details))
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, details))
}

// RateLimited writes a 429 error response.
func RateLimited(w http.ResponseWriter, message string) {
	JSON(w, http.StatusTooManyRequests, Fail(
		"RATE_LIMITED",
		"Rate limit exceeded",
		message,
	))
}

// InternalError writes a 500 error response.
func InternalError(w http.ResponseWriter, _ error) {
	// The cause is logged by the caller, never exposed to the client
	JSON(w, http.StatusInternalServerError, Fail(
		"INTERNAL_ERROR",
		"Internal server error",
		"An unexpected error occurred",
	))
}

// ServiceUnavailable writes a 503 error response.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	JSON(w, http.StatusServiceUnavailable, Fail(
		"SERVICE_UNAVAILABLE",
		"Service unavailable",
		message,
	))
}

// GatewayTimeout writes a 504 error response.
func GatewayTimeout(w http.ResponseWriter, message string) {
	JSON(w, http.StatusGatewayTimeout, Fail(
		"TIMEOUT",
		"Metadata load timed out",
		message,
	))
}

// kindCodes maps error kinds to response codes.
var kindCodes = map[string]string{
	"UnknownShortcode": "UNKNOWN_SHORTCODE",
	"UnknownEmoji":     "UNKNOWN_EMOJI",
	"InvalidCodepoint": "INVALID_CODEPOINT",
	"UnknownFamily":    "UNKNOWN_FAMILY",
	"UnknownVendor":    "UNKNOWN_VENDOR",
	"EmptyVendorTable": "EMPTY_VENDOR_TABLE",
	"InvalidInput":     "BAD_REQUEST",
	"NotFound":         "NOT_FOUND",
}

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, context.DeadlineExceeded), errors.IsTimeout(err):
		return http.StatusGatewayTimeout
	case errors.IsConfigError(err):
		return http.StatusInternalServerError
	case errors.IsValidationError(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorFromType maps typed errors to appropriate HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	status := Status(err)
	switch status {
	case http.StatusGatewayTimeout:
		GatewayTimeout(w, "The vendor metadata could not be read in time")
	case http.StatusBadRequest, http.StatusNotFound:
		code, ok := kindCodes[errors.Kind(err)]
		if !ok {
			code = "BAD_REQUEST"
			if status == http.StatusNotFound {
				code = "NOT_FOUND"
			}
		}
		JSON(w, status, Fail(code, err.Error(), ""))
	default:
		InternalError(w, err)
	}
}
