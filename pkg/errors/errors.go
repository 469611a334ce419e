// Package errors provides custom error types for the webicons system.
// Every failure of the resolution pipeline is reported through one of these
// types so callers can branch with errors.Is instead of string matching.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the webicons system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrUnknownShortcode indicates that a shortcode has no entry in the emoji table
	ErrUnknownShortcode = errors.New("unknown shortcode")

	// ErrUnknownEmoji indicates a valid Unicode scalar that is not a known emoji
	ErrUnknownEmoji = errors.New("unknown emoji")

	// ErrInvalidCodepoint indicates an identifier that is not a valid hex Unicode scalar
	ErrInvalidCodepoint = errors.New("invalid codepoint")

	// ErrUnknownFamily indicates a family that is not configured or not recognized
	ErrUnknownFamily = errors.New("unknown family")

	// ErrUnknownVendor indicates a vendor missing from a family's vendor table
	ErrUnknownVendor = errors.New("unknown vendor")

	// ErrEmptyVendorTable indicates a family whose vendor table has no entries
	ErrEmptyVendorTable = errors.New("empty vendor table")

	// ErrConfigUnreadable indicates that the metadata source could not be opened or read
	ErrConfigUnreadable = errors.New("config unreadable")

	// ErrConfigMalformed indicates that the metadata source is structurally invalid
	ErrConfigMalformed = errors.New("config malformed")
)

// resourceSentinels maps NotFoundError resources to their kind-specific sentinel.
var resourceSentinels = map[string]error{
	"shortcode": ErrUnknownShortcode,
	"emoji":     ErrUnknownEmoji,
	"family":    ErrUnknownFamily,
	"vendor":    ErrUnknownVendor,
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string // "shortcode", "emoji", "family" or "vendor"
	ID       string
	Scope    string // optional parent, e.g. the family a vendor was looked up in
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("%s %q not found in %s", e.Resource, e.ID, e.Scope)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	sentinel, ok := resourceSentinels[e.Resource]
	return ok && target == sentinel
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewScopedNotFoundError creates a NotFoundError that names the collection searched.
func NewScopedNotFoundError(resource, id, scope string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, Scope: scope}
}

// EmptyTableError reports a family that exists but defines no vendors
type EmptyTableError struct {
	Family string
}

// Error implements the error interface
func (e *EmptyTableError) Error() string {
	return fmt.Sprintf("family %q has no vendors", e.Family)
}

// Is implements errors.Is support
func (e *EmptyTableError) Is(target error) bool {
	return target == ErrEmptyVendorTable || target == ErrNotFound
}

// NewEmptyTableError creates a new EmptyTableError
func NewEmptyTableError(family string) *EmptyTableError {
	return &EmptyTableError{Family: family}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// CodepointError represents an identifier that cannot be read as a Unicode scalar
type CodepointError struct {
	ID  string
	Err error
}

// Error implements the error interface
func (e *CodepointError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid codepoint %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("invalid codepoint %q", e.ID)
}

// Unwrap implements errors.Unwrap
func (e *CodepointError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CodepointError) Is(target error) bool {
	return target == ErrInvalidCodepoint || target == ErrInvalidInput
}

// NewCodepointError creates a new CodepointError
func NewCodepointError(id string, err error) *CodepointError {
	return &CodepointError{ID: id, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s source %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrConfigMalformed
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "open", "read", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrConfigUnreadable
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// TimeoutError represents an operation timeout
type TimeoutError struct {
	Operation string
	Duration  string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	if e.Duration != "" {
		return fmt.Sprintf("operation %s timed out after %s: %s", e.Operation, e.Duration, e.Message)
	}
	return fmt.Sprintf("operation %s timed out: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NewTimeoutError creates a new TimeoutError around the failure that hit the deadline
func NewTimeoutError(operation, duration string, err error) *TimeoutError {
	message := "deadline exceeded"
	if err != nil {
		message = err.Error()
	}
	return &TimeoutError{
		Operation: operation,
		Duration:  duration,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsConfigError checks if an error comes from loading the metadata source
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigUnreadable) || errors.Is(err, ErrConfigMalformed)
}

// kinds is ordered from most to least specific.
var kinds = []struct {
	sentinel error
	name     string
}{
	{ErrUnknownShortcode, "UnknownShortcode"},
	{ErrUnknownEmoji, "UnknownEmoji"},
	{ErrInvalidCodepoint, "InvalidCodepoint"},
	{ErrUnknownFamily, "UnknownFamily"},
	{ErrUnknownVendor, "UnknownVendor"},
	{ErrEmptyVendorTable, "EmptyVendorTable"},
	{ErrTimeout, "Timeout"},
	{ErrConfigUnreadable, "ConfigUnreadable"},
	{ErrConfigMalformed, "ConfigMalformed"},
	{ErrInvalidInput, "InvalidInput"},
	{ErrNotFound, "NotFound"},
}

// Kind returns the taxonomy name of err, or "Internal" when it matches none.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.name
		}
	}
	return "Internal"
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
