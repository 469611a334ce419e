// Package application provides test doubles for the command application interface.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/webicons"
	app "github.com/agentstation/webicons/cmd/application"
	"github.com/agentstation/webicons/pkg/logging"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    WebiconsFunc: func(...webicons.Option) (webicons.Client, error) {
//	        return webicons.New(webicons.WithSource(metadata.BytesSource("test.json", doc)))
//	    },
//	}
//	cmd := resolve.NewCommand(mock)
type Mock struct {
	WebiconsFunc     func(opts ...webicons.Option) (webicons.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	FaviconPathFunc  func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Webicons returns a client using the mock function, or a client backed by
// the embedded metadata document.
func (m *Mock) Webicons(opts ...webicons.Option) (webicons.Client, error) {
	if m.WebiconsFunc != nil {
		return m.WebiconsFunc(opts...)
	}
	return webicons.New(append([]webicons.Option{webicons.WithEmbeddedConfig()}, opts...)...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// FaviconPath returns the favicon path using the mock function or "".
func (m *Mock) FaviconPath() string {
	if m.FaviconPathFunc != nil {
		return m.FaviconPathFunc()
	}
	return ""
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ app.Application = (*Mock)(nil)
