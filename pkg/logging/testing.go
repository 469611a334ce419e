package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger writes JSON log lines to memory so tests can inspect them.
type TestLogger struct {
	*zerolog.Logger
	buf *bytes.Buffer
}

// Entry is one decoded log line.
type Entry map[string]any

// Message returns the entry's message field.
func (e Entry) Message() string {
	s, _ := e[zerolog.MessageFieldName].(string)
	return s
}

// NewTestLogger returns a trace-level logger that records into memory.
// The global level is restored when the test ends.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	return &TestLogger{Logger: &logger, buf: buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.buf.String()
}

// Entries decodes the recorded lines. Lines that are not JSON are skipped.
func (tl *TestLogger) Entries() []Entry {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(tl.buf.Bytes()))
	for sc.Scan() {
		var e Entry
		if json.Unmarshal(sc.Bytes(), &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Find returns the first entry logged with msg.
func (tl *TestLogger) Find(msg string) (Entry, bool) {
	for _, e := range tl.Entries() {
		if e.Message() == msg {
			return e, true
		}
	}
	return nil, false
}

// AssertContains fails t unless the raw output contains substr.
func (tl *TestLogger) AssertContains(t testing.TB, substr string) {
	t.Helper()
	if !strings.Contains(tl.Output(), substr) {
		t.Errorf("log output does not contain %q\noutput:\n%s", substr, tl.Output())
	}
}

// AssertField fails t unless the entry logged with msg has key set to want.
// Values are compared in their fmt %v form.
func (tl *TestLogger) AssertField(t testing.TB, msg, key string, want any) {
	t.Helper()
	e, ok := tl.Find(msg)
	if !ok {
		t.Errorf("no log entry %q\noutput:\n%s", msg, tl.Output())
		return
	}
	got, ok := e[key]
	if !ok {
		t.Errorf("log entry %q has no field %q: %v", msg, key, e)
		return
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("log entry %q field %q = %v, want %v", msg, key, got, want)
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// CaptureLoggingForTest routes the package default logger into a TestLogger
// until the test ends.
func CaptureLoggingForTest(t testing.TB) *TestLogger {
	t.Helper()

	original := *Default()
	tl := NewTestLogger(t)
	SetDefault(*tl.Logger)
	t.Cleanup(func() { SetDefault(original) })

	return tl
}
