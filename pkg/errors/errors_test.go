package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/webicons/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		resource string
		sentinel error
	}{
		{"shortcode", pkgerrors.ErrUnknownShortcode},
		{"emoji", pkgerrors.ErrUnknownEmoji},
		{"family", pkgerrors.ErrUnknownFamily},
		{"vendor", pkgerrors.ErrUnknownVendor},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			err := pkgerrors.NewNotFoundError(tt.resource, "x")
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.True(t, pkgerrors.IsNotFound(err))
			assert.False(t, pkgerrors.IsValidationError(err))
		})
	}

	t.Run("scoped message", func(t *testing.T) {
		err := pkgerrors.NewScopedNotFoundError("vendor", "Twemoji", "emojis")
		assert.Equal(t, `vendor "Twemoji" not found in emojis`, err.Error())
	})

	t.Run("unknown resource only matches ErrNotFound", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("sticker", "x")
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, errors.Is(err, pkgerrors.ErrUnknownVendor))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("resolving: %w", pkgerrors.NewNotFoundError("family", "stickers"))
		assert.True(t, errors.Is(wrapped, pkgerrors.ErrUnknownFamily))
	})
}

func TestEmptyTableError(t *testing.T) {
	err := pkgerrors.NewEmptyTableError("icons")
	assert.Equal(t, `family "icons" has no vendors`, err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrEmptyVendorTable))
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("id", "", "must not be empty")
		assert.Equal(t, "validation failed for field id: must not be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad request"}
		assert.Equal(t, "validation failed: bad request", err.Error())
	})
}

func TestCodepointError(t *testing.T) {
	base := errors.New("invalid syntax")
	err := pkgerrors.NewCodepointError("zz", base)

	assert.Contains(t, err.Error(), `"zz"`)
	assert.True(t, errors.Is(err, pkgerrors.ErrInvalidCodepoint))
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestIOError(t *testing.T) {
	t.Run("unreadable", func(t *testing.T) {
		err := pkgerrors.NewIOError("open", "/missing.json", errors.New("no such file"))
		assert.Equal(t, "IO error during open of /missing.json: no such file", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrConfigUnreadable))
		assert.True(t, pkgerrors.IsConfigError(err))
	})

	t.Run("deadline stays matchable", func(t *testing.T) {
		err := pkgerrors.WrapIO("read", "metadata.json", context.DeadlineExceeded)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.True(t, errors.Is(err, pkgerrors.ErrConfigUnreadable))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
	})
}

func TestParseError(t *testing.T) {
	err := pkgerrors.WrapParse("yaml", "metadata.json", errors.New("unexpected token"))
	assert.Equal(t, "parse error in yaml source metadata.json: unexpected token", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrConfigMalformed))
	assert.False(t, errors.Is(err, pkgerrors.ErrConfigUnreadable))
	assert.Nil(t, pkgerrors.WrapParse("yaml", "x", nil))
}

func TestConfigError(t *testing.T) {
	base := errors.New("missing")
	err := pkgerrors.NewConfigError("server", "port out of range", base)
	assert.Equal(t, "configuration error in server: port out of range", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestTimeoutError(t *testing.T) {
	cause := pkgerrors.NewIOError("read", "metadata.json", context.DeadlineExceeded)
	err := pkgerrors.NewTimeoutError("load", "5s", cause)
	assert.Equal(t, "operation load timed out after 5s: IO error during read of metadata.json: context deadline exceeded", err.Error())
	assert.True(t, pkgerrors.IsTimeout(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, pkgerrors.ErrConfigUnreadable)
	assert.Equal(t, "Timeout", pkgerrors.Kind(err))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"shortcode", pkgerrors.NewNotFoundError("shortcode", "x"), "UnknownShortcode"},
		{"emoji", pkgerrors.NewNotFoundError("emoji", "x"), "UnknownEmoji"},
		{"codepoint", pkgerrors.NewCodepointError("x", nil), "InvalidCodepoint"},
		{"family", pkgerrors.NewNotFoundError("family", "x"), "UnknownFamily"},
		{"vendor", pkgerrors.NewNotFoundError("vendor", "x"), "UnknownVendor"},
		{"empty", pkgerrors.NewEmptyTableError("icons"), "EmptyVendorTable"},
		{"unreadable", pkgerrors.NewIOError("open", "x", nil), "ConfigUnreadable"},
		{"malformed", pkgerrors.NewParseError("yaml", "x", "bad", nil), "ConfigMalformed"},
		{"input", pkgerrors.NewValidationError("id", "", "empty"), "InvalidInput"},
		{"other", errors.New("boom"), "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.Kind(tt.err))
		})
	}
}
