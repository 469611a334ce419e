package serve

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/webicons/internal/cmd/application"
	"github.com/agentstation/webicons/internal/server"
)

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func parse(t *testing.T, mock *application.Mock, args ...string) (server.Config, error) {
	t.Helper()
	cmd := NewCommand(mock)
	require.NoError(t, cmd.ParseFlags(args))
	return parseConfig(cmd, mock)
}

func TestParseConfig_Defaults(t *testing.T) {
	clearEnv(t, "HTTP_HOST", "HTTP_PORT")

	cfg, err := parse(t, &application.Mock{FaviconPathFunc: func() string { return "static/favicon.ico" }})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
	assert.Equal(t, "/api/v1", cfg.PathPrefix)
	assert.Equal(t, "static/favicon.ico", cfg.FaviconPath)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.False(t, cfg.AuthEnabled)
	assert.False(t, cfg.CORSEnabled)
}

func TestParseConfig_Flags(t *testing.T) {
	clearEnv(t, "HTTP_HOST", "HTTP_PORT")

	cfg, err := parse(t, &application.Mock{},
		"--port", "9000",
		"--prefix", "/v2",
		"--favicon", "icon.ico",
		"--cors-origins", "https://a.test,https://b.test",
		"--rate-limit", "0",
		"--read-timeout", "3s",
	)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/v2", cfg.PathPrefix)
	assert.Equal(t, "icon.ico", cfg.FaviconPath)
	assert.True(t, cfg.CORSEnabled)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
}

func TestParseConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("HTTP_PORT", "8181")

	cfg, err := parse(t, &application.Mock{}, "--port", "9000")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8181", cfg.Addr())

	t.Setenv("HTTP_PORT", "0")
	_, err = parse(t, &application.Mock{})
	assert.Error(t, err)
}

func TestParseConfig_Auth(t *testing.T) {
	clearEnv(t, "HTTP_HOST", "HTTP_PORT")
	clearEnv(t, APIKeyEnv)

	_, err := parse(t, &application.Mock{}, "--auth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), APIKeyEnv)

	t.Setenv(APIKeyEnv, "secret")
	cfg, err := parse(t, &application.Mock{}, "--auth")
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestStartWithGracefulShutdown(t *testing.T) {
	mock := &application.Mock{}
	cfg := server.DefaultConfig()
	cfg.Port = 0

	srv, err := server.New(mock, cfg)
	require.NoError(t, err)

	httpServer := &http.Server{Addr: "127.0.0.1:0", Handler: srv.Handler()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- startWithGracefulShutdown(ctx, httpServer, srv, mock.Logger())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
