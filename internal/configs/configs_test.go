package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("HUSHCHAT_API_URL", "")
	t.Setenv("HUSHCHAT_WS_URL", "")
	t.Setenv("HUSHCHAT_HTTP_TIMEOUT", "")
	t.Setenv("HUSHCHAT_LOG_FILE", "")
	t.Setenv("HUSHCHAT_TOKEN_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:80", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:80/socket", cfg.WSURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.LogFile)
	assert.NotEmpty(t, cfg.TokenFile)
}

func TestLoadConfigDerivesSecureWSURL(t *testing.T) {
	t.Setenv("HUSHCHAT_API_URL", "https://chat.example.com")
	t.Setenv("HUSHCHAT_WS_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "wss://chat.example.com/socket", cfg.WSURL)
}

func TestLoadConfigExplicitWSURLWins(t *testing.T) {
	t.Setenv("HUSHCHAT_API_URL", "http://localhost:80")
	t.Setenv("HUSHCHAT_WS_URL", "ws://other:9000/socket")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ws://other:9000/socket", cfg.WSURL)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("HUSHCHAT_HTTP_TIMEOUT", "abc")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("HUSHCHAT_HTTP_TIMEOUT", "0")
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsBadAPIURL(t *testing.T) {
	t.Setenv("HUSHCHAT_API_URL", "://nope")

	_, err := LoadConfig()
	require.Error(t, err)
}
