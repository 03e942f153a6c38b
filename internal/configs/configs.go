/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures the client by reading operating system environment variables, including
the running environment, backend API base URL, realtime websocket URL, and the
locations of the log file and the persisted session token.
*/
package configs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AppConfig contains all configuration parameters required for the client to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Settings
	Environment string

	// Backend Endpoints
	APIBaseURL string
	WSURL      string

	// Local State
	LogFile   string
	TokenFile string

	// Network Settings
	HTTPTimeout time.Duration
}

// LoadConfig reads and parses the client configuration from environment variables.
// It provides default values for each configuration item and performs necessary type
// conversions and validation. It returns a pointer to the AppConfig struct and any
// error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// --- Backend Endpoints ---
	cfg.APIBaseURL = os.Getenv("HUSHCHAT_API_URL")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:80"
	}

	apiURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil || apiURL.Host == "" {
		return nil, fmt.Errorf("invalid HUSHCHAT_API_URL %q", cfg.APIBaseURL)
	}

	cfg.WSURL = os.Getenv("HUSHCHAT_WS_URL")
	if cfg.WSURL == "" {
		derived, err := deriveWSURL(apiURL)
		if err != nil {
			return nil, err
		}
		cfg.WSURL = derived
	}

	// --- Local State ---
	stateDir, err := defaultStateDir()
	if err != nil {
		return nil, err
	}

	cfg.LogFile = os.Getenv("HUSHCHAT_LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(stateDir, "hushchat.log")
	}

	cfg.TokenFile = os.Getenv("HUSHCHAT_TOKEN_FILE")
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(stateDir, "token")
	}

	// --- Network Settings ---
	timeoutStr := os.Getenv("HUSHCHAT_HTTP_TIMEOUT")
	if timeoutStr == "" {
		timeoutStr = "15"
	}
	timeoutSec, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HUSHCHAT_HTTP_TIMEOUT environment variable: %w", err)
	}
	if timeoutSec <= 0 {
		return nil, fmt.Errorf("HUSHCHAT_HTTP_TIMEOUT must be positive, got %d", timeoutSec)
	}
	cfg.HTTPTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

// deriveWSURL converts the API base URL into the websocket endpoint URL
// ("http" becomes "ws", "https" becomes "wss", path is "/socket").
func deriveWSURL(apiURL *url.URL) (string, error) {
	wsURL := *apiURL

	switch apiURL.Scheme {
	case "http":
		wsURL.Scheme = "ws"
	case "https":
		wsURL.Scheme = "wss"
	default:
		return "", fmt.Errorf("cannot derive websocket URL from API scheme %q", apiURL.Scheme)
	}

	wsURL.Path = "/socket"

	return wsURL.String(), nil
}

// defaultStateDir returns the per-user directory used for the log file and
// the persisted session token, creating it if necessary.
func defaultStateDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve user config dir: %w", err)
	}

	dir := filepath.Join(base, "hushchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("cannot create state dir %s: %w", dir, err)
	}

	return dir, nil
}
