/*
Package logx provides a structured logging wrapper based on zerolog.

This file contains an http.RoundTripper wrapper used to log outbound API request
lifecycle information such as method, path, response status, and latency.
*/
package logx

import (
	"net/http"
	"time"
)

// RoundTripLogger wraps an http.RoundTripper and logs every outbound request.
// Responses with a 4xx status are logged at Warn level, 5xx at Error level,
// everything else at Info level. Transport failures are logged at Error level.
type RoundTripLogger struct {
	// Base is the underlying transport. A nil Base uses http.DefaultTransport.
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (l RoundTripLogger) RoundTrip(req *http.Request) (*http.Response, error) {
	base := l.Base
	if base == nil {
		base = http.DefaultTransport
	}

	logger := Logger().With().
		Str("component", "api").
		Str("request_method", req.Method).
		Str("request_path", req.URL.Path).
		Logger()

	t1 := time.Now()
	res, err := base.RoundTrip(req)
	if err != nil {
		logger.Error().Err(err).Dur("latency", time.Since(t1)).Msg("Request failed")
		return nil, err
	}

	logEvent := logger.Info()
	if res.StatusCode >= 500 {
		logEvent = logger.Error()
	} else if res.StatusCode >= 400 {
		logEvent = logger.Warn()
	}

	logEvent.
		Int("status", res.StatusCode).
		Dur("latency", time.Since(t1)).
		Msg("Request completed")

	return res, nil
}
