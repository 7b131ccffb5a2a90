package http

import (
	"weather-watchlist/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type nopLogger struct{}

func (nopLogger) LogRequest(string, string, map[string]string, string) {}

func (nopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (nopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls to the application log. Bodies are only logged at debug level.
type ZapLogger struct {
	// Name identifies the remote system in every entry.
	Name string
}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (l ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Debug("outbound response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("response_size", len(responseBody)))
}

func (l ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound call failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}
