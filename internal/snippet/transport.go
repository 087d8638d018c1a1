package snippet

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// retryTransport retries snippet service calls that fail transiently. The
// public service rate-limits anonymous uploads, so 429 is treated the same as
// a 5xx: back off exponentially and try again.
type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
	baseDelay  time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := range t.maxRetries + 1 {
		// Upload bodies are consumed on send; rewind before each attempt.
		if req.Body != nil && req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, fmt.Errorf("cloning request body: %w", bodyErr)
			}

			req.Body = body
		}

		resp, err = t.base.RoundTrip(req)
		if err != nil {
			return nil, fmt.Errorf("round trip: %w", err)
		}

		if !shouldRetry(resp.StatusCode) {
			return resp, nil
		}

		if attempt < t.maxRetries {
			// Release the connection before waiting.
			_ = resp.Body.Close()

			delay := t.baseDelay * (1 << attempt)

			select {
			case <-req.Context().Done():
				return nil, fmt.Errorf("retry wait: %w", req.Context().Err())
			case <-time.After(delay):
			}
		}
	}

	return resp, nil
}

func shouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		(statusCode >= http.StatusInternalServerError && statusCode <= http.StatusGatewayTimeout)
}

// loggingTransport traces service calls at debug level. It is stacked onto
// the retry transport only when --verbose is given.
type loggingTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	slog.Debug("http request", "method", req.Method, "url", req.URL.String())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		slog.Debug("http error",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
			"duration", time.Since(start),
		)

		return nil, fmt.Errorf("logging round trip: %w", err)
	}

	slog.Debug("http response",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return resp, nil
}
