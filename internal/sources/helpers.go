// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
)

const (
	// maxErrorBodySize limits how much of an error response body is read
	// for inclusion in the error message.
	maxErrorBodySize = 64 * 1024

	// defaultMaxRetries bounds the 429 retry loop.
	defaultMaxRetries = 5

	// defaultTimeout applies when a source config leaves Timeout zero.
	defaultTimeout = 30 * time.Second
)

// readBodyForError reads an error response body with a size cap.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// newHTTPClient builds the per-source http.Client with a sane timeout.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// doRequestWithRateLimit executes an HTTP request with automatic retry on
// HTTP 429. Backoff is exponential (1s, 2s, 4s, 8s, 16s) and a
// Retry-After header, when present, overrides the computed delay.
func doRequestWithRateLimit(client *http.Client, req *http.Request, source string, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	baseDelay := 1 * time.Second

	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("execute request: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		resp.Body.Close()
		metrics.SourceRateLimitRetries.WithLabelValues(source).Inc()

		if attempt == maxRetries {
			return nil, fmt.Errorf("%s: rate limit exceeded after %d retries", source, maxRetries)
		}

		retryDelay := baseDelay * (1 << attempt)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				retryDelay = seconds
			}
		}

		logging.Warn().Str("source", source).Dur("retry_delay", retryDelay).Int("attempt", attempt+1).Int("max_retries", maxRetries).Msg("Upstream rate limited (HTTP 429), retrying")

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("%s: retry loop exhausted", source)
}

// requestOptions carries the per-request knobs fetchJSON accepts.
type requestOptions struct {
	headers    map[string]string
	maxRetries int
}

// fetchJSON executes a GET request and decodes the JSON response into
// result, which must be a pointer. It handles 429 retries, non-2xx
// error reporting, and request metrics for every source client.
func fetchJSON(ctx context.Context, client *http.Client, reqURL, source, operation string, opts requestOptions, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range opts.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := doRequestWithRateLimit(client, req, source, opts.maxRetries)
	if err != nil {
		metrics.ObserveSourceRequest(source, operation, 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()

	metrics.ObserveSourceRequest(source, operation, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%s %s failed with status %d: %s", source, operation, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", source, operation, err)
	}

	return nil
}
