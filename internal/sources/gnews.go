// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
	"github.com/medleyhq/medley/internal/models"
)

// gnewsMaxRetries bounds the 429 retry loop. GNews quota resets are
// slow, so retrying more than a few times just burns the quota faster.
const gnewsMaxRetries = 3

// GNewsClient talks to the GNews v4 API.
type GNewsClient struct {
	baseURL     string
	token       string
	maxArticles int
	httpClient  *http.Client
}

// NewGNewsClient creates a GNews client from configuration.
func NewGNewsClient(cfg *config.GNewsConfig) *GNewsClient {
	maxArticles := cfg.MaxArticles
	if maxArticles <= 0 {
		maxArticles = 100
	}
	return &GNewsClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		token:       cfg.Token,
		maxArticles: maxArticles,
		httpClient:  newHTTPClient(cfg.Timeout),
	}
}

// Search fetches English-language articles matching the query. An
// empty query falls back to general top headlines. Retries on HTTP 429
// with linear backoff, up to three attempts.
func (c *GNewsClient) Search(ctx context.Context, searchQuery string) ([]models.Article, error) {
	var reqURL string
	if searchQuery != "" {
		query := url.Values{}
		query.Set("q", searchQuery)
		query.Set("lang", "en")
		query.Set("max", fmt.Sprintf("%d", c.maxArticles))
		query.Set("token", c.token)
		reqURL = c.baseURL + "/search?" + query.Encode()
	} else {
		query := url.Values{}
		query.Set("category", "general")
		query.Set("max", fmt.Sprintf("%d", c.maxArticles))
		query.Set("token", c.token)
		reqURL = c.baseURL + "/top-headlines?" + query.Encode()
	}

	operation := "search"
	if searchQuery == "" {
		operation = "top_headlines"
	}

	for attempt := 1; attempt <= gnewsMaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request failed: %w", err)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.ObserveSourceRequest("gnews", operation, 0, time.Since(start))
			return nil, fmt.Errorf("execute request: %w", err)
		}
		metrics.ObserveSourceRequest("gnews", operation, resp.StatusCode, time.Since(start))

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			metrics.SourceRateLimitRetries.WithLabelValues("gnews").Inc()

			if attempt == gnewsMaxRetries {
				return nil, fmt.Errorf("gnews: rate limit exceeded after %d attempts", gnewsMaxRetries)
			}

			retryDelay := time.Duration(attempt) * 2 * time.Second
			logging.Warn().Dur("retry_delay", retryDelay).Int("attempt", attempt).Msg("GNews rate limited (HTTP 429), retrying")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body := readBodyForError(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("gnews %s failed with status %d: %s", operation, resp.StatusCode, string(body))
		}

		var listResp models.ArticleListResponse
		err = json.NewDecoder(resp.Body).Decode(&listResp)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("gnews %s: failed to decode response: %w", operation, err)
		}

		return listResp.Articles, nil
	}

	return nil, fmt.Errorf("gnews: retry loop exhausted")
}
