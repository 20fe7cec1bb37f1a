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
	"sync"

	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
	"github.com/medleyhq/medley/internal/models"
)

// maxCricketKeys caps the rotation pool. The CricAPI free tier allows
// 100 hits per day per key, so multiple keys extend the effective
// quota without changing call sites.
const maxCricketKeys = 4

// CricketClient talks to CricAPI. Responses arrive wrapped in an
// envelope whose status field is the string "success" on healthy
// responses even when quota problems are reported with HTTP 200, so
// the client inspects the envelope and rotates API keys on failure.
type CricketClient struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	maxPages   int

	mu       sync.Mutex
	keys     []string
	keyIndex int
}

// NewCricketClient creates a CricAPI client from configuration. Keys
// beyond the rotation cap are ignored.
func NewCricketClient(cfg *config.CricketConfig) *CricketClient {
	keys := cfg.APIKeys
	if len(keys) > maxCricketKeys {
		keys = keys[:maxCricketKeys]
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	return &CricketClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: newHTTPClient(cfg.Timeout),
		pageSize:   pageSize,
		maxPages:   cfg.MaxPages,
		keys:       keys,
	}
}

// PageSize reports the upstream page size for offset pagination.
func (c *CricketClient) PageSize() int { return c.pageSize }

func (c *CricketClient) currentKey() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.keys) == 0 {
		return "", 0
	}
	return c.keys[c.keyIndex], c.keyIndex
}

// rotateKey advances past a failed key. The index argument pins the
// rotation to the key that actually failed so concurrent callers do
// not skip keys that were never tried.
func (c *CricketClient) rotateKey(failedIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.keys) < 2 || c.keyIndex != failedIndex {
		return
	}
	c.keyIndex = (c.keyIndex + 1) % len(c.keys)
	metrics.SourceKeyRotations.WithLabelValues("cricket").Inc()
	logging.Warn().Int("key_index", c.keyIndex).Msg("CricAPI key exhausted, rotating to next key")
}

// get executes one CricAPI call, unwrapping the envelope and rotating
// through the key pool until a key succeeds or all keys have failed.
func get[T any](ctx context.Context, c *CricketClient, endpoint string, params url.Values) (T, error) {
	var zero T
	if len(c.keys) == 0 {
		return zero, fmt.Errorf("cricket: no API keys configured")
	}

	attempts := len(c.keys)
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		key, keyIndex := c.currentKey()

		query := url.Values{}
		query.Set("apikey", key)
		for k, values := range params {
			for _, value := range values {
				query.Add(k, value)
			}
		}
		reqURL := c.baseURL + "/" + endpoint + "?" + query.Encode()

		var envelope models.CricketEnvelope[T]
		err := fetchJSON(ctx, c.httpClient, reqURL, "cricket", endpoint, requestOptions{}, &envelope)
		if err == nil && envelope.Status == "success" {
			return envelope.Data, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("cricket %s: upstream status %q", endpoint, envelope.Status)
		}

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		c.rotateKey(keyIndex)
	}

	return zero, fmt.Errorf("cricket: all %d keys failed: %w", attempts, lastErr)
}

// CurrentMatches fetches the live matches list.
func (c *CricketClient) CurrentMatches(ctx context.Context) ([]models.CricketMatch, error) {
	params := url.Values{}
	params.Set("offset", "0")
	return get[[]models.CricketMatch](ctx, c, "currentMatches", params)
}

// AllMatches drains the offset-paginated matches endpoint.
func (c *CricketClient) AllMatches(ctx context.Context) ([]models.CricketMatch, error) {
	return FetchAllPages(ctx, c.pageSize, c.maxPages, func(ctx context.Context, page int) ([]models.CricketMatch, error) {
		params := url.Values{}
		params.Set("offset", fmt.Sprintf("%d", page*c.pageSize))
		return get[[]models.CricketMatch](ctx, c, "matches", params)
	})
}

// Series fetches the series list.
func (c *CricketClient) Series(ctx context.Context) ([]models.CricketSeries, error) {
	return get[[]models.CricketSeries](ctx, c, "series", url.Values{})
}

// Countries fetches the country list with flag images.
func (c *CricketClient) Countries(ctx context.Context) ([]models.CricketCountry, error) {
	params := url.Values{}
	params.Set("offset", "0")
	return get[[]models.CricketCountry](ctx, c, "countries", params)
}

// Teams fetches the full team reference list.
func (c *CricketClient) Teams(ctx context.Context) ([]models.CricketTeamRef, error) {
	return get[[]models.CricketTeamRef](ctx, c, "teams", url.Values{})
}

// MatchScorecard fetches the scorecard for one match. The payload
// shape varies by match type, so it is returned as raw JSON for the
// API layer to pass through.
func (c *CricketClient) MatchScorecard(ctx context.Context, matchID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("id", matchID)
	return get[json.RawMessage](ctx, c, "match_scorecard", params)
}
