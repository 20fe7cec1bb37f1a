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

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/models"
)

// defaultGamePageSize matches the list sizes the catalog screens show.
const defaultGamePageSize = 10

// RAWGClient talks to the RAWG video game database API.
type RAWGClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *breaker
}

// NewRAWGClient creates a RAWG client from configuration.
func NewRAWGClient(cfg *config.RAWGConfig) *RAWGClient {
	return &RAWGClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
		breaker:    newBreaker("rawg"),
	}
}

func (c *RAWGClient) get(ctx context.Context, operation, path string, params url.Values, result any) error {
	query := url.Values{}
	query.Set("key", c.apiKey)
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	reqURL := c.baseURL + path + "?" + query.Encode()
	return c.breaker.execute(func() error {
		return fetchJSON(ctx, c.httpClient, reqURL, "rawg", operation, requestOptions{}, result)
	})
}

func (c *RAWGClient) gamesList(ctx context.Context, operation string, params url.Values) ([]models.Game, error) {
	if params.Get("page_size") == "" {
		params.Set("page_size", fmt.Sprintf("%d", defaultGamePageSize))
	}

	var resp models.GameListResponse
	if err := c.get(ctx, operation, "/games", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Trending returns games ordered by rating.
func (c *RAWGClient) Trending(ctx context.Context) ([]models.Game, error) {
	params := url.Values{}
	params.Set("ordering", "-rating")
	return c.gamesList(ctx, "trending", params)
}

// NewReleases returns games ordered by release date, newest first.
func (c *RAWGClient) NewReleases(ctx context.Context) ([]models.Game, error) {
	params := url.Values{}
	params.Set("ordering", "-released")
	return c.gamesList(ctx, "new_releases", params)
}

// TopRated returns games ordered by Metacritic score.
func (c *RAWGClient) TopRated(ctx context.Context) ([]models.Game, error) {
	params := url.Values{}
	params.Set("ordering", "-metacritic")
	return c.gamesList(ctx, "top_rated", params)
}

// Upcoming returns games releasing within the next year, ordered by
// wishlist adds.
func (c *RAWGClient) Upcoming(ctx context.Context) ([]models.Game, error) {
	now := time.Now().UTC()
	params := url.Values{}
	params.Set("dates", fmt.Sprintf("%s,%s",
		now.Format("2006-01-02"),
		now.AddDate(1, 0, 0).Format("2006-01-02")))
	params.Set("ordering", "-added")
	return c.gamesList(ctx, "upcoming", params)
}

// Search runs a game title search.
func (c *RAWGClient) Search(ctx context.Context, query string) ([]models.Game, error) {
	params := url.Values{}
	params.Set("search", query)
	return c.gamesList(ctx, "search", params)
}

// GameDetails fetches the full record for one game.
func (c *RAWGClient) GameDetails(ctx context.Context, id int) (*models.Game, error) {
	var game models.Game
	if err := c.get(ctx, "details", fmt.Sprintf("/games/%d", id), url.Values{}, &game); err != nil {
		return nil, err
	}
	return &game, nil
}
