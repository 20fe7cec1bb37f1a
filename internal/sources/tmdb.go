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

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/models"
)

// TMDBClient talks to The Movie Database v3 API using a bearer token.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *breaker
}

// NewTMDBClient creates a TMDB client from configuration.
func NewTMDBClient(cfg *config.TMDBConfig) *TMDBClient {
	return &TMDBClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
		breaker:    newBreaker("tmdb"),
	}
}

func (c *TMDBClient) get(ctx context.Context, operation, path string, query url.Values, result any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	opts := requestOptions{headers: map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}}
	return c.breaker.execute(func() error {
		return fetchJSON(ctx, c.httpClient, reqURL, "tmdb", operation, opts, result)
	})
}

// DiscoverParams narrows a TMDB discover query. Zero-valued fields are
// omitted from the request.
type DiscoverParams struct {
	SortBy           string
	Page             int
	WithGenres       string
	VoteCountGTE     int
	OriginalLanguage string // pipe-separated, e.g. "bn|en|ja"
	ReleaseDateGTE   string // YYYY-MM-DD
	ReleaseDateLTE   string // YYYY-MM-DD
}

// Discover runs a discover/movie query.
func (c *TMDBClient) Discover(ctx context.Context, params DiscoverParams) ([]models.Movie, error) {
	query := url.Values{}
	query.Set("language", "en-US")
	if params.SortBy != "" {
		query.Set("sort_by", params.SortBy)
	}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.WithGenres != "" {
		query.Set("with_genres", params.WithGenres)
	}
	if params.VoteCountGTE > 0 {
		query.Set("vote_count.gte", fmt.Sprintf("%d", params.VoteCountGTE))
	}
	if params.OriginalLanguage != "" {
		query.Set("with_original_language", params.OriginalLanguage)
	}
	if params.ReleaseDateGTE != "" {
		query.Set("primary_release_date.gte", params.ReleaseDateGTE)
	}
	if params.ReleaseDateLTE != "" {
		query.Set("primary_release_date.lte", params.ReleaseDateLTE)
	}

	var resp models.MovieListResponse
	if err := c.get(ctx, "discover", "/discover/movie", query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Search runs a movie title search. An empty query falls back to a
// popularity-ordered discover, matching the browse-with-empty-searchbar
// behavior the catalog exposes.
func (c *TMDBClient) Search(ctx context.Context, searchQuery string) ([]models.Movie, error) {
	if searchQuery == "" {
		return c.Discover(ctx, DiscoverParams{SortBy: "popularity.desc"})
	}

	query := url.Values{}
	query.Set("query", searchQuery)

	var resp models.MovieListResponse
	if err := c.get(ctx, "search", "/search/movie", query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// NowPlaying returns the currently-in-theatres list.
func (c *TMDBClient) NowPlaying(ctx context.Context) ([]models.Movie, error) {
	return c.movieList(ctx, "now_playing", "/movie/now_playing")
}

// Upcoming returns movies with future release dates.
func (c *TMDBClient) Upcoming(ctx context.Context) ([]models.Movie, error) {
	return c.movieList(ctx, "upcoming", "/movie/upcoming")
}

// TopRated returns TMDB's all-time top rated list.
func (c *TMDBClient) TopRated(ctx context.Context) ([]models.Movie, error) {
	return c.movieList(ctx, "top_rated", "/movie/top_rated")
}

func (c *TMDBClient) movieList(ctx context.Context, operation, path string) ([]models.Movie, error) {
	query := url.Values{}
	query.Set("language", "en-US")
	query.Set("page", "1")

	var resp models.MovieListResponse
	if err := c.get(ctx, operation, path, query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// MovieDetails fetches the full detail record for one movie, including
// expanded genres.
func (c *TMDBClient) MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	var details models.MovieDetails
	if err := c.get(ctx, "details", fmt.Sprintf("/movie/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// PopularTV returns the current most-popular series list.
func (c *TMDBClient) PopularTV(ctx context.Context) ([]models.TVSeries, error) {
	return c.tvList(ctx, "tv_popular", "/tv/popular")
}

// TopRatedTV returns TMDB's all-time top rated series list.
func (c *TMDBClient) TopRatedTV(ctx context.Context) ([]models.TVSeries, error) {
	return c.tvList(ctx, "tv_top_rated", "/tv/top_rated")
}

// SearchTV runs a series title search. An empty query falls back to
// the popular list, mirroring movie search.
func (c *TMDBClient) SearchTV(ctx context.Context, searchQuery string) ([]models.TVSeries, error) {
	if searchQuery == "" {
		return c.PopularTV(ctx)
	}

	query := url.Values{}
	query.Set("query", searchQuery)

	var resp models.TVListResponse
	if err := c.get(ctx, "tv_search", "/search/tv", query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *TMDBClient) tvList(ctx context.Context, operation, path string) ([]models.TVSeries, error) {
	query := url.Values{}
	query.Set("language", "en-US")
	query.Set("page", "1")

	var resp models.TVListResponse
	if err := c.get(ctx, operation, path, query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// TVDetails fetches the full detail record for one series.
func (c *TMDBClient) TVDetails(ctx context.Context, id int) (*models.TVSeriesDetails, error) {
	var details models.TVSeriesDetails
	if err := c.get(ctx, "tv_details", fmt.Sprintf("/tv/%d", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}
