// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package catalog

import (
	"context"
	"time"

	"github.com/medleyhq/medley/internal/cache"
	"github.com/medleyhq/medley/internal/models"
)

// listCacheTTL bounds how stale a browse shelf may get.
const listCacheTTL = 5 * time.Minute

// MovieSource is the TMDB surface the movie catalog needs.
type MovieSource interface {
	Search(ctx context.Context, query string) ([]models.Movie, error)
	NowPlaying(ctx context.Context) ([]models.Movie, error)
	Upcoming(ctx context.Context) ([]models.Movie, error)
	TopRated(ctx context.Context) ([]models.Movie, error)
	MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error)
}

// Movies serves the movie browse shelves.
type Movies struct {
	source MovieSource
	cache  *cache.Cache
}

// NewMovies creates the movie catalog.
func NewMovies(source MovieSource) *Movies {
	return &Movies{source: source, cache: cache.New("catalog_movies", listCacheTTL)}
}

// Close releases cache resources.
func (m *Movies) Close() {
	m.cache.Close()
}

// Search returns movies matching the query; an empty query returns the
// popularity-ordered discover feed.
func (m *Movies) Search(ctx context.Context, query string) ([]models.Movie, error) {
	return m.source.Search(ctx, query)
}

// NowPlaying returns movies currently in theaters.
func (m *Movies) NowPlaying(ctx context.Context) ([]models.Movie, error) {
	return m.cachedList(ctx, "now_playing", m.source.NowPlaying)
}

// Upcoming returns soon-to-release movies.
func (m *Movies) Upcoming(ctx context.Context) ([]models.Movie, error) {
	return m.cachedList(ctx, "upcoming", m.source.Upcoming)
}

// TopRated returns the all-time top rated list.
func (m *Movies) TopRated(ctx context.Context) ([]models.Movie, error) {
	return m.cachedList(ctx, "top_rated", m.source.TopRated)
}

// Details returns full details for one movie.
func (m *Movies) Details(ctx context.Context, id int) (*models.MovieDetails, error) {
	return m.source.MovieDetails(ctx, id)
}

func (m *Movies) cachedList(ctx context.Context, key string, fetch func(context.Context) ([]models.Movie, error)) ([]models.Movie, error) {
	if cached, ok := m.cache.Get(key); ok {
		return cached.([]models.Movie), nil
	}
	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	m.cache.Set(key, list)
	return list, nil
}
