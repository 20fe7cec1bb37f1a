// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package catalog

import (
	"context"

	"github.com/medleyhq/medley/internal/cache"
	"github.com/medleyhq/medley/internal/models"
)

// TVSource is the TMDB surface the series catalog needs.
type TVSource interface {
	PopularTV(ctx context.Context) ([]models.TVSeries, error)
	TopRatedTV(ctx context.Context) ([]models.TVSeries, error)
	SearchTV(ctx context.Context, query string) ([]models.TVSeries, error)
	TVDetails(ctx context.Context, id int) (*models.TVSeriesDetails, error)
}

// TV serves the series browse shelves.
type TV struct {
	source TVSource
	cache  *cache.Cache
}

// NewTV creates the series catalog.
func NewTV(source TVSource) *TV {
	return &TV{source: source, cache: cache.New("catalog_tv", listCacheTTL)}
}

// Close releases cache resources.
func (t *TV) Close() {
	t.cache.Close()
}

// Popular returns the current most-popular series.
func (t *TV) Popular(ctx context.Context) ([]models.TVSeries, error) {
	return t.cachedList(ctx, "popular", t.source.PopularTV)
}

// TopRated returns the all-time top rated series.
func (t *TV) TopRated(ctx context.Context) ([]models.TVSeries, error) {
	return t.cachedList(ctx, "top_rated", t.source.TopRatedTV)
}

// Search returns series matching the query; an empty query returns the
// popular list.
func (t *TV) Search(ctx context.Context, query string) ([]models.TVSeries, error) {
	return t.source.SearchTV(ctx, query)
}

// Details returns full details for one series.
func (t *TV) Details(ctx context.Context, id int) (*models.TVSeriesDetails, error) {
	return t.source.TVDetails(ctx, id)
}

func (t *TV) cachedList(ctx context.Context, key string, fetch func(context.Context) ([]models.TVSeries, error)) ([]models.TVSeries, error) {
	if cached, ok := t.cache.Get(key); ok {
		return cached.([]models.TVSeries), nil
	}
	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	t.cache.Set(key, list)
	return list, nil
}
