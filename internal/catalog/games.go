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

// GameSource is the RAWG surface the game catalog needs.
type GameSource interface {
	Trending(ctx context.Context) ([]models.Game, error)
	NewReleases(ctx context.Context) ([]models.Game, error)
	TopRated(ctx context.Context) ([]models.Game, error)
	Upcoming(ctx context.Context) ([]models.Game, error)
	Search(ctx context.Context, query string) ([]models.Game, error)
	GameDetails(ctx context.Context, id int) (*models.Game, error)
}

// Games serves the game browse shelves.
type Games struct {
	source GameSource
	cache  *cache.Cache
}

// NewGames creates the game catalog.
func NewGames(source GameSource) *Games {
	return &Games{source: source, cache: cache.New("catalog_games", listCacheTTL)}
}

// Close releases cache resources.
func (g *Games) Close() {
	g.cache.Close()
}

// Trending returns the highest-rated recent games.
func (g *Games) Trending(ctx context.Context) ([]models.Game, error) {
	return g.cachedList(ctx, "trending", g.source.Trending)
}

// NewReleases returns the latest released games.
func (g *Games) NewReleases(ctx context.Context) ([]models.Game, error) {
	return g.cachedList(ctx, "new_releases", g.source.NewReleases)
}

// TopRated returns games ordered by metacritic score.
func (g *Games) TopRated(ctx context.Context) ([]models.Game, error) {
	return g.cachedList(ctx, "top_rated", g.source.TopRated)
}

// Upcoming returns games releasing in the next year.
func (g *Games) Upcoming(ctx context.Context) ([]models.Game, error) {
	return g.cachedList(ctx, "upcoming", g.source.Upcoming)
}

// Search returns games matching the query.
func (g *Games) Search(ctx context.Context, query string) ([]models.Game, error) {
	return g.source.Search(ctx, query)
}

// Details returns full details for one game.
func (g *Games) Details(ctx context.Context, id int) (*models.Game, error) {
	return g.source.GameDetails(ctx, id)
}

func (g *Games) cachedList(ctx context.Context, key string, fetch func(context.Context) ([]models.Game, error)) ([]models.Game, error) {
	if cached, ok := g.cache.Get(key); ok {
		return cached.([]models.Game), nil
	}
	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	g.cache.Set(key, list)
	return list, nil
}
