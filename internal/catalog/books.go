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

// BookSource is the Google Books surface the book catalog needs.
type BookSource interface {
	NewReleases(ctx context.Context) ([]models.Book, error)
	BestSellers(ctx context.Context) ([]models.Book, error)
	Trending(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, query string) ([]models.Book, error)
	BookDetails(ctx context.Context, id string) (*models.Book, error)
}

// Books serves the book browse shelves.
type Books struct {
	source BookSource
	cache  *cache.Cache
}

// NewBooks creates the book catalog.
func NewBooks(source BookSource) *Books {
	return &Books{source: source, cache: cache.New("catalog_books", listCacheTTL)}
}

// Close releases cache resources.
func (b *Books) Close() {
	b.cache.Close()
}

// NewReleases returns volumes published this year.
func (b *Books) NewReleases(ctx context.Context) ([]models.Book, error) {
	return b.cachedList(ctx, "new_releases", b.source.NewReleases)
}

// BestSellers returns bestseller-tagged volumes.
func (b *Books) BestSellers(ctx context.Context) ([]models.Book, error) {
	return b.cachedList(ctx, "best_sellers", b.source.BestSellers)
}

// Trending returns popular-tagged volumes.
func (b *Books) Trending(ctx context.Context) ([]models.Book, error) {
	return b.cachedList(ctx, "trending", b.source.Trending)
}

// Search returns volumes matching the query.
func (b *Books) Search(ctx context.Context, query string) ([]models.Book, error) {
	return b.source.Search(ctx, query)
}

// Details returns one volume by ID.
func (b *Books) Details(ctx context.Context, id string) (*models.Book, error) {
	return b.source.BookDetails(ctx, id)
}

func (b *Books) cachedList(ctx context.Context, key string, fetch func(context.Context) ([]models.Book, error)) ([]models.Book, error) {
	if cached, ok := b.cache.Get(key); ok {
		return cached.([]models.Book), nil
	}
	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	b.cache.Set(key, list)
	return list, nil
}
