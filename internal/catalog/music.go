// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/medleyhq/medley/internal/cache"
	"github.com/medleyhq/medley/internal/models"
)

// genreContentLimit is the per-section size of a genre shelf.
const genreContentLimit = 5

// MusicSource is the Last.fm surface the music catalog needs.
type MusicSource interface {
	TagTopArtists(ctx context.Context, tag string, limit int) ([]models.Artist, error)
	TagTopTracks(ctx context.Context, tag string, limit int) ([]models.Track, error)
	TagTopAlbums(ctx context.Context, tag string, limit int) ([]models.Album, error)
	SearchTracks(ctx context.Context, query string) ([]models.Track, error)
	ArtistInfo(ctx context.Context, artist string) (*models.Artist, error)
}

// PortraitResolver resolves an artist name to a portrait URL,
// returning empty when nothing suitable exists.
type PortraitResolver interface {
	PageImage(ctx context.Context, title string) string
}

// GenreContent is one genre's browse shelf.
type GenreContent struct {
	Genre   string          `json:"genre"`
	Artists []models.Artist `json:"artists"`
	Tracks  []models.Track  `json:"tracks"`
	Albums  []models.Album  `json:"albums"`
}

// ArtistProfile is an artist enriched with a portrait. Last.fm stopped
// serving real artist images, so the portrait comes from Wikipedia.
type ArtistProfile struct {
	models.Artist
	ImageURL string `json:"image_url,omitempty"`
}

// Music serves the music browse shelves.
type Music struct {
	source MusicSource
	wiki   PortraitResolver
	cache  *cache.Cache
}

// NewMusic creates the music catalog.
func NewMusic(source MusicSource, wiki PortraitResolver) *Music {
	return &Music{source: source, wiki: wiki, cache: cache.New("catalog_music", listCacheTTL)}
}

// Close releases cache resources.
func (m *Music) Close() {
	m.cache.Close()
}

// Genre returns a genre's top artists, tracks, and albums, fetched
// concurrently. Any section failing fails the shelf.
func (m *Music) Genre(ctx context.Context, genre string) (*GenreContent, error) {
	if genre == "" {
		return nil, fmt.Errorf("genre required")
	}
	key := cache.GenerateKey("genre", genre)
	if cached, ok := m.cache.Get(key); ok {
		return cached.(*GenreContent), nil
	}

	content := &GenreContent{Genre: genre}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artists, err := m.source.TagTopArtists(gctx, genre, genreContentLimit)
		content.Artists = artists
		return err
	})
	g.Go(func() error {
		tracks, err := m.source.TagTopTracks(gctx, genre, genreContentLimit)
		content.Tracks = tracks
		return err
	})
	g.Go(func() error {
		albums, err := m.source.TagTopAlbums(gctx, genre, genreContentLimit)
		content.Albums = albums
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("genre %q content: %w", genre, err)
	}

	m.cache.Set(key, content)
	return content, nil
}

// SearchTracks returns tracks matching the query.
func (m *Music) SearchTracks(ctx context.Context, query string) ([]models.Track, error) {
	return m.source.SearchTracks(ctx, query)
}

// Artist returns an artist profile with a best-effort portrait. A
// missing portrait never fails the lookup.
func (m *Music) Artist(ctx context.Context, name string) (*ArtistProfile, error) {
	artist, err := m.source.ArtistInfo(ctx, name)
	if err != nil {
		return nil, err
	}
	profile := &ArtistProfile{Artist: *artist}
	profile.ImageURL = m.wiki.PageImage(ctx, artist.Name)
	return profile, nil
}
