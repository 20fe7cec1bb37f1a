// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/likes"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
	"github.com/medleyhq/medley/internal/models"
)

// tagTopAlbumsLimit is how many albums each profile tag contributes.
const tagTopAlbumsLimit = 5

// MusicCatalog is the Last.fm surface the music scorer needs.
type MusicCatalog interface {
	AlbumInfo(ctx context.Context, album, artist string) (*models.Album, error)
	TagTopAlbums(ctx context.Context, tag string, limit int) ([]models.Album, error)
}

// MusicScorer produces personalized album recommendations.
type MusicScorer struct {
	catalog MusicCatalog
	likes   LikesReader
	cfg     *config.RecommendConfig
}

// NewMusicScorer creates a music scorer.
func NewMusicScorer(catalog MusicCatalog, likesReader LikesReader, cfg *config.RecommendConfig) *MusicScorer {
	return &MusicScorer{
		catalog: catalog,
		likes:   likesReader,
		cfg:     cfg,
	}
}

// Recommend returns up to ResultSize albums tailored to the user's
// liked albums, falling back to a fixed genre mix when no taste
// profile exists.
func (s *MusicScorer) Recommend(ctx context.Context, userID string) ([]models.Album, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendDuration.WithLabelValues("music").Observe(time.Since(start).Seconds())
	}()

	tags := s.profileTags(ctx, userID)
	if len(tags) == 0 {
		metrics.RecommendFallbacks.WithLabelValues("music", "no_profile").Inc()
		logging.Debug().Str("user", userID).Msg("Serving fallback music genres")
		tags = s.cfg.FallbackMusicGenres
	}

	var all []models.Album
	for _, tag := range tags {
		if ctx.Err() != nil {
			break
		}
		albums, err := s.catalog.TagTopAlbums(ctx, tag, tagTopAlbumsLimit)
		if err != nil {
			logging.Debug().Str("tag", tag).Err(err).Msg("Tag top albums fetch failed, continuing")
			continue
		}
		all = append(all, albums...)
	}

	picked := s.rank(all)
	if len(picked) == 0 {
		return nil, fmt.Errorf("music recommendations unavailable: no albums for tags %v", tags)
	}

	logging.Debug().Str("user", userID).Strs("tags", tags).Int("results", len(picked)).Msg("Music recommendations built")
	return picked, nil
}

// profileTags accumulates tag weights from the user's liked albums.
// Each album adds its listener count to every one of its tags, so tags
// on widely-heard albums dominate. Returns nil when no profile can be
// built.
func (s *MusicScorer) profileTags(ctx context.Context, userID string) []string {
	if userID == "" {
		return nil
	}

	likedKeys, err := s.likes.LikedIDs(userID, likes.CategoryMusicAlbums)
	if err != nil {
		logging.Warn().Str("user", userID).Err(err).Msg("Failed to read liked albums")
		return nil
	}
	if len(likedKeys) == 0 {
		return nil
	}
	sort.Strings(likedKeys)

	weights := map[string]int{}
	firstSeen := map[string]int{}
	order := 0
	for _, key := range likedKeys {
		if ctx.Err() != nil {
			return nil
		}

		// Keys are "albumName:artistName"; album names may not contain
		// a colon but artist names may.
		name, artist, ok := strings.Cut(key, ":")
		if !ok || name == "" || artist == "" {
			logging.Debug().Str("key", key).Msg("Skipping malformed liked album key")
			continue
		}

		album, err := s.catalog.AlbumInfo(ctx, name, artist)
		if err != nil {
			logging.Debug().Str("album", name).Str("artist", artist).Err(err).Msg("Skipping liked album, info fetch failed")
			continue
		}

		listeners := album.ListenerCount()
		for _, tag := range album.Tags.Tags {
			tagName := strings.ToLower(tag.Name)
			if tagName == "" {
				continue
			}
			if _, ok := firstSeen[tagName]; !ok {
				firstSeen[tagName] = order
				order++
			}
			weights[tagName] += listeners
		}
	}
	if len(weights) == 0 {
		return nil
	}

	tags := make([]string, 0, len(weights))
	for tag := range weights {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if weights[tags[i]] != weights[tags[j]] {
			return weights[tags[i]] > weights[tags[j]]
		}
		return firstSeen[tags[i]] < firstSeen[tags[j]]
	})
	if len(tags) > s.cfg.TopMusicTags {
		tags = tags[:s.cfg.TopMusicTags]
	}
	return tags
}

// rank deduplicates albums by name and artist, then orders by listener
// count descending. The sort is stable so equal counts keep
// first-discovered order.
func (s *MusicScorer) rank(albums []models.Album) []models.Album {
	seen := make(map[string]struct{}, len(albums))
	unique := make([]models.Album, 0, len(albums))
	for _, album := range albums {
		key := album.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, album)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return listenersOrZero(unique[i]) > listenersOrZero(unique[j])
	})
	if len(unique) > s.cfg.ResultSize {
		unique = unique[:s.cfg.ResultSize]
	}
	return unique
}

// listenersOrZero ranks albums without listener data last instead of
// giving them the parse default of 1.
func listenersOrZero(album models.Album) int {
	if album.Listeners == "" {
		return 0
	}
	return album.ListenerCount()
}
