// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package newsstore persists fetched news articles in a local JSON
// file. The file is the source of truth for the news API: fetchers
// merge into it and handlers read from it, so a failed refresh never
// blanks the feed.
//
// All writes go through a temp-file-plus-rename so a crash mid-write
// can never leave a truncated cache on disk, and a package mutex
// serializes writers so concurrent topic refreshes cannot interleave.
// Merging is idempotent: re-merging the same articles changes nothing.
package newsstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
	"github.com/medleyhq/medley/internal/models"
)

// Store is a file-backed article cache. Articles are deduplicated by
// URL; a re-fetched article replaces its stored copy so refreshed tags
// win.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store writing to path. The parent directory is created
// on first write, not here.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads all cached articles. A missing file is an empty cache.
func (s *Store) Load() ([]models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() ([]models.Article, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read news cache: %w", err)
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("decode news cache: %w", err)
	}
	return articles, nil
}

// Merge adds articles into the cache, deduplicating by URL. Incoming
// articles take precedence over stored ones with the same URL. Returns
// the number of articles that were not previously cached.
func (s *Store) Merge(tag string, incoming []models.Article) (int, error) {
	if len(incoming) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.loadLocked()
	if err != nil {
		return 0, err
	}

	known := make(map[string]struct{}, len(existing))
	for _, article := range existing {
		known[article.URL] = struct{}{}
	}

	merged := make([]models.Article, 0, len(incoming)+len(existing))
	seen := make(map[string]struct{}, len(incoming))
	added := 0
	for _, article := range incoming {
		if article.URL == "" {
			continue
		}
		if _, dup := seen[article.URL]; dup {
			continue
		}
		seen[article.URL] = struct{}{}
		merged = append(merged, article)
		if _, had := known[article.URL]; !had {
			added++
		}
	}
	for _, article := range existing {
		if _, dup := seen[article.URL]; dup {
			continue
		}
		seen[article.URL] = struct{}{}
		merged = append(merged, article)
	}

	if err := s.writeLocked(merged); err != nil {
		return 0, err
	}

	metrics.NewsArticlesMerged.WithLabelValues(tag).Add(float64(added))
	metrics.NewsStoreSize.Set(float64(len(merged)))
	logging.Debug().Str("tag", tag).Int("added", added).Int("total", len(merged)).Msg("News cache merged")
	return added, nil
}

// writeLocked atomically replaces the cache file.
func (s *Store) writeLocked(articles []models.Article) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode news cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create news cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".news-*.json")
	if err != nil {
		return fmt.Errorf("create temp news cache: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp news cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp news cache: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace news cache: %w", err)
	}
	return nil
}

// Clear removes the cache file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear news cache: %w", err)
	}
	metrics.NewsStoreSize.Set(0)
	return nil
}

// ByTag returns cached articles carrying the tag, newest first by
// published timestamp (string ordering works for RFC 3339 values).
func (s *Store) ByTag(tag string) ([]models.Article, error) {
	articles, err := s.Load()
	if err != nil {
		return nil, err
	}

	var matched []models.Article
	for _, article := range articles {
		for _, t := range article.Tags {
			if t == tag {
				matched = append(matched, article)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt > matched[j].PublishedAt
	})
	return matched, nil
}

// DedupTitles removes articles whose titles collide case-insensitively,
// keeping the first occurrence. The top-news feed aggregates many
// outlets republishing the same wire story, so URL dedup alone leaves
// visible repeats.
func DedupTitles(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		key := strings.ToLower(article.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, article)
	}
	return out
}
