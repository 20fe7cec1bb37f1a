// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package news orchestrates topic-based article fetches against GNews
// and merges the results into the local article cache. Each topic maps
// to one or more search queries; the games topic fans out across five
// targeted queries to widen coverage. A supervised Refresher reruns
// the full cycle periodically.
package news

import (
	"context"
	"fmt"
	"time"

	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/metrics"
	"github.com/medleyhq/medley/internal/models"
	"github.com/medleyhq/medley/internal/newsstore"
)

// Topic tags used in the article cache.
const (
	TagTop    = "top"
	TagGames  = "games"
	TagSports = "sports"
	TagMusic  = "music"
	TagMedia  = "media"
)

type topic struct {
	tag string
	// queries are run in order; an empty query means top headlines.
	queries []string
}

// topics are refreshed in this order. Query phrasing matters more than
// it looks: quoted phrases keep GNews from matching single common
// words, and the OR fan-out for games trades request count for recall.
var topics = []topic{
	{tag: TagTop, queries: []string{""}},
	{tag: TagGames, queries: []string{
		`gaming OR "video games" OR "video game" OR esports OR "game industry"`,
		`"Call of Duty" OR "Grand Theft Auto" OR "Assassin's Creed" OR "FIFA" OR "Fortnite" OR "Minecraft" OR "League of Legends"`,
		`PlayStation OR Xbox OR Nintendo OR Steam OR "Epic Games" OR "Game Pass" OR "Nintendo Switch"`,
		`"game release" OR "game launch" OR "game trailer" OR "beta test" OR "early access" OR "game update"`,
		`"RTX 4090" OR "PS5" OR "Xbox Series" OR "Steam Deck" OR "VR gaming" OR "gaming laptop"`,
	}},
	{tag: TagSports, queries: []string{
		"football OR cricket OR tennis OR basketball OR soccer OR sports",
	}},
	{tag: TagMusic, queries: []string{
		"album OR song OR artist OR music OR singer",
	}},
	{tag: TagMedia, queries: []string{
		`"movies" OR "film trailers" OR "box office" OR "tv shows" OR "tv series" OR "netflix" OR "prime video" OR "HBO" OR "Disney+" OR "Hulu"`,
	}},
}

// ArticleSearcher is the GNews surface the fetcher needs. An empty
// query returns general top headlines.
type ArticleSearcher interface {
	Search(ctx context.Context, query string) ([]models.Article, error)
}

// Fetcher runs topic fetches and merges results into the article cache.
type Fetcher struct {
	client ArticleSearcher
	store  *newsstore.Store

	// Delays pace requests against GNews's free-tier rate limits.
	queryDelay time.Duration
	topicDelay time.Duration
}

// NewFetcher creates a topic fetcher with default pacing.
func NewFetcher(client ArticleSearcher, store *newsstore.Store) *Fetcher {
	return &Fetcher{
		client:     client,
		store:      store,
		queryDelay: 300 * time.Millisecond,
		topicDelay: 500 * time.Millisecond,
	}
}

// FetchTopic fetches one topic's queries, tags the articles, and merges
// them into the cache. Individual query failures are logged and
// skipped; the topic fails only when every query fails.
func (f *Fetcher) FetchTopic(ctx context.Context, tag string) (int, error) {
	var tp *topic
	for i := range topics {
		if topics[i].tag == tag {
			tp = &topics[i]
			break
		}
	}
	if tp == nil {
		return 0, fmt.Errorf("unknown news topic %q", tag)
	}

	var collected []models.Article
	failed := 0
	for i, query := range tp.queries {
		if i > 0 {
			if err := sleepCtx(ctx, f.queryDelay); err != nil {
				return 0, err
			}
		}
		articles, err := f.client.Search(ctx, query)
		if err != nil {
			failed++
			logging.Warn().Str("topic", tag).Int("query", i).Err(err).Msg("News query failed, continuing")
			continue
		}
		for j := range articles {
			articles[j].Tags = []string{tag}
		}
		collected = append(collected, articles...)
	}
	if failed == len(tp.queries) {
		metrics.NewsRefreshes.WithLabelValues(tag, "error").Inc()
		return 0, fmt.Errorf("all %d queries failed for topic %q", failed, tag)
	}

	if tag == TagSports {
		collected = newsstore.TagSports(collected)
	}

	added, err := f.store.Merge(tag, collected)
	if err != nil {
		metrics.NewsRefreshes.WithLabelValues(tag, "error").Inc()
		return 0, fmt.Errorf("merge topic %q: %w", tag, err)
	}
	metrics.NewsRefreshes.WithLabelValues(tag, "success").Inc()
	logging.Debug().Str("topic", tag).Int("fetched", len(collected)).Int("added", added).Msg("News topic refreshed")
	return added, nil
}

// RefreshAll runs every topic in order with inter-topic pacing. Topic
// failures are logged and the cycle continues; the error reports how
// many topics failed, if any.
func (f *Fetcher) RefreshAll(ctx context.Context) error {
	failed := 0
	for i, tp := range topics {
		if i > 0 {
			if err := sleepCtx(ctx, f.topicDelay); err != nil {
				return err
			}
		}
		if _, err := f.FetchTopic(ctx, tp.tag); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			logging.Warn().Str("topic", tp.tag).Err(err).Msg("News topic refresh failed")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d news topics failed to refresh", failed, len(topics))
	}
	return nil
}

// sleepCtx waits for d or until ctx is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
