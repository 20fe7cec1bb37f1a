// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package news

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medleyhq/medley/internal/models"
	"github.com/medleyhq/medley/internal/newsstore"
)

type fakeSearcher struct {
	results map[string][]models.Article
	errs    map[string]error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]models.Article, error) {
	f.queries = append(f.queries, query)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

func article(url, title string) models.Article {
	return models.Article{Title: title, URL: url}
}

func newTestFetcher(t *testing.T, client *fakeSearcher) (*Fetcher, *newsstore.Store) {
	t.Helper()
	store := newsstore.New(filepath.Join(t.TempDir(), "news.json"))
	f := NewFetcher(client, store)
	f.queryDelay = 0
	f.topicDelay = 0
	return f, store
}

func TestFetchTopicUnknownTag(t *testing.T) {
	f, _ := newTestFetcher(t, &fakeSearcher{})
	_, err := f.FetchTopic(context.Background(), "weather")
	require.Error(t, err)
}

func TestFetchTopicTopUsesEmptyQuery(t *testing.T) {
	client := &fakeSearcher{
		results: map[string][]models.Article{
			"": {article("https://a/1", "Headline")},
		},
	}
	f, store := newTestFetcher(t, client)

	added, err := f.FetchTopic(context.Background(), TagTop)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{""}, client.queries)

	got, err := store.ByTag(TagTop)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{TagTop}, got[0].Tags)
}

func TestFetchTopicGamesFansOutAllQueries(t *testing.T) {
	client := &fakeSearcher{
		results: map[string][]models.Article{},
	}
	f, store := newTestFetcher(t, client)

	// Each games query returns one distinct article plus one shared
	// URL; the merge deduplicates the shared one.
	for _, tp := range topics {
		if tp.tag != TagGames {
			continue
		}
		for j, q := range tp.queries {
			client.results[q] = []models.Article{
				article(fmt.Sprintf("https://g/%d", j), fmt.Sprintf("Game %d", j)),
				article("https://g/shared", "Shared"),
			}
		}
	}

	added, err := f.FetchTopic(context.Background(), TagGames)
	require.NoError(t, err)
	assert.Equal(t, 6, added)
	assert.Len(t, client.queries, 5)

	got, err := store.ByTag(TagGames)
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestFetchTopicPartialQueryFailure(t *testing.T) {
	var gamesQueries []string
	for _, tp := range topics {
		if tp.tag == TagGames {
			gamesQueries = tp.queries
		}
	}
	client := &fakeSearcher{
		results: map[string][]models.Article{
			gamesQueries[0]: {article("https://g/ok", "OK")},
		},
		errs: map[string]error{},
	}
	for _, q := range gamesQueries[1:] {
		client.errs[q] = errors.New("upstream down")
	}
	f, _ := newTestFetcher(t, client)

	added, err := f.FetchTopic(context.Background(), TagGames)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestFetchTopicAllQueriesFailed(t *testing.T) {
	client := &fakeSearcher{
		errs: map[string]error{"": errors.New("upstream down")},
	}
	f, _ := newTestFetcher(t, client)

	_, err := f.FetchTopic(context.Background(), TagTop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 1 queries failed")
}

func TestFetchTopicSportsGetsSubTags(t *testing.T) {
	var sportsQuery string
	for _, tp := range topics {
		if tp.tag == TagSports {
			sportsQuery = tp.queries[0]
		}
	}
	client := &fakeSearcher{
		results: map[string][]models.Article{
			sportsQuery: {
				{Title: "Premier League roundup", URL: "https://s/1"},
				{Title: "ODI series decider", URL: "https://s/2"},
			},
		},
	}
	f, store := newTestFetcher(t, client)

	_, err := f.FetchTopic(context.Background(), TagSports)
	require.NoError(t, err)

	got, err := store.ByTag(TagSports)
	require.NoError(t, err)
	require.Len(t, got, 2)
	byURL := map[string][]string{}
	for _, a := range got {
		byURL[a.URL] = a.Tags
	}
	assert.Contains(t, byURL["https://s/1"], "football")
	assert.Contains(t, byURL["https://s/2"], "cricket")
}

func TestRefreshAllContinuesPastTopicFailure(t *testing.T) {
	client := &fakeSearcher{
		results: map[string][]models.Article{},
		errs:    map[string]error{"": errors.New("upstream down")},
	}
	for _, tp := range topics {
		if tp.tag == TagTop {
			continue
		}
		for i, q := range tp.queries {
			client.results[q] = []models.Article{
				article("https://"+tp.tag+fmt.Sprintf("/%d", i), tp.tag),
			}
		}
	}
	f, store := newTestFetcher(t, client)

	err := f.RefreshAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 5")

	// The failed top topic did not block the others.
	for _, tag := range []string{TagGames, TagSports, TagMusic, TagMedia} {
		got, err := store.ByTag(tag)
		require.NoError(t, err)
		assert.NotEmpty(t, got, tag)
	}
}

func TestRefreshAllStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, _ := newTestFetcher(t, &fakeSearcher{})
	err := f.RefreshAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
