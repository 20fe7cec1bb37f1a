// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package newsstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medleyhq/medley/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "news.json"))
}

func article(urlSuffix, title string, tags ...string) models.Article {
	return models.Article{
		Title:       title,
		URL:         "https://example.com/" + urlSuffix,
		PublishedAt: "2026-08-29T10:00:00Z",
		Tags:        tags,
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)
	articles, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestMergeDeduplicatesByURL(t *testing.T) {
	store := newTestStore(t)

	added, err := store.Merge("top", []models.Article{
		article("a", "Story A", "top"),
		article("b", "Story B", "top"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Same URL again, new tag set: no growth, incoming copy wins.
	added, err = store.Merge("games", []models.Article{
		article("a", "Story A", "games"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	all, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byURL := map[string]models.Article{}
	for _, a := range all {
		byURL[a.URL] = a
	}
	assert.Equal(t, []string{"games"}, byURL["https://example.com/a"].Tags)
}

func TestMergeIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	batch := []models.Article{
		article("a", "Story A", "music"),
		article("b", "Story B", "music"),
	}

	added, err := store.Merge("music", batch)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	before, err := store.Load()
	require.NoError(t, err)

	added, err = store.Merge("music", batch)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMergeSkipsEmptyURLs(t *testing.T) {
	store := newTestStore(t)
	added, err := store.Merge("top", []models.Article{
		{Title: "No URL"},
		article("a", "Story A", "top"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestConcurrentMergesLoseNothing(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	tags := []string{"top", "games", "sports", "music", "media"}
	for _, tag := range tags {
		wg.Add(1)
		go func(tag string) {
			defer wg.Done()
			_, err := store.Merge(tag, []models.Article{
				article(tag+"-1", "Story "+tag+" 1", tag),
				article(tag+"-2", "Story "+tag+" 2", tag),
			})
			assert.NoError(t, err)
		}(tag)
	}
	wg.Wait()

	all, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, all, len(tags)*2)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "news.json"))

	_, err := store.Merge("top", []models.Article{article("a", "Story A", "top")})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "news.json", entries[0].Name())
}

func TestByTagFiltersAndSorts(t *testing.T) {
	store := newTestStore(t)

	older := article("old", "Old story", "sports")
	older.PublishedAt = "2026-08-01T00:00:00Z"
	newer := article("new", "New story", "sports")
	newer.PublishedAt = "2026-08-28T00:00:00Z"
	other := article("other", "Other topic", "music")

	_, err := store.Merge("sports", []models.Article{older, newer, other})
	require.NoError(t, err)

	sports, err := store.ByTag("sports")
	require.NoError(t, err)
	require.Len(t, sports, 2)
	assert.Equal(t, "New story", sports[0].Title)
	assert.Equal(t, "Old story", sports[1].Title)
}

func TestClearRemovesCache(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Merge("top", []models.Article{article("a", "Story A", "top")})
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	articles, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, articles)

	// Clearing an already-missing file is not an error.
	require.NoError(t, store.Clear())
}

func TestDedupTitlesCaseInsensitive(t *testing.T) {
	in := []models.Article{
		article("a", "Breaking News"),
		article("b", "BREAKING NEWS"),
		article("c", "Different Story"),
	}
	out := DedupTitles(in)
	require.Len(t, out, 2)
	assert.Equal(t, "Breaking News", out[0].Title)
	assert.Equal(t, "Different Story", out[1].Title)
}

func TestTagSports(t *testing.T) {
	in := []models.Article{
		article("a", "India clinch the ODI series", "sports"),
		article("b", "Premier League title race heats up", "sports"),
		article("c", "Local marathon results", "sports"),
	}
	out := TagSports(in)

	assert.Contains(t, out[0].Tags, "cricket")
	assert.Contains(t, out[1].Tags, "football")
	assert.Equal(t, []string{"sports"}, out[2].Tags)
}

func TestFlagStoreRoundTrip(t *testing.T) {
	store := NewFlagStore(filepath.Join(t.TempDir(), "flags.json"))

	missing, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, missing)

	countries := []models.CricketCountry{
		{ID: "in", Name: "India", Img: "https://example.com/in.png"},
		{ID: "au", Name: "Australia", Img: "https://example.com/au.png"},
	}
	require.NoError(t, store.Save(countries))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, countries, loaded)
}
