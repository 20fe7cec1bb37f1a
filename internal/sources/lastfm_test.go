// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medleyhq/medley/internal/config"
)

func newLastfmTestClient(serverURL string) *LastfmClient {
	return NewLastfmClient(&config.LastfmConfig{
		BaseURL: serverURL,
		APIKey:  "test-key",
	})
}

func TestLastfmAlbumInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("method") != "album.getinfo" {
			t.Errorf("unexpected method %q", q.Get("method"))
		}
		if q.Get("album") != "OK Computer" || q.Get("artist") != "Radiohead" {
			t.Errorf("unexpected params: %v", q)
		}
		if q.Get("format") != "json" || q.Get("api_key") != "test-key" {
			t.Errorf("missing boilerplate params: %v", q)
		}
		w.Write([]byte(`{"album":{"name":"OK Computer","artist":"Radiohead","listeners":"1000","tags":{"tag":[{"name":"rock"}]}}}`))
	}))
	defer server.Close()

	client := newLastfmTestClient(server.URL)
	album, err := client.AlbumInfo(context.Background(), "OK Computer", "Radiohead")
	if err != nil {
		t.Fatalf("AlbumInfo failed: %v", err)
	}
	if album.Artist.Name != "Radiohead" {
		t.Errorf("unexpected artist %q", album.Artist.Name)
	}
	if len(album.Tags.Tags) != 1 || album.Tags.Tags[0].Name != "rock" {
		t.Errorf("unexpected tags: %+v", album.Tags.Tags)
	}
}

func TestLastfmAlbumInfoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":6,"message":"Album not found"}`))
	}))
	defer server.Close()

	client := newLastfmTestClient(server.URL)
	if _, err := client.AlbumInfo(context.Background(), "Nope", "Nobody"); err == nil {
		t.Fatal("expected error for missing album")
	}
}

func TestLastfmTagTopAlbums(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("method") != "tag.gettopalbums" {
			t.Errorf("unexpected method %q", q.Get("method"))
		}
		if q.Get("tag") != "jazz" || q.Get("limit") != "5" {
			t.Errorf("unexpected params: %v", q)
		}
		w.Write([]byte(`{"albums":{"album":[{"name":"Kind of Blue","artist":{"name":"Miles Davis"}}]}}`))
	}))
	defer server.Close()

	client := newLastfmTestClient(server.URL)
	albums, err := client.TagTopAlbums(context.Background(), "jazz", 5)
	if err != nil {
		t.Fatalf("TagTopAlbums failed: %v", err)
	}
	if len(albums) != 1 || albums[0].Artist.Name != "Miles Davis" {
		t.Errorf("unexpected albums: %+v", albums)
	}
}
