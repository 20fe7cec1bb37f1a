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

func TestWikipediaPageImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("titles") != "Erling Haaland" || q.Get("prop") != "pageimages" {
			t.Errorf("unexpected params: %v", q)
		}
		w.Write([]byte(`{"query":{"pages":{"123":{"pageid":123,"title":"Erling Haaland","thumbnail":{"source":"https://upload.wikimedia.org/haaland.jpg","width":500,"height":600}}}}}`))
	}))
	defer server.Close()

	client := NewWikipediaClient(&config.WikiConfig{BaseURL: server.URL})
	img := client.PageImage(context.Background(), "Erling Haaland")
	if img != "https://upload.wikimedia.org/haaland.jpg" {
		t.Errorf("unexpected image %q", img)
	}
}

func TestWikipediaPageImageMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"-1":{"title":"Nobody"}}}}`))
	}))
	defer server.Close()

	client := NewWikipediaClient(&config.WikiConfig{BaseURL: server.URL})
	if img := client.PageImage(context.Background(), "Nobody"); img != "" {
		t.Errorf("expected empty image, got %q", img)
	}
}

func TestWikipediaFailureIsSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewWikipediaClient(&config.WikiConfig{BaseURL: server.URL})
	if img := client.PageImage(context.Background(), "Anyone"); img != "" {
		t.Errorf("expected empty image on failure, got %q", img)
	}
}
