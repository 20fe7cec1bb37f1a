// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"net/http"

	"github.com/medleyhq/medley/internal/models"
)

// RecommendMovies returns personalized movie recommendations. An empty
// or missing user parameter yields the anonymous fallback list, so the
// endpoint always has something to show a fresh install.
func (router *Router) RecommendMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := r.URL.Query().Get("user")
	movies, err := router.services.MovieRecs.Recommend(r.Context(), userID)
	if err != nil {
		rw.UpstreamError("tmdb", err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	rw.Success(map[string]interface{}{
		"results": movies,
		"count":   len(movies),
	})
}

// RecommendMusic returns personalized album recommendations.
func (router *Router) RecommendMusic(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID := r.URL.Query().Get("user")
	albums, err := router.services.MusicRecs.Recommend(r.Context(), userID)
	if err != nil {
		rw.UpstreamError("lastfm", err)
		return
	}
	if albums == nil {
		albums = []models.Album{}
	}

	rw.Success(map[string]interface{}{
		"results": albums,
		"count":   len(albums),
	})
}
