// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// listHandler adapts a shelf fetch into an HTTP handler writing the
// standard list payload. All catalog shelf endpoints share this shape.
func listHandler[T any](source string, fetch func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := NewResponseWriter(w, r)

		items, err := fetch(r.Context())
		if err != nil {
			rw.UpstreamError(source, err)
			return
		}
		if items == nil {
			items = []T{}
		}

		rw.Success(map[string]interface{}{
			"results": items,
			"count":   len(items),
		})
	}
}

// searchHandler adapts a query fetch into an HTTP handler. A missing
// q parameter is a validation error rather than an empty result, so
// clients catch wiring bugs early.
func searchHandler[T any](source string, fetch func(ctx context.Context, query string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := NewResponseWriter(w, r)

		query := r.URL.Query().Get("q")
		if query == "" {
			rw.BadRequest("q parameter is required")
			return
		}

		items, err := fetch(r.Context(), query)
		if err != nil {
			rw.UpstreamError(source, err)
			return
		}
		if items == nil {
			items = []T{}
		}

		rw.Success(map[string]interface{}{
			"query":   query,
			"results": items,
			"count":   len(items),
		})
	}
}

func intParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// MoviesNowPlaying returns the now-playing shelf.
func (router *Router) MoviesNowPlaying(w http.ResponseWriter, r *http.Request) {
	listHandler("tmdb", router.services.Movies.NowPlaying)(w, r)
}

// MoviesUpcoming returns the upcoming shelf.
func (router *Router) MoviesUpcoming(w http.ResponseWriter, r *http.Request) {
	listHandler("tmdb", router.services.Movies.Upcoming)(w, r)
}

// MoviesTopRated returns the top-rated shelf.
func (router *Router) MoviesTopRated(w http.ResponseWriter, r *http.Request) {
	listHandler("tmdb", router.services.Movies.TopRated)(w, r)
}

// MoviesSearch searches movies by title.
func (router *Router) MoviesSearch(w http.ResponseWriter, r *http.Request) {
	searchHandler("tmdb", router.services.Movies.Search)(w, r)
}

// MovieDetails returns full details for one movie.
func (router *Router) MovieDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := intParam(r, "id")
	if !ok {
		rw.BadRequest("movie id must be a positive integer")
		return
	}

	details, err := router.services.Movies.Details(r.Context(), id)
	if err != nil {
		rw.UpstreamError("tmdb", err)
		return
	}

	rw.Success(details)
}

// TVPopular returns the popular series shelf.
func (router *Router) TVPopular(w http.ResponseWriter, r *http.Request) {
	listHandler("tmdb", router.services.TV.Popular)(w, r)
}

// TVTopRated returns the top-rated series shelf.
func (router *Router) TVTopRated(w http.ResponseWriter, r *http.Request) {
	listHandler("tmdb", router.services.TV.TopRated)(w, r)
}

// TVSearch searches series by name.
func (router *Router) TVSearch(w http.ResponseWriter, r *http.Request) {
	searchHandler("tmdb", router.services.TV.Search)(w, r)
}

// TVDetails returns full details for one series.
func (router *Router) TVDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := intParam(r, "id")
	if !ok {
		rw.BadRequest("series id must be a positive integer")
		return
	}

	details, err := router.services.TV.Details(r.Context(), id)
	if err != nil {
		rw.UpstreamError("tmdb", err)
		return
	}

	rw.Success(details)
}

// GamesTrending returns the trending shelf.
func (router *Router) GamesTrending(w http.ResponseWriter, r *http.Request) {
	listHandler("rawg", router.services.Games.Trending)(w, r)
}

// GamesNewReleases returns the new-releases shelf.
func (router *Router) GamesNewReleases(w http.ResponseWriter, r *http.Request) {
	listHandler("rawg", router.services.Games.NewReleases)(w, r)
}

// GamesTopRated returns the top-rated shelf.
func (router *Router) GamesTopRated(w http.ResponseWriter, r *http.Request) {
	listHandler("rawg", router.services.Games.TopRated)(w, r)
}

// GamesUpcoming returns the upcoming shelf.
func (router *Router) GamesUpcoming(w http.ResponseWriter, r *http.Request) {
	listHandler("rawg", router.services.Games.Upcoming)(w, r)
}

// GamesSearch searches games by name.
func (router *Router) GamesSearch(w http.ResponseWriter, r *http.Request) {
	searchHandler("rawg", router.services.Games.Search)(w, r)
}

// GameDetails returns full details for one game.
func (router *Router) GameDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, ok := intParam(r, "id")
	if !ok {
		rw.BadRequest("game id must be a positive integer")
		return
	}

	details, err := router.services.Games.Details(r.Context(), id)
	if err != nil {
		rw.UpstreamError("rawg", err)
		return
	}

	rw.Success(details)
}

// BooksNewReleases returns the new-releases shelf.
func (router *Router) BooksNewReleases(w http.ResponseWriter, r *http.Request) {
	listHandler("google-books", router.services.Books.NewReleases)(w, r)
}

// BooksBestSellers returns the best-sellers shelf.
func (router *Router) BooksBestSellers(w http.ResponseWriter, r *http.Request) {
	listHandler("google-books", router.services.Books.BestSellers)(w, r)
}

// BooksTrending returns the trending shelf.
func (router *Router) BooksTrending(w http.ResponseWriter, r *http.Request) {
	listHandler("google-books", router.services.Books.Trending)(w, r)
}

// BooksSearch searches volumes by title or author.
func (router *Router) BooksSearch(w http.ResponseWriter, r *http.Request) {
	searchHandler("google-books", router.services.Books.Search)(w, r)
}

// BookDetails returns one volume by its Google Books ID.
func (router *Router) BookDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	book, err := router.services.Books.Details(r.Context(), id)
	if err != nil {
		rw.UpstreamError("google-books", err)
		return
	}

	rw.Success(book)
}

// MusicGenre returns the artist/track/album shelf for a genre tag.
func (router *Router) MusicGenre(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	genre := chi.URLParam(r, "genre")
	content, err := router.services.Music.Genre(r.Context(), genre)
	if err != nil {
		rw.UpstreamError("lastfm", err)
		return
	}

	rw.Success(content)
}

// MusicTrackSearch searches tracks by name.
func (router *Router) MusicTrackSearch(w http.ResponseWriter, r *http.Request) {
	searchHandler("lastfm", router.services.Music.SearchTracks)(w, r)
}

// MusicArtist returns an artist profile with a Wikipedia portrait.
func (router *Router) MusicArtist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	name := chi.URLParam(r, "name")
	if name == "" {
		rw.BadRequest("artist name is required")
		return
	}

	artist, err := router.services.Music.Artist(r.Context(), name)
	if err != nil {
		rw.UpstreamError("lastfm", err)
		return
	}

	rw.Success(artist)
}
