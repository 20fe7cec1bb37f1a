// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// Movie is a single TMDB movie as returned by list endpoints
// (trending, discover, search). Genre IDs come back as a bare int
// slice on list endpoints; detail responses carry full Genre objects.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
}

// MovieDetails is the TMDB movie detail response. It embeds the list
// fields and adds the expanded genre objects and runtime.
type MovieDetails struct {
	Movie
	Genres  []Genre `json:"genres"`
	Runtime int     `json:"runtime"`
	Tagline string  `json:"tagline,omitempty"`
	Status  string  `json:"status,omitempty"`
}

// Genre is a TMDB genre descriptor.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieListResponse is the standard TMDB paginated list envelope.
type MovieListResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
