// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// TVSeries is a single TMDB series as returned by list endpoints.
// Like movies, list responses carry bare genre IDs while detail
// responses expand them.
type TVSeries struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	OriginalName     string  `json:"original_name,omitempty"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
}

// TVSeriesDetails is the TMDB series detail response.
type TVSeriesDetails struct {
	TVSeries
	Genres           []Genre `json:"genres"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
	NumberOfEpisodes int     `json:"number_of_episodes"`
	Status           string  `json:"status,omitempty"`
	Tagline          string  `json:"tagline,omitempty"`
}

// TVListResponse is the TMDB paginated series list envelope.
type TVListResponse struct {
	Page         int        `json:"page"`
	Results      []TVSeries `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}
