// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// Game is a RAWG game entry from list and search endpoints.
type Game struct {
	ID              int            `json:"id"`
	Slug            string         `json:"slug"`
	Name            string         `json:"name"`
	Released        string         `json:"released"`
	BackgroundImage string         `json:"background_image"`
	Rating          float64        `json:"rating"`
	RatingsCount    int            `json:"ratings_count"`
	Metacritic      int            `json:"metacritic"`
	Genres          []GameGenre    `json:"genres"`
	Platforms       []GamePlatform `json:"platforms"`
}

// GameGenre is a RAWG genre descriptor.
type GameGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GamePlatform wraps RAWG's nested platform object.
type GamePlatform struct {
	Platform struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"platform"`
}

// GameListResponse is the RAWG paginated list envelope.
type GameListResponse struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []Game `json:"results"`
}
