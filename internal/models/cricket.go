// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// CricketMatch is a CricAPI match entry.
type CricketMatch struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	MatchType    string         `json:"matchType"`
	Status       string         `json:"status"`
	Venue        string         `json:"venue"`
	Date         string         `json:"date"`
	DateTimeGMT  string         `json:"dateTimeGMT"`
	Teams        []string       `json:"teams"`
	TeamInfo     []CricketTeam  `json:"teamInfo,omitempty"`
	Score        []CricketScore `json:"score,omitempty"`
	SeriesID     string         `json:"series_id,omitempty"`
	MatchStarted bool           `json:"matchStarted"`
	MatchEnded   bool           `json:"matchEnded"`
}

// CricketTeam carries the display name, abbreviation, and badge image
// for one side of a match.
type CricketTeam struct {
	Name      string `json:"name"`
	ShortName string `json:"shortname"`
	Img       string `json:"img"`
}

// CricketScore is one innings line: runs, wickets, overs.
type CricketScore struct {
	Runs    float64 `json:"r"`
	Wickets float64 `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

// CricketSeries is a CricAPI series search result.
type CricketSeries struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ODI       int    `json:"odi"`
	T20       int    `json:"t20"`
	Test      int    `json:"test"`
	Squads    int    `json:"squads"`
	Matches   int    `json:"matches"`
}

// CricketEnvelope is the CricAPI response wrapper. Status is the
// string "success" on healthy responses regardless of HTTP code.
type CricketEnvelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
	Info   struct {
		HitsToday int     `json:"hitsToday"`
		HitsLimit int     `json:"hitsLimit"`
		TotalRows int     `json:"totalRows"`
		QueryTime float64 `json:"queryTime"`
	} `json:"info"`
}

// CricketCountry is a CricAPI countries entry. The flag images are
// resolved once and persisted to a local JSON cache.
type CricketCountry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// CricketTeamRef is a CricAPI teams list entry, used for favourite
// team search.
type CricketTeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
