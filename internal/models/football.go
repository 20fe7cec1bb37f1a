// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// FootballCompetition identifies a league or cup on football-data.org.
type FootballCompetition struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Emblem string `json:"emblem,omitempty"`
}

// FootballTeam is the compact team reference embedded in matches,
// standings, and scorer rows.
type FootballTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	TLA       string `json:"tla,omitempty"`
	Crest     string `json:"crest,omitempty"`
}

// FootballMatch is a single fixture or result.
type FootballMatch struct {
	ID          int                 `json:"id"`
	UTCDate     string              `json:"utcDate"`
	Status      string              `json:"status"`
	Matchday    int                 `json:"matchday,omitempty"`
	Competition FootballCompetition `json:"competition"`
	HomeTeam    FootballTeam        `json:"homeTeam"`
	AwayTeam    FootballTeam        `json:"awayTeam"`
	Score       FootballScore       `json:"score"`
}

// FootballScore carries the result breakdown for a match.
type FootballScore struct {
	Winner   string            `json:"winner,omitempty"`
	FullTime FootballScoreLine `json:"fullTime"`
	HalfTime FootballScoreLine `json:"halfTime"`
}

// FootballScoreLine holds goals per side; pointers distinguish 0 from
// not-yet-played.
type FootballScoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// FootballMatchesResponse is the matches list envelope.
type FootballMatchesResponse struct {
	Matches []FootballMatch `json:"matches"`
}

// FootballStandingsResponse is the standings envelope. The standings
// slice carries one entry per table type (TOTAL, HOME, AWAY).
type FootballStandingsResponse struct {
	Competition FootballCompetition `json:"competition"`
	Standings   []FootballStanding  `json:"standings"`
}

// FootballStanding is one standings table.
type FootballStanding struct {
	Type  string             `json:"type"`
	Table []FootballTableRow `json:"table"`
}

// FootballTableRow is a single team's position in a standings table.
type FootballTableRow struct {
	Position       int          `json:"position"`
	Team           FootballTeam `json:"team"`
	PlayedGames    int          `json:"playedGames"`
	Won            int          `json:"won"`
	Draw           int          `json:"draw"`
	Lost           int          `json:"lost"`
	Points         int          `json:"points"`
	GoalsFor       int          `json:"goalsFor"`
	GoalsAgainst   int          `json:"goalsAgainst"`
	GoalDifference int          `json:"goalDifference"`
	Form           string       `json:"form,omitempty"`
}

// FootballScorersResponse is the top scorers envelope.
type FootballScorersResponse struct {
	Competition FootballCompetition `json:"competition"`
	Scorers     []FootballScorer    `json:"scorers"`
}

// FootballScorer is one row of a competition's top scorers list.
type FootballScorer struct {
	Player        FootballPlayer `json:"player"`
	Team          FootballTeam   `json:"team"`
	PlayedMatches int            `json:"playedMatches"`
	Goals         int            `json:"goals"`
	Assists       int            `json:"assists"`
	Penalties     int            `json:"penalties"`
}

// FootballPlayer is a player reference.
type FootballPlayer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// FootballTeamsResponse is the competition teams envelope.
type FootballTeamsResponse struct {
	Competition FootballCompetition  `json:"competition"`
	Teams       []FootballTeamDetail `json:"teams"`
}

// FootballTeamDetail is the expanded team record with squad.
type FootballTeamDetail struct {
	FootballTeam
	Address    string           `json:"address,omitempty"`
	Website    string           `json:"website,omitempty"`
	Founded    int              `json:"founded,omitempty"`
	ClubColors string           `json:"clubColors,omitempty"`
	Venue      string           `json:"venue,omitempty"`
	Coach      FootballCoach    `json:"coach,omitempty"`
	Squad      []FootballPlayer `json:"squad,omitempty"`
}

// FootballPerson is the standalone person payload, richer than the
// embedded player reference.
type FootballPerson struct {
	FootballPlayer
	CurrentTeam FootballTeam `json:"currentTeam,omitempty"`
	ShirtNumber int          `json:"shirtNumber,omitempty"`
}

// FootballCoach is a team's head coach.
type FootballCoach struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
}
