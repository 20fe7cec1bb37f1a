// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/medleyhq/medley/internal/models"
	"github.com/medleyhq/medley/internal/sports"
)

// CricketMatches returns matches for a filter. Unknown filter values
// fall through to a series-name substring match, so only an empty
// filter is rejected here.
func (router *Router) CricketMatches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = sports.CricketFilterAll
	}

	matches, err := router.services.Cricket.Matches(r.Context(), filter)
	if err != nil {
		rw.UpstreamError("cricapi", err)
		return
	}
	if matches == nil {
		matches = []models.CricketMatch{}
	}

	rw.Success(map[string]interface{}{
		"filter":  filter,
		"matches": matches,
		"count":   len(matches),
	})
}

// CricketTeamMatches returns matches for a favourite team by name.
func (router *Router) CricketTeamMatches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	name := r.URL.Query().Get("name")
	if name == "" {
		rw.BadRequest("name parameter is required")
		return
	}

	matches, err := router.services.Cricket.FavouriteTeamMatches(r.Context(), name)
	if err != nil {
		rw.UpstreamError("cricapi", err)
		return
	}
	if matches == nil {
		matches = []models.CricketMatch{}
	}

	rw.Success(map[string]interface{}{
		"team":    name,
		"matches": matches,
		"count":   len(matches),
	})
}

// CricketSeries returns the current series list.
func (router *Router) CricketSeries(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	series, err := router.services.Cricket.Series(r.Context())
	if err != nil {
		rw.UpstreamError("cricapi", err)
		return
	}
	if series == nil {
		series = []models.CricketSeries{}
	}

	rw.Success(map[string]interface{}{
		"series": series,
		"count":  len(series),
	})
}

// CricketTeamSearch searches the cached team list by name fragment.
func (router *Router) CricketTeamSearch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query := r.URL.Query().Get("q")
	if query == "" {
		rw.BadRequest("q parameter is required")
		return
	}

	teams, err := router.services.Cricket.SearchTeams(r.Context(), query)
	if err != nil {
		rw.UpstreamError("cricapi", err)
		return
	}
	if teams == nil {
		teams = []models.CricketTeamRef{}
	}

	rw.Success(map[string]interface{}{
		"query": query,
		"teams": teams,
		"count": len(teams),
	})
}

// CricketScorecard proxies the full scorecard payload for a match.
// The upstream shape varies by match type so it passes through as-is.
func (router *Router) CricketScorecard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	matchID := chi.URLParam(r, "id")
	scorecard, err := router.services.Cricket.Scorecard(r.Context(), matchID)
	if err != nil {
		rw.UpstreamError("cricapi", err)
		return
	}

	rw.Success(scorecard)
}

// CricketFlags returns the cached country flag list.
func (router *Router) CricketFlags(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	flags, err := router.services.Cricket.CountryFlags(r.Context())
	if err != nil {
		rw.UpstreamError("cricapi", err)
		return
	}
	if flags == nil {
		flags = []models.CricketCountry{}
	}

	rw.Success(map[string]interface{}{
		"countries": flags,
		"count":     len(flags),
	})
}

// FootballHomeMatches returns the aggregated home feed of upcoming
// matches for the followed clubs.
func (router *Router) FootballHomeMatches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	matches, err := router.services.Football.HomeMatches(r.Context())
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}
	if matches == nil {
		matches = []models.FootballMatch{}
	}

	rw.Success(map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// FootballTeamFeed returns the recent-plus-upcoming feed for one team.
func (router *Router) FootballTeamFeed(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	teamID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || teamID <= 0 {
		rw.BadRequest("team id must be a positive integer")
		return
	}

	matches, err := router.services.Football.TeamFeed(r.Context(), teamID)
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}
	if matches == nil {
		matches = []models.FootballMatch{}
	}

	rw.Success(map[string]interface{}{
		"team_id": teamID,
		"matches": matches,
		"count":   len(matches),
	})
}

// FootballStandings returns the league table for a competition code.
func (router *Router) FootballStandings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	competition := chi.URLParam(r, "competition")
	standings, err := router.services.Football.Standings(r.Context(), competition)
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}

	rw.Success(standings)
}

// FootballScorers returns the top scorers for a competition code.
func (router *Router) FootballScorers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	competition := chi.URLParam(r, "competition")
	scorers, err := router.services.Football.Scorers(r.Context(), competition)
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}

	rw.Success(scorers)
}

// FootballCompetitionTeams returns all teams in a competition.
func (router *Router) FootballCompetitionTeams(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	competition := chi.URLParam(r, "competition")
	teams, err := router.services.Football.CompetitionTeams(r.Context(), competition)
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}

	rw.Success(teams)
}

// FootballTeamSearch searches clubs across the followed competitions.
func (router *Router) FootballTeamSearch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query := r.URL.Query().Get("q")
	if query == "" {
		rw.BadRequest("q parameter is required")
		return
	}

	teams, err := router.services.Football.SearchTeams(r.Context(), query)
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}
	if teams == nil {
		teams = []models.FootballTeamDetail{}
	}

	rw.Success(map[string]interface{}{
		"query": query,
		"teams": teams,
		"count": len(teams),
	})
}

// FootballPlayer returns a player profile with a portrait resolved
// from Wikipedia when available.
func (router *Router) FootballPlayer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	personID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || personID <= 0 {
		rw.BadRequest("player id must be a positive integer")
		return
	}

	person, err := router.services.Football.FavouritePlayer(r.Context(), personID)
	if err != nil {
		rw.UpstreamError("football-data", err)
		return
	}

	rw.Success(person)
}
