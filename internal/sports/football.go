// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/medleyhq/medley/internal/cache"
	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/models"
)

// homeFeedTeamIDs are the clubs whose next fixtures make up the
// default home feed when no favourite team is set.
var homeFeedTeamIDs = []int{86, 81, 4, 5, 108, 524, 65, 57, 64}

// upcomingStatuses are the fixture states counted as not yet played.
var upcomingStatuses = map[string]bool{
	"SCHEDULED": true,
	"TIMED":     true,
	"POSTPONED": true,
}

const recentMatchWindow = 7 * 24 * time.Hour

// FootballAPI is the upstream surface the football service needs.
type FootballAPI interface {
	CompetitionMatches(ctx context.Context, competition string) ([]models.FootballMatch, error)
	Standings(ctx context.Context, competition string) (*models.FootballStandingsResponse, error)
	Scorers(ctx context.Context, competition string) (*models.FootballScorersResponse, error)
	Teams(ctx context.Context, competition string) (*models.FootballTeamsResponse, error)
	TeamMatches(ctx context.Context, teamID int) ([]models.FootballMatch, error)
	Person(ctx context.Context, personID int) (*models.FootballPerson, error)
}

// ImageResolver resolves a page title to a thumbnail URL, returning
// empty when nothing suitable exists.
type ImageResolver interface {
	PageImage(ctx context.Context, title string) string
}

// FootballService aggregates fixtures, standings, and player data
// across the configured competitions. All competition-level fetches
// are TTL-cached; the aggregation views never hit the upstream more
// than once per competition per TTL.
type FootballService struct {
	client FootballAPI
	wiki   ImageResolver
	cfg    *config.FootballConfig
	cache  *cache.Cache

	// now is swappable for tests.
	now func() time.Time
}

// NewFootballService creates a football aggregation service.
func NewFootballService(client FootballAPI, wiki ImageResolver, cfg *config.FootballConfig) *FootballService {
	return &FootballService{
		client: client,
		wiki:   wiki,
		cfg:    cfg,
		cache:  cache.New("football", cfg.MatchesCacheTTL),
		now:    time.Now,
	}
}

// Close releases the service's cache resources.
func (s *FootballService) Close() {
	s.cache.Close()
}

// HomeMatches returns the next upcoming fixture for each home-feed
// club, deduplicated (derbies appear once) and ordered by kickoff.
func (s *FootballService) HomeMatches(ctx context.Context) ([]models.FootballMatch, error) {
	const key = "football:home"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]models.FootballMatch), nil
	}

	byCompetition, err := s.leagueMatches(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	seen := map[int]bool{}
	var feed []models.FootballMatch
	for _, teamID := range homeFeedTeamIDs {
		teamMatches := matchesForTeam(byCompetition, teamID)
		next, ok := earliestUpcoming(teamMatches, now)
		if !ok {
			continue
		}
		if seen[next.ID] {
			continue
		}
		seen[next.ID] = true
		feed = append(feed, next)
	}
	sortByKickoff(feed)

	s.cache.SetWithTTL(key, feed, s.cfg.MatchesCacheTTL)
	return feed, nil
}

// TeamFeed returns up to two matches for a team: the most recent
// result from the last week and the next upcoming fixture. With no
// recent result it returns the next two fixtures; with nothing
// upcoming it falls back to the team's last two matches.
func (s *FootballService) TeamFeed(ctx context.Context, teamID int) ([]models.FootballMatch, error) {
	byCompetition, err := s.leagueMatches(ctx)
	if err != nil {
		return nil, err
	}
	matches := matchesForTeam(byCompetition, teamID)
	if len(matches) == 0 {
		// Team plays outside the subscribed competitions.
		matches, err = s.client.TeamMatches(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("team %d matches: %w", teamID, err)
		}
	}
	sortByKickoff(matches)

	now := s.now()
	var recent *models.FootballMatch
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		t := kickoff(m)
		if m.Status == "FINISHED" && !t.After(now) && t.After(now.Add(-recentMatchWindow)) {
			recent = &matches[i]
			break
		}
	}

	var upcoming []models.FootballMatch
	for _, m := range matches {
		if upcomingStatuses[m.Status] && kickoff(m).After(now) {
			upcoming = append(upcoming, m)
		}
	}

	switch {
	case recent != nil && len(upcoming) > 0:
		return []models.FootballMatch{*recent, upcoming[0]}, nil
	case recent != nil:
		return []models.FootballMatch{*recent}, nil
	case len(upcoming) > 0:
		if len(upcoming) > 2 {
			upcoming = upcoming[:2]
		}
		return upcoming, nil
	default:
		if len(matches) > 2 {
			matches = matches[len(matches)-2:]
		}
		return matches, nil
	}
}

// Standings returns the standings tables for a competition.
func (s *FootballService) Standings(ctx context.Context, competition string) (*models.FootballStandingsResponse, error) {
	key := "football:standings:" + competition
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.FootballStandingsResponse), nil
	}
	resp, err := s.client.Standings(ctx, competition)
	if err != nil {
		return nil, err
	}
	s.cache.SetWithTTL(key, resp, s.cfg.StatsCacheTTL)
	return resp, nil
}

// Scorers returns the top scorers for a competition.
func (s *FootballService) Scorers(ctx context.Context, competition string) (*models.FootballScorersResponse, error) {
	key := "football:scorers:" + competition
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.FootballScorersResponse), nil
	}
	resp, err := s.client.Scorers(ctx, competition)
	if err != nil {
		return nil, err
	}
	s.cache.SetWithTTL(key, resp, s.cfg.StatsCacheTTL)
	return resp, nil
}

// CompetitionTeams returns the teams and squads for a competition.
func (s *FootballService) CompetitionTeams(ctx context.Context, competition string) (*models.FootballTeamsResponse, error) {
	key := "football:teams:" + competition
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.FootballTeamsResponse), nil
	}
	resp, err := s.client.Teams(ctx, competition)
	if err != nil {
		return nil, err
	}
	s.cache.SetWithTTL(key, resp, s.cfg.TeamsCacheTTL)
	return resp, nil
}

// SearchTeams returns up to 10 teams across the subscribed
// competitions whose name contains the query. Per-competition fetch
// failures are skipped so one dead league does not empty the search.
func (s *FootballService) SearchTeams(ctx context.Context, query string) ([]models.FootballTeamDetail, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < teamSearchMinQuery {
		return nil, nil
	}

	var hits []models.FootballTeamDetail
	seen := map[int]bool{}
	for _, comp := range s.cfg.Competitions {
		resp, err := s.CompetitionTeams(ctx, comp)
		if err != nil {
			logging.Warn().Str("competition", comp).Err(err).Msg("Team search skipping competition")
			continue
		}
		for _, team := range resp.Teams {
			if seen[team.ID] {
				continue
			}
			if strings.Contains(strings.ToLower(team.Name), query) ||
				strings.Contains(strings.ToLower(team.ShortName), query) {
				seen[team.ID] = true
				hits = append(hits, team)
				if len(hits) == teamSearchLimit {
					return hits, nil
				}
			}
		}
	}
	return hits, nil
}

// FavouritePlayer returns a player with a best-effort portrait
// resolved from Wikipedia. A missing image never fails the lookup.
func (s *FootballService) FavouritePlayer(ctx context.Context, personID int) (*models.FootballPerson, error) {
	person, err := s.client.Person(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("person %d: %w", personID, err)
	}
	if person.Name != "" {
		person.ImageURL = s.wiki.PageImage(ctx, person.Name)
	}
	return person, nil
}

// leagueMatches fetches the full fixture list per subscribed
// competition, each behind its own cache entry. One failing
// competition is logged and skipped; the call fails only when every
// competition fails.
func (s *FootballService) leagueMatches(ctx context.Context) (map[string][]models.FootballMatch, error) {
	out := make(map[string][]models.FootballMatch, len(s.cfg.Competitions))
	failed := 0
	for _, comp := range s.cfg.Competitions {
		key := "football:matches:" + comp
		if cached, ok := s.cache.Get(key); ok {
			out[comp] = cached.([]models.FootballMatch)
			continue
		}
		matches, err := s.client.CompetitionMatches(ctx, comp)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failed++
			logging.Warn().Str("competition", comp).Err(err).Msg("Competition matches fetch failed, skipping")
			continue
		}
		s.cache.SetWithTTL(key, matches, s.cfg.MatchesCacheTTL)
		out[comp] = matches
	}
	if len(out) == 0 && failed > 0 {
		return nil, fmt.Errorf("all %d competitions failed", failed)
	}
	return out, nil
}

func matchesForTeam(byCompetition map[string][]models.FootballMatch, teamID int) []models.FootballMatch {
	var out []models.FootballMatch
	for _, matches := range byCompetition {
		for _, m := range matches {
			if m.HomeTeam.ID == teamID || m.AwayTeam.ID == teamID {
				out = append(out, m)
			}
		}
	}
	return out
}

func earliestUpcoming(matches []models.FootballMatch, now time.Time) (models.FootballMatch, bool) {
	var best models.FootballMatch
	found := false
	for _, m := range matches {
		t := kickoff(m)
		if !upcomingStatuses[m.Status] || !t.After(now) {
			continue
		}
		if !found || t.Before(kickoff(best)) {
			best = m
			found = true
		}
	}
	return best, found
}

func sortByKickoff(matches []models.FootballMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return kickoff(matches[i]).Before(kickoff(matches[j]))
	})
}

// kickoff parses the fixture timestamp, zero time on malformed input
// so broken rows sort first instead of panicking.
func kickoff(m models.FootballMatch) time.Time {
	t, err := time.Parse(time.RFC3339, m.UTCDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
