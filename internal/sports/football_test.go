// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sports

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/models"
)

type fakeFootballAPI struct {
	matches     map[string][]models.FootballMatch
	teamMatches map[int][]models.FootballMatch
	standings   map[string]*models.FootballStandingsResponse
	scorers     map[string]*models.FootballScorersResponse
	teams       map[string]*models.FootballTeamsResponse
	persons     map[int]*models.FootballPerson

	matchCalls     map[string]int
	standingsCalls int
}

func (f *fakeFootballAPI) CompetitionMatches(_ context.Context, comp string) ([]models.FootballMatch, error) {
	if f.matchCalls == nil {
		f.matchCalls = map[string]int{}
	}
	f.matchCalls[comp]++
	matches, ok := f.matches[comp]
	if !ok {
		return nil, fmt.Errorf("competition %s unavailable", comp)
	}
	return matches, nil
}

func (f *fakeFootballAPI) Standings(_ context.Context, comp string) (*models.FootballStandingsResponse, error) {
	f.standingsCalls++
	if resp, ok := f.standings[comp]; ok {
		return resp, nil
	}
	return nil, errors.New("no standings")
}

func (f *fakeFootballAPI) Scorers(_ context.Context, comp string) (*models.FootballScorersResponse, error) {
	if resp, ok := f.scorers[comp]; ok {
		return resp, nil
	}
	return nil, errors.New("no scorers")
}

func (f *fakeFootballAPI) Teams(_ context.Context, comp string) (*models.FootballTeamsResponse, error) {
	if resp, ok := f.teams[comp]; ok {
		return resp, nil
	}
	return nil, errors.New("no teams")
}

func (f *fakeFootballAPI) TeamMatches(_ context.Context, teamID int) ([]models.FootballMatch, error) {
	if matches, ok := f.teamMatches[teamID]; ok {
		return matches, nil
	}
	return nil, errors.New("no team matches")
}

func (f *fakeFootballAPI) Person(_ context.Context, id int) (*models.FootballPerson, error) {
	if p, ok := f.persons[id]; ok {
		return p, nil
	}
	return nil, errors.New("person not found")
}

type fakeImages struct {
	urls map[string]string
}

func (f *fakeImages) PageImage(_ context.Context, title string) string {
	return f.urls[title]
}

var footballNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func footballMatch(id, homeID, awayID int, status string, kickoff time.Time) models.FootballMatch {
	return models.FootballMatch{
		ID:       id,
		UTCDate:  kickoff.Format(time.RFC3339),
		Status:   status,
		HomeTeam: models.FootballTeam{ID: homeID},
		AwayTeam: models.FootballTeam{ID: awayID},
	}
}

func footballTestConfig(competitions ...string) *config.FootballConfig {
	return &config.FootballConfig{
		Competitions:    competitions,
		MatchesCacheTTL: 5 * time.Minute,
		StatsCacheTTL:   10 * time.Minute,
		TeamsCacheTTL:   30 * time.Minute,
	}
}

func newFootballService(t *testing.T, api *fakeFootballAPI, cfg *config.FootballConfig) *FootballService {
	t.Helper()
	svc := NewFootballService(api, &fakeImages{}, cfg)
	svc.now = func() time.Time { return footballNow }
	t.Cleanup(svc.Close)
	return svc
}

func TestFootballHomeMatches(t *testing.T) {
	in := func(d time.Duration) time.Time { return footballNow.Add(d) }
	api := &fakeFootballAPI{
		matches: map[string][]models.FootballMatch{
			"PL": {
				// Team 86: a finished match and two upcoming ones.
				footballMatch(1, 86, 200, "FINISHED", in(-48*time.Hour)),
				footballMatch(2, 86, 201, "TIMED", in(72*time.Hour)),
				footballMatch(3, 202, 86, "SCHEDULED", in(24*time.Hour)),
				// Derby between two home-feed teams: one shared fixture.
				footballMatch(4, 81, 4, "SCHEDULED", in(48*time.Hour)),
			},
			"PD": {
				footballMatch(5, 5, 203, "SCHEDULED", in(96*time.Hour)),
			},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL", "PD"))

	feed, err := svc.HomeMatches(context.Background())
	require.NoError(t, err)

	// Team 86's earliest upcoming is match 3; the derby (match 4)
	// appears once for teams 81 and 4; team 5's fixture closes the
	// list. Ordered by kickoff.
	var ids []int
	for _, m := range feed {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{3, 4, 5}, ids)

	// A second read is served from cache.
	_, err = svc.HomeMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, api.matchCalls["PL"])
	assert.Equal(t, 1, api.matchCalls["PD"])
}

func TestFootballHomeMatchesSkipsFailingCompetition(t *testing.T) {
	api := &fakeFootballAPI{
		matches: map[string][]models.FootballMatch{
			"PL": {footballMatch(1, 86, 200, "SCHEDULED", footballNow.Add(time.Hour))},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL", "SA"))

	feed, err := svc.HomeMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].ID)
}

func TestFootballTeamFeedRecentAndNext(t *testing.T) {
	in := func(d time.Duration) time.Time { return footballNow.Add(d) }
	api := &fakeFootballAPI{
		matches: map[string][]models.FootballMatch{
			"PL": {
				footballMatch(1, 10, 200, "FINISHED", in(-30*24*time.Hour)),
				footballMatch(2, 10, 201, "FINISHED", in(-2*24*time.Hour)),
				footballMatch(3, 202, 10, "TIMED", in(24*time.Hour)),
				footballMatch(4, 10, 203, "SCHEDULED", in(48*time.Hour)),
			},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL"))

	feed, err := svc.TeamFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, 2, feed[0].ID, "most recent result within a week")
	assert.Equal(t, 3, feed[1].ID, "next upcoming fixture")
}

func TestFootballTeamFeedNoRecentShowsNextTwo(t *testing.T) {
	in := func(d time.Duration) time.Time { return footballNow.Add(d) }
	api := &fakeFootballAPI{
		matches: map[string][]models.FootballMatch{
			"PL": {
				footballMatch(1, 10, 200, "SCHEDULED", in(72*time.Hour)),
				footballMatch(2, 10, 201, "TIMED", in(24*time.Hour)),
				footballMatch(3, 10, 202, "SCHEDULED", in(48*time.Hour)),
			},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL"))

	feed, err := svc.TeamFeed(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, 2, feed[0].ID)
	assert.Equal(t, 3, feed[1].ID)
}

func TestFootballTeamFeedFallsBackToTeamEndpoint(t *testing.T) {
	api := &fakeFootballAPI{
		matches: map[string][]models.FootballMatch{"PL": {}},
		teamMatches: map[int][]models.FootballMatch{
			99: {footballMatch(7, 99, 300, "SCHEDULED", footballNow.Add(time.Hour))},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL"))

	feed, err := svc.TeamFeed(context.Background(), 99)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, 7, feed[0].ID)
}

func TestFootballStandingsCached(t *testing.T) {
	api := &fakeFootballAPI{
		standings: map[string]*models.FootballStandingsResponse{
			"PL": {Standings: []models.FootballStanding{{Type: "TOTAL"}}},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL"))
	ctx := context.Background()

	first, err := svc.Standings(ctx, "PL")
	require.NoError(t, err)
	second, err := svc.Standings(ctx, "PL")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, api.standingsCalls)
}

func TestFootballSearchTeams(t *testing.T) {
	api := &fakeFootballAPI{
		teams: map[string]*models.FootballTeamsResponse{
			"PL": {Teams: []models.FootballTeamDetail{
				{FootballTeam: models.FootballTeam{ID: 1, Name: "Manchester United", ShortName: "Man Utd"}},
				{FootballTeam: models.FootballTeam{ID: 2, Name: "Manchester City", ShortName: "Man City"}},
				{FootballTeam: models.FootballTeam{ID: 3, Name: "Arsenal"}},
			}},
			"PD": {Teams: []models.FootballTeamDetail{
				{FootballTeam: models.FootballTeam{ID: 4, Name: "Real Madrid"}},
			}},
		},
	}
	svc := newFootballService(t, api, footballTestConfig("PL", "PD"))
	ctx := context.Background()

	got, err := svc.SearchTeams(ctx, "manchester")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.SearchTeams(ctx, "m")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.SearchTeams(ctx, "real")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)
}

func TestFootballFavouritePlayerImage(t *testing.T) {
	api := &fakeFootballAPI{
		persons: map[int]*models.FootballPerson{
			1556: {FootballPlayer: models.FootballPlayer{ID: 1556, Name: "Vinicius Junior"}},
		},
	}
	svc := NewFootballService(api, &fakeImages{
		urls: map[string]string{"Vinicius Junior": "https://img/vini.jpg"},
	}, footballTestConfig("PD"))
	t.Cleanup(svc.Close)

	person, err := svc.FavouritePlayer(context.Background(), 1556)
	require.NoError(t, err)
	assert.Equal(t, "https://img/vini.jpg", person.ImageURL)

	_, err = svc.FavouritePlayer(context.Background(), 42)
	require.Error(t, err)
}
