// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/models"
)

// FootballClient talks to football-data.org v4. The free tier allows
// 10 requests per minute, so every call is paced through a rate
// limiter and concurrent identical requests are collapsed with
// singleflight so a burst of handlers waiting on the same competition
// produces a single upstream call.
type FootballClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	group      singleflight.Group
}

// NewFootballClient creates a football-data.org client from
// configuration.
func NewFootballClient(cfg *config.FootballConfig) *FootballClient {
	gap := cfg.MinRequestGap
	if gap <= 0 {
		gap = 200 * time.Millisecond
	}
	return &FootballClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
		limiter:    rate.NewLimiter(rate.Every(gap), 1),
	}
}

// footballGet deduplicates and paces one GET against the upstream.
// The path doubles as the singleflight key since all parameters are
// path-encoded.
func footballGet[T any](ctx context.Context, c *FootballClient, operation, path string) (*T, error) {
	result, err, _ := c.group.Do(path, func() (any, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		opts := requestOptions{headers: map[string]string{
			"X-Auth-Token": c.apiKey,
		}}
		var out T
		if err := fetchJSON(ctx, c.httpClient, c.baseURL+path, "football", operation, opts, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("football: unexpected result type %T", result)
	}
	return typed, nil
}

// CompetitionMatches fetches the full season's fixtures and results
// for a competition code (PL, PD, SA, BL1, FL1, CL).
func (c *FootballClient) CompetitionMatches(ctx context.Context, competition string) ([]models.FootballMatch, error) {
	resp, err := footballGet[models.FootballMatchesResponse](ctx, c, "competition_matches", fmt.Sprintf("/competitions/%s/matches", competition))
	if err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// Standings fetches the league table for a competition.
func (c *FootballClient) Standings(ctx context.Context, competition string) (*models.FootballStandingsResponse, error) {
	return footballGet[models.FootballStandingsResponse](ctx, c, "standings", fmt.Sprintf("/competitions/%s/standings", competition))
}

// Scorers fetches the top scorers for a competition.
func (c *FootballClient) Scorers(ctx context.Context, competition string) (*models.FootballScorersResponse, error) {
	return footballGet[models.FootballScorersResponse](ctx, c, "scorers", fmt.Sprintf("/competitions/%s/scorers", competition))
}

// Teams fetches all teams in a competition with squads.
func (c *FootballClient) Teams(ctx context.Context, competition string) (*models.FootballTeamsResponse, error) {
	return footballGet[models.FootballTeamsResponse](ctx, c, "teams", fmt.Sprintf("/competitions/%s/teams", competition))
}

// Person fetches a single player or coach by ID.
func (c *FootballClient) Person(ctx context.Context, personID int) (*models.FootballPerson, error) {
	return footballGet[models.FootballPerson](ctx, c, "person", fmt.Sprintf("/persons/%d", personID))
}

// TeamMatches fetches the fixtures and results for a single team.
func (c *FootballClient) TeamMatches(ctx context.Context, teamID int) ([]models.FootballMatch, error) {
	resp, err := footballGet[models.FootballMatchesResponse](ctx, c, "team_matches", fmt.Sprintf("/teams/%d/matches", teamID))
	if err != nil {
		return nil, err
	}
	return resp.Matches, nil
}
