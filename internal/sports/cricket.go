// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sports

import (
	"context"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/cache"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/models"
	"github.com/medleyhq/medley/internal/newsstore"
)

// Match filter tokens accepted by CricketService.Matches. Anything
// else is treated as a series or match name substring filter.
const (
	CricketFilterCurrent       = "current"
	CricketFilterAll           = "all"
	CricketFilterUpcoming      = "upcoming"
	CricketFilterInternational = "international"
	CricketFilterTest          = "test"
	CricketFilterODI           = "odi"
	CricketFilterT20           = "t20"
)

const (
	cricketMatchesCacheKey = "cricket:matches"
	cricketTeamsCacheKey   = "cricket:teams"

	cricketMatchesTTL = 10 * time.Minute
	cricketTeamsTTL   = time.Hour

	teamSearchMinQuery = 2
	teamSearchLimit    = 10
)

// cricketCountries are the nations whose head-to-heads count as
// international matches.
var cricketCountries = map[string]bool{
	"afghanistan": true, "australia": true, "bangladesh": true,
	"england": true, "india": true, "ireland": true, "new zealand": true,
	"pakistan": true, "south africa": true, "sri lanka": true,
	"west indies": true, "zimbabwe": true, "netherlands": true,
	"scotland": true, "namibia": true, "uae": true, "oman": true,
	"nepal": true, "usa": true, "canada": true,
}

// CricketAPI is the upstream surface the cricket service needs.
type CricketAPI interface {
	CurrentMatches(ctx context.Context) ([]models.CricketMatch, error)
	AllMatches(ctx context.Context) ([]models.CricketMatch, error)
	Series(ctx context.Context) ([]models.CricketSeries, error)
	Countries(ctx context.Context) ([]models.CricketCountry, error)
	Teams(ctx context.Context) ([]models.CricketTeamRef, error)
	MatchScorecard(ctx context.Context, matchID string) (json.RawMessage, error)
}

// CricketService serves match lists, series, team search, and the
// country-flags snapshot. The full match list is an expensive
// paginated aggregation, so every filter works on a cached copy;
// only the live "current" view hits the upstream each time.
type CricketService struct {
	client CricketAPI
	flags  *newsstore.FlagStore
	cache  *cache.Cache
}

// NewCricketService creates a cricket aggregation service.
func NewCricketService(client CricketAPI, flags *newsstore.FlagStore) *CricketService {
	return &CricketService{
		client: client,
		flags:  flags,
		cache:  cache.New("cricket", cricketMatchesTTL),
	}
}

// Close releases the service's cache resources.
func (s *CricketService) Close() {
	s.cache.Close()
}

// Matches returns matches for a filter token, or a name substring
// filter for unrecognized tokens. An empty filter means all matches.
func (s *CricketService) Matches(ctx context.Context, filter string) ([]models.CricketMatch, error) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == CricketFilterCurrent {
		return s.client.CurrentMatches(ctx)
	}

	all, err := s.allMatches(ctx)
	if err != nil {
		return nil, err
	}

	switch filter {
	case "", CricketFilterAll:
		return all, nil
	case CricketFilterUpcoming:
		return filterMatches(all, func(m models.CricketMatch) bool {
			return !m.MatchStarted && !m.MatchEnded
		}), nil
	case CricketFilterInternational:
		return filterMatches(all, isInternational), nil
	case CricketFilterTest, CricketFilterODI, CricketFilterT20:
		return filterMatches(all, func(m models.CricketMatch) bool {
			return strings.EqualFold(m.MatchType, filter)
		}), nil
	default:
		return filterMatches(all, func(m models.CricketMatch) bool {
			return strings.Contains(strings.ToLower(m.Name), filter)
		}), nil
	}
}

// FavouriteTeamMatches returns all cached matches involving the named
// team.
func (s *CricketService) FavouriteTeamMatches(ctx context.Context, teamName string) ([]models.CricketMatch, error) {
	if teamName == "" {
		return nil, nil
	}
	all, err := s.allMatches(ctx)
	if err != nil {
		return nil, err
	}
	return filterMatches(all, func(m models.CricketMatch) bool {
		for _, t := range m.Teams {
			if strings.EqualFold(t, teamName) {
				return true
			}
		}
		return false
	}), nil
}

// Series returns the current series list.
func (s *CricketService) Series(ctx context.Context) ([]models.CricketSeries, error) {
	return s.client.Series(ctx)
}

// Scorecard returns the raw scorecard document for a match.
func (s *CricketService) Scorecard(ctx context.Context, matchID string) (json.RawMessage, error) {
	if matchID == "" {
		return nil, fmt.Errorf("match id required")
	}
	return s.client.MatchScorecard(ctx, matchID)
}

// CountryFlags returns the country-flags snapshot, fetching and
// persisting it on first use or when the local copy is unreadable.
func (s *CricketService) CountryFlags(ctx context.Context) ([]models.CricketCountry, error) {
	countries, err := s.flags.Load()
	if err == nil && len(countries) > 0 {
		return countries, nil
	}
	if err != nil {
		logging.Warn().Err(err).Msg("Country flags snapshot unreadable, refetching")
	}

	countries, err = s.client.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	if err := s.flags.Save(countries); err != nil {
		logging.Warn().Err(err).Msg("Failed to persist country flags snapshot")
	}
	return countries, nil
}

// SearchTeams returns up to 10 teams whose name contains the query.
// Queries shorter than 2 characters return nothing. The full team list
// is fetched once per TTL.
func (s *CricketService) SearchTeams(ctx context.Context, query string) ([]models.CricketTeamRef, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < teamSearchMinQuery {
		return nil, nil
	}

	teams, err := s.allTeams(ctx)
	if err != nil {
		return nil, err
	}

	var hits []models.CricketTeamRef
	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.Name), query) {
			hits = append(hits, team)
			if len(hits) == teamSearchLimit {
				break
			}
		}
	}
	return hits, nil
}

func (s *CricketService) allMatches(ctx context.Context) ([]models.CricketMatch, error) {
	if cached, ok := s.cache.Get(cricketMatchesCacheKey); ok {
		return cached.([]models.CricketMatch), nil
	}
	all, err := s.client.AllMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate matches: %w", err)
	}
	s.cache.Set(cricketMatchesCacheKey, all)
	return all, nil
}

func (s *CricketService) allTeams(ctx context.Context) ([]models.CricketTeamRef, error) {
	if cached, ok := s.cache.Get(cricketTeamsCacheKey); ok {
		return cached.([]models.CricketTeamRef), nil
	}
	teams, err := s.client.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	s.cache.SetWithTTL(cricketTeamsCacheKey, teams, cricketTeamsTTL)
	return teams, nil
}

func isInternational(m models.CricketMatch) bool {
	if len(m.Teams) != 2 {
		return false
	}
	return cricketCountries[strings.ToLower(m.Teams[0])] &&
		cricketCountries[strings.ToLower(m.Teams[1])]
}

func filterMatches(matches []models.CricketMatch, keep func(models.CricketMatch) bool) []models.CricketMatch {
	var out []models.CricketMatch
	for _, m := range matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
