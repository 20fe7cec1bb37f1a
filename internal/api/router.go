// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medleyhq/medley/internal/catalog"
	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/models"
)

// MovieRecommender scores movie recommendations for a user.
type MovieRecommender interface {
	Recommend(ctx context.Context, userID string) ([]models.Movie, error)
}

// MusicRecommender scores album recommendations for a user.
type MusicRecommender interface {
	Recommend(ctx context.Context, userID string) ([]models.Album, error)
}

// NewsReader reads tagged articles from the local news cache.
type NewsReader interface {
	ByTag(tag string) ([]models.Article, error)
}

// CricketProvider serves cricket match, series and team data.
type CricketProvider interface {
	Matches(ctx context.Context, filter string) ([]models.CricketMatch, error)
	FavouriteTeamMatches(ctx context.Context, teamName string) ([]models.CricketMatch, error)
	Series(ctx context.Context) ([]models.CricketSeries, error)
	Scorecard(ctx context.Context, matchID string) (json.RawMessage, error)
	CountryFlags(ctx context.Context) ([]models.CricketCountry, error)
	SearchTeams(ctx context.Context, query string) ([]models.CricketTeamRef, error)
}

// FootballProvider serves football match, table and squad data.
type FootballProvider interface {
	HomeMatches(ctx context.Context) ([]models.FootballMatch, error)
	TeamFeed(ctx context.Context, teamID int) ([]models.FootballMatch, error)
	Standings(ctx context.Context, competition string) (*models.FootballStandingsResponse, error)
	Scorers(ctx context.Context, competition string) (*models.FootballScorersResponse, error)
	CompetitionTeams(ctx context.Context, competition string) (*models.FootballTeamsResponse, error)
	SearchTeams(ctx context.Context, query string) ([]models.FootballTeamDetail, error)
	FavouritePlayer(ctx context.Context, personID int) (*models.FootballPerson, error)
}

// MovieCatalog serves browse shelves and lookups for movies.
type MovieCatalog interface {
	Search(ctx context.Context, query string) ([]models.Movie, error)
	NowPlaying(ctx context.Context) ([]models.Movie, error)
	Upcoming(ctx context.Context) ([]models.Movie, error)
	TopRated(ctx context.Context) ([]models.Movie, error)
	Details(ctx context.Context, id int) (*models.MovieDetails, error)
}

// TVCatalog serves browse shelves and lookups for series.
type TVCatalog interface {
	Popular(ctx context.Context) ([]models.TVSeries, error)
	TopRated(ctx context.Context) ([]models.TVSeries, error)
	Search(ctx context.Context, query string) ([]models.TVSeries, error)
	Details(ctx context.Context, id int) (*models.TVSeriesDetails, error)
}

// GameCatalog serves browse shelves and lookups for games.
type GameCatalog interface {
	Trending(ctx context.Context) ([]models.Game, error)
	NewReleases(ctx context.Context) ([]models.Game, error)
	TopRated(ctx context.Context) ([]models.Game, error)
	Upcoming(ctx context.Context) ([]models.Game, error)
	Search(ctx context.Context, query string) ([]models.Game, error)
	Details(ctx context.Context, id int) (*models.Game, error)
}

// BookCatalog serves browse shelves and lookups for books.
type BookCatalog interface {
	NewReleases(ctx context.Context) ([]models.Book, error)
	BestSellers(ctx context.Context) ([]models.Book, error)
	Trending(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, query string) ([]models.Book, error)
	Details(ctx context.Context, id string) (*models.Book, error)
}

// MusicCatalog serves genre shelves, track search and artist profiles.
type MusicCatalog interface {
	Genre(ctx context.Context, genre string) (*catalog.GenreContent, error)
	SearchTracks(ctx context.Context, query string) ([]models.Track, error)
	Artist(ctx context.Context, name string) (*catalog.ArtistProfile, error)
}

// LikesStore persists per-user per-category like flags.
type LikesStore interface {
	Get(userID, category string) (*models.LikesDocument, error)
	SetItems(userID, category string, items map[string]bool) (*models.LikesDocument, error)
}

// Check is a named readiness probe run by the health endpoint.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Services bundles everything the HTTP layer depends on. Fields are
// interfaces so handler tests can substitute fakes.
type Services struct {
	MovieRecs MovieRecommender
	MusicRecs MusicRecommender
	News      NewsReader
	Cricket   CricketProvider
	Football  FootballProvider
	Movies    MovieCatalog
	TV        TVCatalog
	Games     GameCatalog
	Books     BookCatalog
	Music     MusicCatalog
	Likes     LikesStore
}

// Router builds the HTTP handler tree over the aggregation services.
type Router struct {
	services Services
	cfg      *config.APIConfig
	checks   []Check
}

// NewRouter creates a router. Checks are optional readiness probes
// surfaced at /api/v1/health/ready.
func NewRouter(services Services, cfg *config.APIConfig, checks ...Check) *Router {
	return &Router{
		services: services,
		cfg:      cfg,
		checks:   checks,
	}
}

// Routes assembles the full middleware and route tree.
func (router *Router) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(router.cfg))

	// Health endpoints stay outside the main rate limit so probes
	// never compete with client traffic.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.HealthLive)
		r.Get("/ready", router.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(router.cfg))
		r.Use(PrometheusMetrics)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/movies", router.RecommendMovies)
			r.Get("/music", router.RecommendMusic)
		})

		r.Get("/news", router.News)
		r.Get("/news/top", router.NewsTop)

		r.Route("/sports/cricket", func(r chi.Router) {
			r.Get("/matches", router.CricketMatches)
			r.Get("/series", router.CricketSeries)
			r.Get("/teams", router.CricketTeamSearch)
			r.Get("/teams/matches", router.CricketTeamMatches)
			r.Get("/scorecard/{id}", router.CricketScorecard)
			r.Get("/flags", router.CricketFlags)
		})

		r.Route("/sports/football", func(r chi.Router) {
			r.Get("/matches", router.FootballHomeMatches)
			r.Get("/teams", router.FootballTeamSearch)
			r.Get("/teams/{id}/feed", router.FootballTeamFeed)
			r.Get("/standings/{competition}", router.FootballStandings)
			r.Get("/scorers/{competition}", router.FootballScorers)
			r.Get("/competitions/{competition}/teams", router.FootballCompetitionTeams)
			r.Get("/players/{id}", router.FootballPlayer)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Route("/movies", func(r chi.Router) {
				r.Get("/now-playing", router.MoviesNowPlaying)
				r.Get("/upcoming", router.MoviesUpcoming)
				r.Get("/top-rated", router.MoviesTopRated)
				r.Get("/search", router.MoviesSearch)
				r.Get("/{id}", router.MovieDetails)
			})
			r.Route("/tv", func(r chi.Router) {
				r.Get("/popular", router.TVPopular)
				r.Get("/top-rated", router.TVTopRated)
				r.Get("/search", router.TVSearch)
				r.Get("/{id}", router.TVDetails)
			})
			r.Route("/games", func(r chi.Router) {
				r.Get("/trending", router.GamesTrending)
				r.Get("/new-releases", router.GamesNewReleases)
				r.Get("/top-rated", router.GamesTopRated)
				r.Get("/upcoming", router.GamesUpcoming)
				r.Get("/search", router.GamesSearch)
				r.Get("/{id}", router.GameDetails)
			})
			r.Route("/books", func(r chi.Router) {
				r.Get("/new-releases", router.BooksNewReleases)
				r.Get("/best-sellers", router.BooksBestSellers)
				r.Get("/trending", router.BooksTrending)
				r.Get("/search", router.BooksSearch)
				r.Get("/{id}", router.BookDetails)
			})
			r.Route("/music", func(r chi.Router) {
				r.Get("/genres/{genre}", router.MusicGenre)
				r.Get("/tracks", router.MusicTrackSearch)
				r.Get("/artists/{name}", router.MusicArtist)
			})
		})

		r.Get("/likes/{category}", router.LikesGet)
		r.Put("/likes/{category}", router.LikesPut)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
