// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package main is the entry point for the Medley server.
//
// Medley aggregates movies, games, music, books, news and sports data
// from public APIs (TMDB, RAWG, Last.fm, GNews, CricAPI,
// football-data.org, Google Books, Wikipedia) behind one REST API with
// per-user likes and recommendations.
//
// Startup order:
//
//  1. Configuration via Koanf v2 (defaults, config.yaml, environment)
//  2. Structured logging via zerolog
//  3. BadgerDB likes store and JSON news/flags caches
//  4. Upstream source clients and the aggregation services
//  5. Supervisor tree: news refresher and carousel synchronizer in the
//     background layer, the HTTP server in the API layer
//
// The server shuts down gracefully on SIGINT and SIGTERM: in-flight
// requests drain within the configured timeout, then the stores close.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/medleyhq/medley/internal/api"
	"github.com/medleyhq/medley/internal/carousel"
	"github.com/medleyhq/medley/internal/catalog"
	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/likes"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/news"
	"github.com/medleyhq/medley/internal/newsstore"
	"github.com/medleyhq/medley/internal/recommend"
	"github.com/medleyhq/medley/internal/sources"
	"github.com/medleyhq/medley/internal/sports"
	"github.com/medleyhq/medley/internal/supervisor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("likes_path", cfg.Likes.Path).
		Str("news_cache_path", cfg.NewsCache.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting Medley")

	likesStore, err := likes.Open(&cfg.Likes)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open likes store")
	}
	defer func() {
		if err := likesStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing likes store")
		}
	}()

	newsStore := newsstore.New(cfg.NewsCache.Path)
	flagStore := newsstore.NewFlagStore(cfg.NewsCache.FlagsPath)

	// Upstream clients.
	tmdb := sources.NewTMDBClient(&cfg.TMDB)
	rawg := sources.NewRAWGClient(&cfg.RAWG)
	lastfm := sources.NewLastfmClient(&cfg.Lastfm)
	gnews := sources.NewGNewsClient(&cfg.GNews)
	cricket := sources.NewCricketClient(&cfg.Cricket)
	football := sources.NewFootballClient(&cfg.Football)
	books := sources.NewBooksClient(&cfg.Books)
	wiki := sources.NewWikipediaClient(&cfg.Wiki)

	// Aggregation services.
	movieCatalog := catalog.NewMovies(tmdb)
	defer movieCatalog.Close()
	tvCatalog := catalog.NewTV(tmdb)
	defer tvCatalog.Close()
	gameCatalog := catalog.NewGames(rawg)
	defer gameCatalog.Close()
	bookCatalog := catalog.NewBooks(books)
	defer bookCatalog.Close()
	musicCatalog := catalog.NewMusic(lastfm, wiki)
	defer musicCatalog.Close()

	cricketService := sports.NewCricketService(cricket, flagStore)
	defer cricketService.Close()
	footballService := sports.NewFootballService(football, wiki, &cfg.Football)
	defer footballService.Close()

	movieScorer := recommend.NewMovieScorer(tmdb, likesStore, &cfg.Recommend)
	musicScorer := recommend.NewMusicScorer(lastfm, likesStore, &cfg.Recommend)

	// Background workers.
	refresher := news.NewRefresher(news.NewFetcher(gnews, newsStore), cfg.GNews.RefreshInterval)
	synchronizer := carousel.NewSynchronizer(cfg.Carousel.TickInterval, cfg.Carousel.Cooldown)

	router := api.NewRouter(api.Services{
		MovieRecs: movieScorer,
		MusicRecs: musicScorer,
		News:      newsStore,
		Cricket:   cricketService,
		Football:  footballService,
		Movies:    movieCatalog,
		TV:        tvCatalog,
		Games:     gameCatalog,
		Books:     bookCatalog,
		Music:     musicCatalog,
		Likes:     likesStore,
	}, &cfg.API,
		api.Check{Name: "likes", Probe: func(context.Context) error {
			_, err := likesStore.Get("readiness-probe", "movies")
			return err
		}},
		api.Check{Name: "news", Probe: func(context.Context) error {
			_, err := newsStore.Load()
			return err
		}},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.AddBackgroundService(refresher)
	tree.AddBackgroundService(synchronizer)
	tree.AddAPIService(supervisor.NewHTTPService(server, treeConfig.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree starting")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil && len(unstopped) > 0 {
			for _, svc := range unstopped {
				logging.Error().Str("service", svc.Name).Msg("Service did not stop in time")
			}
		}
		logging.Fatal().Err(err).Msg("Supervisor tree exited with error")
	}

	logging.Info().Msg("Medley stopped")
}
