// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package config provides centralized configuration for all Medley components.
//
// Configuration is loaded via Koanf v2 with layered sources (highest wins):
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables (TMDB_API_KEY, GNEWS_TOKEN, ...)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	TMDB     TMDBConfig     `koanf:"tmdb"`
	RAWG     RAWGConfig     `koanf:"rawg"`
	Lastfm   LastfmConfig   `koanf:"lastfm"`
	GNews    GNewsConfig    `koanf:"gnews"`
	Cricket  CricketConfig  `koanf:"cricket"`
	Football FootballConfig `koanf:"football"`
	Books    BooksConfig    `koanf:"books"`
	Wiki     WikiConfig     `koanf:"wiki"`

	Likes     LikesConfig     `koanf:"likes"`
	NewsCache NewsCacheConfig `koanf:"news_cache"`
	Recommend RecommendConfig `koanf:"recommend"`
	Carousel  CarouselConfig  `koanf:"carousel"`

	Server  ServerConfig  `koanf:"server"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// TMDBConfig configures the TMDB movie/TV metadata client.
type TMDBConfig struct {
	BaseURL string `koanf:"base_url"`
	// APIKey is the TMDB v4 read access token, sent as a bearer token.
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// RAWGConfig configures the RAWG game metadata client.
type RAWGConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// LastfmConfig configures the Last.fm music metadata client.
type LastfmConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// GNewsConfig configures the GNews article client.
type GNewsConfig struct {
	BaseURL string        `koanf:"base_url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout"`
	// MaxArticles is the per-request article cap passed to the API.
	MaxArticles int `koanf:"max_articles"`
	// RefreshInterval drives the background news refresher service.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// CricketConfig configures the CricAPI client.
// The upstream free tier exhausts keys quickly, so the client rotates
// through all configured keys on failure before giving up.
type CricketConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKeys []string      `koanf:"api_keys"`
	Timeout time.Duration `koanf:"timeout"`
	// PageSize is the number of items CricAPI returns per offset page.
	PageSize int `koanf:"page_size"`
	// MaxPages caps paginated aggregation against a misbehaving endpoint.
	MaxPages int `koanf:"max_pages"`
}

// FootballConfig configures the football-data.org client.
type FootballConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
	// MinRequestGap is the enforced minimum time between upstream calls.
	MinRequestGap time.Duration `koanf:"min_request_gap"`
	// Competitions are the competition codes aggregated for the home feed.
	Competitions []string `koanf:"competitions"`

	// Cache TTLs per data class.
	MatchesCacheTTL time.Duration `koanf:"matches_cache_ttl"`
	StatsCacheTTL   time.Duration `koanf:"stats_cache_ttl"`
	TeamsCacheTTL   time.Duration `koanf:"teams_cache_ttl"`
}

// BooksConfig configures the Google Books volumes client.
type BooksConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// WikiConfig configures the Wikipedia page-image client.
type WikiConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
	// ThumbSize is the requested thumbnail pixel size.
	ThumbSize int `koanf:"thumb_size"`
}

// LikesConfig configures the BadgerDB-backed likes store.
type LikesConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// NewsCacheConfig configures the local JSON article cache.
type NewsCacheConfig struct {
	// Path is the articles cache file.
	Path string `koanf:"path"`
	// FlagsPath is the cricket country-flags cache file.
	FlagsPath string `koanf:"flags_path"`
}

// RecommendConfig configures the recommendation scorers.
type RecommendConfig struct {
	// MaxLikedDetails bounds how many liked movies are expanded to full
	// details per request.
	MaxLikedDetails int `koanf:"max_liked_details"`
	// TopMovieGenres is how many genres the movie scorer queries.
	TopMovieGenres int `koanf:"top_movie_genres"`
	// TopMusicTags is how many tags the music scorer queries.
	TopMusicTags int `koanf:"top_music_tags"`
	// MinRating is the quality floor for movie recommendations.
	MinRating float64 `koanf:"min_rating"`
	// ResultSize is the final truncation size for both scorers.
	ResultSize int `koanf:"result_size"`
	// FallbackResultSize is the truncation size for the movie fallback path.
	FallbackResultSize int `koanf:"fallback_result_size"`
	// ReleaseWindow is how far back the movie discover window reaches.
	ReleaseWindow time.Duration `koanf:"release_window"`
	// Languages restricts discover queries to these original languages.
	Languages []string `koanf:"languages"`
	// FallbackLanguages widen the language filter on the fallback path.
	FallbackLanguages []string `koanf:"fallback_languages"`
	// FallbackMusicGenres seed the music scorer when no likes exist.
	FallbackMusicGenres []string `koanf:"fallback_music_genres"`
}

// CarouselConfig configures the carousel synchronizer.
type CarouselConfig struct {
	// TickInterval is the auto-advance period.
	TickInterval time.Duration `koanf:"tick_interval"`
	// Cooldown is how long auto-advance stays suspended after a drag ends.
	Cooldown time.Duration `koanf:"cooldown"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// APIConfig holds API response limits.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
	// RateLimitReqs is requests allowed per RateLimitWindow per client IP.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration with layered sources and validates it.
func Load() (*Config, error) {
	return loadWithKoanf()
}
