// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/medley/config.yaml",
	"/etc/medley/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all sensible defaults. These are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL: "https://api.themoviedb.org/3",
			Timeout: 30 * time.Second,
		},
		RAWG: RAWGConfig{
			BaseURL: "https://api.rawg.io/api",
			Timeout: 30 * time.Second,
		},
		Lastfm: LastfmConfig{
			BaseURL: "https://ws.audioscrobbler.com/2.0/",
			Timeout: 30 * time.Second,
		},
		GNews: GNewsConfig{
			BaseURL:         "https://gnews.io/api/v4",
			Timeout:         30 * time.Second,
			MaxArticles:     100,
			RefreshInterval: 30 * time.Minute,
		},
		Cricket: CricketConfig{
			BaseURL:  "https://api.cricapi.com/v1",
			Timeout:  30 * time.Second,
			PageSize: 20,
			MaxPages: 20,
		},
		Football: FootballConfig{
			BaseURL:       "https://api.football-data.org/v4",
			Timeout:       30 * time.Second,
			MinRequestGap: 200 * time.Millisecond,
			// Premier League, La Liga, Serie A, Bundesliga, Ligue 1, UCL
			Competitions:    []string{"PL", "PD", "SA", "BL1", "FL1", "CL"},
			MatchesCacheTTL: 5 * time.Minute,
			StatsCacheTTL:   10 * time.Minute,
			TeamsCacheTTL:   30 * time.Minute,
		},
		Books: BooksConfig{
			BaseURL: "https://www.googleapis.com/books/v1",
			Timeout: 30 * time.Second,
		},
		Wiki: WikiConfig{
			BaseURL:   "https://en.wikipedia.org/w/api.php",
			Timeout:   15 * time.Second,
			ThumbSize: 500,
		},
		Likes: LikesConfig{
			Path: "/data/medley/likes",
		},
		NewsCache: NewsCacheConfig{
			Path:      "/data/medley/news.json",
			FlagsPath: "/data/medley/cricket_flags.json",
		},
		Recommend: RecommendConfig{
			MaxLikedDetails:     50,
			TopMovieGenres:      4,
			TopMusicTags:        3,
			MinRating:           7.0,
			ResultSize:          20,
			FallbackResultSize:  30,
			ReleaseWindow:       61 * 24 * time.Hour, // roughly two months
			Languages:           []string{"bn", "en", "ja"},
			FallbackLanguages:   []string{"bn", "en", "kr", "ja"},
			FallbackMusicGenres: []string{"pop", "rock", "hip-hop", "electronic", "jazz"},
		},
		Carousel: CarouselConfig{
			TickInterval: 2 * time.Second,
			Cooldown:     2 * time.Second,
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8460,
			Timeout: 30 * time.Second,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// loadWithKoanf loads configuration using Koanf v2 with layered sources:
// defaults, then optional config file, then environment variables.
func loadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TMDB_API_KEY -> tmdb.api_key, GNEWS_TOKEN -> gnews.token, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices when
// they arrive as env var strings.
var sliceConfigPaths = []string{
	"cricket.api_keys",
	"football.competitions",
	"recommend.languages",
	"recommend.fallback_languages",
	"recommend.fallback_music_genres",
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars come in as strings, the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		// Already a slice (from YAML or defaults).
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
//
// Examples:
//   - TMDB_API_KEY        -> tmdb.api_key
//   - GNEWS_TOKEN         -> gnews.token
//   - CRICKET_API_KEYS    -> cricket.api_keys
//   - NEWS_CACHE_PATH     -> news_cache.path
//   - HTTP_PORT           -> server.port
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		"tmdb_api_key":          "tmdb.api_key",
		"tmdb_base_url":         "tmdb.base_url",
		"rawg_api_key":          "rawg.api_key",
		"rawg_base_url":         "rawg.base_url",
		"lastfm_api_key":        "lastfm.api_key",
		"lastfm_base_url":       "lastfm.base_url",
		"gnews_token":           "gnews.token",
		"gnews_base_url":        "gnews.base_url",
		"gnews_max_articles":    "gnews.max_articles",
		"news_refresh_interval": "gnews.refresh_interval",
		"cricket_api_keys":      "cricket.api_keys",
		"cricket_base_url":      "cricket.base_url",
		"football_api_key":      "football.api_key",
		"football_base_url":     "football.base_url",
		"football_competitions": "football.competitions",
		"books_api_key":         "books.api_key",
		"books_base_url":        "books.base_url",
		"likes_path":            "likes.path",
		"likes_in_memory":       "likes.in_memory",
		"news_cache_path":       "news_cache.path",
		"cricket_flags_path":    "news_cache.flags_path",
		"http_host":             "server.host",
		"http_port":             "server.port",
		"http_timeout":          "server.timeout",
		"rate_limit_reqs":       "api.rate_limit_reqs",
		"rate_limit_window":     "api.rate_limit_window",
		"cors_origins":          "api.cors_origins",
		"log_level":             "logging.level",
		"log_format":            "logging.format",
		"log_caller":            "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// Unknown vars are dropped rather than guessed into a nested path.
	return ""
}
