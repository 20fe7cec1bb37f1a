// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 20, cfg.Cricket.PageSize)
	assert.Equal(t, 20, cfg.Cricket.MaxPages)
	assert.Equal(t, 4, cfg.Recommend.TopMovieGenres)
	assert.Equal(t, 3, cfg.Recommend.TopMusicTags)
	assert.InDelta(t, 7.0, cfg.Recommend.MinRating, 0.001)
	assert.Equal(t, []string{"pop", "rock", "hip-hop", "electronic", "jazz"},
		cfg.Recommend.FallbackMusicGenres)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad base url", func(c *Config) { c.TMDB.BaseURL = "not-a-url" }},
		{"ftp scheme", func(c *Config) { c.GNews.BaseURL = "ftp://gnews.io" }},
		{"too many cricket keys", func(c *Config) {
			c.Cricket.APIKeys = []string{"a", "b", "c", "d", "e"}
		}},
		{"zero page size", func(c *Config) { c.Cricket.PageSize = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"rating out of range", func(c *Config) { c.Recommend.MinRating = 11 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"zero cooldown", func(c *Config) { c.Carousel.Cooldown = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"TMDB_API_KEY", "tmdb.api_key"},
		{"GNEWS_TOKEN", "gnews.token"},
		{"CRICKET_API_KEYS", "cricket.api_keys"},
		{"NEWS_CACHE_PATH", "news_cache.path"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""}, // unrelated env vars are dropped
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envTransformFunc(tt.env), tt.env)
	}
}

func TestProcessSliceFieldsSplitsCommaSeparated(t *testing.T) {
	t.Setenv("CRICKET_API_KEYS", "key-one, key-two ,key-three")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.Cricket.APIKeys)
}
