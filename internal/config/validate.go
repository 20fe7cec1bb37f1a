// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that the loaded configuration is internally consistent.
// Missing API keys are allowed: the matching source simply degrades at call
// time, matching the fail-soft policy everywhere else. Malformed URLs and
// out-of-range values fail fast here.
func (c *Config) Validate() error {
	for name, base := range map[string]string{
		"tmdb":     c.TMDB.BaseURL,
		"rawg":     c.RAWG.BaseURL,
		"lastfm":   c.Lastfm.BaseURL,
		"gnews":    c.GNews.BaseURL,
		"cricket":  c.Cricket.BaseURL,
		"football": c.Football.BaseURL,
		"books":    c.Books.BaseURL,
		"wiki":     c.Wiki.BaseURL,
	} {
		if err := validateBaseURL(name, base); err != nil {
			return err
		}
	}

	if len(c.Cricket.APIKeys) > 4 {
		return fmt.Errorf("cricket.api_keys: at most 4 keys are rotated, got %d", len(c.Cricket.APIKeys))
	}
	if c.Cricket.PageSize <= 0 {
		return fmt.Errorf("cricket.page_size must be positive, got %d", c.Cricket.PageSize)
	}
	if c.Cricket.MaxPages <= 0 {
		return fmt.Errorf("cricket.max_pages must be positive, got %d", c.Cricket.MaxPages)
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.API.DefaultPageSize <= 0 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size must be in [1, %d], got %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	if c.Carousel.TickInterval <= 0 {
		return fmt.Errorf("carousel.tick_interval must be positive")
	}
	if c.Carousel.Cooldown <= 0 {
		return fmt.Errorf("carousel.cooldown must be positive")
	}

	return c.validateLogging()
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxLikedDetails <= 0 {
		return fmt.Errorf("recommend.max_liked_details must be positive, got %d", r.MaxLikedDetails)
	}
	if r.TopMovieGenres <= 0 || r.TopMusicTags <= 0 {
		return fmt.Errorf("recommend top genre/tag counts must be positive")
	}
	if r.MinRating < 0 || r.MinRating > 10 {
		return fmt.Errorf("recommend.min_rating must be in [0, 10], got %g", r.MinRating)
	}
	if r.ResultSize <= 0 || r.FallbackResultSize <= 0 {
		return fmt.Errorf("recommend result sizes must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	return nil
}

func validateBaseURL(name, base string) error {
	if base == "" {
		return fmt.Errorf("%s.base_url is required", name)
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s.base_url %q is not a valid absolute URL", name, base)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s.base_url must use http or https, got %q", name, u.Scheme)
	}
	return nil
}
