// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/models"
)

// WikipediaClient resolves page thumbnails through the MediaWiki
// action API. It backfills artwork for entities whose upstream has no
// images (music artists, football players).
type WikipediaClient struct {
	baseURL    string
	thumbSize  int
	httpClient *http.Client
}

// NewWikipediaClient creates a Wikipedia client from configuration.
func NewWikipediaClient(cfg *config.WikiConfig) *WikipediaClient {
	thumbSize := cfg.ThumbSize
	if thumbSize <= 0 {
		thumbSize = 500
	}
	return &WikipediaClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		thumbSize:  thumbSize,
		httpClient: newHTTPClient(cfg.Timeout),
	}
}

// PageImage returns the thumbnail URL for the page matching title, or
// an empty string when no page or thumbnail exists. Lookup failures
// are logged and swallowed because images here are always decorative.
func (c *WikipediaClient) PageImage(ctx context.Context, title string) string {
	query := url.Values{}
	query.Set("action", "query")
	query.Set("format", "json")
	query.Set("titles", title)
	query.Set("prop", "pageimages")
	query.Set("pithumbsize", fmt.Sprintf("%d", c.thumbSize))
	query.Set("origin", "*")

	reqURL := c.baseURL + "?" + query.Encode()
	var resp models.WikiQueryResponse
	if err := fetchJSON(ctx, c.httpClient, reqURL, "wikipedia", "page_image", requestOptions{}, &resp); err != nil {
		logging.Debug().Str("title", title).Err(err).Msg("Wikipedia image lookup failed")
		return ""
	}

	for _, page := range resp.Query.Pages {
		if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			return page.Thumbnail.Source
		}
	}
	return ""
}
