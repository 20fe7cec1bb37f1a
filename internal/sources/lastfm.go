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
	"github.com/medleyhq/medley/internal/models"
)

// LastfmClient talks to the Last.fm (audioscrobbler) 2.0 API. All
// requests are method-dispatched GET calls with format=json.
type LastfmClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *breaker
}

// NewLastfmClient creates a Last.fm client from configuration.
func NewLastfmClient(cfg *config.LastfmConfig) *LastfmClient {
	return &LastfmClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
		breaker:    newBreaker("lastfm"),
	}
}

func (c *LastfmClient) get(ctx context.Context, method string, params url.Values, result any) error {
	query := url.Values{}
	query.Set("method", method)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	reqURL := c.baseURL + "/?" + query.Encode()
	return c.breaker.execute(func() error {
		return fetchJSON(ctx, c.httpClient, reqURL, "lastfm", method, requestOptions{}, result)
	})
}

// AlbumInfo fetches album.getinfo for one album, including tags and
// listener count.
func (c *LastfmClient) AlbumInfo(ctx context.Context, album, artist string) (*models.Album, error) {
	params := url.Values{}
	params.Set("album", album)
	params.Set("artist", artist)

	var resp struct {
		Album *models.Album `json:"album"`
	}
	if err := c.get(ctx, "album.getinfo", params, &resp); err != nil {
		return nil, err
	}
	if resp.Album == nil {
		return nil, fmt.Errorf("lastfm: album %q by %q not found", album, artist)
	}
	return resp.Album, nil
}

// TagTopAlbums fetches the most popular albums for a tag.
func (c *LastfmClient) TagTopAlbums(ctx context.Context, tag string, limit int) ([]models.Album, error) {
	params := url.Values{}
	params.Set("tag", tag)
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	var resp struct {
		Albums struct {
			Album []models.Album `json:"album"`
		} `json:"albums"`
	}
	if err := c.get(ctx, "tag.gettopalbums", params, &resp); err != nil {
		return nil, err
	}
	return resp.Albums.Album, nil
}

// TagTopArtists fetches the most popular artists for a tag.
func (c *LastfmClient) TagTopArtists(ctx context.Context, tag string, limit int) ([]models.Artist, error) {
	params := url.Values{}
	params.Set("tag", tag)
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	var resp struct {
		TopArtists struct {
			Artist []models.Artist `json:"artist"`
		} `json:"topartists"`
	}
	if err := c.get(ctx, "tag.gettopartists", params, &resp); err != nil {
		return nil, err
	}
	return resp.TopArtists.Artist, nil
}

// TagTopTracks fetches the most popular tracks for a tag.
func (c *LastfmClient) TagTopTracks(ctx context.Context, tag string, limit int) ([]models.Track, error) {
	params := url.Values{}
	params.Set("tag", tag)
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	var resp struct {
		Tracks struct {
			Track []models.Track `json:"track"`
		} `json:"tracks"`
	}
	if err := c.get(ctx, "tag.gettoptracks", params, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks.Track, nil
}

// SearchTracks runs a track title search.
func (c *LastfmClient) SearchTracks(ctx context.Context, query string) ([]models.Track, error) {
	params := url.Values{}
	params.Set("track", query)

	var resp struct {
		Results struct {
			TrackMatches struct {
				Track []models.Track `json:"track"`
			} `json:"trackmatches"`
		} `json:"results"`
	}
	if err := c.get(ctx, "track.search", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results.TrackMatches.Track, nil
}

// ArtistInfo fetches artist.getinfo for one artist.
func (c *LastfmClient) ArtistInfo(ctx context.Context, artist string) (*models.Artist, error) {
	params := url.Values{}
	params.Set("artist", artist)

	var resp struct {
		Artist *models.Artist `json:"artist"`
	}
	if err := c.get(ctx, "artist.getinfo", params, &resp); err != nil {
		return nil, err
	}
	if resp.Artist == nil {
		return nil, fmt.Errorf("lastfm: artist %q not found", artist)
	}
	return resp.Artist, nil
}
