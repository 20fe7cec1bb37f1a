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
	"time"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/models"
)

// booksMaxResults matches the shelf sizes the catalog exposes.
const booksMaxResults = 20

// BooksClient talks to the Google Books volumes API.
type BooksClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewBooksClient creates a Google Books client from configuration.
func NewBooksClient(cfg *config.BooksConfig) *BooksClient {
	return &BooksClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
	}
}

func (c *BooksClient) volumesQuery(ctx context.Context, operation, searchQuery string) ([]models.Book, error) {
	query := url.Values{}
	query.Set("q", searchQuery)
	query.Set("key", c.apiKey)
	query.Set("maxResults", fmt.Sprintf("%d", booksMaxResults))

	reqURL := c.baseURL + "/volumes?" + query.Encode()
	var resp models.BookListResponse
	if err := fetchJSON(ctx, c.httpClient, reqURL, "books", operation, requestOptions{}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// NewReleases returns volumes published in the current year.
func (c *BooksClient) NewReleases(ctx context.Context) ([]models.Book, error) {
	year := time.Now().UTC().Year()
	return c.volumesQuery(ctx, "new_releases", fmt.Sprintf("publishedDate:%d", year))
}

// BestSellers returns volumes in the bestseller subject.
func (c *BooksClient) BestSellers(ctx context.Context) ([]models.Book, error) {
	return c.volumesQuery(ctx, "best_sellers", "subject:bestseller")
}

// Trending returns volumes in the popular subject.
func (c *BooksClient) Trending(ctx context.Context) ([]models.Book, error) {
	return c.volumesQuery(ctx, "trending", "subject:popular")
}

// Search runs a free-text volume search.
func (c *BooksClient) Search(ctx context.Context, query string) ([]models.Book, error) {
	return c.volumesQuery(ctx, "search", query)
}

// BookDetails fetches a single volume by ID.
func (c *BooksClient) BookDetails(ctx context.Context, id string) (*models.Book, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)

	reqURL := c.baseURL + "/volumes/" + url.PathEscape(id) + "?" + query.Encode()
	var book models.Book
	if err := fetchJSON(ctx, c.httpClient, reqURL, "books", "details", requestOptions{}, &book); err != nil {
		return nil, err
	}
	return &book, nil
}
