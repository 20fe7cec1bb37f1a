// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// WikiQueryResponse is the MediaWiki action API envelope for a
// pageimages query. Pages is keyed by page ID, with "-1" marking a
// missing page.
type WikiQueryResponse struct {
	Query struct {
		Pages map[string]WikiPage `json:"pages"`
	} `json:"query"`
}

// WikiPage is one page entry from a pageimages query.
type WikiPage struct {
	PageID    int            `json:"pageid"`
	Title     string         `json:"title"`
	Thumbnail *WikiThumbnail `json:"thumbnail,omitempty"`
}

// WikiThumbnail is the resolved thumbnail for a page.
type WikiThumbnail struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
