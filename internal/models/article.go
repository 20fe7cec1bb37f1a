// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// Article is a news article from GNews, scoped to the fields the
// store persists. Tags are assigned locally by topic and keyword and
// never come from the upstream payload.
type Article struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content,omitempty"`
	URL         string     `json:"url"`
	Image       string     `json:"image"`
	PublishedAt string     `json:"publishedAt"`
	Source      NewsSource `json:"source"`
	Tags        []string   `json:"tags,omitempty"`
}

// NewsSource identifies the publisher of an article.
type NewsSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ArticleListResponse is the GNews search/top-headlines envelope.
type ArticleListResponse struct {
	TotalArticles int       `json:"totalArticles"`
	Articles      []Article `json:"articles"`
}
