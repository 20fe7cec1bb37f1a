// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

// Book is a Google Books volume.
type Book struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo carries the descriptive fields of a Google Books volume.
type VolumeInfo struct {
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle,omitempty"`
	Authors       []string   `json:"authors"`
	Publisher     string     `json:"publisher,omitempty"`
	PublishedDate string     `json:"publishedDate"`
	Description   string     `json:"description,omitempty"`
	Categories    []string   `json:"categories,omitempty"`
	AverageRating float64    `json:"averageRating,omitempty"`
	RatingsCount  int        `json:"ratingsCount,omitempty"`
	PageCount     int        `json:"pageCount,omitempty"`
	Language      string     `json:"language,omitempty"`
	ImageLinks    ImageLinks `json:"imageLinks"`
	PreviewLink   string     `json:"previewLink,omitempty"`
	InfoLink      string     `json:"infoLink,omitempty"`
}

// ImageLinks holds the cover thumbnails Google Books returns.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

// BookListResponse is the Google Books volume search envelope.
type BookListResponse struct {
	TotalItems int    `json:"totalItems"`
	Items      []Book `json:"items"`
}
