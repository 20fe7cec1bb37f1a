// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

import "strconv"

// ImageVariant is a Last.fm image entry. The URL arrives under the
// JSON key "#text" with a size label alongside it.
type ImageVariant struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

// ImageList is the ordered image slice Last.fm attaches to albums,
// artists, and tracks.
type ImageList []ImageVariant

// BySize returns the URL for the named size, falling back to the
// largest available variant when the size is absent.
func (l ImageList) BySize(size string) string {
	for _, img := range l {
		if img.Size == size && img.URL != "" {
			return img.URL
		}
	}
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].URL != "" {
			return l[i].URL
		}
	}
	return ""
}

// Album is a Last.fm album. Artist may arrive either as a bare string
// (album.getinfo) or as an object (tag.gettopalbums); AlbumArtist
// handles both via its custom unmarshal.
type Album struct {
	Name      string      `json:"name"`
	Artist    AlbumArtist `json:"artist"`
	URL       string      `json:"url"`
	Images    ImageList   `json:"image"`
	Listeners string      `json:"listeners,omitempty"`
	Playcount string      `json:"playcount,omitempty"`
	Tags      TagList     `json:"tags,omitempty"`
}

// ListenerCount parses the string-typed listener count, returning 1
// when the field is missing or malformed so weight accumulation never
// zeroes out an album.
func (a Album) ListenerCount() int {
	n, err := strconv.Atoi(a.Listeners)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Key returns the dedup identity for an album, "name|artist".
func (a Album) Key() string {
	return a.Name + "|" + a.Artist.Name
}

// AlbumArtist absorbs Last.fm's two artist encodings.
type AlbumArtist struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// UnmarshalJSON accepts either a JSON string or an artist object.
func (a *AlbumArtist) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := jsonUnmarshal(data, &s); err != nil {
			return err
		}
		a.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := jsonUnmarshal(data, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	a.URL = obj.URL
	return nil
}

// Tag is a Last.fm tag attached to an album or artist.
type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// TagList is the {"tag": [...]} wrapper Last.fm uses for tag arrays.
// A single tag may arrive as a bare object rather than an array.
type TagList struct {
	Tags []Tag `json:"tag"`
}

// UnmarshalJSON tolerates Last.fm returning "" for empty tag sets and
// a bare object for single-tag sets.
func (t *TagList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		t.Tags = nil
		return nil
	}
	var wrapper struct {
		Tag []Tag `json:"tag"`
	}
	if err := jsonUnmarshal(data, &wrapper); err == nil {
		t.Tags = wrapper.Tag
		return nil
	}
	var single struct {
		Tag Tag `json:"tag"`
	}
	if err := jsonUnmarshal(data, &single); err != nil {
		return err
	}
	t.Tags = []Tag{single.Tag}
	return nil
}

// Artist is a Last.fm artist from chart or search endpoints.
type Artist struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Images    ImageList `json:"image"`
	Listeners string    `json:"listeners,omitempty"`
	Playcount string    `json:"playcount,omitempty"`
}

// Track is a Last.fm track from chart endpoints.
type Track struct {
	Name      string      `json:"name"`
	Artist    AlbumArtist `json:"artist"`
	URL       string      `json:"url"`
	Images    ImageList   `json:"image"`
	Listeners string      `json:"listeners,omitempty"`
	Playcount string      `json:"playcount,omitempty"`
}
