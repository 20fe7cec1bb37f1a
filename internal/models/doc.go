// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package models defines the shared domain types exchanged between the
// upstream source clients, the aggregation services, and the HTTP API.
//
// Types in this package mirror the JSON shapes of the upstream providers
// (TMDB, RAWG, Last.fm, GNews, CricAPI, football-data.org, Google Books,
// Wikipedia) closely enough to unmarshal their responses directly, with
// provider quirks (string-typed numbers, "#text" image keys) handled via
// struct tags and small helper methods rather than custom decoders.
package models
