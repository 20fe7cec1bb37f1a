// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package catalog exposes the browseable content lists: movie, game,
// book, and music shelves plus per-item details. It is a thin layer
// over the source clients that adds short-lived list caching so
// repeated browsing does not burn upstream quota.
package catalog
