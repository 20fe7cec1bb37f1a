// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides consistent structure for both successful and
// error responses, with metadata for observability and caching.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"results": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-29T12:00:00Z",
//	    "query_time_ms": 45,
//	    "cached": false
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability. QueryTimeMS
// covers the full upstream fetch and aggregation time; cached responses
// report 0 with Cached set.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - UPSTREAM_ERROR: An external source failed and no fallback applied
//   - NOT_FOUND: Resource doesn't exist
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LikeEntry is one liked item flag inside a user's per-category likes
// document.
type LikeEntry struct {
	ItemID string `json:"item_id"`
	Liked  bool   `json:"liked"`
}

// LikesDocument is a user's full likes map for one category
// (movies, music, games, books, teams, players).
type LikesDocument struct {
	UserID   string          `json:"user_id"`
	Category string          `json:"category"`
	Items    map[string]bool `json:"items"`
	Updated  time.Time       `json:"updated"`
}
