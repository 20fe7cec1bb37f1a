// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

/*
Package sources contains the HTTP clients for every upstream content
provider Medley aggregates:

  - TMDB (movies and TV)
  - RAWG (games)
  - Last.fm (music)
  - GNews (news articles)
  - CricAPI (cricket)
  - football-data.org (football)
  - Google Books (books)
  - Wikipedia (page images)

All clients share a common request path (fetchJSON) with:

  - context propagation on every call
  - automatic retry with exponential backoff on HTTP 429
  - response body limits on error paths
  - Prometheus metrics per source and operation

Clients for sources on the recommendation hot path (TMDB, RAWG,
Last.fm) are additionally protected by a circuit breaker so a dead
upstream fails fast instead of holding request goroutines for the
full timeout.

Provider quirks handled here rather than by callers:

  - CricAPI returns HTTP 200 with a non-"success" status string on
    quota exhaustion; the client rotates through its configured API
    keys before reporting failure.
  - football-data.org enforces 10 requests/minute on the free tier;
    the client serializes calls through a rate limiter and collapses
    concurrent identical requests with singleflight.
  - GNews rate limits aggressively; its retry budget is smaller and
    bounded at three attempts.
*/
package sources
