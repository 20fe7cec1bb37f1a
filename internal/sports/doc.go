// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package sports aggregates cricket and football data on top of the
// upstream clients. Both services cache aggressively: the upstream
// free tiers are tightly rate limited, so list endpoints are fetched
// once per TTL and all filtering happens against the cached snapshot.
package sports
