// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

/*
Package recommend builds personalized movie and music recommendations
from a user's liked items.

Both scorers follow the same shape: expand likes into full records,
derive a taste profile (top genres for movies, top tags for music),
query the upstream catalog per profile entry, then deduplicate, rank,
and truncate. Profiles break count ties by first-discovered order, so
identical inputs always yield identical output.

Failure handling is deliberately soft. Any sub-step that fails logs
and degrades: a movie whose details cannot be fetched is skipped, a
genre whose discover page errors contributes nothing, and a user with
no usable likes gets the fixed fallback feed. The scorers return an
error only when even the fallback produced nothing.
*/
package recommend
