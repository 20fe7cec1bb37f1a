// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"fmt"
)

// maxPaginationPages is the hard ceiling on pages fetched per
// aggregation, protecting against upstreams that never return a short
// page.
const maxPaginationPages = 20

// PageFetcher returns one page of results. Pages are zero-indexed; the
// fetcher translates the index to whatever the upstream expects
// (offset, page number).
type PageFetcher[T any] func(ctx context.Context, page int) ([]T, error)

// FetchAllPages drains a paginated endpoint. It stops when a page comes
// back shorter than pageSize, when maxPages pages have been fetched, or
// when the context is cancelled. maxPages values outside (0, 20] are
// clamped to the package ceiling.
func FetchAllPages[T any](ctx context.Context, pageSize, maxPages int, fetch PageFetcher[T]) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	if maxPages <= 0 || maxPages > maxPaginationPages {
		maxPages = maxPaginationPages
	}

	var all []T
	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		items, err := fetch(ctx, page)
		if err != nil {
			return all, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, items...)

		// A short page means the upstream has no more data.
		if len(items) < pageSize {
			break
		}
	}

	return all, nil
}
