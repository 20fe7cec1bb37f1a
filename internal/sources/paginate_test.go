// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"errors"
	"testing"
)

func TestFetchAllPagesStopsOnShortPage(t *testing.T) {
	pages := [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7}, // short page ends pagination
		{8, 9, 10},
	}

	var fetched int
	all, err := FetchAllPages(context.Background(), 3, 20, func(_ context.Context, page int) ([]int, error) {
		fetched++
		return pages[page], nil
	})
	if err != nil {
		t.Fatalf("FetchAllPages failed: %v", err)
	}
	if fetched != 3 {
		t.Errorf("expected 3 pages fetched, got %d", fetched)
	}
	if len(all) != 7 {
		t.Errorf("expected 7 items, got %d", len(all))
	}
}

func TestFetchAllPagesHonorsMaxPages(t *testing.T) {
	var fetched int
	all, err := FetchAllPages(context.Background(), 2, 3, func(_ context.Context, _ int) ([]int, error) {
		fetched++
		return []int{1, 2}, nil
	})
	if err != nil {
		t.Fatalf("FetchAllPages failed: %v", err)
	}
	if fetched != 3 {
		t.Errorf("expected 3 pages fetched, got %d", fetched)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 items, got %d", len(all))
	}
}

func TestFetchAllPagesClampsMaxPages(t *testing.T) {
	var fetched int
	_, err := FetchAllPages(context.Background(), 1, 500, func(_ context.Context, _ int) ([]int, error) {
		fetched++
		return []int{1}, nil
	})
	if err != nil {
		t.Fatalf("FetchAllPages failed: %v", err)
	}
	if fetched != maxPaginationPages {
		t.Errorf("expected clamp to %d pages, got %d", maxPaginationPages, fetched)
	}
}

func TestFetchAllPagesPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	partial, err := FetchAllPages(context.Background(), 2, 20, func(_ context.Context, page int) ([]int, error) {
		if page == 1 {
			return nil, boom
		}
		return []int{1, 2}, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if len(partial) != 2 {
		t.Errorf("expected partial results preserved, got %d items", len(partial))
	}
}

func TestFetchAllPagesStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var fetched int
	_, err := FetchAllPages(ctx, 1, 20, func(_ context.Context, _ int) ([]int, error) {
		fetched++
		cancel()
		return []int{1}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if fetched != 1 {
		t.Errorf("expected 1 page before cancellation, got %d", fetched)
	}
}

func TestFetchAllPagesRejectsBadPageSize(t *testing.T) {
	_, err := FetchAllPages(context.Background(), 0, 20, func(_ context.Context, _ int) ([]int, error) {
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected error for zero page size")
	}
}
