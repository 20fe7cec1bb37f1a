// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/medleyhq/medley/internal/config"
)

func newFootballTestClient(serverURL string, gap time.Duration) *FootballClient {
	return NewFootballClient(&config.FootballConfig{
		BaseURL:       serverURL,
		APIKey:        "test-token",
		MinRequestGap: gap,
	})
}

func TestFootballStandings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions/PL/standings" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Auth-Token") != "test-token" {
			t.Errorf("missing auth token header")
		}
		w.Write([]byte(`{"competition":{"id":2021,"code":"PL","name":"Premier League"},"standings":[{"type":"TOTAL","table":[{"position":1,"team":{"id":57,"name":"Arsenal"},"points":42}]}]}`))
	}))
	defer server.Close()

	client := newFootballTestClient(server.URL, time.Millisecond)
	standings, err := client.Standings(context.Background(), "PL")
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if standings.Competition.Code != "PL" {
		t.Errorf("unexpected competition: %+v", standings.Competition)
	}
	if len(standings.Standings) != 1 || standings.Standings[0].Table[0].Team.Name != "Arsenal" {
		t.Errorf("unexpected standings: %+v", standings.Standings)
	}
}

func TestFootballCollapsesConcurrentIdenticalRequests(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(`{"matches":[{"id":1,"utcDate":"2026-09-01T15:00:00Z","status":"TIMED"}]}`))
	}))
	defer server.Close()

	client := newFootballTestClient(server.URL, time.Millisecond)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matches, err := client.CompetitionMatches(context.Background(), "PL")
			if err != nil {
				t.Errorf("CompetitionMatches failed: %v", err)
				return
			}
			if len(matches) != 1 {
				t.Errorf("expected 1 match, got %d", len(matches))
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call for %d concurrent requests, got %d", workers, calls.Load())
	}
}

func TestFootballEnforcesRequestGap(t *testing.T) {
	var timestamps []time.Time
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		timestamps = append(timestamps, time.Now())
		mu.Unlock()
		w.Write([]byte(`{"matches":[]}`))
	}))
	defer server.Close()

	gap := 80 * time.Millisecond
	client := newFootballTestClient(server.URL, gap)

	// Distinct paths so singleflight does not collapse them.
	for _, comp := range []string{"PL", "PD", "SA"} {
		if _, err := client.CompetitionMatches(context.Background(), comp); err != nil {
			t.Fatalf("CompetitionMatches(%s) failed: %v", comp, err)
		}
	}

	if len(timestamps) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(timestamps))
	}
	for i := 1; i < len(timestamps); i++ {
		if delta := timestamps[i].Sub(timestamps[i-1]); delta < gap-10*time.Millisecond {
			t.Errorf("calls %d and %d only %v apart, want ~%v", i-1, i, delta, gap)
		}
	}
}
