// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medleyhq/medley/internal/config"
)

func newCricketTestClient(serverURL string, keys []string) *CricketClient {
	return NewCricketClient(&config.CricketConfig{
		BaseURL:  serverURL,
		APIKeys:  keys,
		PageSize: 20,
		MaxPages: 20,
	})
}

func TestCricketRotatesKeysOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First key is exhausted; second key works.
		if r.URL.Query().Get("apikey") == "key-dead" {
			w.Write([]byte(`{"status":"failure","data":null}`))
			return
		}
		w.Write([]byte(`{"status":"success","data":[{"id":"m1","name":"IND vs AUS"}]}`))
	}))
	defer server.Close()

	client := newCricketTestClient(server.URL, []string{"key-dead", "key-live"})

	matches, err := client.CurrentMatches(context.Background())
	if err != nil {
		t.Fatalf("CurrentMatches failed: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "m1" {
		t.Errorf("unexpected matches: %+v", matches)
	}

	// Rotation is sticky: the next call starts on the live key.
	if key, _ := client.currentKey(); key != "key-live" {
		t.Errorf("expected rotation to key-live, got %q", key)
	}
}

func TestCricketFailsWhenAllKeysExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failure","data":null}`))
	}))
	defer server.Close()

	client := newCricketTestClient(server.URL, []string{"k1", "k2", "k3"})

	_, err := client.CurrentMatches(context.Background())
	if err == nil {
		t.Fatal("expected error when all keys fail")
	}
	if !strings.Contains(err.Error(), "all 3 keys failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCricketCapsKeyPool(t *testing.T) {
	keys := []string{"k1", "k2", "k3", "k4", "k5", "k6"}
	client := newCricketTestClient("http://127.0.0.1:0", keys)
	if len(client.keys) != maxCricketKeys {
		t.Errorf("expected key pool capped at %d, got %d", maxCricketKeys, len(client.keys))
	}
}

func TestCricketRequiresKeys(t *testing.T) {
	client := newCricketTestClient("http://127.0.0.1:0", nil)
	_, err := client.CurrentMatches(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no API keys") {
		t.Errorf("expected missing-keys error, got %v", err)
	}
}

func TestCricketAllMatchesPaginatesByOffset(t *testing.T) {
	var offsets []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)
		if offset == "0" {
			// Full page: 20 matches
			var b strings.Builder
			b.WriteString(`{"status":"success","data":[`)
			for i := 0; i < 20; i++ {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(`{"id":"a`)
				b.WriteString(string(rune('a' + i)))
				b.WriteString(`"}`)
			}
			b.WriteString(`]}`)
			w.Write([]byte(b.String()))
			return
		}
		// Short page ends pagination.
		w.Write([]byte(`{"status":"success","data":[{"id":"last"}]}`))
	}))
	defer server.Close()

	client := newCricketTestClient(server.URL, []string{"k1"})

	matches, err := client.AllMatches(context.Background())
	if err != nil {
		t.Fatalf("AllMatches failed: %v", err)
	}
	if len(matches) != 21 {
		t.Errorf("expected 21 matches, got %d", len(matches))
	}
	if len(offsets) != 2 || offsets[0] != "0" || offsets[1] != "20" {
		t.Errorf("unexpected offsets: %v", offsets)
	}
}
