// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package likes persists per-user liked-item flags in BadgerDB.
//
// Each user and category pair maps to one document keyed
// "likes:<user>:<category>" holding an item-id to bool map. Writes
// merge into the existing document so toggling one item never drops
// the rest, matching how clients send single-item updates.
package likes

import (
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/config"
	"github.com/medleyhq/medley/internal/logging"
	"github.com/medleyhq/medley/internal/models"
)

const keyPrefix = "likes:"

// Categories the store accepts. Unknown categories are rejected at the
// API boundary, not here; the store only namespaces by them.
const (
	CategoryMovies       = "movies"
	CategoryTVSeries     = "tvseries"
	CategoryGames        = "games"
	CategoryBooks        = "books"
	CategoryMusicArtists = "musicArtists"
	CategoryMusicAlbums  = "musicAlbums"
	CategoryMusicTracks  = "musicTracks"
	CategoryTeams        = "teams"
	CategoryPlayers      = "players"
)

// Store is a BadgerDB-backed likes store. Safe for concurrent use;
// Badger transactions provide the isolation.
type Store struct {
	db *badger.DB
}

// Open opens the likes database at the configured path. InMemory mode
// backs tests and ephemeral deployments.
func Open(cfg *config.LikesConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Likes store opened")
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func docKey(userID, category string) []byte {
	return []byte(keyPrefix + userID + ":" + category)
}

// Get returns the likes document for a user and category. A missing
// document comes back empty rather than as an error.
func (s *Store) Get(userID, category string) (*models.LikesDocument, error) {
	doc := &models.LikesDocument{
		UserID:   userID,
		Category: category,
		Items:    map[string]bool{},
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(userID, category))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, doc)
		})
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return doc, nil
		}
		return nil, fmt.Errorf("read likes document: %w", err)
	}

	if doc.Items == nil {
		doc.Items = map[string]bool{}
	}
	return doc, nil
}

// SetItems merges item flags into a user's likes document. Existing
// flags not named in items are preserved.
func (s *Store) SetItems(userID, category string, items map[string]bool) (*models.LikesDocument, error) {
	if len(items) == 0 {
		return s.Get(userID, category)
	}

	var merged *models.LikesDocument
	err := s.db.Update(func(txn *badger.Txn) error {
		doc := &models.LikesDocument{
			UserID:   userID,
			Category: category,
			Items:    map[string]bool{},
		}

		item, err := txn.Get(docKey(userID, category))
		if err == nil {
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, doc)
			}); err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if doc.Items == nil {
			doc.Items = map[string]bool{}
		}

		for id, liked := range items {
			doc.Items[id] = liked
		}
		doc.Updated = time.Now().UTC()

		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		merged = doc
		return txn.Set(docKey(userID, category), data)
	})
	if err != nil {
		return nil, fmt.Errorf("write likes document: %w", err)
	}
	return merged, nil
}

// LikedIDs returns the item IDs currently flagged true. Order is not
// guaranteed; callers needing a stable order must sort.
func (s *Store) LikedIDs(userID, category string) ([]string, error) {
	doc, err := s.Get(userID, category)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(doc.Items))
	for id, liked := range doc.Items {
		if liked {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
