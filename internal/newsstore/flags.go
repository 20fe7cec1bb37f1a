// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package newsstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/medleyhq/medley/internal/models"
)

// FlagStore caches cricket country flag images in a local JSON file.
// The country list changes rarely, so one successful fetch serves
// until the file is deleted.
type FlagStore struct {
	mu   sync.Mutex
	path string
}

// NewFlagStore creates a flag store writing to path.
func NewFlagStore(path string) *FlagStore {
	return &FlagStore{path: path}
}

// Load reads the cached country flags. A missing file returns nil.
func (s *FlagStore) Load() ([]models.CricketCountry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read flags cache: %w", err)
	}

	var countries []models.CricketCountry
	if err := json.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("decode flags cache: %w", err)
	}
	return countries, nil
}

// Save atomically replaces the cache with countries.
func (s *FlagStore) Save(countries []models.CricketCountry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(countries)
	if err != nil {
		return fmt.Errorf("encode flags cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create flags cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".flags-*.json")
	if err != nil {
		return fmt.Errorf("create temp flags cache: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp flags cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp flags cache: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace flags cache: %w", err)
	}
	return nil
}
