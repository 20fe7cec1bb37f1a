// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

// Package carousel coordinates auto-advancing scroll regions so a
// shared timer never fights a user-initiated drag. The Synchronizer is
// an injected object owned by the composition root, not a process
// global: carousels register against it with an explicit lifecycle.
//
// Each carousel renders its item list three times; the visible index
// lives in the middle copy. When auto-advance walks past the end of
// the middle copy the index jumps back one copy without animation,
// which preserves the infinite-loop illusion.
package carousel

import (
	"context"
	"math"
	"sync"
	"time"
)

const (
	defaultTickInterval = 2 * time.Second
	defaultCooldown     = 2 * time.Second
)

// ScrollTarget is an injected scrollable region.
type ScrollTarget interface {
	ScrollTo(offset float64, animated bool)
}

type syncState int

const (
	stateAuto syncState = iota
	stateManual
	stateCooldown
)

type registration struct {
	target    ScrollTarget
	index     int
	itemCount int
	cardWidth float64
}

// Synchronizer drives every registered carousel from one shared
// timer. It implements suture.Service; ticks advance only while no
// drag or post-drag cooldown is active.
type Synchronizer struct {
	mu            sync.Mutex
	regs          map[string]*registration
	order         []string
	state         syncState
	cooldownTimer *time.Timer

	tick     time.Duration
	cooldown time.Duration
}

// NewSynchronizer creates a synchronizer. Non-positive durations fall
// back to the 2s defaults.
func NewSynchronizer(tick, cooldown time.Duration) *Synchronizer {
	if tick <= 0 {
		tick = defaultTickInterval
	}
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &Synchronizer{
		regs:     make(map[string]*registration),
		tick:     tick,
		cooldown: cooldown,
	}
}

// Register adds a carousel. Registering an existing ID replaces the
// prior entry. The starting index is the first card of the middle
// copy.
func (s *Synchronizer) Register(id string, target ScrollTarget, itemCount int, cardWidth float64) {
	if itemCount <= 0 || target == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.regs[id]; !exists {
		s.order = append(s.order, id)
	}
	s.regs[id] = &registration{
		target:    target,
		index:     itemCount,
		itemCount: itemCount,
		cardWidth: cardWidth,
	}
}

// Unregister removes a carousel. Unknown IDs are ignored.
func (s *Synchronizer) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.regs[id]; !exists {
		return
	}
	delete(s.regs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Update changes a registered carousel's geometry, resetting the index
// to the middle copy when the item count changes.
func (s *Synchronizer) Update(id string, itemCount int, cardWidth float64) {
	if itemCount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, exists := s.regs[id]
	if !exists {
		return
	}
	if reg.itemCount != itemCount {
		reg.index = itemCount
	}
	reg.itemCount = itemCount
	reg.cardWidth = cardWidth
}

// Clear removes every registration.
func (s *Synchronizer) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs = make(map[string]*registration)
	s.order = nil
}

// BeginDrag suspends auto-advance and cancels any pending cooldown.
func (s *Synchronizer) BeginDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cooldownTimer != nil {
		s.cooldownTimer.Stop()
		s.cooldownTimer = nil
	}
	s.state = stateManual
}

// EndDrag starts the cooldown; auto-advance resumes after it expires.
func (s *Synchronizer) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cooldownTimer != nil {
		s.cooldownTimer.Stop()
	}
	s.state = stateCooldown
	s.cooldownTimer = time.AfterFunc(s.cooldown, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state == stateCooldown {
			s.state = stateAuto
			s.cooldownTimer = nil
		}
	})
}

// ReportOffset records where a manual scroll left a carousel. The
// derived index is wrapped back into the middle copy when the user
// scrolled past it, mirroring the auto-advance wrap.
func (s *Synchronizer) ReportOffset(id string, offset float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, exists := s.regs[id]
	if !exists || reg.cardWidth <= 0 {
		return
	}
	index := int(math.Round(offset / reg.cardWidth))
	n := reg.itemCount
	if index < 0 {
		index = 0
	}
	for index >= 2*n {
		index -= n
	}
	for index < n {
		index += n
	}
	if index != int(math.Round(offset/reg.cardWidth)) {
		reg.target.ScrollTo(float64(index)*reg.cardWidth, false)
	}
	reg.index = index
}

// Index returns a carousel's current index.
func (s *Synchronizer) Index(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, exists := s.regs[id]
	if !exists {
		return 0, false
	}
	return reg.index, true
}

// Advance moves every registered carousel one card forward. It is a
// no-op unless the synchronizer is in the auto-advance state.
func (s *Synchronizer) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateAuto {
		return
	}
	for _, id := range s.order {
		reg := s.regs[id]
		reg.index++
		if reg.index >= 2*reg.itemCount {
			// Jump back one copy without animation, then the next
			// tick continues smoothly.
			reg.index = reg.itemCount
			reg.target.ScrollTo(float64(reg.index)*reg.cardWidth, false)
			continue
		}
		reg.target.ScrollTo(float64(reg.index)*reg.cardWidth, true)
	}
}

// Serve implements suture.Service, ticking Advance until ctx ends.
func (s *Synchronizer) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			if s.cooldownTimer != nil {
				s.cooldownTimer.Stop()
				s.cooldownTimer = nil
			}
			s.mu.Unlock()
			return ctx.Err()
		case <-ticker.C:
			s.Advance()
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *Synchronizer) String() string {
	return "carousel-synchronizer"
}
