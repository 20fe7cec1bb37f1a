// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package carousel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scrollCall struct {
	offset   float64
	animated bool
}

type fakeTarget struct {
	mu    sync.Mutex
	calls []scrollCall
}

func (f *fakeTarget) ScrollTo(offset float64, animated bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, scrollCall{offset, animated})
}

func (f *fakeTarget) last() (scrollCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return scrollCall{}, false
	}
	return f.calls[len(f.calls)-1], true
}

func TestRegisterStartsInMiddleCopy(t *testing.T) {
	s := NewSynchronizer(0, 0)
	s.Register("a", &fakeTarget{}, 5, 100)

	idx, ok := s.Index("a")
	require.True(t, ok)
	assert.Equal(t, 5, idx)
}

func TestDuplicateRegistrationReplaces(t *testing.T) {
	s := NewSynchronizer(0, 0)
	first := &fakeTarget{}
	second := &fakeTarget{}
	s.Register("a", first, 5, 100)
	s.Advance()
	s.Register("a", second, 3, 80)

	idx, ok := s.Index("a")
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	s.Advance()
	call, ok := second.last()
	require.True(t, ok)
	assert.Equal(t, 320.0, call.offset)
	// The replaced target stopped receiving ticks.
	assert.Len(t, first.calls, 1)
}

func TestAdvanceWrapsWithinTripledWindow(t *testing.T) {
	s := NewSynchronizer(0, 0)
	target := &fakeTarget{}
	const n = 3
	s.Register("a", target, n, 100)

	for tick := 0; tick < 50; tick++ {
		s.Advance()
		idx, ok := s.Index("a")
		require.True(t, ok)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3*n)
	}

	// Every wrap landed back on the middle copy without animation.
	for _, call := range target.calls {
		if !call.animated {
			assert.Equal(t, float64(n)*100, call.offset)
		}
	}
}

func TestDragSuspendsAutoAdvance(t *testing.T) {
	s := NewSynchronizer(0, 50*time.Millisecond)
	target := &fakeTarget{}
	s.Register("a", target, 5, 100)

	s.BeginDrag()
	s.Advance()
	assert.Empty(t, target.calls, "no advance while dragging")

	s.EndDrag()
	s.Advance()
	assert.Empty(t, target.calls, "no advance during cooldown")

	require.Eventually(t, func() bool {
		s.Advance()
		_, ok := target.last()
		return ok
	}, time.Second, 10*time.Millisecond, "auto-advance resumes after cooldown")
}

func TestBeginDragCancelsPendingCooldown(t *testing.T) {
	s := NewSynchronizer(0, 20*time.Millisecond)
	target := &fakeTarget{}
	s.Register("a", target, 5, 100)

	s.EndDrag()
	s.BeginDrag()
	time.Sleep(60 * time.Millisecond)

	// The expired cooldown timer must not have re-enabled advancing
	// mid-drag.
	s.Advance()
	assert.Empty(t, target.calls)
}

func TestReportOffsetWrapsManualScroll(t *testing.T) {
	s := NewSynchronizer(0, 0)
	target := &fakeTarget{}
	const n = 4
	s.Register("a", target, n, 100)

	// User scrolled into the last copy; index wraps back to the
	// middle equivalent.
	s.ReportOffset("a", 900) // index 9 -> wraps to 5
	idx, ok := s.Index("a")
	require.True(t, ok)
	assert.Equal(t, 5, idx)
	call, ok := target.last()
	require.True(t, ok)
	assert.False(t, call.animated)
	assert.Equal(t, 500.0, call.offset)

	// An offset already inside the middle copy sticks as-is.
	s.ReportOffset("a", 600)
	idx, _ = s.Index("a")
	assert.Equal(t, 6, idx)
}

func TestUnregisterAndClear(t *testing.T) {
	s := NewSynchronizer(0, 0)
	a := &fakeTarget{}
	b := &fakeTarget{}
	s.Register("a", a, 3, 100)
	s.Register("b", b, 3, 100)

	s.Unregister("a")
	s.Advance()
	assert.Empty(t, a.calls)
	assert.Len(t, b.calls, 1)

	s.Clear()
	s.Advance()
	assert.Len(t, b.calls, 1)

	_, ok := s.Index("b")
	assert.False(t, ok)
}
