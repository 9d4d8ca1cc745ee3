// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import (
	"testing"
	"time"
)

var testMessages = []string{"one", "two", "three"}

func TestRotatorNextWraps(t *testing.T) {
	r := NewRotator(testMessages, time.Second)
	r.Start()

	for i := 0; i < len(testMessages); i++ {
		r.Next()
	}
	if r.Index() != 0 {
		t.Errorf("after len(messages) nexts index = %d, want 0", r.Index())
	}
	if r.Current() != "one" {
		t.Errorf("Current() = %q, want %q", r.Current(), "one")
	}
}

func TestRotatorReset(t *testing.T) {
	r := NewRotator(testMessages, time.Second)
	r.Start()
	r.Next()
	r.Next()
	if r.Index() != 2 {
		t.Fatalf("setup: index = %d, want 2", r.Index())
	}

	r.Reset()
	if r.Index() != 0 {
		t.Errorf("after Reset index = %d, want 0", r.Index())
	}
}

func TestRotatorTickAdvances(t *testing.T) {
	r := NewRotator(testMessages, time.Second)
	r.Start()

	cmd := r.HandleTick(rotateTickMsg{gen: r.gen})
	if r.Index() != 1 {
		t.Errorf("after tick index = %d, want 1", r.Index())
	}
	if cmd == nil {
		t.Error("a live tick should schedule the next one")
	}
}

func TestRotatorDropsStaleTick(t *testing.T) {
	r := NewRotator(testMessages, time.Second)
	r.Start()
	stale := rotateTickMsg{gen: r.gen}

	// Manual next supersedes the pending tick.
	r.Next()
	idx := r.Index()

	if cmd := r.HandleTick(stale); cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if r.Index() != idx {
		t.Errorf("stale tick advanced index from %d to %d", idx, r.Index())
	}
}

func TestRotatorStopDiscardsTicks(t *testing.T) {
	r := NewRotator(testMessages, time.Second)
	r.Start()
	pending := rotateTickMsg{gen: r.gen}
	r.Stop()

	if cmd := r.HandleTick(pending); cmd != nil {
		t.Error("tick after Stop should not reschedule")
	}
	if r.Index() != 0 {
		t.Errorf("tick after Stop advanced index to %d", r.Index())
	}
}

func TestRotatorEmptyList(t *testing.T) {
	r := NewRotator(nil, time.Second)
	r.Start()
	if r.Current() != "" {
		t.Errorf("empty rotator Current() = %q, want empty", r.Current())
	}
	r.Next() // must not panic
	if r.Index() != 0 {
		t.Errorf("empty rotator index = %d, want 0", r.Index())
	}
}
