// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"testing"
	"time"
)

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultConfig())

	if m.SessionID() == "" {
		t.Error("SessionID should be set")
	}
	if m.IsDirty() {
		t.Error("new session should be clean")
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := NewManager(DefaultConfig())
	b := NewManager(DefaultConfig())
	if a.SessionID() == b.SessionID() {
		t.Error("session IDs should be unique")
	}
}

func TestDirtyTracking(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.MarkDirty()
	if !m.IsDirty() {
		t.Error("expected dirty after MarkDirty")
	}
	m.MarkClean()
	if m.IsDirty() {
		t.Error("expected clean after MarkClean")
	}
}

func TestCheckRetriesSave(t *testing.T) {
	m := NewManager(Config{AutoSaveInterval: time.Millisecond})
	calls := 0
	m.SetAutoSaveCallback(func() error {
		calls++
		if calls == 1 {
			return errors.New("disk full")
		}
		return nil
	})

	m.MarkDirty()
	time.Sleep(2 * time.Millisecond)

	// First retry fails: still dirty
	if m.Check() {
		t.Error("Check should report failure on save error")
	}
	if !m.IsDirty() {
		t.Error("session should stay dirty after a failed retry")
	}

	// Second retry succeeds: clean
	time.Sleep(2 * time.Millisecond)
	if !m.Check() {
		t.Error("Check should report success")
	}
	if m.IsDirty() {
		t.Error("session should be clean after a successful retry")
	}
	if calls != 2 {
		t.Errorf("callback called %d times, want 2", calls)
	}
}

func TestCheckNoopWhenClean(t *testing.T) {
	m := NewManager(Config{AutoSaveInterval: time.Millisecond})
	called := false
	m.SetAutoSaveCallback(func() error {
		called = true
		return nil
	})

	time.Sleep(2 * time.Millisecond)
	m.Check()

	if called {
		t.Error("Check should not save when the session is clean")
	}
}

func TestRecordActivity(t *testing.T) {
	m := NewManager(DefaultConfig())
	time.Sleep(2 * time.Millisecond)

	if m.IdleTime() < time.Millisecond {
		t.Error("idle time should accumulate")
	}
	m.RecordActivity()
	if m.IdleTime() > time.Second {
		t.Error("RecordActivity should reset idle time")
	}
}
