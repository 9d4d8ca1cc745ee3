// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks per-run session state and drives transcript
// auto-save.
package session

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager tracks the current run: when it started, when the user last did
// anything, and whether the transcript has changes that failed to persist.
// The dirty flag is the safety net behind save-on-every-mutation: a
// mutation whose save failed marks the session dirty, and the periodic
// tick retries until a save goes through.
type Manager struct {
	mu sync.Mutex

	sessionID    string
	startTime    time.Time
	lastActivity time.Time

	autoSaveInterval time.Duration
	lastAutoSave     time.Time
	isDirty          bool

	onAutoSave func() error
}

// Config holds configuration for the session manager.
type Config struct {
	// AutoSaveInterval is how often to retry a failed save (default: 30s)
	AutoSaveInterval time.Duration
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		AutoSaveInterval: 30 * time.Second,
	}
}

// NewManager creates a new session manager.
func NewManager(cfg Config) *Manager {
	if cfg.AutoSaveInterval <= 0 {
		cfg.AutoSaveInterval = 30 * time.Second
	}
	now := time.Now()
	return &Manager{
		sessionID:        uuid.NewString(),
		startTime:        now,
		lastActivity:     now,
		autoSaveInterval: cfg.AutoSaveInterval,
		lastAutoSave:     now,
	}
}

// =============================================================================
// SESSION STATE
// =============================================================================

// SessionID returns the current session ID.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// Duration returns how long the session has been active.
func (m *Manager) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.startTime)
}

// RecordActivity updates the last activity timestamp.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = time.Now()
}

// IdleTime returns how long since last activity.
func (m *Manager) IdleTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Since(m.lastActivity)
}

// =============================================================================
// DIRTY TRACKING
// =============================================================================

// MarkDirty indicates the transcript has changes that did not persist.
func (m *Manager) MarkDirty() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDirty = true
}

// MarkClean indicates the transcript has been saved.
func (m *Manager) MarkClean() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isDirty = false
	m.lastAutoSave = time.Now()
}

// IsDirty returns whether the transcript has unsaved changes.
func (m *Manager) IsDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isDirty
}

// SetAutoSaveCallback sets the function called to retry a save.
func (m *Manager) SetAutoSaveCallback(fn func() error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onAutoSave = fn
}

// Check retries the save when the session is dirty and the interval has
// elapsed. Returns true when a retry succeeded.
func (m *Manager) Check() bool {
	m.mu.Lock()
	shouldSave := m.isDirty && time.Since(m.lastAutoSave) >= m.autoSaveInterval
	onAutoSave := m.onAutoSave
	m.mu.Unlock()

	if !shouldSave || onAutoSave == nil {
		return false
	}
	if err := onAutoSave(); err != nil {
		return false
	}
	m.MarkClean()
	return true
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// TickMsg is sent periodically to check session state.
type TickMsg struct {
	Time time.Time
}

// TickCmd returns a command that ticks once per second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// HandleTick processes a tick: runs the auto-save check and schedules the
// next tick.
func (m *Manager) HandleTick() tea.Cmd {
	m.Check()
	return TickCmd()
}
