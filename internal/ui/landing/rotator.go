// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// EMPATHY ROTATOR
// =============================================================================

// rotateTickMsg advances the rotator. The generation stamp lets the model
// discard ticks scheduled before a manual Next/Reset or an unmount.
type rotateTickMsg struct {
	gen uint64
}

// Rotator cycles through a fixed list of messages on a timer, with manual
// next/reset controls. The zero value is not usable; call NewRotator.
type Rotator struct {
	messages []string
	index    int
	interval time.Duration
	gen      uint64
	running  bool
}

// NewRotator creates a rotator over messages, advancing every interval.
func NewRotator(messages []string, interval time.Duration) *Rotator {
	return &Rotator{
		messages: messages,
		interval: interval,
	}
}

// Current returns the message at the current index, or "" for an empty list.
func (r *Rotator) Current() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[r.index]
}

// Index returns the current position.
func (r *Rotator) Index() int {
	return r.index
}

// Start begins the automatic cycle and returns the first tick command.
func (r *Rotator) Start() tea.Cmd {
	r.running = true
	r.gen++
	return r.tick()
}

// Stop halts the cycle. Any tick already in flight will be discarded.
func (r *Rotator) Stop() {
	r.running = false
	r.gen++
}

// Next advances manually and restarts the timer so the next automatic
// advance happens a full interval from now.
func (r *Rotator) Next() tea.Cmd {
	r.advance()
	if !r.running {
		return nil
	}
	r.gen++
	return r.tick()
}

// Reset returns to the first message and restarts the timer.
func (r *Rotator) Reset() tea.Cmd {
	r.index = 0
	if !r.running {
		return nil
	}
	r.gen++
	return r.tick()
}

// HandleTick processes a tick message. Ticks from a superseded generation
// are dropped; a current tick advances and schedules the next one.
func (r *Rotator) HandleTick(msg rotateTickMsg) tea.Cmd {
	if !r.running || msg.gen != r.gen {
		return nil
	}
	r.advance()
	return r.tick()
}

func (r *Rotator) advance() {
	if len(r.messages) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.messages)
}

func (r *Rotator) tick() tea.Cmd {
	gen := r.gen
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return rotateTickMsg{gen: gen}
	})
}
