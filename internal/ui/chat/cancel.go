// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// SEND TASK MANAGEMENT (THREAD-SAFE)
// =============================================================================

// sendManager tracks the in-flight send per conversation. Starting a send
// in a conversation that already has one cancels and supersedes it.
// Must be held as a pointer in the Model so Bubble Tea's model copies do
// not copy the mutex.
type sendManager struct {
	mu       sync.Mutex
	nextID   uint64
	inflight map[string]*sendTask
}

type sendTask struct {
	id     uint64
	cancel context.CancelFunc
}

func newSendManager() *sendManager {
	return &sendManager{inflight: make(map[string]*sendTask)}
}

// begin registers a new send for convID, cancelling any existing one.
// The returned context carries the request timeout; the send ID identifies
// this task when the completion arrives.
func (sm *sendManager) begin(convID string, timeout time.Duration) (context.Context, uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if prev, ok := sm.inflight[convID]; ok {
		prev.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	sm.nextID++
	sm.inflight[convID] = &sendTask{id: sm.nextID, cancel: cancel}
	return ctx, sm.nextID
}

// finish reports whether the completed send is still the current one for
// its conversation. A superseded completion returns false and must be
// dropped. The current task is removed and its context released.
func (sm *sendManager) finish(convID string, sendID uint64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	task, ok := sm.inflight[convID]
	if !ok || task.id != sendID {
		return false
	}
	task.cancel()
	delete(sm.inflight, convID)
	return true
}

// isInflight reports whether convID has a send pending.
func (sm *sendManager) isInflight(convID string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.inflight[convID]
	return ok
}

// cancelAll cancels every pending send. Used on quit.
func (sm *sendManager) cancelAll() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for id, task := range sm.inflight {
		task.cancel()
		delete(sm.inflight, id)
	}
}
