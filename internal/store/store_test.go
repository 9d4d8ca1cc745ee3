// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/empathapp/empath-tui/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreWithPath(filepath.Join(t.TempDir(), TranscriptFile))
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	first := model.NewConversation()
	first.SetTitle("morning check-in")
	first.AddUserMessage("hello")
	first.AddBotMessage("hi, how are you feeling today?")
	second := model.NewConversation()

	if err := s.Save([]*model.Conversation{first, second}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("loaded %d conversations, want 2", len(loaded))
	}
	if loaded[0].ID != first.ID {
		t.Errorf("ID = %q, want %q", loaded[0].ID, first.ID)
	}
	if loaded[0].Title != "morning check-in" {
		t.Errorf("Title = %q, want %q", loaded[0].Title, "morning check-in")
	}
	if len(loaded[0].Messages) != 2 {
		t.Fatalf("loaded %d messages, want 2", len(loaded[0].Messages))
	}
	if loaded[0].Messages[0].Role != model.RoleUser || loaded[0].Messages[1].Role != model.RoleBot {
		t.Error("message roles not preserved")
	}
	if loaded[0].Messages[0].Text != "hello" {
		t.Errorf("message text = %q, want %q", loaded[0].Messages[0].Text, "hello")
	}
	if loaded[1].Title != model.DefaultTitle {
		t.Errorf("second title = %q, want %q", loaded[1].Title, model.DefaultTitle)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	if !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("expected ErrTranscriptNotFound, got %v", err)
	}
}

func TestStore_LoadOrDefaultFallback(t *testing.T) {
	// Missing file
	s := newTestStore(t)
	convs := s.LoadOrDefault()
	if len(convs) != 1 {
		t.Fatalf("fallback should hold exactly one conversation, got %d", len(convs))
	}
	if convs[0].Title != model.DefaultTitle {
		t.Errorf("fallback title = %q, want %q", convs[0].Title, model.DefaultTitle)
	}
	if !convs[0].IsEmpty() {
		t.Error("fallback conversation should have no messages")
	}

	// Corrupt file
	if err := os.WriteFile(s.Path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	convs = s.LoadOrDefault()
	if len(convs) != 1 || !convs[0].IsEmpty() {
		t.Error("corrupt file should also fall back to one empty conversation")
	}
}

func TestState_NewChat(t *testing.T) {
	st := NewState(newTestStore(t))
	existing := st.Active()

	conv, err := st.NewChat()
	if err != nil {
		t.Fatalf("NewChat save failed: %v", err)
	}

	if st.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", st.ActiveIndex())
	}
	if st.Active() != conv {
		t.Error("new conversation should be active")
	}
	if st.Conversations()[1] != existing {
		t.Error("new conversation should be prepended")
	}
	if conv.ID == existing.ID {
		t.Error("new conversation must have a distinct ID")
	}
	if conv.Title != model.DefaultTitle || !conv.IsEmpty() {
		t.Error("new conversation should be empty with the default title")
	}
}

func TestState_SelectClamped(t *testing.T) {
	st := NewState(newTestStore(t))
	st.NewChat()
	st.NewChat()

	st.Select(1)
	if st.ActiveIndex() != 1 {
		t.Errorf("ActiveIndex = %d, want 1", st.ActiveIndex())
	}

	st.Select(99)
	if st.ActiveIndex() != st.Len()-1 {
		t.Errorf("over-range select should clamp to %d, got %d", st.Len()-1, st.ActiveIndex())
	}

	st.Select(-5)
	if st.ActiveIndex() != 0 {
		t.Errorf("negative select should clamp to 0, got %d", st.ActiveIndex())
	}
}

func TestState_RenameActive(t *testing.T) {
	st := NewState(newTestStore(t))
	st.NewChat()
	st.Active().AddUserMessage("keep me")
	st.Select(1)
	other := st.At(0)

	if err := st.RenameActive("sleep troubles"); err != nil {
		t.Fatalf("RenameActive failed: %v", err)
	}

	if st.Active().Title != "sleep troubles" {
		t.Errorf("active title = %q", st.Active().Title)
	}
	if other.Title != model.DefaultTitle {
		t.Error("rename must not touch other conversations' titles")
	}
	if other.MessageCount() != 1 {
		t.Error("rename must not touch message lists")
	}
}

func TestState_ClearMessages(t *testing.T) {
	st := NewState(newTestStore(t))
	st.Active().AddUserMessage("a")
	st.NewChat()
	st.Active().AddUserMessage("b")
	st.Active().SetTitle("second")

	// Clear the non-active conversation at index 1
	if err := st.ClearMessages(1); err != nil {
		t.Fatalf("ClearMessages failed: %v", err)
	}

	if !st.At(1).IsEmpty() {
		t.Error("cleared conversation should have no messages")
	}
	if st.At(0).MessageCount() != 1 {
		t.Error("other conversations' messages must be unaffected")
	}
	if st.At(0).Title != "second" {
		t.Error("titles must be unaffected")
	}

	// Out of range is a no-op
	if err := st.ClearMessages(42); err != nil {
		t.Errorf("out-of-range clear should be a no-op, got %v", err)
	}
}

func TestState_PersistsEveryMutation(t *testing.T) {
	s := newTestStore(t)
	st := NewState(s)

	if _, err := st.AppendUser("hello"); err != nil {
		t.Fatalf("AppendUser failed: %v", err)
	}

	// A second State over the same file must see the mutation.
	st2 := NewState(s)
	if st2.Active().MessageCount() != 1 {
		t.Errorf("reloaded message count = %d, want 1", st2.Active().MessageCount())
	}
}

func TestState_SaveErrorSurfaced(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	// A file where the parent directory should be makes MkdirAll fail.
	if err := os.WriteFile(blocked, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	st := NewState(NewStoreWithPath(filepath.Join(blocked, TranscriptFile)))

	_, err := st.AppendUser("hello")
	if err == nil {
		t.Fatal("expected save error when storage is unavailable")
	}
	// The in-memory mutation still happened.
	if st.Active().MessageCount() != 1 {
		t.Error("mutation should apply even when the save fails")
	}
}

func TestState_AppendBotTo(t *testing.T) {
	st := NewState(newTestStore(t))
	target := st.Active()
	st.NewChat()

	if _, err := st.AppendBotTo(target.ID, "reply"); err != nil {
		t.Fatalf("AppendBotTo failed: %v", err)
	}

	if target.MessageCount() != 1 {
		t.Error("reply should land in the conversation it was sent from")
	}
	if st.Active().MessageCount() != 0 {
		t.Error("active conversation should be untouched")
	}

	// Unknown ID falls back to the active conversation.
	if _, err := st.AppendBotTo("conv_gone", "fallback"); err != nil {
		t.Fatalf("AppendBotTo fallback failed: %v", err)
	}
	if st.Active().MessageCount() != 1 {
		t.Error("unknown ID should append to the active conversation")
	}
}
