// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/empathapp/empath-tui/internal/ui/styles"
)

func TestStatusBarView(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(100)
	sb.SetConversation("New chat", 3)

	out := sb.View()
	if !strings.Contains(out, "Ready") {
		t.Errorf("expected Ready status, got %q", out)
	}
	if !strings.Contains(out, "New chat") {
		t.Errorf("expected conversation title, got %q", out)
	}
	if !strings.Contains(out, "saved") {
		t.Errorf("expected saved indicator, got %q", out)
	}
}

func TestStatusBarErrorMessage(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(100)
	sb.SetError("could not save conversations")

	out := sb.View()
	if !strings.Contains(out, "could not save conversations") {
		t.Errorf("error message missing from view: %q", out)
	}

	// Returning to ready clears the transient message.
	sb.SetStatus(StatusReady)
	if sb.Message != "" {
		t.Error("SetStatus(Ready) should clear the error message")
	}
}

func TestStatusBarDirtyIndicator(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(100)
	sb.SetDirty(true)

	if !strings.Contains(sb.View(), "unsaved") {
		t.Error("dirty bar should show unsaved indicator")
	}
}

func TestStatusBarNarrow(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(40)
	out := sb.View()
	if out == "" {
		t.Error("narrow view rendered empty")
	}
}

func TestSpinnerLifecycle(t *testing.T) {
	sp := NewSpinner(styles.NewTheme())
	if sp.IsActive() {
		t.Error("new spinner should be inactive")
	}
	if sp.View() != "" {
		t.Error("inactive spinner should render empty")
	}

	cmd := sp.Start()
	if cmd == nil {
		t.Error("Start should return a tick command")
	}
	if !sp.IsActive() {
		t.Error("spinner should be active after Start")
	}
	if !strings.Contains(sp.View(), "thinking") {
		t.Errorf("active spinner should show its message, got %q", sp.View())
	}

	sp.Stop()
	if sp.View() != "" {
		t.Error("stopped spinner should render empty")
	}
}

func TestResourcesOverlayToggle(t *testing.T) {
	ov := NewResourcesOverlay(styles.NewTheme())
	ov.SetSize(80, 24)

	if ov.IsVisible() {
		t.Error("new overlay should be hidden")
	}
	if ov.View() != "" {
		t.Error("hidden overlay should render empty")
	}

	ov.Show()
	ov.Show() // idempotent
	if !ov.IsVisible() {
		t.Error("overlay should be visible after Show")
	}

	out := ov.View()
	for _, want := range []string{"Wellness Resources", "Coping tips", "Helplines", "988"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}

	ov.Hide()
	ov.Hide() // idempotent
	if ov.IsVisible() {
		t.Error("overlay should be hidden after Hide")
	}
}
