// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package resources

import "testing"

func TestHelpline(t *testing.T) {
	if got := Helpline("IN"); got != "+91-8888817666" {
		t.Errorf("Helpline(IN) = %q", got)
	}
	if got := Helpline("in"); got != "+91-8888817666" {
		t.Errorf("Helpline should be case-insensitive, got %q", got)
	}
	// Unknown codes fall back to the US entry
	if got := Helpline("ZZ"); got != Helpline("US") {
		t.Errorf("Helpline(ZZ) = %q, want US fallback", got)
	}
	if got := Helpline(""); got != Helpline("US") {
		t.Errorf("Helpline(\"\") = %q, want US fallback", got)
	}
}

func TestDetectCrisis(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I had a rough day at work", false},
		{"i want to die", true},
		{"I Want To Die", true},
		{"feeling suicidal lately", true},
		{"I can't go on like this", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := DetectCrisis(tt.text); got != tt.want {
			t.Errorf("DetectCrisis(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestBundledContent(t *testing.T) {
	if len(ComfortMessages) == 0 {
		t.Error("ComfortMessages must not be empty")
	}
	if len(CopingTips) == 0 {
		t.Error("CopingTips must not be empty")
	}
	for _, tip := range CopingTips {
		if tip.Title == "" || tip.Body == "" {
			t.Errorf("tip with empty field: %+v", tip)
		}
	}
	if len(Helplines()) != 3 {
		t.Errorf("Helplines() returned %d entries, want 3", len(Helplines()))
	}
}
