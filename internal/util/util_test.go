// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.json")

	if err := AtomicWriteFile(path, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("content = %q, want %q", data, `{"a":1}`)
	}

	// Overwrite must replace, not append
	if err := AtomicWriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile overwrite failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "x" {
		t.Errorf("content after overwrite = %q, want %q", data, "x")
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected 1 file in dir, got %d", len(entries))
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in     string
		max    int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"héllo wörld", 8, "héllo..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateRunes(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	if got := TruncateWidth("hello", 10); got != "hello" {
		t.Errorf("TruncateWidth short = %q", got)
	}
	got := TruncateWidth("hello world", 8)
	if StringWidth(got) > 8 {
		t.Errorf("TruncateWidth result too wide: %q (%d)", got, StringWidth(got))
	}
}

func TestCollapseNewlines(t *testing.T) {
	if got := CollapseNewlines("a\r\nb\nc"); got != "a b c" {
		t.Errorf("CollapseNewlines = %q, want %q", got, "a b c")
	}
}

func TestIntToString(t *testing.T) {
	if got := IntToString(-42); got != "-42" {
		t.Errorf("IntToString(-42) = %q", got)
	}
	if got := StringToInt("7", 0); got != 7 {
		t.Errorf("StringToInt(7) = %d", got)
	}
	if got := StringToInt("x", 9); got != 9 {
		t.Errorf("StringToInt fallback = %d", got)
	}
}
