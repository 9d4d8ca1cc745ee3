// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := Parse(nil)
	if cmd != CmdTUI {
		t.Errorf("no args should launch the TUI, got %v", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		args []string
		want Command
	}{
		{[]string{"chat"}, CmdChat},
		{[]string{"talk"}, CmdChat}, // legacy alias
		{[]string{"ask", "rough", "day"}, CmdAsk},
		{[]string{"repl"}, CmdRepl},
		{[]string{"status"}, CmdStatus},
		{[]string{"s"}, CmdStatus},
		{[]string{"sessions"}, CmdSessions},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
	}

	for _, tt := range tests {
		cmd, _ := Parse(tt.args)
		if cmd != tt.want {
			t.Errorf("Parse(%v) = %v, want %v", tt.args, cmd, tt.want)
		}
	}
}

func TestParseAskJoinsQuery(t *testing.T) {
	_, args := Parse([]string{"ask", "I", "can't", "sleep"})
	if args.Query != "I can't sleep" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseBareWordsBecomeAsk(t *testing.T) {
	cmd, args := Parse([]string{"rough", "day", "today"})
	if cmd != CmdAsk {
		t.Fatalf("bare words should parse as ask, got %v", cmd)
	}
	if args.Query != "rough day today" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"--endpoint", "http://example.test:5000", "--country=UK", "chat"})
	if cmd != CmdChat {
		t.Fatalf("cmd = %v, want chat", cmd)
	}
	if args.Endpoint != "http://example.test:5000" {
		t.Errorf("Endpoint = %q", args.Endpoint)
	}
	if args.Country != "UK" {
		t.Errorf("Country = %q", args.Country)
	}
}

func TestUsageMentionsEveryCommand(t *testing.T) {
	usage := Usage()
	for _, cmd := range []string{"chat", "talk", "ask", "repl", "status", "sessions", "version", "help"} {
		if !strings.Contains(usage, cmd) {
			t.Errorf("usage text missing command %q", cmd)
		}
	}
}

func TestVersionString(t *testing.T) {
	if !strings.Contains(VersionString(), Version) {
		t.Error("version string should contain the version")
	}
}
