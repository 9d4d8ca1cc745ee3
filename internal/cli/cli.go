// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and dispatch for empath.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota // Launch the TUI at the landing view
	CmdChat               // Launch the TUI directly in the chat view
	CmdAsk                // One-shot question, markdown-rendered answer
	CmdRepl               // Line-mode chat without the TUI
	CmdStatus             // Backend health check
	CmdSessions           // List persisted conversations
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Endpoint string // --endpoint URL override
	Country  string // --country code override
	UserID   string // --user ID override
	Quiet    bool

	// Command-specific
	Query string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `empath - a supportive companion for heavy days

Empath is a private mental-wellness chat client. Conversations stay on
this device; messages are sent only to your configured Empath backend.

Usage:
  empath                  Start the TUI (landing view)
  empath chat             Start the TUI in the chat view
  empath talk             Alias for "empath chat"
  empath ask "text"       One-shot question, prints the reply
  empath repl             Plain line-mode chat (no TUI)
  empath status           Check backend connectivity
  empath sessions         List saved conversations
  empath version          Show version
  empath help             Show this help

Flags:
  --endpoint URL          Backend base URL (default http://127.0.0.1:5000)
  --country CODE          Helpline country code (IN, US, UK)
  --user ID               User identifier sent with messages
  -q, --quiet             Minimal output

Environment:
  EMPATH_ENDPOINT, EMPATH_USER_ID, EMPATH_COUNTRY, EMPATH_DATA_DIR

If something feels unbearable right now, please reach a local helpline;
"empath help" is not a crisis service.`

// Usage returns the top-level help text.
func Usage() string {
	return usageText
}

// Parse interprets command-line arguments (without the program name).
func Parse(args []string) (Command, Args) {
	parsed := Args{}

	// Peel off global flags first; what remains selects the command.
	rest := make([]string, 0, len(args))
	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--endpoint" && i+1 < len(args):
			parsed.Endpoint = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--endpoint="):
			parsed.Endpoint = strings.TrimPrefix(arg, "--endpoint=")
			i++
		case arg == "--country" && i+1 < len(args):
			parsed.Country = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--country="):
			parsed.Country = strings.TrimPrefix(arg, "--country=")
			i++
		case arg == "--user" && i+1 < len(args):
			parsed.UserID = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--user="):
			parsed.UserID = strings.TrimPrefix(arg, "--user=")
			i++
		case arg == "-q" || arg == "--quiet":
			parsed.Quiet = true
			i++
		case arg == "--version":
			return CmdVersion, parsed
		case arg == "-h" || arg == "--help":
			return CmdHelp, parsed
		default:
			rest = append(rest, arg)
			i++
		}
	}
	parsed.Raw = rest

	if len(rest) == 0 {
		return CmdTUI, parsed
	}

	cmd := rest[0]
	parsed.Raw = rest[1:]
	switch cmd {
	case "chat", "talk": // "talk" is the legacy route name
		return CmdChat, parsed
	case "ask":
		parsed.Query = strings.Join(parsed.Raw, " ")
		return CmdAsk, parsed
	case "repl":
		return CmdRepl, parsed
	case "status", "s":
		return CmdStatus, parsed
	case "sessions", "session":
		return CmdSessions, parsed
	case "version":
		return CmdVersion, parsed
	case "help":
		return CmdHelp, parsed
	default:
		// Unknown words are treated as an ask, so "empath how do I..."
		// does something useful instead of erroring.
		parsed.Query = strings.Join(rest, " ")
		return CmdAsk, parsed
	}
}

// VersionString formats the full version line.
func VersionString() string {
	return fmt.Sprintf("empath %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
