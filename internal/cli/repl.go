// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Plain line-mode chat for terminals where the TUI is unwanted.
//
// Command: repl
// Short:   Interactive chat with history, no TUI
//
// Interactive commands:
//   /new            Start a new conversation
//   /clear          Clear the current conversation's messages
//   /rename TITLE   Rename the current conversation
//   /resources      Show coping tips and helplines
//   /quit, /q       Exit (Ctrl+D also exits)
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/empathapp/empath-tui/internal/api"
	"github.com/empathapp/empath-tui/internal/config"
	"github.com/empathapp/empath-tui/internal/logging"
	"github.com/empathapp/empath-tui/internal/resources"
	"github.com/empathapp/empath-tui/internal/store"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// replInput wraps liner with history persisted in the data directory.
type replInput struct {
	line        *liner.State
	historyFile string
}

func newReplInput() *replInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	in := &replInput{
		line:        line,
		historyFile: filepath.Join(dir, "repl_history"),
	}
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
	return in
}

func (in *replInput) read(prompt string) (string, error) {
	input, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		in.line.AppendHistory(input)
	}
	return input, nil
}

func (in *replInput) close() {
	if f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
		in.line.WriteHistory(f)
		f.Close()
	}
	in.line.Close()
}

// =============================================================================
// REPL LOOP
// =============================================================================

// RunRepl runs the line-mode chat loop. Conversations persist through the
// same store the TUI uses.
func RunRepl(client *api.Client, st *store.State, args Args) int {
	in := newReplInput()
	defer in.close()

	if !args.Quiet {
		fmt.Println("empath - type /quit to exit, /resources for support info")
		fmt.Println(resources.Tagline)
		fmt.Println()
	}

	for {
		input, err := in.read("you> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			// Ctrl+D or closed stdin
			fmt.Println()
			return 0
		}

		text := strings.TrimSpace(input)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "/") {
			if done := handleReplCommand(st, text); done {
				return 0
			}
			continue
		}

		if _, err := st.AppendUser(text); err != nil {
			logging.Errorf("repl save failed: %v", err)
			fmt.Fprintln(os.Stderr, "warning: could not save conversation")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		resp, err := client.Chat(ctx, text)
		cancel()

		reply, ok := api.ReplyText(resp, err)
		if !ok {
			logging.Errorf("repl send failed: %v", err)
		}
		if _, err := st.AppendBot(reply); err != nil {
			logging.Errorf("repl save failed: %v", err)
		}

		fmt.Println("empath> " + renderMarkdown(reply))
		if resp != nil && resp.Crisis {
			country := config.Global().User.CountryCode
			fmt.Println("        Helpline: " + resources.Helpline(country))
		}
		fmt.Println()
	}
}

// handleReplCommand executes a slash command. Returns true to exit.
func handleReplCommand(st *store.State, text string) bool {
	parts := strings.Fields(text)
	switch parts[0] {
	case "/quit", "/q", "/exit":
		return true
	case "/new":
		if _, err := st.NewChat(); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not save conversation")
		}
		fmt.Println("started a new conversation")
	case "/clear":
		if err := st.ClearMessages(st.ActiveIndex()); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not save conversation")
		}
		fmt.Println("cleared")
	case "/rename":
		title := strings.TrimSpace(strings.TrimPrefix(text, "/rename"))
		if title == "" {
			fmt.Println("usage: /rename NEW TITLE")
			break
		}
		if err := st.RenameActive(title); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not save conversation")
		}
		fmt.Println("renamed to " + title)
	case "/resources":
		printResources()
	default:
		fmt.Println("unknown command " + parts[0] + " (try /quit, /new, /clear, /rename, /resources)")
	}
	return false
}

func printResources() {
	fmt.Println("Coping tips:")
	for _, tip := range resources.CopingTips {
		fmt.Println("  - " + tip.Title + ": " + tip.Body)
	}
	fmt.Println("Helplines:")
	for _, h := range resources.Helplines() {
		fmt.Println("  " + h[0] + ": " + h[1])
	}
}
