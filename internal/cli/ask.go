// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// Command: ask
// Short:   Send one message and print the reply
//
// Examples:
//   empath ask "I can't sleep lately"
//   empath --endpoint http://localhost:5000 ask "rough day"
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/empathapp/empath-tui/internal/api"
	"github.com/empathapp/empath-tui/internal/logging"
	"github.com/empathapp/empath-tui/internal/resources"
)

// markdownRenderer is the shared glamour renderer for reply output.
var markdownRenderer *glamour.TermRenderer

func initMarkdownRenderer() error {
	width := TerminalWidth()
	if width > 100 {
		width = 100
	}
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return err
}

// renderMarkdown renders text as markdown, falling back to plain output.
func renderMarkdown(text string) string {
	if markdownRenderer == nil || !ColorsEnabled() {
		return text
	}
	out, err := markdownRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// RunAsk sends a single message and prints the rendered reply.
// Returns the process exit code.
func RunAsk(client *api.Client, args Args) int {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: empath ask \"your message\"")
		return 2
	}

	if err := initMarkdownRenderer(); err != nil {
		markdownRenderer = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Chat(ctx, query)
	text, ok := api.ReplyText(resp, err)
	if !ok {
		logging.Errorf("ask failed: %v", err)
	}
	fmt.Println(renderMarkdown(text))

	if resp != nil && resp.Crisis {
		country := args.Country
		if country == "" {
			country = "US"
		}
		fmt.Println()
		fmt.Println("Helpline: " + resources.Helpline(country))
	}

	if !ok {
		return 1
	}
	return 0
}
