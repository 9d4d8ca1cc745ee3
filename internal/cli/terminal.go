// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the empath CLI.
//
// TTY and width detection keep the line-mode commands usable when piped
// or run under CI: no colors without a terminal, and NO_COLOR is honored
// (see https://no-color.org/).
package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const defaultWidth = 80

// TerminalWidth returns the stdout width, or a default for non-terminals.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

var (
	colorOnce    sync.Once
	colorEnabled bool
)

// ColorsEnabled reports whether colored output should be produced.
// NO_COLOR takes precedence, then TTY detection.
func ColorsEnabled() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorEnabled = false
			return
		}
		colorEnabled = IsStdoutTTY() && termenv.ColorProfile() != termenv.Ascii
	})
	return colorEnabled
}
