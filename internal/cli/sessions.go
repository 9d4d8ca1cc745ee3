// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions.go - Saved conversation listing.
//
// Command: sessions
// Short:   List conversations persisted on this device
package cli

import (
	"fmt"

	"github.com/empathapp/empath-tui/internal/store"
	"github.com/empathapp/empath-tui/internal/util"
)

// RunSessions prints the saved conversation list, most recent first.
func RunSessions(st *store.State, args Args) int {
	convs := st.Conversations()
	if len(convs) == 0 {
		fmt.Println("no saved conversations")
		return 0
	}

	for i, conv := range convs {
		marker := " "
		if i == st.ActiveIndex() {
			marker = "*"
		}
		fmt.Printf("%s %-30s %3s messages  %s\n",
			marker,
			util.TruncateRunes(conv.DisplayTitle(), 30),
			util.IntToString(conv.MessageCount()),
			conv.UpdatedAt.Format("2006-01-02 15:04"))
		if !args.Quiet {
			if preview := conv.Preview(70); preview != "" {
				fmt.Println("    " + preview)
			}
		}
	}
	return 0
}
