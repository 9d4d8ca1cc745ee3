// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend connectivity check.
//
// Command: status
// Short:   Check whether the Empath backend is reachable
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/empathapp/empath-tui/internal/api"
)

// RunStatus checks backend health and prints the outcome.
// Returns 0 when reachable, 1 otherwise.
func RunStatus(client *api.Client, args Args) int {
	cfg := client.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := client.CheckRunning(ctx)
	if err != nil {
		if !args.Quiet {
			fmt.Printf("backend:  %s\n", cfg.BaseURL)
			fmt.Println("status:   unreachable")
			if api.IsNotRunning(err) {
				fmt.Println("hint:     is the Empath backend running?")
			}
		}
		return 1
	}

	if !args.Quiet {
		fmt.Printf("backend:  %s\n", cfg.BaseURL)
		fmt.Println("status:   ok")
	}
	return 0
}
