// empath - a terminal companion for heavy days.
//
// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/empathapp/empath-tui/internal/api"
	"github.com/empathapp/empath-tui/internal/cli"
	"github.com/empathapp/empath-tui/internal/config"
	"github.com/empathapp/empath-tui/internal/logging"
	"github.com/empathapp/empath-tui/internal/session"
	"github.com/empathapp/empath-tui/internal/store"
	"github.com/empathapp/empath-tui/internal/ui/chat"
	"github.com/empathapp/empath-tui/internal/ui/landing"
	"github.com/empathapp/empath-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	applyArgOverrides(cfg, args)
	config.SetGlobal(cfg)

	// Logging is best effort; the app works without it.
	if dataDir, err := cfg.DataDir(); err == nil {
		if logging.Init(dataDir) == nil {
			defer logging.Close()
		}
	}

	switch cmd {
	case cli.CmdTUI:
		os.Exit(runTUI(cfg, viewLanding))
	case cli.CmdChat:
		os.Exit(runTUI(cfg, viewChat))
	case cli.CmdAsk:
		os.Exit(cli.RunAsk(newClient(cfg), args))
	case cli.CmdRepl:
		os.Exit(cli.RunRepl(newClient(cfg), newState(cfg), args))
	case cli.CmdStatus:
		os.Exit(cli.RunStatus(newClient(cfg), args))
	case cli.CmdSessions:
		os.Exit(cli.RunSessions(newState(cfg), args))
	case cli.CmdVersion:
		fmt.Println(cli.VersionString())
	case cli.CmdHelp:
		fmt.Println(cli.Usage())
	}
}

// applyArgOverrides lets command-line flags win over file and env config.
func applyArgOverrides(cfg *config.Config, args cli.Args) {
	if args.Endpoint != "" {
		cfg.Endpoint.BaseURL = args.Endpoint
	}
	if args.Country != "" {
		cfg.User.CountryCode = args.Country
	}
	if args.UserID != "" {
		cfg.User.ID = args.UserID
	}
	cfg.Validate()
}

func newClient(cfg *config.Config) *api.Client {
	return api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:     cfg.Endpoint.BaseURL,
		Timeout:     time.Duration(cfg.Endpoint.TimeoutSecs) * time.Second,
		UserID:      cfg.User.ID,
		CountryCode: cfg.User.CountryCode,
	})
}

func newState(cfg *config.Config) *store.State {
	dataDir, err := cfg.DataDir()
	if err != nil {
		st, serr := store.NewStore()
		if serr != nil {
			// Last resort: an unsaved in-memory session is better than none.
			return store.NewState(store.NewStoreWithPath(filepath.Join(os.TempDir(), store.TranscriptFile)))
		}
		return store.NewState(st)
	}
	return store.NewState(store.NewStoreWithPath(filepath.Join(dataDir, store.TranscriptFile)))
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// view identifies the active top-level view.
type view int

const (
	viewLanding view = iota
	viewChat
)

// appModel routes messages between the landing and chat views. Both views
// stay alive for the whole run: a reply completing while the user is on
// the landing view still lands in its conversation.
type appModel struct {
	active  view
	landing landing.Model
	chat    chat.Model
	session *session.Manager

	width  int
	height int
}

func newAppModel(cfg *config.Config, initial view) appModel {
	theme := styles.NewTheme()
	st := newState(cfg)
	client := newClient(cfg)

	sess := session.NewManager(session.Config{
		AutoSaveInterval: time.Duration(cfg.UI.AutoSaveSecs) * time.Second,
	})
	sess.SetAutoSaveCallback(st.Save)

	return appModel{
		active:  initial,
		landing: landing.New(theme, cfg),
		chat:    chat.New(theme, cfg, st, client, sess),
		session: sess,
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{session.TickCmd()}
	if m.active == viewLanding {
		cmds = append(cmds, m.landing.Init())
	} else {
		cmds = append(cmds, m.chat.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.landing.SetSize(msg.Width, msg.Height)
		m.chat.SetSize(msg.Width, msg.Height)
		return m, nil

	case session.TickMsg:
		return m, m.session.HandleTick()

	case landing.StartChatMsg:
		m.active = viewChat
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(cmd, m.chat.Init())

	case chat.BackToLandingMsg:
		m.active = viewLanding
		return m, m.landing.Init()

	case chat.SendCompleteMsg:
		// Always routed to chat, wherever the user is now.
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.session.RecordActivity()
	}

	var cmd tea.Cmd
	if m.active == viewLanding {
		m.landing, cmd = m.landing.Update(msg)
	} else {
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	if m.active == viewLanding {
		return m.landing.View()
	}
	return m.chat.View()
}

// =============================================================================
// TUI STARTUP
// =============================================================================

func runTUI(cfg *config.Config, initial view) int {
	app := newAppModel(cfg, initial)

	// Live-reload config edits while the TUI runs.
	watcher, werr := config.NewWatcher(func(updated *config.Config) {
		config.SetGlobal(updated)
	})
	if werr == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if fm, ok := finalModel.(appModel); ok {
		fm.chat.Shutdown()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "empath: %v\n", err)
		return 1
	}
	return 0
}
