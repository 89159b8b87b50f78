package app

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/redditmodqueue/internal/config"
	"github.com/five82/redditmodqueue/internal/prefs"
	"github.com/five82/redditmodqueue/internal/reddit"
	"github.com/five82/redditmodqueue/internal/ui"
)

// Options configure a moderation session.
type Options struct {
	Subreddit string
	EnvFile   string // empty uses ./.env
	PrefsPath string // empty uses default ~/.config/redditmodqueue/prefs.toml

	// ClientOptions are passed to reddit.NewClient.
	ClientOptions []reddit.Option
}

// Run loads settings, fetches the mod queue and runs the browser until the
// user quits, a Gateway call fails, or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	settings, err := config.Load(opts.EnvFile)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if settings.LogFile != "" {
		f, err := tea.LogToFile(settings.LogFile, "redditmodqueue")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		// The TUI owns stderr.
		log.SetOutput(io.Discard)
	}
	if !settings.HasCredentials() {
		log.Printf("reddit credentials incomplete; login will likely fail")
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := reddit.NewClient(settings, opts.Subreddit, opts.ClientOptions...)
	if err != nil {
		return fmt.Errorf("init reddit client: %w", err)
	}

	// Initial fetch before the UI takes over the terminal.
	items, err := client.FetchQueue(ctx)
	if err != nil {
		return fmt.Errorf("fetch mod queue: %w", err)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Items:     items,
		ThemeName: userPrefs.Theme,
	})
}
