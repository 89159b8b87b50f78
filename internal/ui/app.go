package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/redditmodqueue/internal/reddit"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    reddit.Moderator
	Items     []reddit.QueueItem // initial queue, fetched before the UI starts
	ThemeName string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	gateway   reddit.Moderator
	subreddit string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Queue state
	queue        []reddit.QueueItem
	selected     int
	scrollOffset int
	layout       queueLayout

	// pending is the footer message of the in-flight Gateway call.
	pending string

	// Ban confirmation
	modal Modal

	// Err is the error that ended the session, if any.
	Err error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	var subreddit string
	if opts.Client != nil {
		subreddit = opts.Client.Subreddit()
	}

	return Model{
		ctx:       ctx,
		gateway:   opts.Client,
		subreddit: subreddit,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		queue:     opts.Items,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.syncLayout()
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.syncLayout()
		return m, nil

	case queueLoadedMsg:
		m.queue = msg.items
		m.selected = 0
		m.scrollOffset = 0
		m.pending = ""
		m.syncLayout()
		return m, nil

	case errMsg:
		log.Printf("moderation call failed: %v", msg.err)
		m.Err = msg.err
		m.pending = ""
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	rows := m.renderScreen()
	if m.modal != nil {
		rows = overlay(rows, m.modal.View(m.theme, m.width, m.height), m.width)
	}
	return strings.Join(rows, "\n")
}

// handleKey processes one keypress.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if !closed {
			m.modal = modal
			return m, cmd
		}
		m.modal = nil
		if c, ok := modal.(*confirmModal); ok && c.confirmed {
			return m.handleConfirmed(c.onConfirm)
		}
		return m, cmd
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// One Gateway call at a time.
	if m.pending != "" {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.queue)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.pending = "Reloading mod queue..."
		return m, m.fetchQueueCmd()
	}

	item := m.selectedItem()
	if item == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Delete):
		m.pending = "Deleting comment/post from " + item.Author
		return m, m.mutateCmd(func(ctx context.Context) error {
			if err := m.gateway.Remove(ctx, *item); err != nil {
				return fmt.Errorf("remove %s: %w", item.Fullname, err)
			}
			return nil
		})

	case key.Matches(msg, m.keys.Approve):
		m.pending = "Approving comment/post from " + item.Author
		return m, m.mutateCmd(func(ctx context.Context) error {
			if err := m.gateway.Approve(ctx, *item); err != nil {
				return fmt.Errorf("approve %s: %w", item.Fullname, err)
			}
			return nil
		})

	case key.Matches(msg, m.keys.Ban):
		m.modal = newConfirmModal(banPrompt, banConfirmedMsg{item: *item})
		return m, nil
	}

	return m, nil
}

// handleConfirmed starts the action a confirmation dialog approved. The
// pending message is set before the dialog's update returns.
func (m Model) handleConfirmed(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case banConfirmedMsg:
		m.pending = fmt.Sprintf("Banning %s and removing history", msg.item.Author)
		return m, m.banCmd(msg.item)
	}
	return m, nil
}

// Messages

type queueLoadedMsg struct {
	items []reddit.QueueItem
}

type banConfirmedMsg struct {
	item reddit.QueueItem
}

type errMsg struct {
	err error
}

// Commands

func (m Model) fetchQueueCmd() tea.Cmd {
	ctx, gateway := m.ctx, m.gateway
	return func() tea.Msg {
		items, err := gateway.FetchQueue(ctx)
		if err != nil {
			return errMsg{fmt.Errorf("fetch mod queue: %w", err)}
		}
		return queueLoadedMsg{items: items}
	}
}

// mutateCmd runs action and then re-fetches the queue.
func (m Model) mutateCmd(action func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	reload := m.fetchQueueCmd()
	return func() tea.Msg {
		if err := action(ctx); err != nil {
			return errMsg{err}
		}
		return reload()
	}
}

// banCmd bans the item's author, removes the item and reloads.
func (m Model) banCmd(item reddit.QueueItem) tea.Cmd {
	gateway := m.gateway
	return m.mutateCmd(func(ctx context.Context) error {
		if err := gateway.Ban(ctx, item.Author); err != nil {
			return fmt.Errorf("ban %s: %w", item.Author, err)
		}
		if err := gateway.Remove(ctx, item); err != nil {
			return fmt.Errorf("remove %s: %w", item.Fullname, err)
		}
		return nil
	})
}

// Run starts the Bubble Tea program and returns the error that ended the
// session, if any.
func Run(opts Options) error {
	m := New(opts)
	ctx := m.ctx

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err != nil {
		return fm.Err
	}
	return nil
}
