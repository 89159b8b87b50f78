package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks a yes/no question and closes on the first keypress.
// Only the Confirm binding answers yes: the closed modal is then returned
// with confirmed set, and the caller handles onConfirm in the same update.
type confirmModal struct {
	message   string
	onConfirm tea.Msg
	confirmed bool
}

func newConfirmModal(message string, onConfirm tea.Msg) *confirmModal {
	return &confirmModal{message: message, onConfirm: onConfirm}
}

func (c *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return nil, tea.Quit, true
	}
	if key.Matches(keyMsg, keys.Confirm) {
		c.confirmed = true
		return c, nil, true
	}
	return nil, nil, true
}

// View renders the dialog box, dialogHeight rows by dialogWidth columns,
// shrunk to fit the viewport.
func (c *confirmModal) View(theme Theme, width, height int) string {
	w := min(dialogWidth, width)
	if w < 2 || height < dialogHeight {
		return ""
	}
	styles := theme.Styles()
	bg := NewBgStyle(theme.Background)
	inner := w - 2

	text := c.message + " Y/n"
	left := (w-ansi.StringWidth(c.message))/2 - 1
	if left < 0 || left >= inner {
		left = 0
	}
	body := bg.Spaces(left) + bg.FillLine(text, styles.DialogText, inner-left)

	top := bg.Render("┌"+strings.Repeat("─", inner)+"┐", styles.DialogBorder)
	mid := bg.Render("│", styles.DialogBorder) + body + bg.Render("│", styles.DialogBorder)
	bottom := bg.Render("└"+strings.Repeat("─", inner)+"┘", styles.DialogBorder)
	return top + "\n" + mid + "\n" + bottom
}
