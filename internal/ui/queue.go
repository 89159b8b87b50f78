package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/redditmodqueue/internal/reddit"
)

// queueLayout is the word-wrapped rendering of the whole queue as one flat
// line sequence. starts[i] and lengths[i] give item i's line range.
type queueLayout struct {
	lines   []string
	starts  []int
	lengths []int
}

// itemRange returns the [start, start+length) line range of item i.
func (l queueLayout) itemRange(i int) (start, length int) {
	if i < 0 || i >= len(l.starts) {
		return 0, 0
	}
	return l.starts[i], l.lengths[i]
}

// buildLayout wraps every item's formatted block to width columns.
func buildLayout(items []reddit.QueueItem, width int) queueLayout {
	layout := queueLayout{
		starts:  make([]int, 0, len(items)),
		lengths: make([]int, 0, len(items)),
	}
	for _, item := range items {
		wrapped := wrapText(formatItem(item, width), width)
		layout.starts = append(layout.starts, len(layout.lines))
		layout.lengths = append(layout.lengths, len(wrapped))
		layout.lines = append(layout.lines, wrapped...)
	}
	return layout
}

// formatItem renders an item as its display block: a rule as wide as the
// wrap width, the type, author and text label lines, the raw text, and a
// trailing blank line.
func formatItem(item reddit.QueueItem, width int) string {
	lines := []string{
		strings.Repeat("*", max(width, 1)),
		"Item Type: " + item.Kind.Label(),
		"Author: " + item.Author,
		"Text:",
		item.Text,
		"",
	}
	return strings.Join(lines, "\n")
}

// wrapText word-wraps each line of text to width cells. Words wider than
// width are broken. Blank lines are kept.
func wrapText(text string, width int) []string {
	width = max(width, 1)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = strings.TrimRight(paragraph, " ")
		if paragraph == "" {
			out = append(out, "")
			continue
		}
		for _, line := range strings.Split(ansi.Wrap(paragraph, width, ""), "\n") {
			line = strings.TrimRight(line, " ")
			out = append(out, ansi.Truncate(line, width, ""))
		}
	}
	return out
}

// adjustScroll returns the smallest change to offset that brings the line
// range [start, start+length) into a window of visible lines. The offset
// moves only when the range is above or below the window.
func adjustScroll(offset, start, length, visible int) int {
	switch {
	case start < offset:
		offset = start
	case start+length > offset+visible:
		offset = start + length - visible
	}
	return max(offset, 0)
}

// syncLayout rewraps the queue for the current width and moves the scroll
// offset so the selected item stays in view.
func (m *Model) syncLayout() {
	if len(m.queue) == 0 {
		m.layout = queueLayout{}
		m.scrollOffset = 0
		return
	}
	m.layout = buildLayout(m.queue, m.wrapWidth())
	start, length := m.layout.itemRange(m.selected)
	m.scrollOffset = adjustScroll(m.scrollOffset, start, length, m.visibleLines())
}

func (m Model) wrapWidth() int {
	return max(m.width-wrapMargin, 1)
}

func (m Model) visibleLines() int {
	return max(m.height-chromeRows, 0)
}

// selectedItem returns the item under the cursor, or nil for an empty queue.
func (m Model) selectedItem() *reddit.QueueItem {
	if m.selected < 0 || m.selected >= len(m.queue) {
		return nil
	}
	item := m.queue[m.selected]
	return &item
}

// counter renders the "<selection+1>/<len>" footer counter.
func (m Model) counter() string {
	if len(m.queue) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.selected+1, len(m.queue))
}

func (m Model) footerText() string {
	if m.pending != "" {
		return m.pending
	}
	return m.keys.legend() + "; " + m.counter()
}

// renderScreen draws the full frame: bordered box with the title, the visible
// window of queue lines and the footer on the bottom border row.
func (m Model) renderScreen() []string {
	w, h := m.width, m.height
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if w < 4 || h < 3 {
		return []string{ansi.Truncate(m.footerText(), max(w, 0), "")}
	}

	innerWidth := w - 2
	rows := make([]string, h)
	rows[0] = m.renderTopBorder(innerWidth, styles, bg)

	visible := m.visibleLines()
	for r := 1; r < h-1; r++ {
		text, style := "", styles.Text
		idx := r - contentRow
		switch {
		case len(m.queue) == 0:
			if r == contentRow {
				text = emptyQueueText
			}
		case idx >= 0 && idx < visible:
			lineNo := m.scrollOffset + idx
			if lineNo < len(m.layout.lines) {
				text = m.layout.lines[lineNo]
				start, length := m.layout.itemRange(m.selected)
				if lineNo >= start && lineNo < start+length {
					style = styles.Highlight
				}
			}
		}
		rows[r] = bg.Render("│", styles.Border) +
			bg.Spaces(contentCol-1) +
			bg.FillLine(text, style, innerWidth-(contentCol-1)-1) +
			bg.Spaces(1) +
			bg.Render("│", styles.Border)
	}

	footer := ansi.Truncate(m.footerText(), innerWidth, "")
	footerStyle := styles.Footer
	if m.pending != "" {
		footerStyle = styles.PendingFooter
	}
	rows[h-1] = bg.Render("└", styles.Border) +
		footerStyle.Render(footer) +
		bg.Render(strings.Repeat("─", innerWidth-ansi.StringWidth(footer)), styles.Border) +
		bg.Render("┘", styles.Border)

	return rows
}

func (m Model) renderTopBorder(innerWidth int, styles Styles, bg BgStyle) string {
	title := ansi.Truncate(fmt.Sprintf("Mod queue for r/%s", m.subreddit), max(innerWidth-2, 0), "")
	titleLen := ansi.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	return bg.Render("┌", styles.Border) +
		bg.Render(strings.Repeat("─", leftPad), styles.Border) +
		bg.Render(" "+title+" ", styles.Title) +
		bg.Render(strings.Repeat("─", rightPad), styles.Border) +
		bg.Render("┐", styles.Border)
}

// overlay draws box centered over rows.
func overlay(rows []string, box string, width int) []string {
	lines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	x := max((width-boxWidth)/2, 0)
	y := max((len(rows)-len(lines))/2, 0)
	for i, l := range lines {
		r := y + i
		if r >= len(rows) {
			break
		}
		rows[r] = ansi.Cut(rows[r], 0, x) + l + ansi.Cut(rows[r], x+boxWidth, width)
	}
	return rows
}
