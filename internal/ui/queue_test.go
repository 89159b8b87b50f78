package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/redditmodqueue/internal/reddit"
)

func TestFormatItem(t *testing.T) {
	post := formatItem(reddit.QueueItem{Kind: reddit.KindPost, Author: "alice", Text: "Hello"}, 20)
	lines := strings.Split(post, "\n")
	want := []string{
		strings.Repeat("*", 20),
		"Item Type: POST",
		"Author: alice",
		"Text:",
		"Hello",
		"",
	}
	if len(lines) != len(want) {
		t.Fatalf("post lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("post line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	comment := formatItem(reddit.QueueItem{Kind: reddit.KindComment, Author: "bob", Text: "World"}, 20)
	if !strings.Contains(comment, "Item Type: COMMENT") || !strings.Contains(comment, "World") {
		t.Fatalf("comment block = %q", comment)
	}
}

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"words", "one two three", 7, []string{"one two", "three"}},
		{"blank lines kept", "a\n\nb", 10, []string{"a", "", "b"}},
		{"trailing newline", "a\n", 10, []string{"a", ""}},
		{"zero width floors at one", "ab", 0, []string{"a", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapText(tc.text, tc.width)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Fatalf("wrapText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapText_BreaksLongWords(t *testing.T) {
	got := wrapText("abcdefghij", 4)
	if strings.Join(got, "") != "abcdefghij" {
		t.Fatalf("wrapText lost text: %q", got)
	}
	for _, line := range got {
		if ansi.StringWidth(line) > 4 {
			t.Fatalf("line %q wider than 4", line)
		}
	}
}

func TestBuildLayout_RecordsItemRanges(t *testing.T) {
	layout := buildLayout(sampleItems(), 40)
	if len(layout.starts) != 2 {
		t.Fatalf("starts = %v, want 2 entries", layout.starts)
	}
	start, length := layout.itemRange(1)
	if start != 6 || length != 6 {
		t.Fatalf("itemRange(1) = (%d, %d), want (6, 6)", start, length)
	}
	if len(layout.lines) != 12 {
		t.Fatalf("lines = %d, want 12", len(layout.lines))
	}
	if start, length := layout.itemRange(5); start != 0 || length != 0 {
		t.Fatalf("itemRange out of range = (%d, %d), want (0, 0)", start, length)
	}
}

func TestAdjustScroll(t *testing.T) {
	cases := []struct {
		name                           string
		offset, start, length, visible int
		want                           int
	}{
		{"in view", 0, 2, 3, 10, 0},
		{"above window", 5, 2, 3, 10, 2},
		{"below window", 0, 8, 4, 10, 2},
		{"exactly fits at bottom", 0, 6, 4, 10, 0},
		{"taller than window shows bottom", 0, 0, 15, 10, 5},
		{"no room", 0, 3, 2, 0, 5},
		{"clamped", 0, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := adjustScroll(tc.offset, tc.start, tc.length, tc.visible); got != tc.want {
				t.Fatalf("adjustScroll(%d, %d, %d, %d) = %d, want %d",
					tc.offset, tc.start, tc.length, tc.visible, got, tc.want)
			}
		})
	}
}

func TestKeyLegend(t *testing.T) {
	want := "'q': Exit | 'a': Approve | 'd': Delete, 'b': Ban | 'r': Reload"
	if got := DefaultKeyMap().legend(); got != want {
		t.Fatalf("legend = %q, want %q", got, want)
	}
}

func TestConfirmModal_ViewShrinksToViewport(t *testing.T) {
	modal := newConfirmModal(banPrompt, nil)

	view := stripANSI(modal.View(GetTheme("Nightfox"), 40, 10))
	lines := strings.Split(view, "\n")
	if len(lines) != dialogHeight {
		t.Fatalf("dialog rows = %d, want %d", len(lines), dialogHeight)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("dialog row %d width = %d, want 40", i, w)
		}
	}
	if !strings.Contains(lines[1], "BANHAMMER? Y/n") {
		t.Fatalf("dialog body = %q", lines[1])
	}

	wide := stripANSI(modal.View(GetTheme("Nightfox"), 200, 50))
	if w := ansi.StringWidth(strings.Split(wide, "\n")[0]); w != dialogWidth {
		t.Fatalf("dialog width = %d, want %d", w, dialogWidth)
	}
}

func TestGetTheme_KnownNames(t *testing.T) {
	for _, name := range []string{"Nightfox", "Kanagawa", "Slate"} {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}
