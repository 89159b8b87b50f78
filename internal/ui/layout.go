package ui

// Screen geometry. Item lines start at row contentRow, column contentCol;
// chromeRows rows (frame, title gap, footer) are never available to items.
const (
	contentRow = 2
	contentCol = 2
	chromeRows = 4

	// wrapMargin is subtracted from the terminal width to get the wrap width.
	wrapMargin = 4
)

// Confirmation dialog size.
const (
	dialogHeight = 3
	dialogWidth  = 120
)

// Footer and placeholder text.
const (
	emptyQueueText = "No items in mod queue."
	banPrompt      = "BANHAMMER?"
)
