// Package ui provides the terminal moderation-queue browser.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds the queue snapshot, the
// selection cursor and the scroll offset; every message that can change the
// queue, the selection or the terminal size rewraps the queue and moves the
// scroll offset so the selected item stays visible. View only draws the
// cached layout.
//
// # Package Structure
//
//   - app.go: Model, message dispatch, Gateway commands and Run
//   - queue.go: item formatting, word wrap, scroll rule and frame rendering
//   - modal.go: the ban confirmation dialog
//   - keys.go: key bindings and the footer legend
//   - theme.go, style_helpers.go: colors and background-safe rendering
//
// # Event Flow
//
//  1. The queue is fetched once before Run starts the program.
//  2. A keypress either moves the selection or starts one Gateway call.
//  3. While a call is in flight the footer shows what it is doing and every
//     key except quit is ignored.
//  4. Mutations are followed by a full reload; the selection resets to 0.
//  5. A Gateway error is stored in Model.Err and quits the program.
//
// # Key Bindings
//
//   - q or Ctrl+C: Exit
//   - a: Approve the selected item
//   - d: Remove the selected item
//   - b: Ban the author and remove the item (asks for Y)
//   - r: Reload the queue
//   - Up/Down: Move the selection
package ui
