// Package tui provides the terminal frontend for algorithm playback.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: main interactive application with algorithm selection
//   - [PlayModel]: one playback screen, pulling a single event per tick
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	N     - Single step while paused
//	+/-   - Speed up / slow down
//	R     - Restart with the same input
//	T     - Cycle color themes
//	G     - Toggle the color legend
//	?     - Show help overlay
//	Q     - Quit
package tui
