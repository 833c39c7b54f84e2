// Package ui provides the terminal interface for the dog gallery.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the transient screen state
// (terminal size, selection, scroll offset, theme, help overlay) while the
// gallery lifecycle itself lives in state.Store. Every frame is produced by
// Render, a pure function of the store snapshot and RenderOptions.
//
// # Package Structure
//
//   - app.go: Model, message handling, fetch and clipboard commands, Run
//   - render.go: Render and the header, loading, error, grid and control sections
//   - layout.go: breakpoints, tile geometry and scroll clamping
//   - keys.go: key bindings and their help text
//   - help.go: the glamour-rendered help overlay
//   - theme.go: color palettes and lipgloss styles
//
// # Event Flow
//
//  1. Init calls Store.Begin and starts the spinner and the first fetch
//  2. The fetch runs as a tea.Cmd and returns an imagesLoadedMsg
//  3. Update hands the result to Store.Resolve, which drops stale generations
//  4. Pressing r in the Ready or Failed state starts a new generation
//  5. Quitting closes the store so late results are discarded
//
// # Key Bindings
//
//   - r: Load new dogs
//   - arrows or h/j/k/l: Move the selection
//   - g/G: First or last dog
//   - y: Copy the selected image URL
//   - c: Cycle grid columns (auto, 1, 2, 3)
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Quit
package ui
