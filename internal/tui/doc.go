// Package tui provides the terminal user interface for pushit.
//
// It handles:
//   - Interactive prompts (bubbletea text input, survey confirmation,
//     and a plain line reader when stdin is not a terminal)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and step markers (using lipgloss)
package tui
