// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [ListsView] : Browse every list with task counts
//  2. [TasksView] : Tasks of the selected list, with status and priority edits
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the [Msg] union type.
// Every edit goes through the [tasks.Manager] and is saved right away. A failed save is shown in the status line and
// the program keeps running.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) plus s (cycle status), p (cycle priority) and
// x (delete task), with contextual help displayed via charmbracelet/bubbles/help.
package ui
