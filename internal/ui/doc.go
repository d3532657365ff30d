// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing a Steam library:
//  1. [GameListView] : Browse the account's owned games, most played first
//  2. [AchievementListView] : Inspect per-game achievement unlocks
//  3. [SummaryView] : View the cross-game achievement summary
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All API calls run as [tea.Cmd] functions so the interface stays responsive
// while the request throttle paces upstream fetches.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, s, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
