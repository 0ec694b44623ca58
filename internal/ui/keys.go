package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View switching
	ViewLogs key.Binding

	// Catalog actions
	Filter     key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	SortRegion key.Binding
	SortQuad   key.Binding
	SortSize   key.Binding
	SortDate   key.Binding
	Export     key.Binding
	ExportMore key.Binding
	ShowURL    key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / clear"),
		),

		ViewLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Activity log"),
		),

		// Catalog actions
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter region or quadkey"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Toggle row"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle all visible"),
		),
		SortRegion: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Sort by region"),
		),
		SortQuad: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sort by quadkey"),
		),
		SortSize: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sort by size"),
		),
		SortDate: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Sort by date"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export selected"),
		),
		ExportMore: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Export dialog"),
		),
		ShowURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Show link"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.HalfPageDown, k.HalfPageUp, k.PageDown, k.PageUp},
		{k.Filter, k.Toggle, k.ToggleAll, k.ShowURL},
		{k.SortRegion, k.SortQuad, k.SortSize, k.SortDate},
		{k.Export, k.ExportMore, k.ViewLogs},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
