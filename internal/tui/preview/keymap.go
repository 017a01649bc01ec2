package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the previewer and feeds the help
// bubble.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextRamp key.Binding
	PrevRamp key.Binding
	Copy     key.Binding
	Variant  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous ramp"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next ramp"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous step"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next step"),
		),
		NextRamp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next ramp"),
		),
		PrevRamp: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous ramp"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		Variant: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dark/light"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FullHelp returns bindings for the expanded help view, one inner
// slice per column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextRamp, k.PrevRamp, k.Copy},
		{k.Variant, k.Help, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Variant, k.Help, k.Quit}
}
