// Package preview is the interactive swatch browser: a bubbletea
// program that walks the color ramps of a loaded theme and renders
// every step as a colored swatch cell.
package preview

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themeweaver/internal/theme"
	"themeweaver/internal/tui/design"
	"themeweaver/pkg/logging"
)

// Entry is one row of the ramp list: a color class and the palette it
// resolves to through the theme's class table.
type Entry struct {
	Class   string
	Palette string
}

// classOrder fixes the ramp list order. Classes a hand-edited
// mappings.yaml adds beyond these follow alphabetically.
var classOrder = []string{
	"Primary",
	"Secondary",
	"Error",
	"Success",
	"Warning",
	"GroupDark",
	"GroupLight",
	"Syntax",
	"Logos",
}

// Model is the bubbletea model for the previewer.
type Model struct {
	theme   *theme.Theme
	variant string
	entries []Entry
	rampIdx int
	stepIdx int

	width    int
	height   int
	ready    bool
	quitting bool

	status      string
	statusStyle lipgloss.Style
	statusID    int

	keys KeyMap
	help help.Model

	logCh <-chan logging.LogEntry
}

// New builds a previewer for the given theme, starting in the given
// variant. A nil log channel disables log forwarding to the status bar.
func New(t *theme.Theme, variant string, logCh <-chan logging.LogEntry) Model {
	design.Initialize(variant == theme.VariantDark)
	return Model{
		theme:   t,
		variant: variant,
		entries: buildEntries(t),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logCh:   logCh,
	}
}

// NewProgram wraps the previewer in a bubbletea program on the
// alternate screen.
func NewProgram(t *theme.Theme, variant string, logCh <-chan logging.LogEntry) *tea.Program {
	return tea.NewProgram(New(t, variant, logCh), tea.WithAltScreen())
}

func buildEntries(t *theme.Theme) []Entry {
	classes := t.Mappings.ColorClasses
	if len(classes) == 0 {
		// No class table; list the palettes directly.
		var out []Entry
		for _, name := range t.Colors.Palettes() {
			out = append(out, Entry{Class: name, Palette: name})
		}
		return out
	}
	seen := make(map[string]bool, len(classOrder))
	var out []Entry
	for _, class := range classOrder {
		if palette, ok := classes[class]; ok {
			out = append(out, Entry{Class: class, Palette: palette})
			seen[class] = true
		}
	}
	var rest []string
	for class := range classes {
		if !seen[class] {
			rest = append(rest, class)
		}
	}
	sort.Strings(rest)
	for _, class := range rest {
		out = append(out, Entry{Class: class, Palette: classes[class]})
	}
	return out
}

func (m Model) Init() tea.Cmd {
	if m.logCh != nil {
		return waitForLogEntry(m.logCh)
	}
	return nil
}

func (m Model) selectedEntry() Entry {
	if len(m.entries) == 0 {
		return Entry{}
	}
	return m.entries[m.rampIdx]
}

// selectedRamp returns the ramp behind the selected entry along with
// its ordered step keys.
func (m Model) selectedRamp() (theme.Ramp, []string) {
	ramp := m.theme.Colors[m.selectedEntry().Palette]
	return ramp, ramp.Steps()
}

// selectedHex returns the hex of the selected swatch, or "".
func (m Model) selectedHex() string {
	ramp, steps := m.selectedRamp()
	if len(steps) == 0 || m.stepIdx >= len(steps) {
		return ""
	}
	return ramp[steps[m.stepIdx]]
}

// clampStep keeps the step cursor inside the selected ramp after a
// ramp switch; ramps differ in length.
func (m *Model) clampStep() {
	_, steps := m.selectedRamp()
	if len(steps) == 0 {
		m.stepIdx = 0
		return
	}
	if m.stepIdx >= len(steps) {
		m.stepIdx = len(steps) - 1
	}
}
