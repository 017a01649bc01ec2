package preview

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themeweaver/internal/theme"
	"themeweaver/internal/tui/design"
	"themeweaver/pkg/logging"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

const statusTimeout = 3 * time.Second

// statusExpiredMsg clears a status message once its timer fires.
type statusExpiredMsg struct {
	id int
}

// logEntryMsg carries one forwarded log entry into the update loop.
type logEntryMsg struct {
	entry logging.LogEntry
}

// waitForLogEntry receives a single entry; Update re-arms it.
func waitForLogEntry(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}

// setStatus replaces the status line and arms its expiry timer. The id
// guard stops a stale timer from clearing a newer message.
func (m *Model) setStatus(text string, style lipgloss.Style) tea.Cmd {
	m.status = text
	m.statusStyle = style
	m.statusID++
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case logEntryMsg:
		var cmd tea.Cmd
		switch msg.entry.Level {
		case logging.LevelError:
			cmd = m.setStatus(fmt.Sprintf("%s: %s", msg.entry.Subsystem, msg.entry.Message), design.StatusBarErrorStyle)
		case logging.LevelWarn:
			cmd = m.setStatus(fmt.Sprintf("%s: %s", msg.entry.Subsystem, msg.entry.Message), design.StatusBarStyle)
		}
		return m, tea.Batch(cmd, waitForLogEntry(m.logCh))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "k", "up", "shift+tab":
		if len(m.entries) > 0 {
			m.rampIdx = (m.rampIdx - 1 + len(m.entries)) % len(m.entries)
			m.clampStep()
		}
		return m, nil

	case "j", "down", "tab":
		if len(m.entries) > 0 {
			m.rampIdx = (m.rampIdx + 1) % len(m.entries)
			m.clampStep()
		}
		return m, nil

	case "h", "left":
		if _, steps := m.selectedRamp(); len(steps) > 0 {
			m.stepIdx = (m.stepIdx - 1 + len(steps)) % len(steps)
		}
		return m, nil

	case "l", "right":
		if _, steps := m.selectedRamp(); len(steps) > 0 {
			m.stepIdx = (m.stepIdx + 1) % len(steps)
		}
		return m, nil

	case "c":
		hex := m.selectedHex()
		if hex == "" {
			return m, nil
		}
		if err := clipboardWriteAll(hex); err != nil {
			return m, m.setStatus("Copy failed: "+err.Error(), design.StatusBarErrorStyle)
		}
		return m, m.setStatus(fmt.Sprintf("Copied %s", hex), design.StatusBarSuccessStyle)

	case "d":
		next := theme.VariantLight
		if m.variant == theme.VariantLight {
			next = theme.VariantDark
		}
		if !m.theme.Metadata.Variants.Supports(next) {
			return m, m.setStatus(fmt.Sprintf("Theme does not support the %s variant", next), design.StatusBarErrorStyle)
		}
		m.variant = next
		design.Initialize(next == theme.VariantDark)
		return m, m.setStatus(fmt.Sprintf("Variant: %s", next), design.StatusBarStyle)

	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}
