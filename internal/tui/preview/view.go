package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"themeweaver/internal/color"
	"themeweaver/internal/theme"
	"themeweaver/internal/tui/design"
)

var (
	swatchBaseStyle = lipgloss.NewStyle().
			Width(design.SwatchWidth).
			Height(design.SwatchHeight).
			Align(lipgloss.Center)

	// Hidden border keeps unselected cells the same size as the
	// selected one, so the cursor never reflows the grid.
	swatchFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.HiddenBorder())

	swatchCursorStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(design.ColorBorderFocus)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return design.TextStyle.Render("Initializing...")
	}
	if m.width < 2*design.MinPanelWidth {
		return design.TextStyle.Render("Terminal too narrow for the previewer.")
	}

	header := m.renderHeader()
	list := m.renderRampList()
	grid := m.renderSwatchPanel(m.width - lipgloss.Width(list))
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, grid)
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderHeader() string {
	title := m.theme.Metadata.DisplayName
	if title == "" {
		title = m.theme.Name
	}
	badge := design.VariantBadgeStyle.Render(m.variant)
	barWidth := m.width - lipgloss.Width(badge)
	label := runewidth.Truncate(title, barWidth-2*design.SpaceSM, "…")
	bar := design.HeaderStyle.Copy().Width(barWidth).Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Top, bar, badge)
}

func (m Model) renderRampList() string {
	rows := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		if i == m.rampIdx {
			rows = append(rows, design.ListItemSelectedStyle.Render("▶ "+e.Class))
		} else {
			rows = append(rows, design.ListItemStyle.Render("  "+e.Class))
		}
	}
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return design.PanelStyle.Copy().Render(content)
}

func (m Model) renderSwatchPanel(avail int) string {
	entry := m.selectedEntry()
	ramp, steps := m.selectedRamp()

	style := design.PanelFocusedStyle.Copy()
	inner := avail - style.GetHorizontalFrameSize()
	if inner < design.SwatchWidth+2 {
		inner = design.SwatchWidth + 2
	}

	title := design.TitleStyle.Render(entry.Class)
	subtitle := design.SubtitleStyle.Render(fmt.Sprintf("%s palette, %d steps", entry.Palette, len(steps)))

	var grid string
	if len(steps) == 0 {
		grid = design.DimStyle.Render("(empty palette)")
	} else {
		grid = m.renderGrid(ramp, steps, inner)
	}

	sections := []string{title, subtitle, grid}
	if detail := m.renderDetail(steps); detail != "" {
		sections = append(sections, detail)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderGrid(ramp theme.Ramp, steps []string, inner int) string {
	cellWidth := design.SwatchWidth + 2 // border columns on both cell kinds
	cols := inner / cellWidth
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(steps); start += cols {
		end := start + cols
		if end > len(steps) {
			end = len(steps)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, renderSwatch(steps[i], ramp[steps[i]], i == m.stepIdx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSwatch paints one ramp step as a colored cell with readable
// label text.
func renderSwatch(step, hex string, selected bool) string {
	fg := "#FFFFFF"
	if c, err := color.ParseHex(hex); err == nil {
		fg = swatchForeground(c)
	}
	cell := swatchBaseStyle.Copy().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(step + "\n" + hex)
	if selected {
		return swatchCursorStyle.Render(cell)
	}
	return swatchFrameStyle.Render(cell)
}

// swatchForeground picks black or white label text, whichever
// contrasts more with the swatch background.
func swatchForeground(c colorful.Color) string {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{R: 0, G: 0, B: 0}
	if color.ContrastRatio(c, white) >= color.ContrastRatio(c, black) {
		return "#FFFFFF"
	}
	return "#000000"
}

func (m Model) renderDetail(steps []string) string {
	hex := m.selectedHex()
	if hex == "" {
		return ""
	}
	lch, err := color.ParseHexLCH(hex)
	if err != nil {
		return design.TextErrorStyle.Render(fmt.Sprintf("%s: %v", hex, err))
	}
	return design.TextSecondaryStyle.Render(fmt.Sprintf(
		"%s %s  L %.1f  C %.1f  H %.1f",
		steps[m.stepIdx], hex, lch.L, lch.C, lch.H,
	))
}

func (m Model) renderStatusBar() string {
	if m.status != "" {
		text := runewidth.Truncate(m.status, m.width-2*design.SpaceSM, "…")
		return m.statusStyle.Copy().Width(m.width).Render(text)
	}
	return design.StatusBarStyle.Copy().Width(m.width).Render(m.help.View(m.keys))
}
