package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	// Spacing units (based on 4px)
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px
	SpaceMD   = 3 // 12px
	SpaceLG   = 4 // 16px

	// Component dimensions
	MinPanelHeight = 8
	MinPanelWidth  = 20

	// Swatch cell dimensions (terminal cells)
	SwatchWidth  = 9
	SwatchHeight = 2
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	// Brand Colors
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	// Special Purpose Colors
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
)

// Base Styles - Foundation for all components
var (
	// Text Styles
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	// State Text Styles
	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	SurfaceStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(SpaceXS, SpaceSM)

	// Border Styles
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component Styles - Reusable component definitions
var (
	// Panel Styles
	PanelStyle = SurfaceStyle.Copy().
			Inherit(BorderStyle).
			Padding(SpaceSM-1, SpaceSM). // Account for border
			Margin(0)

	PanelFocusedStyle = PanelStyle.Copy().
				Inherit(BorderFocusStyle)

	// Header Styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	// Variant badge in the header (dark/light)
	VariantBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Background(ColorPrimary).
				Foreground(ColorBackground).
				Padding(0, SpaceXS)

	// Status Bar Styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Copy().
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.Copy().
				Background(ColorError).
				Foreground(ColorBackground)

	// List Item Styles
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceSM)

	ListItemSelectedStyle = ListItemStyle.Copy().
				Foreground(ColorPrimary).
				Bold(true)

	// Title Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(SpaceXS)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			MarginBottom(SpaceSM)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	padding := (height - contentHeight) / 2
	return lipgloss.NewStyle().
		PaddingTop(padding).
		Height(height).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
