package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MarkMcCaskey/rebind/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

var (
	SizeLarge = SizeConfig{WidthPct: 80, HeightPct: 80}
	SizeAuto  = SizeConfig{}
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

// ContentSize returns the space left for content inside a bordered popup.
func ContentSize(screenW, screenH int, size SizeConfig) (width, height int) {
	w, h := calculateDimensions("", screenW, screenH, size)
	// border and padding
	return max(w-6, 0), max(h-4, 0)
}

// Center places pre-rendered content in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, content)
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = lipgloss.Width(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4
	height = min(height, screenH-4)

	return width, height
}
