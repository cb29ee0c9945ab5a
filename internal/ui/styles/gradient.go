package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Used for colors that are not #rrggbb, such as ANSI palette indices.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient colors text from one color to another, one grapheme at a
// time.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle(), from, to)
}

// ApplyBoldGradient is ApplyGradient in bold.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle().Bold(true), from, to)
}

func gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	var clusters []string
	for g := uniseg.NewGraphemes(text); g.Next(); {
		clusters = append(clusters, g.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blend(len(clusters), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

// blend returns n colors evenly spaced in HCL between from and to.
func blend(n int, from, to lipgloss.Color) []colorful.Color {
	start, end := toColorful(from), toColorful(to)
	if n < 2 {
		return []colorful.Color{start}
	}

	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
