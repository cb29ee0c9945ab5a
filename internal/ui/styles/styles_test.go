package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGradient_PreservesText(t *testing.T) {
	tests := []string{"", "a", "Rebind", "héllo wörld", "👍🏽 ok"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, text, ansi.Strip(ApplyGradient(text, "#000000", "#ffffff")))
			assert.Equal(t, text, ansi.Strip(ApplyBoldGradient(text, "#000000", "#ffffff")))
		})
	}
}

func TestBlend(t *testing.T) {
	colors := blend(5, "#ff0000", "#0000ff")
	require.Len(t, colors, 5)
	assert.NotEqual(t, colors[0].Hex(), colors[4].Hex())
	assert.Equal(t, colors[0].Hex(), blend(3, "#ff0000", "#0000ff")[0].Hex())

	assert.Len(t, blend(1, "#ff0000", "#0000ff"), 1)
}

func TestToColorful_AnsiFallback(t *testing.T) {
	assert.Equal(t, fallbackColor, toColorful(lipgloss.Color("240")))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Bindings", ansi.Strip(Title("Bindings")))
}

func TestPanelStyle(t *testing.T) {
	out := PanelStyle(true).Render("x")
	assert.True(t, strings.Contains(ansi.Strip(out), "╭"))
	assert.NotEqual(t, PanelStyle(true).GetBorderTopForeground(), PanelStyle(false).GetBorderTopForeground())
}

func TestThemeStylesCached(t *testing.T) {
	assert.Same(t, T().S(), T().S())
}
