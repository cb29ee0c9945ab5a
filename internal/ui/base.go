// Package ui provides shared building blocks for the terminal views.
package ui

// PanelOverhead is the vertical space taken by a bordered panel with a
// header line and separator.
const PanelOverhead = 4

// Base stores the size a view was given. Views embed it and read the
// dimensions back when rendering.
type Base struct {
	width, height int
}

func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Size() (width, height int) { return b.width, b.height }
func (b Base) Width() int                 { return b.width }
func (b Base) Height() int                { return b.height }

// ListHeight returns the rows left for list content inside a panel.
func (b Base) ListHeight() int {
	return max(b.height-PanelOverhead, 0)
}
