package keymap

// MotionKind identifies the shape of a mouse motion.
type MotionKind uint8

const (
	// MotionRelative is a raw pointer delta. Axis settings never touch it.
	MotionRelative MotionKind = iota
	// MotionAbsolute is a cursor position inside the viewport.
	MotionAbsolute
	// MotionScroll is a wheel delta.
	MotionScroll
)

// String returns a string representation of the motion kind.
func (k MotionKind) String() string {
	switch k {
	case MotionAbsolute:
		return "cursor"
	case MotionScroll:
		return "scroll"
	default:
		return "relative"
	}
}

// Motion is a two-axis mouse movement. X and Y hold a position for
// MotionAbsolute and a delta otherwise.
type Motion struct {
	Kind MotionKind
	X, Y float64
}

// AbsoluteCursor returns a cursor position motion.
func AbsoluteCursor(x, y float64) Motion {
	return Motion{Kind: MotionAbsolute, X: x, Y: y}
}

// Scroll returns a wheel motion.
func Scroll(dx, dy float64) Motion {
	return Motion{Kind: MotionScroll, X: dx, Y: dy}
}

// Relative returns a pointer delta motion.
func Relative(dx, dy float64) Motion {
	return Motion{Kind: MotionRelative, X: dx, Y: dy}
}

// Size is a viewport size in the same units as cursor positions.
type Size struct {
	Width  float64
	Height float64
}

// AxisConfig holds per-axis inversion flags and the viewport size used to
// mirror cursor positions.
type AxisConfig struct {
	InvertMotionX bool
	InvertMotionY bool
	InvertScrollX bool
	InvertScrollY bool
	Size          Size
}

// Transform applies the inversion flags to m.
//
// Inverted cursor coordinates are mirrored across the viewport
// (Width-x, Height-y) and are not clamped, so a position outside the
// viewport stays outside it. Inverted scroll deltas are negated.
// Relative motion is returned unchanged.
func (c AxisConfig) Transform(m Motion) Motion {
	switch m.Kind {
	case MotionAbsolute:
		if c.InvertMotionX {
			m.X = c.Size.Width - m.X
		}
		if c.InvertMotionY {
			m.Y = c.Size.Height - m.Y
		}
	case MotionScroll:
		m.X *= sign(c.InvertScrollX)
		m.Y *= sign(c.InvertScrollY)
	}
	return m
}

func sign(invert bool) float64 {
	if invert {
		return -1
	}
	return 1
}
