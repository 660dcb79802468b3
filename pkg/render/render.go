package render

import (
	"fmt"

	"github.com/conmx/conmx/pkg/geom"
)

// Renderable is the capability a canvas item must provide.
type Renderable interface {
	// Draw paints the item onto s in grid coordinates.
	Draw(s Surface)
	// BoundingBox reports the area the item occupies.
	BoundingBox() geom.Rect
}

// Surface is a drawing target. Coordinates passed to its methods are
// relative to the current translation.
type Surface interface {
	// Translate shifts the origin of all subsequent drawing by v.
	Translate(v geom.Vector)
	RoundedRect(r geom.Rect, radius float64, st Style)
	Circle(center geom.Point, radius float64, st Style)
	Line(from, to geom.Point, st Style)
	Text(at geom.Point, size float64, c Color, s string)
}

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB8 builds a Color from its components.
func RGB8(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Scale multiplies each component by f, clamped to the valid range.
func (c Color) Scale(f float64) Color {
	s := func(v uint8) uint8 {
		x := float64(v) * f
		switch {
		case x < 0:
			return 0
		case x > 255:
			return 255
		}
		return uint8(x)
	}
	return Color{R: s(c.R), G: s(c.G), B: s(c.B)}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Style describes how a shape is filled and stroked. A nil Fill or Stroke
// leaves that part undrawn.
type Style struct {
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64
}

// Filled returns a style that only fills.
func Filled(c Color) Style { return Style{Fill: &c} }

// Stroked returns a style that only strokes.
func Stroked(c Color, width float64) Style { return Style{Stroke: &c, StrokeWidth: width} }

// FilledStroked returns a style that fills with fill and strokes with stroke.
func FilledStroked(fill, stroke Color, width float64) Style {
	return Style{Fill: &fill, Stroke: &stroke, StrokeWidth: width}
}

// Bounds returns the union of the bounding boxes of items, or the zero
// rectangle when items is empty. It runs in O(len(items)).
func Bounds[T Renderable](items ...T) geom.Rect {
	var (
		out   geom.Rect
		found bool
	)
	for _, it := range items {
		bb := it.BoundingBox()
		if !found {
			out, found = bb, true
			continue
		}
		out = out.Union(bb)
	}
	return out
}
