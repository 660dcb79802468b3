package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/conmx/conmx/pkg/geom"
)

// svgMargin is the padding, in grid units, kept around the drawn area.
const svgMargin = 2.0

// SVGSurface is a Surface that accumulates SVG elements in memory.
// It is not safe for concurrent use.
type SVGSurface struct {
	viewport geom.Rect
	scale    float64
	offset   geom.Vector
	body     bytes.Buffer
}

// NewSVGSurface creates a surface showing viewport, with scale pixels per
// grid unit. A non-positive scale falls back to 20.
func NewSVGSurface(viewport geom.Rect, scale float64) *SVGSurface {
	if scale <= 0 {
		scale = 20
	}
	return &SVGSurface{viewport: viewport, scale: scale}
}

// Translate implements Surface.
func (s *SVGSurface) Translate(v geom.Vector) { s.offset = s.offset.Add(v) }

// RoundedRect implements Surface.
func (s *SVGSurface) RoundedRect(r geom.Rect, radius float64, st Style) {
	r = r.Translate(s.offset)
	fmt.Fprintf(&s.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"%s/>`+"\n",
		r.X, r.Y, r.Width, r.Height, radius, styleAttrs(st))
}

// Circle implements Surface.
func (s *SVGSurface) Circle(center geom.Point, radius float64, st Style) {
	c := center.Add(s.offset)
	fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n", c.X, c.Y, radius, styleAttrs(st))
}

// Line implements Surface.
func (s *SVGSurface) Line(from, to geom.Point, st Style) {
	a, b := from.Add(s.offset), to.Add(s.offset)
	fmt.Fprintf(&s.body, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n", a.X, a.Y, b.X, b.Y, styleAttrs(st))
}

// Text implements Surface.
func (s *SVGSurface) Text(at geom.Point, size float64, c Color, text string) {
	p := at.Add(s.offset)
	fmt.Fprintf(&s.body, `  <text x="%.2f" y="%.2f" font-size="%.2f" fill="%s" font-family="monospace">%s</text>`+"\n",
		p.X, p.Y, size, c.Hex(), html.EscapeString(text))
}

// Bytes returns the complete SVG document.
func (s *SVGSurface) Bytes() []byte {
	vb := geom.Rect{
		X:      s.viewport.X - svgMargin,
		Y:      s.viewport.Y - svgMargin,
		Width:  s.viewport.Width + 2*svgMargin,
		Height: s.viewport.Height + 2*svgMargin,
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		vb.X, vb.Y, vb.Width, vb.Height, vb.Width*s.scale, vb.Height*s.scale)
	fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#333333"/>`+"\n",
		vb.X, vb.Y, vb.Width, vb.Height)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func styleAttrs(st Style) string {
	fill := "none"
	if st.Fill != nil {
		fill = st.Fill.Hex()
	}
	out := fmt.Sprintf(` fill="%s"`, fill)
	if st.Stroke != nil {
		out += fmt.Sprintf(` stroke="%s" stroke-width="%.2f"`, st.Stroke.Hex(), st.StrokeWidth)
	}
	return out
}
