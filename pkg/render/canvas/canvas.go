// Package canvas draws a whole patch graph: every occupied edge as a line
// between its endpoint boxes, then every occupied node payload on top.
//
// The graph package stores payloads without ever drawing them; this package
// is the renderer side of that contract.
package canvas

import (
	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/graph"
	"github.com/conmx/conmx/pkg/render"
)

var edgeStyle = render.Stroked(render.RGB8(0xA0, 0xA0, 0xA0), 0.1)

// Options configures SVG output.
type Options struct {
	// Scale is the number of pixels per grid unit. Zero means 20.
	Scale float64
}

// Bounds returns the union of the bounding boxes of every occupied payload,
// or the zero rectangle for an empty graph.
func Bounds[T graph.Payload](g *graph.Graph[T]) geom.Rect {
	return render.Bounds(g.Payloads()...)
}

// Draw paints g onto s: edges first, then nodes.
func Draw[T graph.Payload](g *graph.Graph[T], s render.Surface) {
	for _, e := range g.Edges() {
		from, ok1 := g.Node(e.Start)
		to, ok2 := g.Node(e.End)
		if !ok1 || !ok2 {
			continue
		}
		s.Line(rightMiddle(from.BoundingBox()), leftMiddle(to.BoundingBox()), edgeStyle)
	}
	for _, p := range g.Payloads() {
		p.Draw(s)
	}
}

// SVG renders g as a standalone SVG document framed around its bounds.
func SVG[T graph.Payload](g *graph.Graph[T], opts Options) []byte {
	s := render.NewSVGSurface(Bounds(g), opts.Scale)
	Draw(g, s)
	return s.Bytes()
}

func rightMiddle(r geom.Rect) geom.Point { return geom.Pt(r.X+r.Width, r.Y+r.Height/2) }

func leftMiddle(r geom.Rect) geom.Point { return geom.Pt(r.X, r.Y+r.Height/2) }
