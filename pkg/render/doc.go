// Package render defines the drawing capability shared by everything that
// can appear on the patch canvas, plus the output formats built on it.
//
// # Overview
//
// The node graph stores payloads that satisfy [Renderable]: they can draw
// themselves onto a [Surface] and report a bounding box. The graph arena
// stores such payloads but never calls into them; only renderers do.
//
//   - [Renderable], [Surface]: the capability contract
//   - [Bounds]: union bounding box over a set of renderables
//   - [SVGSurface]: a Surface that records SVG elements
//   - [ToPDF], [ToPNG]: SVG conversion through rsvg-convert
//
// Whole-graph drawing lives in the [canvas] subpackage, and Graphviz
// export in [nodelink].
//
//	s := render.NewSVGSurface(render.Bounds(items...), 20)
//	for _, it := range items {
//	    it.Draw(s)
//	}
//	svg := s.Bytes()
//
// [canvas]: github.com/conmx/conmx/pkg/render/canvas
// [nodelink]: github.com/conmx/conmx/pkg/render/nodelink
package render
