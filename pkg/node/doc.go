// Package node defines the dataflow nodes placed on the patch canvas.
//
// A [Node] has a position, an ordered list of [InputPort]s, an ordered list
// of [OutputPort]s and a list of [Driver] functions. Nodes are assembled
// with the fluent [Builder]:
//
//	n, err := node.New().
//	    WithStartingPos(geom.Pt(4, 2)).
//	    WithIn("value", node.Unsigned8(0)).
//	    WithOut("value", node.Unsigned8(0)).
//	    WithDriver(double).
//	    Build()
//
// Ports carry a [Port] value, one of [Float], [Unsigned8], [Integer] or
// [Array].
//
// # Drivers
//
// A driver maps the node's current inputs to a candidate output list.
// [Node.Update] runs every driver but does not yet write the results back to
// the node's outputs; no wiring rule from driver results to output ports has
// been settled.
//
// # Rendering
//
// *Node implements render.Renderable so it can be stored in a graph.Graph
// and drawn by the canvas renderer. Geometry is in grid units: see
// [Width], [HeaderHeight], [PortHeight] and [FooterHeight].
package node
