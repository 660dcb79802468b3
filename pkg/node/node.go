package node

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/render"
)

// Node geometry in grid units.
const (
	HeaderHeight = 2.0
	PortHeight   = 1.5
	FooterHeight = 2.0
	Width        = 10.0
	CornerRadius = 1.0

	portRadius = 0.5
	portBox    = 0.5
)

var (
	nodeFill   = render.RGB8(0x0F, 0x0F, 0x0F)
	nodeStroke = render.RGB8(0x00, 0x80, 0x00)
	titleColor = render.RGB8(0xE0, 0xE0, 0xE0)
)

// Driver maps a node's inputs to a candidate output list. Drivers must not
// retain or modify the slice they are given.
type Driver func(inputs []InputPort) []OutputPort

// Node is a positioned dataflow node. Create nodes with New.
type Node struct {
	title    string
	position geom.Point
	inputs   []InputPort
	outputs  []OutputPort
	drivers  []Driver
}

// Title returns the label drawn in the node header, possibly empty.
func (n *Node) Title() string { return n.title }

// Position returns the top-left corner of the node.
func (n *Node) Position() geom.Point { return n.position }

// SetPosition moves the node to p.
func (n *Node) SetPosition(p geom.Point) { n.position = p }

// Translate moves the node by v.
func (n *Node) Translate(v geom.Vector) { n.position = n.position.Add(v) }

// Inputs returns a copy of the input ports in order.
func (n *Node) Inputs() []InputPort { return slices.Clone(n.inputs) }

// Outputs returns a copy of the output ports in order.
func (n *Node) Outputs() []OutputPort { return slices.Clone(n.outputs) }

// DriverCount returns the number of drivers attached to the node.
func (n *Node) DriverCount() int { return len(n.drivers) }

// IsUpdated reports the updated flag of output i, or false when i is out of
// range.
func (n *Node) IsUpdated(i int) bool {
	if i < 0 || i >= len(n.outputs) {
		return false
	}
	return n.outputs[i].updated
}

// Update runs every driver against the current inputs. The produced outputs
// are discarded; n.Outputs is unchanged.
func (n *Node) Update() {
	for _, d := range n.drivers {
		_ = d(slices.Clone(n.inputs))
	}
}

// Evaluate runs every driver against the current inputs and returns their
// results in driver order, without touching the node.
func (n *Node) Evaluate() [][]OutputPort {
	out := make([][]OutputPort, len(n.drivers))
	for i, d := range n.drivers {
		out[i] = d(slices.Clone(n.inputs))
	}
	return out
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Node { inputs: [%s], outputs: [%s], driver count: %d }",
		joinPorts(n.inputs), joinPorts(n.outputs), len(n.drivers))
}

func joinPorts[P fmt.Stringer](ports []P) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// Height returns the node height for its current port count.
func (n *Node) Height() float64 {
	rows := max(len(n.inputs), len(n.outputs))
	return HeaderHeight + float64(rows)*PortHeight + FooterHeight
}

// BoundingBox implements render.Renderable.
func (n *Node) BoundingBox() geom.Rect {
	return geom.NewRect(n.position, geom.Size{Width: Width, Height: n.Height()})
}

// InputAnchor returns the centre of input port i in grid coordinates.
func (n *Node) InputAnchor(i int) geom.Point {
	return n.position.Add(portOffset(0, i))
}

// OutputAnchor returns the centre of output port i in grid coordinates.
func (n *Node) OutputAnchor(i int) geom.Point {
	return n.position.Add(portOffset(Width, i))
}

// PortBoundingBox returns the hit box of the port anchored at p.
func PortBoundingBox(p geom.Point) geom.Rect {
	return geom.Rect{X: p.X - portBox/2, Y: p.Y - portBox/2, Width: portBox, Height: portBox}
}

func portOffset(x float64, i int) geom.Vector {
	return geom.Vec(x, HeaderHeight+PortHeight/2+float64(i)*PortHeight)
}

// Draw implements render.Renderable.
func (n *Node) Draw(s render.Surface) {
	origin := geom.Vec(n.position.X, n.position.Y)
	s.Translate(origin)
	defer s.Translate(origin.Neg())

	body := geom.Rect{Width: Width, Height: n.Height()}
	s.RoundedRect(body, CornerRadius, render.FilledStroked(nodeFill, nodeStroke, 0.1))
	if n.title != "" {
		s.Text(geom.Pt(CornerRadius, HeaderHeight*0.7), 1, titleColor, n.title)
	}
	for i, p := range n.inputs {
		drawPort(s, geom.Point{}.Add(portOffset(0, i)), p.Port)
	}
	for i, p := range n.outputs {
		drawPort(s, geom.Point{}.Add(portOffset(Width, i)), p.Port)
	}
}

func drawPort(s render.Surface, at geom.Point, p Port) {
	c := PortColor(p)
	s.Circle(at, portRadius, render.FilledStroked(c.Scale(0.4), c, 0.05))
}

// PortColor returns the colour used to draw ports of p's kind.
func PortColor(p Port) render.Color {
	if p == nil {
		return render.RGB8(0xA0, 0xA0, 0xA0)
	}
	switch p.Kind() {
	case KindFloat:
		return render.RGB8(0xC0, 0x00, 0x00)
	case KindInteger:
		return render.RGB8(0x00, 0xC0, 0x00)
	case KindUnsigned8:
		return render.RGB8(0x00, 0x00, 0xC0)
	default:
		return render.RGB8(0xA0, 0xA0, 0xA0)
	}
}

// clampU8 rounds v to the nearest integer in 0..255.
func clampU8(v float64) Unsigned8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return Unsigned8(math.Round(v))
}
