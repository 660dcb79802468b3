package node

import "github.com/conmx/conmx/pkg/geom"

// Builder accumulates the parts of a Node. The zero value is not usable;
// call New.
type Builder struct {
	title    string
	position geom.Point
	inputs   []InputPort
	outputs  []OutputPort
	drivers  []Driver
}

// New returns an empty builder positioned at the origin.
func New() *Builder { return &Builder{} }

// WithTitle sets the header label.
func (b *Builder) WithTitle(title string) *Builder {
	b.title = title
	return b
}

// WithIn appends an input port.
func (b *Builder) WithIn(name string, p Port) *Builder {
	b.inputs = append(b.inputs, NewInputPort(name, p))
	return b
}

// WithOut appends an output port. New output ports start updated.
func (b *Builder) WithOut(name string, p Port) *Builder {
	b.outputs = append(b.outputs, NewOutputPort(name, p))
	return b
}

// WithDriver appends a driver.
func (b *Builder) WithDriver(d Driver) *Builder {
	b.drivers = append(b.drivers, d)
	return b
}

// WithStartingPos sets the initial position.
func (b *Builder) WithStartingPos(p geom.Point) *Builder {
	b.position = p
	return b
}

// Build returns the assembled node. It fails with a *CreationError when a
// driver is nil. The builder may be reused; the node does not share its
// slices.
//
// TODO: validate that drivers only reference the node's declared ports once
// drivers expose which ports they read and write.
func (b *Builder) Build() (*Node, error) {
	for _, d := range b.drivers {
		if d == nil {
			return nil, &CreationError{Msg: "driver function is nil"}
		}
	}
	return &Node{
		title:    b.title,
		position: b.position,
		inputs:   append([]InputPort(nil), b.inputs...),
		outputs:  append([]OutputPort(nil), b.outputs...),
		drivers:  append([]Driver(nil), b.drivers...),
	}, nil
}
