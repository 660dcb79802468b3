package node

import (
	"fmt"
	"strings"
)

// Kind tags the concrete type of a Port.
type Kind int

const (
	KindFloat Kind = iota
	KindUnsigned8
	KindInteger
	KindArray
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindUnsigned8:
		return "u8"
	case KindInteger:
		return "int"
	case KindArray:
		return "array"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Port is a typed value carried on a node input or output. It is implemented
// only by Float, Unsigned8, Integer and Array.
type Port interface {
	Kind() Kind
	fmt.Stringer
	isPort()
}

// Float is a 32-bit floating point port value.
type Float float32

// Unsigned8 is an 8-bit unsigned port value.
type Unsigned8 uint8

// Integer is a 32-bit signed port value.
type Integer int32

// Array is an ordered sequence of port values.
type Array []Port

func (Float) Kind() Kind     { return KindFloat }
func (Unsigned8) Kind() Kind { return KindUnsigned8 }
func (Integer) Kind() Kind   { return KindInteger }
func (Array) Kind() Kind     { return KindArray }

func (Float) isPort()     {}
func (Unsigned8) isPort() {}
func (Integer) isPort()   {}
func (Array) isPort()     {}

func (f Float) String() string     { return fmt.Sprintf("Float(%g)", float32(f)) }
func (u Unsigned8) String() string { return fmt.Sprintf("Unsigned8(%d)", uint8(u)) }
func (i Integer) String() string   { return fmt.Sprintf("Integer(%d)", int32(i)) }

func (a Array) String() string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = p.String()
	}
	return "Array[" + strings.Join(parts, ", ") + "]"
}

// InputPort is a named port on the input side of a node.
type InputPort struct {
	Name string
	Port Port
}

// NewInputPort creates an input port.
func NewInputPort(name string, p Port) InputPort { return InputPort{Name: name, Port: p} }

// String returns "name: port".
func (p InputPort) String() string { return p.Name + ": " + portString(p.Port) }

// OutputPort is a named port on the output side of a node. It tracks whether
// its value changed since it was last consumed; new ports start updated.
type OutputPort struct {
	Name    string
	Port    Port
	updated bool
}

// NewOutputPort creates an output port marked as updated.
func NewOutputPort(name string, p Port) OutputPort {
	return OutputPort{Name: name, Port: p, updated: true}
}

// Updated reports the updated flag.
func (p OutputPort) Updated() bool { return p.updated }

// AsInput converts the output port to an input port with the same name and
// value, e.g. to feed it to a downstream node.
func (p OutputPort) AsInput() InputPort { return InputPort{Name: p.Name, Port: p.Port} }

// String returns "name: port".
func (p OutputPort) String() string { return p.Name + ": " + portString(p.Port) }

func portString(p Port) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}
