package graph

import "fmt"

// NodeIndex is a handle to a node slot.
type NodeIndex int

// EdgeIndex is a handle to an edge slot.
type EdgeIndex int

// None marks an absent endpoint in DeleteEdgesBy.
const None NodeIndex = -1

// Edge connects two node slots. Edges compare by value.
type Edge struct {
	Start NodeIndex
	End   NodeIndex
}

// Touches reports whether n is either endpoint of e.
func (e Edge) Touches(n NodeIndex) bool { return e.Start == n || e.End == n }

// Connects reports whether e joins a and b in either direction.
func (e Edge) Connects(a, b NodeIndex) bool {
	return (e.Start == a && e.End == b) || (e.Start == b && e.End == a)
}

// String returns "start->end".
func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.Start, e.End) }
