package graph

import (
	"fmt"
	"slices"

	"github.com/conmx/conmx/pkg/render"
)

// Payload is the capability a node payload must provide to live in a Graph:
// it must be drawable and printable for debugging. The graph itself never
// invokes either.
type Payload interface {
	render.Renderable
	fmt.Stringer
}

// Slot is one arena position. Free slots hold the zero value of T with
// Occupied set to false.
type Slot[T any] struct {
	Value    T
	Occupied bool
}

// Graph is a slot arena of payload nodes and edges between them.
//
// The zero value is an empty, usable graph. Graph is not safe for
// concurrent use.
type Graph[T Payload] struct {
	nodes     []Slot[T]
	freeNodes []NodeIndex
	edges     []Slot[Edge]
	freeEdges []EdgeIndex
}

// New creates an empty graph.
func New[T Payload]() *Graph[T] {
	return &Graph[T]{}
}

// AddNode stores n and returns its index. The most recently freed slot is
// reused when one exists; otherwise a new slot is appended. AddNode never
// fails.
func (g *Graph[T]) AddNode(n T) NodeIndex {
	if id, ok := pop(&g.freeNodes); ok {
		g.nodes[id] = Slot[T]{Value: n, Occupied: true}
		return id
	}
	g.nodes = append(g.nodes, Slot[T]{Value: n, Occupied: true})
	return NodeIndex(len(g.nodes) - 1)
}

// Node returns the payload stored at id, or false when id is out of range
// or the slot is free.
func (g *Graph[T]) Node(id NodeIndex) (T, bool) {
	if !g.occupied(id) {
		var zero T
		return zero, false
	}
	return g.nodes[id].Value, true
}

// UpdateNode calls fn with a pointer to the payload stored at id so it can
// be modified in place. It reports false, without calling fn, when id is out
// of range or free. The pointer must not be retained after fn returns.
func (g *Graph[T]) UpdateNode(id NodeIndex, fn func(*T)) bool {
	if !g.occupied(id) {
		return false
	}
	fn(&g.nodes[id].Value)
	return true
}

// HasNode reports whether id refers to an occupied node slot.
func (g *Graph[T]) HasNode(id NodeIndex) bool { return g.occupied(id) }

// DeleteNode frees the slot at id and returns the payload it held, together
// with every edge touching id. It returns false when id is out of range or
// already free.
//
// The cascade uses the single-endpoint filter of DeleteEdgesBy, so edges
// where id is the end are removed as well as edges where it is the start.
func (g *Graph[T]) DeleteNode(id NodeIndex) (T, bool) {
	if !g.occupied(id) {
		var zero T
		return zero, false
	}
	old := g.nodes[id].Value
	g.nodes[id] = Slot[T]{}
	g.freeNodes = append(g.freeNodes, id)
	g.DeleteEdgesBy(id, None)
	return old, true
}

// AddEdge stores e after checking that both endpoints are occupied node
// slots. On failure it returns a *GraphError naming the missing endpoint(s)
// and the graph is unchanged. The most recently freed edge slot is reused
// before the edge arena grows.
func (g *Graph[T]) AddEdge(e Edge) error {
	if err := g.checkEndpoints(e); err != nil {
		return err
	}
	g.insertEdge(e)
	return nil
}

func (g *Graph[T]) checkEndpoints(e Edge) error {
	startOK, endOK := g.occupied(e.Start), g.occupied(e.End)
	switch {
	case startOK && endOK:
		return nil
	case endOK:
		return &GraphError{Start: e.Start, End: e.End, Missing: MissingStart}
	case startOK:
		return &GraphError{Start: e.Start, End: e.End, Missing: MissingEnd}
	default:
		return &GraphError{Start: e.Start, End: e.End, Missing: MissingBoth}
	}
}

func (g *Graph[T]) insertEdge(e Edge) EdgeIndex {
	if id, ok := pop(&g.freeEdges); ok {
		g.edges[id] = Slot[Edge]{Value: e, Occupied: true}
		return id
	}
	g.edges = append(g.edges, Slot[Edge]{Value: e, Occupied: true})
	return EdgeIndex(len(g.edges) - 1)
}

// Edges returns the occupied edges in slot order. Slot order follows
// insertion and reuse, so it is not stable across deletions.
func (g *Graph[T]) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, s := range g.edges {
		if s.Occupied {
			out = append(out, s.Value)
		}
	}
	return out
}

// DeleteEdgesBy removes and returns, in slot order, every edge matching the
// given endpoints. Pass None for an absent endpoint:
//
//   - both None: every edge
//   - exactly one set to n: every edge with n as start or end
//   - both set to a and b: every edge a→b or b→a
//
// Freed slots are pushed onto the edge free stack in ascending order.
// It runs in O(number of edge slots).
func (g *Graph[T]) DeleteEdgesBy(start, end NodeIndex) []Edge {
	var match func(Edge) bool
	switch {
	case start == None && end == None:
		match = func(Edge) bool { return true }
	case end == None:
		match = func(e Edge) bool { return e.Touches(start) }
	case start == None:
		match = func(e Edge) bool { return e.Touches(end) }
	default:
		match = func(e Edge) bool { return e.Connects(start, end) }
	}

	var deleted []Edge
	for i := range g.edges {
		s := &g.edges[i]
		if !s.Occupied || !match(s.Value) {
			continue
		}
		deleted = append(deleted, s.Value)
		*s = Slot[Edge]{}
		g.freeEdges = append(g.freeEdges, EdgeIndex(i))
	}
	return deleted
}

// Nodes returns a snapshot of every node slot in index order, free slots
// included. The slice is a copy; for pointer payloads the pointed-to values
// are shared with the graph.
func (g *Graph[T]) Nodes() []Slot[T] { return slices.Clone(g.nodes) }

// Payloads returns the occupied node payloads in slot order.
func (g *Graph[T]) Payloads() []T {
	out := make([]T, 0, len(g.nodes))
	for _, s := range g.nodes {
		if s.Occupied {
			out = append(out, s.Value)
		}
	}
	return out
}

// NodeCount returns the number of occupied node slots.
func (g *Graph[T]) NodeCount() int { return len(g.nodes) - len(g.freeNodes) }

// EdgeCount returns the number of occupied edge slots.
func (g *Graph[T]) EdgeCount() int { return len(g.edges) - len(g.freeEdges) }

// FreeNodes returns a copy of the node free stack, top last.
func (g *Graph[T]) FreeNodes() []NodeIndex { return slices.Clone(g.freeNodes) }

// FreeEdges returns a copy of the edge free stack, top last.
func (g *Graph[T]) FreeEdges() []EdgeIndex { return slices.Clone(g.freeEdges) }

// String summarises the graph for debugging.
func (g *Graph[T]) String() string {
	return fmt.Sprintf("Graph { nodes: %d/%d, edges: %d/%d }",
		g.NodeCount(), len(g.nodes), g.EdgeCount(), len(g.edges))
}

func (g *Graph[T]) occupied(id NodeIndex) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id].Occupied
}

func pop[I ~int](stack *[]I) (I, bool) {
	s := *stack
	if len(s) == 0 {
		return 0, false
	}
	id := s[len(s)-1]
	*stack = s[:len(s)-1]
	return id, true
}
