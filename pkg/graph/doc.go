// Package graph provides a slot-recycling arena that hosts the nodes and
// edges of the patch editor.
//
// # Overview
//
// A [Graph] keeps two parallel arenas, one for node payloads and one for
// [Edge] values. Each arena is a slot slice plus a stack of free slot
// indices. Inserting pops a free index when one exists and only grows the
// slot slice when the stack is empty, so handles are reused most recently
// freed first:
//
//	g := graph.New[*node.Node]()
//	a := g.AddNode(n1) // 0
//	b := g.AddNode(n2) // 1
//	_ = g.AddEdge(graph.Edge{Start: a, End: b})
//	g.DeleteNode(a)    // frees slot 0 and the a→b edge
//	c := g.AddNode(n3) // 0 again
//
// [NodeIndex] and [EdgeIndex] are plain slot positions. They carry no
// generation counter: once a slot is freed and reused, an old handle refers
// to the new occupant.
//
// # Invariants
//
//   - every index on a free stack refers to a free slot
//   - every free slot appears on its free stack exactly once
//   - an occupied slot never appears on a free stack
//
// # Edge Deletion
//
// [Graph.DeleteEdgesBy] matches edges without regard to direction: a single
// endpoint matches edges that start or end there, and a pair matches the
// edge in either orientation. [Graph.DeleteNode] cascades through the same
// single-endpoint filter, so every edge touching the deleted node goes with
// it.
//
// # Payloads
//
// Payloads must satisfy [Payload], which combines [render.Renderable] with
// [fmt.Stringer]. The arena stores and enumerates payloads but never calls
// either capability; renderers do.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. They are owned by a single
// controller and mutated from one goroutine.
//
// [render.Renderable]: github.com/conmx/conmx/pkg/render.Renderable
package graph
