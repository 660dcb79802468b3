package controller

import (
	"github.com/conmx/conmx/pkg/errors"
	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/graph"
	"github.com/conmx/conmx/pkg/node"
	"github.com/conmx/conmx/pkg/observability"
)

// AddNode places a node from the built-in library at pos.
func (c *Controller) AddNode(kind string, pos geom.Point) (graph.NodeIndex, error) {
	n, err := node.Template(kind, pos)
	if err != nil {
		return graph.None, errors.Wrap(errors.ErrCodeNodeCreation, err, "add %s node", kind)
	}
	return c.Insert(n), nil
}

// Insert stores a prepared node and returns its index.
func (c *Controller) Insert(n *node.Node) graph.NodeIndex {
	id := c.patch.AddNode(n)
	c.logger.Debug("node added", "index", id, "title", n.Title())
	observability.Patch().OnNodeAdded(int(id))
	return id
}

// Node returns the node stored at id.
func (c *Controller) Node(id graph.NodeIndex) (*node.Node, error) {
	n, ok := c.patch.Node(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "node %d does not exist", id)
	}
	return n, nil
}

// MoveNode translates the node at id by v.
func (c *Controller) MoveNode(id graph.NodeIndex, v geom.Vector) error {
	if !c.patch.UpdateNode(id, func(n **node.Node) { (*n).Translate(v) }) {
		return errors.New(errors.ErrCodeNodeNotFound, "node %d does not exist", id)
	}
	return nil
}

// DeleteNode removes the node at id together with every edge touching it
// and returns the number of edges removed.
func (c *Controller) DeleteNode(id graph.NodeIndex) (int, error) {
	before := c.patch.EdgeCount()
	if _, ok := c.patch.DeleteNode(id); !ok {
		return 0, errors.New(errors.ErrCodeNodeNotFound, "node %d does not exist", id)
	}
	removed := before - c.patch.EdgeCount()
	c.logger.Debug("node deleted", "index", id, "edges", removed)
	observability.Patch().OnNodeDeleted(int(id), removed)
	return removed, nil
}

// Connect adds an edge from start to end.
func (c *Controller) Connect(start, end graph.NodeIndex) error {
	if err := c.patch.AddEdge(graph.Edge{Start: start, End: end}); err != nil {
		c.logger.Warn("edge rejected", "start", start, "end", end, "err", err)
		observability.Patch().OnEdgeRejected(int(start), int(end), err)
		return errors.Wrap(errors.ErrCodeGraph, err, "connect %d -> %d", start, end)
	}
	observability.Patch().OnEdgeAdded(int(start), int(end))
	return nil
}

// Disconnect removes every edge between a and b in either direction. Passing
// graph.None for b removes every edge touching a.
func (c *Controller) Disconnect(a, b graph.NodeIndex) []graph.Edge {
	return c.patch.DeleteEdgesBy(a, b)
}
