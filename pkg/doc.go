// Package pkg provides the core libraries of ConMX, a lighting controller.
//
// # Overview
//
// ConMX holds DMX universes with per-channel overrides and a dataflow patch
// of nodes that feed them. The pkg directory is organized into:
//
//  1. [dmx] - Channels, universes and the universe registry
//  2. [graph] - A slot-recycling arena graph, generic over its payload
//  3. [node] - Typed ports, driver functions and the node builder
//  4. [render] - Drawing capability, SVG surface, canvas and Graphviz output
//  5. [controller] - One registry plus one patch behind a single API
//
// Supporting packages: [geom] (points and rectangles in grid units),
// [errors] (coded application errors), [observability] (hooks) and
// [buildinfo] (version information).
//
// # Architecture
//
//	config / CLI / HTTP API
//	         ↓
//	    [controller]
//	     ↙        ↘
//	  [dmx]     [graph] of [node]
//	                 ↓
//	            [render] (SVG, DOT)
//
// # Quick Start
//
// Set a channel, override it, and revert:
//
//	import "github.com/conmx/conmx/pkg/dmx"
//
//	u := dmx.NewUniverse(0)
//	u.SetChannel(1, 128)
//	u.SetOverrideChannel(1, 255) // effective value 255
//	u.RevertOverrideChannel(1) // back to 128
//
// Build a small patch:
//
//	import (
//	    "github.com/conmx/conmx/pkg/geom"
//	    "github.com/conmx/conmx/pkg/graph"
//	    "github.com/conmx/conmx/pkg/node"
//	)
//
//	g := graph.New[*node.Node]()
//	fader, _ := node.Template("fader", geom.Pt(0, 0))
//	scale, _ := node.Template("scale", geom.Pt(15, 0))
//	a, b := g.AddNode(fader), g.AddNode(scale)
//	_ = g.AddEdge(graph.Edge{Start: a, End: b})
//
// # Concurrency
//
// The core types are single-writer and not safe for concurrent use.
// Callers that share a controller across goroutines (the HTTP server does)
// serialise access themselves.
//
// [dmx]: https://pkg.go.dev/github.com/conmx/conmx/pkg/dmx
// [graph]: https://pkg.go.dev/github.com/conmx/conmx/pkg/graph
// [node]: https://pkg.go.dev/github.com/conmx/conmx/pkg/node
// [render]: https://pkg.go.dev/github.com/conmx/conmx/pkg/render
// [controller]: https://pkg.go.dev/github.com/conmx/conmx/pkg/controller
// [geom]: https://pkg.go.dev/github.com/conmx/conmx/pkg/geom
// [errors]: https://pkg.go.dev/github.com/conmx/conmx/pkg/errors
// [observability]: https://pkg.go.dev/github.com/conmx/conmx/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/conmx/conmx/pkg/buildinfo
package pkg
