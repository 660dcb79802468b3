// Package nodelink renders patch graphs as Graphviz node-link diagrams.
//
// # Overview
//
// The canvas renderer draws nodes where the user placed them. This package
// ignores positions and lets Graphviz lay the patch out left to right, which
// is easier to read for large patches.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Labels
//
// Every occupied slot becomes a node labelled with its index and, when the
// payload implements [Titled], its title. With Options.Detailed the payload's
// String output is appended.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
