package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conmx/conmx/pkg/controller"
	cerrors "github.com/conmx/conmx/pkg/errors"
	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/graph"
	"github.com/conmx/conmx/pkg/node"
	"github.com/conmx/conmx/pkg/render"
	"github.com/conmx/conmx/pkg/render/canvas"
	"github.com/conmx/conmx/pkg/render/nodelink"
)

// Patch output formats.
const (
	formatSVG      = "svg"
	formatDOT      = "dot"
	formatGraphviz = "graphviz"
	formatPDF      = "pdf"
	formatPNG      = "png"
)

// patchFlags holds the flags for the patch command.
type patchFlags struct {
	nodes   []string
	edges   []string
	deletes []int
	output  string
	format  string
	scale   float64
}

// patchCommand creates the patch command.
func (c *CLI) patchCommand() *cobra.Command {
	var flags patchFlags

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Build a node patch and render it",
		Long: fmt.Sprintf(`Build a node patch from the built-in node library, apply deletions and
render the result.

Nodes are given as kind@x,y and receive indices in the order given, reusing
freed slots. Edges are given as start:end. Deleting a node also removes every
edge touching it.

Node kinds: %s

Formats:
  svg       the patch canvas as placed (default)
  dot       Graphviz DOT source
  graphviz  SVG laid out by Graphviz
  pdf, png  the patch canvas converted with rsvg-convert`, strings.Join(node.TemplateKinds(), ", ")),
		Example: `  conmx patch --node fader@0,0 --node scale@15,0 --edge 0:1 -o patch.svg
  conmx patch --node fader@0,0 --node output@15,0 --edge 0:1 --format dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPatch(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.nodes, "node", nil, "add a node (kind@x,y, repeatable)")
	cmd.Flags().StringArrayVar(&flags.edges, "edge", nil, "connect two nodes (start:end, repeatable)")
	cmd.Flags().IntSliceVar(&flags.deletes, "delete", nil, "delete nodes by index after building")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatSVG, "output format: svg, dot, graphviz, pdf, png")
	cmd.Flags().Float64Var(&flags.scale, "scale", 20, "pixels per grid unit (svg, pdf, png)")

	return cmd
}

func (c *CLI) runPatch(ctx context.Context, stdout io.Writer, flags patchFlags) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	ctl := c.newController()
	if err := buildPatch(ctl, flags); err != nil {
		return err
	}
	ctl.Update()

	out, err := renderPatch(ctx, ctl.Patch(), flags.format, flags.scale)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered patch as %s", flags.format))

	if flags.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(flags.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	printSuccess("Patch written")
	printStats(ctl.Patch().NodeCount(), ctl.Patch().EdgeCount())
	printFile(flags.output)
	return nil
}

func buildPatch(ctl *controller.Controller, flags patchFlags) error {
	for _, s := range flags.nodes {
		kind, pos, err := parseNodeSpec(s)
		if err != nil {
			return err
		}
		if _, err := ctl.AddNode(kind, pos); err != nil {
			return err
		}
	}
	for _, s := range flags.edges {
		start, end, err := parseEdgeSpec(s)
		if err != nil {
			return err
		}
		if err := ctl.Connect(start, end); err != nil {
			return err
		}
	}
	for _, id := range flags.deletes {
		if _, err := ctl.DeleteNode(graph.NodeIndex(id)); err != nil {
			return err
		}
	}
	return nil
}

func renderPatch(ctx context.Context, g *controller.Patch, format string, scale float64) ([]byte, error) {
	switch format {
	case formatSVG:
		return canvas.SVG(g, canvas.Options{Scale: scale}), nil
	case formatDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: true})), nil
	case formatGraphviz:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{}))
	case formatPDF:
		return render.ToPDF(canvas.SVG(g, canvas.Options{Scale: scale}))
	case formatPNG:
		return render.ToPNG(canvas.SVG(g, canvas.Options{Scale: scale}), 1)
	}
	return nil, cerrors.New(cerrors.ErrCodeUnsupported, "unknown format %q (use svg, dot, graphviz, pdf or png)", format)
}

// parseNodeSpec parses "kind@x,y". The position defaults to the origin when
// "@x,y" is omitted.
func parseNodeSpec(s string) (string, geom.Point, error) {
	kind, at, hasPos := strings.Cut(s, "@")
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return "", geom.Point{}, cerrors.New(cerrors.ErrCodeInvalidInput, "node %q has no kind", s)
	}
	if !hasPos {
		return kind, geom.Point{}, nil
	}
	xs, ys, ok := strings.Cut(at, ",")
	if !ok {
		return "", geom.Point{}, cerrors.New(cerrors.ErrCodeInvalidInput, "node %q: position must be x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return "", geom.Point{}, cerrors.New(cerrors.ErrCodeInvalidInput, "node %q: position must be numeric", s)
	}
	return kind, geom.Pt(x, y), nil
}

// parseEdgeSpec parses "start:end".
func parseEdgeSpec(s string) (graph.NodeIndex, graph.NodeIndex, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, cerrors.New(cerrors.ErrCodeInvalidInput, "edge %q must look like start:end", s)
	}
	start, errA := strconv.Atoi(strings.TrimSpace(a))
	end, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return 0, 0, cerrors.New(cerrors.ErrCodeInvalidInput, "edge %q: indices must be integers", s)
	}
	return graph.NodeIndex(start), graph.NodeIndex(end), nil
}
