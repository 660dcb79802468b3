package nodelink

import (
	"strings"
	"testing"

	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/graph"
	"github.com/conmx/conmx/pkg/node"
)

func patch(t *testing.T) *graph.Graph[*node.Node] {
	t.Helper()
	g := graph.New[*node.Node]()
	for _, kind := range []string{"fader", "scale", "output"} {
		n, err := node.Template(kind, geom.Point{})
		if err != nil {
			t.Fatalf("Template(%q) error = %v", kind, err)
		}
		g.AddNode(n)
	}
	for _, e := range []graph.Edge{{Start: 0, End: 1}, {Start: 1, End: 2}} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%v) error = %v", e, err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(patch(t), Options{})

	for _, want := range []string{
		"digraph G {",
		`"n0" [label="0: fader"];`,
		`"n1" [label="1: scale"];`,
		`"n0" -> "n1";`,
		`"n1" -> "n2";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTSkipsFreeSlots(t *testing.T) {
	g := patch(t)
	g.DeleteNode(1)

	dot := ToDOT(g, Options{})
	if strings.Contains(dot, `"n1"`) {
		t.Errorf("ToDOT() still mentions deleted node:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("ToDOT() kept edges of deleted node:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(patch(t), Options{Detailed: true})
	if !strings.Contains(dot, `driver count: 1`) {
		t.Errorf("detailed label missing node summary:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 40.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 40.00" width="100" height="40">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte("<svg></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox")
	}
}
