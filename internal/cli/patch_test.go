package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conmx/conmx/pkg/controller"
	cerrors "github.com/conmx/conmx/pkg/errors"
	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/graph"
)

func TestParseNodeSpec(t *testing.T) {
	tests := []struct {
		in       string
		wantKind string
		wantPos  geom.Point
		wantErr  bool
	}{
		{"fader@1,2", "fader", geom.Pt(1, 2), false},
		{"scale@ -3.5 , 4 ", "scale", geom.Pt(-3.5, 4), false},
		{"merge", "merge", geom.Point{}, false},
		{"@1,2", "", geom.Point{}, true},
		{"fader@1", "", geom.Point{}, true},
		{"fader@a,b", "", geom.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, pos, err := parseNodeSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNodeSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if kind != tt.wantKind || pos != tt.wantPos {
				t.Errorf("parseNodeSpec(%q) = %q, %+v, want %q, %+v", tt.in, kind, pos, tt.wantKind, tt.wantPos)
			}
		})
	}
}

func TestParseEdgeSpec(t *testing.T) {
	start, end, err := parseEdgeSpec("0:3")
	if err != nil || start != 0 || end != 3 {
		t.Errorf("parseEdgeSpec(0:3) = %d, %d, %v", start, end, err)
	}
	for _, bad := range []string{"03", "a:1", "1:"} {
		if _, _, err := parseEdgeSpec(bad); !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
			t.Errorf("parseEdgeSpec(%q) error = %v, want INVALID_INPUT", bad, err)
		}
	}
}

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestBuildPatch(t *testing.T) {
	ctl := testCLI().newController()
	err := buildPatch(ctl, patchFlags{
		nodes:   []string{"fader@0,0", "scale@15,0", "output@30,0"},
		edges:   []string{"0:1", "1:2"},
		deletes: []int{1},
	})
	if err != nil {
		t.Fatalf("buildPatch() error = %v", err)
	}
	if got := formatStats(ctl.Patch().NodeCount(), ctl.Patch().EdgeCount()); got != "2 nodes · 0 edges" {
		t.Errorf("stats = %q", got)
	}
	if free := ctl.Patch().FreeNodes(); len(free) != 1 || free[0] != graph.NodeIndex(1) {
		t.Errorf("FreeNodes() = %v, want [1]", free)
	}
}

func TestBuildPatchErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags patchFlags
		code  cerrors.Code
	}{
		{"unknown kind", patchFlags{nodes: []string{"laser@0,0"}}, cerrors.ErrCodeNodeCreation},
		{"dangling edge", patchFlags{nodes: []string{"fader"}, edges: []string{"0:4"}}, cerrors.ErrCodeGraph},
		{"delete missing", patchFlags{deletes: []int{2}}, cerrors.ErrCodeNodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildPatch(testCLI().newController(), tt.flags)
			if !cerrors.Is(err, tt.code) {
				t.Errorf("buildPatch() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func patchFixture(t *testing.T) *controller.Patch {
	t.Helper()
	ctl := testCLI().newController()
	if err := buildPatch(ctl, patchFlags{nodes: []string{"fader@0,0", "scale@15,0"}, edges: []string{"0:1"}}); err != nil {
		t.Fatalf("buildPatch() error = %v", err)
	}
	return ctl.Patch()
}

func TestRenderPatch(t *testing.T) {
	g := patchFixture(t)

	svg, err := renderPatch(context.Background(), g, formatSVG, 20)
	if err != nil {
		t.Fatalf("renderPatch(svg) error = %v", err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) || !bytes.Contains(svg, []byte(">fader</text>")) {
		t.Errorf("renderPatch(svg) = %s", svg)
	}

	dot, err := renderPatch(context.Background(), g, formatDOT, 0)
	if err != nil {
		t.Fatalf("renderPatch(dot) error = %v", err)
	}
	if !strings.Contains(string(dot), `"n0" -> "n1";`) {
		t.Errorf("renderPatch(dot) = %s", dot)
	}

	if _, err := renderPatch(context.Background(), g, "bmp", 0); !cerrors.Is(err, cerrors.ErrCodeUnsupported) {
		t.Errorf("renderPatch(bmp) error = %v, want UNSUPPORTED", err)
	}
}

func TestRunPatchToStdout(t *testing.T) {
	var out bytes.Buffer
	err := testCLI().runPatch(context.Background(), &out, patchFlags{
		nodes:  []string{"merge@0,0"},
		format: formatDOT,
	})
	if err != nil {
		t.Fatalf("runPatch() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "digraph G {") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestRunPatchToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.svg")
	err := testCLI().runPatch(context.Background(), io.Discard, patchFlags{
		nodes:  []string{"fader@0,0"},
		output: path,
		format: formatSVG,
	})
	if err != nil {
		t.Fatalf("runPatch() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("file does not hold an svg document")
	}
}
