package render

import (
	"strings"
	"testing"

	"github.com/conmx/conmx/pkg/geom"
)

func TestSVGSurface(t *testing.T) {
	s := NewSVGSurface(geom.Rect{Width: 10, Height: 5}, 0)
	s.Translate(geom.Vec(1, 1))
	s.RoundedRect(geom.Rect{Width: 2, Height: 2}, 0.5, FilledStroked(RGB8(0, 0, 0), RGB8(0, 0x80, 0), 0.1))
	s.Circle(geom.Pt(0, 0), 0.5, Filled(RGB8(0xff, 0, 0)))
	s.Translate(geom.Vec(-1, -1))
	s.Line(geom.Pt(0, 0), geom.Pt(3, 4), Stroked(RGB8(0xa0, 0xa0, 0xa0), 0.1))
	s.Text(geom.Pt(1, 1), 1, RGB8(0xff, 0xff, 0xff), "a<b")

	out := string(s.Bytes())
	for _, want := range []string{
		`viewBox="-2.00 -2.00 14.00 9.00" width="280" height="180"`,
		`fill="#333333"`,
		`<rect x="1.00" y="1.00" width="2.00" height="2.00" rx="0.50" fill="#000000" stroke="#008000" stroke-width="0.10"/>`,
		`<circle cx="1.00" cy="1.00" r="0.50" fill="#ff0000"/>`,
		`<line x1="0.00" y1="0.00" x2="3.00" y2="4.00" fill="none" stroke="#a0a0a0" stroke-width="0.10"/>`,
		`>a&lt;b</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Bytes() missing %q:\n%s", want, out)
		}
	}
}

func TestSVGSurfaceScale(t *testing.T) {
	s := NewSVGSurface(geom.Rect{Width: 1, Height: 1}, 10)
	if out := string(s.Bytes()); !strings.Contains(out, `width="50" height="50"`) {
		t.Errorf("Bytes() ignored scale:\n%s", out)
	}
}
