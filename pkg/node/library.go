package node

import (
	"fmt"
	"slices"

	"github.com/conmx/conmx/pkg/geom"
)

var templates = map[string]func(*Builder) *Builder{
	"fader": func(b *Builder) *Builder {
		return b.WithOut("value", Unsigned8(0))
	},
	"scale": func(b *Builder) *Builder {
		return b.
			WithIn("value", Unsigned8(0)).
			WithIn("factor", Float(1)).
			WithOut("value", Unsigned8(0)).
			WithDriver(scaleDriver)
	},
	"merge": func(b *Builder) *Builder {
		return b.
			WithIn("a", Unsigned8(0)).
			WithIn("b", Unsigned8(0)).
			WithOut("max", Unsigned8(0)).
			WithDriver(mergeDriver)
	},
	"output": func(b *Builder) *Builder {
		return b.
			WithIn("channel", Integer(0)).
			WithIn("value", Unsigned8(0))
	},
}

// TemplateKinds returns the names accepted by Template, sorted.
func TemplateKinds() []string {
	kinds := make([]string, 0, len(templates))
	for k := range templates {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Template builds a node from the built-in library at pos.
func Template(kind string, pos geom.Point) (*Node, error) {
	fill, ok := templates[kind]
	if !ok {
		return nil, &CreationError{Msg: fmt.Sprintf("unknown node kind %q", kind)}
	}
	return fill(New().WithTitle(kind).WithStartingPos(pos)).Build()
}

func scaleDriver(in []InputPort) []OutputPort {
	v := inputU8(in, 0)
	f := 1.0
	if len(in) > 1 {
		if p, ok := in[1].Port.(Float); ok {
			f = float64(p)
		}
	}
	return []OutputPort{NewOutputPort("value", clampU8(float64(v)*f))}
}

func mergeDriver(in []InputPort) []OutputPort {
	return []OutputPort{NewOutputPort("max", max(inputU8(in, 0), inputU8(in, 1)))}
}

func inputU8(in []InputPort, i int) Unsigned8 {
	if i >= len(in) {
		return 0
	}
	if v, ok := in[i].Port.(Unsigned8); ok {
		return v
	}
	return 0
}
