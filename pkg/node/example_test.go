package node_test

import (
	"fmt"

	"github.com/conmx/conmx/pkg/geom"
	"github.com/conmx/conmx/pkg/node"
)

func ExampleBuilder() {
	n, err := node.New().
		WithStartingPos(geom.Pt(4, 2)).
		WithIn("value", node.Unsigned8(0)).
		WithOut("value", node.Unsigned8(0)).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	fmt.Println(n.BoundingBox())
	// Output:
	// Node { inputs: [value: Unsigned8(0)], outputs: [value: Unsigned8(0)], driver count: 0 }
	// {4 2 10 5.5}
}

func ExampleTemplate() {
	n, _ := node.Template("scale", geom.Pt(0, 0))
	fmt.Println(n.Title(), len(n.Inputs()), len(n.Outputs()))
	// Output: scale 2 1
}
