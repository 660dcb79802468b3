package dmx_test

import (
	"fmt"

	"github.com/conmx/conmx/pkg/dmx"
)

func ExampleChannel() {
	var ch dmx.Channel
	ch.SetValue(128)
	fmt.Println("base:", ch.Value())

	ch.OverrideValue(255)
	fmt.Println("override:", ch.Value())

	ch.RevertOverride()
	fmt.Println("reverted:", ch.Value())
	// Output:
	// base: 128
	// override: 255
	// reverted: 128
}

func ExampleRegistry() {
	reg := dmx.NewRegistry()
	reg.AddUniverse(dmx.NewUniverse(0)).
		AddUniverse(dmx.NewUniverse(1))

	if u, ok := reg.Universe(1); ok {
		u.SetChannel(5, 200)
		ch, _ := u.Channel(5)
		fmt.Println("universe 1, channel 5:", ch.Value())
	}
	fmt.Println("ids:", reg.IDs())
	// Output:
	// universe 1, channel 5: 200
	// ids: [0 1]
}
