package controller

import "github.com/conmx/conmx/pkg/observability"

// ChannelState is the observable state of one channel.
type ChannelState struct {
	Index    int    `json:"index"`
	Value    uint32 `json:"value"`
	Base     uint32 `json:"base"`
	Override bool   `json:"override"`
}

// SetChannel writes the base value of a channel.
func (c *Controller) SetChannel(universe, index int, v uint32) error {
	u, err := c.Universe(universe)
	if err != nil {
		return err
	}
	c.logger.Debug("channel set", "universe", universe, "channel", index, "value", v)
	u.SetChannel(index, v)
	observability.DMX().OnChannelSet(universe, index, v)
	return nil
}

// OverrideChannel activates an override on a channel.
func (c *Controller) OverrideChannel(universe, index int, v uint32) error {
	u, err := c.Universe(universe)
	if err != nil {
		return err
	}
	c.logger.Debug("channel override", "universe", universe, "channel", index, "value", v)
	u.SetOverrideChannel(index, v)
	observability.DMX().OnChannelOverride(universe, index, v)
	return nil
}

// RevertChannel drops the override on a channel.
func (c *Controller) RevertChannel(universe, index int) error {
	u, err := c.Universe(universe)
	if err != nil {
		return err
	}
	c.logger.Debug("channel revert", "universe", universe, "channel", index)
	u.RevertOverrideChannel(index)
	observability.DMX().OnChannelRevert(universe, index)
	return nil
}

// Channel reports the state of one channel. An out-of-range index yields
// ok == false with a nil error.
func (c *Controller) Channel(universe, index int) (ChannelState, bool, error) {
	u, err := c.Universe(universe)
	if err != nil {
		return ChannelState{}, false, err
	}
	ch, ok := u.Channel(index)
	if !ok {
		return ChannelState{}, false, nil
	}
	return ChannelState{
		Index:    index,
		Value:    ch.Value(),
		Base:     ch.BaseValue(),
		Override: ch.Overridden(),
	}, true, nil
}

// Channels reports the state of channels from..to inclusive, clipped to the
// universe.
func (c *Controller) Channels(universe, from, to int) ([]ChannelState, error) {
	u, err := c.Universe(universe)
	if err != nil {
		return nil, err
	}
	from = max(from, 0)
	to = min(to, u.Len()-1)
	var out []ChannelState
	for i := from; i <= to; i++ {
		ch, _ := u.Channel(i)
		out = append(out, ChannelState{Index: i, Value: ch.Value(), Base: ch.BaseValue(), Override: ch.Overridden()})
	}
	return out, nil
}
