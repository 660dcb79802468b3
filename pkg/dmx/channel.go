package dmx

// Channel is a single addressable value with an optional override layer.
// The zero value is a channel at 0 with no override.
type Channel struct {
	value         uint32
	overrideValue uint32
	overridden    bool
}

// SetValue sets the base value. An active override keeps shadowing it.
func (c *Channel) SetValue(v uint32) { c.value = v }

// OverrideValue sets the override value and activates the override layer.
func (c *Channel) OverrideValue(v uint32) {
	c.overrideValue = v
	c.overridden = true
}

// RevertOverride deactivates the override layer. The base value is left as
// it was and becomes visible again.
func (c *Channel) RevertOverride() { c.overridden = false }

// Value returns the effective value: the override while one is active,
// otherwise the base value.
func (c *Channel) Value() uint32 {
	if c.overridden {
		return c.overrideValue
	}
	return c.value
}

// BaseValue returns the base value regardless of any override.
func (c *Channel) BaseValue() uint32 { return c.value }

// Overridden reports whether the override layer is active.
func (c *Channel) Overridden() bool { return c.overridden }
