package dmx

import (
	"github.com/charmbracelet/log"
)

// UniverseSize is the number of channels in every universe.
const UniverseSize = 512

// Universe is a fixed-size block of channels identified by an id.
// The id is supplied by the caller and is not checked for uniqueness.
type Universe struct {
	id       int
	channels [UniverseSize]Channel
	logger   *log.Logger
}

// UniverseOption configures a Universe at construction.
type UniverseOption func(*Universe)

// WithLogger sets the logger used for out-of-range diagnostics.
// A nil logger is ignored.
func WithLogger(l *log.Logger) UniverseOption {
	return func(u *Universe) {
		if l != nil {
			u.logger = l
		}
	}
}

// NewUniverse creates a universe with UniverseSize default channels.
func NewUniverse(id int, opts ...UniverseOption) *Universe {
	u := &Universe{id: id, logger: log.Default()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ID returns the universe id.
func (u *Universe) ID() int { return u.id }

// Len returns the number of channels, always UniverseSize.
func (u *Universe) Len() int { return len(u.channels) }

// SetChannel sets the base value of channel index. Out-of-range indices are
// logged and ignored.
func (u *Universe) SetChannel(index int, v uint32) {
	ch, ok := u.Channel(index)
	if !ok {
		u.logger.Warn("trying to write outside of range", "universe", u.id, "index", index)
		return
	}
	ch.SetValue(v)
}

// SetOverrideChannel activates an override of v on channel index.
// Out-of-range indices are logged and ignored.
func (u *Universe) SetOverrideChannel(index int, v uint32) {
	ch, ok := u.Channel(index)
	if !ok {
		u.logger.Warn("trying to override channel outside of range", "universe", u.id, "index", index)
		return
	}
	ch.OverrideValue(v)
}

// RevertOverrideChannel deactivates the override on channel index.
// Out-of-range indices are logged and ignored.
func (u *Universe) RevertOverrideChannel(index int) {
	ch, ok := u.Channel(index)
	if !ok {
		u.logger.Warn("trying to revert channel outside of range", "universe", u.id, "index", index)
		return
	}
	ch.RevertOverride()
}

// Channel returns the live channel at index, or false when index is out of
// range. Mutations through the returned pointer affect the universe.
func (u *Universe) Channel(index int) (*Channel, bool) {
	if index < 0 || index >= len(u.channels) {
		return nil, false
	}
	return &u.channels[index], true
}

// Values returns the effective value of every channel in address order.
func (u *Universe) Values() []uint32 {
	out := make([]uint32, len(u.channels))
	for i := range u.channels {
		out[i] = u.channels[i].Value()
	}
	return out
}

// Equal reports whether u and other carry the same id. Channel contents are
// not compared.
func (u *Universe) Equal(other *Universe) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.id == other.id
}
