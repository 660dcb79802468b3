package errors

import (
	"math"
	"net"
	"strconv"
	"strings"

	"github.com/conmx/conmx/pkg/dmx"
)

// ValidateUniverseID rejects negative universe ids.
func ValidateUniverseID(id int) error {
	if id < 0 {
		return New(ErrCodeInvalidAddress, "universe id %d is negative", id)
	}
	return nil
}

// ValidateChannelIndex rejects indices outside 0..dmx.UniverseSize-1. The
// core tolerates such writes as no-ops; callers that want to report them use
// this first.
func ValidateChannelIndex(index int) error {
	if index < 0 || index >= dmx.UniverseSize {
		return New(ErrCodeInvalidAddress, "channel %d out of range (0-%d)", index, dmx.UniverseSize-1)
	}
	return nil
}

// ParseUniverseID parses and validates a universe id.
func ParseUniverseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidAddress, err, "universe id %q is not a number", s)
	}
	return id, ValidateUniverseID(id)
}

// ParseChannelIndex parses and validates a channel index.
func ParseChannelIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidAddress, err, "channel %q is not a number", s)
	}
	return i, ValidateChannelIndex(i)
}

// ParseChannelValue parses a channel value in 0..2^32-1.
func ParseChannelValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "value %q is not in 0-%d", s, uint32(math.MaxUint32))
	}
	return uint32(v), nil
}

// ParseAssignment parses "channel=value".
func ParseAssignment(s string) (int, uint32, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, New(ErrCodeInvalidInput, "assignment %q must look like channel=value", s)
	}
	ch, err := ParseChannelIndex(lhs)
	if err != nil {
		return 0, 0, err
	}
	v, err := ParseChannelValue(rhs)
	if err != nil {
		return 0, 0, err
	}
	return ch, v, nil
}

// ValidateIP checks that s is a literal IPv4 or IPv6 address.
func ValidateIP(s string) error {
	if net.ParseIP(s) == nil {
		return New(ErrCodeInvalidInput, "ip %q not valid", s)
	}
	return nil
}
