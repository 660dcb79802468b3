// Package dmx models addressable lighting channels grouped into universes.
//
// # Overview
//
// A [Channel] holds a base value and an optional override layer. While an
// override is active it shadows the base value; reverting it makes the
// untouched base value visible again:
//
//	var ch dmx.Channel
//	ch.SetValue(128)
//	ch.OverrideValue(255) // Value() == 255
//	ch.RevertOverride()   // Value() == 128
//
// A [Universe] is a fixed block of exactly [UniverseSize] channels addressed
// 0..511. Writes outside that range are tolerated: they are logged as a
// warning and ignored, so malformed input from a live console never takes a
// running show down.
//
// A [Registry] maps universe ids to universes. Registering a universe whose
// id is already present replaces the earlier one (last write wins).
//
// # Equality
//
// Universes compare by id only ([Universe.Equal]); channel contents do not
// participate.
//
// # Concurrency
//
// None of the types are safe for concurrent use. A single controller owns the
// registry and mutates it from one goroutine.
package dmx
