// Package controller owns the live show state: one dmx.Registry of
// universes and one patch graph of nodes.
//
// The controller is the single writer of both structures. Every operation
// is synchronous and it does no locking of its own; front ends that accept
// concurrent input (the HTTP server) serialise calls themselves.
//
// Channel writes addressed to an unconfigured universe are logged and
// rejected with a UNIVERSE_NOT_FOUND error, leaving every universe untouched.
// Out-of-range channel indices are passed through to the universe, which
// logs and ignores them.
//
// Each controller carries a random show id, used as a log field and
// reported by the HTTP API so clients can tell restarts apart.
package controller
