package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStartNode is wrapped by a *GraphError when the start
	// endpoint of an edge does not refer to an occupied node slot.
	ErrUnknownStartNode = errors.New("start node does not exist")

	// ErrUnknownEndNode is wrapped by a *GraphError when the end endpoint of
	// an edge does not refer to an occupied node slot.
	ErrUnknownEndNode = errors.New("end node does not exist")
)

// Missing identifies which endpoints of a rejected edge were absent.
type Missing int

const (
	// MissingStart means only the start node was absent.
	MissingStart Missing = iota + 1
	// MissingEnd means only the end node was absent.
	MissingEnd
	// MissingBoth means neither endpoint existed.
	MissingBoth
)

// String returns "start", "end" or "both".
func (m Missing) String() string {
	switch m {
	case MissingStart:
		return "start"
	case MissingEnd:
		return "end"
	case MissingBoth:
		return "both"
	}
	return fmt.Sprintf("Missing(%d)", int(m))
}

// GraphError reports a structural violation, currently only an edge whose
// endpoints are not both present. Use errors.Is with ErrUnknownStartNode or
// ErrUnknownEndNode to branch on the cause.
type GraphError struct {
	Start   NodeIndex
	End     NodeIndex
	Missing Missing
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch e.Missing {
	case MissingStart:
		return fmt.Sprintf("graph: start node %d does not exist", e.Start)
	case MissingEnd:
		return fmt.Sprintf("graph: end node %d does not exist", e.End)
	default:
		return fmt.Sprintf("graph: nodes do not exist (start: %d, end: %d)", e.Start, e.End)
	}
}

// Unwrap returns the sentinel errors matching the missing endpoints.
func (e *GraphError) Unwrap() []error {
	switch e.Missing {
	case MissingStart:
		return []error{ErrUnknownStartNode}
	case MissingEnd:
		return []error{ErrUnknownEndNode}
	case MissingBoth:
		return []error{ErrUnknownStartNode, ErrUnknownEndNode}
	}
	return nil
}
