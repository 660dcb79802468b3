package node

import "fmt"

// CreationError is returned by Builder.Build when a node cannot be formed.
type CreationError struct {
	Msg string
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	return fmt.Sprintf("error while creating node: %q", e.Msg)
}

// ExecutionError describes a failed driver run. Drivers cannot fail yet, so
// nothing in this package returns it.
type ExecutionError struct {
	Driver string
	Cause  string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("error while executing driver function %q, cause: %s", e.Driver, e.Cause)
}
