package compgraph

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is. The concrete error types below unwrap to
// these, so callers can branch on the kind without destructuring.
var (
	// ErrUnknownInput matches failures caused by an input name that was
	// never registered.
	ErrUnknownInput = errors.New("unknown input name")
	// ErrUnsetInput matches Compute reaching an input node whose value was
	// never supplied.
	ErrUnsetInput = errors.New("input value not set")
	// ErrInvalidReference matches construction-time references to node ids
	// that do not belong to this graph.
	ErrInvalidReference = errors.New("invalid node reference")
	// ErrDuplicateInput matches an attempt to register an input name twice.
	ErrDuplicateInput = errors.New("input name already registered")
)

// UnknownInputError is returned by SetInput when the name was never
// registered on this graph.
type UnknownInputError struct {
	Name string
}

func (e *UnknownInputError) Error() string {
	return fmt.Sprintf("unknown input %q", e.Name)
}

func (e *UnknownInputError) Unwrap() error { return ErrUnknownInput }

// UnsetInputError is returned by Compute when evaluation reaches an input
// node that was never set. Name is empty if the node was never registered.
type UnsetInputError struct {
	ID   NodeID
	Name string
}

func (e *UnsetInputError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("input %q (node %d) has no value", e.Name, e.ID)
	}
	return fmt.Sprintf("input node %d has no value", e.ID)
}

func (e *UnsetInputError) Unwrap() error { return ErrUnsetInput }

// InvalidReferenceError is returned when an operation is given a node id
// that this graph did not mint, or a node of the wrong kind.
type InvalidReferenceError struct {
	ID     NodeID
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference to node %d: %s", e.ID, e.Reason)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

// DuplicateInputError is returned by RegisterInput when the name is already
// bound. Bindings are never silently overwritten.
type DuplicateInputError struct {
	Name string
}

func (e *DuplicateInputError) Error() string {
	return fmt.Sprintf("input %q already registered", e.Name)
}

func (e *DuplicateInputError) Unwrap() error { return ErrDuplicateInput }
