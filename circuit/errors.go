package circuit

import (
	"errors"
	"fmt"
)

// Construction errors: raised when a node or edge is added, or at
// Build().
var (
	// ErrDuplicateInput indicates Input was called twice with the same name.
	ErrDuplicateInput = errors.New("circuit: duplicate input name")

	// ErrDanglingHandle indicates an Op/StatefulOp/Output referenced a
	// Handle whose node id is not registered in this Builder.
	ErrDanglingHandle = errors.New("circuit: dangling node handle")

	// ErrCyclicTopology indicates the constructed graph contains a cycle.
	// There is no delay-node edge type that bypasses the DAG check, so
	// any cycle is rejected at Build().
	ErrCyclicTopology = errors.New("circuit: cyclic topology")

	// ErrNilComputeFn indicates Op/StatefulOp was given a nil compute
	// function — a construction-time programmer error.
	ErrNilComputeFn = errors.New("circuit: compute function is nil")

	// ErrAlreadyBuilt indicates Build was called more than once on the
	// same Builder.
	ErrAlreadyBuilt = errors.New("circuit: Build called twice on the same Builder")
)

// Type/key errors: raised at Step start, before any node executes.
var (
	// ErrUnknownInput indicates Step received a delta for a name that was
	// never registered via Input.
	ErrUnknownInput = errors.New("circuit: unknown input name")

	// ErrDeltaTypeMismatch indicates a delta's concrete type does not
	// match the Input handle's declared element type.
	ErrDeltaTypeMismatch = errors.New("circuit: delta type mismatch")
)

// ErrStepAborted wraps an operator-internal error, identified by the
// failing node and step number. State mutations from operators earlier
// in topological order within this step are left as-is; the documented
// recovery is Reset().
type ErrStepAborted struct {
	Step int
	Node string
	Err  error
}

func (e *ErrStepAborted) Error() string {
	return fmt.Sprintf("circuit: step %d aborted at node %q: %v", e.Step, e.Node, e.Err)
}

func (e *ErrStepAborted) Unwrap() error {
	return e.Err
}

func wrapf(op string, err error) error {
	return fmt.Errorf("circuit: %s: %w", op, err)
}
