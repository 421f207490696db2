package task

import (
	"context"
	"errors"
)

// ErrNoOutput is returned by OutputPath for tasks whose completeness is an
// environment predicate rather than a filesystem artifact.
var ErrNoOutput = errors.New("task declares no filesystem output")

// -----------------------------------------------------------------------------
// Task contract
// -----------------------------------------------------------------------------

// Task is the minimal surface every concrete task implements. An external
// scheduler plans with Params, skips with Complete and conditionally invokes
// Run; this layer only decides where a task's output belongs and whether it
// already exists.
type Task interface {
	// Name returns the stable type name of the task kind. It is part of the
	// output identity and must not vary between invocations.
	Name() string
	// Params returns the ordered parameter mapping relevant to output
	// identity.
	Params() *Params
	// Complete reports whether the task's output already exists in valid
	// form. It must stay cheap: an existence check, never recomputation.
	Complete() bool
	// Run performs the work. Outputs are written to a temporary location and
	// renamed into place, so a partially written output is never observed as
	// complete.
	Run(ctx context.Context) error
	// OutputPath returns the canonical output location for this task's
	// identity.
	OutputPath() (string, error)
}

// -----------------------------------------------------------------------------
// States
// -----------------------------------------------------------------------------

// State describes a task instance as seen by the driving scheduler:
// PLANNED -> SATISFIED when Complete is already true, otherwise
// PLANNED -> RUNNING -> SATISFIED or FAILED. FAILED is terminal for one
// invocation; a later scheduling attempt re-enters PLANNED.
type State string

const (
	StatePlanned   State = "PLANNED"
	StateRunning   State = "RUNNING"
	StateSatisfied State = "SATISFIED"
	StateFailed    State = "FAILED"
)

func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether the state ends the current invocation.
func (s State) IsTerminal() bool {
	return s == StateSatisfied || s == StateFailed
}
