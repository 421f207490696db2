package builtin

import (
	"context"
	"os/exec"

	"github.com/taskfs/taskfs/engine/core"
	"github.com/taskfs/taskfs/engine/task"
)

// Executable checks that an external binary is resolvable on the search
// path. It is complete exactly when the binary is found, so a scheduler only
// ever invokes Run when the precondition failed. Message is advisory text
// for the failure report and is deliberately kept out of the identity
// parameters.
type Executable struct {
	Binary  string
	Message string
}

// NewExecutable returns a presence check for the named binary.
func NewExecutable(name, message string) *Executable {
	return &Executable{Binary: name, Message: message}
}

func (e *Executable) Name() string {
	return "executable"
}

func (e *Executable) Params() *task.Params {
	return task.NewParams().Set("name", e.Binary)
}

func (e *Executable) Complete() bool {
	_, err := exec.LookPath(e.Binary)
	return err == nil
}

// Run always fails: reaching it means the binary was absent when the task
// was scheduled.
func (e *Executable) Run(_ context.Context) error {
	return core.NewDependencyUnavailableError(e.Binary, e.Message)
}

// OutputPath reports that this task has no filesystem output; completeness
// is an environment predicate.
func (e *Executable) OutputPath() (string, error) {
	return "", task.ErrNoOutput
}
