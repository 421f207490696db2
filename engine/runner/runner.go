// Package runner drives tasks through the scheduling contract: plan with
// Params, skip with Complete, conditionally Run. It is deliberately dumb —
// strictly sequential, no retries, no dependency resolution — because
// execution ordering belongs to whatever engine embeds this layer.
package runner

import (
	"context"
	"fmt"

	"github.com/taskfs/taskfs/engine/task"
	"github.com/taskfs/taskfs/pkg/logger"
)

// Result records the terminal state of one task invocation.
type Result struct {
	Name   string
	Params *task.Params
	State  task.State
	Err    error
}

// Run executes tasks in order. A task whose output already exists is
// recorded as SATISFIED without invoking Run. The first failure stops the
// sequence; completed results including the failed one are returned either
// way.
func Run(ctx context.Context, tasks ...task.Task) ([]Result, error) {
	log := logger.FromContext(ctx)
	results := make([]Result, 0, len(tasks))
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := Result{Name: t.Name(), Params: t.Params(), State: task.StatePlanned}
		log.Debug("task planned", "task", result.Name)

		if t.Complete() {
			result.State = task.StateSatisfied
			log.Info("task already satisfied", "task", result.Name)
			results = append(results, result)
			continue
		}

		result.State = task.StateRunning
		log.Info("task running", "task", result.Name)
		if err := t.Run(ctx); err != nil {
			result.State = task.StateFailed
			result.Err = err
			results = append(results, result)
			log.Error("task failed", "task", result.Name, "error", err)
			return results, fmt.Errorf("task %s failed: %w", result.Name, err)
		}

		result.State = task.StateSatisfied
		results = append(results, result)
		log.Info("task satisfied", "task", result.Name)
	}
	return results, nil
}
