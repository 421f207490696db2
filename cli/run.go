package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskfs/taskfs/engine/runner"
)

// RunCmd executes a declared pipeline file sequentially, skipping tasks
// whose outputs already exist.
func RunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <pipeline.yaml>",
		Short: "Run a declared task pipeline",
		Args:  cobra.ExactArgs(1),
		RunE:  executeRun,
	}
}

func executeRun(cmd *cobra.Command, args []string) error {
	pipeline, err := runner.LoadPipeline(args[0])
	if err != nil {
		return err
	}
	tasks, err := pipeline.Build()
	if err != nil {
		return err
	}

	results, runErr := runner.Run(cmd.Context(), tasks...)
	for _, result := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", result.State, result.Name)
	}
	return runErr
}
