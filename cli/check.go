package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskfs/taskfs/engine/builtin"
)

// CheckCmd reports whether an external binary is resolvable on the search
// path. Missing binaries exit non-zero with an error naming them.
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <binary>",
		Short: "Check that an external binary is available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exe := builtin.NewExecutable(args[0], "")
			if exe.Complete() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: found\n", args[0])
				return nil
			}
			return exe.Run(cmd.Context())
		},
	}
}
