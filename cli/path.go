package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskfs/taskfs/engine/task"
	"github.com/taskfs/taskfs/pkg/config"
)

// PathCmd prints the canonical output path for a task identity without
// touching the filesystem.
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <type-name>",
		Short: "Print the canonical output path for a task identity",
		Args:  cobra.ExactArgs(1),
		RunE:  executePath,
	}

	cmd.Flags().StringArrayP("param", "p", nil, "Identity parameter as key=value (repeatable)")
	cmd.Flags().String("ext", task.DefaultExt, "Filename extension")
	cmd.Flags().Bool("digest", false, "Replace the readable name with its SHA-1 digest")
	cmd.Flags().String("first-of-month", "", "Collapse the named date parameter onto the first of its month")

	return cmd
}

func executePath(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())

	rawParams, err := cmd.Flags().GetStringArray("param")
	if err != nil {
		return err
	}
	params := task.NewParams()
	for _, raw := range rawParams {
		key, value, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return fmt.Errorf("invalid parameter %q, expected key=value", raw)
		}
		params.Set(key, value)
	}

	if dateParam, _ := cmd.Flags().GetString("first-of-month"); dateParam != "" {
		params, err = task.Normalize(params, []task.Rule{task.FirstOfMonth(dateParam)})
		if err != nil {
			return err
		}
	}

	ext, _ := cmd.Flags().GetString("ext")
	digest, _ := cmd.Flags().GetBool("digest")
	path, err := cfg.Layout().Path(args[0], params, task.PathOpts{Ext: ext, Digest: digest})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
