package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskfs/taskfs/engine/builtin"
	"github.com/taskfs/taskfs/engine/runner"
	"github.com/taskfs/taskfs/pkg/config"
)

// ChunkCmd splits an input file into chunks and prints the manifest path.
// Re-invoking with the same input and chunk count reuses the existing
// manifest.
func ChunkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk <file>",
		Short: "Split a file into chunks addressed by a manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  executeChunk,
	}

	cmd.Flags().IntP("chunks", "n", 1, "Number of chunks to produce")

	return cmd
}

func executeChunk(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	chunks, err := cmd.Flags().GetInt("chunks")
	if err != nil {
		return err
	}

	split := &builtin.SplitFile{Filename: args[0], Chunks: chunks, Layout: cfg.Layout()}
	if _, err := runner.Run(cmd.Context(), split); err != nil {
		return err
	}

	manifest, err := split.OutputPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), manifest)
	return nil
}
