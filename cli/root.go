package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskfs/taskfs/pkg/config"
	"github.com/taskfs/taskfs/pkg/logger"
)

// RootCmd builds the taskfs command tree. Configuration and logger are
// loaded once in the persistent pre-run and travel via the command context.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskfs",
		Short:         "Deterministic output addressing for task pipelines",
		Long:          "taskfs derives reproducible filesystem locations from task identities,\nso re-running a pipeline with the same parameters reuses prior results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupContext(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Report source locations in logs")
	root.PersistentFlags().String("base-dir", "", "Base directory for task outputs (overrides config)")
	root.PersistentFlags().String("tag", "", "Tag sharding related tasks (overrides config)")

	root.AddCommand(
		PathCmd(),
		ChunkCmd(),
		CheckCmd(),
		RunCmd(),
		VersionCmd(),
	)

	return root
}

func setupContext(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.NewService().Load(cmd.Context(), configFile)
	if err != nil {
		return err
	}
	if baseDir, _ := cmd.Flags().GetString("base-dir"); baseDir != "" {
		cfg.Storage.BaseDir = baseDir
	}
	if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
		cfg.Storage.Tag = tag
	}

	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	if logLevel == "" {
		logLevel = cfg.Runtime.LogLevel
		logJSON = logJSON || cfg.Runtime.LogJSON
	}
	log := logger.SetupLogger(logLevel, logJSON, logSource)

	ctx := config.ContextWithConfig(cmd.Context(), cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	return nil
}
