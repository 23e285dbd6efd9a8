package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thisorthat/internal/config"
	"thisorthat/internal/logging"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quizctl",
		Short:         "Tools for the this-or-that design quiz",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newNormalizeCommand())
	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newImportCommand())
	cmd.AddCommand(newHashPasswordCommand())
	cmd.AddCommand(newTokenCommand())

	return cmd
}

// loadRuntime reads service configuration and builds a logger that writes to
// stderr so command output stays machine readable.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(config.LoggingConfig{Level: cfg.Logging.Level, Format: "console"})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
