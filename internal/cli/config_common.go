package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/config"
	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// loadShellConfig resolves vfsh.yaml, .env and environment overrides.
// Any failure is reported as vfsh.ErrInvalidConfig so it maps to its exit code.
func loadShellConfig(cmd *cobra.Command) (*config.ShellConfig, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Resolve(path)
	if err != nil {
		if errors.Is(err, vfsh.ErrInvalidConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", vfsh.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// newLogger builds the diagnostics logger. The flag wins over the config file.
func newLogger(cmd *cobra.Command, cfg *config.ShellConfig) vfsh.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Verbose || getVerboseFlag(cmd))
}
