package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/engine"
	"github.com/vvka-141/vfsh/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "vfsh",
	Short: "In-memory virtual filesystem shell",
	Long: asciiLogo + `

vfsh simulates a directory tree entirely in memory and lets you navigate and
change it with a handful of shell commands. Nothing touches your disk: the tree
exists for the lifetime of the session only.

Commands inside the shell:
  pwd                 print the working directory
  ls                  list directories in the working directory
  mkdir <path...>     create directories (missing parents are created)
  cd <path>           change the working directory
  rm <path...>        remove directories with everything under them
  session clear       discard the whole tree and start over at /
  exit                leave the shell

Paths starting with "/" are resolved from the root, paths containing "/"
from the working directory, and plain names are children of the working
directory.

When stdin is not a terminal, vfsh reads one command per line and prints
results without prompts.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  13 - A command failed in --strict mode`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

var rootFlags struct {
	noBanner bool
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to a vfsh.yaml file (default: ./vfsh.yaml or $VFSH_CONFIG)")
	rootCmd.Flags().BoolVar(&rootFlags.noBanner, "no-banner", false, "Do not print the welcome banner")
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadShellConfig(cmd)
	if err != nil {
		return err
	}
	if rootFlags.noBanner {
		cfg.Banner = false
	}

	logger := newLogger(cmd, cfg)
	eng := engine.New(logger)
	logger.Verbose("session %s ready", eng.SessionID())

	opts := tui.Options{
		PromptSuffix: cfg.Prompt,
		Banner:       cfg.Banner,
		Color:        cfg.Color,
		HistorySize:  cfg.HistorySize,
	}

	if tui.IsInteractive() {
		return tui.RunInteractive(eng, opts)
	}

	opts.Banner = false
	opts.Color = false
	return tui.RunLines(cmd.InOrStdin(), cmd.OutOrStdout(), eng, tui.LineOptions{Options: opts})
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
