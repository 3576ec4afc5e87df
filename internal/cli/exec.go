package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/engine"
	"github.com/vvka-141/vfsh/internal/tui"
)

var execCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Run shell commands non-interactively",
	Long: `Exec runs each argument as one shell command line against a fresh, empty
tree and prints the results. With --file, command lines are read from a script
instead; blank lines and lines starting with '#' are skipped.

By default every command runs even if an earlier one failed, just as in the
interactive shell. With --strict, the first command that reports an error stops
the run and vfsh exits with code 13. "ALREADY EXISTED" is informational and
never stops a strict run.

Examples:
  # Build a small tree and show where we ended up
  vfsh exec "mkdir /usr/local/bin" "cd /usr/local" pwd

  # Run a script, failing fast
  vfsh exec --file setup.vfsh --strict`,
	Args:              RequireCommandsOrFile,
	ValidArgsFunction: completeKeywords,
	RunE:              runExec,
}

var execFlags struct {
	file   string
	strict bool
}

func resetExecFlags() {
	execFlags.file = ""
	execFlags.strict = false
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringVarP(&execFlags.file, "file", "f", "", "Read command lines from a script file")
	execCmd.Flags().BoolVar(&execFlags.strict, "strict", false, "Stop at the first command that reports an error")
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadShellConfig(cmd)
	if err != nil {
		return err
	}

	script := strings.Join(args, "\n")
	if execFlags.file != "" {
		content, err := os.ReadFile(execFlags.file)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		script = string(content)
	}

	logger := newLogger(cmd, cfg)
	eng := engine.New(logger)
	logger.Verbose("exec: session %s, strict=%t", eng.SessionID(), execFlags.strict)

	return tui.RunLines(strings.NewReader(script), cmd.OutOrStdout(), eng, tui.LineOptions{
		SkipComments: execFlags.file != "",
		Strict:       execFlags.strict,
	})
}
