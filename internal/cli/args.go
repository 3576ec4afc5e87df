package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireCommandsOrFile validates that exec receives either command arguments
// or a --file script, but not both.
func RequireCommandsOrFile(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if len(args) == 0 && file == "" {
		return fmt.Errorf(`missing required argument: <command...> or --file

Usage: %s

Example:
  %s "mkdir a" "cd a" pwd`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 0 && file != "" {
		return fmt.Errorf("accepts either command arguments or --file, received both")
	}
	return nil
}
