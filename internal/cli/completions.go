package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/engine"
)

// completeKeywords provides shell completion for exec arguments: each
// argument is a whole command line, so only its keyword is suggested.
func completeKeywords(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, k := range append(engine.Keywords(), "exit") {
		if strings.HasPrefix(k, strings.ToLower(toComplete)) {
			matches = append(matches, k)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
