package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteKeywords(t *testing.T) {
	got, directive := completeKeywords(execCmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.ElementsMatch(t, []string{"mkdir", "ls", "pwd", "rm", "cd", "session clear", "exit"}, got)

	got, _ = completeKeywords(execCmd, nil, "M")
	assert.Equal(t, []string{"mkdir"}, got)

	got, _ = completeKeywords(execCmd, nil, "zz")
	assert.Empty(t, got)
}
