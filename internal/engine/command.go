package engine

import (
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Command identifies a supported keyword.
type Command int

const (
	CommandUnknown Command = iota
	CommandPwd
	CommandLs
	CommandMkdir
	CommandCd
	CommandRm
	CommandSession
)

var keywords = map[string]Command{
	"pwd":     CommandPwd,
	"ls":      CommandLs,
	"mkdir":   CommandMkdir,
	"cd":      CommandCd,
	"rm":      CommandRm,
	"session": CommandSession,
}

// String returns the keyword for the command.
func (c Command) String() string {
	for k, v := range keywords {
		if v == c {
			return k
		}
	}
	return "unknown"
}

// Keywords returns the supported keywords in display order.
func Keywords() []string {
	return []string{"mkdir", "ls", "pwd", "rm", "cd", "session clear"}
}

// ParseCommand maps a keyword to a Command, ignoring case.
func ParseCommand(keyword string) Command {
	if c, ok := keywords[strings.ToLower(keyword)]; ok {
		return c
	}
	return CommandUnknown
}

// Tokenize splits a command line on runs of whitespace.
// The first token is returned lowercased as the keyword. An empty or blank
// line returns an empty keyword.
func Tokenize(line string) (keyword string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsExit reports whether the line asks the REPL to terminate.
func IsExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), vfsh.ExitKeyword)
}
