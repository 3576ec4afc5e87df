package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/internal/tree"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Engine executes command lines for one shell session.
// Not safe for concurrent use.
type Engine struct {
	current   *tree.Node
	logger    vfsh.Logger
	sessionID uuid.UUID
}

var _ vfsh.Executor = (*Engine)(nil)

// New creates an engine positioned at the root of a fresh tree.
// A nil logger discards diagnostics.
func New(logger vfsh.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	e := &Engine{logger: logger}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.current = tree.NewRoot()
	e.sessionID = uuid.New()
	e.logger.Verbose("session %s started at %s", e.sessionID, vfsh.RootLabel)
}

// Current returns the working directory.
func (e *Engine) Current() *tree.Node { return e.current }

// Root returns the root of the active tree.
func (e *Engine) Root() *tree.Node { return tree.RootOf(e.current) }

// Pwd returns the full path of the working directory.
func (e *Engine) Pwd() string { return tree.PathFromRoot(e.current) }

// SessionID identifies the active tree. It changes on "session clear".
func (e *Engine) SessionID() uuid.UUID { return e.sessionID }

// Execute runs one raw command line and returns its output.
// A blank line is a no-op and yields an empty Result.
func (e *Engine) Execute(line string) vfsh.Result {
	var res vfsh.Result

	line = strings.TrimSpace(line)
	if line == "" {
		return res
	}

	keyword, args := Tokenize(line)
	cmd := ParseCommand(keyword)
	e.logger.Verbose("[%s] dispatch %q args=%q cwd=%s", e.sessionID, keyword, args, e.Pwd())

	switch cmd {
	case CommandPwd:
		res.Add(e.pwd())
	case CommandLs:
		res.Add(e.ls())
	case CommandMkdir:
		if len(args) == 0 {
			res.Add(msgInvalidArguments())
			break
		}
		for _, arg := range args {
			res.Add(e.mkdir(arg)...)
		}
	case CommandCd:
		if len(args) == 0 {
			res.Add(msgInvalidArguments())
			break
		}
		res.Add(e.cd(args[0])...)
	case CommandRm:
		if len(args) == 0 {
			res.Add(msgInvalidArguments())
			break
		}
		for _, arg := range args {
			res.Add(e.rm(arg))
		}
	case CommandSession:
		if len(args) == 0 {
			res.Add(msgInvalidArguments())
			break
		}
		res.Add(e.session(args[0]))
	default:
		res.Add(msgUnrecognized())
	}

	return res
}
