package engine

import (
	"strings"

	"github.com/vvka-141/vfsh/internal/tree"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func (e *Engine) pwd() vfsh.Message {
	return msgPath(e.Pwd())
}

func (e *Engine) ls() vfsh.Message {
	names := e.current.Names()
	if len(names) == 0 {
		return msgEmptyListing()
	}
	return msgListing(strings.Join(names, " "))
}

// mkdir creates the directory named by one argument. Multi-segment paths
// create every missing segment and report each one, so a repeated call only
// creates the suffix that is still missing.
func (e *Engine) mkdir(arg string) []vfsh.Message {
	form := ClassifyPath(arg)
	if form == FormSimple {
		return []vfsh.Message{e.ensureChild(e.current, arg)}
	}

	var msgs []vfsh.Message
	node := e.anchor(form)
	for _, name := range SplitPath(arg) {
		msgs = append(msgs, e.ensureChild(node, name))
		node = node.Child(name)
	}
	if len(msgs) == 0 {
		e.logger.Verbose("mkdir %q: no segments, nothing to create", arg)
	}
	return msgs
}

// ensureChild creates name under parent unless a child by that name exists.
func (e *Engine) ensureChild(parent *tree.Node, name string) vfsh.Message {
	if existing := parent.Child(name); existing != nil {
		return msgAlreadyExisted(tree.PathFromRoot(existing))
	}
	created := parent.AttachChild(tree.New(name))
	path := tree.PathFromRoot(created)
	e.logger.Verbose("created %s", path)
	return msgCreated(path)
}

// cd moves the working directory. Multi-segment paths are resolved in full
// before anything moves.
func (e *Engine) cd(arg string) []vfsh.Message {
	form := ClassifyPath(arg)

	if form == FormSimple {
		target := e.current.Child(arg)
		if target == nil {
			return []vfsh.Message{msgInvalidDirectory()}
		}
		e.current = target
		return []vfsh.Message{msgReached(e.Pwd())}
	}

	if form == FormRootAnchored && isOnlySeparators(arg) {
		e.current = e.Root()
		return []vfsh.Message{msgReachedRoot()}
	}

	segments := SplitPath(arg)
	start := e.anchor(form)
	if resolve(start, segments) == nil {
		return []vfsh.Message{msgInvalidPath()}
	}

	msgs := make([]vfsh.Message, 0, len(segments))
	e.current = start
	for _, name := range segments {
		e.current = e.current.Child(name)
		msgs = append(msgs, msgReached(e.Pwd()))
	}
	return msgs
}

// rm detaches the directory named by one argument, along with its subtree.
// The working directory and its ancestors can never be removed.
func (e *Engine) rm(arg string) vfsh.Message {
	form := ClassifyPath(arg)

	var target *tree.Node
	if form == FormSimple {
		target = e.current.Child(arg)
		if target == nil {
			if e.namesLineage(arg) {
				return msgNotRemovable()
			}
			return msgDirectoryNotFound()
		}
	} else {
		target = resolve(e.anchor(form), SplitPath(arg))
		if target == nil {
			return msgInvalidPath()
		}
	}

	if target.IsAncestorOf(e.current) {
		return msgNotRemovable()
	}

	parent := target.Parent()
	path := tree.PathFromRoot(target)
	if parent == nil || !parent.DetachChild(target) {
		return msgDirectoryNotFound()
	}
	e.logger.Verbose("removed %s", path)
	return msgDeleted()
}

// namesLineage reports whether name is the name of the working directory or
// of one of its ancestors below the root.
func (e *Engine) namesLineage(name string) bool {
	for _, n := range e.current.Lineage() {
		if !n.IsRoot() && n.Name() == name {
			return true
		}
	}
	return false
}

// session handles "session clear", discarding the whole tree.
func (e *Engine) session(arg string) vfsh.Message {
	if arg != "clear" {
		return msgUnsupportedSession()
	}
	e.reset()
	return msgReset()
}
