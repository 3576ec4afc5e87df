package engine

import (
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

const (
	textInvalidArguments   = "ERR: INVALID ARGUMENTS"
	textUnrecognized       = "ERR: CANNOT RECOGNIZE INPUT"
	textInvalidPath        = "ERR: INVALID PATH"
	textInvalidDirectory   = "ERR: INVALID DIRECTORY"
	textDirectoryNotFound  = "ERR: DIRECTORY DOESN'T EXIST"
	textNotRemovable       = "ERR: CANNOT REMOVE CURRENT DIRECTORY OR ITS PARENT"
	textEmptyListing       = "DIRS: NO DIRECTORY EXIST"
	textUnsupportedSession = "ERR: UNSUPPORTED ARGUMENTS."
	textDeleted            = "SUCC: DELETED"
	textReachedRoot        = "SUCC: REACHED TO ROOT DIRECTORY"
	textReset              = "SUCC: RESET TO ROOT " + vfsh.RootLabel
)

func msgInvalidArguments() vfsh.Message {
	return vfsh.Failure(textInvalidArguments, vfsh.ErrInvalidArguments)
}

func msgUnrecognized() vfsh.Message {
	return vfsh.Failure(textUnrecognized, vfsh.ErrUnrecognizedCommand)
}

func msgInvalidPath() vfsh.Message {
	return vfsh.Failure(textInvalidPath, vfsh.ErrInvalidPath)
}

func msgInvalidDirectory() vfsh.Message {
	return vfsh.Failure(textInvalidDirectory, vfsh.ErrInvalidDirectory)
}

func msgDirectoryNotFound() vfsh.Message {
	return vfsh.Failure(textDirectoryNotFound, vfsh.ErrDirectoryNotFound)
}

func msgNotRemovable() vfsh.Message {
	return vfsh.Failure(textNotRemovable, vfsh.ErrNotRemovable)
}

func msgEmptyListing() vfsh.Message {
	return vfsh.Failure(textEmptyListing, vfsh.ErrEmptyListing)
}

func msgUnsupportedSession() vfsh.Message {
	return vfsh.Failure(textUnsupportedSession, vfsh.ErrUnsupportedSessionArgument)
}

func msgPath(path string) vfsh.Message {
	return vfsh.Info("PATH: " + path)
}

func msgListing(names string) vfsh.Message {
	return vfsh.Info("DIRS: " + names)
}

func msgCreated(path string) vfsh.Message {
	return vfsh.Info("SUCC: CREATED SUCCESSFULLY - FULL PATH: " + path)
}

func msgAlreadyExisted(path string) vfsh.Message {
	return vfsh.Notice("ERR: ALREADY EXISTED - FULL PATH: "+path, vfsh.ErrAlreadyExists)
}

func msgReached(path string) vfsh.Message {
	return vfsh.Info("SUCC: REACHED: " + path)
}

func msgDeleted() vfsh.Message {
	return vfsh.Info(textDeleted)
}

func msgReachedRoot() vfsh.Message {
	return vfsh.Info(textReachedRoot)
}

func msgReset() vfsh.Message {
	return vfsh.Info(textReset)
}
