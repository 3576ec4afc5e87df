package vfsh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", vfsh.LevelInfo.String())
	assert.Equal(t, "error", vfsh.LevelError.String())
	assert.Equal(t, "unknown", vfsh.Level(42).String())
}

func TestResult_EmptyIsSuccess(t *testing.T) {
	var r vfsh.Result
	assert.True(t, r.Empty())
	assert.False(t, r.HasError())
	assert.NoError(t, r.Err())
	assert.Equal(t, "", r.String())
}

func TestResult_ErrSkipsInformational(t *testing.T) {
	var r vfsh.Result
	r.Add(
		vfsh.Info("SUCC: CREATED SUCCESSFULLY - FULL PATH: /a"),
		vfsh.Notice("ERR: ALREADY EXISTED - FULL PATH: /b", vfsh.ErrAlreadyExists),
	)

	assert.False(t, r.HasError())
	assert.NoError(t, r.Err())
}

func TestResult_ErrJoinsFailures(t *testing.T) {
	var r vfsh.Result
	r.Add(
		vfsh.Failure("ERR: INVALID PATH", vfsh.ErrInvalidPath),
		vfsh.Info("SUCC: DELETED"),
		vfsh.Failure("ERR: DIRECTORY DOESN'T EXIST", vfsh.ErrDirectoryNotFound),
	)

	err := r.Err()
	assert.True(t, r.HasError())
	assert.True(t, errors.Is(err, vfsh.ErrInvalidPath))
	assert.True(t, errors.Is(err, vfsh.ErrDirectoryNotFound))
	assert.Equal(t, "ERR: INVALID PATH\nSUCC: DELETED\nERR: DIRECTORY DOESN'T EXIST", r.String())
}
