package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func TestRenderer_PlainIsMessageText(t *testing.T) {
	r := NewRenderer(false)
	var res vfsh.Result
	res.Add(
		vfsh.Info("SUCC: DELETED"),
		vfsh.Failure("ERR: INVALID PATH", vfsh.ErrInvalidPath),
	)

	assert.Equal(t, "SUCC: DELETED\nERR: INVALID PATH", r.Result(res))
}

func TestRenderer_ColorAddsSymbols(t *testing.T) {
	r := NewRenderer(true)

	assert.Contains(t, r.Message(vfsh.Info("SUCC: DELETED")), SymbolCheck)
	assert.Contains(t, r.Message(vfsh.Failure("ERR: INVALID PATH", vfsh.ErrInvalidPath)), SymbolCross)
	assert.Contains(t, r.Message(vfsh.Notice("ERR: ALREADY EXISTED - FULL PATH: /a", vfsh.ErrAlreadyExists)), SymbolNotice)
}

func TestRenderer_BannerListsKeywords(t *testing.T) {
	banner := NewRenderer(false).Banner([]string{"mkdir", "ls"})

	assert.Contains(t, banner, "1. mkdir")
	assert.Contains(t, banner, "2. ls")
	assert.True(t, strings.HasSuffix(banner, "3. exit"))
}
