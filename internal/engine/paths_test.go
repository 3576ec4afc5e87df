package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/vfsh/internal/tree"
)

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		raw  string
		want PathForm
	}{
		{"a", FormSimple},
		{"..", FormSimple},
		{"/", FormRootAnchored},
		{"/a", FormRootAnchored},
		{"//a/b", FormRootAnchored},
		{"a/b", FormDeepRelative},
		{"a/", FormDeepRelative},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPath(tt.raw))
		})
	}
}

func TestSplitPath_DiscardsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitPath("/a/b"))
	assert.Equal(t, []string{"a", "b"}, SplitPath("//a///b/"))
	assert.Equal(t, []string{"a"}, SplitPath("a/"))
	assert.Empty(t, SplitPath("///"))
	assert.Empty(t, SplitPath(""))
}

func TestIsOnlySeparators(t *testing.T) {
	assert.True(t, isOnlySeparators("/"))
	assert.True(t, isOnlySeparators("///"))
	assert.False(t, isOnlySeparators(""))
	assert.False(t, isOnlySeparators("/a"))
}

func TestResolve(t *testing.T) {
	root := tree.NewRoot()
	a := root.AttachChild(tree.New("a"))
	b := a.AttachChild(tree.New("b"))

	assert.Same(t, b, resolve(root, []string{"a", "b"}))
	assert.Same(t, a, resolve(root, []string{"a"}))
	assert.Nil(t, resolve(root, []string{"a", "x"}))
	assert.Nil(t, resolve(root, []string{"b"}))
	assert.Nil(t, resolve(root, nil), "an empty path never resolves")
}

func TestPathForm_String(t *testing.T) {
	assert.Equal(t, "simple", FormSimple.String())
	assert.Equal(t, "root-anchored", FormRootAnchored.String())
	assert.Equal(t, "deep-relative", FormDeepRelative.String())
}
