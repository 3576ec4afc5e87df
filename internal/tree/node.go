package tree

import (
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Node is a directory in the tree.
type Node struct {
	name     string
	children []*Node
	parent   *Node
}

// New creates a detached node. A detached node is the root of its own tree.
func New(name string) *Node {
	return &Node{name: name}
}

// NewRoot creates a fresh single-node tree labeled with vfsh.RootLabel.
func NewRoot() *Node {
	return New(vfsh.RootLabel)
}

// Name returns the node's label.
func (n *Node) Name() string { return n.name }

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Children returns the children in insertion order.
// The returned slice is a copy; mutating it does not change the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Names returns the children's names in insertion order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for _, c := range n.children {
		names = append(names, c.name)
	}
	return names
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// AttachChild makes child the last child of n and returns it.
// Name uniqueness is the caller's responsibility. A child that already has
// a parent is detached from it first.
// Panics if child is n or one of n's ancestors.
func (n *Node) AttachChild(child *Node) *Node {
	if child.IsAncestorOf(n) {
		panic("tree: attaching " + child.name + " under " + n.name + " would create a cycle")
	}
	if child.parent != nil {
		child.parent.DetachChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// DetachChild removes child from n by identity, not by name.
// Returns false if child is not one of n's children.
func (n *Node) DetachChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Lineage returns n followed by each of its ancestors, ending at the root.
func (n *Node) Lineage() []*Node {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// IsAncestorOf reports whether n is other or one of other's ancestors.
func (n *Node) IsAncestorOf(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// RootOf walks parent links from n to the node that has no parent.
func RootOf(n *Node) *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// PathFromRoot renders the names from the root down to n.
// The root contributes its own label; descendants are joined with
// vfsh.PathSeparator without doubling a separator the root label ends with.
func PathFromRoot(n *Node) string {
	chain := n.Lineage()
	root := chain[len(chain)-1]
	if len(chain) == 1 {
		return root.name
	}

	names := make([]string, 0, len(chain)-1)
	for i := len(chain) - 2; i >= 0; i-- {
		names = append(names, chain[i].name)
	}

	prefix := root.name
	if !strings.HasSuffix(prefix, vfsh.PathSeparator) {
		prefix += vfsh.PathSeparator
	}
	return prefix + strings.Join(names, vfsh.PathSeparator)
}
