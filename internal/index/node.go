package index

import "strings"

// Node is a single element of the category tree. A node exclusively owns its
// children; Parent is a non-owning back-reference used for lookup only and
// never for destruction ordering.
type Node struct {
	Field  Field
	Name   string
	Folded string // lowercased copy of Name, computed once at construction
	Parent *Node
	// Children maps each child's Key{Field, Name} to the owned child node
	Children map[Key]*Node
	// Matches accumulates the id of every record whose chain passes through
	// this node, so ancestors hold the union of all reachable leaf matches.
	// Duplicates are preserved so counts reflect real entries.
	Matches []int
	Visible bool
}

func newNode(field Field, name string, parent *Node) *Node {
	return &Node{
		Field:    field,
		Name:     name,
		Folded:   strings.ToLower(name),
		Parent:   parent,
		Children: make(map[Key]*Node),
		Visible:  true,
	}
}

// Leaf reports whether this node is a leaf-category node
func (n *Node) Leaf() bool {
	return n.Field.Leaf()
}

// Depth returns the number of ancestors above this node (roots are 0)
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// walk visits n and every descendant depth-first
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}
