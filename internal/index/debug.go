package index

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumpNode is a parent-free snapshot of a node for debug output
type dumpNode struct {
	Field    string
	Name     string
	Matches  []int
	Visible  bool
	Children []dumpNode
}

// DumpTree writes a readable snapshot of the whole tree to w, in the
// materializer's sort order. Used by the :debug command.
func DumpTree(w io.Writer, ix *Index) {
	roots := make([]*Node, 0, len(ix.children))
	for _, node := range ix.children {
		roots = append(roots, node)
	}
	sortNodes(roots)

	dump := make([]dumpNode, 0, len(roots))
	for _, node := range roots {
		dump = append(dump, snapshot(node))
	}

	spew.Fdump(w, dump)
}

func snapshot(n *Node) dumpNode {
	d := dumpNode{
		Field:   n.Field.String(),
		Name:    n.Name,
		Matches: n.Matches,
		Visible: n.Visible,
	}
	for _, child := range sortedChildren(n) {
		d.Children = append(d.Children, snapshot(child))
	}
	return d
}
