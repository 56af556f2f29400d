package index

import (
	"sort"
	"strings"
)

// Index owns the root-level child collection and the root registry. It is
// built once per library and torn down wholesale when the library changes;
// there is no partial delete. All operations run to completion on the
// caller's goroutine; a caller that needs a rebuild while observers are
// reading should build a fresh Index off to the side and swap it in one
// assignment.
type Index struct {
	children map[Key]*Node
	roots    []*Node
}

// New creates an empty index
func New() *Index {
	return &Index{
		children: make(map[Key]*Node),
	}
}

// Insert walks the chain from the root collection, creating nodes on demand,
// and appends recordID to the matches of every node along the chain. Keys
// with an empty name are skipped, silently shortening the chain. Re-inserting
// an identical chain reuses every existing node; record ids always append,
// duplicates included.
func (ix *Index) Insert(recordID int, chain []Key) {
	var parent *Node
	children := ix.children

	for _, key := range chain {
		if key.Name == "" {
			continue
		}

		node, ok := children[key]
		if !ok {
			node = newNode(key.Field, key.Name, parent)
			children[key] = node
		}

		node.Matches = append(node.Matches, recordID)

		parent = node
		children = node.Children
	}
}

// Roots returns the root registry in its current order. The slice is rebuilt
// by RebuildRoots; callers must not hold it across a rebuild.
func (ix *Index) Roots() []*Node {
	return ix.roots
}

// RebuildRoots clears and repopulates the flat list of root-level nodes,
// sorted by name. Root membership does not depend on visibility; the
// materializer consults the per-node flag.
func (ix *Index) RebuildRoots() {
	ix.roots = ix.roots[:0]
	for _, node := range ix.children {
		ix.roots = append(ix.roots, node)
	}
	sortNodes(ix.roots)
}

// Walk visits every node in the index depth-first
func (ix *Index) Walk(fn func(*Node)) {
	for _, node := range ix.children {
		node.walk(fn)
	}
}

// Len returns the total number of nodes in the index
func (ix *Index) Len() int {
	count := 0
	ix.Walk(func(*Node) { count++ })
	return count
}

// sortNodes orders siblings ascending bytewise by display name, with the
// category field as a tie-breaker for equal names. This is the single total
// order used by the root registry, the materializer and the collector.
func sortNodes(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		if c := strings.Compare(nodes[i].Name, nodes[j].Name); c != 0 {
			return c < 0
		}
		return nodes[i].Field < nodes[j].Field
	})
}
