package index

// Collect gathers the record ids reachable under the selected nodes for bulk
// export. Selected leaf nodes emit their matches in insertion order; selected
// internal nodes recurse into all children in the materializer's sort order.
// Deduplication is by record id across the entire call, so overlapping
// selections never emit an id twice. The second result is the subset of the
// selection that was leaf nodes.
func Collect(selected []*Node) (ids []int, leaves []*Node) {
	seen := make(map[int]bool)

	emit := func(n *Node) {
		for _, id := range n.Matches {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	var descend func(n *Node)
	descend = func(n *Node) {
		for _, child := range sortedChildren(n) {
			if child.Leaf() && len(child.Matches) > 0 {
				emit(child)
			} else if len(child.Children) > 0 {
				descend(child)
			}
		}
	}

	for _, n := range selected {
		if n == nil {
			continue
		}
		if n.Leaf() && len(n.Matches) > 0 {
			leaves = append(leaves, n)
			emit(n)
		} else {
			descend(n)
		}
	}

	return ids, leaves
}

// sortedChildren returns all children of n in the same total order the
// materializer uses, regardless of visibility
func sortedChildren(n *Node) []*Node {
	children := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	sortNodes(children)
	return children
}
