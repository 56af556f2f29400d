package index

// VisibleChildren returns the direct children of n that survived the most
// recent search pass, sorted by name. A nil n means the root level. The
// filtered slice is recomputed on every call; the trees this index serves
// are interactive-sized, so no caching is done.
func (ix *Index) VisibleChildren(n *Node) []*Node {
	var visible []*Node
	for _, child := range ix.childMap(n) {
		if child.Visible {
			visible = append(visible, child)
		}
	}
	sortNodes(visible)
	return visible
}

// HasVisibleChildren reports whether n (or the root level, for nil) has at
// least one visible child
func (ix *Index) HasVisibleChildren(n *Node) bool {
	for _, child := range ix.childMap(n) {
		if child.Visible {
			return true
		}
	}
	return false
}

// VisibleChildAt returns the row-th visible child of n, or nil when the row
// is out of range. Index-style queries never fault.
func (ix *Index) VisibleChildAt(n *Node, row int) *Node {
	visible := ix.VisibleChildren(n)
	if row < 0 || row >= len(visible) {
		return nil
	}
	return visible[row]
}

// VisibleRow returns n's position among its visible siblings, or -1 when n
// is not currently visible
func (ix *Index) VisibleRow(n *Node) int {
	if n == nil {
		return -1
	}
	for row, sibling := range ix.VisibleChildren(n.Parent) {
		if sibling == n {
			return row
		}
	}
	return -1
}

func (ix *Index) childMap(n *Node) map[Key]*Node {
	if n == nil {
		return ix.children
	}
	return n.Children
}
