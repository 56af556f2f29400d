package ui

import (
	"github.com/trebletui/treble/internal/index"
)

// TreeView manages the display and navigation of the library tree
type TreeView struct {
	ix             *index.Index
	labels         *Labeler
	rows           []*displayRow
	selectedIdx    int
	viewportOffset int // Index of first visible row in the viewport

	expanded map[*index.Node]bool
	marked   map[*index.Node]bool
}

type displayRow struct {
	Node  *index.Node
	Depth int
}

// NewTreeView creates a new TreeView over the given index
func NewTreeView(ix *index.Index, labels *Labeler) *TreeView {
	tv := &TreeView{
		ix:       ix,
		labels:   labels,
		expanded: make(map[*index.Node]bool),
		marked:   make(map[*index.Node]bool),
	}
	tv.Rebuild()
	return tv
}

// SetIndex swaps in a freshly built index. Expansion and mark state refer to
// nodes of the old tree, so both are dropped.
func (tv *TreeView) SetIndex(ix *index.Index) {
	tv.ix = ix
	tv.expanded = make(map[*index.Node]bool)
	tv.marked = make(map[*index.Node]bool)
	tv.selectedIdx = 0
	tv.viewportOffset = 0
	tv.Rebuild()
}

// Rebuild rebuilds the flat row list from the currently visible nodes.
// Call after every search pass.
func (tv *TreeView) Rebuild() {
	tv.rows = tv.buildRows(nil, 0)
	if tv.selectedIdx >= len(tv.rows) && len(tv.rows) > 0 {
		tv.selectedIdx = len(tv.rows) - 1
	}
	if tv.selectedIdx < 0 {
		tv.selectedIdx = 0
	}
}

func (tv *TreeView) buildRows(n *index.Node, depth int) []*displayRow {
	var rows []*displayRow
	for _, child := range tv.ix.VisibleChildren(n) {
		rows = append(rows, &displayRow{Node: child, Depth: depth})
		if tv.expanded[child] {
			rows = append(rows, tv.buildRows(child, depth+1)...)
		}
	}
	return rows
}

// SelectNext moves selection down
func (tv *TreeView) SelectNext() {
	if tv.selectedIdx < len(tv.rows)-1 {
		tv.selectedIdx++
	}
}

// SelectPrev moves selection up
func (tv *TreeView) SelectPrev() {
	if tv.selectedIdx > 0 {
		tv.selectedIdx--
	}
}

// SelectFirst jumps to the first row
func (tv *TreeView) SelectFirst() {
	tv.selectedIdx = 0
}

// SelectLast jumps to the last row
func (tv *TreeView) SelectLast() {
	if len(tv.rows) > 0 {
		tv.selectedIdx = len(tv.rows) - 1
	}
}

// ScrollPageUp moves selection up by pageSize rows
func (tv *TreeView) ScrollPageUp(pageSize int) {
	if pageSize <= 0 {
		pageSize = 1
	}
	tv.selectedIdx -= pageSize
	if tv.selectedIdx < 0 {
		tv.selectedIdx = 0
	}
	tv.viewportOffset = tv.selectedIdx
}

// ScrollPageDown moves selection down by pageSize rows
func (tv *TreeView) ScrollPageDown(pageSize int) {
	if pageSize <= 0 {
		pageSize = 1
	}
	tv.selectedIdx += pageSize
	if maxIdx := len(tv.rows) - 1; tv.selectedIdx > maxIdx {
		tv.selectedIdx = maxIdx
	}
	if tv.selectedIdx < 0 {
		tv.selectedIdx = 0
	}
	tv.viewportOffset = tv.selectedIdx - pageSize + 1
	if tv.viewportOffset < 0 {
		tv.viewportOffset = 0
	}
}

// Expand expands the selected category and moves to its first child
func (tv *TreeView) Expand() {
	node := tv.GetSelected()
	if node == nil || node.Leaf() {
		return
	}
	if !tv.expanded[node] && tv.ix.HasVisibleChildren(node) {
		tv.expanded[node] = true
		tv.Rebuild()
	}
	if tv.ix.HasVisibleChildren(node) && tv.selectedIdx < len(tv.rows)-1 {
		tv.selectedIdx++
	}
}

// Collapse collapses the selected category, or moves to the parent when the
// selection is already collapsed or a leaf
func (tv *TreeView) Collapse() {
	node := tv.GetSelected()
	if node == nil {
		return
	}
	if tv.expanded[node] {
		delete(tv.expanded, node)
		tv.Rebuild()
		return
	}
	if node.Parent != nil {
		tv.selectNode(node.Parent)
	}
}

// Toggle flips the expansion state of the selected category
func (tv *TreeView) Toggle() {
	node := tv.GetSelected()
	if node == nil || node.Leaf() {
		return
	}
	if tv.expanded[node] {
		delete(tv.expanded, node)
	} else {
		tv.expanded[node] = true
	}
	tv.Rebuild()
}

// ToggleMark flips the export mark on the selected node
func (tv *TreeView) ToggleMark() {
	node := tv.GetSelected()
	if node == nil {
		return
	}
	if tv.marked[node] {
		delete(tv.marked, node)
	} else {
		tv.marked[node] = true
	}
}

// ClearMarks removes all export marks
func (tv *TreeView) ClearMarks() {
	tv.marked = make(map[*index.Node]bool)
}

// Marked returns the marked nodes in display order, falling back to the
// selected node when nothing is marked
func (tv *TreeView) Marked() []*index.Node {
	var nodes []*index.Node
	for _, row := range tv.rows {
		if tv.marked[row.Node] {
			nodes = append(nodes, row.Node)
		}
	}
	if len(nodes) == 0 {
		if node := tv.GetSelected(); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// MarkedCount returns the number of marked nodes
func (tv *TreeView) MarkedCount() int {
	return len(tv.marked)
}

// Reveal expands all ancestors of n and moves the selection to it
func (tv *TreeView) Reveal(n *index.Node) {
	if n == nil {
		return
	}
	for p := n.Parent; p != nil; p = p.Parent {
		tv.expanded[p] = true
	}
	tv.Rebuild()
	tv.selectNode(n)
}

func (tv *TreeView) selectNode(n *index.Node) {
	for i, row := range tv.rows {
		if row.Node == n {
			tv.selectedIdx = i
			return
		}
	}
}

// GetSelected returns the currently selected node, or nil for an empty view
func (tv *TreeView) GetSelected() *index.Node {
	if tv.selectedIdx < 0 || tv.selectedIdx >= len(tv.rows) {
		return nil
	}
	return tv.rows[tv.selectedIdx].Node
}

// RowCount returns the number of rows currently on display
func (tv *TreeView) RowCount() int {
	return len(tv.rows)
}

// Render draws the tree between startY and the status line
func (tv *TreeView) Render(screen *Screen, startY int) {
	defaultStyle := screen.TreeNormalStyle()
	selectedStyle := screen.TreeSelectedStyle()
	markedStyle := screen.TreeMarkedStyle()
	countStyle := screen.CountStyle()
	leafArrowStyle := screen.TreeLeafArrowStyle().Background(screen.Theme.Colors.Background)
	expandableArrowStyle := screen.TreeExpandableArrowStyle().Background(screen.Theme.Colors.Background)

	screenWidth := screen.GetWidth()
	screenHeight := screen.GetHeight()

	// Reserve 1 line for the status bar
	viewportHeight := screenHeight - startY - 1
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	// Keep the selected row inside the viewport
	if tv.selectedIdx < tv.viewportOffset {
		tv.viewportOffset = tv.selectedIdx
	} else if tv.selectedIdx >= tv.viewportOffset+viewportHeight {
		tv.viewportOffset = tv.selectedIdx - viewportHeight + 1
	}
	maxOffset := len(tv.rows) - viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if tv.viewportOffset > maxOffset {
		tv.viewportOffset = maxOffset
	}
	if tv.viewportOffset < 0 {
		tv.viewportOffset = 0
	}

	screenY := startY
	for i := tv.viewportOffset; i < len(tv.rows) && screenY < screenHeight-1; i++ {
		row := tv.rows[i]
		node := row.Node

		style := defaultStyle
		if tv.marked[node] {
			style = markedStyle
		}
		if i == tv.selectedIdx {
			style = selectedStyle
		}

		x := row.Depth * 2
		if row.Depth > 0 {
			screen.DrawString(0, screenY, PadStringToWidth("", x), defaultStyle)
		}

		arrowStyle := leafArrowStyle
		arrow := "·"
		if !node.Leaf() {
			arrowStyle = expandableArrowStyle
			arrow = "▶"
			if tv.expanded[node] {
				arrow = "▼"
			}
		}
		if i == tv.selectedIdx {
			arrowStyle = selectedStyle
		}
		screen.DrawString(x, screenY, arrow, arrowStyle)
		x += 2

		mark := "  "
		if tv.marked[node] {
			mark = "* "
		}
		screen.DrawString(x, screenY, mark, style)
		x += 2

		primary := tv.labels.Primary(node)
		detail := tv.labels.Detail(node)

		available := screenWidth - x
		if available <= 0 {
			screenY++
			continue
		}
		primary = TruncateToWidthWithEllipsis(primary, available)
		screen.DrawString(x, screenY, primary, style)
		x += StringWidth(primary)

		if detail != "" && screenWidth-x > 3 {
			detailStyle := countStyle
			if i == tv.selectedIdx {
				detailStyle = selectedStyle
			}
			text := "  " + TruncateToWidthWithEllipsis(detail, screenWidth-x-2)
			screen.DrawString(x, screenY, text, detailStyle)
			x += StringWidth(text)
		}

		// Clear remainder of line
		for ; x < screenWidth; x++ {
			screen.SetCell(x, screenY, ' ', defaultStyle)
		}

		screenY++
	}

	// Clear unused rows
	for ; screenY < screenHeight-1; screenY++ {
		for x := 0; x < screenWidth; x++ {
			screen.SetCell(x, screenY, ' ', defaultStyle)
		}
	}
}
