package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/trebletui/treble/internal/index"
)

// JumpWidget is a modal fuzzy finder over every node in the tree. Selecting
// a match reveals it in the tree view regardless of expansion state.
type JumpWidget struct {
	visible     bool
	line        lineEditor
	selectedIdx int
	maxResults  int

	nodes    []*index.Node
	paths    []string // Display path per node, same order as nodes
	matches  []int    // Indices into nodes
	onSelect func(*index.Node)
}

// NewJumpWidget creates a hidden jump widget
func NewJumpWidget() *JumpWidget {
	return &JumpWidget{maxResults: 10}
}

// SetOnSelect registers the selection callback
func (w *JumpWidget) SetOnSelect(onSelect func(*index.Node)) {
	w.onSelect = onSelect
}

// SetIndex rebuilds the candidate list from the given index
func (w *JumpWidget) SetIndex(ix *index.Index) {
	w.nodes = nil
	w.paths = nil
	ix.Walk(func(n *index.Node) {
		w.nodes = append(w.nodes, n)
		w.paths = append(w.paths, nodePath(n))
	})
	w.updateMatches()
}

// nodePath builds the "Genre / Artist / Album / Title" breadcrumb for a node
func nodePath(n *index.Node) string {
	var parts []string
	for p := n; p != nil; p = p.Parent {
		parts = append(parts, p.Name)
	}
	// Reverse into root-first order
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " / ")
}

// Show opens the widget with an empty query
func (w *JumpWidget) Show() {
	w.visible = true
	w.line.Clear()
	w.selectedIdx = 0
	w.updateMatches()
}

// Hide closes the widget
func (w *JumpWidget) Hide() {
	w.visible = false
}

// IsVisible returns whether the widget is open
func (w *JumpWidget) IsVisible() bool {
	return w.visible
}

// updateMatches fuzzy-matches the query against all node paths
func (w *JumpWidget) updateMatches() {
	w.matches = nil
	w.selectedIdx = 0

	query := w.line.String()
	if query == "" {
		return
	}

	for i, path := range w.paths {
		if fuzzy.MatchFold(query, path) {
			w.matches = append(w.matches, i)
			if len(w.matches) >= w.maxResults {
				break
			}
		}
	}
}

// HandleKeyEvent processes a key press; returns true when the key was consumed
func (w *JumpWidget) HandleKeyEvent(ev *tcell.EventKey) bool {
	if !w.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		w.Hide()
		return true

	case tcell.KeyEnter:
		if len(w.matches) > 0 && w.selectedIdx < len(w.matches) {
			selected := w.nodes[w.matches[w.selectedIdx]]
			w.Hide()
			if w.onSelect != nil {
				w.onSelect(selected)
			}
		}
		return true

	case tcell.KeyCtrlN, tcell.KeyDown:
		if len(w.matches) > 0 {
			w.selectedIdx++
			if w.selectedIdx >= len(w.matches) {
				w.selectedIdx = 0 // Wrap to top
			}
		}
		return true

	case tcell.KeyCtrlP, tcell.KeyUp:
		if len(w.matches) > 0 {
			w.selectedIdx--
			if w.selectedIdx < 0 {
				w.selectedIdx = len(w.matches) - 1 // Wrap to bottom
			}
		}
		return true

	}

	handled, changed := w.line.HandleKey(ev)
	if changed {
		w.updateMatches()
	}
	return handled
}

// Render draws the modal box centered on screen
func (w *JumpWidget) Render(screen *Screen) {
	if !w.visible {
		return
	}

	width := screen.GetWidth()
	height := screen.GetHeight()

	boxWidth := (width * 2) / 3
	if boxWidth > width {
		boxWidth = width - 4
	}
	boxStartX := (width - boxWidth) / 2

	// 1 title + 1 input + maxResults rows + borders
	boxHeight := w.maxResults + 4
	boxStartY := (height - boxHeight) / 2

	borderStyle := screen.TreeNormalStyle()
	bgStyle := screen.BackgroundStyle()
	selectedStyle := screen.TreeSelectedStyle()

	// Background
	for y := boxStartY; y < boxStartY+boxHeight && y < height; y++ {
		for x := boxStartX; x < boxStartX+boxWidth && x < width; x++ {
			screen.SetCell(x, y, ' ', bgStyle)
		}
	}

	// Border
	for x := boxStartX; x < boxStartX+boxWidth && x < width; x++ {
		screen.SetCell(x, boxStartY, '─', borderStyle)
		screen.SetCell(x, boxStartY+boxHeight-1, '─', borderStyle)
	}
	for y := boxStartY; y < boxStartY+boxHeight && y < height; y++ {
		screen.SetCell(boxStartX, y, '│', borderStyle)
		screen.SetCell(boxStartX+boxWidth-1, y, '│', borderStyle)
	}
	screen.SetCell(boxStartX, boxStartY, '┌', borderStyle)
	screen.SetCell(boxStartX+boxWidth-1, boxStartY, '┐', borderStyle)
	screen.SetCell(boxStartX, boxStartY+boxHeight-1, '└', borderStyle)
	screen.SetCell(boxStartX+boxWidth-1, boxStartY+boxHeight-1, '┘', borderStyle)

	// Title
	screen.DrawStringLimited(boxStartX+2, boxStartY, " Jump ", boxWidth-4, borderStyle)

	// Input line
	inputX := boxStartX + 2
	inputY := boxStartY + 1
	inputWidth := boxWidth - 4
	screen.DrawString(inputX, inputY, "> ", borderStyle)
	w.line.Draw(screen, inputX+2, inputY, inputWidth-2, true, borderStyle, screen.FilterCursorStyle())

	// Matches
	for i, matchIdx := range w.matches {
		y := boxStartY + 2 + i
		if y >= boxStartY+boxHeight-1 {
			break
		}
		style := borderStyle
		if i == w.selectedIdx {
			style = selectedStyle
		}
		screen.DrawStringLimited(inputX, y, w.paths[matchIdx], inputWidth, style)
	}

	if !w.line.Empty() && len(w.matches) == 0 {
		screen.DrawStringLimited(inputX, boxStartY+2, "no matches", inputWidth, borderStyle)
	}
}
