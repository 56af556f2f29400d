package index

import "strings"

// Search recomputes the visibility flag of every node for the given terms
// and rebuilds the root registry. A node stays visible if its folded name
// contains any one term as a literal substring, if any descendant matches,
// or if any ancestor matched: a hit anywhere on a root-to-leaf path surfaces
// the whole branch. OR across terms, OR across the path. An empty term list
// restores full visibility everywhere.
//
// Visibility is derived state: every call re-derives it from scratch, nothing
// is patched incrementally across calls.
func (ix *Index) Search(terms []string) {
	folded := foldTerms(terms)
	for _, node := range ix.children {
		markVisible(node, folded, false)
	}
	ix.RebuildRoots()
}

// markVisible recomputes visibility for n and its subtree, post-order, and
// reports whether the subtree contains a match. ancestorHit carries matches
// downward so a matching category exposes everything beneath it.
func markVisible(n *Node, terms []string, ancestorHit bool) bool {
	selfHit := false
	for _, term := range terms {
		if strings.Contains(n.Folded, term) {
			selfHit = true
			break
		}
	}

	subtreeHit := selfHit
	for _, child := range n.Children {
		if markVisible(child, terms, ancestorHit || selfHit) {
			subtreeHit = true
		}
	}

	n.Visible = subtreeHit || ancestorHit || len(terms) == 0
	return subtreeHit
}

// foldTerms lowercases terms and drops empty ones, so callers cannot defeat
// the case-folded matching contract
func foldTerms(terms []string) []string {
	var folded []string
	for _, term := range terms {
		if term = strings.ToLower(term); term != "" {
			folded = append(folded, term)
		}
	}
	return folded
}
