package index

import "testing"

func find(ix *Index, names ...string) *Node {
	var node *Node
	children := ix.children
	for _, name := range names {
		node = nil
		for _, child := range children {
			if child.Name == name {
				node = child
				break
			}
		}
		if node == nil {
			return nil
		}
		children = node.Children
	}
	return node
}

func TestInsertAccumulatesMatchesAtEveryLevel(t *testing.T) {
	ix := New()
	ix.Insert(7, PathChain("Rock/Nirvana/Nevermind/Lithium.mp3"))

	for _, names := range [][]string{
		{"Rock"},
		{"Rock", "Nirvana"},
		{"Rock", "Nirvana", "Nevermind"},
		{"Rock", "Nirvana", "Nevermind", "Lithium.mp3"},
	} {
		node := find(ix, names...)
		if node == nil {
			t.Fatalf("node %v not found", names)
		}
		if len(node.Matches) != 1 || node.Matches[0] != 7 {
			t.Errorf("node %v: expected matches [7], got %v", names, node.Matches)
		}
	}

	leaf := find(ix, "Rock", "Nirvana", "Nevermind", "Lithium.mp3")
	if leaf.Depth() != 3 {
		t.Errorf("expected leaf depth 3, got %d", leaf.Depth())
	}
	if !leaf.Leaf() {
		t.Error("expected last chain component to be a leaf node")
	}
}

func TestInsertReusesExistingNodes(t *testing.T) {
	ix := New()
	ix.Insert(1, PathChain("Rock/Nirvana/Bleach/Blew.mp3"))
	before := ix.Len()

	// Same chain again: no new nodes, matches grow everywhere
	ix.Insert(2, PathChain("Rock/Nirvana/Bleach/Blew.mp3"))
	if ix.Len() != before {
		t.Errorf("re-insert created nodes: %d before, %d after", before, ix.Len())
	}

	root := find(ix, "Rock")
	if len(root.Matches) != 2 {
		t.Errorf("expected 2 matches at root, got %v", root.Matches)
	}

	// A second record sharing the prefix only adds its unique suffix
	ix.Insert(3, PathChain("Rock/Nirvana/Bleach/School.mp3"))
	if ix.Len() != before+1 {
		t.Errorf("expected exactly one new node, got %d extra", ix.Len()-before)
	}
}

func TestInsertPreservesDuplicateRecordIDs(t *testing.T) {
	ix := New()
	ix.Insert(5, PathChain("a/b.mp3"))
	ix.Insert(5, PathChain("a/b.mp3"))

	node := find(ix, "a")
	if len(node.Matches) != 2 {
		t.Errorf("duplicate record ids must be preserved, got %v", node.Matches)
	}
}

func TestInsertSkipsEmptyChainSegments(t *testing.T) {
	ix := New()
	ix.Insert(1, []Key{
		{FieldGenre, "Jazz"},
		{FieldArtist, ""},
		{FieldAlbum, "Blue Train"},
		{FieldTitle, "Moment's Notice"},
	})

	// The empty artist collapses the chain: album hangs off the genre
	album := find(ix, "Jazz", "Blue Train")
	if album == nil {
		t.Fatal("expected album directly under genre after empty segment")
	}
	if album.Parent == nil || album.Parent.Name != "Jazz" {
		t.Error("album's parent should be the genre node")
	}
	leaf := find(ix, "Jazz", "Blue Train", "Moment's Notice")
	if leaf == nil || leaf.Depth() != 2 {
		t.Error("leaf depth should equal the number of non-empty segments minus one")
	}
}

func TestInsertEmptyChainIsNoop(t *testing.T) {
	ix := New()
	ix.Insert(1, nil)
	ix.Insert(2, []Key{{FieldFile, ""}})

	if ix.Len() != 0 {
		t.Errorf("expected empty index, got %d nodes", ix.Len())
	}
}

func TestParentChildInvariant(t *testing.T) {
	ix := New()
	ix.Insert(1, PathChain("x/y/z.mp3"))
	ix.Insert(2, PathChain("x/w.mp3"))

	ix.Walk(func(n *Node) {
		for key, child := range n.Children {
			if child.Parent != n {
				t.Errorf("child %q has wrong parent", child.Name)
			}
			if key.Field != child.Field || key.Name != child.Name {
				t.Errorf("child %q stored under mismatched key %v", child.Name, key)
			}
		}
	})
}

func TestRebuildRootsSortsAscending(t *testing.T) {
	ix := New()
	ix.Insert(1, PathChain("zebra/one.mp3"))
	ix.Insert(2, PathChain("apple/two.mp3"))
	ix.Insert(3, PathChain("mango/three.mp3"))
	ix.RebuildRoots()

	roots := ix.Roots()
	want := []string{"apple", "mango", "zebra"}
	if len(roots) != len(want) {
		t.Fatalf("expected %d roots, got %d", len(want), len(roots))
	}
	for i, name := range want {
		if roots[i].Name != name {
			t.Errorf("root %d: expected %q, got %q", i, name, roots[i].Name)
		}
	}
}
