package index

import "testing"

func TestVisibleChildrenSortedAscending(t *testing.T) {
	ix := buildSample()
	ix.Search(nil)

	roots := ix.VisibleChildren(nil)
	if len(roots) != 2 {
		t.Fatalf("expected 2 visible roots, got %d", len(roots))
	}
	if roots[0].Name != "Jazz" || roots[1].Name != "Rock" {
		t.Errorf("expected [Jazz Rock], got [%s %s]", roots[0].Name, roots[1].Name)
	}

	rock := roots[1]
	artists := ix.VisibleChildren(rock)
	if len(artists) != 2 || artists[0].Name != "Nirvana" || artists[1].Name != "Pixies" {
		t.Errorf("expected [Nirvana Pixies], got %d artists", len(artists))
	}
}

func TestVisibleChildrenReflectsSearch(t *testing.T) {
	ix := buildSample()
	ix.Search([]string{"pixies"})

	roots := ix.VisibleChildren(nil)
	if len(roots) != 1 || roots[0].Name != "Rock" {
		t.Fatalf("expected only Rock at root level, got %d roots", len(roots))
	}
	artists := ix.VisibleChildren(roots[0])
	if len(artists) != 1 || artists[0].Name != "Pixies" {
		t.Errorf("expected only Pixies under Rock")
	}
}

func TestVisibleChildAtBounds(t *testing.T) {
	ix := buildSample()
	ix.Search(nil)

	if n := ix.VisibleChildAt(nil, 0); n == nil || n.Name != "Jazz" {
		t.Error("row 0 at root level should be Jazz")
	}
	if n := ix.VisibleChildAt(nil, -1); n != nil {
		t.Error("negative row must return nil")
	}
	if n := ix.VisibleChildAt(nil, 99); n != nil {
		t.Error("out-of-range row must return nil")
	}

	leaf := find(ix, "Rock", "Pixies", "Doolittle", "Debaser")
	if n := ix.VisibleChildAt(leaf, 0); n != nil {
		t.Error("a leaf has no children at any row")
	}
}

func TestVisibleRow(t *testing.T) {
	ix := buildSample()
	ix.Search(nil)

	jazz := find(ix, "Jazz")
	rock := find(ix, "Rock")
	if row := ix.VisibleRow(jazz); row != 0 {
		t.Errorf("expected Jazz at row 0, got %d", row)
	}
	if row := ix.VisibleRow(rock); row != 1 {
		t.Errorf("expected Rock at row 1, got %d", row)
	}

	// Hidden nodes have no row
	ix.Search([]string{"rock"})
	if row := ix.VisibleRow(jazz); row != -1 {
		t.Errorf("hidden node should report row -1, got %d", row)
	}
	if row := ix.VisibleRow(rock); row != 0 {
		t.Errorf("sole visible root should be row 0, got %d", row)
	}

	if row := ix.VisibleRow(nil); row != -1 {
		t.Errorf("nil node should report row -1, got %d", row)
	}
}

func TestHasVisibleChildren(t *testing.T) {
	ix := buildSample()
	ix.Search(nil)

	if !ix.HasVisibleChildren(nil) {
		t.Error("populated index should have visible roots")
	}
	leaf := find(ix, "Jazz", "Coltrane", "Blue Train", "Lazy Bird")
	if ix.HasVisibleChildren(leaf) {
		t.Error("a leaf has no visible children")
	}

	if New().HasVisibleChildren(nil) {
		t.Error("empty index should have no visible roots")
	}
}
