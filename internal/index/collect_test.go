package index

import (
	"reflect"
	"testing"
)

func TestCollectLeafEmitsInInsertionOrder(t *testing.T) {
	ix := New()
	ix.Insert(9, TagChain("Rock", "Band", "Album", "Song"))
	ix.Insert(3, TagChain("Rock", "Band", "Album", "Song"))
	ix.Insert(7, TagChain("Rock", "Band", "Album", "Song"))

	leaf := find(ix, "Rock", "Band", "Album", "Song")
	ids, leaves := Collect([]*Node{leaf})

	if !reflect.DeepEqual(ids, []int{9, 3, 7}) {
		t.Errorf("expected insertion order [9 3 7], got %v", ids)
	}
	if len(leaves) != 1 || leaves[0] != leaf {
		t.Errorf("expected the selected leaf back, got %v", leaves)
	}
}

func TestCollectInternalNodeDescendsInSortOrder(t *testing.T) {
	ix := New()
	ix.Insert(1, TagChain("Rock", "Band", "Zebra", "Z Song"))
	ix.Insert(2, TagChain("Rock", "Band", "Apple", "A Song"))

	band := find(ix, "Rock", "Band")
	ids, leaves := Collect([]*Node{band})

	// Albums descend alphabetically: Apple before Zebra
	if !reflect.DeepEqual(ids, []int{2, 1}) {
		t.Errorf("expected sort-order descent [2 1], got %v", ids)
	}
	if len(leaves) != 0 {
		t.Errorf("an internal selection contributes no leaves, got %d", len(leaves))
	}
}

func TestCollectDeduplicatesAcrossOverlappingSelection(t *testing.T) {
	ix := New()
	ix.Insert(1, TagChain("Rock", "Band", "Album", "One"))
	ix.Insert(2, TagChain("Rock", "Band", "Album", "Two"))

	album := find(ix, "Rock", "Band", "Album")
	one := find(ix, "Rock", "Band", "Album", "One")

	// Selecting both a subtree and a leaf inside it must not double-emit
	ids, leaves := Collect([]*Node{album, one})
	if !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected deduplicated [1 2], got %v", ids)
	}
	if len(leaves) != 1 || leaves[0] != one {
		t.Errorf("only the directly selected leaf counts, got %v", leaves)
	}
}

func TestCollectIgnoresVisibility(t *testing.T) {
	ix := New()
	ix.Insert(1, TagChain("Rock", "Band", "Album", "One"))
	ix.Insert(2, TagChain("Rock", "Band", "Album", "Two"))
	ix.Search([]string{"one"})

	album := find(ix, "Rock", "Band", "Album")
	ids, _ := Collect([]*Node{album})
	if len(ids) != 2 {
		t.Errorf("collection must cover hidden leaves too, got %v", ids)
	}
}

func TestCollectEmptyAndNilSelection(t *testing.T) {
	if ids, leaves := Collect(nil); ids != nil || leaves != nil {
		t.Error("nil selection should collect nothing")
	}
	if ids, _ := Collect([]*Node{nil}); ids != nil {
		t.Error("nil entries in the selection are skipped")
	}
}
