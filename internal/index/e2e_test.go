package index

import (
	"bytes"
	"strings"
	"testing"
)

// Walks a small library through the whole lifecycle: path cleaning, insert,
// search, materialize, collect.
func TestPathModeLifecycle(t *testing.T) {
	ix := New()
	records := []struct {
		id  int
		raw string
	}{
		{1, "Music/RockBand/AlbumA/Song1.mp3"},
		{2, "Music/RockBand/AlbumA/Song2.mp3"},
		{3, "Music/JazzDuo/AlbumB/Song3.mp3"},
	}
	for _, rec := range records {
		ix.Insert(rec.id, PathChain(CleanPath(rec.raw, "Music")))
	}
	ix.RebuildRoots()

	// Base prefix stripped: artists are the roots
	roots := ix.VisibleChildren(nil)
	if len(roots) != 2 || roots[0].Name != "JazzDuo" || roots[1].Name != "RockBand" {
		t.Fatalf("expected roots [JazzDuo RockBand], got %d roots", len(roots))
	}

	leaves := 0
	ix.Walk(func(n *Node) {
		if n.Leaf() {
			leaves++
		}
	})
	if leaves != 3 {
		t.Errorf("expected 3 leaf nodes, got %d", leaves)
	}

	// Match counts accumulate at every level
	counts := map[string]int{
		"RockBand": 2, "JazzDuo": 1,
		"AlbumA": 2, "AlbumB": 1,
	}
	ix.Walk(func(n *Node) {
		if want, ok := counts[n.Name]; ok && len(n.Matches) != want {
			t.Errorf("%s: expected %d matches, got %d", n.Name, want, len(n.Matches))
		}
	})

	// Narrow to the rock branch: the artist hit surfaces its whole subtree
	ix.Search(ParseTerms("rock"))
	names := visibleNames(ix)
	for _, want := range []string{"RockBand", "AlbumA", "Song1.mp3", "Song2.mp3"} {
		if !names[want] {
			t.Errorf("expected %q visible under rock filter", want)
		}
	}
	for _, hidden := range []string{"JazzDuo", "AlbumB", "Song3.mp3"} {
		if names[hidden] {
			t.Errorf("expected %q hidden under rock filter", hidden)
		}
	}

	// Clearing the filter restores everything
	ix.Search(nil)
	if len(visibleNames(ix)) != ix.Len() {
		t.Error("clearing the filter should restore full visibility")
	}

	// Collect the whole rock subtree, sorted descent, deduped
	rock := find(ix, "RockBand")
	ids, _ := Collect([]*Node{rock})
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("expected [1 2], got %v", ids)
	}
}

func TestDumpTreeSmoke(t *testing.T) {
	ix := buildSample()
	ix.Search(nil)

	var buf bytes.Buffer
	DumpTree(&buf, ix)

	out := buf.String()
	for _, want := range []string{"Rock", "Nirvana", "Lithium"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q", want)
		}
	}
}
