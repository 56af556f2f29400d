package app

import (
	"testing"

	"github.com/trebletui/treble/internal/config"
	"github.com/trebletui/treble/internal/index"
	"github.com/trebletui/treble/internal/library"
	"github.com/trebletui/treble/internal/ui"
)

func testLibrary() *library.Library {
	return &library.Library{
		Records: []library.Record{
			{Path: "/music/Rock/Nirvana/Nevermind/Lithium.mp3", Genre: "Rock", Artist: "Nirvana", Album: "Nevermind", Title: "Lithium"},
			{Path: "/music/Rock/Nirvana/Nevermind/Breed.mp3", Genre: "Rock", Artist: "Nirvana", Album: "Nevermind", Title: "Breed"},
			{Path: "/music/Jazz/Coltrane/Blue Train/Lazy Bird.mp3", Genre: "Jazz", Artist: "Coltrane", Album: "Blue Train", Title: "Lazy Bird"},
			{Path: ""}, // No usable identity in either mode
		},
	}
}

func TestBuildIndexPathMode(t *testing.T) {
	ix := BuildIndex(testLibrary(), config.ModePath, "/music")

	roots := ix.VisibleChildren(nil)
	if len(roots) != 2 {
		t.Fatalf("expected 2 genre folders, got %d", len(roots))
	}
	if roots[0].Name != "Jazz" || roots[1].Name != "Rock" {
		t.Errorf("expected [Jazz Rock], got [%s %s]", roots[0].Name, roots[1].Name)
	}
	if got := len(roots[1].Matches); got != 2 {
		t.Errorf("Rock folder should hold 2 records, got %d", got)
	}
}

func TestBuildIndexTagsMode(t *testing.T) {
	ix := BuildIndex(testLibrary(), config.ModeTags, "")

	var nirvana *index.Node
	ix.Walk(func(n *index.Node) {
		if n.Name == "Nirvana" && n.Field == index.FieldArtist {
			nirvana = n
		}
	})
	if nirvana == nil {
		t.Fatal("artist node missing in tags mode")
	}
	if len(nirvana.Matches) != 2 {
		t.Errorf("expected 2 matches on artist, got %d", len(nirvana.Matches))
	}
}

func TestHeaderTitle(t *testing.T) {
	got := headerTitle("/music/collection.json")
	if got != " treble - collection.json " {
		t.Errorf("unexpected header title: %q", got)
	}
	for _, r := range got {
		if r > 127 {
			t.Errorf("header title contains non-ASCII rune %q", r)
		}
	}
}

// headless App with just enough wiring for controller-level tests
func testApp(t *testing.T) *App {
	t.Helper()

	lib := testLibrary()
	a := &App{
		cfg:    &config.Config{Library: "test.json", BasePath: "/music", Mode: config.ModePath},
		lib:    lib,
		labels: ui.NewLabeler(lib),
	}
	a.ix = BuildIndex(lib, a.cfg.Mode, a.cfg.BasePath)
	a.tree = ui.NewTreeView(a.ix, a.labels)
	a.jump = ui.NewJumpWidget()
	a.jump.SetIndex(a.ix)
	a.filter = ui.NewFilterBar(a.applyFilter)
	return a
}

func TestSwitchModeRefreshesResultCount(t *testing.T) {
	a := testApp(t)

	a.terms = []string{"rock"}
	a.ix.Search(a.terms)
	a.filter.SetResultCount(99) // stale on purpose

	a.switchMode(config.ModeTags)

	if a.cfg.Mode != config.ModeTags {
		t.Fatalf("mode did not switch: %q", a.cfg.Mode)
	}
	if got := a.filter.ResultCount(); got != 2 {
		t.Errorf("result count should be recomputed after a mode switch: got %d, want 2", got)
	}
}

func TestBuildIndexSkipsUnresolvableRecords(t *testing.T) {
	ix := BuildIndex(testLibrary(), config.ModePath, "/music")

	ix.Walk(func(n *index.Node) {
		for _, id := range n.Matches {
			if id == 3 {
				t.Errorf("record without a path leaked into node %q", n.Name)
			}
		}
	})
}
