package ui

import (
	"fmt"

	"github.com/trebletui/treble/internal/index"
	"github.com/trebletui/treble/internal/library"
)

// Labeler formats tree nodes for display. The index only knows names and
// counts; everything user-facing (pluralized counts, artist/album detail for
// songs) is derived here from the node's parent chain and the library.
type Labeler struct {
	lib *library.Library
}

// NewLabeler creates a labeler backed by the given library
func NewLabeler(lib *library.Library) *Labeler {
	return &Labeler{lib: lib}
}

// SetLibrary swaps the backing library after a reload
func (l *Labeler) SetLibrary(lib *library.Library) {
	l.lib = lib
}

// Primary returns the main display text for a node
func (l *Labeler) Primary(n *index.Node) string {
	return n.Name
}

// Detail returns the secondary display text for a node: an aggregate count
// for category nodes, "by ARTIST on ALBUM" for songs where the chain or the
// library can resolve them. Empty when there is nothing useful to add.
func (l *Labeler) Detail(n *index.Node) string {
	if !n.Leaf() {
		return countText(len(n.Matches))
	}

	artist, album := l.songCredits(n)
	switch {
	case artist != "" && album != "":
		return fmt.Sprintf("by %s on %s", artist, album)
	case artist != "":
		return fmt.Sprintf("by %s", artist)
	case album != "":
		return fmt.Sprintf("on %s", album)
	default:
		return ""
	}
}

// songCredits resolves artist and album for a leaf node. In tag mode the
// parent chain carries them directly; in path mode we fall back to the
// record's own tags.
func (l *Labeler) songCredits(n *index.Node) (artist, album string) {
	for p := n.Parent; p != nil; p = p.Parent {
		switch p.Field {
		case index.FieldArtist:
			artist = p.Name
		case index.FieldAlbum:
			album = p.Name
		}
	}
	if artist != "" || album != "" {
		return artist, album
	}

	if l.lib != nil && len(n.Matches) > 0 {
		if rec := l.lib.Get(n.Matches[0]); rec != nil {
			return rec.Artist, rec.Album
		}
	}
	return "", ""
}

func countText(n int) string {
	if n == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%d songs", n)
}
