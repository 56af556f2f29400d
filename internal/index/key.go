// Package index contains the category tree for a music library: it ingests
// records keyed by a chain of category names, supports multi-term substring
// filtering with visibility propagation, and materializes the sorted visible
// children for display.
package index

// Field is the category dimension a node represents
type Field int

const (
	FieldGenre Field = iota
	FieldArtist
	FieldAlbum
	FieldTitle
	FieldFolder
	FieldFile
)

// Leaf reports whether this field terminates a chain and holds record
// ids directly relevant to one item
func (f Field) Leaf() bool {
	return f == FieldTitle || f == FieldFile
}

func (f Field) String() string {
	switch f {
	case FieldGenre:
		return "genre"
	case FieldArtist:
		return "artist"
	case FieldAlbum:
		return "album"
	case FieldTitle:
		return "title"
	case FieldFolder:
		return "folder"
	case FieldFile:
		return "file"
	default:
		return "unknown"
	}
}

// Key addresses a node within its parent's child set. Keys are comparable
// structs and are used directly as map keys; they are never mutated.
type Key struct {
	Field Field
	Name  string
}
