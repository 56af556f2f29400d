// Package library holds the flat record collection the index is built from.
// Records come from a JSON library file or an M3U playlist; the index refers
// to them by their position in the collection.
package library

// Record is one entry in the collection. Path is the raw location as read
// from the source file; tags may be empty when the source carries none.
type Record struct {
	Path   string `json:"path"`
	Genre  string `json:"genre,omitempty"`
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
	Title  string `json:"title,omitempty"`
}

// Library is an ordered record collection loaded from one source file.
// Record ids are positions in Records; they stay stable until the next Load.
type Library struct {
	Source  string   `json:"-"`
	Records []Record `json:"records"`
}

// Get returns the record with the given id, or nil when the id is out of
// range. Lookup-style queries never fault.
func (l *Library) Get(id int) *Record {
	if l == nil || id < 0 || id >= len(l.Records) {
		return nil
	}
	return &l.Records[id]
}

// Len returns the number of records in the collection
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Records)
}
