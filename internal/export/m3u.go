// Package export writes selections out as extended M3U playlists.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trebletui/treble/internal/library"
)

// WriteM3U writes the given record ids as an extended M3U playlist. Records
// with tags get an #EXTINF line; ids that do not resolve to a record are
// skipped.
func WriteM3U(w io.Writer, lib *library.Library, ids []int) error {
	var sb strings.Builder
	sb.WriteString("#EXTM3U\n")

	for _, id := range ids {
		rec := lib.Get(id)
		if rec == nil || rec.Path == "" {
			continue
		}
		if display := displayText(rec); display != "" {
			fmt.Fprintf(&sb, "#EXTINF:-1,%s\n", display)
		}
		sb.WriteString(rec.Path)
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	return nil
}

// ExportM3U writes the selection to a playlist file
func ExportM3U(path string, lib *library.Library, ids []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create playlist file: %w", err)
	}
	defer f.Close()

	if err := WriteM3U(f, lib, ids); err != nil {
		return err
	}
	return f.Close()
}

// displayText builds the "Artist - Title" text for an EXTINF line
func displayText(rec *library.Record) string {
	switch {
	case rec.Artist != "" && rec.Title != "":
		return rec.Artist + " - " + rec.Title
	case rec.Title != "":
		return rec.Title
	default:
		return ""
	}
}
