package library

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadM3U loads a library from an extended M3U playlist. Each non-comment
// line becomes a record; a preceding #EXTINF line contributes artist and
// title when it carries the conventional "Artist - Title" display text.
// Blank lines and unknown directives are skipped.
func LoadM3U(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}
	defer f.Close()

	lib := &Library{Source: path}
	var pendingArtist, pendingTitle string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#EXTINF:"):
			pendingArtist, pendingTitle = parseExtInf(line)
		case strings.HasPrefix(line, "#"):
			continue
		default:
			lib.Records = append(lib.Records, Record{
				Path:   line,
				Artist: pendingArtist,
				Title:  pendingTitle,
			})
			pendingArtist, pendingTitle = "", ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}

	return lib, nil
}

// parseExtInf extracts artist and title from an "#EXTINF:123,Artist - Title"
// directive. Without a " - " separator the whole display text is the title.
func parseExtInf(line string) (artist, title string) {
	rest := strings.TrimPrefix(line, "#EXTINF:")
	if i := strings.Index(rest, ","); i >= 0 {
		rest = rest[i+1:]
	} else {
		return "", ""
	}
	rest = strings.TrimSpace(rest)

	if artist, title, ok := strings.Cut(rest, " - "); ok {
		return strings.TrimSpace(artist), strings.TrimSpace(title)
	}
	return "", rest
}
