package index

import (
	"net/url"
	"strings"
)

// TagChain builds a fixed-arity chain Genre -> Artist -> Album -> Title.
// Empty components are dropped by Insert, so records with missing tags
// produce shorter chains.
func TagChain(genre, artist, album, title string) []Key {
	return []Key{
		{FieldGenre, genre},
		{FieldArtist, artist},
		{FieldAlbum, album},
		{FieldTitle, title},
	}
}

// PathChain builds a variable-depth chain from a cleaned path: every
// component but the last is a folder, the last is a file. An empty path
// yields nil, which Insert turns into no tree growth at all.
func PathChain(path string) []Key {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil
	}

	chain := make([]Key, 0, len(parts))
	for i, part := range parts {
		field := FieldFolder
		if i == len(parts)-1 {
			field = FieldFile
		}
		chain = append(chain, Key{field, part})
	}
	return chain
}

// CleanPath normalizes a raw record location for chain building: it
// percent-decodes, strips a file:// scheme prefix, and removes the
// base-directory prefix when present. Returns "" for records with no usable
// path, which the caller treats as "skip this record".
func CleanPath(raw, base string) string {
	path := normalize(raw)
	if path == "" {
		return ""
	}

	if base = normalize(base); base != "" {
		base = strings.TrimSuffix(base, "/")
		if strings.HasPrefix(path, base+"/") {
			path = path[len(base)+1:]
		}
	}

	return path
}

// normalize percent-decodes a location and strips the file:// scheme.
// Undecodable input is kept as-is rather than dropped.
func normalize(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return strings.TrimPrefix(raw, "file://")
}

// splitPath splits on "/" and drops empty segments
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
