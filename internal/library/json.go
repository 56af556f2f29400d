package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadJSON loads a library from a JSON file. A missing file yields an empty
// library rather than an error, so a fresh setup starts with an empty tree.
func LoadJSON(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Library{Source: path}, nil
		}
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse library JSON: %w", err)
	}
	lib.Source = path

	return &lib, nil
}

// SaveJSON writes the library back to a JSON file, creating the directory
// when needed
func SaveJSON(lib *Library, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal library JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library file: %w", err)
	}

	return nil
}

// Load reads a library from path, dispatching on the file extension:
// .m3u/.m3u8 playlists go through the M3U reader, everything else is
// treated as a JSON library file.
func Load(path string) (*Library, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8":
		return LoadM3U(path)
	default:
		return LoadJSON(path)
	}
}
