package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background          string `toml:"background"`
		TreeNormalText      string `toml:"tree_normal_text"`
		TreeSelectedItem    string `toml:"tree_selected_item"`
		TreeSelectedBg      string `toml:"tree_selected_bg"`
		TreeMarkedItem      string `toml:"tree_marked_item"`
		TreeLeafArrow       string `toml:"tree_leaf_arrow"`
		TreeExpandableArrow string `toml:"tree_expandable_arrow"`
		CountText           string `toml:"count_text"`
		FilterLabel         string `toml:"filter_label"`
		FilterText          string `toml:"filter_text"`
		FilterCursor        string `toml:"filter_cursor"`
		FilterResultCount   string `toml:"filter_result_count"`
		CommandPrompt       string `toml:"command_prompt"`
		CommandText         string `toml:"command_text"`
		CommandCursor       string `toml:"command_cursor"`
		HelpBackground      string `toml:"help_background"`
		HelpBorder          string `toml:"help_border"`
		HelpTitle           string `toml:"help_title"`
		HelpContent         string `toml:"help_content"`
		StatusMode          string `toml:"status_mode"`
		StatusMessage       string `toml:"status_message"`
		StatusError         string `toml:"status_error"`
		HeaderTitle         string `toml:"header_title"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "treble", "themes"))
	}

	// User local share directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "treble", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	t := TokyoNight()
	c := config.Colors

	// Override with config values
	override := func(dst *tcell.Color, value string) {
		if value != "" {
			*dst = parseColor(value)
		}
	}

	override(&t.Colors.Background, c.Background)
	override(&t.Colors.TreeNormalText, c.TreeNormalText)
	override(&t.Colors.TreeSelectedItem, c.TreeSelectedItem)
	override(&t.Colors.TreeSelectedBg, c.TreeSelectedBg)
	override(&t.Colors.TreeMarkedItem, c.TreeMarkedItem)
	override(&t.Colors.TreeLeafArrow, c.TreeLeafArrow)
	override(&t.Colors.TreeExpandableArrow, c.TreeExpandableArrow)
	override(&t.Colors.CountText, c.CountText)
	override(&t.Colors.FilterLabel, c.FilterLabel)
	override(&t.Colors.FilterText, c.FilterText)
	override(&t.Colors.FilterCursor, c.FilterCursor)
	override(&t.Colors.FilterResultCount, c.FilterResultCount)
	override(&t.Colors.CommandPrompt, c.CommandPrompt)
	override(&t.Colors.CommandText, c.CommandText)
	override(&t.Colors.CommandCursor, c.CommandCursor)
	override(&t.Colors.HelpBackground, c.HelpBackground)
	override(&t.Colors.HelpBorder, c.HelpBorder)
	override(&t.Colors.HelpTitle, c.HelpTitle)
	override(&t.Colors.HelpContent, c.HelpContent)
	override(&t.Colors.StatusMode, c.StatusMode)
	override(&t.Colors.StatusMessage, c.StatusMessage)
	override(&t.Colors.StatusError, c.StatusError)
	override(&t.Colors.HeaderTitle, c.HeaderTitle)

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// parseColor accepts the formats theme files use: #RRGGBB, #RGB, or
// rgb(r, g, b). Anything else maps to the terminal default color, so a typo
// in a theme file degrades visibly instead of failing the load.
func parseColor(value string) tcell.Color {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "#") {
		return hex(value)
	}

	if inner, ok := strings.CutPrefix(value, "rgb("); ok && strings.HasSuffix(inner, ")") {
		parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
		if len(parts) != 3 {
			return tcell.ColorDefault
		}
		var rgb [3]int32
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 || n > 255 {
				return tcell.ColorDefault
			}
			rgb[i] = int32(n)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2])
	}

	return tcell.ColorDefault
}

// hex converts a #RRGGBB or #RGB literal to a tcell color
func hex(value string) tcell.Color {
	raw := strings.TrimPrefix(value, "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 {
		return tcell.ColorDefault
	}

	c, err := colorful.Hex("#" + raw)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
