package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/trebletui/treble/internal/config"
	"github.com/trebletui/treble/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with the configured theme
func NewScreen() (*Screen, error) {
	// Load config to get the theme name
	cfg, err := config.Load()
	if err != nil {
		// If config fails to load, use Default as fallback
		return NewScreenWithTheme(theme.Default())
	}

	// Load the theme based on config
	// Try to load from TOML files first, fall back to built-in Default
	t := theme.LoadThemeOrDefault(cfg.Theme)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Suspend releases terminal control temporarily
func (s *Screen) Suspend() error {
	return s.tcellScreen.Suspend()
}

// Resume restores terminal control after suspension
func (s *Screen) Resume() error {
	return s.tcellScreen.Resume()
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetCell(x+i, y, r, style)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// HasMouse returns true if mouse is supported
func (s *Screen) HasMouse() bool {
	return s.tcellScreen.HasMouse()
}

// EnableMouse enables mouse support on the screen
func (s *Screen) EnableMouse() {
	s.tcellScreen.EnableMouse()
}

// Theme-aware style methods. fg draws on the terminal background, onBg pairs
// a foreground with an explicit background from the theme.

func (s *Screen) fg(color tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color)
}

func (s *Screen) onBg(fgColor, bgColor tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fgColor).Background(bgColor)
}

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}

// TreeNormalStyle returns the style for normal tree rows
func (s *Screen) TreeNormalStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.TreeNormalText, s.Theme.Colors.Background)
}

// TreeSelectedStyle returns the style for the selected tree row
func (s *Screen) TreeSelectedStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.TreeSelectedItem, s.Theme.Colors.TreeSelectedBg).Bold(true)
}

// TreeMarkedStyle returns the style for rows marked for export
func (s *Screen) TreeMarkedStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.TreeMarkedItem, s.Theme.Colors.Background)
}

// TreeLeafArrowStyle returns the style for leaf row markers (dimmer)
func (s *Screen) TreeLeafArrowStyle() tcell.Style {
	return s.fg(s.Theme.Colors.TreeLeafArrow)
}

// TreeExpandableArrowStyle returns the style for expandable row arrows (brighter)
func (s *Screen) TreeExpandableArrowStyle() tcell.Style {
	return s.fg(s.Theme.Colors.TreeExpandableArrow)
}

// CountStyle returns the style for aggregate song counts
func (s *Screen) CountStyle() tcell.Style {
	return s.fg(s.Theme.Colors.CountText).Dim(true)
}

// FilterLabelStyle returns the style for the filter bar label
func (s *Screen) FilterLabelStyle() tcell.Style {
	return s.fg(s.Theme.Colors.FilterLabel)
}

// FilterTextStyle returns the style for filter bar text
func (s *Screen) FilterTextStyle() tcell.Style {
	return s.fg(s.Theme.Colors.FilterText)
}

// FilterCursorStyle returns the style for the filter bar cursor
func (s *Screen) FilterCursorStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.Background, s.Theme.Colors.FilterCursor)
}

// FilterResultCountStyle returns the style for the filter result count
func (s *Screen) FilterResultCountStyle() tcell.Style {
	return s.fg(s.Theme.Colors.FilterResultCount)
}

// CommandPromptStyle returns the style for command prompt
func (s *Screen) CommandPromptStyle() tcell.Style {
	return s.fg(s.Theme.Colors.CommandPrompt)
}

// CommandTextStyle returns the style for command text
func (s *Screen) CommandTextStyle() tcell.Style {
	return s.fg(s.Theme.Colors.CommandText)
}

// CommandCursorStyle returns the style for command cursor
func (s *Screen) CommandCursorStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.Background, s.Theme.Colors.CommandCursor)
}

// HelpStyle returns the style for help background
func (s *Screen) HelpStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.HelpContent, s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.HelpBorder, s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.HelpTitle, s.Theme.Colors.HelpBackground).Bold(true)
}

// StatusModeStyle returns the style for mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return s.fg(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return s.fg(s.Theme.Colors.StatusMessage)
}

// StatusErrorStyle returns the style for error messages
func (s *Screen) StatusErrorStyle() tcell.Style {
	return s.fg(s.Theme.Colors.StatusError)
}

// HeaderStyle returns the style for the header title
func (s *Screen) HeaderStyle() tcell.Style {
	return s.onBg(s.Theme.Colors.HeaderTitle, s.Theme.Colors.Background).Bold(true)
}
