package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Tree view colors
	TreeNormalText      tcell.Color
	TreeSelectedItem    tcell.Color
	TreeSelectedBg      tcell.Color
	TreeMarkedItem      tcell.Color
	TreeLeafArrow       tcell.Color
	TreeExpandableArrow tcell.Color
	CountText           tcell.Color

	// Filter bar colors
	FilterLabel       tcell.Color
	FilterText        tcell.Color
	FilterCursor      tcell.Color
	FilterResultCount tcell.Color

	// Command line colors
	CommandPrompt tcell.Color
	CommandText   tcell.Color
	CommandCursor tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Status line colors
	StatusMode    tcell.Color
	StatusMessage tcell.Color
	StatusError   tcell.Color

	// Header colors
	HeaderTitle tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:          tcell.ColorDefault,
			TreeNormalText:      tcell.ColorDefault,
			TreeSelectedItem:    tcell.ColorDefault,
			TreeSelectedBg:      tcell.ColorDefault,
			TreeMarkedItem:      tcell.ColorDefault,
			TreeLeafArrow:       tcell.ColorDefault,
			TreeExpandableArrow: tcell.ColorDefault,
			CountText:           tcell.ColorDefault,
			FilterLabel:         tcell.ColorDefault,
			FilterText:          tcell.ColorDefault,
			FilterCursor:        tcell.ColorDefault,
			FilterResultCount:   tcell.ColorDefault,
			CommandPrompt:       tcell.ColorDefault,
			CommandText:         tcell.ColorDefault,
			CommandCursor:       tcell.ColorDefault,
			HelpBackground:      tcell.ColorDefault,
			HelpBorder:          tcell.ColorDefault,
			HelpTitle:           tcell.ColorDefault,
			HelpContent:         tcell.ColorDefault,
			StatusMode:          tcell.ColorDefault,
			StatusMessage:       tcell.ColorDefault,
			StatusError:         tcell.ColorDefault,
			HeaderTitle:         tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			Background:          hex("#1a1b26"), // Dark background
			TreeNormalText:      hex("#c0caf5"), // Light gray-blue
			TreeSelectedItem:    hex("#7aa2f7"), // Blue
			TreeSelectedBg:      hex("#283457"), // Selection background
			TreeMarkedItem:      hex("#e0af68"), // Yellow
			TreeLeafArrow:       hex("#565f89"), // Comment gray
			TreeExpandableArrow: hex("#7dcfff"), // Cyan
			CountText:           hex("#565f89"), // Comment gray
			FilterLabel:         hex("#bb9af7"), // Magenta
			FilterText:          hex("#c0caf5"), // Light gray-blue
			FilterCursor:        hex("#7aa2f7"), // Blue
			FilterResultCount:   hex("#9ece6a"), // Green
			CommandPrompt:       hex("#bb9af7"), // Magenta
			CommandText:         hex("#c0caf5"), // Light gray-blue
			CommandCursor:       hex("#7aa2f7"), // Blue
			HelpBackground:      hex("#1a1b26"), // Dark background
			HelpBorder:          hex("#7dcfff"), // Cyan
			HelpTitle:           hex("#bb9af7"), // Magenta
			HelpContent:         hex("#c0caf5"), // Light gray-blue
			StatusMode:          hex("#bb9af7"), // Magenta
			StatusMessage:       hex("#9ece6a"), // Green
			StatusError:         hex("#f7768e"), // Red
			HeaderTitle:         hex("#bb9af7"), // Magenta
		},
	}
}
