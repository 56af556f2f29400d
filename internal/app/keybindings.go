package app

import (
	"github.com/trebletui/treble/internal/ui"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// keybindingInfos adapts the binding table for the help screen
func keybindingInfos(bindings []KeyBinding) []ui.KeyBindingInfo {
	infos := make([]ui.KeyBindingInfo, len(bindings))
	for i := range bindings {
		infos[i] = &bindings[i]
	}
	return infos
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Key:         'j',
			Description: "Move down",
			Handler: func(app *App) {
				app.tree.SelectNext()
			},
		},
		{
			Key:         'k',
			Description: "Move up",
			Handler: func(app *App) {
				app.tree.SelectPrev()
			},
		},
		{
			Key:         'h',
			Description: "Collapse category / go to parent",
			Handler: func(app *App) {
				app.tree.Collapse()
			},
		},
		{
			Key:         'l',
			Description: "Expand category",
			Handler: func(app *App) {
				app.tree.Expand()
			},
		},
		{
			Key:         'g',
			Description: "Go to first row",
			Handler: func(app *App) {
				app.tree.SelectFirst()
			},
		},
		{
			Key:         'G',
			Description: "Go to last row",
			Handler: func(app *App) {
				app.tree.SelectLast()
			},
		},
		{
			Key:         '/',
			Description: "Filter the tree",
			Handler: func(app *App) {
				app.filter.Start()
			},
		},
		{
			Key:         'f',
			Description: "Jump to a node (fuzzy)",
			Handler: func(app *App) {
				app.jump.Show()
			},
		},
		{
			Key:         ' ',
			Description: "Mark/unmark for export",
			Handler: func(app *App) {
				app.tree.ToggleMark()
				app.tree.SelectNext()
			},
		},
		{
			Key:         'c',
			Description: "Clear all marks",
			Handler: func(app *App) {
				app.tree.ClearMarks()
				app.SetStatus("Marks cleared")
			},
		},
		{
			Key:         'e',
			Description: "Export marked songs to M3U",
			Handler: func(app *App) {
				app.exportSelection("")
			},
		},
		{
			Key:         'r',
			Description: "Reload library from disk",
			Handler: func(app *App) {
				app.reloadLibrary()
			},
		},
		{
			Key:         ':',
			Description: "Command mode",
			Handler: func(app *App) {
				app.command.Start()
			},
		},
		{
			Key:         '?',
			Description: "Toggle help",
			Handler: func(app *App) {
				app.help.Toggle()
			},
		},
		{
			Key:         'q',
			Description: "Quit",
			Handler: func(app *App) {
				app.Quit()
			},
		},
	}
}
