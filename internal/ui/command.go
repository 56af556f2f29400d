package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/trebletui/treble/internal/history"
)

// CommandMode is the `:` prompt. It only collects and edits the line; the
// app's command table does the dispatch (:q :reload :mode :export :debug
// :help).
type CommandMode struct {
	active  bool
	line    lineEditor
	history *promptHistory
}

// NewCommandMode creates a new CommandMode without history persistence
func NewCommandMode() *CommandMode {
	return &CommandMode{history: newPromptHistory(50)}
}

// NewCommandModeWithHistory creates a CommandMode whose history persists
// through the given manager
func NewCommandModeWithHistory(manager *history.Manager) *CommandMode {
	return &CommandMode{history: newPersistentHistory(50, manager, "command.toml")}
}

// Start opens the prompt with an empty line
func (c *CommandMode) Start() {
	c.active = true
	c.line.Clear()
	c.history.ResetRecall()
}

// Stop closes the prompt
func (c *CommandMode) Stop() {
	c.active = false
}

// IsActive returns whether the prompt is open
func (c *CommandMode) IsActive() bool {
	return c.active
}

// HandleKey processes one key press. done reports that the prompt closed;
// command carries the trimmed line to dispatch, empty on cancel.
func (c *CommandMode) HandleKey(ev *tcell.EventKey) (command string, done bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.Stop()
		return "", true
	case tcell.KeyEnter:
		cmd := strings.TrimSpace(c.line.String())
		c.history.Remember(cmd)
		c.Stop()
		return cmd, true
	case tcell.KeyUp:
		if prev, ok := c.history.RecallPrev(c.line.String()); ok {
			c.line.Set(prev)
		}
		return "", false
	case tcell.KeyDown:
		if next, ok := c.history.RecallNext(); ok {
			c.line.Set(next)
		}
		return "", false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		// Backspace on an empty line leaves the prompt
		if c.line.Empty() {
			c.Stop()
			return "", true
		}
	}

	c.line.HandleKey(ev)
	return "", false
}

// Render draws the prompt and the input line
func (c *CommandMode) Render(screen *Screen, y int) {
	if !c.active {
		return
	}

	screen.DrawString(0, y, ":", screen.CommandPromptStyle())
	c.line.Draw(screen, 1, y, screen.GetWidth()-1, true, screen.CommandTextStyle(), screen.CommandCursorStyle())
}
