package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/trebletui/treble/internal/history"
	"github.com/trebletui/treble/internal/index"
)

// FilterBar manages the incremental filter input (`/`). Every edit re-parses
// the query into terms and hands them to onChange; the owner runs the search
// pass and reports back how many songs survived.
type FilterBar struct {
	line        lineEditor
	active      bool
	resultCount int
	onChange    func(terms []string)
	history     *promptHistory
}

// NewFilterBar creates a new FilterBar without history persistence
func NewFilterBar(onChange func(terms []string)) *FilterBar {
	return &FilterBar{
		onChange: onChange,
		history:  newPromptHistory(50),
	}
}

// NewFilterBarWithHistory creates a new FilterBar whose query history
// persists through the given manager
func NewFilterBarWithHistory(onChange func(terms []string), manager *history.Manager) *FilterBar {
	return &FilterBar{
		onChange: onChange,
		history:  newPersistentHistory(50, manager, "filter.toml"),
	}
}

// Start enters filter mode, keeping the current query so a second `/`
// continues narrowing
func (f *FilterBar) Start() {
	f.active = true
	f.history.ResetRecall()
}

// Stop leaves filter mode. The active filter stays applied.
func (f *FilterBar) Stop() {
	f.active = false
	f.history.ResetRecall()
}

// IsActive returns whether filter mode is active
func (f *FilterBar) IsActive() bool {
	return f.active
}

// Query returns the current query text
func (f *FilterBar) Query() string {
	return f.line.String()
}

// SetQuery replaces the query programmatically (socket commands) and fires
// the change callback
func (f *FilterBar) SetQuery(query string) {
	f.line.Set(query)
	f.apply()
}

// SetResultCount reports how many songs the current filter left visible
func (f *FilterBar) SetResultCount(count int) {
	f.resultCount = count
}

// ResultCount returns the song count last reported by the owner
func (f *FilterBar) ResultCount() int {
	return f.resultCount
}

// Clear resets the query and restores full visibility
func (f *FilterBar) Clear() {
	f.line.Clear()
	f.apply()
}

func (f *FilterBar) apply() {
	if f.onChange != nil {
		f.onChange(index.ParseTerms(f.line.String()))
	}
}

// HandleKey processes a key press in filter mode
func (f *FilterBar) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		// Escape clears the filter entirely
		f.Clear()
		f.Stop()
		return
	case tcell.KeyEnter:
		f.history.Remember(f.line.String())
		f.Stop()
		return
	case tcell.KeyUp:
		if prev, ok := f.history.RecallPrev(f.line.String()); ok {
			f.line.Set(prev)
			f.apply()
		}
		return
	case tcell.KeyDown:
		if next, ok := f.history.RecallNext(); ok {
			f.line.Set(next)
			f.apply()
		}
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if f.line.Empty() {
			f.Stop()
			return
		}
	}

	if _, changed := f.line.HandleKey(ev); changed {
		f.apply()
	}
}

// Render renders the filter bar
func (f *FilterBar) Render(screen *Screen, y int) {
	label := "Filter: "
	screen.DrawString(0, y, label, screen.FilterLabelStyle())

	resultText := f.resultText()
	inputWidth := screen.GetWidth() - len(label) - len(resultText)
	f.line.Draw(screen, len(label), y, inputWidth, f.active, screen.FilterTextStyle(), screen.FilterCursorStyle())

	if resultText != "" {
		screen.DrawString(screen.GetWidth()-len(resultText), y, resultText, screen.FilterResultCountStyle())
	}
}

func (f *FilterBar) resultText() string {
	if f.line.Empty() {
		return ""
	}
	switch f.resultCount {
	case 0:
		return " (no matches)"
	case 1:
		return " (1 song)"
	default:
		return fmt.Sprintf(" (%d songs)", f.resultCount)
	}
}
