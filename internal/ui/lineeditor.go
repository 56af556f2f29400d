package ui

import (
	"github.com/gdamore/tcell/v2"
)

// lineEditor is the single-line input buffer behind the filter, command and
// jump prompts. Text is held as runes so cursor movement and deletion operate
// on whole characters, and drawing advances by display width, keeping text
// and cursor aligned for multibyte input.
type lineEditor struct {
	runes  []rune
	cursor int // rune offset, 0..len(runes)
}

func (e *lineEditor) String() string {
	return string(e.runes)
}

func (e *lineEditor) Empty() bool {
	return len(e.runes) == 0
}

// Set replaces the text and puts the cursor at the end
func (e *lineEditor) Set(text string) {
	e.runes = []rune(text)
	e.cursor = len(e.runes)
}

func (e *lineEditor) Clear() {
	e.runes = e.runes[:0]
	e.cursor = 0
}

func (e *lineEditor) insert(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

func (e *lineEditor) backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
	return true
}

func (e *lineEditor) deleteForward() bool {
	if e.cursor >= len(e.runes) {
		return false
	}
	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
	return true
}

// deleteWordBack removes any spaces directly before the cursor, then the word
// before them
func (e *lineEditor) deleteWordBack() bool {
	start := e.cursor
	for start > 0 && e.runes[start-1] == ' ' {
		start--
	}
	for start > 0 && e.runes[start-1] != ' ' {
		start--
	}
	if start == e.cursor {
		return false
	}
	e.runes = append(e.runes[:start], e.runes[e.cursor:]...)
	e.cursor = start
	return true
}

// HandleKey applies the editing and movement keys every prompt shares. It
// reports whether the event was consumed and whether the text changed.
func (e *lineEditor) HandleKey(ev *tcell.EventKey) (handled, changed bool) {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return true, e.backspace()
	case tcell.KeyDelete:
		return true, e.deleteForward()
	case tcell.KeyCtrlW:
		return true, e.deleteWordBack()
	case tcell.KeyCtrlU:
		changed = e.cursor > 0
		e.runes = append(e.runes[:0], e.runes[e.cursor:]...)
		e.cursor = 0
		return true, changed
	case tcell.KeyCtrlK:
		changed = e.cursor < len(e.runes)
		e.runes = e.runes[:e.cursor]
		return true, changed
	case tcell.KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
		return true, false
	case tcell.KeyRight:
		if e.cursor < len(e.runes) {
			e.cursor++
		}
		return true, false
	case tcell.KeyHome:
		e.cursor = 0
		return true, false
	case tcell.KeyEnd:
		e.cursor = len(e.runes)
		return true, false
	case tcell.KeyRune:
		if r := ev.Rune(); r > 0 {
			e.insert(r)
			return true, true
		}
	}
	return false, false
}

// window returns the runes to display within maxWidth cells and the cursor's
// cell column relative to the window start. The window slides right as far as
// needed to keep the cursor inside it.
func (e *lineEditor) window(maxWidth int) (visible []rune, cursorCol int) {
	if maxWidth <= 0 {
		return nil, 0
	}

	col := 0
	for i := 0; i < e.cursor; i++ {
		col += RuneWidth(e.runes[i])
	}
	start := 0
	for start < e.cursor && col >= maxWidth {
		col -= RuneWidth(e.runes[start])
		start++
	}

	width := col
	end := e.cursor
	for end < len(e.runes) {
		w := RuneWidth(e.runes[end])
		if width+w > maxWidth {
			break
		}
		width += w
		end++
	}

	return e.runes[start:end], col
}

// Draw renders the visible window at (x, y), cell by cell. When active, the
// cursor cell is drawn with cursorStyle; the remainder of maxWidth is cleared
// with textStyle.
func (e *lineEditor) Draw(screen *Screen, x, y, maxWidth int, active bool, textStyle, cursorStyle tcell.Style) {
	visible, cursorCol := e.window(maxWidth)

	col := 0
	for _, r := range visible {
		style := textStyle
		if active && col == cursorCol {
			style = cursorStyle
		}
		screen.SetCell(x+col, y, r, style)
		col += RuneWidth(r)
	}

	// Cursor past the end of the text
	if active && cursorCol >= col && cursorCol < maxWidth {
		screen.SetCell(x+cursorCol, y, ' ', cursorStyle)
		col = cursorCol + 1
	}

	for ; col < maxWidth; col++ {
		screen.SetCell(x+col, y, ' ', textStyle)
	}
}
