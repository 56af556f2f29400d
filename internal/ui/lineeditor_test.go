package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestLineEditorRuneSafeEditing(t *testing.T) {
	var e lineEditor
	e.Set("héllo")

	e.HandleKey(key(tcell.KeyBackspace2))
	if e.String() != "héll" {
		t.Errorf("backspace should drop one rune, got %q", e.String())
	}

	e.HandleKey(key(tcell.KeyLeft))
	e.HandleKey(key(tcell.KeyLeft))
	e.HandleKey(keyRune('ö'))
	if e.String() != "héöll" {
		t.Errorf("insert at cursor went wrong, got %q", e.String())
	}

	e.HandleKey(key(tcell.KeyHome))
	e.HandleKey(key(tcell.KeyDelete))
	if e.String() != "éöll" {
		t.Errorf("delete forward went wrong, got %q", e.String())
	}
}

func TestLineEditorWordDelete(t *testing.T) {
	var e lineEditor
	e.Set("rock nirvana  ")

	if _, changed := e.HandleKey(key(tcell.KeyCtrlW)); !changed {
		t.Error("ctrl+w on a word should report a change")
	}
	if e.String() != "rock " {
		t.Errorf("expected %q, got %q", "rock ", e.String())
	}

	e.HandleKey(key(tcell.KeyCtrlW))
	if e.String() != "" {
		t.Errorf("second ctrl+w should clear the rest, got %q", e.String())
	}
	if _, changed := e.HandleKey(key(tcell.KeyCtrlW)); changed {
		t.Error("ctrl+w on empty input should not report a change")
	}
}

func TestLineEditorKillKeys(t *testing.T) {
	var e lineEditor
	e.Set("jazz coltrane")
	e.HandleKey(key(tcell.KeyHome))
	for i := 0; i < 4; i++ {
		e.HandleKey(key(tcell.KeyRight))
	}

	e.HandleKey(key(tcell.KeyCtrlK))
	if e.String() != "jazz" {
		t.Errorf("ctrl+k should cut to end, got %q", e.String())
	}

	e.HandleKey(key(tcell.KeyCtrlU))
	if e.String() != "" {
		t.Errorf("ctrl+u should cut to start, got %q", e.String())
	}
}

func TestLineEditorWindowCursorColumnIsCells(t *testing.T) {
	var e lineEditor
	e.Set("héllo") // 6 bytes, 5 runes

	visible, cursorCol := e.window(40)
	if string(visible) != "héllo" {
		t.Errorf("window dropped text: %q", string(visible))
	}
	if cursorCol != 5 {
		t.Errorf("cursor column should count cells, not bytes: got %d, want 5", cursorCol)
	}
}

func TestLineEditorWindowWideRunes(t *testing.T) {
	var e lineEditor
	e.Set("日本") // two double-width runes

	_, cursorCol := e.window(40)
	if cursorCol != 4 {
		t.Errorf("wide runes occupy two cells each: got cursor column %d, want 4", cursorCol)
	}
}

func TestLineEditorWindowScrollsToCursor(t *testing.T) {
	var e lineEditor
	e.Set("abcdefghij")

	visible, cursorCol := e.window(5)
	if cursorCol >= 5 {
		t.Errorf("cursor column %d escaped a window of width 5", cursorCol)
	}
	if string(visible) != "ghij" {
		t.Errorf("window should show the tail, got %q", string(visible))
	}

	e.HandleKey(key(tcell.KeyHome))
	visible, cursorCol = e.window(5)
	if cursorCol != 0 {
		t.Errorf("cursor at start should sit in column 0, got %d", cursorCol)
	}
	if string(visible) != "abcde" {
		t.Errorf("window should show the head, got %q", string(visible))
	}
}
