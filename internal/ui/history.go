package ui

import (
	"github.com/trebletui/treble/internal/history"
)

// promptHistory is the recall buffer behind the filter and command prompts.
// pos == len(entries) means the prompt shows live input; recalling walks
// backward through stored entries and returns to the stashed live input when
// stepping past the newest one again.
type promptHistory struct {
	entries []string
	pos     int
	stash   string
	limit   int
	manager *history.Manager
	file    string
}

func newPromptHistory(limit int) *promptHistory {
	return &promptHistory{limit: limit}
}

// newPersistentHistory loads prior entries through the manager. A failed load
// starts an empty buffer that still persists new entries.
func newPersistentHistory(limit int, manager *history.Manager, file string) *promptHistory {
	h := &promptHistory{limit: limit, manager: manager, file: file}
	if entries, err := manager.Load(file); err == nil {
		if len(entries) > limit {
			entries = entries[len(entries)-limit:]
		}
		h.entries = entries
	}
	h.pos = len(h.entries)
	return h
}

// Remember appends an entry, dropping empties and immediate repeats, trims to
// the limit and persists best-effort when a manager is attached
func (h *promptHistory) Remember(entry string) {
	defer h.ResetRecall()

	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}

	if h.manager != nil && h.file != "" {
		h.manager.Save(h.file, h.entries)
	}
}

// RecallPrev steps back through stored entries. The live input is stashed on
// the first step so RecallNext can restore it; at the oldest entry further
// steps stay put.
func (h *promptHistory) RecallPrev(live string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos == len(h.entries) {
		h.stash = live
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// RecallNext steps forward, handing back the stashed live input past the
// newest entry
func (h *promptHistory) RecallNext() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		stash := h.stash
		h.stash = ""
		return stash, true
	}
	return h.entries[h.pos], true
}

// ResetRecall returns to live input; called when a prompt opens or closes
func (h *promptHistory) ResetRecall() {
	h.pos = len(h.entries)
	h.stash = ""
}
