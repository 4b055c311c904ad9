// Package notes holds the topic notes editor history, markdown rendering and
// document export.
package notes

// MaxHistory is the number of states the editor history keeps.
const MaxHistory = 50

// History is a bounded undo/redo stack of editor values. The zero value is
// not usable; create one with NewHistory.
type History struct {
	states []string
	index  int
}

// NewHistory starts a history at the given value.
func NewHistory(initial string) *History {
	return &History{states: []string{initial}}
}

// Current returns the value at the cursor.
func (h *History) Current() string { return h.states[h.index] }

// Push records a new value, dropping any redo tail and the oldest states
// beyond MaxHistory. Pushing the current value is a no-op.
func (h *History) Push(value string) {
	if value == h.Current() {
		return
	}
	h.states = append(h.states[:h.index+1], value)
	if over := len(h.states) - MaxHistory; over > 0 {
		h.states = append([]string(nil), h.states[over:]...)
	}
	h.index = len(h.states) - 1
}

func (h *History) CanUndo() bool { return h.index > 0 }
func (h *History) CanRedo() bool { return h.index < len(h.states)-1 }

// Undo moves back one state and returns the value there.
func (h *History) Undo() (string, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Redo moves forward one state and returns the value there.
func (h *History) Redo() (string, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// Len is the number of stored states.
func (h *History) Len() int { return len(h.states) }
