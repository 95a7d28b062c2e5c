package ink

// MaxStrokes bounds the history. Committing past the bound evicts the
// oldest stroke from the front.
const MaxStrokes = 100

// History is an ordered, bounded store of committed strokes plus a cursor
// separating active (visible, undoable) strokes from redo-only ones.
// Strokes at indices < cursor render; the rest exist only to support redo.
type History struct {
	strokes []Stroke
	cursor  int
}

// Commit appends a stroke. Any redo branch past the cursor is discarded
// first, so there is exactly one redo branch at a time.
func (h *History) Commit(s Stroke) {
	h.strokes = append(h.strokes[:h.cursor], s)
	h.cursor = len(h.strokes)
	if len(h.strokes) > MaxStrokes {
		copy(h.strokes, h.strokes[1:])
		h.strokes[len(h.strokes)-1] = nil
		h.strokes = h.strokes[:MaxStrokes]
		h.cursor--
	}
}

// Undo steps the cursor back one stroke. Returns false when there is
// nothing to undo.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo steps the cursor forward one stroke. Returns false when there is
// nothing to redo.
func (h *History) Redo() bool {
	if h.cursor == len(h.strokes) {
		return false
	}
	h.cursor++
	return true
}

// Clear drops every stroke, including the redo branch.
func (h *History) Clear() {
	h.strokes = nil
	h.cursor = 0
}

func (h *History) CanUndo() bool { return h.cursor > 0 }
func (h *History) CanRedo() bool { return h.cursor < len(h.strokes) }

// Active returns the strokes up to the cursor. The slice aliases the
// history; callers must not retain it across mutations.
func (h *History) Active() []Stroke {
	return h.strokes[:h.cursor]
}

// Len returns the total stored stroke count, including the redo branch.
func (h *History) Len() int { return len(h.strokes) }

// Cursor returns the boundary between active and redo-only strokes.
func (h *History) Cursor() int { return h.cursor }
