package ink

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStroke() Stroke {
	return &Polyline{
		Meta:   newMeta(),
		Points: []gg.Point{gg.Pt(0, 0), gg.Pt(10, 10)},
		Width:  2,
		Color:  gg.RGBA{A: 1},
	}
}

func checkCursorInvariant(t *testing.T, h *History) {
	t.Helper()
	assert.GreaterOrEqual(t, h.Cursor(), 0)
	assert.LessOrEqual(t, h.Cursor(), h.Len())
}

func TestHistoryCursorInvariant(t *testing.T) {
	var h History
	ops := []func(){
		func() { h.Commit(testStroke()) },
		func() { h.Commit(testStroke()) },
		func() { h.Undo() },
		func() { h.Undo() },
		func() { h.Undo() }, // beyond the bottom, must no-op
		func() { h.Redo() },
		func() { h.Commit(testStroke()) },
		func() { h.Redo() }, // redo branch destroyed, must no-op
		func() { h.Clear() },
		func() { h.Undo() },
		func() { h.Redo() },
	}
	for _, op := range ops {
		op()
		checkCursorInvariant(t, &h)
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	var h History
	a, b, c := testStroke(), testStroke(), testStroke()
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)

	before := append([]Stroke(nil), h.Active()...)
	require.True(t, h.Undo())
	require.True(t, h.Redo())
	assert.Equal(t, before, h.Active())
}

func TestHistoryCommitDestroysRedoBranch(t *testing.T) {
	var h History
	a, b, c, d := testStroke(), testStroke(), testStroke(), testStroke()
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)

	require.True(t, h.Undo())
	require.True(t, h.Undo())
	assert.Equal(t, 1, h.Cursor())

	h.Commit(d)
	require.Len(t, h.Active(), 2)
	assert.Same(t, a, h.Active()[0])
	assert.Same(t, d, h.Active()[1])
	assert.False(t, h.Redo(), "nothing left to redo after the branch is destroyed")
	assert.Equal(t, 2, h.Len())
}

func TestHistoryEvictsOldest(t *testing.T) {
	var h History
	first := testStroke()
	second := testStroke()
	h.Commit(first)
	h.Commit(second)
	for i := 2; i < MaxStrokes; i++ {
		h.Commit(testStroke())
	}
	require.Equal(t, MaxStrokes, h.Len())
	assert.Same(t, first, h.Active()[0])

	h.Commit(testStroke())
	assert.Equal(t, MaxStrokes, h.Len(), "capacity must hold")
	assert.Equal(t, MaxStrokes, h.Cursor())
	assert.Same(t, second, h.Active()[0], "oldest stroke must be evicted")
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Commit(testStroke())
	h.Commit(testStroke())
	require.True(t, h.Undo())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Cursor())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Empty(t, h.Active())
}

func TestHistoryUndoRedoBounds(t *testing.T) {
	var h History
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())

	h.Commit(testStroke())
	assert.False(t, h.Redo())
	require.True(t, h.Undo())
	assert.False(t, h.Undo())
}
