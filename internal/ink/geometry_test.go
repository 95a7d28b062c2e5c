package ink

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(gg.Pt(0, 0), gg.Pt(3, 4)))
	assert.Equal(t, 0.0, Distance(gg.Pt(2, 2), gg.Pt(2, 2)))
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(gg.Pt(0, 0), gg.Pt(10, 4))
	assert.Equal(t, gg.Pt(5, 2), m)
}

func TestOffsetPoints(t *testing.T) {
	left, right, ok := OffsetPoints(gg.Pt(0, 0), gg.Pt(10, 0), 4)
	require.True(t, ok)
	assert.InDelta(t, 0.0, left.X, 1e-9)
	assert.InDelta(t, 2.0, left.Y, 1e-9)
	assert.InDelta(t, 0.0, right.X, 1e-9)
	assert.InDelta(t, -2.0, right.Y, 1e-9)

	// The two offsets straddle the origin point at width/2 each.
	assert.InDelta(t, 4.0, Distance(left, right), 1e-9)
}

func TestOffsetPointsDegenerate(t *testing.T) {
	// Zero-length direction must be reported, not divided by.
	_, _, ok := OffsetPoints(gg.Pt(5, 5), gg.Pt(5, 5), 4)
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, clamp(0.5, 1, 6))
	assert.Equal(t, 6.0, clamp(9, 1, 6))
	assert.Equal(t, 3.0, clamp(3, 1, 6))
}
