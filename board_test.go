package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerCountClampsAtTwo(t *testing.T) {
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	assert.Equal(t, 0, b.CheckerCount())
	assert.False(t, b.InCheck())

	// Knight on d3 and rooks on a1 and h1 all give check to Ke1.
	b, err = LoadFEN("k7/8/8/8/8/3n4/8/r3K2r w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 2, b.CheckerCount())
	assert.True(t, b.InCheck())
}

func TestSingleCheckSpecialization(t *testing.T) {
	// White king on e1, black rook on e8, nothing between: one checker.
	b, err := LoadFEN("k3r3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 1, b.CheckerCount())
	assert.True(t, b.InCheck())
	assert.Equal(t, specSingleCheck, b.spec)
}

func TestDoubleCheckSpecialization(t *testing.T) {
	// Black rook on e8 and black bishop on h4 both give check to Ke1.
	b, err := LoadFEN("k3r3/8/8/8/7b/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 2, b.CheckerCount())
	assert.Equal(t, specDoubleCheck, b.spec)
}

func TestBumpHalfMoveClockSaturates(t *testing.T) {
	b, err := LoadFEN("8/8/8/4k3/8/8/8/4K3 w - - 254 1")
	assert.NoError(t, err)
	b.bumpHalfMoveClock()
	assert.Equal(t, 255, b.HalfMoveClock())
	b.bumpHalfMoveClock()
	assert.Equal(t, 255, b.HalfMoveClock())
}

func TestGetBishopsRooksQueensSplitSharedPlanes(t *testing.T) {
	b, err := LoadFEN("8/8/8/3qk3/8/3QK3/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.getBishops().IsEmpty())
	assert.True(t, b.getRooks().IsEmpty())
	assert.Equal(t, 2, b.getQueens().PopCount())
}
