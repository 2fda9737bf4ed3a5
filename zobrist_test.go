package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZobristHashStableAcrossIdenticalLoads(t *testing.T) {
	InitZobristKeys()
	a, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	assert.Equal(t, a.ZobristHash(), b.ZobristHash())
}

func TestZobristHashDiffersOnSideToMove(t *testing.T) {
	InitZobristKeys()
	w, err := LoadFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	b, err := LoadFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)
	assert.NotEqual(t, w.ZobristHash(), b.ZobristHash())
}

func TestZobristHashTransposition(t *testing.T) {
	InitZobristKeys()
	a, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	a.DoMove(NewMove(G1, F3, MoveKnight))
	a.DoMove(NewMove(G8, F6, MoveKnight))
	a.DoMove(NewMove(F3, G1, MoveKnight))
	a.DoMove(NewMove(F6, G8, MoveKnight))

	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)

	assert.Equal(t, a.ZobristHash(), b.ZobristHash())
}

func TestRepetitionTableDetectsThreefold(t *testing.T) {
	InitZobristKeys()
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)

	rep := NewRepetitionTable()
	rep.Record(b)
	assert.False(t, rep.IsThreefold())

	shuffle := func() {
		b.DoMove(NewMove(G1, F3, MoveKnight))
		rep.Record(b)
		b.DoMove(NewMove(G8, F6, MoveKnight))
		rep.Record(b)
		b.DoMove(NewMove(F3, G1, MoveKnight))
		rep.Record(b)
		b.DoMove(NewMove(F6, G8, MoveKnight))
		rep.Record(b)
	}
	shuffle()
	assert.Equal(t, 2, rep.Count(b))
	assert.False(t, rep.IsThreefold())
	shuffle()
	assert.Equal(t, 3, rep.Count(b))
	assert.True(t, rep.IsThreefold())
}

func TestRepetitionTableResetClearsCounts(t *testing.T) {
	InitZobristKeys()
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	rep := NewRepetitionTable()
	rep.Record(b)
	rep.Record(b)
	rep.Reset()
	assert.Equal(t, 0, rep.Count(b))
	assert.False(t, rep.IsThreefold())
}
