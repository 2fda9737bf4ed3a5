package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineStatusOngoing(t *testing.T) {
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	assert.Equal(t, StatusOngoing, b.DetermineStatus(nil))
}

func TestDetermineStatusCheckmate(t *testing.T) {
	// Back-rank mate: black king g8 boxed in by its own pawns, white rook
	// delivers mate on the back rank.
	b, err := LoadFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	b.DoMove(NewMove(A1, A8, MoveRook))
	assert.Equal(t, StatusCheckmate, b.DetermineStatus(nil))
}

func TestDetermineStatusStalemate(t *testing.T) {
	// Classic king + queen stalemate: black king a8 has no legal move and
	// is not in check.
	b, err := LoadFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, b.InCheck())
	assert.Equal(t, StatusStalemate, b.DetermineStatus(nil))
}

func TestDetermineStatusInsufficientMaterialBareKings(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.InsufficientMaterial())
	assert.Equal(t, StatusInsufficientMaterial, b.DetermineStatus(nil))
}

func TestDetermineStatusInsufficientMaterialKingAndMinor(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.InsufficientMaterial())
}

func TestDetermineStatusSufficientMaterialTwoBishopsOppositeColor(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/3b4/8/8/8/3BK3 w - - 0 1")
	assert.NoError(t, err)
	// White bishop on d1 (light), black bishop on d5 (light): same color,
	// insufficient.
	assert.True(t, b.InsufficientMaterial())

	// Black bishop on e5 (dark) instead: opposite colors, sufficient.
	b, err = LoadFEN("4k3/8/8/4b3/8/8/8/3BK3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, b.InsufficientMaterial())
}

func TestDetermineStatusFiftyMoveRule(t *testing.T) {
	b, err := LoadFEN("4k3/8/8/8/8/8/8/R3K3 w - - 100 60")
	assert.NoError(t, err)
	assert.Equal(t, StatusFiftyMoveRule, b.DetermineStatus(nil))
}

func TestDetermineStatusThreefoldRepetition(t *testing.T) {
	InitZobristKeys()
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	rep := NewRepetitionTable()
	for i := 0; i < 3; i++ {
		rep.Record(b)
		b.DoMove(NewMove(G1, F3, MoveKnight))
		b.DoMove(NewMove(G8, F6, MoveKnight))
		b.DoMove(NewMove(F3, G1, MoveKnight))
		b.DoMove(NewMove(F6, G8, MoveKnight))
	}
	rep.Record(b)
	assert.Equal(t, StatusThreefoldRepetition, b.DetermineStatus(rep))
}
