package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestLoadFENStartingPosition(t *testing.T) {
	b, err := LoadFEN(startingFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, b.turnColor())
	assert.Equal(t, 1, b.MoveNumber())
	assert.Equal(t, 0, b.HalfMoveClock())
	assert.Equal(t, NoSquare, b.EPSquare())
	assert.True(t, b.CanCastle(White, true))
	assert.True(t, b.CanCastle(White, false))
	assert.True(t, b.CanCastle(Black, true))
	assert.True(t, b.CanCastle(Black, false))
	assert.False(t, b.InCheck())
	assert.Equal(t, PieceAndColor{King, White}, b.PieceAt(E1))
	assert.Equal(t, PieceAndColor{Pawn, Black}, b.PieceAt(E7))
	assert.Equal(t, NoPieceAndColor, b.PieceAt(E4))
}

func TestFENRoundTrip(t *testing.T) {
	// FEN() writes castling rights in Shredder-FEN form (rook files).
	for _, tc := range []struct{ fen, want string }{
		{startingFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1"},
		{"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
			"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w HAha - 2 3"},
		{"8/8/8/4k3/8/8/4P3/4K3 w - - 0 1", "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1"},
	} {
		b, err := LoadFEN(tc.fen)
		assert.NoError(t, err, tc.fen)
		assert.Equal(t, tc.want, b.FEN())
	}
}

func TestLoadFENRejectsBadFieldCount(t *testing.T) {
	_, err := LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assert.Error(t, err)
}

func TestLoadFENRejectsMissingKing(t *testing.T) {
	_, err := LoadFEN("rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestLoadFENRejectsPawnOnBackRank(t *testing.T) {
	_, err := LoadFEN("Pnbqkbnr/pppppppp/8/8/8/8/1PPPPPPP/RNBQKBNR w KQk - 0 1")
	assert.Error(t, err)
}

func TestLoadFENRejectsOpponentInCheck(t *testing.T) {
	// Black king on e8 already attacked by a white rook on e-file, but it
	// is White to move: illegal, the side not to move cannot be in check.
	_, err := LoadFEN("4k3/8/8/8/8/8/8/4R1K1 w - - 0 1")
	assert.Error(t, err)
}

func TestLoadFENDropsDeadEnPassantSquare(t *testing.T) {
	// With White to move a live ep target lies on the sixth rank; "e3" is
	// on the third, so it cannot be one.
	b, err := LoadFEN("rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1")
	assert.NoError(t, err)
	assert.Equal(t, NoSquare, b.EPSquare())
}

func TestLoadFENKeepsLiveEnPassantSquare(t *testing.T) {
	b, err := LoadFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	assert.Equal(t, D6, b.EPSquare())
}

func TestLoadFENShredderCastling(t *testing.T) {
	b, err := LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1")
	assert.NoError(t, err)
	assert.True(t, b.CanCastle(White, true))
	assert.True(t, b.CanCastle(White, false))
	assert.Equal(t, "HAha", b.castlingFEN())
}
