/*
san.go implements the SAN writer (MoveToSANAndPlay) and the SAN-to-move
resolver the PGN reader uses once the scanner has decoded a move token
into (piece, destination, source mask, promotion piece).

Disambiguation reuses the legal move generator's ListCollector rather than
dedicated per-piece-per-destination generator entry points: since this
library isn't chasing engine-grade node throughput, regenerating the full
legal move list and filtering it is simpler and exactly as correct as
bespoke generation, while still going through the same Collector family
(collector.go) that move generation is built on.
*/

package chess

import "strings"

// MoveToSANAndPlay validates m against the current position's legal
// moves, builds its minimal SAN representation, and applies it. The
// board is left unmodified if m is not legal.
func (b *Board) MoveToSANAndPlay(m Move) (string, error) {
	var legal ListCollector
	GenerateMoves(b, &legal)

	found := false
	for _, cand := range legal.Moves {
		if cand == m {
			found = true
			break
		}
	}
	if !found {
		return "", newError(ErrIllegalMove, "move is not legal in this position")
	}

	if m.IsCastling() {
		san := "O-O"
		if m.Kind() == MoveCastleLong {
			san = "O-O-O"
		}
		b.DoMove(m)
		return san + checkOrMateSuffix(b), nil
	}

	piece := b.PieceAt(m.Src()).Piece
	isCapture := m.IsCapture() || b.PieceAt(m.Dst()).Piece != NoPiece

	var sb strings.Builder
	if letter := piece.Letter(); letter != 0 {
		sb.WriteByte(letter)
		sb.WriteString(disambiguator(legal.Moves, b, piece, m))
	} else if isCapture {
		sb.WriteByte(fileLetters[m.Src().File()])
	}

	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.Dst().String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.PromotionPiece().Letter())
	}

	b.DoMove(m)
	sb.WriteString(checkOrMateSuffix(b))
	return sb.String(), nil
}

// disambiguator implements the minimal-SAN rule: no disambiguator when m
// is the only legal move of piece to its destination; otherwise the
// file, the rank, or both, chosen by whichever uniquely distinguishes m
// among the candidates that share its piece type and destination.
func disambiguator(legalMoves []Move, b *Board, piece Piece, m Move) string {
	srcFile, srcRank := m.Src().File(), m.Src().Rank()
	candidateCount, fileCount, rankCount := 0, 0, 0

	for _, cand := range legalMoves {
		if cand.Dst() != m.Dst() || b.PieceAt(cand.Src()).Piece != piece {
			continue
		}
		candidateCount++
		if cand.Src().File() == srcFile {
			fileCount++
		}
		if cand.Src().Rank() == srcRank {
			rankCount++
		}
	}
	if candidateCount <= 1 {
		return ""
	}

	switch {
	case fileCount == 1:
		return string(fileLetters[srcFile])
	case rankCount == 1:
		return string(byte('1' + srcRank))
	case fileCount > 1 && rankCount > 1:
		return string(fileLetters[srcFile]) + string(byte('1'+srcRank))
	default:
		return string(byte('1' + srcRank))
	}
}

func checkOrMateSuffix(b *Board) string {
	if !b.InCheck() {
		return ""
	}
	if b.HasLegalMove() {
		return "+"
	}
	return "#"
}

// ResolveSAN finds the unique legal move matching a decoded SAN move
// token: piece type, destination square, the disambiguator's source mask
// (all(), a file, a rank, or a single square), and (for pawns) the
// promotion piece, or NoPiece if the token has none. Returns
// IllegalNoMove / IllegalAmbiguousMove with a matching *Error on failure.
func (b *Board) ResolveSAN(piece Piece, dst Square, srcMask SquareSet, promo Piece) (Move, error) {
	var legal ListCollector
	GenerateMoves(b, &legal)

	match := IllegalNoMove
	count := 0
	for _, cand := range legal.Moves {
		if cand.Dst() != dst || cand.IsCastling() {
			continue
		}
		if b.PieceAt(cand.Src()).Piece != piece {
			continue
		}
		if !srcMask.Contains(cand.Src()) {
			continue
		}
		if promo != NoPiece && (!cand.IsPromotion() || cand.PromotionPiece() != promo) {
			continue
		}
		if promo == NoPiece && cand.IsPromotion() {
			continue
		}
		count++
		if count == 1 {
			match = cand
		} else {
			return IllegalAmbiguousMove, newError(ErrAmbiguousMove, "SAN move is ambiguous")
		}
	}
	if count == 0 {
		return IllegalNoMove, newError(ErrIllegalMove, "SAN move matches no legal move")
	}
	return match, nil
}

// ResolveCastling finds the short or long castling move, if legal.
func (b *Board) ResolveCastling(short bool) (Move, error) {
	var legal ListCollector
	GenerateMoves(b, &legal)

	wantKind := MoveCastleLong
	if short {
		wantKind = MoveCastleShort
	}
	for _, cand := range legal.Moves {
		if cand.Kind() == wantKind {
			return cand, nil
		}
	}
	return IllegalNoMove, newError(ErrIllegalMove, "castling is not legal")
}
