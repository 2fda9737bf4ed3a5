/*
status.go implements game-status classification: checkmate, stalemate,
insufficient material, the fifty-move rule, and threefold repetition.
Adapted from the teacher's game.go (IsCheckmate/IsInsufficientMaterial/
IsThreefoldRepetition), reworked as a single DetermineStatus over a
Board plus an optional *RepetitionTable, instead of three separate
methods on a higher-level Game type the teacher never exposes in this
package's scope.
*/

package chess

// Status classifies the outcome (or lack of one) of the current position.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
	StatusInsufficientMaterial
	StatusFiftyMoveRule
	StatusThreefoldRepetition
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusInsufficientMaterial:
		return "insufficient material"
	case StatusFiftyMoveRule:
		return "fifty-move rule"
	case StatusThreefoldRepetition:
		return "threefold repetition"
	default:
		return "ongoing"
	}
}

// DetermineStatus classifies b's position. rep may be nil, in which case
// threefold repetition is never reported (the caller isn't tracking it).
func (b *Board) DetermineStatus(rep *RepetitionTable) Status {
	if !b.HasLegalMove() {
		if b.InCheck() {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if b.InsufficientMaterial() {
		return StatusInsufficientMaterial
	}
	if b.HalfMoveClock() >= 100 {
		return StatusFiftyMoveRule
	}
	if rep != nil && rep.IsThreefold() {
		return StatusThreefoldRepetition
	}
	return StatusOngoing
}

// darkSquares is the set of dark-colored squares (a1 is dark), used to
// tell same-colored from opposite-colored bishops.
const darkSquares = SquareSet(0xAA55AA55AA55AA55)

// InsufficientMaterial reports whether neither side has enough material
// to deliver checkmate: bare kings, king-plus-minor vs. bare king, both
// sides down to a single same-colored bishop, or both sides down to a
// single knight.
func (b *Board) InsufficientMaterial() bool {
	if b.pawns != 0 || b.getRooks() != 0 || b.getQueens() != 0 {
		return false
	}

	wKnights := b.knights & b.colorMask(White)
	bKnights := b.knights & b.colorMask(Black)
	wBishops := b.getBishops() & b.colorMask(White)
	bBishops := b.getBishops() & b.colorMask(Black)

	totalMinors := (b.knights | b.getBishops()).PopCount()
	switch totalMinors {
	case 0, 1:
		return true
	case 2:
		if wBishops.PopCount() == 1 && bBishops.PopCount() == 1 {
			return (wBishops&darkSquares != 0) == (bBishops&darkSquares != 0)
		}
		return wKnights.PopCount() == 1 && bKnights.PopCount() == 1
	default:
		return false
	}
}
