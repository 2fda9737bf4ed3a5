package chess

// Square is a board coordinate in 0..63, index = rank*8 + file. The
// sentinel NoSquare (64) represents "absent"; it is deliberately one past
// the last valid index so that range checks (sq < 64) double as
// validity checks.
type Square int

const NoSquare Square = 64

// NewSquare builds a Square from 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) File() int { return int(sq) & 7 }
func (sq Square) Rank() int { return int(sq) >> 3 }

// IsValid reports whether sq is a real board square (not NoSquare or beyond).
func (sq Square) IsValid() bool { return sq >= 0 && sq < 64 }

var fileLetters = [8]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

// String renders the square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{fileLetters[sq.File()], byte('1' + sq.Rank())})
}

// ParseSquare parses algebraic notation ("e4") into a Square. It returns
// NoSquare for "-" or malformed input.
func ParseSquare(s string) Square {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1'))
}

// Named squares used throughout castling and en-passant logic.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
