package chess

// Piece identifies a piece kind, independent of color.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceLetters indexes a piece kind to its uppercase SAN letter. Pawns have
// no letter and are never looked up directly; index 0 is a placeholder.
var pieceLetters = [7]byte{0, 0, 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the uppercase SAN piece letter, or 0 for a pawn or NoPiece.
func (p Piece) Letter() byte { return pieceLetters[p] }

// PieceAndColor is a piece tagged with the color of the side that owns it.
// The zero value denotes an empty square.
type PieceAndColor struct {
	Piece Piece
	Color Color
}

// NoPieceAndColor represents an empty square.
var NoPieceAndColor = PieceAndColor{Piece: NoPiece}

// pieceFENLetters maps (color, piece) to the FEN character used for it.
var pieceFENLetters = map[PieceAndColor]byte{
	{Pawn, White}: 'P', {Knight, White}: 'N', {Bishop, White}: 'B',
	{Rook, White}: 'R', {Queen, White}: 'Q', {King, White}: 'K',
	{Pawn, Black}: 'p', {Knight, Black}: 'n', {Bishop, Black}: 'b',
	{Rook, Black}: 'r', {Queen, Black}: 'q', {King, Black}: 'k',
}

// FENLetter returns the FEN character for a piece-and-color, or 0 if empty.
func (pc PieceAndColor) FENLetter() byte {
	if pc.Piece == NoPiece {
		return 0
	}
	return pieceFENLetters[pc]
}

// pieceFromFENLetter maps FEN piece letters back to a PieceAndColor.
var pieceFromFENLetter = map[byte]PieceAndColor{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White},
	'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black},
	'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}
