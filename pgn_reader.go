/*
pgn_reader.go implements the reader actions the parser drives: tag/move/
comment/variation callbacks filtered by ActionClass, the current/previous
board pair, and the push-down variation stack (§4.9). Grounded on
spec.md's own description of the reader's responsibilities; there is no
teacher precedent (pgn.go only serializes), so the Handler interface
follows the teacher's general preference for small exported interfaces
over large structs of function fields (mirrors how Game exposes plain
methods rather than callback hooks).
*/

package chess

// Handler is the PGN reader's callback surface. Implementations receive
// one call per completed grammar phase (filtered by the reader's
// ActionClass set); Reader.Current and Reader.Previous reflect the
// position after/before the most recently reported move, for the variation
// currently being read.
type Handler interface {
	GameStart()
	PgnTag(key, value string)
	MoveTextSection()
	Comment(text string)
	AfterMove(san string, m Move)
	NAG(n int)
	VariationStart()
	VariationEnd()
	GameTerminated(result GameResult)
	// OnError is invoked for a recoverable error (illegal/ambiguous move,
	// malformed tag, unexpected token). Returning Abort re-raises the
	// error to Reader.ReadAll's caller; ContinueFromNextGame skips to the
	// next game and keeps going.
	OnError(err *Error) RecoveryPolicy
}

// variationFrame saves the board pair a variation started from, so
// VariationEnd can restore it.
type variationFrame struct {
	current, previous Board
}

// Reader drives a Handler over a PGN byte stream.
type Reader struct {
	handler Handler
	filter  ActionClass

	current, previous Board
	stack             []variationFrame
}

// NewReader returns a Reader that invokes handler for the action classes
// set in filter (OR together ActionPgnTag, ActionMove, ActionNAG,
// ActionVariation, ActionComment).
func NewReader(handler Handler, filter ActionClass) *Reader {
	return &Reader{handler: handler, filter: filter}
}

// ReadAll parses src to completion (or until the handler returns Abort
// from OnError), invoking callbacks for every game in document order.
func (r *Reader) ReadAll(src []byte) error {
	r.current = Board{epSquare: NoSquare}
	for i := range r.current.castlingRooks {
		r.current.castlingRooks[i] = NoSquare
	}
	r.previous = r.current
	r.stack = r.stack[:0]

	scan := NewScanner(src)
	p := newParser(scan, r)
	err := p.run()
	if err != nil {
		if ce, ok := err.(*Error); ok {
			return ce.withLine(p.tok.Line)
		}
		return err
	}
	return nil
}

func (r *Reader) gameStart() {
	r.current = startingBoard()
	r.previous = r.current
	r.stack = r.stack[:0]
	r.handler.GameStart()
}

// startingBoard returns the standard chess starting position, used to
// reset the reader's board pair at the start of every game. FEN/SetUp tags
// reach PgnTag like any other tag; they do not change the position the
// reader plays the game's moves from.
func startingBoard() Board {
	b, err := LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("internal error: starting FEN failed to load")
	}
	return *b
}

func (r *Reader) pgnTag(key, value string) {
	if r.filter&ActionPgnTag != 0 {
		r.handler.PgnTag(key, value)
	}
}

func (r *Reader) moveTextSection() {
	r.handler.MoveTextSection()
}

func (r *Reader) comment(text string, depth int) {
	if depth > 0 && r.filter&ActionVariation == 0 {
		return
	}
	if r.filter&ActionComment != 0 {
		r.handler.Comment(text)
	}
}

func (r *Reader) nag(n int, depth int) {
	if depth > 0 && r.filter&ActionVariation == 0 {
		return
	}
	if r.filter&ActionMove != 0 && r.filter&ActionNAG != 0 {
		r.handler.NAG(n)
	}
}

func (r *Reader) gameTerminated(result GameResult) {
	r.handler.GameTerminated(result)
}

func (r *Reader) onError(err *Error) RecoveryPolicy {
	log.Warningf("recoverable PGN error: %s", err)
	return r.handler.OnError(err)
}

// moveNum checks a MOVENUM token's number and side indicator (0, 1, or 3
// dots) against the board the upcoming move will be played on, per
// spec.md §7's UNEXPECTED_MOVE_NUM: "move-number indicator disagrees with
// the current ply." A lone-dots indicator ("1...") is only meaningful
// when it's Black to move; a bare number is only meaningful for White.
func (r *Reader) moveNum(tok Token, depth int) error {
	if depth > 0 && r.filter&ActionVariation == 0 {
		return nil
	}
	if r.filter&ActionMove == 0 {
		return nil
	}
	wantSide := White
	if tok.Dots == 3 {
		wantSide = Black
	}
	if r.current.turnColor() != wantSide || r.current.MoveNumber() != tok.MoveNumber {
		return newError(ErrUnexpectedMoveNum,
			"move number %d%s does not match the current position (move %d, %s to move)",
			tok.MoveNumber, dotsSuffix(tok.Dots), r.current.MoveNumber(), r.current.turnColor())
	}
	return nil
}

func dotsSuffix(dots int) string {
	switch dots {
	case 3:
		return "..."
	case 1:
		return "."
	default:
		return ""
	}
}

// move resolves tok against r.current, applies it, and reports it.
// Per spec.md §4.8, moves (and the NAGs that follow them) are validated
// and applied only when the Move action class is enabled; at variation
// depth, application additionally requires the Variation class.
func (r *Reader) move(tok Token, depth int) error {
	if depth > 0 && r.filter&ActionVariation == 0 {
		return nil
	}
	if r.filter&ActionMove == 0 {
		return nil
	}

	m, err := resolveMoveToken(&r.current, tok)
	if err != nil {
		return err
	}

	r.previous = r.current
	san, sanErr := r.current.MoveToSANAndPlay(m)
	if sanErr != nil {
		return sanErr
	}
	r.handler.AfterMove(san, m)
	return nil
}

func resolveMoveToken(b *Board, tok Token) (Move, error) {
	switch tok.Kind {
	case TokMoveShortCastle:
		return b.ResolveCastling(true)
	case TokMoveLongCastle:
		return b.ResolveCastling(false)
	default:
		return b.ResolveSAN(tok.Piece, tok.Dst, tok.SrcMask, tok.Promo)
	}
}

// variationStart pushes the current board pair and rewinds to the
// pre-move position the variation branches from (§4.9).
func (r *Reader) variationStart(depth int) {
	if r.filter&ActionVariation == 0 {
		return
	}
	r.stack = append(r.stack, variationFrame{current: r.current, previous: r.previous})
	r.current = r.previous
	r.handler.VariationStart()
}

func (r *Reader) variationEnd(depth int) {
	if r.filter&ActionVariation == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.current, r.previous = top.current, top.previous
	r.handler.VariationEnd()
}

// Current returns the board reflecting the most recently applied move.
func (r *Reader) Current() *Board { return &r.current }

// Previous returns the board as it stood before the most recently
// applied move.
func (r *Reader) Previous() *Board { return &r.previous }
