/*
pgn_parser.go implements the push-down grammar described by:

	PGN        ::= (COMMENT* GAME)* EOF
	GAME       ::= TAGPAIRS MOVETEXT
	TAGPAIRS   ::= (COMMENT* TAGPAIR)*
	TAGPAIR    ::= TAG_START TAG_KEY TAG_VALUE TAG_END
	MOVETEXT   ::= LINE RESULT
	LINE       ::= COMMENT* (MOVE_ITEM COMMENT* VARIATION* COMMENT*)*
	VARIATION  ::= VARIATION_START LINE VARIATION_END
	MOVE_ITEM  ::= MOVENUM? MOVE NAG*

Grounded directly on spec.md's own EBNF (§4.8); the teacher has no
PGN-reading code to generalize from (pgn.go is write-only), so the parser
is new machinery in the teacher's naming/error style -- a hand-rolled
recursive-descent walker over the Scanner's token stream, mirroring the
teacher's habit of avoiding parser-generator dependencies in favor of
direct control flow.

Action-class filtering (which callbacks actually fire) is entirely the
Reader's business: the parser always reports every grammar event to
readerActions, and the Reader decides whether to apply/emit it. This
keeps the grammar walk itself filter-agnostic, matching the spec's
description of the filter as a property of the callback surface (§6.4),
not the grammar.
*/

package chess

// ActionClass is a bit in the reader's callback filter.
type ActionClass int

const (
	ActionPgnTag ActionClass = 1 << iota
	ActionMove
	ActionNAG
	ActionVariation
	ActionComment
)

// maxVariationDepth is the push-down stack's minimum guaranteed depth
// (spec.md requires at least 63).
const maxVariationDepth = 256

// RecoveryPolicy is the action handler's response to a recoverable error.
type RecoveryPolicy int

const (
	Abort RecoveryPolicy = iota
	ContinueFromNextGame
)

// readerActions is the callback surface the parser drives. Reader (in
// pgn_reader.go) implements it and owns all board state and filtering;
// the parser itself never touches a board.
type readerActions interface {
	gameStart()
	pgnTag(key, value string)
	moveTextSection()
	comment(text string, depth int)
	moveNum(tok Token, depth int) error
	move(tok Token, depth int) error
	nag(n int, depth int)
	variationStart(depth int)
	variationEnd(depth int)
	gameTerminated(result GameResult)
	onError(err *Error) RecoveryPolicy
}

// parser walks the token stream and invokes reader callbacks.
type parser struct {
	scan    *Scanner
	tok     Token
	actions readerActions
	pending []string
}

func newParser(scan *Scanner, actions readerActions) *parser {
	return &parser{scan: scan, actions: actions}
}

func (p *parser) next() {
	p.tok = p.scan.Next()
}

// run drives PGN ::= (COMMENT* GAME)* EOF, stopping only at end of input
// or when the action handler aborts.
func (p *parser) run() error {
	p.next()
	for {
		p.pending = p.pending[:0]
		p.bufferLeadingComments()
		if p.tok.Kind == TokEOF {
			return nil
		}
		if err := p.parseGame(); err != nil {
			return err
		}
	}
}

// bufferLeadingComments consumes COMMENT* before a game's first TAGPAIR,
// buffering the text rather than emitting it immediately: spec.md §5
// requires pending comments to flush only after moveTextSection fires.
func (p *parser) bufferLeadingComments() {
	for p.tok.Kind == TokCommentStart || p.tok.Kind == TokCommentText {
		if p.tok.Kind == TokCommentStart {
			p.pending = append(p.pending, p.drainBraceComment())
			continue
		}
		p.pending = append(p.pending, p.tok.Text)
		p.next()
	}
}

func (p *parser) flushPending() {
	for _, text := range p.pending {
		p.actions.comment(text, 0)
	}
	p.pending = p.pending[:0]
}

func (p *parser) drainBraceComment() string {
	// p.tok is COMMENT_START; the scanner is already inside the comment.
	var buf []byte
	for {
		ct := p.scan.NextInsideComment()
		switch ct.Kind {
		case TokCommentText:
			buf = append(buf, ct.Text...)
		case TokCommentNewline:
			buf = append(buf, ' ')
		case TokCommentEnd:
			p.next()
			return string(buf)
		case TokEOF:
			p.next()
			return string(buf)
		}
	}
}

// parseGame drives GAME ::= TAGPAIRS MOVETEXT for one game, invoking
// gameStart/gameTerminated and handling the ContinueFromNextGame policy.
func (p *parser) parseGame() error {
	p.actions.gameStart()

	if err := p.parseTagPairs(); err != nil {
		return p.recover(err)
	}
	p.actions.moveTextSection()
	p.flushPending()

	result, err := p.parseMovetext()
	if err != nil {
		return p.recover(err)
	}
	p.actions.gameTerminated(result)
	return nil
}

// recover implements §7's error policy: Abort re-raises (propagating out
// of run()), ContinueFromNextGame eats tokens up to RESULT/EOF and
// resumes silently, with no further callbacks (including no
// gameTerminated) for the aborted game.
func (p *parser) recover(e error) error {
	err, ok := e.(*Error)
	if !ok {
		return e
	}
	switch p.actions.onError(err) {
	case Abort:
		return err
	case ContinueFromNextGame:
		for p.tok.Kind != TokResult && p.tok.Kind != TokEOF {
			p.next()
		}
		if p.tok.Kind == TokResult {
			p.next()
		}
		return nil
	default:
		return newError(ErrInternal, "action handler returned unknown recovery policy")
	}
}

func (p *parser) parseTagPairs() error {
	for {
		p.bufferLeadingComments()
		if p.tok.Kind != TokTagStart {
			return nil
		}
		if err := p.parseTagPair(); err != nil {
			return err
		}
	}
}

func (p *parser) parseTagPair() error {
	// p.tok is TAG_START; the scanner is already positioned at the key.
	keyTok := p.scan.NextTagKey()
	if keyTok.Kind == TokError {
		return keyTok.Err
	}
	p.tok = p.scan.Next()
	if p.tok.Kind != TokTagValue {
		return newError(ErrBadPGNTag, "expected tag value after key %q", keyTok.Text)
	}
	value := p.tok.Text
	p.next()
	if p.tok.Kind != TokTagEnd {
		return newError(ErrBadPGNTag, "expected ']' closing tag %q", keyTok.Text)
	}
	p.next()
	p.actions.pgnTag(keyTok.Text, value)
	return nil
}

// parseMovetext drives MOVETEXT ::= LINE RESULT at the top level (depth 0,
// the main line).
func (p *parser) parseMovetext() (GameResult, error) {
	if err := p.parseLine(0); err != nil {
		return ResultUnknown, err
	}
	if p.tok.Kind != TokResult {
		return ResultUnknown, newError(ErrUnexpectedToken, "expected game result")
	}
	result := p.tok.Result
	p.next()
	return result, nil
}

// parseLine drives LINE ::= COMMENT* (MOVE_ITEM COMMENT* VARIATION*
// COMMENT*)* at the given variation depth (0 = main line).
func (p *parser) parseLine(depth int) error {
	for {
		p.consumeComments(depth)
		if p.tok.Kind == TokMoveNum {
			if err := p.actions.moveNum(p.tok, depth); err != nil {
				return err
			}
			p.next()
			p.consumeComments(depth)
		}
		if !isMoveToken(p.tok.Kind) {
			return nil
		}
		if err := p.parseMoveItem(depth); err != nil {
			return err
		}
	}
}

func isMoveToken(k TokenKind) bool {
	switch k {
	case TokMovePawn, TokMovePawnCapture, TokMovePawnPromo, TokMovePawnPromoCapture,
		TokMovePiece, TokMoveShortCastle, TokMoveLongCastle:
		return true
	}
	return false
}

func (p *parser) consumeComments(depth int) {
	for p.tok.Kind == TokCommentStart || p.tok.Kind == TokCommentText {
		if p.tok.Kind == TokCommentStart {
			p.actions.comment(p.drainBraceComment(), depth)
			continue
		}
		p.actions.comment(p.tok.Text, depth)
		p.next()
	}
}

// parseMoveItem drives MOVE_ITEM ::= MOVENUM? MOVE NAG*, reporting the
// move to the reader, then consuming trailing comments, NAGs, and any
// variations attached to this move.
func (p *parser) parseMoveItem(depth int) error {
	moveTok := p.tok
	if err := p.actions.move(moveTok, depth); err != nil {
		return err
	}
	p.next()

	for p.tok.Kind == TokNAG {
		p.actions.nag(p.tok.NAG, depth)
		p.next()
	}
	p.consumeComments(depth)

	for p.tok.Kind == TokVariationStart {
		if err := p.parseVariation(depth); err != nil {
			return err
		}
		p.consumeComments(depth)
	}
	return nil
}

// parseVariation drives VARIATION ::= VARIATION_START LINE VARIATION_END.
func (p *parser) parseVariation(depth int) error {
	if depth+1 >= maxVariationDepth {
		return newError(ErrUnexpectedToken, "variation nesting exceeds %d levels", maxVariationDepth)
	}
	p.next() // consume '('
	p.actions.variationStart(depth + 1)

	if err := p.parseLine(depth + 1); err != nil {
		return err
	}
	if p.tok.Kind != TokVariationEnd {
		return newError(ErrUnexpectedToken, "expected ')' closing variation")
	}
	p.next()
	p.actions.variationEnd(depth + 1)
	return nil
}
