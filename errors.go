/*
errors.go implements the library-wide error taxonomy. DoMove does not
check that its move is legal and NewMove masks its square arguments to
six bits; neither panics on misuse. Anything that parses untrusted external text --
FEN, SAN, PGN bytes -- returns a *Error instead, so callers feeding
arbitrary files never need to recover() from a panic.
*/

package chess

import (
	"fmt"

	"github.com/op/go-logging"
)

// log is the package-wide debug/warning logger, grounded on FrankyGo's
// per-package *logging.Logger convention (collapsed to one instance here
// since this whole module is a single flat package).
var log = logging.MustGetLogger("chess")

// ErrorKind enumerates the library's error taxonomy.
type ErrorKind int

const (
	// ErrOK is never returned; it exists only as the zero value / sentinel
	// for "no error" in APIs that report a kind alongside a bool.
	ErrOK ErrorKind = iota
	ErrBadCharacter
	ErrBadPGNTag
	ErrUnexpectedMoveNum
	ErrUnexpectedToken
	ErrBadFEN
	ErrIllegalMove
	ErrAmbiguousMove
	ErrUnimplemented
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBadCharacter:
		return "BadCharacter"
	case ErrBadPGNTag:
		return "BadPGNTag"
	case ErrUnexpectedMoveNum:
		return "UnexpectedMoveNum"
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrBadFEN:
		return "BadFEN"
	case ErrIllegalMove:
		return "IllegalMove"
	case ErrAmbiguousMove:
		return "AmbiguousMove"
	case ErrUnimplemented:
		return "Unimplemented"
	case ErrInternal:
		return "InternalError"
	default:
		return "OK"
	}
}

// Error is the concrete error type returned by every boundary function
// (FEN load, SAN resolution, PGN scan/parse). Line is 1-based and 0 when
// not applicable (e.g. a bare FEN/SAN parse outside of a PGN stream).
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Line %d: %s: %s", e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// withLine returns a copy of e with Line set, used by the reader to
// prepend "Line N:" once an error reaches its top level.
func (e *Error) withLine(line int) *Error {
	cp := *e
	cp.Line = line
	return &cp
}
