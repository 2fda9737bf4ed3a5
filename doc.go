/*
Package chess implements bitboard-based legal chess move generation,
SAN encoding/disambiguation, and streaming PGN parsing.

# Concurrency

The attack and ray lookup tables (rayTable, interceptTable, lineThrough
in rays.go; knightAttacks, kingAttacks, pawnAttacks in attacks.go) are
built once by this file's init, before any other goroutine can observe
the package (the Go runtime completes all init funcs before main or any
imported use runs). After that they are never written again, so any
number of goroutines may call GenerateMoves, DoMove, or LoadFEN
concurrently on independent Boards without synchronization.

This is unlike InitZobristKeys in zobrist.go, which is caller-invoked
rather than automatic: its keys are randomized per process, and calling
it more than once would make previously computed hashes incomparable to
new ones, so the package leaves the timing of that call to the caller
instead of hiding it behind init.
*/
package chess

func init() {
	initRays()
	initNonSliderAttacks()
}
