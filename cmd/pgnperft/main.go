/*
pgnperft is a debugging and benchmarking CLI over the chess package: it
runs perft (move-generation tree node counts, cross-checked against
https://www.chessprogramming.org/Perft_Results) from a FEN or the
starting position, and can replay every move of a PGN file through the
reader, logging each error it reports and going on with the next game.

It is explicitly non-core (spec.md's purpose section scopes the library
itself to generation/SAN/PGN, not a CLI), kept only as a thin
demonstrator, adapted from the teacher's internal/perft.go + main.go +
cli/cli.go trio.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	chess "github.com/skiminki/hoover-chess-utils-sub000"
)

func main() {
	fen := flag.String("fen", "", "FEN to start from (default: standard starting position)")
	depth := flag.Int("depth", 4, "perft depth")
	verbose := flag.Bool("verbose", false, "print per-root-move node counts")
	pgnFile := flag.String("pgn", "", "replay every game in this PGN file instead of running perft")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *pgnFile != "" {
		replayPGN(*pgnFile)
		return
	}

	runPerft(*fen, *depth, *verbose)
}

func startBoard(fen string) *chess.Board {
	if fen == "" {
		b, err := chess.LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
		if err != nil {
			log.Fatalf("loading starting position: %s", err)
		}
		return b
	}
	b, err := chess.LoadFEN(fen)
	if err != nil {
		log.Fatalf("loading FEN %q: %s", fen, err)
	}
	return b
}

func runPerft(fen string, depth int, verbose bool) {
	b := startBoard(fen)

	start := time.Now()
	var nodes int
	if verbose {
		nodes = perftVerbose(b, depth)
	} else {
		nodes = perft(b, depth)
	}
	elapsed := time.Since(start)

	log.Printf("depth %d: %d nodes (%s, %.0f nodes/sec)",
		depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}

// perft walks the move-generation tree of strictly legal moves to depth,
// counting visited leaf nodes -- grounded on the teacher's own perft, but
// using the collector-based generator and DoMove instead of copy-make's
// MakeMove/prev-snapshot pair (chess.Board is still a cheap value type, so
// the recursion still passes it by value; only the per-node mutation
// mechanism changed).
func perft(b *chess.Board, depth int) int {
	var l chess.ListCollector
	chess.GenerateMoves(b, &l)

	if depth == 1 {
		return len(l.Moves)
	}

	nodes := 0
	for _, m := range l.Moves {
		child := *b
		child.DoMove(m)
		nodes += perft(&child, depth-1)
	}
	return nodes
}

// perftVerbose runs perft once per root move and logs each root move's
// subtree count, for cross-checking against a reference perft divide.
func perftVerbose(b *chess.Board, depth int) int {
	var l chess.ListCollector
	chess.GenerateMoves(b, &l)

	if depth == 1 {
		for _, m := range l.Moves {
			log.Printf("%s 1", moveToUCI(m))
		}
		return len(l.Moves)
	}

	nodes := 0
	for _, m := range l.Moves {
		child := *b
		child.DoMove(m)
		cnt := perft(&child, depth-1)
		log.Printf("%s %d", moveToUCI(m), cnt)
		nodes += cnt
	}
	return nodes
}

// moveToUCI renders m in long algebraic notation (e2e4, e7e8q). Castling
// is special-cased because chess.Move packs the rook's square as the
// destination (the Chess960 wire format), whereas UCI always names the
// king's classical destination square (g1/c1/g8/c8).
func moveToUCI(m Move) string {
	src := m.Src().String()

	if m.IsCastling() {
		rank := src[1]
		if m.Kind() == chess.MoveCastleShort {
			return fmt.Sprintf("%sg%c", src, rank)
		}
		return fmt.Sprintf("%sc%c", src, rank)
	}

	out := src + m.Dst().String()
	if m.IsPromotion() {
		out += strings.ToLower(string(rune(m.PromotionPiece().Letter())))
	}
	return out
}

type Move = chess.Move

// replayPGN reads every game in path and replays its moves through the
// reader, logging each game's result and move count and any error the
// reader surfaces. Useful for smoke-testing a scanner/parser
// change against a corpus of real PGN files without a test harness.
func replayPGN(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %s", path, err)
	}

	h := &replayHandler{}
	r := chess.NewReader(h, chess.ActionPgnTag|chess.ActionMove|chess.ActionNAG|
		chess.ActionVariation|chess.ActionComment)
	if err := r.ReadAll(data); err != nil {
		log.Fatalf("PGN error: %s", err)
	}
	log.Printf("replayed %d game(s), %d move(s) total", h.games, h.moves)
}

type replayHandler struct {
	games, moves int
	sanLine      []string
}

func (h *replayHandler) GameStart() {
	h.games++
	h.sanLine = h.sanLine[:0]
}
func (h *replayHandler) PgnTag(key, value string) {}
func (h *replayHandler) MoveTextSection()         {}
func (h *replayHandler) Comment(text string)      {}
func (h *replayHandler) AfterMove(san string, m Move) {
	h.moves++
	h.sanLine = append(h.sanLine, san)
}
func (h *replayHandler) NAG(n int)          {}
func (h *replayHandler) VariationStart()    {}
func (h *replayHandler) VariationEnd()      {}
func (h *replayHandler) GameTerminated(result chess.GameResult) {
	log.Printf("game %d: %s (%d moves)", h.games, result, len(h.sanLine))
}
func (h *replayHandler) OnError(err *chess.Error) chess.RecoveryPolicy {
	log.Printf("game %d: %s", h.games, err)
	return chess.ContinueFromNextGame
}
