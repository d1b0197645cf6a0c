package engine

const (
	// maxShuffleAttempts bounds deadlock reshuffling before the board is
	// regenerated from scratch.
	maxShuffleAttempts = 8
	// maxShuffleFrames caps how many shuffles are replayed visually so a
	// stubborn board cannot flood the frame log.
	maxShuffleFrames = 3
)

// HasAnyValidMove reports whether at least one adjacent swap would
// produce a match or trigger a special pairing.
func (e *Engine) HasAnyValidMove() bool {
	_, _, ok := e.FindValidMove()
	return ok
}

// FindValidMove returns the first legal adjacent swap in scan order, or
// ok=false when the board is deadlocked. The board is left unchanged.
func (e *Engine) FindValidMove() (a, b Coord, ok bool) {
	if e.board == nil {
		return Coord{}, Coord{}, false
	}
	return findMoveOn(e.board)
}

// probeDirs lists the two swap directions to try per cell; left and up
// swaps are covered by the neighboring cell's probes.
var probeDirs = [2]Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}

func findMoveOn(board *Board) (Coord, Coord, bool) {
	for y := 0; y < board.H; y++ {
		for x := 0; x < board.W; x++ {
			p := C(x, y)
			for _, d := range probeDirs {
				q := p.Add(d.X, d.Y)
				if !board.InBounds(q) {
					continue
				}
				if moveEligible(board, p, q) {
					return p, q, true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}

func hasAnyMoveOn(board *Board) bool {
	_, _, ok := findMoveOn(board)
	return ok
}

// moveEligible reports whether swapping p and q would be a legal move.
// Two specials always pair, a wildcard pairs with anything; otherwise the
// swap is probed against run detection and undone.
func moveEligible(board *Board, p, q Coord) bool {
	cp, cq := board.At(p), board.At(q)
	if !cp.Filled || !cq.Filled {
		return false
	}
	if cp.IsSpecial() && cq.IsSpecial() {
		return true
	}
	if cp.Special == SpecialWildcard || cq.Special == SpecialWildcard {
		return true
	}

	board.Set(p, cq)
	board.Set(q, cp)
	ok := HasMatchAt(board, p) || HasMatchAt(board, q)
	board.Set(p, cp)
	board.Set(q, cq)
	return ok
}

// resolveDeadlock reshuffles a settled board that has no legal move.
// Shuffling may itself create matches; those cascade normally and their
// points count. After too many fruitless shuffles the layout is discarded
// and regenerated, with existing special gems re-inserted at random
// positions. Runs as an explicit bounded loop.
func (e *Engine) resolveDeadlock(frames *[]Frame) int {
	total := 0

	for attempt := 1; !e.HasAnyValidMove(); attempt++ {
		if attempt > maxShuffleAttempts {
			e.regenerateBoard()
			*frames = append(*frames, ShuffleFrame{Board: e.board.Clone(), Attempt: attempt})
			total += e.resolveCascade(nil, 1, frames)
			break
		}

		e.shuffleBoard()
		if attempt <= maxShuffleFrames {
			*frames = append(*frames, ShuffleFrame{Board: e.board.Clone(), Attempt: attempt})
		}
		total += e.resolveCascade(nil, 1, frames)
	}

	return total
}

// shuffleBoard permutes the occupied cells in place with a Fisher-Yates
// pass. Gems keep their specials; only positions change.
func (e *Engine) shuffleBoard() {
	coords := e.board.FilledCoords()
	cells := make([]Cell, len(coords))
	for i, c := range coords {
		cells[i] = e.board.At(c)
	}

	e.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	for i, c := range coords {
		e.board.Set(c, cells[i])
	}
}

// regenerateBoard discards the layout entirely: a fresh match-free board
// is generated and the previously earned special gems are re-inserted at
// random positions.
func (e *Engine) regenerateBoard() {
	var specials []Cell
	for _, c := range e.board.FilledCoords() {
		if cell := e.board.At(c); cell.IsSpecial() {
			specials = append(specials, cell)
		}
	}

	var fresh *Board
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		fresh = e.generateMatchFree()
		if hasAnyMoveOn(fresh) {
			break
		}
	}

	for _, cell := range specials {
		pos := C(e.rng.Intn(fresh.W), e.rng.Intn(fresh.H))
		for fresh.At(pos).IsSpecial() {
			pos = C(e.rng.Intn(fresh.W), e.rng.Intn(fresh.H))
		}
		fresh.Set(pos, cell)
	}

	e.board = fresh
}
