package engine

// Per-cell and per-group scoring constants.
const (
	pointsPerCell  = 10  // base points for each cleared cell
	oversizeFactor = 20  // multiplied by (size-3)^2 for groups beyond 3
	comboStep      = 0.5 // multiplier growth per cascade iteration
)

// maxCascadeIterations caps the cascade loop. Refills are uniform random,
// so in practice a cascade dies out after a handful of iterations; the cap
// only guards termination.
const maxCascadeIterations = 1000

// SwapResult is the outcome of a Swap call: the full frame sequence to
// animate, the points earned, and whether the move was accepted.
type SwapResult struct {
	Frames []Frame
	Points int
	Valid  bool
}

// Swap exchanges two adjacent cells and resolves the board to a settled
// state. It is the engine's sole mutating entry point.
//
// Out-of-bounds, empty-cell or non-adjacent positions yield an inert
// result with no frames. A swap that produces no match and involves no
// special pairing is reverted and reported as invalid, which is a normal
// outcome rather than an error.
func (e *Engine) Swap(a, b Coord) SwapResult {
	if e.board == nil {
		return SwapResult{}
	}
	if !e.board.InBounds(a) || !e.board.InBounds(b) || !a.Adjacent(b) {
		return SwapResult{}
	}
	ca, cb := e.board.At(a), e.board.At(b)
	if !ca.Filled || !cb.Filled {
		return SwapResult{}
	}

	e.board.Set(a, cb)
	e.board.Set(b, ca)
	frames := []Frame{SwapFrame{A: a, B: b}}

	var points int
	switch {
	case (ca.IsSpecial() && cb.IsSpecial()) || ca.Special == SpecialWildcard || cb.Special == SpecialWildcard:
		// The swap itself is the trigger; normal detection is bypassed.
		points = e.resolveSpecialCombo(a, b, &frames)

	default:
		if len(FindMatches(e.board)) == 0 {
			e.board.Set(a, ca)
			e.board.Set(b, cb)
			frames = append(frames, InvalidSwapFrame{A: a, B: b})
			// A deadlocked board still recovers here, otherwise a player
			// with no legal move would be stuck probing invalid swaps.
			points := e.resolveDeadlock(&frames)
			return SwapResult{Frames: frames, Points: points, Valid: false}
		}
		points = e.resolveCascade([]Coord{a, b}, 1, &frames)
	}

	points += e.resolveDeadlock(&frames)
	return SwapResult{Frames: frames, Points: points, Valid: true}
}

// resolveCascade runs the detect/remove/drop/refill loop until the board
// settles. The swapped positions steer special placement on the first
// iteration only. Returns the points earned across all iterations.
func (e *Engine) resolveCascade(swapped []Coord, combo int, frames *[]Frame) int {
	total := 0

	for iter := 0; iter < maxCascadeIterations; iter++ {
		groups := FindMatches(e.board)
		if len(groups) == 0 {
			break
		}

		removal := make(map[Coord]bool)
		for _, g := range groups {
			for _, c := range g.Cells {
				removal[c] = true
			}
		}

		plans := planSpecials(groups, swapped, combo)
		chain := expandChain(e.board, removal, make(map[Coord]bool))

		base := len(removal) * pointsPerCell
		matchBonus := 0
		for _, g := range groups {
			if g.Size() > minRun {
				d := g.Size() - minRun
				matchBonus += d * d * oversizeFactor
			}
		}
		matchBonus += len(plans)*bonusSpecialCreate + chain.Bonus

		mult := 1 + comboStep*float64(combo-1)
		points := int(float64(base+matchBonus) * mult)
		total += points

		*frames = append(*frames, RemovalFrame{
			Cells:   removalCells(removal, chain.Anims),
			Effects: chain.Effects,
			Score: ScoreEvent{
				Points: points,
				Combo:  combo,
				Breakdown: ScoreBreakdown{
					Base:            base,
					MatchBonus:      matchBonus,
					ComboMultiplier: mult,
				},
			},
		})

		e.clearAndPlace(removal, plans)
		*frames = append(*frames, BoardFrame{Board: e.board.Clone()})
		e.settleColumns(frames)
		e.previewPending(frames)

		combo++
	}

	return total
}

// removalCells builds the sorted cell list of a removal frame, tagging
// each position with its animation. Cells pulled in by chain activation
// keep the tag the chain assigned; plain matches pop.
func removalCells(removal map[Coord]bool, anims map[Coord]AnimTag) []RemovedCell {
	coords := setToCoords(removal)
	cells := make([]RemovedCell, len(coords))
	for i, c := range coords {
		anim := AnimPop
		if tag, ok := anims[c]; ok {
			anim = tag
		}
		cells[i] = RemovedCell{Pos: c, Anim: anim}
	}
	return cells
}

// clearAndPlace empties every removed slot, then installs the queued
// special gems. A plan whose target slot is somehow occupied again is
// skipped rather than overwriting.
func (e *Engine) clearAndPlace(removal map[Coord]bool, plans []specialPlan) {
	for _, c := range setToCoords(removal) {
		e.board.SetEmpty(c)
	}
	for _, p := range plans {
		if e.board.At(p.Pos).Filled {
			continue
		}
		e.board.Set(p.Pos, p.Cell)
	}
}

// settleColumns applies gravity and refills, emitting drop and fill
// frames when anything actually moved or spawned.
func (e *Engine) settleColumns(frames *[]Frame) {
	if moves := e.dropCells(); len(moves) > 0 {
		*frames = append(*frames, DropFrame{Moves: moves})
	}
	if fills := e.refill(); len(fills) > 0 {
		*frames = append(*frames, FillFrame{Cells: fills})
	}
}

// previewPending emits a preview frame when the settled columns already
// contain the next round of matches.
func (e *Engine) previewPending(frames *[]Frame) {
	next := FindMatches(e.board)
	if len(next) == 0 {
		return
	}
	pending := make(map[Coord]bool)
	for _, g := range next {
		for _, c := range g.Cells {
			pending[c] = true
		}
	}
	*frames = append(*frames, PreviewFrame{Pending: setToCoords(pending)})
}

// dropCells lets every gem fall to the lowest empty slot in its column.
func (e *Engine) dropCells() []Move {
	var moves []Move
	for x := 0; x < e.board.W; x++ {
		write := e.board.H - 1
		for y := e.board.H - 1; y >= 0; y-- {
			c := C(x, y)
			cell := e.board.At(c)
			if !cell.Filled {
				continue
			}
			if write != y {
				to := C(x, write)
				e.board.Set(to, cell)
				e.board.SetEmpty(c)
				moves = append(moves, Move{From: c, To: to})
			}
			write--
		}
	}
	return moves
}

// refill fills every remaining empty slot with a freshly generated plain
// gem, uniform over the configured gem types. Accidental new matches are
// allowed; the cascade loop picks them up.
func (e *Engine) refill() []FilledCell {
	var fills []FilledCell
	for y := 0; y < e.board.H; y++ {
		for x := 0; x < e.board.W; x++ {
			c := C(x, y)
			if e.board.At(c).Filled {
				continue
			}
			cell := Gem(e.rng.Intn(e.cfg.GemTypes))
			e.board.Set(c, cell)
			fills = append(fills, FilledCell{Pos: c, Cell: cell})
		}
	}
	return fills
}
