package engine

// Flat base score and per-cell rate for each special pairing. The rate is
// applied to the final removal set size, so a combo that catches more of
// the board pays more.
const (
	comboBaseWildWild  = 200
	comboRateWildWild  = 20
	comboBaseWildBomb  = 150
	comboRateWildBomb  = 15
	comboBaseWildLine  = 150
	comboRateWildLine  = 15
	comboBaseWildPlain = 100
	comboRateWildPlain = 10
	comboBaseBombBomb  = 100
	comboRateBombBomb  = 15
	comboBaseLineLine  = 100
	comboRateLineLine  = 15
	comboBaseBombLine  = 100
	comboRateBombLine  = 15
)

// resolveSpecialCombo handles a swap of two specials, or of a wildcard
// with anything. The swap itself triggers the clear: the pairing decides
// the initial removal set, which then expands through the chain activator
// like any other removal before the board settles through the regular
// drop/refill loop. Position b is the swap site for centered effects.
//
// The board has already been swapped when this is called.
func (e *Engine) resolveSpecialCombo(a, b Coord, frames *[]Frame) int {
	ca, cb := e.board.At(a), e.board.At(b)

	removal := make(map[Coord]bool)
	anims := make(map[Coord]AnimTag)
	var effects []Effect

	add := func(c Coord, tag AnimTag) {
		addToRemoval(e.board, removal, c, tag, anims)
	}
	addExplosion := func(center Coord, radius int) {
		effects = append(effects, Effect{Kind: EffectExplosion, Pos: center, Radius: radius})
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				add(center.Add(dx, dy), AnimExplode)
			}
		}
	}
	addRow := func(y int) {
		for x := 0; x < e.board.W; x++ {
			add(C(x, y), AnimSweep)
		}
	}
	addCol := func(x int) {
		for y := 0; y < e.board.H; y++ {
			add(C(x, y), AnimSweep)
		}
	}
	addColorClear := func(origin Coord, gemType int) {
		effects = append(effects, Effect{Kind: EffectColorSweep, Pos: origin, Type: gemType})
		for _, c := range e.board.CoordsOfType(gemType) {
			add(c, AnimSweep)
		}
	}

	// Both swapped gems are always consumed and never re-fire in the chain.
	add(a, AnimSweep)
	add(b, AnimSweep)
	processed := map[Coord]bool{a: true, b: true}

	isWild := func(c Cell) bool { return c.Special == SpecialWildcard }

	var base, rate int
	switch {
	case isWild(ca) && isWild(cb):
		base, rate = comboBaseWildWild, comboRateWildWild
		addColorClear(a, ca.Type)
		addColorClear(b, cb.Type)

	case isWild(ca) || isWild(cb):
		wildPos, otherPos := a, b
		other := cb
		if isWild(cb) {
			wildPos, otherPos = b, a
			other = ca
		}
		wildCell := e.board.At(wildPos)

		switch other.Special {
		case SpecialAreaBomb:
			// Every gem of the partner's color detonates in place.
			base, rate = comboBaseWildBomb, comboRateWildBomb
			for _, c := range e.board.CoordsOfType(other.Type) {
				addExplosion(c, 1)
			}

		case SpecialLineClear:
			// Every gem of the partner's color fires a line clear.
			base, rate = comboBaseWildLine, comboRateWildLine
			for _, c := range e.board.CoordsOfType(other.Type) {
				effects = append(effects, Effect{Kind: EffectLineSweep, Pos: c, Dir: other.Dir})
				if other.Dir == DirHorizontal || other.Dir == DirCross {
					addRow(c.Y)
				}
				if other.Dir == DirVertical || other.Dir == DirCross {
					addCol(c.X)
				}
			}

		default:
			// Wildcard with a plain gem clears both stored colors.
			base, rate = comboBaseWildPlain, comboRateWildPlain
			addColorClear(wildPos, wildCell.Type)
			if other.Type != wildCell.Type {
				addColorClear(otherPos, other.Type)
			}
		}

	case ca.Special == SpecialAreaBomb && cb.Special == SpecialAreaBomb:
		base, rate = comboBaseBombBomb, comboRateBombBomb
		addExplosion(b, 2)

	case ca.Special == SpecialLineClear && cb.Special == SpecialLineClear:
		base, rate = comboBaseLineLine, comboRateLineLine
		effects = append(effects, Effect{Kind: EffectLineSweep, Pos: b, Dir: DirCross})
		addRow(b.Y)
		addCol(b.X)

	default:
		// One area bomb, one line clear: a 3-wide band along the line.
		base, rate = comboBaseBombLine, comboRateBombLine
		lineCell := ca
		if ca.Special != SpecialLineClear {
			lineCell = cb
		}
		if lineCell.Dir == DirHorizontal || lineCell.Dir == DirCross {
			for dy := -1; dy <= 1; dy++ {
				if b.Y+dy < 0 || b.Y+dy >= e.board.H {
					continue
				}
				effects = append(effects, Effect{Kind: EffectLineSweep, Pos: C(b.X, b.Y+dy), Dir: DirHorizontal})
				addRow(b.Y + dy)
			}
		}
		if lineCell.Dir == DirVertical || lineCell.Dir == DirCross {
			for dx := -1; dx <= 1; dx++ {
				if b.X+dx < 0 || b.X+dx >= e.board.W {
					continue
				}
				effects = append(effects, Effect{Kind: EffectLineSweep, Pos: C(b.X+dx, b.Y), Dir: DirVertical})
				addCol(b.X + dx)
			}
		}
	}

	chain := expandChain(e.board, removal, processed)
	for c, tag := range chain.Anims {
		if _, ok := anims[c]; !ok {
			anims[c] = tag
		}
	}
	effects = append(effects, chain.Effects...)

	cleared := rate*len(removal) + chain.Bonus
	points := base + cleared
	*frames = append(*frames, RemovalFrame{
		Cells:   removalCells(removal, anims),
		Effects: effects,
		Score: ScoreEvent{
			Points: points,
			Combo:  1,
			Breakdown: ScoreBreakdown{
				Base:            base,
				MatchBonus:      cleared,
				ComboMultiplier: 1,
			},
			IsBonus: true,
		},
	})

	e.clearAndPlace(removal, nil)
	*frames = append(*frames, BoardFrame{Board: e.board.Clone()})
	e.settleColumns(frames)
	e.previewPending(frames)

	// Whatever the refill produced continues as a deeper cascade step.
	return points + e.resolveCascade(nil, 2, frames)
}
