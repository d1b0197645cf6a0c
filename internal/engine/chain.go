package engine

import "sort"

// maxChainPasses bounds chain expansion so that a pathological board can
// never loop forever.
const maxChainPasses = 64

// sortCoords orders coordinates by row then column. Removal sets live in
// maps, so every iteration over them goes through this to keep frame
// contents deterministic.
func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
}

// setToCoords returns the sorted contents of a coordinate set.
func setToCoords(set map[Coord]bool) []Coord {
	coords := make([]Coord, 0, len(set))
	for c := range set {
		coords = append(coords, c)
	}
	sortCoords(coords)
	return coords
}

// chainOutcome accumulates what happened while a removal set expanded.
type chainOutcome struct {
	Bonus   int               // flat bonus points from triggered specials
	Effects []Effect          // visual effects, in trigger order
	Anims   map[Coord]AnimTag // per-cell removal animation overrides
}

// expandChain grows the removal set by activating every special gem it
// contains. Activations can pull further specials into the set, so the
// scan repeats until a full pass adds nothing or the pass cap is reached.
// The processed set guarantees each special fires at most once even if
// several triggers re-add its position.
func expandChain(b *Board, removal map[Coord]bool, processed map[Coord]bool) chainOutcome {
	out := chainOutcome{Anims: make(map[Coord]AnimTag)}

	for pass := 0; pass < maxChainPasses; pass++ {
		grew := false
		for _, pos := range setToCoords(removal) {
			cell := b.At(pos)
			if !cell.IsSpecial() || processed[pos] {
				continue
			}
			processed[pos] = true

			switch cell.Special {
			case SpecialAreaBomb:
				out.Bonus += bonusAreaBomb
				out.Effects = append(out.Effects, Effect{Kind: EffectExplosion, Pos: pos, Radius: 1})
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						n := pos.Add(dx, dy)
						if addToRemoval(b, removal, n, AnimExplode, out.Anims) {
							grew = true
						}
					}
				}

			case SpecialLineClear:
				out.Bonus += bonusLineClear
				out.Effects = append(out.Effects, Effect{Kind: EffectLineSweep, Pos: pos, Dir: cell.Dir})
				if cell.Dir == DirHorizontal || cell.Dir == DirCross {
					for x := 0; x < b.W; x++ {
						if addToRemoval(b, removal, C(x, pos.Y), AnimSweep, out.Anims) {
							grew = true
						}
					}
				}
				if cell.Dir == DirVertical || cell.Dir == DirCross {
					for y := 0; y < b.H; y++ {
						if addToRemoval(b, removal, C(pos.X, y), AnimSweep, out.Anims) {
							grew = true
						}
					}
				}

			case SpecialWildcard:
				out.Bonus += bonusWildcard
				out.Effects = append(out.Effects, Effect{Kind: EffectColorSweep, Pos: pos, Type: cell.Type})
				for _, c := range b.CoordsOfType(cell.Type) {
					if addToRemoval(b, removal, c, AnimSweep, out.Anims) {
						grew = true
					}
				}
			}
		}

		if !grew {
			break
		}
	}

	return out
}

// addToRemoval inserts a filled, in-bounds position into the removal set.
// Returns true if the set grew.
func addToRemoval(b *Board, removal map[Coord]bool, c Coord, anim AnimTag, anims map[Coord]AnimTag) bool {
	if !b.InBounds(c) || !b.At(c).Filled {
		return false
	}
	if removal[c] {
		return false
	}
	removal[c] = true
	anims[c] = anim
	return true
}
