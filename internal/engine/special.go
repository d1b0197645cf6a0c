package engine

// Bonus points folded into the match bonus of the removal step that
// creates or triggers a special gem.
const (
	bonusSpecialCreate = 50  // creating any special gem
	bonusAreaBomb      = 50  // an area bomb firing inside a chain
	bonusLineClear     = 75  // a line clear firing inside a chain
	bonusWildcard      = 100 // a wildcard firing inside a chain
)

// specialOutcome maps a match group to the special gem it produces, if any.
// Size 4 yields an area bomb; a straight 5 yields a line clear along the
// run's axis; a branching 5 yields an area bomb; 6 or more yields a
// wildcard regardless of shape.
func specialOutcome(g MatchGroup) (Special, ClearDir, bool) {
	switch {
	case g.Size() >= 6:
		return SpecialWildcard, DirNone, true
	case g.Size() == 5 && !g.Complex:
		if g.Axis == AxisVertical {
			return SpecialLineClear, DirVertical, true
		}
		return SpecialLineClear, DirHorizontal, true
	case g.Size() == 5:
		return SpecialAreaBomb, DirNone, true
	case g.Size() == 4:
		return SpecialAreaBomb, DirNone, true
	default:
		return SpecialNone, DirNone, false
	}
}

// placementTarget picks the slot a new special gem occupies once the group
// is cleared. On the first step of a player move the swapped cell inside
// the group wins, so the reward lands where the player acted. Emergent
// matches on deeper steps use the cell nearest the group centroid instead.
func placementTarget(g MatchGroup, swapped []Coord, combo int) Coord {
	if combo == 1 {
		for _, s := range swapped {
			for _, c := range g.Cells {
				if c == s {
					return c
				}
			}
		}
	}

	// Centroid in grid coordinates, scaled by the cell count to stay in
	// integer arithmetic: compare squared distances of size*cell to the
	// coordinate sums.
	sumX, sumY := 0, 0
	for _, c := range g.Cells {
		sumX += c.X
		sumY += c.Y
	}

	n := g.Size()
	best := g.Cells[0]
	bestDist := -1
	for _, c := range g.Cells {
		dx := c.X*n - sumX
		dy := c.Y*n - sumY
		dist := dx*dx + dy*dy
		if bestDist < 0 || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}

// specialPlan is a queued special gem placement for the current removal step.
type specialPlan struct {
	Pos  Coord
	Cell Cell
}

// specialPriority orders competing placements: wildcards beat line clears,
// line clears beat area bombs.
func specialPriority(s Special) int {
	switch s {
	case SpecialWildcard:
		return 3
	case SpecialLineClear:
		return 2
	case SpecialAreaBomb:
		return 1
	default:
		return 0
	}
}

// planSpecials computes the special gems created by the given groups and
// resolves placement conflicts. When two plans target the same freed slot
// the higher-priority special keeps it and the other placement is skipped.
func planSpecials(groups []MatchGroup, swapped []Coord, combo int) []specialPlan {
	var plans []specialPlan
	for _, g := range groups {
		special, dir, ok := specialOutcome(g)
		if !ok {
			continue
		}
		plans = append(plans, specialPlan{
			Pos:  placementTarget(g, swapped, combo),
			Cell: SpecialGem(g.Type, special, dir),
		})
	}

	if len(plans) < 2 {
		return plans
	}

	// Stable selection sort by priority, preserving group order among equals.
	for i := 0; i < len(plans); i++ {
		best := i
		for j := i + 1; j < len(plans); j++ {
			if specialPriority(plans[j].Cell.Special) > specialPriority(plans[best].Cell.Special) {
				best = j
			}
		}
		if best != i {
			p := plans[best]
			copy(plans[i+1:best+1], plans[i:best])
			plans[i] = p
		}
	}

	taken := make(map[Coord]bool)
	kept := plans[:0]
	for _, p := range plans {
		if taken[p.Pos] {
			continue
		}
		taken[p.Pos] = true
		kept = append(kept, p)
	}
	return kept
}
