package engine

// minRun is the smallest run length that counts as a match.
const minRun = 3

// Axis describes which run directions contributed to a match group.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
	AxisBoth
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	case AxisBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// MatchGroup is a maximal connected set of same-type cells in which every
// cell belongs to at least one run of length >= minRun. Two overlapping or
// touching runs of the same type always unify into a single group, so Size
// reports the true connected cell count rather than a sum of run lengths.
type MatchGroup struct {
	Type    int
	Cells   []Coord
	Axis    Axis
	Complex bool // true if any cell sits at the crossing of two perpendicular runs
}

// Size returns the number of cells in the group.
func (g MatchGroup) Size() int {
	return len(g.Cells)
}

// runMarks holds the per-cell result of the row and column scans.
type runMarks struct {
	w, h int
	hRun []bool // cell belongs to a horizontal run >= minRun
	vRun []bool // cell belongs to a vertical run >= minRun
}

func newRunMarks(w, h int) *runMarks {
	return &runMarks{
		w:    w,
		h:    h,
		hRun: make([]bool, w*h),
		vRun: make([]bool, w*h),
	}
}

func (m *runMarks) idx(c Coord) int { return c.Y*m.w + c.X }

func (m *runMarks) matched(c Coord) bool {
	i := m.idx(c)
	return m.hRun[i] || m.vRun[i]
}

// scanRuns finds all horizontal and vertical runs of length >= minRun and
// marks the cells they cover. Empty slots break runs.
func scanRuns(b *Board) *runMarks {
	marks := newRunMarks(b.W, b.H)

	// Horizontal pass
	for y := 0; y < b.H; y++ {
		x := 0
		for x < b.W {
			start := x
			cell := b.At(C(x, y))
			if !cell.Filled {
				x++
				continue
			}
			for x < b.W {
				next := b.At(C(x, y))
				if !next.Filled || next.Type != cell.Type {
					break
				}
				x++
			}
			if x-start >= minRun {
				for i := start; i < x; i++ {
					marks.hRun[marks.idx(C(i, y))] = true
				}
			}
		}
	}

	// Vertical pass
	for x := 0; x < b.W; x++ {
		y := 0
		for y < b.H {
			start := y
			cell := b.At(C(x, y))
			if !cell.Filled {
				y++
				continue
			}
			for y < b.H {
				next := b.At(C(x, y))
				if !next.Filled || next.Type != cell.Type {
					break
				}
				y++
			}
			if y-start >= minRun {
				for i := start; i < y; i++ {
					marks.vRun[marks.idx(C(x, i))] = true
				}
			}
		}
	}

	return marks
}

// neighbors4 is the 4-directional adjacency used for group flood-fill.
var neighbors4 = [4]Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// FindMatches scans the board for qualifying runs and groups the matched
// cells into connected MatchGroups. Returns an empty slice when the board
// has no matches. The board is not modified.
func FindMatches(b *Board) []MatchGroup {
	marks := scanRuns(b)

	visited := make([]bool, b.W*b.H)
	var groups []MatchGroup

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			seed := C(x, y)
			if visited[marks.idx(seed)] || !marks.matched(seed) {
				continue
			}

			// Breadth-first flood-fill over matched cells of the same type.
			gemType := b.At(seed).Type
			group := MatchGroup{Type: gemType}
			hasH, hasV := false, false

			queue := []Coord{seed}
			visited[marks.idx(seed)] = true
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				group.Cells = append(group.Cells, cur)

				i := marks.idx(cur)
				if marks.hRun[i] {
					hasH = true
				}
				if marks.vRun[i] {
					hasV = true
				}
				if marks.hRun[i] && marks.vRun[i] {
					group.Complex = true
				}

				for _, d := range neighbors4 {
					next := cur.Add(d.X, d.Y)
					if !b.InBounds(next) || visited[marks.idx(next)] {
						continue
					}
					if !marks.matched(next) || b.At(next).Type != gemType {
						continue
					}
					visited[marks.idx(next)] = true
					queue = append(queue, next)
				}
			}

			switch {
			case hasH && hasV:
				group.Axis = AxisBoth
			case hasV:
				group.Axis = AxisVertical
			default:
				group.Axis = AxisHorizontal
			}

			groups = append(groups, group)
		}
	}

	return groups
}

// HasMatchAt reports whether the cell at c belongs to a run of length
// >= minRun in either direction. Used by move search to probe a swap
// without running a full board scan.
func HasMatchAt(b *Board, c Coord) bool {
	cell := b.At(c)
	if !cell.Filled {
		return false
	}

	// Horizontal run through c
	run := 1
	for x := c.X - 1; x >= 0; x-- {
		n := b.At(C(x, c.Y))
		if !n.Filled || n.Type != cell.Type {
			break
		}
		run++
	}
	for x := c.X + 1; x < b.W; x++ {
		n := b.At(C(x, c.Y))
		if !n.Filled || n.Type != cell.Type {
			break
		}
		run++
	}
	if run >= minRun {
		return true
	}

	// Vertical run through c
	run = 1
	for y := c.Y - 1; y >= 0; y-- {
		n := b.At(C(c.X, y))
		if !n.Filled || n.Type != cell.Type {
			break
		}
		run++
	}
	for y := c.Y + 1; y < b.H; y++ {
		n := b.At(C(c.X, y))
		if !n.Filled || n.Type != cell.Type {
			break
		}
		run++
	}
	return run >= minRun
}
