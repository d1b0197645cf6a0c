package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardOf builds a board from row-major gem types. -1 leaves the slot empty.
func boardOf(rows [][]int) *Board {
	h := len(rows)
	w := len(rows[0])
	b := NewBoard(w, h)
	for y, row := range rows {
		for x, t := range row {
			if t >= 0 {
				b.Set(C(x, y), Gem(t))
			}
		}
	}
	return b
}

// requireMatchFree asserts that a fixture contains no pre-existing match,
// so a broken fixture fails loudly instead of skewing the scenario.
func requireMatchFree(t *testing.T, b *Board) {
	t.Helper()
	require.Empty(t, FindMatches(b), "fixture must start without matches")
}

// coordSet converts removal frame cells to a set for membership checks.
func coordSet(cells []RemovedCell) map[Coord]bool {
	set := make(map[Coord]bool, len(cells))
	for _, c := range cells {
		set[c.Pos] = true
	}
	return set
}

// firstRemoval returns the first removal frame in a sequence.
func firstRemoval(t *testing.T, frames []Frame) RemovalFrame {
	t.Helper()
	for _, f := range frames {
		if rf, ok := f.(RemovalFrame); ok {
			return rf
		}
	}
	t.Fatal("no removal frame in sequence")
	return RemovalFrame{}
}

// removalFrames collects all removal frames in order.
func removalFrames(frames []Frame) []RemovalFrame {
	var out []RemovalFrame
	for _, f := range frames {
		if rf, ok := f.(RemovalFrame); ok {
			out = append(out, rf)
		}
	}
	return out
}
