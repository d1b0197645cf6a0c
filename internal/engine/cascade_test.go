package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestEngine creates an engine and loads a fixture board into it.
func newTestEngine(t *testing.T, rows [][]int) *Engine {
	t.Helper()
	b := boardOf(rows)
	e := New(Config{Rows: b.H, Cols: b.W, GemTypes: 6, Seed: 7})
	e.LoadBoard(b)
	requireMatchFree(t, b)
	return e
}

func TestSwapRejectsMalformedInput(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{0, 1, 2, 3, 4},
		{1, 2, 3, 4, 0},
		{2, 3, 4, 0, 1},
	})

	tests := []struct {
		name string
		a, b Coord
	}{
		{name: "out of bounds", a: C(-1, 0), b: C(0, 0)},
		{name: "both out of bounds", a: C(9, 9), b: C(9, 8)},
		{name: "not adjacent", a: C(0, 0), b: C(2, 0)},
		{name: "diagonal", a: C(0, 0), b: C(1, 1)},
		{name: "same cell", a: C(1, 1), b: C(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Swap(tt.a, tt.b)
			require.False(t, res.Valid)
			require.Empty(t, res.Frames, "malformed input is an inert no-op")
			require.Zero(t, res.Points)
		})
	}
}

func TestSwapEmptyCellIsInert(t *testing.T) {
	b := boardOf([][]int{
		{0, 1, 2},
		{1, -1, 3},
		{2, 3, 4},
	})
	e := New(Config{Rows: 3, Cols: 3, GemTypes: 6, Seed: 7})
	e.LoadBoard(b)

	res := e.Swap(C(1, 1), C(1, 0))
	require.False(t, res.Valid)
	require.Empty(t, res.Frames)
}

func TestSwapWithoutMatchIsRevertedAndInvalid(t *testing.T) {
	// The board keeps a legal move at (1,0)<->(1,1) so the reshuffle
	// path stays out of the picture.
	e := newTestEngine(t, [][]int{
		{0, 1, 0, 2, 3},
		{1, 0, 4, 3, 2},
		{2, 3, 1, 4, 0},
		{3, 2, 5, 0, 1},
		{4, 5, 2, 1, 5},
	})
	before := e.Board()

	res := e.Swap(C(3, 3), C(4, 3))
	require.False(t, res.Valid)
	require.Zero(t, res.Points)
	require.True(t, before.Equal(e.Board()), "board must be restored")

	require.Len(t, res.Frames, 2)
	require.Equal(t, FrameSwap, res.Frames[0].Kind())
	require.Equal(t, FrameInvalidSwap, res.Frames[1].Kind())
}

func TestSwapSimpleMatchScoresBase(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{0, 1, 2, 3, 4},
		{1, 5, 3, 4, 0},
		{5, 2, 5, 0, 1},
		{2, 3, 4, 5, 0},
		{3, 4, 0, 1, 2},
	})

	res := e.Swap(C(1, 1), C(1, 2))
	require.True(t, res.Valid)

	rf := firstRemoval(t, res.Frames)
	require.Equal(t, 1, rf.Score.Combo)
	require.Equal(t, 30, rf.Score.Breakdown.Base)
	require.Zero(t, rf.Score.Breakdown.MatchBonus)
	require.Equal(t, 1.0, rf.Score.Breakdown.ComboMultiplier)
	require.Equal(t, 30, rf.Score.Points)
	require.False(t, rf.Score.IsBonus)

	set := coordSet(rf.Cells)
	require.True(t, set[C(0, 2)] && set[C(1, 2)] && set[C(2, 2)])
	require.Len(t, rf.Cells, 3)
}

func TestSwapLeavesBoardSettled(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{0, 1, 2, 3, 4},
		{1, 5, 3, 4, 0},
		{5, 2, 5, 0, 1},
		{2, 3, 4, 5, 0},
		{3, 4, 0, 1, 2},
	})

	res := e.Swap(C(1, 1), C(1, 2))
	require.True(t, res.Valid)

	b := e.Board()
	require.Empty(t, FindMatches(b), "board must settle with no matches")
	require.Equal(t, b.W*b.H, b.FilledCount(), "every slot refilled")
}

func TestSwapFourRunCreatesAreaBombAtSwappedCell(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{1, 3, 2, 4, 5},
		{2, 2, 0, 2, 3},
		{4, 5, 1, 0, 2},
		{5, 0, 3, 1, 4},
		{0, 1, 4, 3, 5},
	})

	res := e.Swap(C(2, 0), C(2, 1))
	require.True(t, res.Valid)

	rf := firstRemoval(t, res.Frames)
	require.Equal(t, 40, rf.Score.Breakdown.Base)
	require.Equal(t, 20+bonusSpecialCreate, rf.Score.Breakdown.MatchBonus)
	require.Equal(t, 110, rf.Score.Points)

	// The board frame right after the removal shows the placed special.
	var bf BoardFrame
	for _, f := range res.Frames {
		if cand, ok := f.(BoardFrame); ok {
			bf = cand
			break
		}
	}
	require.NotNil(t, bf.Board)
	cell := bf.Board.At(C(2, 1))
	require.Equal(t, SpecialAreaBomb, cell.Special)
	require.Equal(t, 2, cell.Type)
}

func TestSwapStraightFiveCreatesLineClear(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{1, 4, 3, 0, 5},
		{3, 3, 2, 3, 3},
		{4, 5, 0, 1, 2},
		{5, 0, 1, 2, 4},
		{0, 2, 4, 3, 1},
	})

	res := e.Swap(C(2, 0), C(2, 1))
	require.True(t, res.Valid)

	rf := firstRemoval(t, res.Frames)
	require.Equal(t, 50, rf.Score.Breakdown.Base)
	require.Equal(t, 80+bonusSpecialCreate, rf.Score.Breakdown.MatchBonus)

	for _, f := range res.Frames {
		if bf, ok := f.(BoardFrame); ok {
			cell := bf.Board.At(C(2, 1))
			require.Equal(t, SpecialLineClear, cell.Special)
			require.Equal(t, DirHorizontal, cell.Dir)
			require.Equal(t, 3, cell.Type)
			return
		}
	}
	t.Fatal("no board frame emitted")
}

func TestSwapSixGroupCreatesWildcard(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{1, 2, 5, 3, 0},
		{5, 5, 0, 5, 2},
		{2, 0, 5, 1, 4},
		{4, 1, 5, 2, 3},
		{0, 3, 1, 4, 5},
	})

	res := e.Swap(C(2, 0), C(2, 1))
	require.True(t, res.Valid)

	rf := firstRemoval(t, res.Frames)
	require.Equal(t, 60, rf.Score.Breakdown.Base)
	require.Equal(t, 180+bonusSpecialCreate, rf.Score.Breakdown.MatchBonus)
	require.Equal(t, 290, rf.Score.Points)

	for _, f := range res.Frames {
		if bf, ok := f.(BoardFrame); ok {
			cell := bf.Board.At(C(2, 1))
			require.Equal(t, SpecialWildcard, cell.Special)
			require.Equal(t, 5, cell.Type)
			return
		}
	}
	t.Fatal("no board frame emitted")
}

// A second cascade iteration scores at a strictly higher multiplier.
func TestCascadeComboMultiplierGrows(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{2, 0, 1, 5, 4},
		{1, 4, 5, 0, 3},
		{1, 5, 0, 3, 2},
		{3, 2, 2, 4, 0},
		{1, 3, 4, 2, 5},
	})

	// Swapping (0,3) and (0,4) lines up three 1s in the first column;
	// the gem falling into (0,3) then completes a row of 2s.
	res := e.Swap(C(0, 3), C(0, 4))
	require.True(t, res.Valid)

	removals := removalFrames(res.Frames)
	require.GreaterOrEqual(t, len(removals), 2, "cascade must run a second step")

	require.Equal(t, 1, removals[0].Score.Combo)
	require.Equal(t, 1.0, removals[0].Score.Breakdown.ComboMultiplier)
	require.Equal(t, 2, removals[1].Score.Combo)
	require.Equal(t, 1.5, removals[1].Score.Breakdown.ComboMultiplier)
	require.True(t, coordSet(removals[1].Cells)[C(1, 3)])

	// A preview frame announces the pending second step before it clears.
	sawPreview := false
	for _, f := range res.Frames {
		if f.Kind() == FramePreview {
			sawPreview = true
		}
	}
	require.True(t, sawPreview)
}

func TestSwapEmitsDropAndFillFrames(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{0, 1, 2, 3, 4},
		{1, 5, 3, 4, 0},
		{5, 2, 5, 0, 1},
		{2, 3, 4, 5, 0},
		{3, 4, 0, 1, 2},
	})

	res := e.Swap(C(1, 1), C(1, 2))
	require.True(t, res.Valid)

	var sawDrop, sawFill bool
	for _, f := range res.Frames {
		switch f.Kind() {
		case FrameDrop:
			sawDrop = true
		case FrameFill:
			sawFill = true
		}
	}
	require.True(t, sawDrop, "row clear leaves gaps for gravity")
	require.True(t, sawFill, "cleared slots must be refilled")
}
