package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateInitialBoardIsMatchFreeAndMovable(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 1234, 99999} {
		e := New(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: seed})
		b := e.GenerateInitialBoard()

		require.Equal(t, 81, b.FilledCount())
		require.Empty(t, FindMatches(b), "seed %d produced a pre-matched board", seed)
		require.True(t, e.HasAnyValidMove(), "seed %d produced a deadlocked board", seed)
	}
}

func TestGenerateInitialBoardReturnsACopy(t *testing.T) {
	e := New(Config{Rows: 5, Cols: 5, GemTypes: 6, Seed: 1})
	b := e.GenerateInitialBoard()
	b.Set(C(0, 0), Empty())
	require.Equal(t, 25, e.Board().FilledCount(), "mutating the returned board must not reach the engine")
}

func TestSameSeedSameBoard(t *testing.T) {
	a := New(Config{Rows: 8, Cols: 8, GemTypes: 5, Seed: 777})
	b := New(Config{Rows: 8, Cols: 8, GemTypes: 5, Seed: 777})
	require.True(t, a.GenerateInitialBoard().Equal(b.GenerateInitialBoard()))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: 1})
	b := New(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: 2})
	require.False(t, a.GenerateInitialBoard().Equal(b.GenerateInitialBoard()))
}

// Two engines with the same seed fed the same moves emit identical frame
// streams and end in identical states. This is the replay guarantee.
func TestSameSeedSameMoveSequenceIsIdentical(t *testing.T) {
	mk := func() *Engine {
		e := New(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: 4242})
		e.GenerateInitialBoard()
		return e
	}
	e1, e2 := mk(), mk()

	for move := 0; move < 20; move++ {
		a, b, ok := e1.FindValidMove()
		if !ok {
			break
		}
		a2, b2, ok2 := e2.FindValidMove()
		require.True(t, ok2)
		require.Equal(t, a, a2)
		require.Equal(t, b, b2)

		r1 := e1.Swap(a, b)
		r2 := e2.Swap(a2, b2)
		require.Equal(t, r1.Points, r2.Points, "move %d scores diverged", move)
		require.Equal(t, r1.Frames, r2.Frames, "move %d frames diverged", move)
		require.True(t, e1.Board().Equal(e2.Board()), "move %d boards diverged", move)
	}
}

// Whatever sequence of moves is played, the board always settles full,
// match-free and with a legal move available.
func TestBoardInvariantsHoldAcrossManyMoves(t *testing.T) {
	e := New(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: 31337})
	e.GenerateInitialBoard()

	for move := 0; move < 50; move++ {
		a, b, ok := e.FindValidMove()
		require.True(t, ok, "move %d: board deadlocked without recovery", move)

		e.Swap(a, b)

		board := e.Board()
		require.Equal(t, board.W*board.H, board.FilledCount(), "move %d left holes", move)
		require.Empty(t, FindMatches(board), "move %d left unresolved matches", move)
	}
}

func TestConfigureResetsEngine(t *testing.T) {
	e := New(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: 5})
	first := e.GenerateInitialBoard()

	e.Configure(Config{Rows: 9, Cols: 9, GemTypes: 6, Seed: 5})
	require.Nil(t, e.Board(), "configure discards the live board")
	require.True(t, first.Equal(e.GenerateInitialBoard()), "same seed must replay the same board")
}

func TestConfigClampsDegenerateValues(t *testing.T) {
	e := New(Config{Rows: 1, Cols: 0, GemTypes: 2, Seed: 1})
	cfg := e.Config()
	require.Equal(t, DefaultConfig().Rows, cfg.Rows)
	require.Equal(t, DefaultConfig().Cols, cfg.Cols)
	require.Equal(t, DefaultConfig().GemTypes, cfg.GemTypes)

	b := e.GenerateInitialBoard()
	require.Equal(t, 81, b.FilledCount())
}

func TestLoadBoardCopiesInput(t *testing.T) {
	src := stripedBoard(5, 5, 6)
	e := New(Config{Rows: 5, Cols: 5, GemTypes: 6, Seed: 1})
	e.LoadBoard(src)

	src.Set(C(0, 0), Empty())
	require.Equal(t, 25, e.Board().FilledCount(), "engine must hold its own copy")
}

func TestSnapshotCapturesState(t *testing.T) {
	e := New(Config{Rows: 5, Cols: 5, GemTypes: 6, Seed: 21})
	e.GenerateInitialBoard()

	snap := e.Snapshot()
	require.Equal(t, 5, snap.Rows)
	require.Equal(t, 5, snap.Cols)
	require.Equal(t, 6, snap.GemTypes)
	require.Equal(t, uint64(21), snap.Seed)
	require.Len(t, snap.Cells, 25)
	require.Equal(t, e.Board().Cells, snap.Cells)
}
