package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardAtOutOfBoundsIsEmpty(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(C(1, 1), Gem(2))

	require.False(t, b.At(C(-1, 0)).Filled)
	require.False(t, b.At(C(3, 0)).Filled)
	require.False(t, b.At(C(0, 3)).Filled)
	require.True(t, b.At(C(1, 1)).Filled)
}

func TestBoardSetOutOfBoundsIsIgnored(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(C(5, 5), Gem(1))
	require.Zero(t, b.FilledCount())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(C(0, 0), Gem(4))

	c := b.Clone()
	c.Set(C(0, 0), Empty())
	require.True(t, b.At(C(0, 0)).Filled)
	require.False(t, c.At(C(0, 0)).Filled)
}

func TestBoardEqual(t *testing.T) {
	a := stripedBoard(4, 4, 6)
	b := stripedBoard(4, 4, 6)
	require.True(t, a.Equal(b))

	b.Set(C(2, 2), Gem(0))
	require.False(t, a.Equal(b))

	require.False(t, a.Equal(NewBoard(4, 5)))
	require.False(t, a.Equal(nil))
}

func TestBoardFilledCoordsSkipsHoles(t *testing.T) {
	b := NewBoard(3, 2)
	b.Set(C(0, 0), Gem(1))
	b.Set(C(2, 1), Gem(2))

	coords := b.FilledCoords()
	require.Equal(t, []Coord{C(0, 0), C(2, 1)}, coords)
}

func TestBoardCoordsOfType(t *testing.T) {
	b := stripedBoard(4, 4, 4)
	coords := b.CoordsOfType(0)
	require.Equal(t, []Coord{C(0, 0), C(2, 1), C(0, 2), C(2, 3)}, coords)
}

func TestCoordHelpers(t *testing.T) {
	require.True(t, C(1, 1).Adjacent(C(2, 1)))
	require.True(t, C(1, 1).Adjacent(C(1, 0)))
	require.False(t, C(1, 1).Adjacent(C(2, 2)))
	require.False(t, C(1, 1).Adjacent(C(1, 1)))
	require.Equal(t, C(3, 5), C(1, 2).Add(2, 3))
}
