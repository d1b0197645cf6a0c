// Package engine implements the board resolution core for the gemcrush
// match-3 puzzle: match detection, special gem creation, chain reactions,
// cascades, scoring and deadlock recovery. It is UI-agnostic and fully
// deterministic for a fixed seed.
package engine

import "fmt"

// Coord represents a 2D position on the board.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent returns true if the other coordinate is directly above, below,
// left or right of this one.
func (c Coord) Adjacent(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Special identifies the special ability carried by a gem, if any.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialAreaBomb
	SpecialLineClear
	SpecialWildcard
)

// String returns the string representation of a special kind.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "None"
	case SpecialAreaBomb:
		return "AreaBomb"
	case SpecialLineClear:
		return "LineClear"
	case SpecialWildcard:
		return "Wildcard"
	default:
		return "Unknown"
	}
}

// ClearDir is the clearing direction of a line-clear gem.
type ClearDir uint8

const (
	DirNone ClearDir = iota
	DirHorizontal
	DirVertical
	DirCross
)

// String returns the string representation of a clear direction.
func (d ClearDir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirHorizontal:
		return "Horizontal"
	case DirVertical:
		return "Vertical"
	case DirCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// Cell represents a single board slot. A slot may be empty transiently
// between a removal and the refill that follows it.
type Cell struct {
	Filled  bool
	Type    int      // gem color index, valid only when Filled
	Special Special  // special ability, SpecialNone for plain gems
	Dir     ClearDir // clearing direction, meaningful only for SpecialLineClear
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Filled: false}
}

// Gem returns a plain filled cell of the given type.
func Gem(t int) Cell {
	return Cell{Filled: true, Type: t}
}

// SpecialGem returns a filled cell of the given type carrying a special.
func SpecialGem(t int, s Special, d ClearDir) Cell {
	return Cell{Filled: true, Type: t, Special: s, Dir: d}
}

// IsSpecial returns true if the cell is filled and carries a special.
func (c Cell) IsSpecial() bool {
	return c.Filled && c.Special != SpecialNone
}
