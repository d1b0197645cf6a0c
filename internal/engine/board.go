package engine

// Board represents the game board as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	W     int    // Width of the board (columns)
	H     int    // Height of the board (rows)
	Cells []Cell // Flat array of cells, length W*H
}

// NewBoard creates a new board with all slots empty.
func NewBoard(w, h int) *Board {
	return &Board{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board boundaries.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// At returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (b *Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.Cells[b.index(c)]
}

// Set stores the cell at the given coordinate.
func (b *Board) Set(c Coord, cell Cell) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = cell
	}
}

// SetEmpty clears the slot at the given coordinate.
func (b *Board) SetEmpty(c Coord) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = Empty()
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		W:     b.W,
		H:     b.H,
		Cells: cells,
	}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, cell := range b.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied slots.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// FilledCoords returns all coordinates holding a gem, ordered by row then column.
func (b *Board) FilledCoords() []Coord {
	coords := make([]Coord, 0, len(b.Cells))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := C(x, y)
			if b.At(c).Filled {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// CoordsOfType returns all coordinates holding a gem of the given type,
// ordered by row then column.
func (b *Board) CoordsOfType(t int) []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := C(x, y)
			cell := b.At(c)
			if cell.Filled && cell.Type == t {
				coords = append(coords, c)
			}
		}
	}
	return coords
}
