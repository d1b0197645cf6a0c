package engine

// Snapshot captures the engine's settled state for determinism testing
// and headless replay. Two engines driven by the same seed and the same
// swap sequence produce identical snapshots.
type Snapshot struct {
	Rows     int
	Cols     int
	GemTypes int
	Seed     uint64
	Cells    []Cell // row-major copy of the board, nil if no board yet
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:     e.cfg.Rows,
		Cols:     e.cfg.Cols,
		GemTypes: e.cfg.GemTypes,
		Seed:     e.cfg.Seed,
	}
	if e.board != nil {
		snap.Cells = make([]Cell, len(e.board.Cells))
		copy(snap.Cells, e.board.Cells)
	}
	return snap
}
