package engine

// Config holds the engine parameters fixed at (re)configuration time.
type Config struct {
	Rows     int
	Cols     int
	GemTypes int
	Seed     uint64 // 0 selects the RNG's built-in default; callers wanting a time-derived seed supply one
}

// DefaultConfig returns the classic board setup.
func DefaultConfig() Config {
	return Config{
		Rows:     9,
		Cols:     9,
		GemTypes: 6,
		Seed:     0,
	}
}

// withDefaults clamps degenerate values so the engine always has a
// playable board to work with.
func (c Config) withDefaults() Config {
	if c.Rows < minRun {
		c.Rows = DefaultConfig().Rows
	}
	if c.Cols < minRun {
		c.Cols = DefaultConfig().Cols
	}
	if c.GemTypes < 3 {
		c.GemTypes = DefaultConfig().GemTypes
	}
	return c
}

// Engine owns a board and resolves swaps into frame sequences. It is
// single-threaded: a Swap call runs the whole match/cascade/shuffle
// pipeline to completion before returning, so no locking is needed as
// long as one call is in flight at a time.
type Engine struct {
	cfg   Config
	rng   *RNG
	board *Board
}

// New creates an engine with the given configuration. The board is empty
// until GenerateInitialBoard or LoadBoard is called.
func New(cfg Config) *Engine {
	e := &Engine{}
	e.Configure(cfg)
	return e
}

// Configure reinitializes the engine: configuration, RNG state and board
// are all reset.
func (e *Engine) Configure(cfg Config) {
	e.cfg = cfg.withDefaults()
	e.rng = NewRNG(e.cfg.Seed)
	e.board = nil
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Board returns a copy of the current board, or nil if none was generated
// or loaded yet. The engine retains exclusive ownership of the live board.
func (e *Engine) Board() *Board {
	if e.board == nil {
		return nil
	}
	return e.board.Clone()
}

// maxGenerateAttempts bounds the retries when a freshly generated board
// happens to have no legal move.
const maxGenerateAttempts = 32

// GenerateInitialBoard produces a fully populated board with no existing
// match and at least one legal move, installs it as the live board and
// returns a copy.
func (e *Engine) GenerateInitialBoard() *Board {
	var b *Board
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		b = e.generateMatchFree()
		if hasAnyMoveOn(b) {
			break
		}
	}
	e.board = b
	return b.Clone()
}

// generateMatchFree fills a board left-to-right, top-to-bottom, rerolling
// any gem that would complete a run with its two left or two upper
// neighbors. With at least 3 gem types a legal value always exists.
func (e *Engine) generateMatchFree() *Board {
	b := NewBoard(e.cfg.Cols, e.cfg.Rows)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			t := e.rng.Intn(e.cfg.GemTypes)
			for forbiddenType(b, C(x, y), t) {
				t = (t + 1) % e.cfg.GemTypes
			}
			b.Set(C(x, y), Gem(t))
		}
	}
	return b
}

// forbiddenType reports whether placing type t at c would complete a
// horizontal or vertical 3-run with already-placed neighbors.
func forbiddenType(b *Board, c Coord, t int) bool {
	left1, left2 := b.At(c.Add(-1, 0)), b.At(c.Add(-2, 0))
	if left1.Filled && left2.Filled && left1.Type == t && left2.Type == t {
		return true
	}
	up1, up2 := b.At(c.Add(0, -1)), b.At(c.Add(0, -2))
	return up1.Filled && up2.Filled && up1.Type == t && up2.Type == t
}

// LoadBoard overwrites the live board with a copy of the given one.
// Used for deterministic test fixtures and replays.
func (e *Engine) LoadBoard(b *Board) {
	e.board = b.Clone()
}
