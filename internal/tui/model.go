package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/engine"
	"github.com/vovakirdan/gemcrush/internal/storage"
)

// GameModel is the Bubble Tea model for a gemcrush session. The engine is
// only ever touched from Update, and at most one swap resolution is being
// played back at any time; input that would start another swap is ignored
// until the current frame queue drains.
type GameModel struct {
	eng     *engine.Engine
	display *engine.Board
	store   *storage.Store
	cfg     config.GemcrushConfig
	preset  string
	seed    uint64

	cursor   engine.Coord
	selected *engine.Coord

	queue      []engine.Frame
	queueIdx   int
	generation int
	playing    bool

	score     int
	moves     int
	bestCombo int
	highScore int
	lastEvent *engine.ScoreEvent

	highlight map[engine.Coord]engine.AnimTag
	pending   map[engine.Coord]bool

	keys GameKeyMap
	help help.Model

	width    int
	height   int
	quitting bool
	saved    bool
}

// NewGameModel creates a game model for the given preset. A zero seed
// picks a time-derived one.
func NewGameModel(store *storage.Store, cfg config.GemcrushConfig, preset string, seed uint64) GameModel {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	eng := engine.New(engine.Config{
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		GemTypes: cfg.Board.GemTypes,
		Seed:     seed,
	})
	display := eng.GenerateInitialBoard()

	m := GameModel{
		eng:     eng,
		display: display,
		store:   store,
		cfg:     cfg,
		preset:  preset,
		seed:    seed,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
	}

	if store != nil {
		//nolint:errcheck // Best-effort, the header just shows 0
		m.highScore, _ = store.HighScore(preset)
	}

	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveGame()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Board input is frozen while a resolution is being replayed.
	if m.playing {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Cancel):
		m.selected = nil

	case key.Matches(msg, m.keys.Select):
		if m.selected != nil && *m.selected == m.cursor {
			m.selected = nil
		} else {
			sel := m.cursor
			m.selected = &sel
		}

	case key.Matches(msg, m.keys.Up):
		return m.moveOrSwap(0, -1)
	case key.Matches(msg, m.keys.Down):
		return m.moveOrSwap(0, 1)
	case key.Matches(msg, m.keys.Left):
		return m.moveOrSwap(-1, 0)
	case key.Matches(msg, m.keys.Right):
		return m.moveOrSwap(1, 0)
	}

	return m, nil
}

// moveOrSwap moves the cursor, or, with a gem selected, swaps it with its
// neighbor in the pressed direction.
func (m GameModel) moveOrSwap(dx, dy int) (tea.Model, tea.Cmd) {
	if m.selected != nil {
		target := m.selected.Add(dx, dy)
		src := *m.selected
		m.selected = nil
		if m.display.InBounds(target) {
			return m.startSwap(src, target)
		}
		return m, nil
	}

	next := m.cursor.Add(dx, dy)
	if m.display.InBounds(next) {
		m.cursor = next
	}
	return m, nil
}

// startSwap resolves a swap synchronously and begins replaying its frames.
func (m GameModel) startSwap(a, b engine.Coord) (tea.Model, tea.Cmd) {
	res := m.eng.Swap(a, b)
	if res.Valid {
		m.moves++
	}
	// Invalid swaps can still score: a deadlocked board reshuffles and
	// any resulting cascade pays out.
	m.score += res.Points
	if m.score > m.highScore {
		m.highScore = m.score
	}

	if len(res.Frames) == 0 {
		return m, nil
	}

	m.generation++
	m.queue = res.Frames
	m.queueIdx = 0
	m.playing = true
	return m, frameCmd(m.generation, 0)
}

func (m GameModel) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || !m.playing {
		return m, nil
	}

	frame := m.queue[m.queueIdx]
	m.applyFrame(frame)
	m.queueIdx++

	if m.queueIdx >= len(m.queue) {
		m.playing = false
		m.queue = nil
		m.highlight = nil
		m.pending = nil
		// The replay ends on the engine's settled board by construction,
		// but resyncing makes rendering independent of frame coverage.
		m.display = m.eng.Board()
		return m, nil
	}

	return m, frameCmd(m.generation, m.delayFor(frame))
}

// applyFrame advances the display board by one frame.
func (m *GameModel) applyFrame(f engine.Frame) {
	switch f := f.(type) {
	case engine.SwapFrame:
		ca, cb := m.display.At(f.A), m.display.At(f.B)
		m.display.Set(f.A, cb)
		m.display.Set(f.B, ca)

	case engine.InvalidSwapFrame:
		ca, cb := m.display.At(f.A), m.display.At(f.B)
		m.display.Set(f.A, cb)
		m.display.Set(f.B, ca)

	case engine.RemovalFrame:
		m.highlight = make(map[engine.Coord]engine.AnimTag, len(f.Cells))
		for _, c := range f.Cells {
			m.highlight[c.Pos] = c.Anim
		}
		m.pending = nil
		ev := f.Score
		m.lastEvent = &ev
		if ev.Combo > m.bestCombo {
			m.bestCombo = ev.Combo
		}

	case engine.BoardFrame:
		m.display = f.Board.Clone()
		m.highlight = nil

	case engine.DropFrame:
		src := m.display.Clone()
		for _, mv := range f.Moves {
			m.display.SetEmpty(mv.From)
		}
		for _, mv := range f.Moves {
			m.display.Set(mv.To, src.At(mv.From))
		}

	case engine.FillFrame:
		for _, fc := range f.Cells {
			m.display.Set(fc.Pos, fc.Cell)
		}

	case engine.PreviewFrame:
		m.pending = make(map[engine.Coord]bool, len(f.Pending))
		for _, c := range f.Pending {
			m.pending[c] = true
		}

	case engine.ShuffleFrame:
		m.display = f.Board.Clone()
		m.highlight = nil
		m.pending = nil
	}
}

// delayFor returns the playback pause after the given frame.
func (m GameModel) delayFor(f engine.Frame) time.Duration {
	var ms int
	switch f.Kind() {
	case engine.FrameSwap, engine.FrameInvalidSwap:
		ms = m.cfg.Animation.SwapMs
	case engine.FrameRemoval:
		ms = m.cfg.Animation.RemoveMs
	case engine.FrameBoard, engine.FrameDrop:
		ms = m.cfg.Animation.DropMs
	case engine.FrameFill:
		ms = m.cfg.Animation.FillMs
	case engine.FramePreview:
		ms = m.cfg.Animation.PreviewMs
	case engine.FrameShuffle:
		ms = m.cfg.Animation.ShuffleMs
	}
	return time.Duration(ms) * time.Millisecond
}

// restart saves the finished game and starts a fresh one with a new seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.saveGame()

	m.seed = uint64(time.Now().UnixNano())
	m.eng.Configure(engine.Config{
		Rows:     m.cfg.Board.Rows,
		Cols:     m.cfg.Board.Cols,
		GemTypes: m.cfg.Board.GemTypes,
		Seed:     m.seed,
	})
	m.display = m.eng.GenerateInitialBoard()

	m.generation++
	m.queue = nil
	m.playing = false
	m.score = 0
	m.moves = 0
	m.bestCombo = 0
	m.lastEvent = nil
	m.highlight = nil
	m.pending = nil
	m.selected = nil
	m.cursor = engine.Coord{}
	m.saved = false

	if m.store != nil {
		//nolint:errcheck // Best-effort refresh
		m.highScore, _ = m.store.HighScore(m.preset)
	}

	return m, nil
}

// saveGame records the current game once. Zero-score games are not kept.
func (m *GameModel) saveGame() {
	if m.saved || m.score == 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, quitting continues regardless
	m.store.SaveGame(storage.GameRecord{
		Preset:    m.preset,
		Score:     m.score,
		Moves:     m.moves,
		BestCombo: m.bestCombo,
		Seed:      m.seed,
	})
	m.saved = true
}

// View implements tea.Model.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return renderGame(m)
}

// Run starts the board screen in the local terminal.
func Run(store *storage.Store, cfg config.GemcrushConfig, preset string, seed uint64) error {
	model := NewGameModel(store, cfg, preset, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
