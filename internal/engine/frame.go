package engine

// FrameKind identifies the concrete type of a Frame.
type FrameKind uint8

const (
	FrameSwap FrameKind = iota
	FrameInvalidSwap
	FrameRemoval
	FrameBoard
	FrameDrop
	FrameFill
	FramePreview
	FrameShuffle
)

// String returns the string representation of a frame kind.
func (k FrameKind) String() string {
	switch k {
	case FrameSwap:
		return "Swap"
	case FrameInvalidSwap:
		return "InvalidSwap"
	case FrameRemoval:
		return "Removal"
	case FrameBoard:
		return "Board"
	case FrameDrop:
		return "Drop"
	case FrameFill:
		return "Fill"
	case FramePreview:
		return "Preview"
	case FrameShuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

// Frame is one animatable step of a board resolution. A Swap call returns
// an ordered, append-only list of frames that a renderer replays in
// sequence; frames never reference live engine state.
//
// Frame is a closed set: only the types in this file implement it.
type Frame interface {
	Kind() FrameKind
}

// SwapFrame records the two cells exchanged by a move.
type SwapFrame struct {
	A Coord
	B Coord
}

// Kind implements Frame.
func (SwapFrame) Kind() FrameKind { return FrameSwap }

// InvalidSwapFrame records a rejected move. The renderer plays the swap
// backwards; the board is already restored when this frame is emitted.
type InvalidSwapFrame struct {
	A Coord
	B Coord
}

// Kind implements Frame.
func (InvalidSwapFrame) Kind() FrameKind { return FrameInvalidSwap }

// AnimTag selects the removal animation for a single cell.
type AnimTag uint8

const (
	AnimPop     AnimTag = iota // plain match removal
	AnimExplode                // caught in an area blast
	AnimSweep                  // caught in a line or color sweep
)

// RemovedCell pairs a cleared position with its removal animation.
type RemovedCell struct {
	Pos  Coord
	Anim AnimTag
}

// EffectKind identifies an area visual effect attached to a removal.
type EffectKind uint8

const (
	EffectExplosion  EffectKind = iota // 3x3 (or larger) blast
	EffectLineSweep                    // full row/column sweep
	EffectColorSweep                   // board-wide single-color clear
)

// Effect records a visual effect triggered during a removal step.
type Effect struct {
	Kind   EffectKind
	Pos    Coord    // origin of the effect
	Dir    ClearDir // sweep direction for EffectLineSweep
	Type   int      // gem type for EffectColorSweep
	Radius int      // blast radius for EffectExplosion (1 = 3x3, 2 = 5x5)
}

// ScoreBreakdown details how the points of a removal step were computed.
type ScoreBreakdown struct {
	Base            int
	MatchBonus      int
	ComboMultiplier float64
}

// ScoreEvent is the immutable score record of one removal step.
type ScoreEvent struct {
	Points    int
	Combo     int // combo index, starting at 1
	Breakdown ScoreBreakdown
	IsBonus   bool // true for special-combo swaps and chain bonuses
}

// RemovalFrame records one removal step: which cells vanish, with what
// animation, which effects play, and the score awarded.
type RemovalFrame struct {
	Cells   []RemovedCell
	Effects []Effect
	Score   ScoreEvent
}

// Kind implements Frame.
func (RemovalFrame) Kind() FrameKind { return FrameRemoval }

// BoardFrame carries a full snapshot of the board after specials have been
// placed into freed slots.
type BoardFrame struct {
	Board *Board
}

// Kind implements Frame.
func (BoardFrame) Kind() FrameKind { return FrameBoard }

// Move records a single cell falling from one slot to another.
type Move struct {
	From Coord
	To   Coord
}

// DropFrame records the gravity step of a cascade iteration.
type DropFrame struct {
	Moves []Move
}

// Kind implements Frame.
func (DropFrame) Kind() FrameKind { return FrameDrop }

// FilledCell pairs a refilled position with the freshly generated gem.
type FilledCell struct {
	Pos  Coord
	Cell Cell
}

// FillFrame records the refill step of a cascade iteration.
type FillFrame struct {
	Cells []FilledCell
}

// Kind implements Frame.
func (FillFrame) Kind() FrameKind { return FrameFill }

// PreviewFrame lists positions that will match on the next cascade
// iteration, letting the renderer highlight them briefly.
type PreviewFrame struct {
	Pending []Coord
}

// Kind implements Frame.
func (PreviewFrame) Kind() FrameKind { return FramePreview }

// ShuffleFrame carries the board after a deadlock reshuffle. Only the
// first few shuffle attempts are recorded to keep the frame log small.
type ShuffleFrame struct {
	Board   *Board
	Attempt int // 1-based shuffle attempt number
}

// Kind implements Frame.
func (ShuffleFrame) Kind() FrameKind { return FrameShuffle }
