package rules

import (
	"fmt"

	"github.com/plus3/blockbattle/piece"
)

// Snapshot is a serializable copy of everything an observer or peer needs to
// rebuild an engine's visible state.
type Snapshot struct {
	Width, Height int
	Board         [][]Cell
	Active        Active
	Phase         Phase
	Held          piece.Kind
	CanHold       bool
	Queue         []piece.Kind
	Counters      Counters
	Streaks       Streaks
	Garbage       []GarbageEntry

	BagState    []byte
	WalkerState WalkerState
}

// Snapshot captures the engine state.
func (e *Engine) Snapshot() (Snapshot, error) {
	bag, err := e.bag.State()
	if err != nil {
		return Snapshot{}, err
	}
	walker, err := e.walker.State()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Width:       e.board.width,
		Height:      e.board.height,
		Board:       e.board.Rows(),
		Active:      e.active,
		Phase:       e.phase,
		Held:        e.held,
		CanHold:     e.canHold,
		Queue:       e.bag.Queue(),
		Counters:    e.stats,
		Streaks:     e.streaks,
		Garbage:     e.garbage.Entries(),
		BagState:    bag,
		WalkerState: walker,
	}, nil
}

// Restore replaces the engine state with s. Out-of-range values are clamped
// rather than rejected: a board of another size keeps its bottom-left corner,
// losing rows above and columns right of the engine's grid, and garbage holes
// move inside the engine's width. An active piece that does not fit tops the
// engine out.
func (e *Engine) Restore(s Snapshot) error {
	if len(s.BagState) > 0 {
		if err := e.bag.SetState(s.BagState); err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
	}
	if len(s.WalkerState.Source) > 0 {
		if err := e.walker.SetState(s.WalkerState); err != nil {
			return fmt.Errorf("restore snapshot: %w", err)
		}
	}

	e.board = BoardFromRows(e.cfg.Width, e.cfg.Height, bottomAligned(s.Board, e.cfg.Height))
	e.bag.SetQueue(s.Queue)
	garbage := make([]GarbageEntry, 0, len(s.Garbage))
	for _, g := range s.Garbage {
		garbage = append(garbage, GarbageEntry{
			Lines:      clampInt(g.Lines, 0, MaxGarbageLines),
			HoleColumn: clampInt(g.HoleColumn, 0, e.cfg.Width-1),
		})
	}
	e.garbage.Reset(garbage)
	e.held = piece.None
	if s.Held.Valid() {
		e.held = s.Held
	}
	e.canHold = s.CanHold
	e.stats = s.Counters
	e.streaks = Streaks{Combo: max(s.Streaks.Combo, -1), B2B: max(s.Streaks.B2B, 0)}
	e.active = s.Active
	e.active.Rotation = piece.Rotate(s.Active.Rotation, 0)
	e.lastRotation = false
	e.fallTimer, e.lockTimer, e.lockResets, e.inputs = 0, 0, 0, 0

	switch {
	case s.Phase == PhaseToppedOut:
		e.phase = PhaseToppedOut
	case s.Phase == PhaseLocked || !s.Active.Kind.Valid():
		e.phase = PhaseLocked
	case !e.Valid(e.active.Rotation, e.active.X, e.active.Y):
		e.phase = PhaseToppedOut
	default:
		e.updateGrounded()
	}
	return nil
}

// bottomAligned returns exactly height rows whose last row is the last of
// rows, dropping rows from the top or padding it with empty ones.
func bottomAligned(rows [][]Cell, height int) [][]Cell {
	if len(rows) >= height {
		return rows[len(rows)-height:]
	}
	return append(make([][]Cell, height-len(rows)), rows...)
}
