// Package netsync encodes engine snapshots as flatbuffers so a peer or
// observer can rebuild a participant's visible state.
package netsync

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

// Version is written into every payload. Decode rejects any other value.
const Version = 1

// Largest board a payload may describe.
const (
	maxWidth  = 40
	maxHeight = 60
)

var (
	// ErrTruncated reports a buffer too short for the table it claims to hold.
	ErrTruncated = errors.New("netsync: truncated payload")
	// ErrVersion reports a payload written by an incompatible encoder.
	ErrVersion = errors.New("netsync: unsupported version")
	// ErrMalformed reports a structurally valid payload with inconsistent contents.
	ErrMalformed = errors.New("netsync: malformed payload")
)

// Encode serializes s.
func Encode(s rules.Snapshot) []byte {
	builder := flatbuffers.NewBuilder(1024)

	cells := make([]byte, 0, s.Width*s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := rules.Empty
			if y < len(s.Board) && x < len(s.Board[y]) {
				c = s.Board[y][x]
			}
			cells = append(cells, byte(c))
		}
	}
	cellsOffset := builder.CreateByteVector(cells)

	queue := make([]byte, len(s.Queue))
	for i, k := range s.Queue {
		queue[i] = byte(k)
	}
	queueOffset := builder.CreateByteVector(queue)

	SnapshotStartGarbageVector(builder, 2*len(s.Garbage))
	for i := len(s.Garbage) - 1; i >= 0; i-- {
		builder.PrependInt32(int32(s.Garbage[i].HoleColumn))
		builder.PrependInt32(int32(s.Garbage[i].Lines))
	}
	garbageOffset := builder.EndVector(2 * len(s.Garbage))

	bagOffset := builder.CreateByteVector(s.BagState)
	walkerOffset := builder.CreateByteVector(s.WalkerState.Source)

	SnapshotStart(builder)
	SnapshotAddVersion(builder, Version)
	SnapshotAddWidth(builder, int32(s.Width))
	SnapshotAddHeight(builder, int32(s.Height))
	SnapshotAddCells(builder, cellsOffset)
	SnapshotAddActiveKind(builder, byte(s.Active.Kind))
	SnapshotAddActiveRotation(builder, int32(s.Active.Rotation))
	SnapshotAddActiveX(builder, int32(s.Active.X))
	SnapshotAddActiveY(builder, int32(s.Active.Y))
	SnapshotAddPhase(builder, byte(s.Phase))
	SnapshotAddHeld(builder, byte(s.Held))
	SnapshotAddCanHold(builder, s.CanHold)
	SnapshotAddQueue(builder, queueOffset)
	SnapshotAddPiecesPlaced(builder, int32(s.Counters.PiecesPlaced))
	SnapshotAddAttacksSent(builder, int32(s.Counters.AttacksSent))
	SnapshotAddLinesCleared(builder, int32(s.Counters.LinesCleared))
	SnapshotAddFinesseErrors(builder, int32(s.Counters.FinesseErrors))
	SnapshotAddCombo(builder, int32(s.Streaks.Combo))
	SnapshotAddB2b(builder, int32(s.Streaks.B2B))
	SnapshotAddGarbage(builder, garbageOffset)
	SnapshotAddBagState(builder, bagOffset)
	SnapshotAddWalkerSource(builder, walkerOffset)
	SnapshotAddWalkerHole(builder, int32(s.WalkerState.Hole))
	SnapshotAddWalkerVelocity(builder, int32(s.WalkerState.Velocity))
	builder.Finish(SnapshotEnd(builder))

	return builder.FinishedBytes()
}

// Decode parses a payload produced by Encode. Cell markers and garbage
// entries are brought into range here; everything else is clamped by
// rules.Engine.Restore.
func Decode(buf []byte) (s rules.Snapshot, err error) {
	if len(buf) < 2*flatbuffers.SizeUOffsetT {
		return rules.Snapshot{}, ErrTruncated
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = rules.Snapshot{}, fmt.Errorf("%w: %v", ErrTruncated, r)
		}
	}()

	fb := GetRootAsSnapshot(buf, 0)
	if v := fb.Version(); v != Version {
		return rules.Snapshot{}, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	w, h := int(fb.Width()), int(fb.Height())
	if w <= 0 || h <= 0 || w > maxWidth || h > maxHeight {
		return rules.Snapshot{}, fmt.Errorf("%w: board %dx%d", ErrMalformed, w, h)
	}
	cells := fb.CellsBytes()
	if len(cells) != w*h {
		return rules.Snapshot{}, fmt.Errorf("%w: %d cells for a %dx%d board", ErrMalformed, len(cells), w, h)
	}
	if fb.GarbageLength()%2 != 0 {
		return rules.Snapshot{}, fmt.Errorf("%w: odd garbage vector", ErrMalformed)
	}

	s = rules.Snapshot{
		Width:  w,
		Height: h,
		Board:  make([][]rules.Cell, h),
		Active: rules.Active{
			Kind:     piece.Kind(fb.ActiveKind()),
			Rotation: int(fb.ActiveRotation()),
			X:        int(fb.ActiveX()),
			Y:        int(fb.ActiveY()),
		},
		Phase:   rules.Phase(fb.Phase()),
		Held:    piece.Kind(fb.Held()),
		CanHold: fb.CanHold(),
		Counters: rules.Counters{
			PiecesPlaced:  int(fb.PiecesPlaced()),
			AttacksSent:   int(fb.AttacksSent()),
			LinesCleared:  int(fb.LinesCleared()),
			FinesseErrors: int(fb.FinesseErrors()),
		},
		Streaks: rules.Streaks{Combo: int(fb.Combo()), B2B: int(fb.B2b())},
		WalkerState: rules.WalkerState{
			Source:   clone(fb.WalkerSourceBytes()),
			Hole:     int(fb.WalkerHole()),
			Velocity: int(fb.WalkerVelocity()),
		},
		BagState: clone(fb.BagStateBytes()),
	}
	for y := range s.Board {
		row := make([]rules.Cell, w)
		for x := range row {
			if c := rules.Cell(cells[y*w+x]); c.Valid() {
				row[x] = c
			}
		}
		s.Board[y] = row
	}
	for i := 0; i < fb.QueueLength(); i++ {
		if k := piece.Kind(fb.Queue(i)); k.Valid() {
			s.Queue = append(s.Queue, k)
		}
	}
	for i := 0; i+1 < fb.GarbageLength(); i += 2 {
		lines := max(0, min(rules.MaxGarbageLines, int(fb.Garbage(i))))
		if lines == 0 {
			continue
		}
		hole := max(0, min(w-1, int(fb.Garbage(i+1))))
		s.Garbage = append(s.Garbage, rules.GarbageEntry{Lines: lines, HoleColumn: hole})
	}
	return s, nil
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
