package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

func newEngine(t *testing.T, seed uint64) *rules.Engine {
	t.Helper()
	e := rules.NewEngine(rules.DefaultConfig(), seed)
	require.True(t, e.Spawn())
	return e
}

// loadBoard restores e with the given bottom-aligned rows and a piece in play.
func loadBoard(t *testing.T, e *rules.Engine, active rules.Active, rows ...string) {
	t.Helper()
	s, err := e.Snapshot()
	require.NoError(t, err)
	s.Board = rules.ParseBoard(s.Width, s.Height, rows...).Rows()
	s.Active = active
	s.Phase = rules.PhaseFalling
	require.NoError(t, e.Restore(s))
}

func TestEngineSpawn(t *testing.T) {
	e := rules.NewEngine(rules.DefaultConfig(), 1)
	front := e.Queue()[0]

	require.True(t, e.Spawn())
	a := e.Active()
	assert.Equal(t, front, a.Kind)
	assert.Zero(t, a.Rotation)
	x, y := piece.Spawn(front)
	assert.Equal(t, x, a.X)
	assert.Equal(t, y, a.Y)
	assert.GreaterOrEqual(t, len(e.Queue()), 6)
	assert.Equal(t, rules.PhaseFalling, e.Phase())
}

func TestEngineHold(t *testing.T) {
	e := newEngine(t, 2)
	first := e.Active().Kind
	next := e.Queue()[0]

	require.True(t, e.Hold())
	assert.Equal(t, first, e.Held())
	assert.Equal(t, next, e.Active().Kind)
	assert.False(t, e.CanHold())
	assert.False(t, e.Hold(), "one hold per spawn")

	require.True(t, e.HardDropAndSpawn())
	assert.True(t, e.CanHold())
	require.True(t, e.Hold())
	assert.Equal(t, first, e.Active().Kind, "hold swaps with the stored piece")
}

func TestEngineMovement(t *testing.T) {
	e := newEngine(t, 3)
	x := e.Active().X

	assert.True(t, e.Move(-1))
	assert.Equal(t, x-1, e.Active().X)
	for e.Move(-1) {
	}
	assert.False(t, e.Valid(e.Active().Rotation, e.Active().X-1, e.Active().Y))

	y := e.Active().Y
	assert.True(t, e.SoftDrop())
	assert.Equal(t, y+1, e.Active().Y)
	assert.False(t, e.LastWasRotation())
}

func TestEngineRotateUsesKicks(t *testing.T) {
	e := newEngine(t, 4)
	loadBoard(t, e, rules.Active{Kind: piece.T, Rotation: 0, X: 3, Y: 5})

	require.True(t, e.Rotate(1))
	assert.Equal(t, 1, e.Active().Rotation)
	assert.True(t, e.LastWasRotation())

	// Against the left wall the T in rotation 1 must kick right to turn.
	loadBoard(t, e, rules.Active{Kind: piece.T, Rotation: 1, X: -1, Y: 5})
	require.True(t, e.Rotate(1))
	assert.Equal(t, 2, e.Active().Rotation)
	assert.GreaterOrEqual(t, e.Active().X, 0)
}

func TestEngineHardDrop(t *testing.T) {
	e := newEngine(t, 5)
	res, ok := e.HardDrop()
	require.True(t, ok)
	assert.Zero(t, res.Lines)
	assert.Equal(t, rules.PhaseLocked, e.Phase())
	assert.Equal(t, 1, e.PiecesPlaced())

	b := e.Board()
	assert.Equal(t, 4, b.RowCount(19)+b.RowCount(18)+b.RowCount(17)+b.RowCount(16))
	require.True(t, e.Spawn())
}

func TestEngineSpinNeedsRotation(t *testing.T) {
	slot := []string{
		"G.G.......",
		"...GGGGGGG",
		"G.GGGGGGGG",
	}
	at := rules.Active{Kind: piece.T, Rotation: 2, X: 0, Y: 17}

	t.Run("rotated in", func(t *testing.T) {
		e := newEngine(t, 6)
		loadBoard(t, e, at, slot...)
		assert.Equal(t, rules.PhaseGrounded, e.Phase())
		e.MarkRotation(true)

		res, ok := e.Lock()
		require.True(t, ok)
		assert.True(t, res.Spin)
		assert.Equal(t, 2, res.Lines)
		assert.Equal(t, 4, res.Attack)
		assert.Equal(t, 4, res.Sent)
		assert.Equal(t, 4, e.TakeOutgoing())
		assert.Zero(t, e.TakeOutgoing())
		assert.Equal(t, 4, e.Counters().AttacksSent)
	})

	t.Run("placed directly", func(t *testing.T) {
		e := newEngine(t, 6)
		loadBoard(t, e, at, slot...)

		res, ok := e.Lock()
		require.True(t, ok)
		assert.False(t, res.Spin)
		assert.Equal(t, 2, res.Lines)
		assert.Zero(t, res.Attack)
	})
}

func TestEngineGarbage(t *testing.T) {
	t.Run("raised after a clear-less lock", func(t *testing.T) {
		e := newEngine(t, 7)
		e.ReceiveGarbage(3)
		assert.Equal(t, 3, e.PendingGarbage())

		res, ok := e.HardDrop()
		require.True(t, ok)
		assert.Equal(t, 3, res.GarbageApplied)
		assert.Zero(t, e.PendingGarbage())
		b := e.Board()
		for y := 17; y < 20; y++ {
			assert.Equal(t, 9, b.RowCount(y))
		}
	})

	t.Run("capped per lock", func(t *testing.T) {
		e := newEngine(t, 8)
		e.ReceiveGarbage(12)
		res, ok := e.HardDrop()
		require.True(t, ok)
		assert.Equal(t, rules.DefaultConfig().GarbageCap, res.GarbageApplied)
		assert.Equal(t, 12-res.GarbageApplied, e.PendingGarbage())
	})

	t.Run("cancelled by an attack", func(t *testing.T) {
		e := newEngine(t, 9)
		e.ReceiveGarbage(2)
		loadBoard(t, e, rules.Active{Kind: piece.T, Rotation: 2, X: 0, Y: 17},
			"G.G.......",
			"...GGGGGGG",
			"G.GGGGGGGG",
		)
		e.MarkRotation(true)
		res, ok := e.Lock()
		require.True(t, ok)
		assert.Equal(t, 4, res.Attack)
		assert.Equal(t, 2, res.Sent)
		assert.Zero(t, e.PendingGarbage())
		assert.Zero(t, res.GarbageApplied)
	})
}

func TestEngineTick(t *testing.T) {
	e := newEngine(t, 10)
	y := e.Active().Y

	require.True(t, e.Tick(1))
	assert.Equal(t, y+1, e.Active().Y)

	for e.SoftDrop() {
	}
	assert.Equal(t, rules.PhaseGrounded, e.Phase())
	require.True(t, e.Tick(0.2))
	assert.Zero(t, e.PiecesPlaced(), "lock delay has not elapsed")
	require.True(t, e.Tick(0.4))
	assert.Equal(t, 1, e.PiecesPlaced())
	assert.Equal(t, rules.PhaseFalling, e.Phase(), "the next piece spawned")
}

func TestEngineTopOut(t *testing.T) {
	e := newEngine(t, 11)
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = ".GGGGGGGGG"
	}
	s, err := e.Snapshot()
	require.NoError(t, err)
	s.Board = rules.ParseBoard(10, 20, rows...).Rows()
	s.Phase = rules.PhaseLocked
	require.NoError(t, e.Restore(s))

	assert.False(t, e.Spawn())
	assert.True(t, e.ToppedOut())
	assert.False(t, e.Tick(1))
	assert.False(t, e.HardDropAndSpawn())
}

func TestEngineSnapshotRestore(t *testing.T) {
	a := newEngine(t, 12)
	a.ReceiveGarbage(4)
	for i := 0; i < 3; i++ {
		require.True(t, a.HardDropAndSpawn())
	}
	s, err := a.Snapshot()
	require.NoError(t, err)

	b := rules.NewEngine(rules.DefaultConfig(), 999)
	require.NoError(t, b.Restore(s))
	assert.True(t, a.Board().Equal(b.Board()))
	assert.Equal(t, a.Active(), b.Active())
	assert.Equal(t, a.Queue(), b.Queue())
	assert.Equal(t, a.PendingEntries(), b.PendingEntries())

	for i := 0; i < 10; i++ {
		a.ReceiveGarbage(1)
		b.ReceiveGarbage(1)
		okA := a.HardDropAndSpawn()
		okB := b.HardDropAndSpawn()
		require.Equal(t, okA, okB)
		if !okA {
			break
		}
		require.True(t, a.Board().Equal(b.Board()), "boards diverged after %d drops", i)
	}

	t.Run("other dimensions are clamped", func(t *testing.T) {
		f := s
		f.Board = rules.ParseBoard(10, 20, "T.........", "GGGGGGGGG.").Rows()
		f.Garbage = []rules.GarbageEntry{{Lines: 2, HoleColumn: 9}}

		smaller := rules.DefaultConfig()
		smaller.Width, smaller.Height = 8, 16
		c := rules.NewEngine(smaller, 1)
		require.NoError(t, c.Restore(f))
		want := rules.ParseBoard(8, 16, "T.......", "GGGGGGGG")
		assert.True(t, want.Equal(c.Board()), "got\n%s", c.Board())
		assert.Equal(t, []rules.GarbageEntry{{Lines: 2, HoleColumn: 7}}, c.PendingEntries())

		larger := rules.DefaultConfig()
		larger.Width, larger.Height = 12, 24
		d := rules.NewEngine(larger, 1)
		require.NoError(t, d.Restore(f))
		want = rules.ParseBoard(12, 24, "T...........", "GGGGGGGGG...")
		assert.True(t, want.Equal(d.Board()), "got\n%s", d.Board())
	})

	t.Run("foreign garbage is clamped", func(t *testing.T) {
		f := s
		f.Garbage = []rules.GarbageEntry{{Lines: 30, HoleColumn: 14}, {Lines: -2, HoleColumn: 1}, {Lines: 2, HoleColumn: -3}}
		c := rules.NewEngine(rules.DefaultConfig(), 1)
		require.NoError(t, c.Restore(f))
		assert.Equal(t, []rules.GarbageEntry{
			{Lines: rules.MaxGarbageLines, HoleColumn: 9},
			{Lines: 2, HoleColumn: 0},
		}, c.PendingEntries())
	})
}

func TestConfigNormalize(t *testing.T) {
	var c rules.Config
	c.Normalize()
	assert.Equal(t, 8, c.Width)
	assert.Equal(t, 8, c.Height)
	assert.Equal(t, 6, c.QueueHorizon)
	assert.Equal(t, 1, c.GarbageCap)
	assert.Equal(t, 0.01, c.Gravity)

	d := rules.DefaultConfig()
	d.GarbageCap = 100
	d.Normalize()
	assert.Equal(t, d.Height, d.GarbageCap)
}
