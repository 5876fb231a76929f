package bot_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockbattle/bot"
	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/planner"
	"github.com/plus3/blockbattle/rules"
)

func newPlanner() *planner.Planner {
	cfg := planner.DefaultConfig()
	cfg.MistakeChance = 0
	return planner.New(cfg)
}

func newEngine(t *testing.T, seed uint64) *rules.Engine {
	t.Helper()
	e := rules.NewEngine(rules.DefaultConfig(), seed)
	require.True(t, e.Spawn())
	return e
}

func TestBotThinkInterval(t *testing.T) {
	e := newEngine(t, 1)
	b := bot.New(e, bot.Config{PiecesPerSecond: 2}, newPlanner(), zerolog.Nop())
	assert.InDelta(t, 0.5, b.Interval(), 1e-9)

	require.True(t, b.Update(0.3))
	assert.Zero(t, e.PiecesPlaced(), "interval not reached")
	require.True(t, b.Update(0.3))
	assert.Equal(t, 1, e.PiecesPlaced())
	assert.Equal(t, 1, b.Stats().Decisions)

	require.True(t, b.Update(5))
	assert.Equal(t, 2, e.PiecesPlaced(), "one decision per update")
}

func TestBotJitterStaysInRange(t *testing.T) {
	e := newEngine(t, 2)
	b := bot.New(e, bot.Config{PiecesPerSecond: 4, Jitter: 0.5}, newPlanner(), zerolog.Nop())

	b.SetUniform(func() float64 { return 0 })
	require.True(t, b.Update(1))
	assert.InDelta(t, 0.125, b.Interval(), 1e-9)

	b.SetUniform(func() float64 { return 0.9999999 })
	require.True(t, b.Update(1))
	assert.InDelta(t, 0.375, b.Interval(), 1e-6)
}

func TestBotConfigNormalize(t *testing.T) {
	c := bot.Config{PiecesPerSecond: 100, Jitter: -1}
	c.Normalize()
	assert.Equal(t, 20.0, c.PiecesPerSecond)
	assert.Zero(t, c.Jitter)

	c = bot.Config{}
	c.Normalize()
	assert.Equal(t, 0.2, c.PiecesPerSecond)
}

func TestBotPlays(t *testing.T) {
	e := newEngine(t, 3)
	b := bot.New(e, bot.Config{PiecesPerSecond: 10}, newPlanner(), zerolog.Nop())

	for i := 0; i < 25; i++ {
		require.True(t, b.Decide(), "topped out after %d pieces", i)
	}
	assert.Equal(t, 25, e.PiecesPlaced())
	assert.Equal(t, 25, b.Stats().Decisions)
	assert.Zero(t, b.Stats().Fallbacks)
	assert.Equal(t, min(25, planner.HistorySize), b.Planner().History().Len())
}

func TestBotRecordsForcedDrops(t *testing.T) {
	e := newEngine(t, 5)
	b := bot.New(racyGame{e}, bot.Config{PiecesPerSecond: 10}, newPlanner(), zerolog.Nop())

	for i := 0; i < 3; i++ {
		require.True(t, b.Decide())
	}
	assert.Equal(t, 3, b.Stats().Fallbacks)
	assert.Equal(t, 3, b.Planner().History().Len())
}

func TestBotReportsTopOut(t *testing.T) {
	e := newEngine(t, 4)
	s, err := e.Snapshot()
	require.NoError(t, err)
	// Every row below the top has only single-width gaps, so an O can only
	// rest partly above the board.
	rows := make([]string, 19)
	for i := range rows {
		rows[i] = "G.GG.GG.GG"
	}
	s.Board = rules.ParseBoard(10, 20, rows...).Rows()
	s.Active = rules.Active{Kind: piece.O, X: 4, Y: -1}
	s.Queue = []piece.Kind{piece.O, piece.O, piece.O, piece.O, piece.O, piece.O}
	s.CanHold = false
	require.NoError(t, e.Restore(s))
	require.False(t, e.ToppedOut())

	b := bot.New(e, bot.DefaultConfig(), newPlanner(), zerolog.Nop())
	assert.False(t, b.Decide())
	assert.True(t, e.ToppedOut())
}
