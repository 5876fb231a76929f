package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

func TestBaseAttack(t *testing.T) {
	cases := []struct {
		name     string
		lines    int
		spin     bool
		allClear bool
		kind     piece.Kind
		want     int
	}{
		{"nothing", 0, false, false, piece.I, 0},
		{"single", 1, false, false, piece.L, 0},
		{"double", 2, false, false, piece.L, 0},
		{"triple", 3, false, false, piece.L, 1},
		{"quad", 4, false, false, piece.I, 2},
		{"t-spin single", 1, true, false, piece.T, 2},
		{"t-spin double", 2, true, false, piece.T, 4},
		{"t-spin triple", 3, true, false, piece.T, 6},
		{"all clear", 2, false, true, piece.O, 8},
		{"all clear quad", 4, false, true, piece.I, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rules.BaseAttack(tc.lines, tc.spin, tc.allClear, tc.kind))
		})
	}
}

func TestStreaksResolve(t *testing.T) {
	t.Run("combo counts consecutive clears", func(t *testing.T) {
		s := rules.NoStreaks()
		var bonus int
		for i := 0; i < 4; i++ {
			s, bonus = s.Resolve(1, false)
			assert.Equal(t, i, s.Combo)
			assert.Zero(t, bonus)
		}
		s, bonus = s.Resolve(1, false)
		assert.Equal(t, 4, s.Combo)
		assert.Equal(t, 1, bonus)
	})

	t.Run("clear-less lock resets both", func(t *testing.T) {
		s, bonus := rules.Streaks{Combo: 3, B2B: 2}.Resolve(0, false)
		assert.Equal(t, rules.NoStreaks(), s)
		assert.Zero(t, bonus)
	})

	t.Run("back-to-back", func(t *testing.T) {
		s, bonus := rules.NoStreaks().Resolve(4, false)
		assert.Equal(t, 1, s.B2B)
		assert.Zero(t, bonus, "the first qualifying clear starts the chain")

		s, bonus = s.Resolve(2, true)
		assert.Equal(t, 2, s.B2B)
		assert.Equal(t, 1, bonus)

		s, bonus = s.Resolve(1, false)
		assert.Zero(t, s.B2B, "a plain clear breaks the chain")
		assert.Zero(t, bonus)
	})
}

func TestResolveLock(t *testing.T) {
	t.Run("scenario B", func(t *testing.T) {
		b := rules.ParseBoard(10, 20, ".GGGGGGGGG")
		rows := rules.DropLandingRows(b, piece.I, 1, -2)
		require.Equal(t, []int{16}, rows)

		out, ok := rules.ResolveLock(b, piece.I, 1, -2, 16, rules.NoStreaks(), true)
		require.True(t, ok)
		assert.Equal(t, 1, out.Lines)
		assert.Zero(t, out.Attack)
		assert.Equal(t, 0, out.Streaks.Combo)
		assert.False(t, out.AllClear)
		assert.Equal(t, 3, out.Board.RowCount(19)+out.Board.RowCount(18)+out.Board.RowCount(17))
	})

	t.Run("t-spin double", func(t *testing.T) {
		out, ok := rules.ResolveLock(tSlot(), piece.T, 2, 0, 17, rules.NoStreaks(), true)
		require.True(t, ok)
		assert.True(t, out.Spin)
		assert.Equal(t, 2, out.Lines)
		assert.Equal(t, 4, out.Attack)
		assert.Equal(t, 1, out.Streaks.B2B)
	})

	t.Run("spin needs permission", func(t *testing.T) {
		out, ok := rules.ResolveLock(tSlot(), piece.T, 2, 0, 17, rules.NoStreaks(), false)
		require.True(t, ok)
		assert.False(t, out.Spin)
		assert.Zero(t, out.Attack)
		assert.Zero(t, out.Streaks.B2B)
	})

	t.Run("back-to-back tetrises", func(t *testing.T) {
		rows := make([]string, 9)
		for i := range rows {
			rows[i] = "GGGGGGGGG."
		}
		rows[0] = "G........."
		b := rules.ParseBoard(10, 20, rows...)

		first, ok := rules.ResolveLock(b, piece.I, 1, 7, 16, rules.NoStreaks(), true)
		require.True(t, ok)
		assert.Equal(t, 4, first.Lines)
		assert.False(t, first.AllClear)
		assert.Equal(t, 2, first.Attack)
		assert.Equal(t, 1, first.Streaks.B2B)

		second, ok := rules.ResolveLock(first.Board, piece.I, 1, 7, 16, first.Streaks, true)
		require.True(t, ok)
		assert.Equal(t, 4, second.Lines)
		assert.False(t, second.AllClear)
		assert.Equal(t, 3, second.Attack, "two plus the back-to-back bonus")
		assert.Equal(t, 2, second.Streaks.B2B)
	})

	t.Run("all clear", func(t *testing.T) {
		b := rules.ParseBoard(10, 20,
			"GGGGGGGG..",
			"GGGGGGGG..",
		)
		out, ok := rules.ResolveLock(b, piece.O, 0, 8, 18, rules.NoStreaks(), true)
		require.True(t, ok)
		assert.True(t, out.AllClear)
		assert.Equal(t, 8, out.Attack)
	})

	t.Run("illegal", func(t *testing.T) {
		_, ok := rules.ResolveLock(rules.NewBoard(10, 20), piece.I, 0, 3, -1, rules.NoStreaks(), true)
		assert.False(t, ok)
	})
}
