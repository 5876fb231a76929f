package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/planner"
)

func TestSelectStrategy(t *testing.T) {
	calm := planner.StrategyInput{
		Combo:        -1,
		PiecesPlaced: 30,
		Active:       piece.O,
		Queue:        []piece.Kind{piece.S, piece.Z, piece.I, piece.J, piece.L},
	}
	with := func(mod func(*planner.StrategyInput)) planner.StrategyInput {
		in := calm
		mod(&in)
		return in
	}

	cases := []struct {
		name string
		in   planner.StrategyInput
		want planner.Strategy
	}{
		{"high danger", with(func(in *planner.StrategyInput) { in.Danger = 1.5 }), planner.Downstack},
		{"heavy garbage", with(func(in *planner.StrategyInput) { in.Pending = 5 }), planner.Downstack},
		{"many holes", with(func(in *planner.StrategyInput) { in.Holes = 4 }), planner.Downstack},
		{"combo with near-full rows", with(func(in *planner.StrategyInput) {
			in.Combo = 1
			in.NearFullRows = 2
		}), planner.Downstack},
		{"opener", with(func(in *planner.StrategyInput) { in.PiecesPlaced = 5 }), planner.Opener},
		{"convert a slot", with(func(in *planner.StrategyInput) {
			in.SpinSlots = 1
			in.Active = piece.T
		}), planner.SpinConvert},
		{"held T counts", with(func(in *planner.StrategyInput) {
			in.SpinSlots = 1
			in.Held = piece.T
		}), planner.SpinConvert},
		{"build for an incoming T", with(func(in *planner.StrategyInput) {
			in.Queue = []piece.Kind{piece.S, piece.T, piece.I}
		}), planner.SpinBuild},
		{"build without a line piece", with(func(in *planner.StrategyInput) {
			in.Queue = []piece.Kind{piece.S, piece.Z, piece.J, piece.L, piece.O}
		}), planner.SpinBuild},
		{"T too far away", with(func(in *planner.StrategyInput) {
			in.Queue = []piece.Kind{piece.S, piece.Z, piece.J, piece.L, piece.I, piece.T}
			in.SpinSlots = 1
		}), planner.Balanced},
		{"balanced", with(func(in *planner.StrategyInput) { in.SpinSlots = 1 }), planner.Balanced},
		{"sticky spin", with(func(in *planner.StrategyInput) {
			in.SpinSlots = 1
			in.Previous = planner.SpinBuild
		}), planner.SpinBuild},
		{"sticky needs a clean stack", with(func(in *planner.StrategyInput) {
			in.SpinSlots = 1
			in.Previous = planner.SpinBuild
			in.Holes = 3
		}), planner.Balanced},
		{"sticky never overrides downstack", with(func(in *planner.StrategyInput) {
			in.Previous = planner.SpinConvert
			in.Pending = 6
		}), planner.Downstack},
		{"deep clean edge well", with(func(in *planner.StrategyInput) {
			in.PiecesPlaced = 4
			in.EdgeWellDepth = 5
		}), planner.SpinBuild},
		{"edge well with holes", with(func(in *planner.StrategyInput) {
			in.PiecesPlaced = 4
			in.EdgeWellDepth = 5
			in.EdgeWellHoles = 1
		}), planner.Opener},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, planner.SelectStrategy(tc.in))
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "spin-convert", planner.SpinConvert.String())
	assert.Equal(t, "unknown", planner.Strategy(99).String())
	assert.True(t, planner.SpinBuild.SpinOriented())
	assert.False(t, planner.Downstack.SpinOriented())
}
