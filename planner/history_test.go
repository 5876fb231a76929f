package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockbattle/analysis"
	"github.com/plus3/blockbattle/planner"
)

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, planner.OutcomeNone, planner.OutcomeOf(0, true))
	assert.Equal(t, planner.OutcomeSingle, planner.OutcomeOf(1, false))
	assert.Equal(t, planner.OutcomeTriple, planner.OutcomeOf(3, false))
	assert.Equal(t, planner.OutcomeTetris, planner.OutcomeOf(4, false))
	assert.Equal(t, planner.OutcomeSpin, planner.OutcomeOf(2, true))
}

func TestHistoryRing(t *testing.T) {
	var h planner.History
	for i := 0; i < 20; i++ {
		h.Record(planner.OutcomeSingle)
	}
	assert.Equal(t, planner.HistorySize, h.Len())
	assert.Equal(t, planner.HistorySize, h.Count(planner.OutcomeSingle))

	for i := 0; i < 3; i++ {
		h.Record(planner.OutcomeTetris)
	}
	assert.Equal(t, 3, h.Count(planner.OutcomeTetris))
	assert.Equal(t, planner.HistorySize-3, h.Count(planner.OutcomeSingle))
}

// Scenario D: a tetris-heavy, spin-free history pushes the planner away from
// tetrises and toward spins.
func TestHistoryBiasAgainstRepetition(t *testing.T) {
	var h planner.History
	for i := 0; i < 12; i++ {
		h.Record(planner.OutcomeSingle)
	}
	for i := 0; i < 4; i++ {
		h.Record(planner.OutcomeTetris)
	}

	tetris := &planner.Candidate{Lines: 4, Attack: 4}
	spin := &planner.Candidate{Lines: 2, Spin: true, Attack: 4}
	slot := &planner.Candidate{Delta: analysis.Delta{SpinSlots: 1}}
	tetrisAndSlot := &planner.Candidate{Lines: 4, Attack: 4, Delta: analysis.Delta{SpinSlots: 1}}

	for _, danger := range []float64{0, 0.8, 1.29} {
		assert.Negative(t, h.Bias(tetris, danger))
		assert.Negative(t, h.Bias(tetrisAndSlot, danger))
		assert.Positive(t, h.Bias(spin, danger))
		assert.Positive(t, h.Bias(slot, danger))
	}

	assert.Zero(t, h.Bias(tetris, 1.3), "no bias under pressure")
	assert.Zero(t, h.Bias(spin, 2))
}

func TestHistoryBiasRareClears(t *testing.T) {
	var h planner.History
	h.Record(planner.OutcomeSpin)
	for i := 0; i < 15; i++ {
		h.Record(planner.OutcomeNone)
	}
	attacking := &planner.Candidate{Lines: 3, Attack: 1}
	quiet := &planner.Candidate{}

	assert.Positive(t, h.Bias(attacking, 0))
	assert.Zero(t, h.Bias(quiet, 0))

	var empty planner.History
	assert.Zero(t, empty.Bias(attacking, 0))
}
