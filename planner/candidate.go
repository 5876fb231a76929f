package planner

import (
	"cmp"
	"slices"

	"github.com/plus3/blockbattle/analysis"
	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

// MaxDanger is the ceiling of the danger scale.
const MaxDanger = 2.5

// Danger combines stack height, holes and pending garbage into one pressure
// value in [0, MaxDanger].
func Danger(maxHeight, holes, pending int) float64 {
	d := float64(max(0, maxHeight-9))/10 +
		float64(max(0, holes-1))/6 +
		float64(max(0, pending))/12
	return clamp(d, 0, MaxDanger)
}

// Candidate is one simulated placement and everything it produced.
type Candidate struct {
	Kind     piece.Kind
	UseHold  bool
	Rotation int
	X, Y     int

	Board    *rules.Board
	Lines    int
	Spin     bool
	AllClear bool
	Attack   int
	Streaks  rules.Streaks
	Analysis analysis.Analysis
	Delta    analysis.Delta

	// Score is the first-pass score; Total adds lookahead and biases.
	Score float64
	Total float64
}

// Qualifies reports whether the placement keeps a back-to-back chain going.
func (c *Candidate) Qualifies() bool {
	return rules.Qualifies(c.Lines, c.Spin)
}

// Clean reports whether the placement added no holes or cavities and kept the
// surface roughly as smooth as it was.
func (c *Candidate) Clean() bool {
	return !c.Delta.Damaging() && c.Delta.Bumpiness <= 3
}

// GenInput is the position a generation pass starts from.
type GenInput struct {
	Board   *rules.Board
	Before  analysis.Analysis
	Kind    piece.Kind
	UseHold bool
	Streaks rules.Streaks
}

// Generate simulates every rotation, anchor column and landing row of the
// piece and returns the resulting candidates sorted by score, best first.
// Each candidate owns its board. An unknown kind yields nothing.
func Generate(in GenInput, score func(*Candidate) float64) []Candidate {
	if !in.Kind.Valid() {
		return nil
	}
	w := in.Board.Width()
	var out []Candidate
	for rot := 0; rot < piece.Rotations; rot++ {
		for x := -2; x <= w+1; x++ {
			for _, y := range rules.DropLandingRows(in.Board, in.Kind, rot, x) {
				lock, ok := rules.ResolveLock(in.Board, in.Kind, rot, x, y, in.Streaks, true)
				if !ok {
					continue
				}
				after := analysis.Analyze(lock.Board)
				c := Candidate{
					Kind:     in.Kind,
					UseHold:  in.UseHold,
					Rotation: rot,
					X:        x,
					Y:        y,
					Board:    lock.Board,
					Lines:    lock.Lines,
					Spin:     lock.Spin,
					AllClear: lock.AllClear,
					Attack:   lock.Attack,
					Streaks:  lock.Streaks,
					Analysis: after,
					Delta:    analysis.Diff(in.Before, after),
				}
				if score != nil {
					c.Score = score(&c)
				}
				c.Total = c.Score
				out = append(out, c)
			}
		}
	}
	sortByScore(out)
	return out
}

func sortByScore(cs []Candidate) {
	slices.SortStableFunc(cs, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

func sortByTotal(cs []Candidate) {
	slices.SortStableFunc(cs, func(a, b Candidate) int {
		return cmp.Compare(b.Total, a.Total)
	})
}
