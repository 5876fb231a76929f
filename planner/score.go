package planner

import "github.com/plus3/blockbattle/rules"

// ScoreContext is the situation a candidate is judged in.
type ScoreContext struct {
	Aggression   float64
	Danger       float64
	Pending      int
	Streaks      rules.Streaks
	Strategy     Strategy
	PiecesPlaced int
	NearFullRows int
}

const comboCap = 6

var (
	valveHeights   = [...]int{19, 18, 17, 16}
	valvePenalties = [...]float64{180, 90, 45, 20}
)

// Scorer is the linear evaluation of a single candidate.
type Scorer struct {
	W Weights
}

// Score returns the desirability of c in ctx. Higher is better.
func (s Scorer) Score(c *Candidate, ctx ScoreContext) float64 {
	w := s.W
	a := c.Analysis
	d := c.Delta
	lowRisk := ctx.Danger < lowDanger

	attackWeight := w.Attack * (0.6 + 0.8*ctx.Aggression) * (1 + 0.35*ctx.Danger)
	score := attackWeight*float64(c.Attack) + w.Lines*float64(c.Lines)

	if c.Spin {
		spin := w.SpinFlat + w.SpinPerLine[min(c.Lines, 3)]
		if ctx.Strategy == SpinConvert {
			spin *= 1.5
		}
		score += spin
	}
	if c.Qualifies() {
		score += w.B2B
		if ctx.Streaks.B2B > 0 {
			score += w.B2B
		}
	} else if c.Lines > 0 && ctx.Streaks.B2B > 0 {
		score -= w.B2B
	}
	if c.Lines > 0 {
		comboWeight := w.Combo
		if ctx.Strategy == Downstack {
			comboWeight *= 2
		}
		score += comboWeight * float64(min(c.Streaks.Combo, comboCap))
	}
	if c.AllClear {
		score += w.AllClear
	}
	if c.Lines == 4 {
		score += w.Tetris
	}
	if lowRisk && a.EdgeWellHoles == 0 {
		score += w.EdgeWell * float64(min(a.EdgeWellDepth, deepEdgeWell))
	}

	slotUp := w.SpinSlotUp
	if ctx.Strategy == SpinBuild {
		slotUp *= 2.5
	}
	score += w.SpinSlot*float64(min(a.SpinSlots, 2)) + slotUp*float64(d.SpinSlots)
	score += w.Cancel * float64(min(c.Attack, ctx.Pending))

	score -= w.Holes*float64(a.Holes) +
		w.HoleDepth*float64(a.HoleDepth) +
		w.Cavities*float64(a.Cavities) +
		w.AggregateHeight*float64(a.AggregateHeight) +
		w.MaxHeight*float64(a.MaxHeight) +
		w.Bumpiness*float64(a.Bumpiness) +
		w.RowTransitions*float64(a.RowTransitions) +
		w.ColTransitions*float64(a.ColTransitions) +
		w.WellCells*float64(a.WellCells) +
		w.EdgeWellHoles*float64(a.EdgeWellHoles) +
		w.CenterWell*float64(a.CenterWellPenalty)

	score -= w.NewHoles*float64(max(d.Holes, 0)) +
		w.NewCavities*float64(max(d.Cavities, 0)) +
		w.NewHoleDepth*float64(max(d.HoleDepth, 0))

	score += strategyAdjust(c, ctx)
	score -= heightValve(a.MaxHeight, ctx.Danger)
	return score
}

func strategyAdjust(c *Candidate, ctx ScoreContext) float64 {
	d := c.Delta
	switch ctx.Strategy {
	case Downstack:
		adj := 0.0
		if c.Lines == 1 || c.Lines == 2 {
			adj += 1.5 * float64(c.Lines)
		}
		if d.Holes < 0 {
			adj += 4 * float64(-d.Holes)
		}
		if c.Lines > 0 && ctx.NearFullRows > 0 {
			adj += 0.5
		}
		return adj
	case SpinConvert:
		if c.Lines > 0 && !c.Spin && d.SpinSlots < 0 {
			return -1.5
		}
	case Opener:
		if c.Lines > 0 && c.Lines < 4 && !c.Spin {
			early := float64(max(0, openerPieces-ctx.PiecesPlaced)) / openerPieces
			return -1 - early
		}
	case Balanced:
		if c.Qualifies() {
			return 0.3 * float64(c.Attack)
		}
	}
	return 0
}

// heightValve is the flat penalty for the highest height threshold the stack
// reaches, scaled by danger.
func heightValve(maxHeight int, danger float64) float64 {
	for i, h := range valveHeights {
		if maxHeight >= h {
			return valvePenalties[i] * (1 + danger)
		}
	}
	return 0
}
