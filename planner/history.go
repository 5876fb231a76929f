package planner

// Outcome tags what a lock achieved.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSingle
	OutcomeDouble
	OutcomeTriple
	OutcomeTetris
	OutcomeSpin
)

// OutcomeOf classifies a lock by lines cleared and spin.
func OutcomeOf(lines int, spin bool) Outcome {
	switch {
	case lines <= 0:
		return OutcomeNone
	case spin:
		return OutcomeSpin
	case lines >= 4:
		return OutcomeTetris
	}
	return Outcome(lines)
}

// HistorySize is how many recent outcomes feed the pattern bias.
const HistorySize = 16

const (
	biasDangerLimit  = 1.3
	tetrisDominance  = 4
	tetrisPenalty    = 4
	spinReward       = 2.5
	spinCapableBonus = 1.5
	rareClearBonus   = 1.5
)

// History is a fixed ring of the most recent outcomes.
type History struct {
	ring [HistorySize]Outcome
	next int
	n    int
}

// Record appends an outcome, evicting the oldest once full.
func (h *History) Record(o Outcome) {
	h.ring[h.next] = o
	h.next = (h.next + 1) % HistorySize
	h.n = min(h.n+1, HistorySize)
}

// Len is the number of recorded outcomes.
func (h *History) Len() int { return h.n }

// Count returns how many recorded outcomes equal o.
func (h *History) Count(o Outcome) int {
	c := 0
	for i := 0; i < h.n; i++ {
		if h.ring[i] == o {
			c++
		}
	}
	return c
}

// Bias nudges a candidate away from whatever the bot has been repeating. It
// only applies while danger is below 1.3.
func (h *History) Bias(c *Candidate, danger float64) float64 {
	if h.n == 0 || danger >= biasDangerLimit {
		return 0
	}
	tetrises := h.Count(OutcomeTetris)
	spins := h.Count(OutcomeSpin)
	clears := h.n - h.Count(OutcomeNone)

	tetris := c.Lines >= 4 && !c.Spin
	spin := c.Spin && c.Lines > 0
	bias := 0.0
	if tetrises >= tetrisDominance {
		if tetris {
			bias -= tetrisPenalty
		}
		if spin {
			bias += spinReward
		}
	}
	if spins == 0 && (spin || c.Delta.SpinSlots > 0) {
		bias += spinCapableBonus
	}
	if clears*4 < h.n && c.Attack > 0 {
		bias += rareClearBonus
	}
	return bias
}
