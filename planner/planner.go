// Package planner chooses where the bot puts its next piece. It enumerates
// every landing spot, scores each with a weighted feature model, looks up to
// two pieces ahead and occasionally picks a worse spot on purpose.
package planner

import (
	"github.com/kamstrup/intmap"
	"lukechampine.com/frand"

	"github.com/plus3/blockbattle/analysis"
	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

// Input is a read-only copy of the live position the planner decides from.
type Input struct {
	Board        *rules.Board
	Active       piece.Kind
	Held         piece.Kind
	CanHold      bool
	Queue        []piece.Kind
	Streaks      rules.Streaks
	Pending      int
	PiecesPlaced int
}

// Plan is the chosen placement plus how to reproduce it on the live engine.
type Plan struct {
	Candidate Candidate
	// TreatAsRotation tells the executor to credit the final move as a
	// rotation so the live engine scores the same spin the search did.
	TreatAsRotation bool
	UseHold         bool
}

// Rand is the unseeded source used for mistakes.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type frandSource struct{}

func (frandSource) Float64() float64 { return float64(frand.Uint64n(1<<53)) / (1 << 53) }
func (frandSource) IntN(n int) int   { return frand.Intn(n) }

// Decision records how the last plan was reached.
type Decision struct {
	Strategy   Strategy
	Danger     float64
	Candidates int
	Pool       int
	Mistake    bool
}

// Planner carries the state that persists between decision cycles: the
// previous strategy and the recent outcome history.
type Planner struct {
	cfg      Config
	scorer   Scorer
	rng      Rand
	history  History
	strategy Strategy
	last     Decision

	cache *intmap.Map[uint64, float64]
}

// New creates a planner. cfg is normalized.
func New(cfg Config) *Planner {
	cfg.Normalize()
	return &Planner{
		cfg:    cfg,
		scorer: Scorer{W: cfg.Weights},
		rng:    frandSource{},
		cache:  intmap.New[uint64, float64](512),
	}
}

// WithRand replaces the mistake source.
func (p *Planner) WithRand(r Rand) *Planner {
	p.rng = r
	return p
}

func (p *Planner) Config() Config         { return p.cfg }
func (p *Planner) History() *History      { return &p.history }
func (p *Planner) LastDecision() Decision { return p.last }

// Record feeds the outcome of a live lock into the pattern history.
func (p *Planner) Record(lines int, spin bool) {
	p.history.Record(OutcomeOf(lines, spin))
}

type cycle struct {
	in       Input
	before   analysis.Analysis
	danger   float64
	strategy Strategy
}

func (p *Planner) context(cy *cycle, streaks rules.Streaks, pending int) ScoreContext {
	return ScoreContext{
		Aggression:   p.cfg.Aggression,
		Danger:       cy.danger,
		Pending:      pending,
		Streaks:      streaks,
		Strategy:     cy.strategy,
		PiecesPlaced: cy.in.PiecesPlaced,
		NearFullRows: cy.before.NearFullRows,
	}
}

func (p *Planner) scoreFunc(ctx ScoreContext) func(*Candidate) float64 {
	return func(c *Candidate) float64 { return p.scorer.Score(c, ctx) }
}

// Plan runs one decision cycle. It returns nil when there is nothing to place,
// which callers treat as a forced drop.
func (p *Planner) Plan(in Input) *Plan {
	if in.Board == nil || !in.Active.Valid() {
		return nil
	}
	cy := &cycle{in: in, before: analysis.Analyze(in.Board)}
	cy.danger = Danger(cy.before.MaxHeight, cy.before.Holes, in.Pending)
	cy.strategy = SelectStrategy(StrategyInput{
		Danger:        cy.danger,
		Pending:       in.Pending,
		Holes:         cy.before.Holes,
		Combo:         in.Streaks.Combo,
		PiecesPlaced:  in.PiecesPlaced,
		NearFullRows:  cy.before.NearFullRows,
		SpinSlots:     cy.before.SpinSlots,
		EdgeWellDepth: cy.before.EdgeWellDepth,
		EdgeWellHoles: cy.before.EdgeWellHoles,
		Active:        in.Active,
		Held:          in.Held,
		Queue:         in.Queue,
		Previous:      p.strategy,
	})
	p.strategy = cy.strategy
	p.cache.Clear()

	ctx := p.context(cy, in.Streaks, in.Pending)
	base := GenInput{Board: in.Board, Before: cy.before, Streaks: in.Streaks}

	type branch struct {
		cands []Candidate
		queue []piece.Kind
	}
	direct := base
	direct.Kind = in.Active
	branches := []branch{{cands: Generate(direct, p.scoreFunc(ctx)), queue: in.Queue}}

	if kind, queue, ok := holdBranch(in); ok {
		held := base
		held.Kind = kind
		held.UseHold = true
		branches = append(branches, branch{cands: Generate(held, p.scoreFunc(ctx)), queue: queue})
	}

	var pool []Candidate
	generated := 0
	for _, br := range branches {
		generated += len(br.cands)
		top := br.cands[:min(len(br.cands), p.cfg.TopK)]
		for i := range top {
			p.lookahead(cy, &top[i], br.queue, i < p.cfg.DeepK)
		}
		pool = append(pool, top...)
	}
	if len(pool) == 0 {
		p.last = Decision{Strategy: cy.strategy, Danger: cy.danger}
		return nil
	}
	sortByTotal(pool)
	pool = pool[:min(len(pool), p.cfg.TopK)]

	for i := range pool {
		c := &pool[i]
		c.Total += p.adjust(cy, c)
		c.Total += p.history.Bias(c, cy.danger)
	}
	pool = cleanFilter(pool, cy)
	sortByTotal(pool)

	choice, mistake := p.pick(pool, cy)
	p.last = Decision{
		Strategy:   cy.strategy,
		Danger:     cy.danger,
		Candidates: generated,
		Pool:       len(pool),
		Mistake:    mistake,
	}
	return &Plan{
		Candidate:       choice,
		TreatAsRotation: choice.Spin,
		UseHold:         choice.UseHold,
	}
}

// holdBranch works out which piece hold would bring into play and what the
// queue looks like afterwards.
func holdBranch(in Input) (piece.Kind, []piece.Kind, bool) {
	if !in.CanHold {
		return piece.None, nil, false
	}
	if in.Held.Valid() {
		if in.Held == in.Active {
			return piece.None, nil, false
		}
		return in.Held, in.Queue, true
	}
	if len(in.Queue) == 0 || in.Queue[0] == in.Active {
		return piece.None, nil, false
	}
	return in.Queue[0], in.Queue[1:], true
}

// lookahead adds the best reply with the next queued piece and, for the
// deepest candidates, the best third-ply follow-up.
func (p *Planner) lookahead(cy *cycle, c *Candidate, queue []piece.Kind, deep bool) {
	if len(queue) == 0 {
		return
	}
	pending := max(0, cy.in.Pending-c.Attack)
	ctx := p.context(cy, c.Streaks, pending)
	replies := Generate(GenInput{
		Board:   c.Board,
		Before:  c.Analysis,
		Kind:    queue[0],
		Streaks: c.Streaks,
	}, p.scoreFunc(ctx))
	if len(replies) == 0 {
		c.Total -= heightValve(19, cy.danger)
		return
	}

	best := replies[0]
	c.Total += p.cfg.NextWeight * best.Score
	c.Total += 0.3 * float64(best.Attack)
	if best.Lines == 4 {
		c.Total += 1
	}
	if best.Spin {
		c.Total += 1.2
	}

	if !deep || len(queue) < 2 {
		return
	}
	third := queue[1]
	bestThird := 0.0
	found := false
	for _, r := range replies[:min(len(replies), p.cfg.BranchK)] {
		v, ok := p.bestReply(cy, &r, third)
		if !ok {
			continue
		}
		if !found || v > bestThird {
			bestThird, found = v, true
		}
	}
	if found {
		c.Total += p.cfg.ThirdWeight * bestThird
	}
}

// bestReply scores the best placement of kind on r's board, memoized for the
// length of one decision cycle.
func (p *Planner) bestReply(cy *cycle, r *Candidate, kind piece.Kind) (float64, bool) {
	pending := max(0, cy.in.Pending-r.Attack)
	key := replyKey(r.Board.Hash(), kind, r.Streaks, pending)
	if v, ok := p.cache.Get(key); ok {
		return v, true
	}
	ctx := p.context(cy, r.Streaks, pending)
	cs := Generate(GenInput{
		Board:   r.Board,
		Before:  r.Analysis,
		Kind:    kind,
		Streaks: r.Streaks,
	}, p.scoreFunc(ctx))
	if len(cs) == 0 {
		return 0, false
	}
	p.cache.Put(key, cs[0].Score)
	return cs[0].Score, true
}

// adjust applies the candidate's own status bonuses and, at low danger, the
// heavy shape-damage penalties and repair rewards.
func (p *Planner) adjust(cy *cycle, c *Candidate) float64 {
	adj := 0.0
	if c.Lines == 4 && !c.Spin {
		adj += 2
	}
	if c.Spin && c.Lines > 0 {
		adj += 2.5
	}
	if c.Qualifies() && cy.in.Streaks.B2B > 0 {
		adj += 1.5
	}

	if cy.danger < lowDanger {
		d := c.Delta
		adj += damage(d.Holes, 8, 4) +
			damage(d.HoleDepth, 1, 0.5) +
			damage(d.Cavities, 5, 2.5) +
			damage(d.Bumpiness, 0.5, 0.25) +
			damage(d.MaxHeight, 0.8, 0.4)
	}

	switch cy.strategy {
	case Downstack:
		if c.Lines > 0 && c.Lines <= 2 {
			adj += 1
		}
		if c.Delta.Holes < 0 {
			adj += 2 * float64(-c.Delta.Holes)
		}
	case SpinBuild:
		if c.Delta.SpinSlots > 0 {
			adj += 2
		}
	case SpinConvert:
		if c.Spin {
			adj += 3
		} else if c.Lines > 0 && c.Delta.SpinSlots < 0 {
			adj -= 2
		}
	case Opener:
		if c.Lines > 0 && !c.Qualifies() {
			adj -= 1.5
		}
	case Balanced:
		if c.Qualifies() {
			adj += 1
		}
	}
	return adj
}

// damage penalizes growth by grow per unit and rewards shrinkage by repair
// per unit.
func damage(delta int, grow, repair float64) float64 {
	if delta > 0 {
		return -grow * float64(delta)
	}
	return repair * float64(-delta)
}

// pick returns the best candidate or, with the mistake probability, one of
// the next best.
func (p *Planner) pick(pool []Candidate, cy *cycle) (Candidate, bool) {
	chance := p.mistakeChance(&pool[0], cy)
	if chance <= 0 || len(pool) < 2 || p.rng.Float64() >= chance {
		return pool[0], false
	}
	n := 3
	if cy.danger >= 1 || cy.in.Pending > 0 {
		n = 2
	}
	n = min(n, len(pool))
	i := p.rng.IntN(n)
	return pool[i], i != 0
}

const maxMistakeChance = 0.2

func (p *Planner) mistakeChance(top *Candidate, cy *cycle) float64 {
	if top.Clean() && cy.danger < lowDanger {
		return 0
	}
	pressure := cy.danger / MaxDanger
	chance := p.cfg.MistakeChance * (1 - 0.6*p.cfg.Aggression) * (1 - 0.8*pressure)
	return clamp(chance, 0, maxMistakeChance)
}

// replyKey folds everything a reply's score depends on into one cache key:
// the board, the piece, both streaks and the garbage still pending.
func replyKey(board uint64, kind piece.Kind, s rules.Streaks, pending int) uint64 {
	const prime = 1099511628211
	h := board
	for _, v := range [...]int{int(kind), s.Combo, s.B2B, pending} {
		h ^= uint64(int64(v))
		h *= prime
	}
	return h
}
