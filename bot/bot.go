// Package bot drives a rules engine with the planner: it decides when to
// think, asks the planner for a placement and replays that placement on the
// live engine.
package bot

import (
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/planner"
	"github.com/plus3/blockbattle/rules"
)

// State is the read-only view of a live game the bot decides from.
type State interface {
	Board() *rules.Board
	Active() rules.Active
	Held() piece.Kind
	CanHold() bool
	Queue() []piece.Kind
	Streaks() rules.Streaks
	PendingGarbage() int
	PiecesPlaced() int
}

// Actions are the primitives the executor uses to apply a plan.
type Actions interface {
	Hold() bool
	SetPosition(rotation, x, y int) bool
	Valid(rotation, x, y int) bool
	MarkRotation(rotated bool)
	Lock() (rules.LockResult, bool)
	Spawn() bool
	HardDrop() (rules.LockResult, bool)
}

// Game is a live game the bot can both read and play. *rules.Engine
// satisfies it.
type Game interface {
	State
	Actions
}

var _ Game = (*rules.Engine)(nil)

// Config controls how fast the bot plays.
type Config struct {
	// PiecesPerSecond in [0.2, 20] sets the base think interval.
	PiecesPerSecond float64 `yaml:"pieces_per_second"`
	// Jitter in [0, 0.5] is the relative random spread of each interval.
	Jitter float64 `yaml:"jitter"`
}

// DefaultConfig is a moderate human-like pace.
func DefaultConfig() Config {
	return Config{PiecesPerSecond: 2, Jitter: 0.15}
}

// Normalize clamps the configuration into range.
func (c *Config) Normalize() {
	c.PiecesPerSecond = max(0.2, min(20, c.PiecesPerSecond))
	c.Jitter = max(0, min(0.5, c.Jitter))
}

// dangerSpeedup is how much of the interval full danger removes.
const dangerSpeedup = 0.4

// Stats are cumulative bot counters.
type Stats struct {
	Decisions int
	Fallbacks int
	Mistakes  int
	Holds     int
}

// Bot thinks at most once per interval and plays one piece per thought.
type Bot struct {
	cfg     Config
	game    Game
	planner *planner.Planner
	exec    *Executor
	log     zerolog.Logger
	uniform func() float64

	elapsed  float64
	interval float64
	stats    Stats
}

// New creates a bot playing game. The logger may be zerolog.Nop().
func New(game Game, cfg Config, p *planner.Planner, log zerolog.Logger) *Bot {
	cfg.Normalize()
	b := &Bot{
		cfg:     cfg,
		game:    game,
		planner: p,
		log:     log,
		uniform: func() float64 { return float64(frand.Uint64n(1<<53)) / (1 << 53) },
	}
	b.exec = NewExecutor(game, log)
	b.exec.OnLock = func(res rules.LockResult) {
		p.Record(res.Lines, res.Spin)
	}
	b.interval = b.thinkInterval(0)
	return b
}

func (b *Bot) Stats() Stats                { return b.stats }
func (b *Bot) Planner() *planner.Planner   { return b.planner }
func (b *Bot) Executor() *Executor         { return b.exec }
func (b *Bot) Interval() float64           { return b.interval }
func (b *Bot) SetUniform(f func() float64) { b.uniform = f }

// thinkInterval is the pause before the next decision: the base interval,
// shortened by danger and spread by jitter.
func (b *Bot) thinkInterval(danger float64) float64 {
	base := 1 / b.cfg.PiecesPerSecond
	base *= 1 - dangerSpeedup*min(danger, planner.MaxDanger)/planner.MaxDanger
	if b.cfg.Jitter > 0 {
		base *= 1 + b.cfg.Jitter*(2*b.uniform()-1)
	}
	return base
}

// Update advances the bot clock by dt seconds and runs a decision cycle once
// the think interval has elapsed. It returns false exactly when a spawn
// failed and the game is over.
func (b *Bot) Update(dt float64) bool {
	b.elapsed += dt
	if b.elapsed < b.interval {
		return true
	}
	b.elapsed = min(b.elapsed-b.interval, b.interval)

	alive := b.Decide()
	b.interval = b.thinkInterval(b.planner.LastDecision().Danger)
	return alive
}

// Decide runs one decision cycle immediately.
func (b *Bot) Decide() bool {
	g := b.game
	in := planner.Input{
		Board:        g.Board(),
		Active:       g.Active().Kind,
		Held:         g.Held(),
		CanHold:      g.CanHold(),
		Queue:        g.Queue(),
		Streaks:      g.Streaks(),
		Pending:      g.PendingGarbage(),
		PiecesPlaced: g.PiecesPlaced(),
	}
	plan := b.planner.Plan(in)
	d := b.planner.LastDecision()
	b.stats.Decisions++

	if plan != nil {
		c := plan.Candidate
		if d.Mistake {
			b.stats.Mistakes++
		}
		if plan.UseHold {
			b.stats.Holds++
		}
		b.log.Debug().
			Str("strategy", d.Strategy.String()).
			Float64("danger", d.Danger).
			Stringer("kind", c.Kind).
			Int("rotation", c.Rotation).
			Int("x", c.X).
			Int("y", c.Y).
			Bool("hold", plan.UseHold).
			Bool("mistake", d.Mistake).
			Float64("total", c.Total).
			Msg("plan-chosen")
	}

	before := b.exec.Fallbacks()
	alive := b.exec.Execute(plan)
	b.stats.Fallbacks += b.exec.Fallbacks() - before
	return alive
}
