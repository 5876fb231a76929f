package bot

import (
	"github.com/rs/zerolog"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/planner"
	"github.com/plus3/blockbattle/rules"
)

// Executor replays a plan on the live game. Whenever the plan cannot be
// reproduced exactly it drops whatever is in play instead.
type Executor struct {
	game Game
	log  zerolog.Logger

	// OnLock, if set, sees every lock the executor performs, forced drops
	// included.
	OnLock func(rules.LockResult)

	fallbacks int
}

func NewExecutor(game Game, log zerolog.Logger) *Executor {
	return &Executor{game: game, log: log}
}

// Fallbacks is the number of forced drops so far.
func (e *Executor) Fallbacks() int { return e.fallbacks }

// Execute applies plan and spawns the next piece. A nil plan, a kind that no
// longer matches the piece in play or an illegal target all fall back to a
// hard drop. It returns false when the game topped out.
func (e *Executor) Execute(plan *planner.Plan) bool {
	if plan == nil {
		return e.fallback("no-plan")
	}
	g := e.game
	c := plan.Candidate
	if plan.UseHold && !g.Hold() {
		return e.fallback("hold-refused")
	}
	if got := g.Active().Kind; got != c.Kind {
		e.log.Warn().Stringer("want", c.Kind).Stringer("got", got).Msg("kind-mismatch")
		return e.fallback("kind-mismatch")
	}
	if !g.Valid(c.Rotation, c.X, c.Y) || !g.SetPosition(c.Rotation, c.X, c.Y) {
		return e.fallback("illegal-position")
	}
	g.MarkRotation(plan.TreatAsRotation)

	res, ok := g.Lock()
	if !ok {
		e.log.Info().Msg("locked-out")
		return false
	}
	if e.OnLock != nil {
		e.OnLock(res)
	}
	return g.Spawn()
}

func (e *Executor) fallback(reason string) bool {
	e.fallbacks++
	e.log.Debug().Str("reason", reason).Msg("forced-drop")
	res, ok := e.game.HardDrop()
	if !ok {
		e.log.Info().Msg("locked-out")
		return false
	}
	if res.Kind != piece.None && e.OnLock != nil {
		e.OnLock(res)
	}
	return e.game.Spawn()
}
