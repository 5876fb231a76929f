// Package match runs two participants side by side: it advances their
// engines, lets bots play, routes attacks between them and decides the
// outcome.
package match

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/plus3/blockbattle/bot"
	"github.com/plus3/blockbattle/planner"
	"github.com/plus3/blockbattle/rules"
)

// NoWinner is the winner index before the match ends and after a draw.
const NoWinner = -1

// Player is one participant.
type Player struct {
	Index  int
	Name   string
	Engine *rules.Engine
	// Bot is nil for a participant driven from outside the match loop.
	Bot *bot.Bot
	// Paused bots skip their decision cycles.
	Paused bool

	received int
}

// Received is the total garbage delivered to the player so far.
func (p *Player) Received() int { return p.received }

// Options configures a new match.
type Options struct {
	Seed    uint64
	Rules   rules.Config
	Planner planner.Config
	Bot     bot.Config
	// Names of the two players; empty names default to "p1" and "p2".
	Names [2]string
	// Bots marks which players are played by a bot.
	Bots [2]bool
	Log  zerolog.Logger
}

// DefaultOptions is a bot-versus-bot match with default tuning.
func DefaultOptions(seed uint64) Options {
	return Options{
		Seed:    seed,
		Rules:   rules.DefaultConfig(),
		Planner: planner.DefaultConfig(),
		Bot:     bot.DefaultConfig(),
		Bots:    [2]bool{true, true},
		Log:     zerolog.Nop(),
	}
}

// Match is two players sharing a seed, so both see the same piece sequence.
type Match struct {
	ID      uuid.UUID
	Seed    uint64
	Players [2]*Player

	log    zerolog.Logger
	frames int64
	over   bool
	winner int
}

// New creates a match with freshly spawned pieces for both players.
func New(opts Options) *Match {
	m := &Match{
		ID:     uuid.New(),
		Seed:   opts.Seed,
		winner: NoWinner,
	}
	m.log = opts.Log.With().Str("match", m.ID.String()).Logger()

	for i := range m.Players {
		name := opts.Names[i]
		if name == "" {
			name = [2]string{"p1", "p2"}[i]
		}
		e := rules.NewEngine(opts.Rules, opts.Seed)
		p := &Player{Index: i, Name: name, Engine: e}
		if opts.Bots[i] {
			log := m.log.With().Str("player", name).Logger()
			p.Bot = bot.New(e, opts.Bot, planner.New(opts.Planner), log)
		}
		m.Players[i] = p
	}
	for _, p := range m.Players {
		if !p.Engine.Spawn() {
			m.log.Warn().Str("player", p.Name).Msg("spawn-blocked")
		}
	}
	return m
}

// Player returns the player at index i, or nil.
func (m *Match) Player(i int) *Player {
	if i < 0 || i >= len(m.Players) {
		return nil
	}
	return m.Players[i]
}

// Opponent returns the other player.
func (m *Match) Opponent(p *Player) *Player {
	return m.Players[1-p.Index]
}

func (m *Match) Over() bool    { return m.over }
func (m *Match) Winner() int   { return m.winner }
func (m *Match) Frames() int64 { return m.frames }

// finish ends the match. Later calls are ignored.
func (m *Match) finish(winner int) {
	if m.over {
		return
	}
	m.over = true
	m.winner = winner

	ev := m.log.Info().Int64("frames", m.frames)
	if w := m.Player(winner); w != nil {
		ev = ev.Str("winner", w.Name)
	} else {
		ev = ev.Bool("draw", true)
	}
	for _, p := range m.Players {
		c := p.Engine.Counters()
		ev = ev.Dict(p.Name, zerolog.Dict().
			Int("pieces", c.PiecesPlaced).
			Int("lines", c.LinesCleared).
			Int("sent", c.AttacksSent).
			Int("received", p.received))
	}
	ev.Msg("match-over")
}
