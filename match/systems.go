package match

// BotSystem lets every bot-driven player think and play.
type BotSystem struct {
	Decisions int
}

func (s *BotSystem) Execute(frame *Frame) {
	if frame.Match.Over() {
		return
	}
	for _, p := range frame.Match.Players {
		if p.Bot == nil || p.Paused || p.Engine.ToppedOut() {
			continue
		}
		before := p.Bot.Stats().Decisions
		p.Bot.Update(frame.DeltaTime)
		s.Decisions += p.Bot.Stats().Decisions - before
	}
}

// GravitySystem advances gravity and lock delay for players without a bot.
// Bots place every piece directly, so their engines are left alone.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	if frame.Match.Over() {
		return
	}
	for _, p := range frame.Match.Players {
		if p.Bot != nil {
			continue
		}
		p.Engine.Tick(frame.DeltaTime)
	}
}

// GarbageSystem collects each player's outgoing attack and queues it for the
// opponent. Delivery happens when the frame's commands are flushed, so an
// attack sent this frame cannot be cancelled by the receiver's lock in the
// same frame.
type GarbageSystem struct {
	Sent [2]int
}

func (s *GarbageSystem) Execute(frame *Frame) {
	m := frame.Match
	for _, p := range m.Players {
		lines := p.Engine.TakeOutgoing()
		if lines <= 0 || m.Over() {
			continue
		}
		s.Sent[p.Index] += lines
		frame.Commands.SendGarbage(m.Opponent(p).Index, lines)
	}
}

// OutcomeSystem ends the match once a player has topped out. Both topping out
// in the same frame is a draw.
type OutcomeSystem struct{}

func (s *OutcomeSystem) Execute(frame *Frame) {
	m := frame.Match
	if m.Over() {
		return
	}
	a, b := m.Players[0].Engine.ToppedOut(), m.Players[1].Engine.ToppedOut()
	switch {
	case a && b:
		frame.Commands.Defer(func() { m.finish(NoWinner) })
	case a:
		frame.Commands.Defer(func() { m.finish(1) })
	case b:
		frame.Commands.Defer(func() { m.finish(0) })
	}
}
