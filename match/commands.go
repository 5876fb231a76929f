package match

// Commands buffers cross-participant effects until the end of a frame, so
// every system in a frame observes the same state regardless of order.
type Commands struct {
	sends  []garbageSend
	defers []func()
}

type garbageSend struct {
	to    int
	lines int
}

func newCommands() *Commands {
	return &Commands{}
}

// SendGarbage queues lines of garbage for the player at index to.
func (c *Commands) SendGarbage(to, lines int) {
	if lines <= 0 {
		return
	}
	c.sends = append(c.sends, garbageSend{to: to, lines: lines})
}

// Defer queues fn to run after all garbage has been delivered.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush delivers queued garbage in send order, runs deferred funcs and resets
// the buffer.
func (c *Commands) Flush(m *Match) {
	for _, s := range c.sends {
		p := m.Player(s.to)
		if p == nil || p.Engine.ToppedOut() {
			continue
		}
		p.Engine.ReceiveGarbage(s.lines)
		p.received += s.lines
	}

	for _, fn := range c.defers {
		fn()
	}

	c.sends = c.sends[:0]
	c.defers = c.defers[:0]
}
