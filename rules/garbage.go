package rules

import (
	"fmt"
	"math/rand/v2"
)

// MaxGarbageLines caps the size of a single pending-garbage entry.
const MaxGarbageLines = 10

// GarbageEntry is one unresolved incoming delivery. Every row it adds is full
// except at HoleColumn.
type GarbageEntry struct {
	Lines      int
	HoleColumn int
}

// GarbageQueue is the FIFO of pending garbage.
type GarbageQueue struct {
	entries []GarbageEntry
}

// Push appends an entry to the back of the queue.
func (q *GarbageQueue) Push(e GarbageEntry) {
	if e.Lines <= 0 {
		return
	}
	q.entries = append(q.entries, e)
}

// Len is the number of pending entries.
func (q *GarbageQueue) Len() int { return len(q.entries) }

// Total is the number of pending rows across all entries.
func (q *GarbageQueue) Total() int {
	n := 0
	for _, e := range q.entries {
		n += e.Lines
	}
	return n
}

// Entries returns a copy of the pending entries, front first.
func (q *GarbageQueue) Entries() []GarbageEntry {
	out := make([]GarbageEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Clone returns an independent copy of the queue.
func (q *GarbageQueue) Clone() GarbageQueue {
	return GarbageQueue{entries: q.Entries()}
}

// Reset replaces the queue contents.
func (q *GarbageQueue) Reset(entries []GarbageEntry) {
	q.entries = q.entries[:0]
	for _, e := range entries {
		q.Push(e)
	}
}

// Cancel spends outgoing attack against pending garbage, front to back, and
// returns the attack left over. When attack covers the whole queue the queue
// empties; otherwise the first entry that absorbs the remainder is partially
// decremented and nothing is left to send.
func (q *GarbageQueue) Cancel(attack int) int {
	if attack <= 0 {
		return 0
	}
	total := q.Total()
	if attack >= total {
		q.entries = q.entries[:0]
		return attack - total
	}
	for attack > 0 && len(q.entries) > 0 {
		front := &q.entries[0]
		if front.Lines <= attack {
			attack -= front.Lines
			q.entries = q.entries[1:]
			continue
		}
		front.Lines -= attack
		attack = 0
	}
	return 0
}

// Apply raises up to limit garbage rows into a copy of b, consuming entries
// from the front. Each row pushes the stack up one, discarding the top row.
// It returns the new board and the number of rows applied.
func (q *GarbageQueue) Apply(b *Board, limit int) (*Board, int) {
	out := b.Clone()
	applied := 0
	for applied < limit && len(q.entries) > 0 {
		front := &q.entries[0]
		n := min(front.Lines, limit-applied)
		for i := 0; i < n; i++ {
			raise(out, front.HoleColumn)
		}
		applied += n
		front.Lines -= n
		if front.Lines == 0 {
			q.entries = q.entries[1:]
		}
	}
	return out, applied
}

func raise(b *Board, hole int) {
	w := b.width
	copy(b.cells, b.cells[w:])
	bottom := b.cells[(b.height-1)*w:]
	for x := range bottom {
		if x == hole {
			bottom[x] = Empty
		} else {
			bottom[x] = Garbage
		}
	}
}

// HoleWalkConfig tunes how the garbage hole drifts between entries.
type HoleWalkConfig struct {
	// JumpChance is the base probability of relocating the hole uniformly.
	JumpChance float64 `yaml:"jump_chance"`
	// JumpPerAttack raises the jump probability per line of attack strength.
	JumpPerAttack float64 `yaml:"jump_per_attack"`
	StartChance   float64 `yaml:"start_chance"`
	StopChance    float64 `yaml:"stop_chance"`
	ReverseChance float64 `yaml:"reverse_chance"`
	DoubleChance  float64 `yaml:"double_chance"`
}

// DefaultHoleWalk returns the reference hole-walk tuning.
func DefaultHoleWalk() HoleWalkConfig {
	return HoleWalkConfig{
		JumpChance:    0.08,
		JumpPerAttack: 0.015,
		StartChance:   0.5,
		StopChance:    0.2,
		ReverseChance: 0.15,
		DoubleChance:  0.1,
	}
}

func (c *HoleWalkConfig) normalize() {
	c.JumpChance = clampFloat(c.JumpChance, 0, 1)
	c.JumpPerAttack = clampFloat(c.JumpPerAttack, 0, 0.1)
	c.StartChance = clampFloat(c.StartChance, 0, 1)
	c.StopChance = clampFloat(c.StopChance, 0, 1)
	c.ReverseChance = clampFloat(c.ReverseChance, 0, 1)
	c.DoubleChance = clampFloat(c.DoubleChance, 0, 1)
}

// HoleWalker derives each new garbage hole column from the previous one with
// a seeded random walk, so both participants of a match see the same garbage
// geometry.
type HoleWalker struct {
	cfg      HoleWalkConfig
	width    int
	src      *rand.PCG
	rng      *rand.Rand
	hole     int
	velocity int
}

// NewHoleWalker seeds a walker for a board width columns wide.
func NewHoleWalker(width int, seed uint64, cfg HoleWalkConfig) *HoleWalker {
	cfg.normalize()
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	w := &HoleWalker{
		cfg:   cfg,
		width: width,
		src:   src,
		rng:   rand.New(src),
	}
	w.hole = w.rng.IntN(width)
	return w
}

// Hole is the column the last entry used.
func (w *HoleWalker) Hole() int { return w.hole }

// Next advances the walk for an entry of the given attack strength and
// returns the new hole column.
func (w *HoleWalker) Next(strength int) int {
	jump := min(w.cfg.JumpChance+w.cfg.JumpPerAttack*float64(max(strength, 0)), 1)
	if w.rng.Float64() < jump {
		w.hole = w.rng.IntN(w.width)
		w.velocity = 0
		return w.hole
	}

	if w.velocity == 0 {
		if w.rng.Float64() < w.cfg.StartChance {
			w.velocity = 1
			if w.rng.IntN(2) == 0 {
				w.velocity = -1
			}
		}
	} else {
		stop := w.rng.Float64() < w.cfg.StopChance
		reverse := w.rng.Float64() < w.cfg.ReverseChance
		switch {
		case stop:
			w.velocity = 0
		case reverse:
			w.velocity = -w.velocity
		}
	}

	step := w.velocity
	if step != 0 && w.rng.Float64() < w.cfg.DoubleChance {
		step *= 2
	}
	w.hole += step

	if w.hole <= 0 {
		w.hole = 0
		if w.velocity < 0 {
			w.velocity = 1
		}
	}
	if w.hole >= w.width-1 {
		w.hole = w.width - 1
		if w.velocity > 0 {
			w.velocity = -1
		}
	}
	return w.hole
}

// Entries splits an incoming attack into entries of at most MaxGarbageLines
// rows, each with its own walked hole column.
func (w *HoleWalker) Entries(lines int) []GarbageEntry {
	var out []GarbageEntry
	for lines > 0 {
		n := min(lines, MaxGarbageLines)
		out = append(out, GarbageEntry{Lines: n, HoleColumn: w.Next(n)})
		lines -= n
	}
	return out
}

// WalkerState is the serializable state of a HoleWalker.
type WalkerState struct {
	Source   []byte
	Hole     int
	Velocity int
}

// State captures the walker so a peer can continue the identical sequence.
func (w *HoleWalker) State() (WalkerState, error) {
	src, err := w.src.MarshalBinary()
	if err != nil {
		return WalkerState{}, fmt.Errorf("marshal hole walker: %w", err)
	}
	return WalkerState{Source: src, Hole: w.hole, Velocity: w.velocity}, nil
}

// SetState restores a state produced by State.
func (w *HoleWalker) SetState(s WalkerState) error {
	if err := w.src.UnmarshalBinary(s.Source); err != nil {
		return fmt.Errorf("unmarshal hole walker: %w", err)
	}
	w.hole = clampInt(s.Hole, 0, w.width-1)
	w.velocity = clampInt(s.Velocity, -1, 1)
	return nil
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
