package rules

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockbattle/piece"
)

// Bag is the shuffled seven-bag randomizer. Every kind appears exactly once
// per bag, so no kind is missing for more than 12 pieces in a row. The same
// seed always produces the same sequence.
type Bag struct {
	src     *rand.PCG
	rng     *rand.Rand
	queue   []piece.Kind
	horizon int
}

// NewBag seeds a bag and fills the preview queue to horizon pieces.
func NewBag(seed uint64, horizon int) *Bag {
	src := rand.NewPCG(seed, seed^0x5851f42d4c957f2d)
	b := &Bag{
		src:     src,
		rng:     rand.New(src),
		horizon: max(horizon, 1),
	}
	b.refill()
	return b
}

func (b *Bag) refill() {
	for len(b.queue) < b.horizon {
		bag := piece.Kinds
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.queue = append(b.queue, bag[:]...)
	}
}

// Next pops the front of the queue and tops it back up.
func (b *Bag) Next() piece.Kind {
	k := b.queue[0]
	b.queue = b.queue[1:]
	b.refill()
	return k
}

// Queue returns a copy of the upcoming kinds, front first.
func (b *Bag) Queue() []piece.Kind {
	out := make([]piece.Kind, len(b.queue))
	copy(out, b.queue)
	return out
}

// SetQueue replaces the upcoming kinds. Unknown kinds are dropped and the
// queue is refilled to the horizon.
func (b *Bag) SetQueue(kinds []piece.Kind) {
	b.queue = b.queue[:0]
	for _, k := range kinds {
		if k.Valid() {
			b.queue = append(b.queue, k)
		}
	}
	b.refill()
}

// State marshals the generator so both participants can stay in lockstep.
func (b *Bag) State() ([]byte, error) {
	data, err := b.src.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal bag: %w", err)
	}
	return data, nil
}

// SetState restores a generator marshalled by State.
func (b *Bag) SetState(data []byte) error {
	if err := b.src.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("unmarshal bag: %w", err)
	}
	return nil
}
