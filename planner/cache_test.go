package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockbattle/piece"
	"github.com/plus3/blockbattle/rules"
)

func TestReplyKey(t *testing.T) {
	board := rules.ParseBoard(10, 20, "GGGG.GGGGG").Hash()
	base := replyKey(board, piece.T, rules.NoStreaks(), 0)

	assert.Equal(t, base, replyKey(board, piece.T, rules.NoStreaks(), 0))

	others := map[string]uint64{
		"board":   replyKey(rules.ParseBoard(10, 20, "GGGGG.GGGG").Hash(), piece.T, rules.NoStreaks(), 0),
		"kind":    replyKey(board, piece.I, rules.NoStreaks(), 0),
		"combo":   replyKey(board, piece.T, rules.Streaks{Combo: 2, B2B: 0}, 0),
		"b2b":     replyKey(board, piece.T, rules.Streaks{Combo: -1, B2B: 1}, 0),
		"pending": replyKey(board, piece.T, rules.NoStreaks(), 4),
	}
	for name, key := range others {
		assert.NotEqual(t, base, key, name)
	}
}
