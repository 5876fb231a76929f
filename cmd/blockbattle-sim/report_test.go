package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockbattle/match"
)

func TestReport(t *testing.T) {
	opts := match.DefaultOptions(3)
	opts.Planner.MistakeChance = 0
	opts.Bot.PiecesPerSecond = 20
	m := match.New(opts)
	s := match.NewDefaultScheduler(m)
	for i := 0; i < 10; i++ {
		s.Once(0.05)
	}

	r := &Report{Profile: "test", Matches: 1, MaxFrames: 10}
	r.Add(m, s.GetStats())
	r.Finalize()
	assert.Equal(t, 1, r.Abandoned)
	assert.Equal(t, int64(10), r.Frames.Avg)
	assert.Len(t, r.Systems, 4)
	assert.Positive(t, r.Players[0].Pieces)

	var out bytes.Buffer
	require.NoError(t, r.Generate(&out))
	assert.Contains(t, out.String(), "p1 wins:** 0")
	assert.Contains(t, out.String(), "BotSystem")
}
