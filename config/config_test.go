package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockbattle/config"
)

func TestParse(t *testing.T) {
	t.Run("empty document is the default", func(t *testing.T) {
		p, err := config.Parse(strings.NewReader(""))
		require.NoError(t, err)
		want := config.Default()
		want.Normalize()
		if diff := cmp.Diff(want, p); diff != "" {
			t.Errorf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("overrides and clamps", func(t *testing.T) {
		doc := `
name: aggressive
seed: 7
rules:
  gravity: 500
planner:
  aggression: 2
  weights:
    holes: 9
bot:
  pieces_per_second: 4
`
		p, err := config.Parse(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "aggressive", p.Name)
		assert.Equal(t, uint64(7), p.Seed)
		assert.Equal(t, 60.0, p.Rules.Gravity)
		assert.Equal(t, 10, p.Rules.Width, "untouched fields keep defaults")
		assert.Equal(t, 1.0, p.Planner.Aggression)
		assert.Equal(t, 9.0, p.Planner.Weights.Holes)
		assert.Equal(t, config.Default().Planner.Weights.Bumpiness, p.Planner.Weights.Bumpiness)
		assert.Equal(t, 4.0, p.Bot.PiecesPerSecond)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := config.Parse(strings.NewReader("planner:\n  greed: 3\n"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := config.Parse(strings.NewReader("rules: [1, 2"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	in := config.Default()
	in.Name = "saved"
	in.Planner.MistakeChance = 0.2
	data, err := config.Marshal(in)
	require.NoError(t, err)

	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved", out.Name)
	assert.Equal(t, 0.2, out.Planner.MistakeChance)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
