package piece_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockbattle/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapesHaveFourCellsInsideTheirBox(t *testing.T) {
	for _, kind := range piece.Kinds {
		size := piece.BoxSize(kind)
		for rot := 0; rot < piece.Rotations; rot++ {
			t.Run(fmt.Sprintf("%s/%d", kind, rot), func(t *testing.T) {
				shape, ok := piece.ShapeOf(kind, rot)
				require.True(t, ok)

				seen := make(map[piece.Cell]bool)
				for _, c := range shape {
					assert.GreaterOrEqual(t, c.X, 0)
					assert.GreaterOrEqual(t, c.Y, 0)
					assert.Less(t, c.X, size)
					assert.Less(t, c.Y, size)
					seen[c] = true
				}
				assert.Len(t, seen, 4)
			})
		}
	}
}

func TestShapeOfUnknown(t *testing.T) {
	_, ok := piece.ShapeOf(piece.None, 0)
	assert.False(t, ok)

	_, ok = piece.ShapeOf(piece.Kind(42), 0)
	assert.False(t, ok)

	_, ok = piece.ShapeOf(piece.T, 4)
	assert.False(t, ok)

	_, ok = piece.ShapeOf(piece.T, -1)
	assert.False(t, ok)
}

func TestTShapeSpawnOrientation(t *testing.T) {
	shape, ok := piece.ShapeOf(piece.T, 0)
	require.True(t, ok)
	assert.Equal(t, piece.Shape{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, shape)
}

func TestKicks(t *testing.T) {
	t.Run("every quarter turn has five offsets starting at zero", func(t *testing.T) {
		for _, kind := range []piece.Kind{piece.I, piece.T, piece.S, piece.Z, piece.J, piece.L} {
			for from := 0; from < piece.Rotations; from++ {
				for _, dir := range []int{1, -1} {
					to := piece.Rotate(from, dir)
					kicks := piece.Kicks(kind, from, to)
					require.Len(t, kicks, 5, "%s %d->%d", kind, from, to)
					assert.Equal(t, piece.Offset{}, kicks[0])
				}
			}
		}
	})

	t.Run("opposite transitions mirror each other", func(t *testing.T) {
		for _, kind := range []piece.Kind{piece.I, piece.T} {
			for from := 0; from < piece.Rotations; from++ {
				to := piece.Rotate(from, 1)
				forward := piece.Kicks(kind, from, to)
				back := piece.Kicks(kind, to, from)
				for i := range forward {
					assert.Equal(t, -forward[i].DX, back[i].DX)
					assert.Equal(t, -forward[i].DY, back[i].DY)
				}
			}
		}
	})

	t.Run("O only tries its own position", func(t *testing.T) {
		assert.Equal(t, []piece.Offset{{0, 0}}, piece.Kicks(piece.O, 0, 1))
	})

	t.Run("unknown kind and half turns have no kicks", func(t *testing.T) {
		assert.Nil(t, piece.Kicks(piece.None, 0, 1))
		assert.Nil(t, piece.Kicks(piece.T, 0, 2))
	})
}

func TestRotate(t *testing.T) {
	assert.Equal(t, 1, piece.Rotate(0, 1))
	assert.Equal(t, 3, piece.Rotate(0, -1))
	assert.Equal(t, 0, piece.Rotate(3, 1))
	assert.Equal(t, 2, piece.Rotate(0, 2))
}

func TestParseKind(t *testing.T) {
	for _, kind := range piece.Kinds {
		got, ok := piece.ParseKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}
	_, ok := piece.ParseKind("x")
	assert.False(t, ok)
}

func TestSpawn(t *testing.T) {
	x, y := piece.Spawn(piece.O)
	assert.Equal(t, 4, x)
	assert.Equal(t, piece.SpawnRow, y)

	x, _ = piece.Spawn(piece.I)
	assert.Equal(t, 3, x)
}
