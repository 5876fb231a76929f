// Package piece describes the seven tetromino kinds: their rotation shapes,
// wall-kick tables and spawn geometry. Everything here is a read-only lookup
// table built once at init.
package piece

import "strings"

// Kind identifies a tetromino. The zero value None is not a playable piece.
type Kind uint8

const (
	None Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// Count is the number of playable kinds.
const Count = 7

// Rotations is the number of rotation states every kind has.
const Rotations = 4

// Kinds lists every playable kind in bag order.
var Kinds = [Count]Kind{I, O, T, S, Z, J, L}

var kindNames = [...]string{"-", "I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= L
}

// ParseKind maps a single-letter name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k := I; k <= L; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return None, false
}

// Cell is an occupied offset inside a piece's bounding box, relative to the
// box's top-left corner. Y grows downward.
type Cell struct {
	X, Y int
}

// Shape is the four occupied cells of one rotation state.
type Shape [4]Cell

// Offset is a positional nudge tried during a rotation.
type Offset struct {
	DX, DY int
}

var shapeRows = map[Kind][Rotations][]string{
	I: {
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	O: {
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
		{"##", "##"},
	},
	T: {
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
	},
	S: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
		{"...", ".##", "##."},
		{"#..", "##.", ".#."},
	},
	Z: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
		{"...", "##.", ".##"},
		{".#.", "##.", "#.."},
	},
	J: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	L: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
}

var (
	shapes   [L + 1][Rotations]Shape
	boxSizes [L + 1]int
)

func init() {
	for kind, rotations := range shapeRows {
		boxSizes[kind] = len(rotations[0])
		for rot, rows := range rotations {
			n := 0
			for y, row := range rows {
				for x, ch := range row {
					if ch == '#' {
						shapes[kind][rot][n] = Cell{X: x, Y: y}
						n++
					}
				}
			}
			if n != 4 {
				panic("piece: shape " + kind.String() + " does not have 4 cells")
			}
		}
	}
}

// ShapeOf returns the occupied cells of kind at rotation. The second result is
// false for an unknown kind or rotation; callers treat that as "no legal
// placement".
func ShapeOf(kind Kind, rotation int) (Shape, bool) {
	if !kind.Valid() || rotation < 0 || rotation >= Rotations {
		return Shape{}, false
	}
	return shapes[kind][rotation], true
}

// BoxSize is the edge length of the kind's bounding box (0 for unknown kinds).
func BoxSize(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return boxSizes[kind]
}

// SpawnRow is the row a freshly spawned piece's bounding box starts on. It
// sits in the hidden margin above the visible board.
const SpawnRow = -1

// Spawn returns the anchor a new piece of kind appears at.
func Spawn(kind Kind) (x, y int) {
	if kind == O {
		return 4, SpawnRow
	}
	return 3, SpawnRow
}
