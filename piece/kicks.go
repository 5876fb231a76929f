package piece

// Super Rotation System kick tables. The published tables use y-up
// coordinates; the offsets below are already flipped so +DY moves down.

type transition struct {
	from, to int
}

var jlstzKicks = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var oKicks = []Offset{{0, 0}}

// Kicks returns the ordered offsets to try when rotating kind from one
// rotation state to another. The first offset that yields a legal position
// wins. Nil means the transition is not a single quarter turn or the kind is
// unknown.
func Kicks(kind Kind, from, to int) []Offset {
	if !kind.Valid() {
		return nil
	}
	if kind == O {
		return oKicks
	}
	table := jlstzKicks
	if kind == I {
		table = iKicks
	}
	return table[transition{from, to}]
}

// Rotate returns the rotation state reached from rotation by dir quarter
// turns (positive is clockwise).
func Rotate(rotation, dir int) int {
	return ((rotation+dir)%Rotations + Rotations) % Rotations
}
