package rules

import "github.com/plus3/blockbattle/piece"

// CanPlace reports whether kind at rotation fits with its anchor at (x, y).
// Every occupied cell must land inside the walls, above the floor and, for
// rows at or below 0, on an empty square. Rows above 0 are always open.
func CanPlace(b *Board, kind piece.Kind, rotation, x, y int) bool {
	shape, ok := piece.ShapeOf(kind, rotation)
	if !ok {
		return false
	}
	for _, c := range shape {
		cx, cy := x+c.X, y+c.Y
		if cx < 0 || cx >= b.width || cy >= b.height {
			return false
		}
		if cy >= 0 && b.cells[cy*b.width+cx] != Empty {
			return false
		}
	}
	return true
}

// DropLandingRows lists every anchor row, scanning down from the spawn row,
// where the piece fits and the row beneath does not. Overhangs can produce
// several resting depths in the same column.
func DropLandingRows(b *Board, kind piece.Kind, rotation, x int) []int {
	if _, ok := piece.ShapeOf(kind, rotation); !ok {
		return nil
	}
	var rows []int
	fits := CanPlace(b, kind, rotation, x, piece.SpawnRow)
	for y := piece.SpawnRow; y < b.height; y++ {
		below := CanPlace(b, kind, rotation, x, y+1)
		if fits && !below {
			rows = append(rows, y)
		}
		fits = below
	}
	return rows
}

// Place stamps the piece into a copy of b. It returns false when the placement
// is illegal: a cell outside the walls, below the floor, on an occupied square
// or left above row 0 (which would top the stack out).
func Place(b *Board, kind piece.Kind, rotation, x, y int) (*Board, bool) {
	shape, ok := piece.ShapeOf(kind, rotation)
	if !ok {
		return nil, false
	}
	for _, c := range shape {
		cx, cy := x+c.X, y+c.Y
		if cx < 0 || cx >= b.width || cy < 0 || cy >= b.height {
			return nil, false
		}
		if b.cells[cy*b.width+cx] != Empty {
			return nil, false
		}
	}
	out := b.Clone()
	for _, c := range shape {
		out.cells[(y+c.Y)*b.width+x+c.X] = KindCell(kind)
	}
	return out, true
}

// ClearFullLines removes every full row, lets the rows above fall and fills
// the top with empty rows. The relative order of surviving rows is kept.
func ClearFullLines(b *Board) (*Board, int) {
	out := NewBoard(b.width, b.height)
	write := b.height - 1
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			cleared++
			continue
		}
		copy(out.cells[write*b.width:(write+1)*b.width], b.cells[y*b.width:(y+1)*b.width])
		write--
	}
	return out, cleared
}

// IsAllClear reports whether the board holds no blocks at all.
func IsAllClear(b *Board) bool {
	for _, c := range b.cells {
		if c != Empty {
			return false
		}
	}
	return true
}

// spinCorners are the diagonal corners of the 3×3 box at a T anchor.
var spinCorners = [4]piece.Cell{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}

// IsSpin applies the three-corner rule to a locked piece. preClear is the
// board with the piece stamped in but before lines are removed. Only T pieces
// that clear at least one line qualify; out-of-bounds corners count as filled.
func IsSpin(preClear *Board, kind piece.Kind, x, y, lines int) bool {
	if kind != piece.T || lines < 1 {
		return false
	}
	return CornersFilled(preClear, x, y) >= 3
}

// CornersFilled counts the blocked diagonal corners of the 3×3 box anchored
// at (x, y).
func CornersFilled(b *Board, x, y int) int {
	n := 0
	for _, c := range spinCorners {
		if b.Blocked(x+c.X, y+c.Y) {
			n++
		}
	}
	return n
}
