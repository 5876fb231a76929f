// Package analysis turns a board into the feature vector the planner scores.
// Every function here is pure: the board is only read.
package analysis

import "github.com/plus3/blockbattle/rules"

// Analysis is the derived feature vector of one board.
type Analysis struct {
	// Heights is the stack height of each column, 0 for an empty column.
	Heights []int
	// ColumnHoles is the number of covered empty cells in each column.
	ColumnHoles []int

	Holes int
	// HoleDepth sums, over every hole, the filled cells above it.
	HoleDepth       int
	Bumpiness       int
	AggregateHeight int
	MaxHeight       int
	RowTransitions  int
	ColTransitions  int
	WellCells       int
	DeepestWell     int
	Cavities        int
	SpinSlots       int
	EdgeWellDepth   int
	EdgeWellHoles   int
	// EdgeWellColumn is 0 or Width-1, or -1 when neither edge is a well.
	EdgeWellColumn    int
	CenterWellPenalty int
	// NearFullRows counts rows missing one or two cells.
	NearFullRows int
}

// Analyze computes the full feature vector of b.
func Analyze(b *rules.Board) Analysis {
	w, h := b.Width(), b.Height()
	a := Analysis{
		Heights:     make([]int, w),
		ColumnHoles: make([]int, w),
	}

	for x := 0; x < w; x++ {
		top := h
		for y := 0; y < h; y++ {
			if b.At(x, y) != rules.Empty {
				top = y
				break
			}
		}
		a.Heights[x] = h - top

		above := 0
		for y := top; y < h; y++ {
			if b.At(x, y) != rules.Empty {
				above++
				continue
			}
			a.ColumnHoles[x]++
			a.HoleDepth += above
		}
		a.Holes += a.ColumnHoles[x]
		a.AggregateHeight += a.Heights[x]
		a.MaxHeight = max(a.MaxHeight, a.Heights[x])
		if x > 0 {
			a.Bumpiness += abs(a.Heights[x] - a.Heights[x-1])
		}
	}

	a.RowTransitions = rowTransitions(b)
	a.ColTransitions = colTransitions(b)
	a.WellCells, a.DeepestWell = wells(b)
	a.Cavities = cavities(b)
	a.SpinSlots = SpinSlots(b)
	a.NearFullRows = nearFullRows(b)
	edgeWell(&a)
	a.CenterWellPenalty = centerWellPenalty(a.Heights)
	return a
}

// rowTransitions counts filled/empty changes along each row. The walls count
// as filled, so an empty row contributes two.
func rowTransitions(b *rules.Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		prev := true
		for x := 0; x < b.Width(); x++ {
			filled := b.At(x, y) != rules.Empty
			if filled != prev {
				n++
			}
			prev = filled
		}
		if !prev {
			n++
		}
	}
	return n
}

// colTransitions counts filled/empty changes down each column, including the
// change from the last row to the solid floor.
func colTransitions(b *rules.Board) int {
	n := 0
	for x := 0; x < b.Width(); x++ {
		prev := false
		for y := 0; y < b.Height(); y++ {
			filled := b.At(x, y) != rules.Empty
			if filled != prev {
				n++
			}
			prev = filled
		}
		if !prev {
			n++
		}
	}
	return n
}

// wells sums the running depth of every well cell and reports the deepest
// run. A well cell is empty with both horizontal neighbors blocked.
func wells(b *rules.Board) (total, deepest int) {
	for x := 0; x < b.Width(); x++ {
		depth := 0
		for y := 0; y < b.Height(); y++ {
			if b.At(x, y) != rules.Empty {
				depth = 0
				continue
			}
			if b.Blocked(x-1, y) && b.Blocked(x+1, y) {
				depth++
				total += depth
				deepest = max(deepest, depth)
				continue
			}
			depth = 0
		}
	}
	return total, deepest
}

// cavities counts empty cells that are roofed and walled in on both sides.
func cavities(b *rules.Board) int {
	n := 0
	for y := 1; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != rules.Empty || b.At(x, y-1) == rules.Empty {
				continue
			}
			if b.Blocked(x-1, y) && b.Blocked(x+1, y) {
				n++
			}
		}
	}
	return n
}

// SpinSlots counts 3×3 windows shaped like a spin opportunity: an empty
// center with at least three blocked corners, a blocked roof above the center,
// blocked support below it and an open cell on at least one side.
func SpinSlots(b *rules.Board) int {
	n := 0
	for y := -1; y <= b.Height()-2; y++ {
		for x := -1; x <= b.Width()-2; x++ {
			if isSpinSlot(b, x, y) {
				n++
			}
		}
	}
	return n
}

func isSpinSlot(b *rules.Board, x, y int) bool {
	cx, cy := x+1, y+1
	if !b.InBounds(cx, cy) || b.At(cx, cy) != rules.Empty {
		return false
	}
	if rules.CornersFilled(b, x, y) < 3 {
		return false
	}
	if !b.Blocked(cx, cy-1) || !b.Blocked(cx, cy+1) {
		return false
	}
	return !b.Blocked(cx-1, cy) || !b.Blocked(cx+1, cy)
}

func nearFullRows(b *rules.Board) int {
	n := 0
	w := b.Width()
	for y := 0; y < b.Height(); y++ {
		if c := b.RowCount(y); c >= w-2 && c < w {
			n++
		}
	}
	return n
}

// edgeWell measures how far each outer column sits below its inward neighbor
// and keeps the deeper side.
func edgeWell(a *Analysis) {
	a.EdgeWellColumn = -1
	w := len(a.Heights)
	if w < 2 {
		return
	}
	left := a.Heights[1] - a.Heights[0]
	right := a.Heights[w-2] - a.Heights[w-1]
	switch {
	case left > 0 && left >= right:
		a.EdgeWellDepth, a.EdgeWellColumn = left, 0
	case right > 0:
		a.EdgeWellDepth, a.EdgeWellColumn = right, w-1
	default:
		return
	}
	a.EdgeWellHoles = a.ColumnHoles[a.EdgeWellColumn]
}

// centerWellPenalty sums the depth of interior wells at least two deep,
// measured against the lower neighbor.
func centerWellPenalty(heights []int) int {
	n := 0
	for x := 1; x < len(heights)-1; x++ {
		if d := min(heights[x-1], heights[x+1]) - heights[x]; d >= 2 {
			n += d
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
