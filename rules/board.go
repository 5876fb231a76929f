// Package rules implements the deterministic match rules: the board, piece
// placement, line clearing, spin detection, attack and streak bookkeeping,
// the incoming-garbage queue and the live engine a participant plays on.
package rules

import (
	"hash/fnv"
	"strings"

	"github.com/plus3/blockbattle/piece"
)

// Cell is the content of one board square.
type Cell uint8

const (
	// Empty marks an unoccupied square.
	Empty Cell = 0
	// Garbage marks a square filled by incoming garbage.
	Garbage Cell = 8
)

// KindCell is the marker a locked piece of kind leaves behind.
func KindCell(kind piece.Kind) Cell {
	return Cell(kind)
}

// Kind returns the piece kind a cell was stamped by, or piece.None.
func (c Cell) Kind() piece.Kind {
	k := piece.Kind(c)
	if k.Valid() {
		return k
	}
	return piece.None
}

// Valid reports whether c is a known marker.
func (c Cell) Valid() bool {
	return c == Empty || c == Garbage || piece.Kind(c).Valid()
}

// Board is a fixed-size grid. Row 0 is the top visible row; negative rows form
// the hidden spawn margin and are never stored.
//
// Every operation in this package that produces a board returns a new,
// independently owned value. Nothing aliases its input.
type Board struct {
	width, height int
	cells         []Cell
}

// NewBoard returns an empty width×height board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a stored cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Anything outside the grid reads as Empty.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Set writes c at (x, y). Out-of-range writes are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Blocked reports whether (x, y) counts as solid for geometry tests: walls and
// the floor are solid, the spawn margin above row 0 is open.
func (b *Board) Blocked(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y*b.width+x] != Empty
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c == Empty {
			return false
		}
	}
	return true
}

// RowCount returns how many cells of row y are occupied.
func (b *Board) RowCount(y int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	n := 0
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows copies the grid into a fresh 2-D slice.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range rows {
		rows[y] = make([]Cell, b.width)
		copy(rows[y], b.cells[y*b.width:(y+1)*b.width])
	}
	return rows
}

// BoardFromRows builds a width×height board from rows. Missing rows and
// columns are left empty, extra ones are dropped and unknown markers become
// Empty, so a foreign grid can never produce an inconsistent board.
func BoardFromRows(width, height int, rows [][]Cell) *Board {
	b := NewBoard(width, height)
	for y := 0; y < height && y < len(rows); y++ {
		for x := 0; x < width && x < len(rows[y]); x++ {
			if c := rows[y][x]; c.Valid() {
				b.cells[y*width+x] = c
			}
		}
	}
	return b
}

// Hash returns a 64-bit FNV-1a fingerprint of the grid contents.
func (b *Board) Hash() uint64 {
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	h := fnv.New64a()
	h.Write(buf)
	return h.Sum64()
}

// Equal reports whether two boards have identical dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

const cellGlyphs = ".IOTSZJLG"

// String renders the board one row per line, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if int(c) < len(cellGlyphs) {
				sb.WriteByte(cellGlyphs[c])
			} else {
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from text rows aligned to the bottom of the grid:
// the last row given becomes row height-1. '.' or ' ' is empty, a kind letter
// stamps that kind and any other rune is garbage.
func ParseBoard(width, height int, rows ...string) *Board {
	b := NewBoard(width, height)
	offset := height - len(rows)
	for i, row := range rows {
		y := offset + i
		if y < 0 {
			continue
		}
		for x, ch := range row {
			if x >= width {
				break
			}
			switch {
			case ch == '.' || ch == ' ':
			default:
				if k, ok := piece.ParseKind(string(ch)); ok {
					b.Set(x, y, KindCell(k))
				} else {
					b.Set(x, y, Garbage)
				}
			}
		}
	}
	return b
}
