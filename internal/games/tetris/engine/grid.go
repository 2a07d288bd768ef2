package engine

import "sort"

// Cell is a grid coordinate. Y grows downward: row 0 is the top of the well.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by another cell.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Occupied is the settled stack: every locked cell and the kind that locked it.
// A published Occupied map is never written again; changes build a new map.
type Occupied map[Cell]Kind

// Clone returns an independent copy of the stack.
func (o Occupied) Clone() Occupied {
	out := make(Occupied, len(o))
	for c, k := range o {
		out[c] = k
	}
	return out
}

// With returns a new stack with all of the piece's cells added.
func (o Occupied) With(p Piece) Occupied {
	out := o.Clone()
	for _, c := range p.Cells() {
		out[c] = p.Kind
	}
	return out
}

// Grid holds the playfield dimensions and answers bounds and collision queries.
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether the cell lies inside the playfield.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsOccupied reports whether the cell is part of the settled stack.
func (g Grid) IsOccupied(c Cell, occ Occupied) bool {
	_, ok := occ[c]
	return ok
}

// PieceFits reports whether every cell of the piece is in bounds and free.
// It is the only collision predicate used for moves, rotations and drops.
func (g Grid) PieceFits(p Piece, occ Occupied) bool {
	for _, c := range p.Cells() {
		if !g.InBounds(c) || g.IsOccupied(c, occ) {
			return false
		}
	}
	return true
}

// FullRows returns the rows in which every column is occupied, ascending.
func (g Grid) FullRows(occ Occupied) []int {
	counts := make(map[int]int)
	for c := range occ {
		counts[c.Y]++
	}
	var rows []int
	for y, n := range counts {
		if n >= g.Width && g.rowFull(y, occ) {
			rows = append(rows, y)
		}
	}
	sort.Ints(rows)
	return rows
}

func (g Grid) rowFull(y int, occ Occupied) bool {
	for x := 0; x < g.Width; x++ {
		if _, ok := occ[Cell{X: x, Y: y}]; !ok {
			return false
		}
	}
	return true
}

// ClearRows removes the given rows as one batch and collapses the stack:
// every surviving cell moves down by the number of removed rows below it.
// The input map is left untouched.
func (g Grid) ClearRows(occ Occupied, rows []int) Occupied {
	if len(rows) == 0 {
		return occ.Clone()
	}
	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	out := make(Occupied, len(occ))
	for c, k := range occ {
		if cleared[c.Y] {
			continue
		}
		shift := 0
		for y := range cleared {
			if y > c.Y {
				shift++
			}
		}
		out[Cell{X: c.X, Y: c.Y + shift}] = k
	}
	return out
}
