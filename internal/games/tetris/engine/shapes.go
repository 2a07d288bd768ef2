// Package engine implements the falling-block simulation: the shape catalog,
// grid queries, pieces, and the Playing/Falling/GameOver state machine.
//
// Every transition takes a State value and returns a new one. The engine never
// renders and never reads the keyboard; the game adapter does both.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetromino variants.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
	kindCount
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].name
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Kinds returns all kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind resolves a single-letter kind name ("I", "T", ...).
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if catalog[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("engine: unknown shape %q", name)
}

// shapeDef is the compiled form of one catalog entry.
type shapeDef struct {
	name      string
	color     core.Color
	size      int      // templates are size x size
	rotations [][]Cell // local offsets per rotation state
}

// Rotation templates, one per rotation state in clockwise order.
// 'X' marks an occupied local cell.
var templates = [kindCount]struct {
	name  string
	color core.Color
	rows  [][]string
}{
	KindI: {"I", core.ColorCyan, [][]string{
		{"....", "XXXX", "....", "...."},
		{"..X.", "..X.", "..X.", "..X."},
		{"....", "....", "XXXX", "...."},
		{".X..", ".X..", ".X..", ".X.."},
	}},
	KindJ: {"J", core.ColorBlue, [][]string{
		{"X..", "XXX", "..."},
		{".XX", ".X.", ".X."},
		{"...", "XXX", "..X"},
		{".X.", ".X.", "XX."},
	}},
	KindL: {"L", core.ColorOrange, [][]string{
		{"..X", "XXX", "..."},
		{".X.", ".X.", ".XX"},
		{"...", "XXX", "X.."},
		{"XX.", ".X.", ".X."},
	}},
	KindO: {"O", core.ColorYellow, [][]string{
		{"XX", "XX"},
	}},
	KindS: {"S", core.ColorGreen, [][]string{
		{".XX", "XX.", "..."},
		{".X.", ".XX", "..X"},
		{"...", ".XX", "XX."},
		{"X..", "XX.", ".X."},
	}},
	KindT: {"T", core.ColorMagenta, [][]string{
		{".X.", "XXX", "..."},
		{".X.", ".XX", ".X."},
		{"...", "XXX", ".X."},
		{".X.", "XX.", ".X."},
	}},
	KindZ: {"Z", core.ColorRed, [][]string{
		{"XX.", ".XX", "..."},
		{"..X", ".XX", ".X."},
		{"...", "XX.", ".XX"},
		{".X.", "XX.", "X.."},
	}},
}

var catalog = compileCatalog()

func compileCatalog() [kindCount]shapeDef {
	var defs [kindCount]shapeDef
	for k, t := range templates {
		def := shapeDef{name: t.name, color: t.color, size: len(t.rows[0])}
		for r, rows := range t.rows {
			if len(rows) != def.size {
				panic(fmt.Sprintf("engine: shape %s rotation %d is not square", t.name, r))
			}
			var offsets []Cell
			for y, row := range rows {
				if len(row) != def.size {
					panic(fmt.Sprintf("engine: shape %s rotation %d row %d has width %d", t.name, r, y, len(row)))
				}
				for x, ch := range row {
					if ch == 'X' {
						offsets = append(offsets, Cell{X: x, Y: y})
					}
				}
			}
			def.rotations = append(def.rotations, offsets)
		}
		defs[k] = def
	}
	return defs
}

// RotationCount returns how many rotation states the kind cycles through.
func RotationCount(k Kind) int {
	return len(catalog[k].rotations)
}

// Offsets returns the local occupied cells of a rotation state.
// The rotation index is taken modulo the kind's rotation count.
func Offsets(k Kind, rotation int) []Cell {
	rots := catalog[k].rotations
	return rots[wrap(rotation, len(rots))]
}

// Color returns the display color of the kind.
func Color(k Kind) core.Color {
	return catalog[k].color
}

// TemplateSize returns the side length of the kind's square template.
func TemplateSize(k Kind) int {
	return catalog[k].size
}

// SpawnAnchor returns where a new piece of kind k appears: horizontally
// centered, with the top occupied row of rotation 0 on grid row 0.
func SpawnAnchor(k Kind, gridWidth int) Cell {
	def := catalog[k]
	top := def.size
	for _, off := range def.rotations[0] {
		top = min(top, off.Y)
	}
	return Cell{X: (gridWidth - def.size) / 2, Y: -top}
}

// MaxTemplateWidth returns the widest occupied extent of any kind at spawn.
func MaxTemplateWidth() int {
	w := 0
	for _, def := range catalog {
		w = max(w, extent(def.rotations[0], func(c Cell) int { return c.X }))
	}
	return w
}

// MaxTemplateHeight returns the tallest occupied extent of any rotation state.
func MaxTemplateHeight() int {
	h := 0
	for _, def := range catalog {
		for _, rot := range def.rotations {
			h = max(h, extent(rot, func(c Cell) int { return c.Y }))
		}
	}
	return h
}

func extent(cells []Cell, axis func(Cell) int) int {
	if len(cells) == 0 {
		return 0
	}
	lo, hi := axis(cells[0]), axis(cells[0])
	for _, c := range cells[1:] {
		lo = min(lo, axis(c))
		hi = max(hi, axis(c))
	}
	return hi - lo + 1
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
