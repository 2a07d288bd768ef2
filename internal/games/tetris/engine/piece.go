package engine

// Direction is a rotation step through a kind's rotation states.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Piece is a live tetromino: its kind, rotation state and the grid position
// of its template's top-left corner.
type Piece struct {
	Kind     Kind
	Rotation int
	Anchor   Cell
}

// Spawn builds a piece of kind k at its spawn anchor in rotation 0.
func Spawn(k Kind, gridWidth int) Piece {
	return Piece{Kind: k, Anchor: SpawnAnchor(k, gridWidth)}
}

// Cells returns the grid cells covered by the piece.
// Always derived from (kind, rotation, anchor); nothing is cached.
func (p Piece) Cells() []Cell {
	offsets := Offsets(p.Kind, p.Rotation)
	cells := make([]Cell, len(offsets))
	for i, off := range offsets {
		cells[i] = p.Anchor.Add(off)
	}
	return cells
}

// Translated returns the piece moved by (dx, dy). Bounds are not checked.
func (p Piece) Translated(dx, dy int) Piece {
	p.Anchor = Cell{X: p.Anchor.X + dx, Y: p.Anchor.Y + dy}
	return p
}

// Rotated returns the piece advanced one rotation state in the given
// direction, wrapping around. Bounds are not checked.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = wrap(p.Rotation+int(dir), RotationCount(p.Kind))
	return p
}
