package tetris

// SpawnAnchor is where every new piece starts: a fixed column, top hidden row.
var SpawnAnchor = Point{X: 4, Y: 0}

// Piece is the active falling piece: a shape, its orientation, and the grid
// position of its matrix's top-left cell.
type Piece struct {
	Shape       Shape
	Orientation Orientation
	Position    Point
}

// SpawnPiece creates a piece with a random shape and orientation at the spawn
// anchor. The shape is drawn before the orientation.
func SpawnPiece(r RandomSource) Piece {
	shape := RandomShape(r)
	orientation := RandomOrientation(r)
	return Piece{
		Shape:       shape,
		Orientation: orientation,
		Position:    SpawnAnchor,
	}
}

// Matrix materializes the piece at its current orientation. It is recomputed
// on every call.
func (p Piece) Matrix() Matrix {
	return p.Orientation.Materialize(p.Shape)
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Position = p.Position.Add(Point{X: dx, Y: dy})
	return p
}

// RotatedLeft returns a copy of the piece after one left rotation.
func (p Piece) RotatedLeft() Piece {
	p.Orientation = p.Orientation.Left()
	return p
}

// RotatedRight returns a copy of the piece after one right rotation.
func (p Piece) RotatedRight() Piece {
	p.Orientation = p.Orientation.Right()
	return p
}
