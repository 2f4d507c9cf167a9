package tetris

import "fmt"

// Shape identifies one of the seven canonical piece kinds. The numeric order is
// the order in which random draws map onto shapes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeL
	ShapeS
	ShapeJ
	ShapeT
	ShapeZ
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

const (
	em = Empty
	so = Solid
)

var catalog = [ShapeCount]Matrix{
	ShapeI: {
		em, so, em, em,
		em, so, em, em,
		em, so, em, em,
		em, so, em, em,
	},
	ShapeO: {
		em, em, em, em,
		em, so, so, em,
		em, so, so, em,
		em, em, em, em,
	},
	ShapeL: {
		em, so, so, em,
		em, em, so, em,
		em, em, so, em,
		em, em, em, em,
	},
	ShapeS: {
		em, em, em, em,
		em, so, so, em,
		so, so, em, em,
		em, em, em, em,
	},
	ShapeJ: {
		em, so, so, em,
		em, so, em, em,
		em, so, em, em,
		em, em, em, em,
	},
	ShapeT: {
		em, em, em, em,
		so, so, so, em,
		em, so, em, em,
		em, em, em, em,
	},
	ShapeZ: {
		em, em, em, em,
		em, so, so, em,
		em, em, so, so,
		em, em, em, em,
	},
}

var shapeNames = [ShapeCount]string{"I", "O", "L", "S", "J", "T", "Z"}

// Shapes returns every shape in catalog order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeL, ShapeS, ShapeJ, ShapeT, ShapeZ}
}

// Matrix returns a copy of the shape's unrotated occupancy matrix.
func (s Shape) Matrix() Matrix {
	if int(s) >= ShapeCount {
		panic(fmt.Sprintf("tetris: unknown shape %d", uint8(s)))
	}
	return catalog[s]
}

func (s Shape) String() string {
	if int(s) >= ShapeCount {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

// ParseShape maps a shape letter back to its Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown shape %q", name)
}
