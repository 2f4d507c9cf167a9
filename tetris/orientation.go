package tetris

import "fmt"

// Orientation is the rotation state of a piece: the number of left quarter
// turns applied to its shape, always kept within 0..3.
//
// Every shape uses the same generic 4x4 transform. There is no per-shape
// offset or kick table, so I and O pieces pivot around the matrix rather than
// around their own centre.
type Orientation uint8

const (
	Orientation0 Orientation = iota
	Orientation1
	Orientation2
	Orientation3
)

const orientationCount = 4

// OrientationFromCount reduces a signed rotation count to its orientation, so
// counts that are congruent modulo four (including negative ones) agree.
func OrientationFromCount(count int) Orientation {
	count %= orientationCount
	if count < 0 {
		count += orientationCount
	}
	return Orientation(count)
}

// Left returns the orientation after one left rotation.
func (o Orientation) Left() Orientation {
	o.mustBeValid()
	return (o + 1) % orientationCount
}

// Right returns the orientation after one right rotation.
func (o Orientation) Right() Orientation {
	o.mustBeValid()
	return (o + orientationCount - 1) % orientationCount
}

// Materialize returns the occupancy matrix of shape at this orientation.
func (o Orientation) Materialize(shape Shape) Matrix {
	m := shape.Matrix()
	switch o {
	case Orientation0:
	case Orientation1:
		m.transpose()
		m.flipRows()
	case Orientation2:
		m.flipRows()
		m.flipColumns()
	case Orientation3:
		m.transpose()
		m.flipColumns()
	default:
		o.mustBeValid()
	}
	return m
}

func (o Orientation) String() string {
	return fmt.Sprintf("Orientation%d", uint8(o))
}

func (o Orientation) mustBeValid() {
	if o >= orientationCount {
		panic(fmt.Sprintf("tetris: invalid orientation %d", uint8(o)))
	}
}
