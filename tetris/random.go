package tetris

import (
	"fmt"
	"math/rand/v2"
)

// RandomSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// RandomShape draws a shape uniformly from the catalog.
func RandomShape(r RandomSource) Shape {
	draw := r.Float64()
	mustBeUnitDraw(draw)
	return Shape(int(draw*ShapeCount) % ShapeCount)
}

// RandomOrientation draws an orientation uniformly from the four values.
func RandomOrientation(r RandomSource) Orientation {
	draw := r.Float64()
	mustBeUnitDraw(draw)
	return Orientation(int(draw * orientationCount))
}

func mustBeUnitDraw(draw float64) {
	if draw < 0 || draw >= 1 {
		panic(fmt.Sprintf("tetris: random draw %v outside [0, 1)", draw))
	}
}
