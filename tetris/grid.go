package tetris

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// Width and Height are the grid dimensions, walls and floor included.
	Width  = 12
	Height = 23

	// HiddenRows is the number of spawn-buffer rows above the visible field.
	HiddenRows = 2
)

// Point is a grid coordinate. Piece positions name the grid cell under the
// top-left cell of the piece matrix and may be negative when the matrix has
// empty leading columns.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Glyphs are the runes used to render empty and solid cells.
type Glyphs struct {
	Empty rune
	Solid rune
}

// DefaultGlyphs renders empty cells as '◻' and solid cells as '◼'.
var DefaultGlyphs = Glyphs{Empty: '◻', Solid: '◼'}

// Grid is the playfield: a row-major cell array whose first and last columns
// and last row are Solid from creation.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns an empty playfield surrounded by walls and a floor.
func NewGrid() *Grid {
	g := &Grid{
		width:  Width,
		height: Height,
		cells:  make([]Cell, Width*Height),
	}
	for i := range g.cells {
		row, col := i/Width, i%Width
		if row < Height-1 && col != 0 && col != Width-1 {
			g.cells[i] = Empty
		} else {
			g.cells[i] = Solid
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Index returns the row-major offset of (x, y). It panics when the coordinate
// lies outside the grid.
func (g *Grid) Index(x, y int) int {
	if !g.contains(x, y) {
		panic(fmt.Sprintf("tetris: grid index (%d, %d) outside %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.Index(x, y)]
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.Index(x, y)] = c
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  slices.Clone(g.cells),
	}
}

// Equal reports whether both grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.cells, other.cells)
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	start := g.Index(0, y)
	return slices.Clone(g.cells[start : start+g.width])
}

// CanPlace reports whether every Solid cell of m, offset by pos, lands on an
// Empty grid cell. Empty matrix cells are never tested. A Solid cell that would
// land outside the grid counts as blocked.
func (g *Grid) CanPlace(m Matrix, pos Point) bool {
	for i := 0; i < MatrixSize; i++ {
		for j := 0; j < MatrixSize; j++ {
			if m.At(j, i) != Solid {
				continue
			}
			x, y := pos.X+j, pos.Y+i
			if !g.contains(x, y) || g.cells[g.Index(x, y)] == Solid {
				return false
			}
		}
	}
	return true
}

// Stamp returns a copy of the grid with every Solid cell of m, offset by pos,
// set to Solid. Cells are never cleared.
func (g *Grid) Stamp(m Matrix, pos Point) *Grid {
	out := g.Clone()
	for i := 0; i < MatrixSize; i++ {
		for j := 0; j < MatrixSize; j++ {
			if m.At(j, i) == Solid {
				out.cells[out.Index(pos.X+j, pos.Y+i)] = Solid
			}
		}
	}
	return out
}

// IntersectsHiddenRegion reports whether the top row of m holds a Solid cell
// while pos lies within the hidden rows. No transition acts on it; the game
// has no topped-out state.
func (g *Grid) IntersectsHiddenRegion(m Matrix, pos Point) bool {
	for j := 0; j < MatrixSize; j++ {
		if m.At(j, 0) == Solid && pos.Y < HiddenRows {
			return true
		}
	}
	return false
}

// FullLine reports whether every cell of row y is Solid.
func (g *Grid) FullLine(y int) bool {
	start := g.Index(0, y)
	for _, c := range g.cells[start : start+g.width] {
		if c != Solid {
			return false
		}
	}
	return true
}

// ClearLine removes row y by copying every row above it one row down,
// starting from the row just above y. Row 0 is never rewritten, so after the
// shift it still holds its previous content and rows 0 and 1 are equal.
func (g *Grid) ClearLine(y int) {
	g.Index(0, y)
	for line := y - 1; line >= 0; line-- {
		src := line * g.width
		copy(g.cells[src+g.width:src+2*g.width], g.cells[src:src+g.width])
	}
}

// Render draws the visible playfield: rows below the hidden rows and above the
// floor, columns between the walls, one line per row.
func (g *Grid) Render(glyphs Glyphs) string {
	var b strings.Builder
	b.Grow((g.height - HiddenRows - 1) * (g.width - 1) * 3)
	for y := HiddenRows; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.cells[g.Index(x, y)] == Empty {
				b.WriteRune(glyphs.Empty)
			} else {
				b.WriteRune(glyphs.Solid)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) String() string {
	return g.Render(DefaultGlyphs)
}
