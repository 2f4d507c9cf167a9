package tetris

// Cell is the occupancy of one grid or matrix cell.
type Cell uint8

const (
	Empty Cell = iota
	Solid
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	default:
		return "Cell(?)"
	}
}

// MatrixSize is the edge length of every piece matrix.
const MatrixSize = 4

// Matrix is a row-major 4x4 occupancy grid for a shape at one orientation.
type Matrix [MatrixSize * MatrixSize]Cell

// At returns the cell in column x of row y.
func (m Matrix) At(x, y int) Cell {
	return m[y*MatrixSize+x]
}

// Empty reports whether no cell of the matrix is Solid.
func (m Matrix) Empty() bool {
	for _, c := range m {
		if c == Solid {
			return false
		}
	}
	return true
}

// transpose swaps the matrix across its main diagonal.
func (m *Matrix) transpose() {
	for i := 0; i < MatrixSize-1; i++ {
		for j := i + 1; j < MatrixSize; j++ {
			src := MatrixSize*i + j
			dst := MatrixSize*j + i
			m[src], m[dst] = m[dst], m[src]
		}
	}
}

// flipColumns mirrors each row left to right.
func (m *Matrix) flipColumns() {
	for i := 0; i < MatrixSize; i++ {
		for j := 0; j < MatrixSize/2; j++ {
			src := MatrixSize*i + j
			dst := MatrixSize*i + (MatrixSize - 1 - j)
			m[src], m[dst] = m[dst], m[src]
		}
	}
}

// flipRows mirrors each column top to bottom.
func (m *Matrix) flipRows() {
	for i := 0; i < MatrixSize; i++ {
		for j := 0; j < MatrixSize/2; j++ {
			src := MatrixSize*j + i
			dst := MatrixSize*(MatrixSize-1-j) + i
			m[src], m[dst] = m[dst], m[src]
		}
	}
}
