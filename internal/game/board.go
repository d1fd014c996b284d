package game

import (
	"errors"
	"fmt"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrOverlap     = errors.New("cell already filled")
)

// Point is a (column, row) board coordinate. Row 0 is the top row.
type Point struct {
	Col, Row int
}

type Cell struct {
	Filled bool
	Kind   Kind
}

// Board is a fixed-size grid of cells. All rows are allocated up front and
// always hold exactly Width cells.
type Board struct {
	cells  [][]Cell
	width  int
	height int
}

func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// BoardFromRows builds a board from a row-major grid where any non-zero
// value is a filled cell. Rows must all have the same length.
func BoardFromRows(rows [][]int) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidConfig)
	}
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, y, len(row), b.width)
		}
		for x, v := range row {
			if v != 0 {
				b.cells[y][x] = Cell{Filled: true, Kind: kindFromColor(v)}
			}
		}
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

func (b *Board) Cell(col, row int) (Cell, error) {
	if !b.InBounds(col, row) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, col, row, b.width, b.height)
	}
	return b.cells[row][col], nil
}

func (b *Board) IsFilled(col, row int) (bool, error) {
	c, err := b.Cell(col, row)
	if err != nil {
		return false, err
	}
	return c.Filled, nil
}

func (b *Board) Set(col, row int, kind Kind) error {
	if !b.InBounds(col, row) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, col, row, b.width, b.height)
	}
	b.cells[row][col] = Cell{Filled: true, Kind: kind}
	return nil
}

// Merge fills every given cell with kind. Either all cells are written or,
// if any is out of bounds or already filled, none are.
func (b *Board) Merge(cells []Point, kind Kind) error {
	for _, p := range cells {
		filled, err := b.IsFilled(p.Col, p.Row)
		if err != nil {
			return err
		}
		if filled {
			return fmt.Errorf("%w: (%d,%d)", ErrOverlap, p.Col, p.Row)
		}
	}
	for _, p := range cells {
		b.cells[p.Row][p.Col] = Cell{Filled: true, Kind: kind}
	}
	return nil
}

func (b *Board) IsRowFull(row int) (bool, error) {
	if row < 0 || row >= b.height {
		return false, fmt.Errorf("%w: row %d on %dx%d board", ErrOutOfBounds, row, b.width, b.height)
	}
	return b.rowFull(row), nil
}

func (b *Board) rowFull(row int) bool {
	for x := 0; x < b.width; x++ {
		if !b.cells[row][x].Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above it down and
// pads the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Cell, 0, b.height)
	cleared := 0

	for y := 0; y < b.height; y++ {
		if b.rowFull(y) {
			cleared++
			continue
		}
		kept = append(kept, b.cells[y])
	}
	if cleared == 0 {
		return 0
	}

	newCells := make([][]Cell, 0, b.height)
	for i := 0; i < cleared; i++ {
		newCells = append(newCells, make([]Cell, b.width))
	}
	b.cells = append(newCells, kept...)
	return cleared
}

// Clone returns a deep copy that shares no storage with b.
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(c.cells[y], b.cells[y])
	}
	return c
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]Cell {
	return b.Clone().cells
}

// FilledCount returns the number of filled cells on the board.
func (b *Board) FilledCount() int {
	n := 0
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// ToFlat returns the board as a flat array of color indices (0 = empty).
func (b *Board) ToFlat() []int {
	flat := make([]int, b.height*b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y][x].Filled {
				flat[y*b.width+x] = b.cells[y][x].Kind.Color()
			}
		}
	}
	return flat
}

// BoardFromFlat reconstructs a Board from a flat color-index array.
func BoardFromFlat(flat []int, width, height int) *Board {
	b := NewBoard(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx < len(flat) && flat[idx] != 0 {
				b.cells[y][x] = Cell{Filled: true, Kind: kindFromColor(flat[idx])}
			}
		}
	}
	return b
}
