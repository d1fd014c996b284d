package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow(width int) []int {
	row := make([]int, width)
	for i := range row {
		row[i] = 1
	}
	return row
}

// markerRow has exactly one filled cell so rows can be told apart.
func markerRow(width, col int) []int {
	row := make([]int, width)
	row[col%width] = 1
	return row
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)

	assert.Equal(t, BoardWidth, b.Width())
	assert.Equal(t, BoardHeight, b.Height())
	assert.Zero(t, b.FilledCount())

	rows := b.Rows()
	require.Len(t, rows, BoardHeight)
	for _, row := range rows {
		assert.Len(t, row, BoardWidth)
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)

	tests := []struct{ col, row int }{
		{-1, 0},
		{BoardWidth, 0},
		{0, -1},
		{0, BoardHeight},
		{-5, 30},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("col=%d,row=%d", tt.col, tt.row), func(t *testing.T) {
			_, err := b.IsFilled(tt.col, tt.row)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			_, err = b.Cell(tt.col, tt.row)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			assert.ErrorIs(t, b.Set(tt.col, tt.row, KindT), ErrOutOfBounds)
		})
	}

	_, err := b.IsRowFull(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.IsRowFull(BoardHeight)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, b.FilledCount())
}

func TestBoardSetAndCell(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	require.NoError(t, b.Set(3, 7, KindJ))

	c, err := b.Cell(3, 7)
	require.NoError(t, err)
	assert.Equal(t, Cell{Filled: true, Kind: KindJ}, c)

	filled, err := b.IsFilled(4, 7)
	require.NoError(t, err)
	assert.False(t, filled)
}

func TestMergeOverlapLeavesBoardUntouched(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	require.NoError(t, b.Set(0, 0, KindO))

	err := b.Merge([]Point{{1, 0}, {0, 0}}, KindT)
	assert.ErrorIs(t, err, ErrOverlap)

	filled, _ := b.IsFilled(1, 0)
	assert.False(t, filled, "partial merge must not be applied")
	assert.Equal(t, 1, b.FilledCount())
}

func TestMergeOutOfBounds(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)

	err := b.Merge([]Point{{0, 19}, {0, 20}}, KindI)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Zero(t, b.FilledCount())
}

func TestMerge(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)

	cells := []Point{{0, 19}, {1, 19}, {2, 19}, {3, 19}}
	require.NoError(t, b.Merge(cells, KindI))
	for _, p := range cells {
		c, err := b.Cell(p.Col, p.Row)
		require.NoError(t, err)
		assert.Equal(t, Cell{Filled: true, Kind: KindI}, c)
	}
}

func TestIsRowFull(t *testing.T) {
	rows := make([][]int, BoardHeight)
	for y := range rows {
		rows[y] = make([]int, BoardWidth)
	}
	rows[19] = fullRow(BoardWidth)
	rows[18] = fullRow(BoardWidth)
	rows[18][9] = 0

	b, err := BoardFromRows(rows)
	require.NoError(t, err)

	full, err := b.IsRowFull(19)
	require.NoError(t, err)
	assert.True(t, full)

	full, err = b.IsRowFull(18)
	require.NoError(t, err)
	assert.False(t, full)

	full, err = b.IsRowFull(0)
	require.NoError(t, err)
	assert.False(t, full)
}

func TestClearFullRowsTwoTopRows(t *testing.T) {
	rows := [][]int{fullRow(BoardWidth), fullRow(BoardWidth)}
	for y := 2; y < BoardHeight; y++ {
		rows = append(rows, markerRow(BoardWidth, y))
	}
	b, err := BoardFromRows(rows)
	require.NoError(t, err)
	before := b.Rows()

	cleared := b.ClearFullRows()
	assert.Equal(t, 2, cleared)

	after := b.Rows()
	require.Len(t, after, BoardHeight)
	for y := 0; y < 2; y++ {
		assert.Equal(t, make([]Cell, BoardWidth), after[y], "row %d should be empty", y)
	}
	for y := 2; y < BoardHeight; y++ {
		assert.Equal(t, before[y], after[y], "row %d should be unchanged", y)
	}
}

func TestClearFullRowsNothingFull(t *testing.T) {
	rows := make([][]int, BoardHeight)
	for y := range rows {
		rows[y] = markerRow(BoardWidth, y)
	}
	b, err := BoardFromRows(rows)
	require.NoError(t, err)
	before := b.Rows()

	assert.Zero(t, b.ClearFullRows())
	assert.Equal(t, before, b.Rows())
}

func TestClearFullRowsInterleaved(t *testing.T) {
	rows := make([][]int, BoardHeight)
	for y := range rows {
		rows[y] = markerRow(BoardWidth, y)
	}
	for _, y := range []int{5, 10, 18, 19} {
		rows[y] = fullRow(BoardWidth)
	}
	b, err := BoardFromRows(rows)
	require.NoError(t, err)
	before := b.Rows()

	assert.Equal(t, 4, b.ClearFullRows())

	after := b.Rows()
	require.Len(t, after, BoardHeight)
	// Rows 0-4 drop by 4, rows 6-9 by 3, rows 11-17 by 2.
	for y := 0; y < 4; y++ {
		assert.Equal(t, make([]Cell, BoardWidth), after[y])
	}
	for y := 0; y <= 4; y++ {
		assert.Equal(t, before[y], after[y+4])
	}
	for y := 6; y <= 9; y++ {
		assert.Equal(t, before[y], after[y+3])
	}
	for y := 11; y <= 17; y++ {
		assert.Equal(t, before[y], after[y+2])
	}
}

// Random boards checked against a straightforward filter of non-full rows.
func TestClearFullRowsMatchesFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		rows := make([][]int, BoardHeight)
		for y := range rows {
			if rng.Intn(4) == 0 {
				rows[y] = fullRow(BoardWidth)
				continue
			}
			rows[y] = make([]int, BoardWidth)
			for x := range rows[y] {
				if rng.Intn(2) == 0 {
					rows[y][x] = 1
				}
			}
		}
		b, err := BoardFromRows(rows)
		require.NoError(t, err)
		before := b.Rows()

		var kept [][]Cell
		for y, row := range before {
			if full, _ := b.IsRowFull(y); !full {
				kept = append(kept, row)
			}
		}

		cleared := b.ClearFullRows()
		want := make([][]Cell, 0, BoardHeight)
		for len(want)+len(kept) < BoardHeight {
			want = append(want, make([]Cell, BoardWidth))
		}
		want = append(want, kept...)

		assert.Equal(t, BoardHeight-len(kept), cleared)
		assert.Equal(t, want, b.Rows())
	}
}

func TestBoardFromRowsRagged(t *testing.T) {
	_, err := BoardFromRows([][]int{{0, 0, 0, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = BoardFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	c := b.Clone()
	require.NoError(t, c.Set(0, 0, KindZ))

	filled, _ := b.IsFilled(0, 0)
	assert.False(t, filled)
}

func TestFlatEncoding(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	require.NoError(t, b.Merge([]Point{{0, 19}, {9, 0}}, KindL))

	flat := b.ToFlat()
	require.Len(t, flat, BoardWidth*BoardHeight)
	assert.Equal(t, KindL.Color(), flat[19*BoardWidth])
	assert.Equal(t, KindL.Color(), flat[9])

	assert.Equal(t, b.Rows(), BoardFromFlat(flat, BoardWidth, BoardHeight).Rows())
}
