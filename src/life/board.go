package life

import "math/rand"

//Cell is a single alive/dead state, immutable once written into a generation
type Cell bool

//Board is one complete generation: a rows x cols grid of cells, row-major,
//with hard non-wrapping edges. The rows share one contiguous backing slice.
type Board struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

//NewBoard allocates an all-dead board
func NewBoard(rows int, cols int) Board {
	b := Board{Rows: rows, Cols: cols, Cells: make([][]Cell, rows)}
	backing := make([]Cell, rows*cols)
	for r := range b.Cells {
		start := cols * r
		b.Cells[r] = backing[start : start+cols : start+cols]
	}
	return b
}

//RandomBoard seeds a dedicated generator and fills a board cell by cell in
//row-major order, each cell alive with probability 1/2.
//The generator is owned by this call, so repeated runs with the same seed
//produce bit-identical boards no matter what ran before.
func RandomBoard(rows int, cols int, seed int64) Board {
	rng := rand.New(rand.NewSource(seed))
	b := NewBoard(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.Cells[r][c] = Cell(rng.Intn(2) == 1)
		}
	}
	return b
}

//Settle marks the cells at the given [row, col] coordinates alive,
//coordinates outside the board are skipped
func (b Board) Settle(vc [][]int) {
	for _, v := range vc {
		if v[0] < 0 || v[0] >= b.Rows || v[1] < 0 || v[1] >= b.Cols {
			continue
		}
		b.Cells[v[0]][v[1]] = true
	}
}

//LiveCells counts the alive cells
func (b Board) LiveCells() int {
	live := 0
	for _, row := range b.Cells {
		for _, e := range row {
			if e {
				live++
			}
		}
	}
	return live
}

//Equal reports whether two boards have the same dimensions and contents
func (b Board) Equal(o Board) bool {
	if b.Rows != o.Rows || b.Cols != o.Cols {
		return false
	}
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}
