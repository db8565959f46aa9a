package life

/*
	Engine implementation with a single control flow.
	Visits every cell in row-major order, no concurrency. Serves as the
	reference result for the parallel engines.
*/
type SequentialEngine struct{}

func NewSequentialEngine(int) Engine {
	return SequentialEngine{}
}

func (SequentialEngine) Name() string {
	return "sequential"
}

func (SequentialEngine) Advance(current Board) Board {
	next := NewBoard(current.Rows, current.Cols)
	for r := 0; r < current.Rows; r++ {
		for c := 0; c < current.Cols; c++ {
			next.Cells[r][c] = NextCellState(current, r, c)
		}
	}
	return next
}
