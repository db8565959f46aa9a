package life

import "sync"

/*
	Engine implementation with a fixed-size worker pool and dynamic
	scheduling. Row indices are fed through a channel and whichever worker
	is free takes the next one, a full row is the unit of work. Rows are
	disjoint, so workers never write the same cell. Advance waits for the
	pool to drain before returning the new board.
*/
type PoolEngine struct {
	workers int
}

func NewPoolEngine(workers int) Engine {
	return &PoolEngine{workers: workers}
}

func (e *PoolEngine) Name() string {
	return "pool"
}

func (e *PoolEngine) Advance(current Board) Board {
	next := NewBoard(current.Rows, current.Cols)
	workers := clampWorkers(e.workers, current.Rows)
	rows := make(chan int, current.Rows)
	var waitGroup sync.WaitGroup
	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for r := range rows {
				row := next.Cells[r]
				for c := 0; c < current.Cols; c++ {
					row[c] = NextCellState(current, r, c)
				}
			}
		}()
	}
	for r := 0; r < current.Rows; r++ {
		rows <- r
	}
	close(rows)
	waitGroup.Wait()
	return next
}
