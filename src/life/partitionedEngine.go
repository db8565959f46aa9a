package life

import "sync"

/*
	Engine implementation with statically partitioned workers.
	SplitRows assigns each worker a contiguous row range, the worker gets an
	exclusive sub-slice of the next board covering exactly those rows, so the
	write sets are disjoint by construction and no locking is needed.
	Advance waits for every worker before returning the new board.
*/
type PartitionedEngine struct {
	workers int
}

func NewPartitionedEngine(workers int) Engine {
	return &PartitionedEngine{workers: workers}
}

func (e *PartitionedEngine) Name() string {
	return "partitioned"
}

func (e *PartitionedEngine) Advance(current Board) Board {
	next := NewBoard(current.Rows, current.Cols)
	ranges := SplitRows(current.Rows, clampWorkers(e.workers, current.Rows))
	var waitGroup sync.WaitGroup
	for _, rg := range ranges {
		waitGroup.Add(1)
		go func(rg Range, rows [][]Cell) {
			defer waitGroup.Done()
			for r := rg.Start; r <= rg.End; r++ {
				row := rows[r-rg.Start]
				for c := 0; c < current.Cols; c++ {
					row[c] = NextCellState(current, r, c)
				}
			}
		}(rg, next.Cells[rg.Start:rg.End+1])
	}
	waitGroup.Wait()
	return next
}
