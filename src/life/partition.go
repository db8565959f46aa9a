package life

//Range is a contiguous, inclusive span of row indices owned by one worker
//for one generation
type Range struct {
	Start int
	End   int
}

//Rows returns the number of rows in the range
func (rg Range) Rows() int {
	return rg.End - rg.Start + 1
}

//SplitRows divides the row indices [0, rows-1] into workers contiguous,
//disjoint ranges in increasing order. Every worker gets rows/workers rows,
//the first rows%workers workers get one extra row each.
//Requires 1 <= workers <= rows, callers clamp before asking.
func SplitRows(rows int, workers int) []Range {
	size := rows / workers
	rem := rows % workers
	ranges := make([]Range, workers)
	next := 0
	for i := range ranges {
		n := size
		if i < rem {
			n++
		}
		ranges[i] = Range{Start: next, End: next + n - 1}
		next += n
	}
	return ranges
}

//clampWorkers bounds the parallelism degree with the number of rows,
//one worker at minimum
func clampWorkers(workers int, rows int) int {
	if workers > rows {
		return rows
	}
	if workers < 1 {
		return 1
	}
	return workers
}
