package life

//NextCellState calculates the next state for the cell at (r, c) from the
//current generation. Neighbours outside the board contribute nothing.
//Pure function, shared by every engine, safe for any number of concurrent
//readers of a frozen board.
func NextCellState(b Board, r int, c int) Cell {
	neighbours := 0
	for dr := -1; dr < 2; dr++ {
		for dc := -1; dc < 2; dc++ {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nr := r + dr
			nc := c + dc
			//skip coordinates outside the board
			if nr < 0 || nc < 0 || nr >= b.Rows || nc >= b.Cols {
				continue
			}
			if b.Cells[nr][nc] {
				neighbours++
			}
		}
	}

	if b.Cells[r][c] {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}
