package life

import "testing"

func TestNewBoard(t *testing.T) {
	b := NewBoard(3, 5)
	if b.Rows != 3 || b.Cols != 5 {
		t.Fatalf("got %vx%v board, want 3x5", b.Rows, b.Cols)
	}
	if len(b.Cells) != 3 {
		t.Fatalf("got %v rows", len(b.Cells))
	}
	for r, row := range b.Cells {
		if len(row) != 5 {
			t.Fatalf("row %v has %v cells", r, len(row))
		}
	}
	if b.LiveCells() != 0 {
		t.Errorf("new board has %v live cells, want 0", b.LiveCells())
	}
}

//the same seed must always produce a bit-identical board, no matter what
//ran before or which engine will consume it
func TestRandomBoardDeterminism(t *testing.T) {
	first := RandomBoard(16, 24, 42)
	second := RandomBoard(16, 24, 42)
	if !first.Equal(second) {
		t.Error("two boards from the same seed differ")
	}
	other := RandomBoard(16, 24, 43)
	if first.Equal(other) {
		t.Error("boards from different seeds are identical")
	}
}

func TestSettle(t *testing.T) {
	b := NewBoard(3, 3)
	b.Settle([][]int{{0, 0}, {1, 1}, {2, 2}})
	if b.LiveCells() != 3 {
		t.Errorf("got %v live cells, want 3", b.LiveCells())
	}
	if !bool(b.Cells[0][0]) || !bool(b.Cells[1][1]) || !bool(b.Cells[2][2]) {
		t.Error("settled cells are not alive")
	}
}

func TestSettleSkipsOutOfRange(t *testing.T) {
	b := NewBoard(2, 2)
	b.Settle([][]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {1, 1}})
	if b.LiveCells() != 1 {
		t.Errorf("got %v live cells, want 1", b.LiveCells())
	}
}

func TestBoardEqual(t *testing.T) {
	a := parseBoard([]string{
		"X.",
		".X",
	})
	b := parseBoard([]string{
		"X.",
		".X",
	})
	if !a.Equal(b) {
		t.Error("identical boards reported unequal")
	}
	b.Cells[1][1] = false
	if a.Equal(b) {
		t.Error("different boards reported equal")
	}
	if a.Equal(NewBoard(2, 3)) {
		t.Error("boards of different dimensions reported equal")
	}
}
