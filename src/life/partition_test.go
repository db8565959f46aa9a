package life

import "testing"

func TestSplitRows(t *testing.T) {
	cases := []struct {
		name    string
		rows    int
		workers int
		want    []Range
	}{
		{"single worker", 5, 1, []Range{{0, 4}}},
		{"even split", 6, 3, []Range{{0, 1}, {2, 3}, {4, 5}}},
		{"remainder to the first workers", 7, 3, []Range{{0, 2}, {3, 4}, {5, 6}}},
		{"one row per worker", 4, 4, []Range{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single row", 1, 1, []Range{{0, 0}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitRows(tc.rows, tc.workers)
			if len(got) != len(tc.want) {
				t.Fatalf("SplitRows(%v, %v) = %v, want %v", tc.rows, tc.workers, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("SplitRows(%v, %v)[%v] = %v, want %v", tc.rows, tc.workers, i, got[i], tc.want[i])
				}
			}
		})
	}
}

//the ranges must partition [0, rows-1] contiguously with no worker holding
//more than one row over any other
func TestSplitRowsProperties(t *testing.T) {
	for rows := 1; rows <= 64; rows++ {
		for workers := 1; workers <= rows; workers++ {
			ranges := SplitRows(rows, workers)
			if len(ranges) != workers {
				t.Fatalf("rows=%v workers=%v: got %v ranges", rows, workers, len(ranges))
			}
			if ranges[0].Start != 0 {
				t.Fatalf("rows=%v workers=%v: first range starts at %v", rows, workers, ranges[0].Start)
			}
			if ranges[len(ranges)-1].End != rows-1 {
				t.Fatalf("rows=%v workers=%v: last range ends at %v", rows, workers, ranges[len(ranges)-1].End)
			}
			minSize, maxSize := rows, 0
			for i, rg := range ranges {
				if rg.Rows() < 1 {
					t.Fatalf("rows=%v workers=%v: empty range %v", rows, workers, rg)
				}
				if i > 0 && rg.Start != ranges[i-1].End+1 {
					t.Fatalf("rows=%v workers=%v: gap or overlap between %v and %v", rows, workers, ranges[i-1], rg)
				}
				if rg.Rows() < minSize {
					minSize = rg.Rows()
				}
				if rg.Rows() > maxSize {
					maxSize = rg.Rows()
				}
			}
			if maxSize-minSize > 1 {
				t.Fatalf("rows=%v workers=%v: unbalanced ranges, sizes differ by %v", rows, workers, maxSize-minSize)
			}
		}
	}
}

func TestClampWorkers(t *testing.T) {
	cases := []struct {
		workers int
		rows    int
		want    int
	}{
		{4, 10, 4},
		{10, 10, 10},
		{11, 10, 10},
		{100, 3, 3},
		{0, 5, 1},
	}
	for _, tc := range cases {
		if got := clampWorkers(tc.workers, tc.rows); got != tc.want {
			t.Errorf("clampWorkers(%v, %v) = %v, want %v", tc.workers, tc.rows, got, tc.want)
		}
	}
}
