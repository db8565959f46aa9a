package life

import "testing"

const (
	benchRows    = 200
	benchCols    = 200
	benchSeed    = 42
	benchIters   = 10
	benchWorkers = 8
)

func Benchmark_Advance(b *testing.B) {
	for _, name := range engineNames() {
		b.Run(name, func(b *testing.B) {
			e := Engines[name](benchWorkers)
			board := RandomBoard(benchRows, benchCols, benchSeed)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board = e.Advance(board)
			}
		})
	}
}

func Benchmark_Run(b *testing.B) {
	cfg := RunConfig{
		Rows:    benchRows,
		Cols:    benchCols,
		Iters:   benchIters,
		Seed:    benchSeed,
		Workers: benchWorkers,
	}
	for _, name := range engineNames() {
		b.Run(name, func(b *testing.B) {
			e := Engines[name](benchWorkers)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Run(cfg, e, nil)
			}
		})
	}
}
