package life

import (
	"fmt"
	"time"
)

//default configuration
const (
	DefRows    = 40
	DefCols    = 40
	DefIters   = 1000
	DefSeed    = 1
	DefDelay   = time.Millisecond * 100
	DefWorkers = 4
)

//RunConfig holds the validated parameters of one run,
//immutable for the run's lifetime
type RunConfig struct {
	Rows    int
	Cols    int
	Iters   int
	Seed    int64
	Delay   time.Duration
	Workers int
	Render  bool
}

var DefaultRunConfig = RunConfig{
	Rows:    DefRows,
	Cols:    DefCols,
	Iters:   DefIters,
	Seed:    DefSeed,
	Delay:   DefDelay,
	Workers: DefWorkers,
}

//Validate rejects malformed configurations at the boundary,
//the engines never see one
func (c RunConfig) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("board dimensions must be positive, got %vx%v", c.Rows, c.Cols)
	}
	if c.Iters < 0 {
		return fmt.Errorf("iterations must not be negative, got %v", c.Iters)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", c.Delay)
	}
	if c.Workers < 1 {
		return fmt.Errorf("at least one worker is required, got %v", c.Workers)
	}
	return nil
}

//Result is the outcome of a timed run
type Result struct {
	Final   Board
	Elapsed time.Duration
}

//Run builds the initial board from the configured seed, then advances it
//exactly cfg.Iters generations in strict sequence, timing the whole loop.
//The initial generation is excluded from the measurement.
//When cfg.Render is set, render is called with each new generation and the
//run sleeps cfg.Delay between frames.
func Run(cfg RunConfig, e Engine, render func(Board)) Result {
	board := RandomBoard(cfg.Rows, cfg.Cols, cfg.Seed)
	start := time.Now()
	for i := 0; i < cfg.Iters; i++ {
		board = e.Advance(board)
		if cfg.Render && render != nil {
			render(board)
			time.Sleep(cfg.Delay)
		}
	}
	return Result{Final: board, Elapsed: time.Since(start)}
}
