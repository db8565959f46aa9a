package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Ulferin/GameOfLife/src/life"
	"github.com/Ulferin/GameOfLife/src/view"
	"github.com/integrii/flaggy"
)

var (
	//a blinker next to a block, a small demo seed for the interactive mode
	demoTemplate = [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2}, {4, 3},
		{5, 3},
	}
)

type EnvOptions struct {
	interactive bool
	progress    bool
	random      bool
	render      bool
	engine      string
}

//rawArgs holds the six positional arguments before integer parsing
type rawArgs struct {
	rows    string
	cols    string
	iters   string
	seed    string
	delay   string
	workers string
}

func main() {
	eo, cfg := initOptions()

	engine := life.Engines[eo.engine](cfg.Workers)

	if eo.interactive {
		s := life.NewSimulation(cfg, engine, nil)
		settle(s, eo.random)
		v := view.NewConsoleUI()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
		return
	}

	if eo.progress {
		runWithProgress(cfg, engine, eo.random)
		return
	}

	fmt.Printf("Running the %v engine on a %vx%v board for %v iterations...\n",
		engine.Name(), cfg.Rows, cfg.Cols, cfg.Iters)

	res := life.Run(cfg, engine, func(b life.Board) {
		view.PrintBoard(os.Stdout, b)
	})

	fmt.Printf("Simulation spent: %v msec\n", res.Elapsed.Milliseconds())
}

//runWithProgress drives the run through the interactive Simulation with the
//plain console viewer, it stops early when the board goes stable or dies out
func runWithProgress(cfg life.RunConfig, engine life.Engine, random bool) {
	s := life.NewSimulation(cfg, engine, make(chan life.Status, 10))
	c := view.NewConsoleOut()
	s.RegisterViewer(c)
	settle(s, random)
	c.Start()
	s.Run()
	for st := range s.StateCh() {
		if st.RunningMode == life.RunningStateFinished {
			break
		}
	}
	s.Close()
	close(s.StateCh())
}

//settle seeds the board with random data or the demo template
func settle(s *life.Simulation, random bool) {
	s.AddTemplate(
		life.Template{
			Name:        "demo",
			Descr:       "a blinker next to a stable block",
			Coordinates: demoTemplate,
		})
	if random {
		s.Reseed()
	} else {
		s.SettleTemplate("demo")
	}
}

func initOptions() (eo *EnvOptions, cfg life.RunConfig) {

	engineNames := make([]string, 0, len(life.Engines))
	for k := range life.Engines {
		engineNames = append(engineNames, k)
	}
	eo = &EnvOptions{engine: "sequential"}

	var a rawArgs
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.AddPositionalValue(&a.rows, "rows", 1, false, "Number of board rows")
	flaggy.AddPositionalValue(&a.cols, "cols", 2, false, "Number of board columns")
	flaggy.AddPositionalValue(&a.iters, "iters", 3, false, "Number of generations to simulate")
	flaggy.AddPositionalValue(&a.seed, "seed", 4, false, "Seed of the initial random board")
	flaggy.AddPositionalValue(&a.delay, "delay", 5, false, "Inter-frame delay in milliseconds (rendering only)")
	flaggy.AddPositionalValue(&a.workers, "workers", 6, false, "Number of workers (ignored by the sequential engine)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.progress, "p", "progress", "Report progress while running instead of timing the run")
	flaggy.Bool(&eo.random, "r", "random", "Settle with random data (interactive mode)")
	flaggy.Bool(&eo.render, "d", "render", "Print the board after every generation")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	_, ok := life.Engines[eo.engine]
	if !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}

	if !eo.interactive {
		for _, v := range []string{a.rows, a.cols, a.iters, a.seed, a.delay, a.workers} {
			if v == "" {
				flaggy.ShowHelpAndExit("expected six positional arguments: rows cols iters seed delay workers")
			}
		}
	}

	cfg = life.RunConfig{
		Rows:    atoiArg(a.rows, life.DefRows),
		Cols:    atoiArg(a.cols, life.DefCols),
		Iters:   atoiArg(a.iters, life.DefIters),
		Seed:    int64(atoiArg(a.seed, life.DefSeed)),
		Delay:   time.Duration(atoiArg(a.delay, int(life.DefDelay/time.Millisecond))) * time.Millisecond,
		Workers: atoiArg(a.workers, life.DefWorkers),
		Render:  eo.render,
	}

	//bounding max parallelism degree with the number of rows
	if cfg.Workers > cfg.Rows {
		fmt.Println("Warning: bounding workers with rows.")
		cfg.Workers = cfg.Rows
	}

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}

//atoiArg parses one positional argument, keeping the default when absent
func atoiArg(s string, def int) int {
	n := def
	if s != "" {
		var err error
		n, err = strconv.Atoi(s)
		if err != nil {
			flaggy.ShowHelpAndExit("malformed argument: " + s)
		}
	}
	return n
}
