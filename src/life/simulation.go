package life

import (
	"sync"
	"time"
)

//RunningState is the simulation running status at the concrete moment
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

//Status represents the state of the simulation at a concrete moment
type Status struct {
	Generation  int
	LiveCells   int
	StepTime    time.Duration
	RunningMode RunningState
}

//Viewer is the interface to any viewer - the object who can display the
//simulation or control it
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start()
}

//Template is a seeding pattern that can be settled onto the board
//by name
type Template struct {
	Name        string
	Descr       string
	Coordinates [][]int //array of [row, col] coordinates
}

/*
	Simulation is the stateful, interactive driver around one engine.
	It owns the current board and serializes every operation through a
	control goroutine, commands return immediately and status updates are
	fanned out over stateCh. The board moves strictly one generation at a
	time: a step promotes the engine's fully computed result before the next
	step may begin.
*/
type Simulation struct {
	cfg    RunConfig
	engine Engine
	board  struct {
		Board
		sync.Mutex
	}
	state struct {
		Status
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
}

//NewSimulation creates a Simulation with the initial board seeded from the
//configuration and starts its control loop
func NewSimulation(cfg RunConfig, e Engine, stateCh chan Status) *Simulation {
	s := Simulation{
		cfg:       cfg,
		engine:    e,
		stateCh:   stateCh,
		templates: map[string]Template{},
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
	}
	s.board.Board = NewBoard(cfg.Rows, cfg.Cols)
	s.refreshView()
	go s.mainLoop()
	return &s
}

//AddTemplate registers a seeding template, the board can be populated with
//it by SettleTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	s.templates[tmpl.Name] = tmpl
}

//SettleTemplate populates the board with the named template
func (s *Simulation) SettleTemplate(name string) {
	tmpl, ok := s.templates[name]
	if !ok {
		return
	}
	s.board.Lock()
	s.board.Settle(tmpl.Coordinates)
	live := s.board.LiveCells()
	s.board.Unlock()
	s.state.LiveCells = live
	s.refreshView()
}

//Reseed replaces the board with a fresh random one from the configured seed
func (s *Simulation) Reseed() {
	if s.state.RunningMode == RunningStateManual || s.state.RunningMode == RunningStateFinished {
		s.controlCh <- s.clear
		s.controlCh <- func() {
			s.board.Lock()
			s.board.Board = RandomBoard(s.cfg.Rows, s.cfg.Cols, s.cfg.Seed)
			live := s.board.LiveCells()
			s.board.Unlock()
			s.state.LiveCells = live
			s.refreshView()
		}
	}
}

//ToggleCell inverses the cell state at (r, c)
func (s *Simulation) ToggleCell(r int, c int) {
	if r < 0 || r >= s.cfg.Rows || c < 0 || c >= s.cfg.Cols {
		return
	}
	s.board.Lock()
	s.board.Cells[r][c] = !s.board.Cells[r][c]
	s.board.Unlock()
	s.refreshView()
}

//RegisterViewer registers the viewer - the simulation will call it back
//whenever the state changes
func (s *Simulation) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns the current simulation status
func (s *Simulation) Status() Status {
	return s.state.Status
}

//Config returns the run configuration
func (s *Simulation) Config() RunConfig {
	return s.cfg
}

//EngineName returns the name of the engine driving the simulation
func (s *Simulation) EngineName() string {
	return s.engine.Name()
}

//Board returns the current generation.
//A promoted board is never mutated, so the returned value stays consistent
//even while the next generation is being computed.
func (s *Simulation) Board() Board {
	s.board.Lock()
	defer s.board.Unlock()
	return s.board.Board
}

//Run starts free-running simulation, returns immediately
func (s *Simulation) Run() {
	s.controlCh <- s.run
}

//Stop stops a free-running simulation, returns immediately
func (s *Simulation) Stop() {
	s.controlCh <- s.stop
}

//Step does one simulation step, returns immediately.
//The Status struct is written to the stateCh on start and on finish.
func (s *Simulation) Step() {
	s.controlCh <- s.step
}

//Clear kills all cells and resets all counters, returns immediately
func (s *Simulation) Clear() {
	s.controlCh <- s.clear
}

//Close stops the control loop and closes its channels, returns immediately
func (s *Simulation) Close() {
	s.closeCh <- true
}

//mainLoop - the control cycle, runs as a goroutine,
//waits for commands and executes them one at a time
func (s *Simulation) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:

		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//switchRunningState switches the simulation to the given RunningState
//and signals the new status over stateCh
func (s *Simulation) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the free-running cycle.
//It stops on Stop() or when the iteration bound is reached, steps are
//dispatched through the control loop so generation N+1 never starts before
//generation N has fully joined.
func (s *Simulation) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.state.RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if mode != RunningStateStep {
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			}
			if s.cfg.Delay > 0 {
				time.Sleep(s.cfg.Delay)
			}
		}
	}()
}

//stop stops the free-running cycle
func (s *Simulation) stop() {
	if s.state.RunningMode == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step advances the board one generation
func (s *Simulation) step() {
	finished := false
	rm := s.state.RunningMode
	maxIter := s.cfg.Iters
	s.state.Generation++
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	if maxIter != 0 && s.state.Generation >= maxIter {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)

	start := time.Now()
	s.board.Lock()
	next := s.engine.Advance(s.board.Board)
	changed := !next.Equal(s.board.Board)
	s.board.Board = next
	s.board.Unlock()

	live := next.LiveCells()
	s.state.LiveCells = live
	s.state.StepTime = time.Since(start)
	if live == 0 || !changed {
		finished = true
	}
}

//clear clears the board and resets all counters
func (s *Simulation) clear() {
	s.state.Lock()
	s.board.Lock()
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.board.Board = NewBoard(s.cfg.Rows, s.cfg.Cols)
	s.state.RunningMode = RunningStateManual
	s.board.Unlock()
	s.state.Unlock()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls Refresh for all registered viewers
func (s *Simulation) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
