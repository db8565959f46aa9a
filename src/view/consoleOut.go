package view

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/Ulferin/GameOfLife/src/life"
)

//glyphs of the textual board rendering
const (
	aliveCell      = "X "
	deadCell       = "° "
	frameDelimiter = " ---------------------- "
)

//PrintBoard writes a textual rendering of the board, one line per row,
//followed by a delimiter line separating it from the next frame
func PrintBoard(w io.Writer, b life.Board) {
	var buf bytes.Buffer
	for _, row := range b.Cells {
		for _, e := range row {
			if e {
				buf.WriteString(aliveCell)
			} else {
				buf.WriteString(deadCell)
			}
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(frameDelimiter)
	buf.WriteByte('\n')
	_, _ = w.Write(buf.Bytes())
}

//ConsoleOut is the plain stdout viewer for non-interactive runs,
//prints the configuration on registration and progress while running
type ConsoleOut struct {
	s         *life.Simulation
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Register(s *life.Simulation) {
	c.s = s
	cfg := s.Config()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", cfg.Rows, cfg.Cols)
	fmt.Printf("  Engine: %v\n", s.EngineName())
	fmt.Printf("  Workers: %v\n", cfg.Workers)
	fmt.Printf("  Iterations: %v\n", cfg.Iters)
	fmt.Printf("  Seed: %v\n", cfg.Seed)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.RunningMode == life.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nFinished:")
		fmt.Printf("  Last iteration: %v\n", st.Generation)
		fmt.Printf("  Live cells: %v\n", st.LiveCells)
		fmt.Printf("  Total time: %v\n", totalTime)
	} else if st.RunningMode == life.RunningStateRun {
		if st.Generation%10 == 0 {
			fmt.Printf("  Iterations done: %v\n", st.Generation)
		}
	}
}
