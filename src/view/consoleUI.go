package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Ulferin/GameOfLife/src/life"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the full-screen terminal viewer, it displays the board with
//the run configuration and status panes and drives the simulation through
//keybindings
type ConsoleUI struct {
	s          *life.Simulation
	g          *gocui.Gui
	k          []keyBindings
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[life.RunningState]string{
		life.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		life.RunningStateStep:     "do the step",
		life.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		life.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewConsoleUI() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextStep,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Reseed random",
			t.cmdReseed,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"board"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(s *life.Simulation) {
	t.s = s
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderBoard(t.s.Board())
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderBoard(board life.Board) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("board")
		if e != nil {
			return e
		}
		//the entire board is redrawn at once
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if board.Cols > maxW || board.Rows > maxH {
			crop = true
		}

		var b bytes.Buffer

		for i, row := range board.Cells {
			//discard the data outside the view area
			if i >= maxH {
				break
			}
			//line feed char
			if i != 0 {
				b.WriteByte(10)
			}
			if crop && i == (maxH-1) {
				b.WriteString(aurora.Red("The board is larger than the viewing area").BgBlack().String())
				break
			}
			for j, e := range row {
				if j >= maxW {
					break
				}
				if bool(e) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.s.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when called from a goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.s.Config()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Rows, c.Cols))
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", t.s.EngineName()))
			_, _ = fmt.Fprintln(v, t.renderProp("Workers", "%v", c.Workers))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Delay))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.Iters))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("board")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Game of Life strategy benchmark"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
		t.renderBoard(t.s.Board())
	} else {
		t.renderBoard(t.s.Board())
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.s.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.s.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.s.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.s.Clear()
	return nil
}

func (t *ConsoleUI) cmdReseed(_ *gocui.View) error {
	t.s.Reseed()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.s.ToggleCell(cy, cx)
	return nil
}
