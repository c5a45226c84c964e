package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/sirupsen/logrus"

	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/lineinfo"
	"github.com/stupied4ever/tig/pkg/screen"
	"github.com/stupied4ever/tig/pkg/tasks"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// pollDeadline bounds how long a single Pipe.Poll call may block the event
// loop's tick, per spec §5 "never blocks longer than the deadline".
const pollDeadline = 10 * time.Millisecond

// overlappingEdges controls whether adjacent split panes share a border
// column.
var overlappingEdges = false

// Gui wraps the gocui terminal and drives the view Engine from a single
// event loop: one cooperative goroutine polling every open view's pipe
// instead of a background poller plus several per-panel tickers. Every tick
// polls each live pipe once, feeds whatever complete lines are ready, and
// returns control to gocui, rather than handing pipe reads to their own
// goroutines.
type Gui struct {
	g    *gocui.Gui
	Log  *logrus.Entry
	Repo *vcs.Facts

	Runner   *vcs.Runner
	Opt      *config.Options
	Registry *keymap.Registry
	Store    *config.Store
	Engine   *Engine
	tasks    *tasks.TaskManager

	pipes  map[*View]*vcs.Pipe
	prompt *promptSession

	// pendingBlob/pendingBlameParent carry the argument a TreeOps/BlameOps
	// callback wants the next Engine.OpenView call to act on: Dispatch always
	// resolves a view-open request through the same per-view Ops.Request call
	// that set these, so they are read back synchronously one step later.
	pendingBlob        string
	pendingBlameParent *blameJump

	ErrorChan chan error
}

// NewGui wires an Engine and keymap registry around a freshly discovered
// repository. The gocui.Gui itself is created lazily in Run, mirroring the
// teacher's Run()-not-NewGui() ownership of the terminal handle.
func NewGui(log *logrus.Entry, repo *vcs.Facts, runner *vcs.Runner, store *config.Store) *Gui {
	gui := &Gui{
		Log:       log,
		Repo:      repo,
		Runner:    runner,
		Opt:       store.Options,
		Registry:  store.Keymaps,
		Store:     store,
		Engine:    &Engine{Opt: store.Options},
		tasks:     tasks.NewTaskManager(),
		pipes:     map[*View]*vcs.Pipe{},
		ErrorChan: make(chan error),
	}
	gui.Engine.OpenView = gui.openViewForRequest
	return gui
}

// openViewForRequest backs Engine.OpenView: every REQ_VIEW_* request the
// dispatcher cannot resolve by itself (spec §4.E "Request dispatch") comes
// back here to actually build the named view.
func (gui *Gui) openViewForRequest(req keymap.Request) *View {
	var v *View
	var err error

	switch req {
	case keymap.ReqViewMain, keymap.ReqViewLog:
		v, err = gui.OpenLog(gui.defaultLogArgv())
	case keymap.ReqViewStatus:
		v, err = gui.OpenStatus()
	case keymap.ReqViewStash:
		v, err = gui.OpenStash()
	case keymap.ReqViewTree:
		v, err = gui.OpenTree("")
	case keymap.ReqViewBlob:
		path := gui.pendingBlob
		gui.pendingBlob = ""
		v, err = gui.OpenShow([]string{"git", "show", gui.Repo.HeadOID + ":" + path})
	case keymap.ReqViewBlame:
		jump := gui.pendingBlameParent
		gui.pendingBlameParent = nil
		if jump != nil {
			v, err = gui.OpenBlame(jump.path, jump.commit)
		} else if cur := gui.Engine.Current(); cur != nil {
			v, err = gui.OpenBlame(cur.Kind, "")
		}
	default:
		return nil
	}
	if err != nil {
		gui.Log.WithError(err).Warnf("open view for request %q", keymap.RequestName(req))
		return nil
	}
	return v
}

// OpenLog opens the default log/main view argv resolves against: the view
// tig shows with no subcommand and no explicit view request (spec §4.G).
func (gui *Gui) OpenLog(argv []string) (*View, error) {
	state := NewMainState(gui.Repo.HeadOID, gui.Opt.ShowChanges, vcs.GraphStyle(gui.Opt.LineGraphics))
	v := NewView("main", &MainOps{State: state, Opt: gui.Opt})
	v.Argv = argv
	if err := v.BeginUpdate(false); err != nil {
		return nil, err
	}
	return v, nil
}

// defaultLogArgv builds the `git log --pretty=raw` invocation used whenever
// the main view is (re)opened without CLI-supplied revs/paths, e.g. from a
// view-switch key press rather than `tig log` itself.
func (gui *Gui) defaultLogArgv() []string {
	argv := []string{"git", "log", "--pretty=raw"}
	return append(argv, vcs.LogArgvForCommitOrder(vcs.CommitOrderModeLike(gui.Opt.CommitOrder))...)
}

// Run starts the terminal UI and blocks until the user quits.
func (gui *Gui) Run() error {
	g, err := gocui.NewGui(gocui.OutputTrue, overlappingEdges, gocui.NORMAL, false, map[rune]string{})
	if err != nil {
		return err
	}
	defer g.Close()
	gui.g = g

	g.SetManager(gocui.ManagerFunc(gui.layout))

	if err := gui.keybindings(g); err != nil {
		return err
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			g.Update(func(*gocui.Gui) error {
				gui.pollPipes()
				return nil
			})
		}
	}()

	err = g.MainLoop()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

// pollPipes implements spec §4.E's update loop steps 1-4 across every open
// view, called once per tick from the single event loop. A view entering
// StateLoading has no pipe yet; this is where the subprocess named by its
// already-resolved Argv actually gets spawned, keeping View/BeginUpdate
// itself free of any subprocess dependency so the engine stays testable
// without a real git binary.
func (gui *Gui) pollPipes() {
	for _, v := range gui.Engine.Views {
		switch v.State {
		case StateLoading:
			gui.pollLoadingView(v)
		case StateClosed:
			gui.stopPipe(v)
		}
	}
}

func (gui *Gui) pollLoadingView(v *View) {
	pipe, ok := gui.pipes[v]
	if !ok {
		p, err := gui.Runner.OpenPipe(v.Argv, v.Height, v.Width)
		if err != nil {
			gui.Log.WithError(err).Errorf("open pipe for %q view", v.Kind)
			v.State = StateLoaded
			return
		}
		gui.pipes[v] = p
		pipe = p
	}

	lines, closed := pipe.Poll(pollDeadline)
	for _, line := range lines {
		v.FeedLine(line, false)
	}
	if closed {
		v.FeedLine("", true)
		delete(gui.pipes, v)
		gui.finalizeView(v)
	}
}

// finalizeView runs any view-kind-specific work that only makes sense once
// its pipe has fully drained, for view kinds whose Ops.Read intentionally
// does nothing per-line (spec §4.I "blame's incremental records span
// multiple lines"). Everything else is finalized incrementally by Ops.Read
// already and needs nothing further here.
func (gui *Gui) finalizeView(v *View) {
	bops, ok := v.Ops.(*BlameOps)
	if !ok {
		return
	}
	raw := joinLines(v.Lines)
	if err := bops.FeedIncrementalBlock(raw); err != nil {
		gui.Log.WithError(err).Warn("blame parse error")
	}
	v.Lines = RenderBlameLines(bops.State.View, gui.Opt)
}

func (gui *Gui) stopPipe(v *View) {
	pipe, ok := gui.pipes[v]
	if !ok {
		return
	}
	_ = pipe.Stop()
	delete(gui.pipes, v)
}

func (gui *Gui) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	for i, v := range gui.Engine.Views {
		height := maxY
		width := maxX
		x0, y0 := 0, 0
		if len(gui.Engine.Views) == 2 {
			layout := OpenSplit(gui.Opt.VerticalSplit, gui.splitStep(), maxDimFor(gui.Opt.VerticalSplit, maxX, maxY))
			if gui.Opt.VerticalSplit {
				width = pickDim(i, layout.ParentDim, layout.ChildDim)
				x0 = pickOffset(i, 0, layout.ParentDim)
			} else {
				height = pickDim(i, layout.ParentDim, layout.ChildDim)
				y0 = pickOffset(i, 0, layout.ParentDim)
			}
		}
		v.Width, v.Height = width, height

		gv, err := g.SetView(v.Kind, x0, y0, x0+width-1, y0+height-1, 0)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		gui.render(gv, v)
	}
	return nil
}

func (gui *Gui) splitStep() float64 {
	if gui.Opt.VerticalSplit {
		return gui.Opt.ScaleVsplitView
	}
	return gui.Opt.SplitViewHeight
}

func maxDimFor(vertical bool, width, height int) int {
	if vertical {
		return width
	}
	return height
}

func pickDim(i, parent, child int) int {
	if i == 0 {
		return parent
	}
	return child
}

func pickOffset(i, parentStart, parentDim int) int {
	if i == 0 {
		return parentStart
	}
	return parentStart + parentDim
}

// render draws one view's visible rows into its gocui pane, going through
// the draw primitives in pkg/screen (spec component D) rather than writing
// raw text: the title bar, per-row line numbers, and classified styling all
// flow from here.
func (gui *Gui) render(gv *gocui.View, v *View) {
	if gv == nil {
		return
	}
	gv.Clear()
	gv.Title = gui.titleFor(v)

	start := v.Pos.Offset
	end := start + v.Height
	if end > len(v.Lines) {
		end = len(v.Lines)
	}
	rows := make([]string, 0, end-start)
	for i, line := range v.Lines[start:end] {
		rows = append(rows, gui.renderLine(v, start+i+1, line))
	}
	fmt.Fprint(gv, strings.Join(rows, "\n"))
}

// titleFor assembles the "[name] ref - type lineno of N (pct%)" bar
// screen.TitleBar formats, pulling the current branch as ref and using the
// view's own pipe/loading state for the "loading Ns" suffix.
func (gui *Gui) titleFor(v *View) string {
	ref := ""
	if gui.Repo != nil {
		ref = gui.Repo.HeadBranch
	}
	pipeOpen := v.State == StateLoading
	return screen.TitleBar(v.Kind, ref, v.Kind, v.Pos.Lineno, len(v.Lines), v.LoadingSeconds(), pipeOpen)
}

// renderLine draws one already-selected row: an optional line-number column
// (spec §4.D, gated on ShowLineNumbers) followed by the classified line text,
// tab-expanded and tilde-truncated to the view's width.
func (gui *Gui) renderLine(v *View, lineno int, line string) string {
	var cell builderCell
	canvas := &screen.Canvas{Cell: &cell, Width: maxInt(v.Width, 1), Offset: v.Pos.Col}

	info := lineinfo.Info{FG: -1}
	if gui.Store != nil && gui.Store.Lines != nil {
		info = gui.Store.Lines.Classify(line)
	}

	if gui.Opt.ShowLineNumbers {
		useACS := gui.Opt.LineGraphics == config.GraphicUTF8
		screen.DrawLineNo(canvas, lineinfo.Info{FG: -1}, lineno, v.digits, gui.Opt.LineNumberInterval, useACS)
	}
	screen.DrawChars(canvas, info, line, canvas.Width, gui.Opt.TabSize, true)

	return cell.b.String()
}
