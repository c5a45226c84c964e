// Package gui implements the view engine (spec component E) and every
// panel built on top of it (components F-L): pager/diff/log, main/stash,
// tree/blob, blame, branch, status/stage, and prompt/menu. The engine is
// kept free of any terminal library so it can be driven and tested without
// a real screen; a thin gocui-backed shell wires it to the terminal.
package gui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/stupied4ever/tig/pkg/keymap"
)

// State is a view's position in the Unloaded -> Loading -> Loaded -> Closed
// machine (spec §4.E "State machine (per view)").
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateClosed
)

// Ops is the per-view-kind contract spec §4.E lists as "operations each
// view must implement". grep and select are optional, through the Grepper
// and Selecter interfaces below; a view that does not implement them gets
// the engine default.
type Ops interface {
	Open(v *View, reload bool) ([]string, error)
	Read(v *View, line string, eof bool)
	Request(v *View, req keymap.Request, line int) keymap.Request
}

// Grepper is implemented by views with search semantics that differ from a
// plain substring/regex match over the raw line text.
type Grepper interface {
	Grep(v *View, line int, re *regexp.Regexp) bool
}

// Selecter is implemented by views with select-time side effects (spec
// §4.E "select(view, line) -> void: side effects: update ref_commit, etc.").
type Selecter interface {
	Select(v *View, line int)
}

// View holds one panel's loaded lines, cursor/scroll position, and pipe
// state. The business logic here is independent of any rendering surface.
type View struct {
	Kind string
	Ops  Ops

	Dir  string // spawn cwd
	Argv []string

	Lines []string
	Pos   Position
	prevPos *Position // saved across a reload, spec §4.E restore_view_position

	Width, Height int

	State      State
	startedAt  time.Time
	lineNoOpt  bool
	digits     int

	searchRegex     *regexp.Regexp
	searchBackward  bool
	ignoreCase      bool

	Parent *View
	Child  *View
}

// NewView constructs a view in the Unloaded state.
func NewView(kind string, ops Ops) *View {
	return &View{Kind: kind, Ops: ops, State: StateUnloaded}
}

// CountDigits mirrors spec §4.E step 4's digit-count recompute, reusing the
// vcs-layer implementation's semantics for consistency (both are grounded
// on the same "count_digits" idea, kept separate to avoid a gui->vcs
// dependency on an unrelated helper).
func CountDigits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// BeginUpdate opens (or reopens, on reload) the view: it resolves argv via
// Ops.Open, resets line storage when reloading, and transitions to Loading
// (spec §4.E "begin_update normalizes... re-format the command template").
func (v *View) BeginUpdate(reload bool) error {
	argv, err := v.Ops.Open(v, reload)
	if err != nil {
		return err
	}
	v.Argv = argv
	if reload {
		if v.State == StateLoaded && v.Pos == (Position{}) {
			// pristine position survives the reload untouched
		} else {
			saved := v.Pos
			v.prevPos = &saved
		}
		v.Lines = nil
		v.Pos = Position{}
	}
	v.startedAt = timeNow()
	v.State = StateLoading
	return nil
}

// timeNow is a seam so tests can avoid depending on wall-clock time; it
// always returns the real time outside of tests.
var timeNow = time.Now

// LoadingSeconds reports how long a view has been loading, for the "loading
// Ns" title suffix that appears after >= 2s (spec §4.E step 2).
func (v *View) LoadingSeconds() int {
	if v.State != StateLoading {
		return 0
	}
	return int(timeNow().Sub(v.startedAt).Seconds())
}

// FeedLine hands one decoded line to the view (or nil at EOF), then
// recomputes the digit width, forcing a flag the caller can use to trigger
// a full redraw when it changed (spec §4.E steps 1, 3, 4).
func (v *View) FeedLine(line string, eof bool) (digitsChanged bool) {
	before := v.digits
	if eof {
		v.Ops.Read(v, "", true)
		v.State = StateLoaded
		v.restorePosition()
	} else {
		v.Lines = append(v.Lines, line)
		v.Ops.Read(v, line, false)
	}
	v.digits = CountDigits(len(v.Lines))
	return v.lineNoOpt && before != v.digits
}

// restorePosition implements spec §4.E "restore_view_position": a prior
// saved position is reapplied only if the view's position is still
// pristine (the user never moved after the reload began).
func (v *View) restorePosition() {
	if v.prevPos == nil {
		return
	}
	if v.Pos == (Position{}) {
		v.Pos = *v.prevPos
	}
	v.prevPos = nil
}

// SetLineNoOption toggles whether line-number recompute should report a
// changed-digits redraw signal.
func (v *View) SetLineNoOption(on bool) { v.lineNoOpt = on }

// --- Scrolling / moving, spec §4.E "Scrolling" / "Moving" ---

func (v *View) MoveUp(n int)   { v.Pos.Lineno = Clamp(v.Pos.Lineno-n, len(v.Lines)); v.Pos = ScrollToShow(v.Pos, v.Height) }
func (v *View) MoveDown(n int) { v.Pos.Lineno = Clamp(v.Pos.Lineno+n, len(v.Lines)); v.Pos = ScrollToShow(v.Pos, v.Height) }
func (v *View) MovePageUp()    { v.MoveUp(maxInt(v.Height-2, 1)) }
func (v *View) MovePageDown()  { v.MoveDown(maxInt(v.Height-2, 1)) }
func (v *View) MoveFirstLine() { v.Pos.Lineno = 0; v.Pos = ScrollToShow(v.Pos, v.Height) }
func (v *View) MoveLastLine()  { v.Pos.Lineno = Clamp(len(v.Lines)-1, len(v.Lines)); v.Pos = ScrollToShow(v.Pos, v.Height) }

func (v *View) ScrollLineUp(n int)   { v.Pos = ScrollLineUp(v.Pos, n) }
func (v *View) ScrollLineDown(n int) { v.Pos = ScrollLineDown(v.Pos, n, len(v.Lines), v.Height) }
func (v *View) ScrollPageUp()        { v.Pos = ScrollPageUp(v.Pos, v.Height) }
func (v *View) ScrollPageDown()      { v.Pos = ScrollPageDown(v.Pos, len(v.Lines), v.Height) }
func (v *View) ScrollFirstCol()      { v.Pos.Col = 0 }

func (v *View) ScrollLeft(step float64) {
	d := ApplyStep(step, v.Width)
	v.Pos.Col -= d
	if v.Pos.Col < 0 {
		v.Pos.Col = 0
	}
}

func (v *View) ScrollRight(step float64) {
	d := ApplyStep(step, v.Width)
	v.Pos.Col += d
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// --- Searching, spec §4.E "Searching" ---

// Search compiles pattern (optionally case-insensitive) and performs the
// first find in the given direction.
func (v *View) Search(pattern string, backward, ignoreCase bool) error {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return err
	}
	v.searchRegex = re
	v.searchBackward = backward
	v.ignoreCase = ignoreCase
	return v.findNext(backward)
}

// FindNext/FindPrev reuse the compiled regex from the last Search (spec
// §4.E "FindNext/FindPrev reuse the compiled regex").
func (v *View) FindNext() error { return v.findNext(v.searchBackward) }
func (v *View) FindPrev() error { return v.findNext(!v.searchBackward) }

// findNext walks lineno += direction from the line after (or before) the
// cursor and stops at the first or last line: there is no wraparound, so a
// scan that leaves the line array reports "no match".
func (v *View) findNext(backward bool) error {
	if v.searchRegex == nil {
		return fmt.Errorf("no active search")
	}
	n := len(v.Lines)
	if n == 0 {
		return fmt.Errorf("no match")
	}
	dir := 1
	if backward {
		dir = -1
	}
	for cur := v.Pos.Lineno + dir; cur >= 0 && cur < n; cur += dir {
		if v.grep(cur) {
			v.Pos.Lineno = cur
			v.Pos = ScrollToShow(v.Pos, v.Height)
			if sel, ok := v.Ops.(Selecter); ok {
				sel.Select(v, cur)
			}
			return nil
		}
	}
	return fmt.Errorf("no match")
}

func (v *View) grep(line int) bool {
	if g, ok := v.Ops.(Grepper); ok {
		return g.Grep(v, line, v.searchRegex)
	}
	if line < 0 || line >= len(v.Lines) {
		return false
	}
	return v.searchRegex.MatchString(v.Lines[line])
}

// --- Command template substitution, spec §4.E begin_update ---

// Substitutions carries the %(...) values recognized by ExpandArgvTemplate.
type Substitutions struct {
	Directory, File, Ref, Head, Commit, Blob, Branch, Stash, Prompt string
	FileArgs, DiffArgs, BlameArgs, RevArgs                          []string
}

// ExpandArgvTemplate substitutes the %(...) placeholders spec §4.E names
// into a command-line template already tokenized into argv form. A
// placeholder that expands to multiple tokens (the *Args groups) splices
// all of them in place of the single template token.
func ExpandArgvTemplate(template []string, sub Substitutions) []string {
	scalar := map[string]string{
		"%(directory)": sub.Directory,
		"%(file)":      sub.File,
		"%(ref)":       sub.Ref,
		"%(head)":      sub.Head,
		"%(commit)":    sub.Commit,
		"%(blob)":      sub.Blob,
		"%(branch)":    sub.Branch,
		"%(stash)":     sub.Stash,
		"%(prompt)":    sub.Prompt,
	}
	multi := map[string][]string{
		"%(fileargs)":  sub.FileArgs,
		"%(diffargs)":  sub.DiffArgs,
		"%(blameargs)": sub.BlameArgs,
		"%(revargs)":   sub.RevArgs,
	}

	out := make([]string, 0, len(template))
	for _, tok := range template {
		if expansion, ok := multi[tok]; ok {
			out = append(out, expansion...)
			continue
		}
		if val, ok := scalar[tok]; ok {
			out = append(out, val)
			continue
		}
		out = append(out, replaceAllScalars(tok, scalar))
	}
	return out
}

func replaceAllScalars(tok string, scalar map[string]string) string {
	if !strings.Contains(tok, "%(") {
		return tok
	}
	for k, v := range scalar {
		tok = strings.ReplaceAll(tok, k, v)
	}
	return tok
}
