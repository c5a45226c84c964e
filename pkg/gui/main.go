package gui

import (
	"strings"

	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// MainRow is one rendered row of the main/log graph view: a commit plus its
// rendered graph lane prefix (spec §4.G).
type MainRow struct {
	Commit    *vcs.Commit
	Graph     vcs.GraphRow
	Synthetic bool // true for the virtual "Staged changes"/"Unstaged changes" rows
}

// MainState accumulates incremental raw-commit parsing into MainRow
// entries, wired with a graph renderer and the HEAD id used to decide
// whether to inject the synthetic staged/unstaged rows (spec §4.G).
type MainState struct {
	Parser      vcs.CommitParser
	Graph       *vcs.GraphRenderer
	HeadID      string
	ShowChanges bool
	HasStaged   bool
	HasUnstaged bool

	Rows []MainRow
}

// NewMainState constructs a parser/graph pair for a fresh main view.
func NewMainState(headID string, showChanges bool, style vcs.GraphStyle) *MainState {
	return &MainState{
		Graph:       vcs.NewGraphRenderer(style),
		HeadID:      headID,
		ShowChanges: showChanges,
	}
}

// FeedRawLogLine advances the commit parser and, once a commit flushes,
// appends its MainRow (plus synthetic staged/unstaged rows immediately
// before HEAD's row, per spec §4.G "commit <id>: ... injects synthetic
// Staged changes and Unstaged changes rows").
func (m *MainState) FeedRawLogLine(line string) {
	if commit, ok := m.Parser.Feed(line); ok {
		m.appendCommit(commit)
	}
}

// Flush finalizes any in-progress commit at EOF.
func (m *MainState) Flush() {
	if commit, ok := m.Parser.Flush(); ok {
		m.appendCommit(commit)
	}
}

func (m *MainState) appendCommit(c *vcs.Commit) {
	if m.ShowChanges && c.ID == m.HeadID {
		if m.HasStaged {
			m.Rows = append(m.Rows, MainRow{Synthetic: true, Commit: &vcs.Commit{Title: "Staged changes", Parents: []string{m.HeadID}, Virtual: true}})
		}
		if m.HasUnstaged {
			m.Rows = append(m.Rows, MainRow{Synthetic: true, Commit: &vcs.Commit{Title: "Unstaged changes", Parents: []string{m.HeadID}, Virtual: true}})
		}
	}
	row := m.Graph.Render(c)
	m.Rows = append(m.Rows, MainRow{Commit: c, Graph: row})
}

// MainOps implements the view engine's Ops contract for the main/log view.
type MainOps struct {
	State *MainState
	Opt   *config.Options
}

func (o *MainOps) Open(v *View, reload bool) ([]string, error) {
	return v.Argv, nil
}

func (o *MainOps) Read(v *View, line string, eof bool) {
	if eof {
		o.State.Flush()
		v.Lines = RenderMainLines(o.State.Rows, o.Opt, maxInt(v.Width, 80))
		return
	}
	o.State.FeedRawLogLine(line)
}

func (o *MainOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	return req
}

func (o *MainOps) Select(v *View, line int) {
	// updates ref_commit: left to the caller wiring RefCommit, since the
	// engine itself has no notion of "current commit under cursor" beyond
	// the row index.
}

// StashRow is one row of the stash view: the same Commit row shape as main,
// parsed from `git stash list` output rather than the main view's parser,
// plus a widening stash-id column (spec §4.G "Stash").
type StashRow struct {
	StashID string
	Commit  vcs.Commit
}

// StashIDColumnWidth computes max(prefix, 8+digits(lines)) per spec §4.G.
func StashIDColumnWidth(prefixWidth, lineCount int) int {
	w := 8 + CountDigits(lineCount)
	if prefixWidth > w {
		return prefixWidth
	}
	return w
}

// ParseStashID extracts "stash@{N}" from a `git stash list` style line
// ("stash@{0}: WIP on main: ...").
func ParseStashID(line string) (id string, rest string, ok bool) {
	colon := strings.Index(line, ":")
	if colon < 0 || !strings.HasPrefix(line, "stash@{") {
		return "", line, false
	}
	return line[:colon], strings.TrimSpace(line[colon+1:]), true
}

// StashOps implements the view engine's Ops contract for the stash view
// (spec §4.G "Stash"): each `git stash list` line carries its own stash id
// ahead of the usual commit subject, so rows are parsed and rendered
// directly rather than routed through CommitParser/MainState.
type StashOps struct {
	Rows []StashRow
}

func (o *StashOps) Open(v *View, reload bool) ([]string, error) {
	return []string{"git", "stash", "list", "--pretty=%gd%x00%H%x00%an%x00%at%x00%s"}, nil
}

func (o *StashOps) Read(v *View, line string, eof bool) {
	if eof {
		v.Lines = o.renderLines(v.Width)
		return
	}
	fields := strings.Split(line, "\x00")
	if len(fields) != 5 {
		return
	}
	o.Rows = append(o.Rows, StashRow{
		StashID: fields[0],
		Commit:  vcs.Commit{ID: fields[1], Author: fields[2], Title: fields[4]},
	})
}

func (o *StashOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	return req
}

func (o *StashOps) renderLines(width int) []string {
	prefixWidth := 0
	for _, r := range o.Rows {
		if len(r.StashID) > prefixWidth {
			prefixWidth = len(r.StashID)
		}
	}
	idWidth := StashIDColumnWidth(prefixWidth, len(o.Rows))

	lines := make([]string, len(o.Rows))
	for i, r := range o.Rows {
		lines[i] = renderStashLine(r, idWidth, maxInt(width, 1))
	}
	return lines
}
