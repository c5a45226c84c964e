package gui

import (
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// StatusRow is one row of the status view: either a real entry or a
// section header / "(no files)" placeholder (spec §4.K), the latter
// carried in Header with a nil Entry.
type StatusRow struct {
	Header string // non-empty for header/placeholder rows
	Entry  *vcs.StatusEntry
}

// StatusState holds the three sections plus repo facts needed to build
// status argv and interpret its output (spec §4.K).
type StatusState struct {
	HeaderState   vcs.HeaderState
	UnbornHEAD    bool
	UntrackedDirs bool

	Staged    []vcs.StatusEntry
	Unstaged  []vcs.StatusEntry
	Untracked []vcs.StatusEntry

	Rows []StatusRow
}

// Rebuild flattens the three sections into display rows with header/empty
// placeholders, one row per header and per entry.
func (s *StatusState) Rebuild() {
	s.Rows = nil
	sections := []struct {
		title   string
		entries []vcs.StatusEntry
	}{
		{"Staged changes", s.Staged},
		{"Unstaged changes", s.Unstaged},
		{"Untracked files", s.Untracked},
	}
	for _, sec := range sections {
		s.Rows = append(s.Rows, StatusRow{Header: sec.title})
		if len(sec.entries) == 0 {
			s.Rows = append(s.Rows, StatusRow{Header: "  (no files)"})
			continue
		}
		for i := range sec.entries {
			e := sec.entries[i]
			s.Rows = append(s.Rows, StatusRow{Entry: &e})
		}
	}
}

// StatusOps implements the view engine's Ops contract for the status view.
type StatusOps struct {
	State *StatusState

	// OpenStage is invoked when Enter is pressed on a real entry row, to
	// open its per-file stage pager (spec §4.K "Stage view").
	OpenStage func(kind StageLineType, e vcs.StatusEntry)
}

func (o *StatusOps) Open(v *View, reload bool) ([]string, error) {
	staged, unstaged, untracked := vcs.BuildStatusArgv(o.State.UnbornHEAD, o.State.UntrackedDirs)
	_ = unstaged
	_ = untracked
	return staged, nil // the caller runs all three pipes and feeds results back via SetSection
}

func (o *StatusOps) Read(v *View, line string, eof bool) {}

// SetSection installs a freshly parsed section and rebuilds display rows.
func (o *StatusOps) SetSection(kind vcs.StatusKind, entries []vcs.StatusEntry) {
	switch kind {
	case vcs.StatusStaged:
		o.State.Staged = entries
	case vcs.StatusUnstaged:
		o.State.Unstaged = entries
	case vcs.StatusUntracked:
		o.State.Untracked = entries
	}
	o.State.Rebuild()
}

func (o *StatusOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	row := o.rowAt(line)
	if row == nil || row.Entry == nil {
		return req
	}
	switch req {
	case keymap.ReqEnter:
		if o.OpenStage != nil {
			o.OpenStage(kindForEntry(*row.Entry), *row.Entry)
		}
		return keymap.ReqViewStage
	case keymap.ReqStatusRevert:
		return req // revert argv building is StatusRevert's job, invoked by the caller with this entry
	default:
		return req
	}
}

func (o *StatusOps) rowAt(line int) *StatusRow {
	if line < 0 || line >= len(o.State.Rows) {
		return nil
	}
	return &o.State.Rows[line]
}

// EntryAt exposes the StatusEntry under the cursor, or nil for a header
// row, for callers driving StatusUpdate/StatusRevert from the key handler.
func (o *StatusOps) EntryAt(line int) *vcs.StatusEntry {
	row := o.rowAt(line)
	if row == nil {
		return nil
	}
	return row.Entry
}

func kindForEntry(e vcs.StatusEntry) StageLineType {
	switch {
	case e.Unmerged:
		return StageUnmerged
	case e.Kind == vcs.StatusStaged:
		return StageStaged
	case e.Kind == vcs.StatusUnstaged:
		return StageUnstaged
	default:
		return StageUntracked
	}
}

// StageOps implements the per-file stage pager (spec §4.K "Stage view"): a
// pager view that additionally supports staging/unstaging the whole file or
// a single line, and jumping to the next hunk.
type StageOps struct {
	PagerOps

	Kind       StageLineType
	Entry      vcs.StatusEntry
	HunkRows   []int // indices of "@@" lines in the loaded diff, for stage-next

	// ApplyPatch is invoked with the patch text and flags to run `git
	// apply`; the caller owns subprocess execution.
	ApplyPatch func(patch string, flags ApplyFlags) error
}

func (o *StageOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	switch req {
	case keymap.ReqStageNext:
		next := NextHunkIndex(o.HunkRows, v.Pos.Lineno)
		if next >= 0 {
			v.Pos.Lineno = next
			v.Pos = ScrollToShow(v.Pos, v.Height)
		}
		return req
	case keymap.ReqStageUpdateLine:
		hunk, ok := o.hunkAt(v, line)
		if !ok || o.ApplyPatch == nil {
			return req
		}
		selectedIdx := line - hunk.start - 1
		patch, err := BuildSingleLinePatch(Hunk{
			HeaderGroup: hunk.headerGroup,
			HunkHeader:  v.Lines[hunk.start],
			OldStart:    hunk.oldStart,
			NewStart:    hunk.newStart,
			Lines:       hunk.lines,
		}, selectedIdx)
		if err != nil {
			return req
		}
		flags := FlagsForStage(o.Kind, true, false)
		_ = o.ApplyPatch(patch, flags)
		return keymap.ReqRefresh
	case keymap.ReqStatusUpdate:
		hunk, ok := o.hunkAt(v, line)
		if !ok || o.ApplyPatch == nil {
			return req
		}
		patch := BuildApplyPatch(Hunk{
			HeaderGroup: hunk.headerGroup,
			HunkHeader:  v.Lines[hunk.start],
			OldStart:    hunk.oldStart,
			NewStart:    hunk.newStart,
			Lines:       hunk.lines,
		})
		flags := FlagsForStage(o.Kind, false, false)
		_ = o.ApplyPatch(patch, flags)
		return keymap.ReqRefresh
	default:
		return req
	}
}

type resolvedHunk struct {
	start, oldStart, newStart int
	headerGroup               []string
	lines                     []string
}

// hunkAt finds the @@ header enclosing line and its preceding "diff --git"
// through "+++" header group (spec §4.K step 1 "locate enclosing hunk").
func (o *StageOps) hunkAt(v *View, line int) (resolvedHunk, bool) {
	start := -1
	for i := line; i >= 0; i-- {
		if len(v.Lines[i]) >= 2 && v.Lines[i][:2] == "@@" {
			start = i
			break
		}
	}
	if start < 0 {
		return resolvedHunk{}, false
	}
	var headerGroup []string
	for i := start - 1; i >= 0; i-- {
		headerGroup = append([]string{v.Lines[i]}, headerGroup...)
		if len(v.Lines[i]) >= 10 && v.Lines[i][:10] == "diff --git" {
			break
		}
	}
	end := len(v.Lines)
	for i := start + 1; i < len(v.Lines); i++ {
		if len(v.Lines[i]) >= 2 && v.Lines[i][:2] == "@@" {
			end = i
			break
		}
	}
	old, new := parseHunkStarts(v.Lines[start])
	return resolvedHunk{
		start: start, oldStart: old, newStart: new,
		headerGroup: headerGroup, lines: v.Lines[start+1 : end],
	}, true
}
