package gui

import (
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// BlameState wraps a vcs.BlameView with the navigation chain needed to open
// blame views recursively (spec §4.I "Parent navigation").
type BlameState struct {
	View *vcs.BlameView
	Ref  string // empty for the working copy
	Path string
}

// BlameOps implements the view engine's Ops contract for the blame view: it
// consumes `git blame --incremental` records line by line and re-dispatches
// parent navigation requests against a fresh blame view.
type BlameOps struct {
	State *BlameState

	// OpenParent is invoked with (parentID, parentFilename, parentLine) when
	// the user asks to jump to the commit that introduced the current line
	// (spec §4.I "Parent navigation"). parentLine is the cursor's line
	// already translated into the parent file through the diff that
	// DiffAgainstParent returns.
	OpenParent func(parentID, parentFilename string, parentLine int)

	// DiffAgainstParent fetches the `-U0` diff text needed by
	// TranslateLineToParent for the commit under the cursor.
	DiffAgainstParent func(commit *vcs.BlameCommit) string
}

func (o *BlameOps) Open(v *View, reload bool) ([]string, error) {
	argv := []string{"git", "blame", "--incremental"}
	if o.State.Ref != "" {
		argv = append(argv, o.State.Ref)
	}
	return append(argv, "--", o.State.Path), nil
}

// Read is a no-op: incremental records span multiple lines, so parsing
// happens out of band via FeedIncrementalBlock once a full block has
// accumulated between polls, rather than line by line here.
func (o *BlameOps) Read(v *View, line string, eof bool) {}

// FeedIncrementalBlock parses one accumulated chunk of `git blame
// --incremental` output into o.State.View.
func (o *BlameOps) FeedIncrementalBlock(raw string) error {
	return o.State.View.ApplyIncremental(raw)
}

func (o *BlameOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	if req != keymap.ReqEnter && req != keymap.ReqParent {
		return req
	}
	if line < 0 || line >= len(o.State.View.Lines) {
		return req
	}
	bl := o.State.View.Lines[line]
	if bl.Commit == nil || bl.Commit.Previous == "" || o.OpenParent == nil {
		return req
	}
	diff := ""
	if o.DiffAgainstParent != nil {
		diff = o.DiffAgainstParent(bl.Commit)
	}
	parentLine := vcs.TranslateLineToParent(diff, line+1)
	o.OpenParent(bl.Commit.Previous, bl.Commit.PrevFile, parentLine)
	return keymap.ReqViewBlame
}

// NeedsFilenameColumn exposes vcs.BlameView's column-visibility rule for
// the draw layer (spec §4.I).
func (o *BlameOps) NeedsFilenameColumn(userBlameOptions []string) bool {
	return o.State.View.NeedsFilenameColumn(userBlameOptions)
}
