package gui

import (
	"github.com/stupied4ever/tig/pkg/vcs"
)

// OpenTree opens (or re-roots) the tree view at dir, per spec §4.H.
func (gui *Gui) OpenTree(dir string) (*View, error) {
	state := &TreeState{Dir: dir, SizeMode: gui.Opt.ShowFileSize}
	ops := &TreeOps{State: state}
	ops.OpenBlob = func(relPath string) {
		gui.pendingBlob = relPath
	}
	v := NewView("tree", ops)
	if err := v.BeginUpdate(false); err != nil {
		return nil, err
	}
	return v, nil
}

// OpenStatus synchronously loads all three status sections (spec §4.K):
// unlike the streaming views, status has no single pipe to poll, so the
// three `git diff-index`/`diff-files`/`ls-files` invocations run to
// completion here and the view starts already StateLoaded.
func (gui *Gui) OpenStatus() (*View, error) {
	unbornHEAD := gui.Repo.HeadOID == ""
	staged, unstaged, untracked := vcs.BuildStatusArgv(unbornHEAD, gui.Opt.StatusUntrackedDirs)

	state := &StatusState{
		HeaderState:   vcs.DetectHeaderState(gui.Repo.GitDir, gui.Repo.HeadBranch),
		UnbornHEAD:    unbornHEAD,
		UntrackedDirs: gui.Opt.StatusUntrackedDirs,
	}
	ops := &StatusOps{State: state}

	stagedOut, err := gui.Runner.RunCapture(staged)
	if err != nil {
		return nil, err
	}
	unstagedOut, err := gui.Runner.RunCapture(unstaged)
	if err != nil {
		return nil, err
	}
	untrackedOut, err := gui.Runner.RunCapture(untracked)
	if err != nil {
		return nil, err
	}

	ops.SetSection(vcs.StatusStaged, vcs.ParseDiffIndexZ(stagedOut, vcs.StatusStaged))
	ops.SetSection(vcs.StatusUnstaged, vcs.ParseDiffIndexZ(unstagedOut, vcs.StatusUnstaged))
	ops.SetSection(vcs.StatusUntracked, vcs.ParseLsFilesZ(untrackedOut, vcs.StatusUntracked, '?'))

	v := NewView("status", ops)
	v.Lines = renderStatusLines(state.Rows)
	v.State = StateLoaded
	return v, nil
}

// OpenStash opens the stash view (spec §4.G "Stash"): a `git stash list`
// pipe parsed by StashOps rather than the commit-graph MainState, since each
// row carries its own stash@{N} id ahead of the usual subject.
func (gui *Gui) OpenStash() (*View, error) {
	ops := &StashOps{}
	v := NewView("stash", ops)
	if err := v.BeginUpdate(false); err != nil {
		return nil, err
	}
	return v, nil
}

// OpenBlame opens a two-phase blame view on path at ref (empty ref blames
// the working copy): the file's current text is fetched synchronously to
// seed vcs.NewBlameView with unattributed lines, then the real `git blame
// --incremental` pipe is started to annotate them (spec §4.I).
func (gui *Gui) OpenBlame(path, ref string) (*View, error) {
	target := ref
	if target == "" {
		target = "HEAD"
	}
	fileText, err := gui.Runner.RunCapture([]string{"git", "show", target + ":" + path})
	if err != nil {
		return nil, err
	}

	state := &BlameState{View: vcs.NewBlameView(fileText, path), Ref: ref, Path: path}
	ops := &BlameOps{State: state}
	ops.OpenParent = func(parentID, parentFilename string, parentLine int) {
		gui.pendingBlameParent = &blameJump{commit: parentID, path: parentFilename, line: parentLine}
	}
	ops.DiffAgainstParent = func(c *vcs.BlameCommit) string {
		out, err := gui.Runner.RunCapture([]string{"git", "diff", "-U0", c.Previous, c.ID, "--", path})
		if err != nil {
			return ""
		}
		return out
	}

	v := NewView("blame", ops)
	v.Lines = RenderBlameLines(state.View, gui.Opt)
	if err := v.BeginUpdate(false); err != nil {
		return nil, err
	}
	return v, nil
}

// blameJump records a pending parent-navigation request raised from
// BlameOps.Request, resolved the next time the key handler checks it.
type blameJump struct {
	commit string
	path   string
	line   int
}

// OpenShow opens a one-shot pager view over argv (spec §4.F), used for `tig
// show`/`:` commands whose output doesn't need the main view's graph/commit
// parsing.
func (gui *Gui) OpenShow(argv []string) (*View, error) {
	ops := &PagerOps{
		CommandTemplate: func(v *View, reload bool) []string { return argv },
		Lineinfo:        gui.Store.Lines,
	}
	v := NewView("pager", ops)
	v.Argv = argv
	if err := v.BeginUpdate(false); err != nil {
		return nil, err
	}
	return v, nil
}
