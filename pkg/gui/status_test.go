package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

func TestStatusStateRebuildInsertsHeadersAndPlaceholders(t *testing.T) {
	s := &StatusState{
		Staged: []vcs.StatusEntry{{Name: "a.go", Status: 'M'}},
	}
	s.Rebuild()
	assert.Equal(t, "Staged changes", s.Rows[0].Header)
	assert.Equal(t, "a.go", s.Rows[1].Entry.Name)
	assert.Equal(t, "Unstaged changes", s.Rows[2].Header)
	assert.Equal(t, "  (no files)", s.Rows[3].Header)
}

func TestStatusOpsRequestEnterOpensStageForEntry(t *testing.T) {
	s := &StatusState{Staged: []vcs.StatusEntry{{Name: "a.go", Status: 'M'}}}
	s.Rebuild()
	var gotKind StageLineType
	var gotEntry vcs.StatusEntry
	ops := &StatusOps{State: s, OpenStage: func(k StageLineType, e vcs.StatusEntry) {
		gotKind, gotEntry = k, e
	}}
	v := NewView("status", ops)

	req := ops.Request(v, keymap.ReqEnter, 1)
	assert.Equal(t, keymap.ReqViewStage, req)
	assert.Equal(t, StageStaged, gotKind)
	assert.Equal(t, "a.go", gotEntry.Name)
}

func TestStatusOpsRequestNoopOnHeaderRow(t *testing.T) {
	s := &StatusState{Staged: []vcs.StatusEntry{{Name: "a.go"}}}
	s.Rebuild()
	ops := &StatusOps{State: s}
	v := NewView("status", ops)

	req := ops.Request(v, keymap.ReqEnter, 0)
	assert.Equal(t, keymap.ReqEnter, req)
}

func TestKindForEntryUnmergedWins(t *testing.T) {
	assert.Equal(t, StageUnmerged, kindForEntry(vcs.StatusEntry{Unmerged: true, Kind: vcs.StatusStaged}))
	assert.Equal(t, StageStaged, kindForEntry(vcs.StatusEntry{Kind: vcs.StatusStaged}))
	assert.Equal(t, StageUnstaged, kindForEntry(vcs.StatusEntry{Kind: vcs.StatusUnstaged}))
	assert.Equal(t, StageUntracked, kindForEntry(vcs.StatusEntry{Kind: vcs.StatusUntracked}))
}

func sampleDiffLines() []string {
	return []string{
		"diff --git a/a.go b/a.go",
		"index deadbee..cafebab 100644",
		"--- a/a.go",
		"+++ b/a.go",
		"@@ -10,2 +10,3 @@",
		" func f() {",
		"+newLine()",
		" }",
	}
}

func TestStageOpsRequestStatusUpdateBuildsWholeHunkPatch(t *testing.T) {
	var gotPatch string
	var gotFlags ApplyFlags
	ops := &StageOps{
		Kind: StageUnstaged,
		ApplyPatch: func(patch string, flags ApplyFlags) error {
			gotPatch, gotFlags = patch, flags
			return nil
		},
	}
	v := NewView("stage", ops)
	v.Lines = sampleDiffLines()

	req := ops.Request(v, keymap.ReqStatusUpdate, 6)
	assert.Equal(t, keymap.ReqRefresh, req)
	assert.Contains(t, gotPatch, "@@ -10,2 +10,3 @@")
	assert.Contains(t, gotPatch, "+newLine()")
	assert.True(t, gotFlags.Cached)
	assert.False(t, gotFlags.Reverse)
}

func TestStageOpsRequestStageUpdateLineBuildsSingleLinePatch(t *testing.T) {
	var gotPatch string
	var gotFlags ApplyFlags
	ops := &StageOps{
		Kind: StageUnstaged,
		ApplyPatch: func(patch string, flags ApplyFlags) error {
			gotPatch, gotFlags = patch, flags
			return nil
		},
	}
	v := NewView("stage", ops)
	v.Lines = sampleDiffLines()

	req := ops.Request(v, keymap.ReqStageUpdateLine, 6)
	assert.Equal(t, keymap.ReqRefresh, req)
	assert.Contains(t, gotPatch, "+newLine()")
	assert.True(t, gotFlags.UnidiffZero)
}

func TestStageOpsRequestStageNextJumpsToNextHunk(t *testing.T) {
	ops := &StageOps{HunkRows: []int{4, 20}}
	v := NewView("stage", ops)
	v.Lines = sampleDiffLines()
	v.Height = 10
	v.Pos.Lineno = 0

	ops.Request(v, keymap.ReqStageNext, 0)
	assert.Equal(t, 4, v.Pos.Lineno)
}
