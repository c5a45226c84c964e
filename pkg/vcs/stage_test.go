package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageViewArgvDispatch(t *testing.T) {
	assert.Equal(t, []string{"git", "diff", "--cached", "--", "a.go"},
		StageViewArgv(StageStaged, true, "a.go"))
	assert.Equal(t, []string{"git", "diff-index", "-p", "--cached", "HEAD", "--", "a.go"},
		StageViewArgv(StageStaged, false, "a.go"))
	assert.Equal(t, []string{"git", "diff-files", "-p", "--root", "--", "a.go"},
		StageViewArgv(StageUnmerged, false, "a.go"))
	assert.Equal(t, []string{"git", "diff-files", "-p", "--", "a.go"},
		StageViewArgv(StageUnstaged, false, "a.go"))
	assert.Nil(t, StageViewArgv(StageUntracked, false, "a.go"))
}

func sampleHunk() Hunk {
	return Hunk{
		HeaderGroup: []string{
			"diff --git a/a.go b/a.go",
			"index deadbee..cafebab 100644",
			"--- a/a.go",
			"+++ b/a.go",
		},
		HunkHeader: "@@ -10,3 +10,4 @@",
		OldStart:   10,
		NewStart:   10,
		Lines: []string{
			" func f() {",
			"+\tnewLine()",
			" \treturn",
			" }",
		},
	}
}

func TestBuildApplyPatchStreamsHunkUnchanged(t *testing.T) {
	patch := BuildApplyPatch(sampleHunk())
	assert.Contains(t, patch, "diff --git a/a.go b/a.go")
	assert.Contains(t, patch, "@@ -10,3 +10,4 @@\n")
	assert.Contains(t, patch, "+\tnewLine()")
}

func TestBuildSingleLinePatchAddedLine(t *testing.T) {
	patch, err := BuildSingleLinePatch(sampleHunk(), 1)
	assert.NoError(t, err)
	assert.Contains(t, patch, "@@ -11,0 +11,1 @@\n")
	assert.Contains(t, patch, "+\tnewLine()")
}

func TestBuildSingleLinePatchRejectsContextLine(t *testing.T) {
	_, err := BuildSingleLinePatch(sampleHunk(), 0)
	assert.Error(t, err)
}

func TestBuildSingleLinePatchDeletedLine(t *testing.T) {
	h := Hunk{
		HeaderGroup: []string{"diff --git a/a.go b/a.go", "--- a/a.go", "+++ b/a.go"},
		HunkHeader:  "@@ -5,3 +5,2 @@",
		OldStart:    5,
		NewStart:    5,
		Lines:       []string{" one", "-two", " three"},
	}
	patch, err := BuildSingleLinePatch(h, 1)
	assert.NoError(t, err)
	assert.Contains(t, patch, "@@ -6,1 +6,0 @@\n")
	assert.Contains(t, patch, "-two")
}

func TestFlagsForStageStagedAlwaysReverses(t *testing.T) {
	flags := FlagsForStage(StageStaged, false, false)
	assert.True(t, flags.Cached)
	assert.True(t, flags.Reverse)
	assert.False(t, flags.UnidiffZero)
}

func TestFlagsForStageUntrackedNotCached(t *testing.T) {
	flags := FlagsForStage(StageUntracked, false, false)
	assert.False(t, flags.Cached)
}

func TestFlagsForStageSingleLineSetsUnidiffZero(t *testing.T) {
	flags := FlagsForStage(StageUnstaged, true, false)
	assert.True(t, flags.UnidiffZero)
}

func TestApplyArgvComposesFlags(t *testing.T) {
	argv := ApplyArgv(ApplyFlags{Cached: true, UnidiffZero: true, Reverse: true})
	assert.Equal(t, []string{"git", "apply", "--cached", "--unidiff-zero", "-R", "-"}, argv)
}

func TestBuildIndexInfoScriptOneLinePerEntry(t *testing.T) {
	entries := []StatusEntry{
		{OldMode: "100644", OldRev: "deadbeef", Name: "a.go"},
		{OldMode: "100755", OldRev: "cafebabe", Name: "b.sh"},
	}
	script := BuildIndexInfoScript(entries)
	assert.Equal(t, "100644 deadbeef\ta.go\n100755 cafebabe\tb.sh\n", script)
}

func TestBuildAddRemoveStdinNULSeparated(t *testing.T) {
	s := BuildAddRemoveStdin([]string{"a.go", "b.go"})
	assert.Equal(t, "a.go\x00b.go\x00", s)
}

func TestRevertArgvCacheinfoForOrdinaryEntry(t *testing.T) {
	e := StatusEntry{OldMode: "100644", OldRev: "deadbeef", Name: "a.go"}
	argv := RevertArgv(e)
	assert.Equal(t, []string{"git", "update-index", "--cacheinfo", "100644", "deadbeef", "a.go"}, argv[0])
	assert.Equal(t, []string{"git", "checkout", "--", "a.go"}, argv[1])
}

func TestRevertArgvForceRemoveForUnmergedDeletion(t *testing.T) {
	e := StatusEntry{Unmerged: true, NewMode: "0", Name: "a.go"}
	argv := RevertArgv(e)
	assert.Equal(t, []string{"git", "update-index", "--force-remove", "--", "a.go"}, argv[0])
}

func TestNextHunkIndexFindsSmallestGreater(t *testing.T) {
	rows := []int{3, 10, 25}
	assert.Equal(t, 10, NextHunkIndex(rows, 5))
	assert.Equal(t, 3, NextHunkIndex(rows, -1))
	assert.Equal(t, -1, NextHunkIndex(rows, 25))
}
