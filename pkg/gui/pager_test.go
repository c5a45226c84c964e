package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapRowsSplitsLongLines(t *testing.T) {
	rows := WrapRows([]string{"0123456789"}, 5, true)
	assert.Len(t, rows, 3) // width-1=4 per row: 4+4+2
	assert.False(t, rows[0].Continued)
	assert.True(t, rows[1].Continued)
}

func TestWrapRowsNoWrapIsOneRowPerLine(t *testing.T) {
	rows := WrapRows([]string{"a", "b", "c"}, 5, false)
	assert.Len(t, rows, 3)
}

func TestClassifyDiffLineCommitTitle(t *testing.T) {
	st := &DiffState{}
	assert.Equal(t, "commit-title", ClassifyDiffLine(st, "    fix thing"))
	assert.True(t, st.AfterCommitTitle)
}

func TestClassifyDiffLineHeaderSetsAfterDiff(t *testing.T) {
	st := &DiffState{}
	assert.Equal(t, "diff-header", ClassifyDiffLine(st, "diff --git a/x b/x"))
	assert.True(t, st.AfterDiff)
	assert.False(t, st.CombinedDiff)
}

func TestClassifyDiffLineCombinedHeaderSetsFlag(t *testing.T) {
	st := &DiffState{}
	ClassifyDiffLine(st, "diff --combined x")
	assert.True(t, st.CombinedDiff)
}

func TestClassifyDiffLineAdd2OnlyWhenCombined(t *testing.T) {
	st := &DiffState{}
	assert.Equal(t, "diff-add", ClassifyDiffLine(st, "++foo")) // not combined: downgraded
	st.CombinedDiff = true
	assert.Equal(t, "diff-add2", ClassifyDiffLine(st, "++foo"))
}

func TestStripFileFilterSuffixRemovesPathArgs(t *testing.T) {
	argv, ok := StripFileFilterSuffix([]string{"git", "log", "-p", "--", "a.go"})
	assert.True(t, ok)
	assert.Equal(t, []string{"git", "log", "-p"}, argv)
}

func TestStripFileFilterSuffixNoopWithoutSeparator(t *testing.T) {
	argv, ok := StripFileFilterSuffix([]string{"git", "log", "-p"})
	assert.False(t, ok)
	assert.Equal(t, []string{"git", "log", "-p"}, argv)
}

func TestDiffSelectPathFindsNearestHeader(t *testing.T) {
	lines := []string{"diff --git a/foo.go b/foo.go", "index 1..2", "@@ -1,1 +1,1 @@", "-old", "+new"}
	msg, ok := DiffSelectPath(lines, 4)
	assert.True(t, ok)
	assert.Equal(t, "changes to 'foo.go'", msg)
}

func TestDiffSelectPathFallsBackWhenNoHeader(t *testing.T) {
	_, ok := DiffSelectPath([]string{"just text"}, 0)
	assert.False(t, ok)
}

func TestHunkBoundsLocatesEnclosingHunk(t *testing.T) {
	lines := []string{"diff --git a/f b/f", "--- a/f", "+++ b/f", "@@ -1,2 +1,2 @@", " ctx", "-old", "+new"}
	hh, fh, ok := HunkBounds(lines, 6)
	assert.True(t, ok)
	assert.Equal(t, 3, hh)
	assert.Equal(t, 0, fh)
}

func TestTraceOriginLineCountsForwardFromHunkStart(t *testing.T) {
	lines := []string{"@@ -10,3 +10,4 @@", " ctx", "+added", "+added2"}
	line, isDelete := TraceOriginLine(lines, 0, 3, '+')
	assert.False(t, isDelete)
	assert.Equal(t, 12, line)
}

func TestTraceOriginLineForDeleteUsesOldSide(t *testing.T) {
	lines := []string{"@@ -10,3 +10,1 @@", " ctx", "-gone", "-gone2"}
	line, isDelete := TraceOriginLine(lines, 0, 3, '-')
	assert.True(t, isDelete)
	assert.Equal(t, 12, line)
}
