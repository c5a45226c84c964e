package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/vcs"
)

func feedAll(m *MainState, lines []string) {
	for _, l := range lines {
		m.FeedRawLogLine(l)
	}
	m.Flush()
}

func TestMainStateInjectsSyntheticChangesBeforeHead(t *testing.T) {
	m := NewMainState("aaaa", true, vcs.GraphASCII)
	m.HasStaged = true
	m.HasUnstaged = true
	feedAll(m, []string{
		"commit aaaa",
		"author Jane <jane@example.com> 1700000000 +0000",
		"",
		"    head commit",
	})
	assert.Len(t, m.Rows, 3)
	assert.True(t, m.Rows[0].Synthetic)
	assert.Equal(t, "Staged changes", m.Rows[0].Commit.Title)
	assert.True(t, m.Rows[1].Synthetic)
	assert.Equal(t, "Unstaged changes", m.Rows[1].Commit.Title)
	assert.Equal(t, "aaaa", m.Rows[2].Commit.ID)
}

func TestMainStateNoSyntheticRowsForNonHeadCommit(t *testing.T) {
	m := NewMainState("aaaa", true, vcs.GraphASCII)
	m.HasStaged = true
	feedAll(m, []string{
		"commit bbbb",
		"author Jane <jane@example.com> 1700000000 +0000",
		"",
		"    some other commit",
	})
	assert.Len(t, m.Rows, 1)
	assert.False(t, m.Rows[0].Synthetic)
}

func TestMainStateBuildsGraphAcrossLinearHistory(t *testing.T) {
	m := NewMainState("", false, vcs.GraphASCII)
	feedAll(m, []string{
		"commit cccc",
		"parent bbbb",
		"author Jane <jane@example.com> 1700000000 +0000",
		"",
		"    third",
		"commit bbbb",
		"parent aaaa",
		"author Jane <jane@example.com> 1700000000 +0000",
		"",
		"    second",
		"commit aaaa",
		"author Jane <jane@example.com> 1700000000 +0000",
		"",
		"    first",
	})
	assert.Len(t, m.Rows, 3)
	for _, row := range m.Rows {
		assert.Equal(t, byte('*'), byte(row.Graph.Columns[0]))
	}
}

func TestStashIDColumnWidthGrowsWithDigits(t *testing.T) {
	assert.Equal(t, 9, StashIDColumnWidth(0, 5))
	assert.Equal(t, 12, StashIDColumnWidth(0, 1234))
	assert.Equal(t, 20, StashIDColumnWidth(20, 5))
}

func TestParseStashIDSplitsPrefixAndRest(t *testing.T) {
	id, rest, ok := ParseStashID("stash@{0}: WIP on main: abc def")
	assert.True(t, ok)
	assert.Equal(t, "stash@{0}", id)
	assert.Equal(t, "WIP on main: abc def", rest)
}

func TestParseStashIDRejectsNonStashLine(t *testing.T) {
	_, _, ok := ParseStashID("not a stash line")
	assert.False(t, ok)
}
