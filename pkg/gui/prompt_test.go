package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineEditorInsertAndBackspace(t *testing.T) {
	e := &LineEditor{}
	e.Insert("hello")
	assert.Equal(t, "hello", e.Text)
	assert.Equal(t, 5, e.Cursor)

	e.Backspace()
	assert.Equal(t, "hell", e.Text)
	assert.Equal(t, 4, e.Cursor)
}

func TestLineEditorInsertAtCursorMidString(t *testing.T) {
	e := &LineEditor{Text: "helo", Cursor: 3}
	e.Insert("l")
	assert.Equal(t, "hello", e.Text)
}

func TestLineEditorDeleteAtEndIsNoop(t *testing.T) {
	e := &LineEditor{Text: "abc", Cursor: 3}
	e.Delete()
	assert.Equal(t, "abc", e.Text)
}

func TestLineEditorHomeEnd(t *testing.T) {
	e := &LineEditor{Text: "abc", Cursor: 1}
	e.End()
	assert.Equal(t, 3, e.Cursor)
	e.Home()
	assert.Equal(t, 0, e.Cursor)
}

func TestFindMenuItemByHotKey(t *testing.T) {
	items := []MenuItem{{Label: "a", HotKey: 'a'}, {Label: "b", HotKey: 'b'}}
	assert.Equal(t, 1, FindMenuItemByHotKey(items, 'b'))
	assert.Equal(t, -1, FindMenuItemByHotKey(items, 'z'))
}

func TestParseYesNoAnswer(t *testing.T) {
	assert.True(t, ParseYesNoAnswer('y'))
	assert.True(t, ParseYesNoAnswer('Y'))
	assert.False(t, ParseYesNoAnswer('n'))
	assert.False(t, ParseYesNoAnswer(27))
}

func TestSplitCommandLine(t *testing.T) {
	cmd, rest := SplitCommandLine("  set line-number = yes  ")
	assert.Equal(t, "set", cmd)
	assert.Equal(t, "line-number = yes", rest)
}

func TestSplitCommandLineNoArgs(t *testing.T) {
	cmd, rest := SplitCommandLine("refresh")
	assert.Equal(t, "refresh", cmd)
	assert.Equal(t, "", rest)
}
