package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/keymap"
)

func TestBuildHelpRowsSortedByKeymapThenKey(t *testing.T) {
	reg := keymap.NewRegistry()
	reg.Bind("generic", keymap.KeySpec('q'), keymap.Binding{Request: keymap.ReqQuit})
	reg.Bind("main", keymap.KeySpec('j'), keymap.Binding{Request: keymap.ReqMoveDown})

	rows := BuildHelpRows(reg, func(r keymap.Request) string {
		if r == keymap.ReqQuit {
			return "quit"
		}
		return "move-down"
	})

	assert.Len(t, rows, 2)
	assert.Equal(t, "generic", rows[0].KeyMap)
	assert.Equal(t, "quit", rows[0].Request)
	assert.Equal(t, "main", rows[1].KeyMap)
}

func TestFormatHelpRowIncludesAllFields(t *testing.T) {
	row := HelpRow{KeyMap: "generic", Key: keymap.KeySpec('q'), Request: "quit"}
	out := FormatHelpRow(row)
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "quit")
}
