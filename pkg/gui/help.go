package gui

import (
	"fmt"
	"sort"

	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/utils"
)

// HelpRow is one rendered row of the help/cheatsheet view: a key spec
// bound to the symbolic request name it triggers.
type HelpRow struct {
	KeyMap  string
	Key     keymap.KeySpec
	Request string
}

// BuildHelpRows walks every keymap in reg and flattens its bindings into
// display rows, sorted by keymap name then key value for a stable listing.
func BuildHelpRows(reg *keymap.Registry, requestName func(keymap.Request) string) []HelpRow {
	var rows []HelpRow
	for _, name := range reg.KeyMapNames() {
		for key, b := range reg.Bindings(name) {
			rows = append(rows, HelpRow{
				KeyMap:  name,
				Key:     key,
				Request: requestName(b.Request),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].KeyMap != rows[j].KeyMap {
			return rows[i].KeyMap < rows[j].KeyMap
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// FormatHelpRow renders one row as "<keymap> <key> <request>", the plain
// line format fed to the help pager.
func FormatHelpRow(r HelpRow) string {
	return fmt.Sprintf("%s %-8d %s", utils.WithPadding(r.KeyMap, 10), r.Key, r.Request)
}
