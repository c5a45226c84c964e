// Package cheatsheet writes Keybindings.md into a given directory: a
// Markdown cheatsheet of every binding in the active keymap registry, one
// section per keymap with its rows in a <pre> block.
package cheatsheet

import (
	"fmt"
	"log"
	"os"

	"github.com/stupied4ever/tig/pkg/gui"
	"github.com/stupied4ever/tig/pkg/keymap"
)

// Generate renders reg's bindings to dir/Keybindings.md.
func Generate(reg *keymap.Registry, dir string) {
	file, err := os.Create(dir + "/Keybindings.md")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	content := formatSections(reg)
	if _, err := file.WriteString(content); err != nil {
		log.Fatal(err)
	}
}

func formatSections(reg *keymap.Registry) string {
	rows := gui.BuildHelpRows(reg, keymap.RequestName)

	content := "# tig keybindings\n"
	currentKeymap := ""
	for _, row := range rows {
		if row.KeyMap != currentKeymap {
			currentKeymap = row.KeyMap
			content += fmt.Sprintf("\n## %s\n\n", currentKeymap)
			content += "<pre>\n"
		}
		content += gui.FormatHelpRow(row) + "\n"
	}
	if currentKeymap != "" {
		content += "</pre>\n"
	}
	return content
}
