package gui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/utils"
	"github.com/stupied4ever/tig/pkg/vcs"
)

func TestRenderTreeLinesIncludesNameAndHumanizedSize(t *testing.T) {
	entries := []vcs.TreeEntry{
		{Kind: vcs.TreeDir, Mode: "040000", Name: "src"},
		{Kind: vcs.TreeFile, Mode: "100644", Name: "main.go", Size: 2048},
	}

	lines := RenderTreeLines(entries, config.FileSizeUnits, 80)

	assert.Len(t, lines, 2)
	assert.True(t, strings.Contains(utils.Decolorise(lines[0]), "src"))
	assert.True(t, strings.Contains(utils.Decolorise(lines[1]), "main.go"))
	assert.True(t, strings.Contains(lines[1], "2KiB"))
}

func TestRenderTreeLinesNoSizeModeOmitsSizeColumn(t *testing.T) {
	entries := []vcs.TreeEntry{{Kind: vcs.TreeFile, Mode: "100644", Name: "a.txt", Size: 99}}
	lines := RenderTreeLines(entries, config.FileSizeNo, 80)
	assert.False(t, strings.Contains(lines[0], "99"))
}
