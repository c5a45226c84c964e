package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphRendererLinearHistory(t *testing.T) {
	g := NewGraphRenderer(GraphASCII)

	row1 := g.Render(&Commit{ID: "c3", Parents: []string{"c2"}})
	assert.Equal(t, []rune{'*'}, row1.Columns)

	row2 := g.Render(&Commit{ID: "c2", Parents: []string{"c1"}})
	assert.Equal(t, []rune{'*'}, row2.Columns)

	row3 := g.Render(&Commit{ID: "c1"})
	assert.Equal(t, []rune{'*'}, row3.Columns)
	assert.Equal(t, 0, g.Width())
}

func TestGraphRendererMarksMergeCommit(t *testing.T) {
	g := NewGraphRenderer(GraphASCII)
	row := g.Render(&Commit{ID: "m", Parents: []string{"p1", "p2"}})
	assert.Equal(t, []rune{'M'}, row.Columns)
	assert.Equal(t, 2, g.Width())
}

func TestGraphRendererUTF8Glyphs(t *testing.T) {
	g := NewGraphRenderer(GraphUTF8)
	row := g.Render(&Commit{ID: "c1"})
	assert.Equal(t, []rune{'●'}, row.Columns)
}
