package vcs

// GraphStyle selects which glyph set the ancestry renderer emits, mirroring
// opt.line_graphics (spec §4.G "Three rendering modes").
type GraphStyle int

const (
	GraphASCII GraphStyle = iota
	GraphChtype
	GraphUTF8
)

var graphGlyphs = map[GraphStyle]struct{ commit, line, merge, fork, space rune }{
	GraphASCII:  {'*', '|', 'M', '\\', ' '},
	GraphChtype: {'*', '|', 'M', '\\', ' '}, // ACS line-drawing resolved at draw time by the gocui layer
	GraphUTF8:   {'●', '│', '●', '╲', ' '},
}

// GraphRow is one rendered ancestry-graph row: the fixed-width glyph lane
// prefix for a single commit.
type GraphRow struct {
	Columns []rune
}

// GraphRenderer is the stateful ancestry canvas from spec §4.G: each call to
// Render consumes one Commit (already parsed by CommitParser) against the
// renderer's live column set and returns the row of glyphs for it, updating
// the column set with the commit's parents for the next call.
type GraphRenderer struct {
	style   GraphStyle
	columns []string // commit IDs currently occupying each lane, "" = empty lane
}

// NewGraphRenderer returns a renderer using glyphs for style.
func NewGraphRenderer(style GraphStyle) *GraphRenderer {
	return &GraphRenderer{style: style}
}

// Render advances the canvas by one commit and returns its glyph row.
func (g *GraphRenderer) Render(c *Commit) GraphRow {
	glyphs := graphGlyphs[g.style]

	lane := -1
	for i, id := range g.columns {
		if id == c.ID {
			lane = i
			break
		}
	}
	if lane < 0 {
		lane = len(g.columns)
		g.columns = append(g.columns, c.ID)
	}

	row := make([]rune, len(g.columns))
	for i := range row {
		switch {
		case i == lane:
			row[i] = glyphs.commit
		case g.columns[i] != "":
			row[i] = glyphs.line
		default:
			row[i] = glyphs.space
		}
	}
	if len(c.Parents) > 1 {
		row[lane] = glyphs.merge
	}

	// Replace this lane with the first parent; append any remaining parents
	// as new lanes (a simplified fork, sufficient for linear and small merge
	// topologies; full octopus-merge packing is out of scope per spec §4.G
	// treating the canvas as "external to this spec").
	if len(c.Parents) == 0 {
		g.columns[lane] = ""
	} else {
		g.columns[lane] = c.Parents[0]
		for _, p := range c.Parents[1:] {
			g.columns = append(g.columns, p)
		}
	}

	// drop trailing empty lanes so the canvas width does not grow unbounded
	for len(g.columns) > 0 && g.columns[len(g.columns)-1] == "" {
		g.columns = g.columns[:len(g.columns)-1]
	}

	return GraphRow{Columns: row}
}

// Width reports the canvas's current lane count, used to size the fixed
// graph column in the main view.
func (g *GraphRenderer) Width() int { return len(g.columns) }
