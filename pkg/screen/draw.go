// Package screen implements the draw primitives (spec component D): a
// column-cursor model that renders one already-classified line into a fixed
// width, shared by every view in pkg/gui.
//
// Window/origin clamping reused here for the horizontal column cursor,
// measured with mattn/go-runewidth the same way a table renderer sizes
// panel columns.
package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/stupied4ever/tig/pkg/lineinfo"
)

// Align selects left or right alignment for DrawField.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Pos is the column cursor: pos.Col tracks how many columns of the current
// line have already been emitted (absolute, since the start of the line);
// view.Col is the horizontal scroll offset. Draw* functions advance Pos.Col
// as they consume width and report whether the visible row is now full.
type Pos struct {
	Col int
}

// Cell receives styled runs of text; pkg/gui implements it over a gocui
// view's io.Writer plus fatih/color escape sequences.
type Cell interface {
	WriteStyled(s string, info lineinfo.Info)
}

// Canvas is one row's render target: a fixed visible width, a horizontal
// scroll offset, and the destination Cell.
type Canvas struct {
	Cell   Cell
	Width  int // visible columns remaining on this row
	Offset int // view.Col: columns already scrolled past
	Pos    Pos
}

func (c *Canvas) full() bool { return c.Width <= 0 }

// expandTabs replaces each '\t' with spaces up to the next tabSize boundary,
// tracking column position so alignment survives embedded tabs.
func expandTabs(s string, tabSize int) string {
	if tabSize <= 0 {
		tabSize = 8
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabSize - (col % tabSize)
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// DrawChars skips c.Offset-c.Pos.Col leading columns already scrolled past,
// emits up to max columns of s (tab-expanded at tabSize), and if the string
// had to be truncated to fit and useTilde is set, replaces the final visible
// column with '~' in the delimiter color. Returns true once the canvas width
// is exhausted, the view-engine's signal to stop drawing further fields.
func DrawChars(c *Canvas, info lineinfo.Info, s string, max int, tabSize int, useTilde bool) bool {
	if c.full() {
		return true
	}
	expanded := expandTabs(s, tabSize)
	runes := []rune(expanded)

	skip := c.Offset - c.Pos.Col
	if skip < 0 {
		skip = 0
	}
	if skip > 0 {
		w := 0
		i := 0
		for i < len(runes) && w < skip {
			w += runewidth.RuneWidth(runes[i])
			i++
		}
		runes = runes[i:]
		c.Pos.Col += w
	}

	limit := max
	if limit <= 0 || limit > c.Width {
		limit = c.Width
	}

	truncated := false
	w := 0
	n := 0
	for n < len(runes) {
		rw := runewidth.RuneWidth(runes[n])
		if w+rw > limit {
			truncated = true
			break
		}
		w += rw
		n++
	}
	out := string(runes[:n])

	if truncated && useTilde && limit > 0 {
		if n > 0 {
			out = string(runes[:n-1]) + "~"
		} else {
			out = "~"
		}
	}

	c.Cell.WriteStyled(out, info)
	c.Pos.Col += runewidth.StringWidth(out)
	c.Width -= runewidth.StringWidth(out)
	return c.full()
}

// DrawField draws s into a fixed-width cell, left- or right-aligned, padded
// (or truncated) to exactly width columns plus one trailing separator space.
func DrawField(c *Canvas, info lineinfo.Info, s string, width int, align Align) bool {
	if c.full() {
		return true
	}
	w := runewidth.StringWidth(s)
	var cell string
	switch {
	case w >= width:
		cell = runewidth.Truncate(s, width, "")
	case align == AlignRight:
		cell = strings.Repeat(" ", width-w) + s
	default:
		cell = s + strings.Repeat(" ", width-w)
	}
	cell += " "
	c.Cell.WriteStyled(cell, info)
	c.Pos.Col += runewidth.StringWidth(cell)
	c.Width -= runewidth.StringWidth(cell)
	return c.full()
}

// DrawGraphic passes chars through unchanged (no truncation, no tab
// expansion: ancestry-graph glyphs are already exactly one column each),
// optionally appending a single separator space.
func DrawGraphic(c *Canvas, info lineinfo.Info, chars []rune, separator bool) bool {
	if c.full() {
		return true
	}
	s := string(chars)
	if separator {
		s += " "
	}
	c.Cell.WriteStyled(s, info)
	c.Pos.Col += runewidth.StringWidth(s)
	c.Width -= runewidth.StringWidth(s)
	return c.full()
}

// DrawLineNo right-justifies lineno within max(digits, 3) columns, only at
// the first line, at the configured interval, or at multiples of it;
// otherwise reserves the cell as blank. Follows with a vertical separator
// glyph, ACS-styled when lineGraphics requests it.
func DrawLineNo(c *Canvas, info lineinfo.Info, lineno, digits, interval int, useACS bool) bool {
	if c.full() {
		return true
	}
	width := digits
	if width < 3 {
		width = 3
	}
	text := ""
	if interval <= 0 {
		interval = 1
	}
	if lineno == 1 || lineno%interval == 0 {
		text = itoa(lineno)
	}
	sep := "|"
	if useACS {
		sep = "│"
	}
	return DrawField(c, info, text, width, AlignRight) || DrawGraphic(c, info, []rune(sep), true)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// DrawDate draws a pre-formatted date string in a fixed-width cell, or
// reserves no space at all when mode is "no" (spec §4.D: "when the toggle is
// off, returns false... don't reserve space").
func DrawDate(c *Canvas, info lineinfo.Info, formatted string, show bool) bool {
	if !show {
		return false
	}
	return DrawField(c, info, formatted, len(formatted), AlignLeft)
}

// DrawAuthor draws author within a fixed width; disabled mode reserves no
// space, matching DrawDate.
func DrawAuthor(c *Canvas, info lineinfo.Info, name string, width int, show bool) bool {
	if !show {
		return false
	}
	return DrawField(c, info, name, width, AlignLeft)
}

// DrawID draws an abbreviated object id of exactly width columns; a fixed
// cell, so it reserves its space even when blank (spec §4.D: "except
// fixed-width ones which reserve their cell").
func DrawID(c *Canvas, info lineinfo.Info, id string, width int, show bool) bool {
	if !show {
		return DrawField(c, info, "", width, AlignLeft)
	}
	return DrawField(c, info, id, width, AlignLeft)
}

// DrawFilename draws a path within width, or nothing when mode is "no".
func DrawFilename(c *Canvas, info lineinfo.Info, name string, width int, show bool) bool {
	if !show {
		return false
	}
	return DrawField(c, info, name, width, AlignLeft)
}

// DrawFileSize draws a pre-formatted size (either "1234" or a humanized unit
// string depending on caller's FileSizeMode resolution), right-aligned.
func DrawFileSize(c *Canvas, info lineinfo.Info, formatted string, show bool) bool {
	if !show {
		return false
	}
	return DrawField(c, info, formatted, len(formatted), AlignRight)
}

// DrawMode draws a unix-style permission/mode string unconditionally (tree
// rows always show it).
func DrawMode(c *Canvas, info lineinfo.Info, mode string) bool {
	return DrawField(c, info, mode, len(mode), AlignLeft)
}

// DrawRefs draws a parenthesized ref list ("(origin/main, tag: v1.0)"), or
// nothing when refs is empty or disabled.
func DrawRefs(c *Canvas, info lineinfo.Info, refs []string, show bool) bool {
	if !show || len(refs) == 0 {
		return false
	}
	s := "(" + strings.Join(refs, ", ") + ") "
	return DrawChars(c, info, s, len(s), 8, false)
}

// DrawCommitTitle draws the remaining width with the commit subject line,
// truncating with a tilde if it overruns.
func DrawCommitTitle(c *Canvas, info lineinfo.Info, title string, tabSize int) bool {
	return DrawChars(c, info, title, c.Width, tabSize, true)
}

// TitleBar composes the view title bar string:
// "[name] ref - <type> <lineno> of <N> (<pct>%)", with an optional
// "loading Ns" suffix while a pipe is open.
func TitleBar(name, ref, viewType string, lineno, total int, loadingSeconds int, pipeOpen bool) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(name)
	b.WriteByte(']')
	if ref != "" {
		b.WriteByte(' ')
		b.WriteString(ref)
	}
	pct := 0
	if total > 0 {
		pct = (lineno * 100) / total
	}
	fmtLine := lineno
	if total > 0 {
		fmtLine++ // 1-indexed for display; callers pass a 0-based cursor row
	}
	b.WriteString(" - ")
	b.WriteString(viewType)
	b.WriteByte(' ')
	b.WriteString(itoa(fmtLine))
	b.WriteString(" of ")
	b.WriteString(itoa(total))
	b.WriteString(" (")
	b.WriteString(itoa(pct))
	b.WriteString("%)")
	if pipeOpen {
		b.WriteString(" loading ")
		b.WriteString(itoa(loadingSeconds))
		b.WriteString("s")
	}
	return b.String()
}
