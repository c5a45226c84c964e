package gui

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/lineinfo"
	"github.com/stupied4ever/tig/pkg/screen"
	"github.com/stupied4ever/tig/pkg/utils"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// RenderMainLines formats each main/log row into one display line: optional
// ancestry graph, id, date, author and title columns, per spec §4.G's
// per-row layout. Synthetic "Staged changes"/"Unstaged changes" rows draw in
// a distinguishing color and carry no graph, id, date, or author cell.
func RenderMainLines(rows []MainRow, opt *config.Options, width int) []string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = renderMainLine(r, opt, width)
	}
	return lines
}

func renderMainLine(r MainRow, opt *config.Options, width int) string {
	var cell builderCell
	canvas := &screen.Canvas{Cell: &cell, Width: maxInt(width, 1)}

	info := lineinfo.Info{FG: -1}
	if r.Synthetic {
		info.FG = 3
	}

	c := r.Commit
	if c == nil {
		return cell.b.String()
	}

	if opt.ShowRevGraph && len(r.Graph.Columns) > 0 {
		screen.DrawGraphic(canvas, info, r.Graph.Columns, true)
	}
	if !r.Synthetic {
		screen.DrawID(canvas, info, shortID(c.ID, opt.IDWidth), opt.IDWidth, opt.ShowID)
		screen.DrawDate(canvas, info, formatCommitDate(c.Time), opt.ShowDate != config.DateNo)
		screen.DrawAuthor(canvas, info, c.Author, opt.AuthorWidth, opt.ShowAuthor != config.AuthorNo)
	}
	screen.DrawCommitTitle(canvas, info, c.Title, opt.TabSize)

	return cell.b.String()
}

func shortID(id string, width int) string {
	if width <= 0 {
		width = config.DefaultIDWidth
	}
	if len(id) > width {
		return id[:width]
	}
	return id
}

func formatCommitDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// RenderBlameLines formats one display row per source line of an
// incrementally-parsed blame view: a short commit id, the author name, and
// the original source text (spec §4.I "Blame view").
func RenderBlameLines(bv *vcs.BlameView, opt *config.Options) []string {
	lines := make([]string, len(bv.Lines))
	for i, l := range bv.Lines {
		lines[i] = renderBlameLine(l, opt)
	}
	return lines
}

func renderBlameLine(l vcs.BlameLine, opt *config.Options) string {
	var cell builderCell
	canvas := &screen.Canvas{Cell: &cell, Width: 1 << 20}

	info := lineinfo.Info{FG: -1}

	id, author := "", ""
	if l.Commit != nil {
		id = shortID(l.Commit.ID, opt.IDWidth)
		author = l.Commit.Author
	}
	screen.DrawID(canvas, info, id, maxInt(opt.IDWidth, 8), true)
	screen.DrawAuthor(canvas, info, author, opt.AuthorWidth, opt.ShowAuthor != config.AuthorNo)
	screen.DrawCommitTitle(canvas, info, l.Text, opt.TabSize)

	return cell.b.String()
}

// renderStashLine formats one `git stash list` row: its stash@{N} id in a
// fixed-width column followed by the stash's own commit subject.
func renderStashLine(r StashRow, idWidth, width int) string {
	var cell builderCell
	canvas := &screen.Canvas{Cell: &cell, Width: width}

	info := lineinfo.Info{FG: -1}
	screen.DrawField(canvas, info, r.StashID, idWidth, screen.AlignLeft)
	screen.DrawCommitTitle(canvas, info, r.Commit.Title, 8)

	return cell.b.String()
}

// renderStatusLines formats the status view's header and entry rows (spec
// §4.J "Status view"): section headers draw in cyan with no path columns,
// entries draw their status letter followed by the (possibly renamed) path.
func renderStatusLines(rows []StatusRow) []string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = renderStatusLine(r)
	}
	return lines
}

func renderStatusLine(r StatusRow) string {
	var cell builderCell
	canvas := &screen.Canvas{Cell: &cell, Width: 1 << 20}

	if r.Header != "" {
		info := lineinfo.Info{FG: 6}
		screen.DrawChars(canvas, info, r.Header, canvas.Width, 8, false)
		return cell.b.String()
	}

	info := lineinfo.Info{FG: -1}
	name := r.Entry.Name
	if r.Entry.OldName != "" && r.Entry.OldName != r.Entry.Name {
		name = r.Entry.OldName + " -> " + r.Entry.Name
	}
	screen.DrawField(canvas, info, string(r.Entry.Status), 1, screen.AlignLeft)
	screen.DrawChars(canvas, info, name, canvas.Width, 8, false)
	return cell.b.String()
}

// builderCell is a screen.Cell backed by a strings.Builder, coloring each
// styled run with fatih/color when info carries a foreground attribute.
type builderCell struct {
	b strings.Builder
}

func (c *builderCell) WriteStyled(s string, info lineinfo.Info) {
	if info.FG < 0 {
		c.b.WriteString(s)
		return
	}
	c.b.WriteString(utils.ColoredString(s, color.Attribute(30+info.FG)))
}

// RenderTreeLines formats each tree entry into one fixed-width display row
// (mode, size, name), per spec §4.H's tree-view columns. Only file rows
// carry a size; directories show their mode, and synthetic rows with no
// mode get a blank mode cell.
func RenderTreeLines(entries []vcs.TreeEntry, sizeMode config.FileSizeMode, width int) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = renderTreeLine(e, sizeMode, width)
	}
	return lines
}

func renderTreeLine(e vcs.TreeEntry, sizeMode config.FileSizeMode, width int) string {
	var cell builderCell
	canvas := &screen.Canvas{Cell: &cell, Width: maxInt(width, 1)}

	info := lineinfo.Info{FG: -1}
	switch e.Kind {
	case vcs.TreeDir, vcs.TreeParent:
		info.FG = 4
	case vcs.TreeHead:
		info.FG = 3
	}

	mode := e.Mode
	if mode == "" {
		mode = strings.Repeat(" ", 6)
	}
	screen.DrawMode(canvas, info, mode)
	screen.DrawFileSize(canvas, info, formatTreeSize(e, sizeMode), e.Kind == vcs.TreeFile)
	screen.DrawFilename(canvas, info, e.Name, canvas.Width, true)

	return cell.b.String()
}

func formatTreeSize(e vcs.TreeEntry, mode config.FileSizeMode) string {
	switch mode {
	case config.FileSizeNo:
		return ""
	case config.FileSizeUnits:
		return utils.FormatBinaryBytes(e.Size)
	default:
		return itoaSize(e.Size)
	}
}

func itoaSize(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [24]byte
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
