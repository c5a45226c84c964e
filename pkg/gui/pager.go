package gui

import (
	"regexp"
	"strings"

	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/lineinfo"
)

// PagerRow is one rendered row of a pager view: the owning line index plus
// a wrap continuation offset, per spec §4.F "if wrap_lines, split into
// multiple rows... continuation prefix".
type PagerRow struct {
	LineIndex int
	ColOffset int
	Continued bool
}

// WrapRows expands raw lines into PagerRow entries when wrapping is active;
// with wrapping off each line maps to exactly one row.
func WrapRows(lines []string, width int, wrap bool) []PagerRow {
	var rows []PagerRow
	for i, line := range lines {
		if !wrap || width <= 1 || len(line) <= width-1 {
			rows = append(rows, PagerRow{LineIndex: i})
			continue
		}
		col := 0
		first := true
		for col < len(line) {
			rows = append(rows, PagerRow{LineIndex: i, ColOffset: col, Continued: !first})
			col += width - 1
			first = false
		}
	}
	return rows
}

// PagerOps is the generic read-only pager/log view (spec §4.F "Pager
// common"). commandTemplate is tokenized argv with %(...) placeholders
// already present; Lineinfo classifies each raw line for draw-time
// coloring (wired by the caller, not used directly here).
type PagerOps struct {
	CommandTemplate func(v *View, reload bool) []string
	Lineinfo        *lineinfo.Table

	// RefsRow, when non-nil, is called with a parsed commit id whenever a
	// "commit <id>" line is seen, to attach a synthetic "Refs:" row (spec
	// §4.F "Log/pager also attach a synthetic Refs: row").
	RefsRow func(commitID string) (string, bool)
}

func (p *PagerOps) Open(v *View, reload bool) ([]string, error) {
	return p.CommandTemplate(v, reload), nil
}

func (p *PagerOps) Read(v *View, line string, eof bool) {
	if eof || p.RefsRow == nil {
		return
	}
	if id, ok := strings.CutPrefix(line, "commit "); ok {
		if refsLine, ok := p.RefsRow(strings.TrimSpace(id)); ok {
			v.Lines = append(v.Lines, refsLine)
		}
	}
}

func (p *PagerOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	return req
}

// DiffState is the diff classifier's running state, spec §4.F "Diff state
// machine: a boolean tuple".
type DiffState struct {
	AfterCommitTitle bool
	AfterDiff        bool
	ReadingDiffStat  bool
	CombinedDiff     bool
}

var (
	diffStatBarRe  = regexp.MustCompile(`\|.*[+\-]`)
	diffStatBinRe  = regexp.MustCompile(`Bin .* -> `)
	diffRenameRe   = regexp.MustCompile(`=>|^ *\.\.\.`)
)

// ClassifyDiffLine advances the diff state machine by one line and returns
// the line-type name to feed into a lineinfo.Table (spec §4.F "Lines
// classified").
func ClassifyDiffLine(state *DiffState, line string) string {
	switch {
	case !state.AfterCommitTitle && strings.HasPrefix(line, "    "):
		state.AfterCommitTitle = true
		return "commit-title"

	case diffStatBarRe.MatchString(line) || diffStatBinRe.MatchString(line) || diffRenameRe.MatchString(line):
		state.ReadingDiffStat = true
		return "diff-stat"

	case line == "---":
		state.ReadingDiffStat = true
		return "diff-stat-sep"

	case strings.HasPrefix(line, "diff --git"):
		state.AfterDiff = true
		state.ReadingDiffStat = false
		return "diff-header"

	case strings.HasPrefix(line, "diff --combined") || strings.HasPrefix(line, "diff --cc"):
		state.AfterDiff = true
		state.CombinedDiff = true
		return "diff-header"

	case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
		return "diff-chunk-header"

	case strings.HasPrefix(line, "@@"):
		return "diff-chunk"

	case strings.HasPrefix(line, "++"):
		if state.CombinedDiff {
			return "diff-add2"
		}
		return "diff-add" // downgraded: ADD2 only valid when combinedDiff

	case strings.HasPrefix(line, "--"):
		if state.CombinedDiff {
			return "diff-del2"
		}
		return "diff-del"

	case strings.HasPrefix(line, "+"):
		return "diff-add"

	case strings.HasPrefix(line, "-"):
		return "diff-del"

	default:
		return "default"
	}
}

// StripFileFilterSuffix implements spec §4.F's end-of-stream recovery pass:
// "strips the trailing -- <paths> suffix from argv and restarts the pipe"
// when a file-filtered diff produced no rows at all.
func StripFileFilterSuffix(argv []string) ([]string, bool) {
	for i, tok := range argv {
		if tok == "--" {
			if i == len(argv)-1 {
				return argv, false
			}
			return argv[:i], true
		}
	}
	return argv, false
}

// DiffSelectPath computes "changes to '<path>'" from the nearest preceding
// "diff --git a/<old> b/<new>" header at or above fromLine (spec §4.F
// "Diff select"). Returns ok=false when no such header exists above
// fromLine, signaling the caller to fall back to the plain pager select.
func DiffSelectPath(lines []string, fromLine int) (msg string, ok bool) {
	for i := fromLine; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "diff --git a/") {
			rest := strings.TrimPrefix(lines[i], "diff --git a/")
			parts := strings.SplitN(rest, " b/", 2)
			if len(parts) != 2 {
				continue
			}
			return "changes to '" + parts[1] + "'", true
		}
	}
	return "", false
}

// HunkBounds locates the @@ header governing fromLine and the diff --git
// header that starts its file group, per spec §4.F "Diff trace origin":
// "locates the enclosing hunk".
func HunkBounds(lines []string, fromLine int) (hunkHeader, fileHeader int, ok bool) {
	hunkHeader, fileHeader = -1, -1
	for i := fromLine; i >= 0; i-- {
		if hunkHeader == -1 && strings.HasPrefix(lines[i], "@@") {
			hunkHeader = i
		}
		if strings.HasPrefix(lines[i], "diff --git") {
			fileHeader = i
			break
		}
	}
	return hunkHeader, fileHeader, hunkHeader != -1 && fileHeader != -1
}

// TraceOriginLine computes the post-image line number for an add/del row by
// counting non-opposite-marker lines forward from the hunk header to
// toLine, per spec §4.F "counts non-opposite-marker lines forward to
// compute the post-image line number". marker is '+' or '-' for the
// selected row; isDelete selects whether the blame target is ref or ref^.
func TraceOriginLine(lines []string, hunkHeader, toLine int, marker byte) (lineNo int, isDelete bool) {
	isDelete = marker == '-'
	oppositeStart, newStart := parseHunkStarts(lines[hunkHeader])
	lineNo = newStart
	if isDelete {
		lineNo = oppositeStart
	}
	for i := hunkHeader + 1; i < toLine; i++ {
		if len(lines[i]) == 0 {
			continue
		}
		m := lines[i][0]
		switch {
		case m == ' ':
			lineNo++
		case isDelete && m == '-':
			lineNo++
		case !isDelete && m == '+':
			lineNo++
		}
	}
	return lineNo, isDelete
}

func parseHunkStarts(header string) (oldStart, newStart int) {
	// "@@ -a,b +c,d @@" -> pull the two leading integers.
	fields := strings.Fields(header)
	for _, f := range fields {
		if strings.HasPrefix(f, "-") {
			oldStart = atoiBeforeCommaLocal(f[1:])
		} else if strings.HasPrefix(f, "+") {
			newStart = atoiBeforeCommaLocal(f[1:])
		}
	}
	return
}

func atoiBeforeCommaLocal(s string) int {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}
