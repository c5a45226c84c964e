package vcs

import (
	"fmt"
	"strings"
)

// StageLineType selects which of the four diff commands opens the stage
// pager (spec §4.K "Stage view").
type StageLineType int

const (
	StageStaged StageLineType = iota
	StageUnstaged
	StageUnmerged
	StageUntracked
)

// StageViewArgv returns the argv for opening the per-file stage pager, per
// spec §4.K's four-way dispatch.
func StageViewArgv(kind StageLineType, unbornHEAD bool, path string) []string {
	switch {
	case kind == StageStaged && unbornHEAD:
		return []string{"git", "diff", "--cached", "--", path}
	case kind == StageStaged:
		return []string{"git", "diff-index", "-p", "--cached", "HEAD", "--", path}
	case kind == StageUnmerged:
		return []string{"git", "diff-files", "-p", "--root", "--", path}
	case kind == StageUnstaged:
		return []string{"git", "diff-files", "-p", "--", path}
	default: // StageUntracked: spooled directly, no subprocess
		return nil
	}
}

// Hunk is one `@@ -oldStart,oldCount +newStart,newCount @@` region of a
// parsed diff, plus its raw lines (including the header) and the preceding
// "diff --git"-through-"+++" header group.
type Hunk struct {
	HeaderGroup []string // "diff --git ..." through "+++ b/..."
	HunkHeader  string   // "@@ -a,b +c,d @@..."
	OldStart    int
	NewStart    int
	Lines       []string // content lines, including the leading +/-/' ' marker
}

// BuildApplyPatch constructs the full patch fed to `git apply` for a
// whole-hunk stage/unstage/revert (spec §4.K step 2 "Whole hunk: stream the
// hunk through unchanged").
func BuildApplyPatch(h Hunk) string {
	var b strings.Builder
	for _, l := range h.HeaderGroup {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(h.HunkHeader)
	b.WriteByte('\n')
	for _, l := range h.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildSingleLinePatch constructs the minimal one-line patch for
// StageUpdateLine (spec §4.K step 2 "Single line"): the hunk header is
// rewritten to "@@ -L,c1 +L,c2 @@" where L is recomputed by walking context
// from the hunk's original start to the selected line, counting additions
// for an added selected line and deletions for a deleted one; (c1,c2) is
// (0,1) for an add and (1,0) for a delete.
func BuildSingleLinePatch(h Hunk, selectedIndex int) (string, error) {
	if selectedIndex < 0 || selectedIndex >= len(h.Lines) {
		return "", fmt.Errorf("selected line index out of range")
	}
	selected := h.Lines[selectedIndex]
	if len(selected) == 0 {
		return "", fmt.Errorf("empty diff line")
	}
	marker := selected[0]
	if marker != '+' && marker != '-' {
		return "", fmt.Errorf("selected line is not an add/del row")
	}

	lineNo := h.OldStart
	if marker == '+' {
		lineNo = h.NewStart
	}
	for i := 0; i < selectedIndex; i++ {
		m := h.Lines[i][0]
		switch {
		case m == ' ':
			lineNo++
		case marker == '+' && m == '+':
			lineNo++
		case marker == '-' && m == '-':
			lineNo++
		}
	}

	var c1, c2 int
	if marker == '+' {
		c1, c2 = 0, 1
	} else {
		c1, c2 = 1, 0
	}

	var b strings.Builder
	for _, l := range h.HeaderGroup {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", lineNo, c1, lineNo, c2)
	b.WriteString(selected)
	b.WriteByte('\n')
	return b.String(), nil
}

// ApplyFlags selects the `git apply` invocation flags (spec §4.K step 3).
type ApplyFlags struct {
	Cached      bool
	UnidiffZero bool
	Reverse     bool
}

// ApplyArgv builds the `git apply` argv reading the patch from stdin.
func ApplyArgv(flags ApplyFlags) []string {
	argv := []string{"git", "apply"}
	if flags.Cached {
		argv = append(argv, "--cached")
	}
	if flags.UnidiffZero {
		argv = append(argv, "--unidiff-zero")
	}
	if flags.Reverse {
		argv = append(argv, "-R")
	}
	return append(argv, "-")
}

// FlagsForStage derives ApplyFlags for a stage/unstage/revert operation, per
// spec §4.K step 3: "--cached for stage operations", "--unidiff-zero when
// applying a single line", "-R for revert or when the current mode is
// STAGED (always reverse-applies for unstage)".
func FlagsForStage(kind StageLineType, singleLine, revert bool) ApplyFlags {
	return ApplyFlags{
		Cached:      kind != StageUntracked,
		UnidiffZero: singleLine,
		Reverse:     revert || kind == StageStaged,
	}
}

// BuildIndexInfoScript builds the `update-index --index-info` stdin script
// for a whole-file STAGED update with no hunk in view (spec §4.K
// "Whole-file update"): one "%06o %s\t%s\n" line per entry using old
// mode/rev/name.
func BuildIndexInfoScript(entries []StatusEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(FormatIndexInfoLine(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildAddRemoveStdin builds the NUL-separated name list for
// `update-index --add --remove --stdin` (UNSTAGED/UNTRACKED whole-file
// update, spec §4.K).
func BuildAddRemoveStdin(names []string) string {
	return strings.Join(names, "\x00") + "\x00"
}

// RevertArgv builds the argv sequence for StatusRevert (unstaged only, spec
// §4.K "Revert"). A to-be-deleted unmerged entry (new mode "0") uses
// --force-remove in place of --cacheinfo.
func RevertArgv(e StatusEntry) [][]string {
	if e.Unmerged && e.NewMode == "0" {
		return [][]string{
			{"git", "update-index", "--force-remove", "--", e.Name},
			{"git", "checkout", "--", e.Name},
		}
	}
	return [][]string{
		{"git", "update-index", "--cacheinfo", e.OldMode, e.OldRev, e.Name},
		{"git", "checkout", "--", e.Name},
	}
}

// NextHunkIndex returns the smallest index in hunkHeaderRows strictly
// greater than cursor, or -1 if none (spec §4.K "Stage next").
func NextHunkIndex(hunkHeaderRows []int, cursor int) int {
	best := -1
	for _, idx := range hunkHeaderRows {
		if idx > cursor && (best == -1 || idx < best) {
			best = idx
		}
	}
	return best
}
