// Package lineinfo implements the line-type & attribute table (spec
// component C): classification of raw subprocess output lines into a small
// enumeration of line-kinds, plus the fg/bg/attr palette for each, extended
// at runtime by `color "prefix" fg bg attr` statements.
package lineinfo

import "strings"

// Type is a line-kind enumerant used both for palette lookup and as a
// rendering hint (spec Design Note: "treat type as a rendering hint only").
type Type int

const (
	LineDefault Type = iota
	LineDiffHeader
	LineDiffChunk
	LineDiffAdd
	LineDiffDel
	LineDiffAdd2    // combined-diff two-parent add, valid only when combinedDiff
	LineDiffDel2    // combined-diff two-parent del, valid only when combinedDiff
	LineDiffStat
	LineCommit
	LineParent
	LineAuthor
	LineDate
	LineTitle
	LineID
	LineDelimiter
	LineStatHead
	LineStatus
	LineTreeDir
	LineTreeFile
	LineTreeHead
	LineMainRef
	LineMainHead
	LineCursor
)

// Info is one row of the palette: a name, a prefix matcher, and colors/attrs.
type Info struct {
	Name string
	// Match is the literal prefix this entry recognizes; classification is
	// first-match-wins in priority order (custom entries are tried first).
	Match string
	FG    int
	BG    int
	Attr  int
	Type  Type
}

// builtins lists the fixed classification order. LineDefault is not in the
// list: it is the fallback Classify returns when no entry matches.
var builtins = []Info{
	{Name: "diff-header", Match: "diff --git ", Type: LineDiffHeader, FG: -1, BG: -1},
	{Name: "diff-chunk", Match: "@@", Type: LineDiffChunk, FG: 6, BG: -1},
	{Name: "diff-add", Match: "+", Type: LineDiffAdd, FG: 2, BG: -1},
	{Name: "diff-del", Match: "-", Type: LineDiffDel, FG: 1, BG: -1},
	{Name: "diff-stat", Match: "---", Type: LineDiffStat, FG: -1, BG: -1},
	{Name: "commit", Match: "commit ", Type: LineCommit, FG: 3, BG: -1},
	{Name: "parent", Match: "parent ", Type: LineParent, FG: -1, BG: -1},
	{Name: "author", Match: "author ", Type: LineAuthor, FG: 2, BG: -1},
	{Name: "tree-head", Match: "tree ", Type: LineTreeHead, FG: -1, BG: -1},
	{Name: "stat-head", Match: " file", Type: LineStatHead, FG: -1, BG: -1},
	{Name: "main-ref", Match: "Refs:", Type: LineMainRef, FG: 3, BG: -1},
}

// Table is the runtime classifier: built-ins plus any custom prefix entries
// registered via `color "prefix" ...`, tried in prepend order (spec §4.C:
// "custom entries prepend"). builtins is a per-Table copy so that `color
// <built-in-name> ...` can recolor an entry in place without mutating the
// package-level defaults shared by every Table.
type Table struct {
	custom   []Info
	builtins []Info
}

// New returns a Table with only the built-in classifiers installed.
func New() *Table {
	return &Table{builtins: append([]Info(nil), builtins...)}
}

// AddCustom registers a `color "prefix" fg bg attr` entry. prefix must
// already have its surrounding quotes stripped by the caller.
func (t *Table) AddCustom(prefix string, fg, bg, attr int) *Info {
	info := Info{Name: prefix, Match: prefix, FG: fg, BG: bg, Attr: attr, Type: LineDefault}
	t.custom = append([]Info{info}, t.custom...)
	return &t.custom[0]
}

// Classify returns the first matching Info for line, custom entries first,
// falling back to LineDefault when nothing matches.
func (t *Table) Classify(line string) Info {
	for _, info := range t.custom {
		if strings.HasPrefix(line, info.Match) {
			return info
		}
	}
	for _, info := range t.builtins {
		if strings.HasPrefix(line, info.Match) {
			return info
		}
	}
	return Info{Name: "default", Type: LineDefault, FG: -1, BG: -1}
}

// ByName looks up a built-in or custom entry by its name, used by the
// `color <name> ...` statement form (as opposed to the quoted-prefix form).
// The returned pointer is live: mutating it through the `color` statement
// recolors the entry for subsequent Classify calls on this Table.
func (t *Table) ByName(name string) (*Info, bool) {
	for i := range t.custom {
		if t.custom[i].Name == name {
			return &t.custom[i], true
		}
	}
	for i := range t.builtins {
		if t.builtins[i].Name == name {
			return &t.builtins[i], true
		}
	}
	return nil, false
}

// DowngradeCombinedOnly reports whether a type is only valid in a combined
// diff (ADD2/DEL2), per spec §4.F: "valid only when combinedDiff; otherwise
// downgraded to default."
func DowngradeCombinedOnly(t Type, combinedDiff bool) Type {
	if (t == LineDiffAdd2 || t == LineDiffDel2) && !combinedDiff {
		return LineDefault
	}
	return t
}
