package config

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dump re-serializes the effective option set back into the command
// grammar, feeding the config round-trip property (spec §8: "writing out
// the effective option set in the command-language grammar and re-reading
// yields the same option set").
func (s *Store) Dump() string {
	var b strings.Builder
	o := s.Options

	writeBool := func(name string, v bool) { fmt.Fprintf(&b, "set %s = %v\n", name, v) }
	writeInt := func(name string, v int) { fmt.Fprintf(&b, "set %s = %d\n", name, v) }
	writeStr := func(name string, v string) { fmt.Fprintf(&b, "set %s = %q\n", name, v) }
	// Whole-number steps are written as-is; fractional steps are written as
	// the percentage ParseStep shifts back down, to the nearest hundredth.
	writeStep := func(name string, v float64) {
		if v >= 1 {
			fmt.Fprintf(&b, "set %s = %d\n", name, int(v))
			return
		}
		fmt.Fprintf(&b, "set %s = %d%%\n", name, int(math.Round(v*100))+1)
	}

	fmt.Fprintf(&b, "set line-graphics = %s\n", graphicName(o.LineGraphics))
	fmt.Fprintf(&b, "set show-date = %s\n", dateName(o.ShowDate))
	fmt.Fprintf(&b, "set show-author = %s\n", authorName(o.ShowAuthor))
	fmt.Fprintf(&b, "set show-filename = %s\n", filenameName(o.ShowFilename))
	fmt.Fprintf(&b, "set show-file-size = %s\n", fileSizeName(o.ShowFileSize))
	writeBool("show-rev-graph", o.ShowRevGraph)
	writeBool("show-line-numbers", o.ShowLineNumbers)
	writeBool("show-refs", o.ShowRefs)
	writeBool("show-changes", o.ShowChanges)
	writeBool("status-untracked-dirs", o.StatusUntrackedDirs)
	writeBool("read-git-colors", o.ReadGitColors)
	writeBool("wrap-lines", o.WrapLines)
	writeBool("ignore-case", o.IgnoreCase)
	writeBool("focus-child", o.FocusChild)
	writeInt("diff-context", o.DiffContext)
	fmt.Fprintf(&b, "set ignore-space = %s\n", ignoreSpaceName(o.IgnoreSpace))
	fmt.Fprintf(&b, "set commit-order = %s\n", commitOrderName(o.CommitOrder))
	writeBool("show-notes", o.ShowNotes)
	writeInt("line-number-interval", o.LineNumberInterval)
	writeStep("horizontal-scroll", o.HorizontalScroll)
	writeStep("split-view-height", o.SplitViewHeight)
	writeStep("scale-vsplit-view", o.ScaleVsplitView)
	writeBool("vertical-split", o.VerticalSplit)
	writeInt("tab-size", o.TabSize)
	writeInt("author-width", o.AuthorWidth)
	writeInt("filename-width", o.FilenameWidth)
	writeStr("editor", o.Editor)
	writeBool("editor-line-number", o.EditorLineNumber)
	writeBool("show-id", o.ShowID)
	writeInt("id-width", o.IDWidth)
	writeBool("file-filter", o.FileFilter)
	if o.ShowTitleOverflow {
		writeInt("title-overflow", o.TitleOverflow)
	} else {
		writeBool("title-overflow", false)
	}

	return b.String()
}

func graphicName(m GraphicMode) string {
	return []string{"ascii", "default", "utf-8"}[m]
}
func dateName(m DateMode) string {
	return []string{"no", "default", "local", "relative", "short"}[m]
}
func authorName(m AuthorMode) string {
	return []string{"no", "full", "abbreviated", "email", "email-user"}[m]
}
func filenameName(m FilenameMode) string {
	return []string{"no", "always", "auto"}[m]
}
func fileSizeName(m FileSizeMode) string {
	return []string{"no", "default", "units"}[m]
}
func ignoreSpaceName(m IgnoreSpaceMode) string {
	return []string{"no", "all", "some", "at-eol"}[m]
}
func commitOrderName(m CommitOrderMode) string {
	return []string{"default", "topo", "date", "reverse"}[m]
}

// yamlOptions mirrors Options for YAML (de)serialization without exposing
// the internal mutex, used by `tig config dump --yaml` (SPEC_FULL.md §3).
type yamlOptions struct {
	LineGraphics        string  `yaml:"lineGraphics"`
	ShowDate            string  `yaml:"showDate"`
	ShowAuthor          string  `yaml:"showAuthor"`
	ShowFilename        string  `yaml:"showFilename"`
	ShowFileSize        string  `yaml:"showFileSize"`
	ShowRevGraph        bool    `yaml:"showRevGraph"`
	ShowLineNumbers     bool    `yaml:"showLineNumbers"`
	ShowRefs            bool    `yaml:"showRefs"`
	ShowChanges         bool    `yaml:"showChanges"`
	StatusUntrackedDirs bool    `yaml:"statusUntrackedDirs"`
	WrapLines           bool    `yaml:"wrapLines"`
	IgnoreCase          bool    `yaml:"ignoreCase"`
	DiffContext         int     `yaml:"diffContext"`
	TabSize             int     `yaml:"tabSize"`
	HorizontalScroll    float64 `yaml:"horizontalScroll"`
	SplitViewHeight     float64 `yaml:"splitViewHeight"`
	IDWidth             int     `yaml:"idWidth"`
}

// DumpYAML renders the effective option set as YAML, the second persisted
// representation named in SPEC_FULL.md's domain-stack section.
func (s *Store) DumpYAML() ([]byte, error) {
	o := s.Options
	y := yamlOptions{
		LineGraphics:        graphicName(o.LineGraphics),
		ShowDate:            dateName(o.ShowDate),
		ShowAuthor:          authorName(o.ShowAuthor),
		ShowFilename:        filenameName(o.ShowFilename),
		ShowFileSize:        fileSizeName(o.ShowFileSize),
		ShowRevGraph:        o.ShowRevGraph,
		ShowLineNumbers:     o.ShowLineNumbers,
		ShowRefs:            o.ShowRefs,
		ShowChanges:         o.ShowChanges,
		StatusUntrackedDirs: o.StatusUntrackedDirs,
		WrapLines:           o.WrapLines,
		IgnoreCase:          o.IgnoreCase,
		DiffContext:         o.DiffContext,
		TabSize:             o.TabSize,
		HorizontalScroll:    o.HorizontalScroll,
		SplitViewHeight:     o.SplitViewHeight,
		IDWidth:             o.IDWidth,
	}
	return yaml.Marshal(y)
}
