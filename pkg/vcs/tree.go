package vcs

import (
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TreeEntryKind distinguishes directory, file, and the two synthetic rows
// spec §4.H adds to every listing.
type TreeEntryKind int

const (
	TreeFile TreeEntryKind = iota
	TreeDir
	TreeHead   // synthetic row rendering the current directory
	TreeParent // synthetic ".." link, omitted at repo root
)

// TreeEntry is one row of a tree view.
type TreeEntry struct {
	Kind TreeEntryKind
	Mode string
	OID  string
	Name string
	Size int64

	// Annotated by the second `log --raw` pipeline (spec §4.H).
	CommitID string
	Author   string
	Time     time.Time
	annotated bool
}

// ParseLsTreeL parses `git ls-tree -l` output into TreeEntry rows.
func ParseLsTreeL(output string) []TreeEntry {
	var entries []TreeEntry
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue
		}
		meta := strings.Fields(line[:tab])
		name := line[tab+1:]
		if len(meta) < 4 {
			continue
		}
		kind := TreeFile
		if meta[1] == "tree" {
			kind = TreeDir
		}
		var size int64
		if meta[3] != "-" {
			size, _ = strconv.ParseInt(meta[3], 10, 64)
		}
		entries = append(entries, TreeEntry{
			Kind: kind, Mode: meta[0], OID: meta[2], Name: name, Size: size,
		})
	}
	return entries
}

// WithSyntheticRows prepends the ".." parent-link row (when dir is not the
// repository root) and the head row rendering dir itself, per spec §4.H.
func WithSyntheticRows(entries []TreeEntry, dir string) []TreeEntry {
	head := TreeEntry{Kind: TreeHead, Name: dir}
	if dir == "" || dir == "." {
		return append([]TreeEntry{head}, entries...)
	}
	parent := TreeEntry{Kind: TreeParent, Name: ".."}
	return append([]TreeEntry{head, parent}, entries...)
}

// TreeSortField selects the column tree entries are ordered by.
type TreeSortField int

const (
	SortByName TreeSortField = iota
	SortByDate
	SortByAuthor
)

// SortTreeEntries orders entries (directories always first), per field, with
// an optional reverse toggle (spec §4.H "Sort fields... with reverse toggle").
func SortTreeEntries(entries []TreeEntry, field TreeSortField, reverse bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Kind == TreeDir) != (b.Kind == TreeDir) {
			return a.Kind == TreeDir // directories first regardless of field/reverse
		}
		var less bool
		switch field {
		case SortByDate:
			less = a.Time.Before(b.Time)
		case SortByAuthor:
			less = a.Author < b.Author
		default:
			less = a.Name < b.Name
		}
		if reverse {
			return !less
		}
		return less
	})
}

// AnnotateFromRawLog consumes one `commit <id>` / `author ...` / path line
// from a `git log --raw` stream run over the directory, filling in the
// most-recent commit touching each still-unannotated entry (spec §4.H
// "annotates the most-recent author/time/commit per filename"). Returns true
// once every entry has been annotated, the caller's signal to kill the
// annotator pipe early.
func AnnotateFromRawLog(entries []TreeEntry, commitID, author string, when time.Time, touchedPaths []string) (done bool) {
	touched := map[string]bool{}
	for _, p := range touchedPaths {
		touched[path.Base(p)] = true
	}

	remaining := 0
	for i := range entries {
		if entries[i].annotated {
			continue
		}
		if touched[entries[i].Name] {
			entries[i].CommitID = commitID
			entries[i].Author = author
			entries[i].Time = when
			entries[i].annotated = true
			continue
		}
		remaining++
	}
	return remaining == 0
}

// DirStackFrame is one entry of the LIFO navigation stack (spec §4.H
// "{prev_name_offset_in_opt.path, prev_lineno}").
type DirStackFrame struct {
	PrevPathOffset int
	PrevLineno     int
}

// DirStack tracks tree-view directory navigation.
type DirStack struct {
	frames []DirStackFrame
}

// Push records the current position before descending into a subdirectory.
func (s *DirStack) Push(pathOffset, lineno int) {
	s.frames = append(s.frames, DirStackFrame{PrevPathOffset: pathOffset, PrevLineno: lineno})
}

// Pop restores the previous position when navigating to "..", returning
// false if already at the root.
func (s *DirStack) Pop() (DirStackFrame, bool) {
	if len(s.frames) == 0 {
		return DirStackFrame{}, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

// SpoolBlob writes content to a uniquely-named temp file shaped
// "<TMPDIR>/tigblob.XXXXXX.<name>" (spec §4.H editor hand-off), using
// google/uuid in place of a hand-rolled random suffix while preserving the
// documented naming shape. The caller is responsible for unlinking the
// returned path after the editor exits.
func SpoolBlob(name string, content []byte) (string, error) {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	fname := "tigblob." + suffix + "." + path.Base(name)
	full := path.Join(os.TempDir(), fname)
	if err := os.WriteFile(full, content, 0o600); err != nil {
		return "", err
	}
	return full, nil
}
