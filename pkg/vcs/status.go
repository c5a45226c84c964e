package vcs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StatusKind distinguishes the three status sections (spec §4.K).
type StatusKind int

const (
	StatusStaged StatusKind = iota
	StatusUnstaged
	StatusUntracked
)

// StatusEntry is one real status row; section headers and "(no files)"
// placeholders are represented by the caller as plain custom rows, not by
// this type (spec §4.K: "real rows carry a Status payload").
type StatusEntry struct {
	Kind       StatusKind
	OldMode    string
	NewMode    string
	OldRev     string
	NewRev     string
	Status     byte // M, A, D, R, C, U, ...
	Name       string
	OldName    string // set for R/C
	Unmerged   bool
}

// HeaderState is the sentinel-file priority list from spec §4.K step 1,
// extended per SPEC_FULL.md §4.K to also recognize a bare CHERRY_PICK_HEAD.
type HeaderState struct {
	Prefix   string
	HeadName string
}

var sentinelOrder = []struct {
	path   string
	prefix string
}{
	{"rebase-apply/rebasing", "Rebasing"},
	{"rebase-apply/applying", "Applying mailbox"},
	{"rebase-apply/", "Rebasing mailbox"},
	{"rebase-merge/interactive", "Interactive rebase"},
	{"rebase-merge/", "Rebasing"},
	{"MERGE_HEAD", "Merging"},
	{"CHERRY_PICK_HEAD", "Cherry-picking"},
	{"BISECT_LOG", "Bisecting"},
}

// DetectHeaderState walks gitDir's sentinel files in priority order, falling
// back to plain "On branch" (read from HEAD) when none are present.
func DetectHeaderState(gitDir, headBranch string) HeaderState {
	for _, s := range sentinelOrder {
		if _, err := os.Stat(filepath.Join(gitDir, s.path)); err == nil {
			name := headBranch
			if name == "" {
				if b, err := os.ReadFile(filepath.Join(gitDir, "rebase-merge", "head-name")); err == nil {
					name = strings.TrimSpace(strings.TrimPrefix(string(b), "refs/heads/"))
				}
			}
			return HeaderState{Prefix: s.prefix, HeadName: name}
		}
	}
	return HeaderState{Prefix: "On branch", HeadName: headBranch}
}

// ParseDiffIndexZ parses NUL-delimited `diff-index -z`/`diff-files -z`
// records: pairs of a ":<oldmode> <newmode> <oldrev> <newrev> <status>"
// metadata record followed by one path (two for R/C). Unmerged (U) entries
// absorb a later duplicate same-path record per spec §4.K.
func ParseDiffIndexZ(raw string, kind StatusKind) []StatusEntry {
	fields := splitNUL(raw)
	byName := map[string]*StatusEntry{}
	var order []string

	i := 0
	for i < len(fields) {
		meta := fields[i]
		if !strings.HasPrefix(meta, ":") {
			i++
			continue
		}
		parts := strings.Fields(meta[1:])
		if len(parts) < 5 {
			break
		}
		status := parts[4][0]
		i++
		if i >= len(fields) {
			break
		}
		name := fields[i]
		i++
		var oldName string
		if status == 'R' || status == 'C' {
			if i >= len(fields) {
				break
			}
			oldName = name
			name = fields[i]
			i++
		}

		if existing, ok := byName[name]; ok {
			existing.Status = 'U'
			existing.Unmerged = true
			continue
		}

		entry := &StatusEntry{
			Kind: kind, OldMode: parts[0], NewMode: parts[1],
			OldRev: parts[2], NewRev: parts[3], Status: status,
			Name: name, OldName: oldName, Unmerged: status == 'U',
		}
		byName[name] = entry
		order = append(order, name)
	}

	out := make([]StatusEntry, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// ParseLsFilesZ turns a NUL-delimited `ls-files` stream into synthetic
// StatusEntry rows (used for an unborn HEAD's staged section, and for the
// untracked section, where every entry is a synthetic 'A' / '?').
func ParseLsFilesZ(raw string, kind StatusKind, status byte) []StatusEntry {
	var out []StatusEntry
	for _, name := range splitNUL(raw) {
		if name == "" {
			continue
		}
		out = append(out, StatusEntry{Kind: kind, Status: status, Name: name})
	}
	return out
}

func splitNUL(raw string) []string {
	raw = strings.TrimRight(raw, "\x00")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\x00")
}

// BuildStatusArgv returns the argv for each of the three status sections, per
// spec §4.K steps 3-5. unbornHEAD selects ls-files over diff-index for the
// staged section; untrackedDirs controls whether untracked directories are
// collapsed.
func BuildStatusArgv(unbornHEAD, untrackedDirs bool) (staged, unstaged, untracked []string) {
	if unbornHEAD {
		staged = []string{"git", "ls-files", "--cached", "-z"}
	} else {
		staged = []string{"git", "diff-index", "-z", "--cached", "HEAD"}
	}
	unstaged = []string{"git", "diff-files", "-z"}
	untracked = []string{"git", "ls-files", "--others", "--exclude-standard", "-z"}
	if untrackedDirs {
		untracked = append(untracked, "--directory")
	}
	return
}

// FormatIndexInfoLine renders one `update-index --index-info` input line
// ("%06o %s\t%s", spec §4.K "Whole-file update") using the entry's old
// mode/rev/name, as required for STAGED index-only staging.
func FormatIndexInfoLine(e StatusEntry) string {
	mode, err := strconv.ParseInt(e.OldMode, 8, 32)
	if err != nil {
		mode = 0o100644
	}
	return fmt.Sprintf("%06o %s\t%s", mode, e.OldRev, e.Name)
}
