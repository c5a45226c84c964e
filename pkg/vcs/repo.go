package vcs

import (
	"strconv"
	"strings"
)

// Facts is the one-shot repository discovery result (spec §3 "Repo facts"),
// gathered via `git rev-parse` the way tig.c probes the repository at
// startup rather than by reading .git internals directly.
type Facts struct {
	GitDir     string
	WorkTree   string
	IsBare     bool
	HeadBranch string // "" when detached
	HeadOID    string
	Prefix     string // path from worktree root to cwd, per --show-prefix
}

// DiscoverFacts runs the rev-parse probe described in spec §3. It must run
// before any view opens, since every view's command template substitutes
// %(directory) relative to WorkTree.
func DiscoverFacts(r *Runner) (*Facts, error) {
	out, err := r.RunCapture([]string{
		"git", "rev-parse", "--git-dir", "--show-toplevel", "--is-bare-repository",
		"--abbrev-ref", "HEAD", "--show-prefix",
	})
	if err != nil {
		return nil, err
	}
	lines := strings.Split(out, "\n")
	for len(lines) < 5 {
		lines = append(lines, "")
	}

	f := &Facts{
		GitDir:   lines[0],
		WorkTree: lines[1],
		IsBare:   lines[2] == "true",
		Prefix:   lines[4],
	}
	if lines[3] != "HEAD" {
		f.HeadBranch = lines[3]
	}

	if oid, err := r.RunCapture([]string{"git", "rev-parse", "HEAD"}); err == nil {
		f.HeadOID = oid
	}
	return f, nil
}

// AbbrevWidth returns the effective object-id display width: either the
// user's explicit id-width or the value git itself would pick for the
// current object count, mirroring `git rev-parse --short` sizing when
// id-width was never set (SPEC_FULL.md §5 "id-width / abbrev interaction").
func AbbrevWidth(r *Runner, explicitWidth int) int {
	if explicitWidth > 0 {
		return explicitWidth
	}
	out, err := r.RunCapture([]string{"git", "rev-parse", "--short", "HEAD"})
	if err != nil {
		return 8
	}
	return len(strings.TrimSpace(out))
}

// CountDigits returns the number of base-10 digits of n, used by the view
// engine to size the line-number gutter (spec §4.E "digits = count_digits").
func CountDigits(n int) int {
	return len(strconv.Itoa(maxInt(n, 1)))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
