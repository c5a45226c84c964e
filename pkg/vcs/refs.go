package vcs

import "strings"

// RefKind distinguishes branch/tag/remote-branch rows, plus the synthetic
// "All branches" row spec §4.J always emits first.
type RefKind int

const (
	RefAllBranches RefKind = iota
	RefBranch
	RefRemoteBranch
	RefTag
)

// Ref is one row of the branch view before it has been joined against the
// commit log (spec §4.J step 1: "emit one row per ref").
type Ref struct {
	Kind RefKind
	Name string
	ID   string

	// Joined in step 2.
	Author string
	Title  string
}

// ParseForEachRef turns `git for-each-ref` lines of the form
// "<objectname> <refname>" into Ref rows, classified by refname prefix, with
// the synthetic "All branches" row prepended.
func ParseForEachRef(output string, headBranch string) []Ref {
	refs := []Ref{{Kind: RefAllBranches, Name: "All branches"}}
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			continue
		}
		id, name := fields[0], fields[1]
		kind := RefBranch
		switch {
		case strings.HasPrefix(name, "refs/remotes/"):
			kind = RefRemoteBranch
			name = strings.TrimPrefix(name, "refs/remotes/")
		case strings.HasPrefix(name, "refs/tags/"):
			kind = RefTag
			name = strings.TrimPrefix(name, "refs/tags/")
		case strings.HasPrefix(name, "refs/heads/"):
			name = strings.TrimPrefix(name, "refs/heads/")
		}
		refs = append(refs, Ref{Kind: kind, Name: name, ID: id})
	}
	return refs
}

// JoinDecoratedLog updates refs in place from a parsed
// `log --all --simplify-by-decoration` stream, matching each commit's id
// against every ref currently pointing at it (spec §4.J step 2: "join
// author/time/title onto each ref by matching the commit <id> boundary").
// A ref may be touched multiple times if several commits' decoration lists
// mention it before the matching boundary is found; the last match wins,
// mirroring the original single forward scan.
func JoinDecoratedLog(refs []Ref, commitID, author, title string) {
	for i := range refs {
		if refs[i].ID == commitID {
			refs[i].Author = author
			refs[i].Title = title
		}
	}
}
