package vcs

import "strings"

// PartitionArgs splits a raw command-line tail into three buckets: revs,
// flags (destined for diff-options/blame-options), and paths (destined for
// file_argv / %(fileargs)). The partition itself is delegated to
// `git rev-parse` rather than hand-rolled heuristics over the argument
// strings.
func PartitionArgs(r *Runner, args []string) (revs, flags, paths []string, err error) {
	if len(args) == 0 {
		return nil, nil, nil, nil
	}

	revsOut, err := r.RunCapture(append([]string{"git", "rev-parse", "--revs-only"}, args...))
	if err != nil {
		return nil, nil, nil, err
	}
	revs = splitNonEmpty(revsOut)

	flagsOut, err := r.RunCapture(append([]string{"git", "rev-parse", "--no-revs", "--flags"}, args...))
	if err != nil {
		return nil, nil, nil, err
	}
	flags = splitNonEmpty(flagsOut)

	pathsOut, err := r.RunCapture(append([]string{"git", "rev-parse", "--no-revs", "--no-flags"}, args...))
	if err != nil {
		return nil, nil, nil, err
	}
	paths = splitNonEmpty(pathsOut)

	return revs, flags, paths, nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
