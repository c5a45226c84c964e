package vcs

import (
	"strconv"
	"strings"
	"time"
)

// Commit is one row of the main/log view, built incrementally from a
// `--pretty=raw` stream (spec §4.G).
type Commit struct {
	ID      string
	Parents []string
	Author  string
	Time    time.Time
	Title   string

	// Virtual rows (spec §4.G "injects synthetic Staged/Unstaged rows"):
	// Virtual marks a Commit that does not correspond to a real
	// commit object, only HEAD's working-tree delta.
	Virtual bool
}

// CommitParser incrementally consumes `git log --pretty=raw` output, one
// line at a time, flushing a completed Commit each time a new "commit "
// header starts (or on Flush at EOF).
type CommitParser struct {
	pending      *Commit
	sawBlank     bool
	titleCapture bool
}

// NewCommitParser returns an empty parser.
func NewCommitParser() *CommitParser { return &CommitParser{} }

// Feed consumes one line and returns a completed Commit whenever a "commit "
// header flushes the previous one.
func (p *CommitParser) Feed(line string) (*Commit, bool) {
	switch {
	case strings.HasPrefix(line, "commit "):
		var flushed *Commit
		if p.pending != nil {
			flushed = p.pending
		}
		p.pending = &Commit{ID: strings.TrimSpace(strings.TrimPrefix(line, "commit "))}
		p.sawBlank = false
		p.titleCapture = false
		if flushed != nil {
			return flushed, true
		}
		return nil, false

	case strings.HasPrefix(line, "parent "):
		if p.pending != nil {
			id := strings.TrimSpace(strings.TrimPrefix(line, "parent "))
			for _, existing := range p.pending.Parents {
				if existing == id {
					return nil, false
				}
			}
			p.pending.Parents = append(p.pending.Parents, id)
		}
		return nil, false

	case strings.HasPrefix(line, "author "):
		if p.pending != nil {
			name, when := parseIdent(strings.TrimPrefix(line, "author "))
			p.pending.Author = name
			p.pending.Time = when
		}
		return nil, false

	case line == "":
		p.sawBlank = true
		p.titleCapture = true
		return nil, false

	case p.titleCapture && strings.HasPrefix(line, "    "):
		if p.pending != nil && p.pending.Title == "" {
			p.pending.Title = strings.TrimPrefix(line, "    ")
		}
		p.titleCapture = false
		return nil, false

	default:
		return nil, false
	}
}

// Flush returns the final pending commit at EOF, if any.
func (p *CommitParser) Flush() (*Commit, bool) {
	if p.pending == nil {
		return nil, false
	}
	c := p.pending
	p.pending = nil
	return c, true
}

// parseIdent splits a raw "Name <email> epoch tz" ident line into a display
// name and the commit time (spec §4.G: "parse ident + epoch + timezone").
func parseIdent(s string) (name string, when time.Time) {
	emailStart := strings.IndexByte(s, '<')
	emailEnd := strings.IndexByte(s, '>')
	if emailStart < 0 || emailEnd < 0 || emailEnd < emailStart {
		return strings.TrimSpace(s), time.Time{}
	}
	name = strings.TrimSpace(s[:emailStart])
	rest := strings.Fields(s[emailEnd+1:])
	if len(rest) < 1 {
		return name, time.Time{}
	}
	epoch, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		return name, time.Time{}
	}
	when = time.Unix(epoch, 0).UTC()
	if len(rest) >= 2 {
		if loc, err := parseTZOffset(rest[1]); err == nil {
			when = when.In(loc)
		}
	}
	return name, when
}

func parseTZOffset(tz string) (*time.Location, error) {
	if len(tz) != 5 {
		return nil, strconvErr(tz)
	}
	sign := 1
	if tz[0] == '-' {
		sign = -1
	}
	hh, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, err
	}
	mm, err := strconv.Atoi(tz[3:5])
	if err != nil {
		return nil, err
	}
	offset := sign * (hh*3600 + mm*60)
	return time.FixedZone(tz, offset), nil
}

func strconvErr(s string) error {
	_, err := strconv.Atoi("x" + s)
	return err
}

// LogArgvForCommitOrder maps opt.commit_order to the matching `git log` flag
// (spec §4.A CommitOrderMode, consumed when building the main view's argv).
func LogArgvForCommitOrder(mode CommitOrderModeLike) []string {
	switch mode {
	case CommitOrderTopoLike:
		return []string{"--topo-order"}
	case CommitOrderDateLike:
		return []string{"--date-order"}
	case CommitOrderReverseLike:
		return []string{"--reverse"}
	default:
		return nil
	}
}

// CommitOrderModeLike mirrors pkg/config.CommitOrderMode's values without a
// direct import (keeps pkg/vcs free of a pkg/config dependency so that
// pkg/config, which never needs repository access, stays a leaf package).
type CommitOrderModeLike int

const (
	CommitOrderDefaultLike CommitOrderModeLike = iota
	CommitOrderTopoLike
	CommitOrderDateLike
	CommitOrderReverseLike
)
