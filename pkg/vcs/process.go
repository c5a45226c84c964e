// Package vcs implements the data model and subprocess pipelines (spec
// components F-K's data side): every operation is a thin wrapper over a git
// subprocess invocation, never a direct read of repository objects.
package vcs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/kill"
	"github.com/mgutz/str"
	"github.com/sirupsen/logrus"
)

// Runner executes git subprocesses: a "command func" injection point for
// tests, a logrus timing log per invocation, and jesseduffield/kill
// process-group teardown for REQ_STOP_LOADING.
type Runner struct {
	Log     *logrus.Entry
	Dir     string
	command func(string, ...string) *exec.Cmd

	// Trace, if set, is called after every RunCapture with the argv, wall
	// time, and exit code — the --trace2-log hook point.
	Trace func(argv []string, dur time.Duration, exitCode int)
}

// NewRunner returns a Runner rooted at dir (the resolved worktree).
func NewRunner(log *logrus.Entry, dir string) *Runner {
	return &Runner{Log: log, Dir: dir, command: exec.Command}
}

// SetCommand overrides the command constructor, for tests only.
func (r *Runner) SetCommand(cmd func(string, ...string) *exec.Cmd) {
	r.command = cmd
}

func (r *Runner) newCmd(argv []string, env []string) *exec.Cmd {
	cmd := r.command(argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), env...)
	return cmd
}

// RunForeground runs argv attached to the controlling terminal (stdin,
// stdout, stderr all inherited) for editor/external-pager hand-off, per
// spec §4.B run-request semantics without the '@' (silent) flag.
func (r *Runner) RunForeground(argv []string) error {
	cmd := r.newCmd(argv, nil)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	before := time.Now()
	err := cmd.Run()
	r.Log.Debugf("%q: %s", strings.Join(argv, " "), time.Since(before))
	return err
}

// RunSilent runs argv in the background, discarding output, for the '@'
// run-request flag.
func (r *Runner) RunSilent(argv []string) error {
	cmd := r.newCmd(argv, nil)
	kill.PrepareForChildren(cmd)
	before := time.Now()
	_, err := sanitizedOutput(cmd.Output())
	r.Log.Debugf("%q: %s", strings.Join(argv, " "), time.Since(before))
	return err
}

// RunCapture runs argv and returns its stdout (not stderr), trimmed of a
// trailing newline — the "one-shot" form used by RepoFacts/refs/tree.
func (r *Runner) RunCapture(argv []string, env ...string) (string, error) {
	cmd := r.newCmd(argv, env)
	before := time.Now()
	out, err := sanitizedOutput(cmd.Output())
	dur := time.Since(before)
	r.Log.Debugf("%q: %s", strings.Join(argv, " "), dur)
	if r.Trace != nil {
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		r.Trace(argv, dur, exitCode)
	}
	return strings.TrimRight(out, "\n"), err
}

func sanitizedOutput(output []byte, err error) (string, error) {
	s := string(output)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return s, errors.New(strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", errors.Wrap(err, 0)
	}
	return s, nil
}

// ArgvFromString shell-tokenizes a command template after %()-substitution,
// using the mgutz/str tokenizer for run-request argv parsing.
func ArgvFromString(s string) []string {
	return str.ToArgv(s)
}

// Pipe is a live, view-owned subprocess whose stdout is read incrementally
// between keystrokes rather than by a dedicated goroutine per pipe (spec §5:
// "single-threaded, cooperative event loop"). Poll is called from the main
// loop; it never blocks longer than the deadline.
type Pipe struct {
	Cmd       *exec.Cmd
	StartedAt time.Time

	stdout  io.ReadCloser
	reader  *bufio.Reader
	scanner *lineScanner
	done    bool
	waited  bool
	mu      sync.Mutex
}

// OpenPipe starts argv with stdout captured for incremental reads. LINES and
// COLUMNS are set in the environment per spec §4.E begin_update.
func (r *Runner) OpenPipe(argv []string, lines, columns int) (*Pipe, error) {
	cmd := r.newCmd(argv, []string{
		fmt.Sprintf("LINES=%d", lines),
		fmt.Sprintf("COLUMNS=%d", columns),
	})
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	kill.PrepareForChildren(cmd)
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if f, ok := stdout.(*os.File); ok {
		_ = f.SetReadDeadline(time.Now().Add(-time.Millisecond)) // arm non-blocking mode immediately
	}
	return &Pipe{
		Cmd:       cmd,
		StartedAt: time.Now(),
		stdout:    stdout,
		reader:    bufio.NewReader(stdout),
		scanner:   newLineScanner(),
	}, nil
}

// Poll reads whatever complete lines are currently available without
// blocking past deadline, per spec §5 step 1: "pull as many complete lines
// as available". It returns the decoded lines and whether EOF/error closed
// the pipe.
func (p *Pipe) Poll(deadline time.Duration) (lines []string, closed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return nil, true
	}

	if f, ok := p.stdout.(*os.File); ok {
		_ = f.SetReadDeadline(time.Now().Add(deadline))
	}

	buf := make([]byte, 64*1024)
	for {
		n, err := p.reader.Read(buf)
		if n > 0 {
			lines = append(lines, p.scanner.Feed(buf[:n])...)
		}
		if err != nil {
			if isTimeout(err) {
				return lines, false
			}
			p.done = true
			lines = append(lines, p.scanner.Flush()...)
			p.closeLocked()
			return lines, true
		}
		if n == 0 {
			return lines, false
		}
	}
}

func (p *Pipe) closeLocked() {
	_ = p.stdout.Close()
	if !p.waited {
		p.waited = true
		go func() { _ = p.Cmd.Wait() }()
	}
}

// Stop kills the pipe's process group (REQ_STOP_LOADING, spec §4.E).
func (p *Pipe) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return nil
	}
	p.done = true
	err := kill.Kill(p.Cmd)
	p.closeLocked()
	return err
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	t, ok := err.(timeout)
	return ok && t.Timeout()
}

// lineScanner accumulates bytes across Poll calls and yields only complete
// '\n'-terminated lines, carrying a partial tail forward.
type lineScanner struct {
	buf strings.Builder
}

func newLineScanner() *lineScanner { return &lineScanner{} }

func (s *lineScanner) Feed(b []byte) []string {
	s.buf.Write(b)
	return s.drain(false)
}

// Flush yields the final partial line (if any) at EOF.
func (s *lineScanner) Flush() []string { return s.drain(true) }

func (s *lineScanner) drain(flush bool) []string {
	data := s.buf.String()
	var out []string
	for {
		idx := strings.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		out = append(out, data[:idx])
		data = data[idx+1:]
	}
	s.buf.Reset()
	if flush {
		if data != "" {
			out = append(out, data)
		}
		return out
	}
	s.buf.WriteString(data)
	return out
}
