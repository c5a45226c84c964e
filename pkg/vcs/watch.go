package vcs

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem change events into a single reload signal
// for the status view's `--watch` mode (SPEC_FULL.md §3 domain stack).
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	Changes  chan struct{}
	Errors   chan error

	stop chan struct{}
}

// NewWatcher watches gitDir (for HEAD/index/ref changes) and worktree (for
// file edits), coalescing bursts of events that land within debounce of each
// other into a single send on Changes.
func NewWatcher(gitDir, worktree string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range []string{gitDir, worktree, filepath.Join(gitDir, "refs", "heads")} {
		_ = fsw.Add(dir) // best-effort: refs/heads may not exist on a fresh repo
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		Changes:  make(chan struct{}, 1),
		Errors:   make(chan error, 1),
		stop:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-timerC:
			timerC = nil
			select {
			case w.Changes <- struct{}{}:
			default:
			}
		}
	}
}

// Close stops the watcher and releases its underlying fsnotify resources.
func (w *Watcher) Close() error {
	close(w.stop)
	return w.fsw.Close()
}
