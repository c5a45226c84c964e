package app

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/sirupsen/logrus"

	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/gui"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/log"
	"github.com/stupied4ever/tig/pkg/utils"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// App bootstraps everything a single tig invocation needs: a discovered
// repository, the merged option store, the keymap registry, and the
// terminal UI that drives them.
type App struct {
	closers []io.Closer

	Runtime  *config.RuntimeConfig
	Log      *logrus.Entry
	Runner   *vcs.Runner
	Repo     *vcs.Facts
	Store    *config.Store
	Registry *keymap.Registry
	Gui      *gui.Gui

	ErrorChan chan error
}

// NewApp bootstraps a new application rooted at dir (the cwd tig was
// invoked from, before any core.worktree chdir dance).
func NewApp(rt *config.RuntimeConfig, dir string) (*App, error) {
	app := &App{
		closers:   []io.Closer{},
		Runtime:   rt,
		ErrorChan: make(chan error),
	}
	app.Log = log.NewLogger(rt)
	app.Runner = vcs.NewRunner(app.Log, dir)

	repo, err := vcs.DiscoverFacts(app.Runner)
	if err != nil {
		return app, err
	}
	app.Repo = repo

	app.Store = config.NewStore()
	for _, loadErr := range app.Store.LoadRCFiles() {
		app.Log.WithError(loadErr).Warn("rcfile load error")
	}
	app.Registry = app.Store.Keymaps

	app.Gui = gui.NewGui(app.Log, app.Repo, app.Runner, app.Store)
	return app, nil
}

// RunArgs is what the CLI layer hands to Run: the subcommand named on the
// command line (empty for plain `tig`, meaning the default log/main view),
// and the rev/flag/path buckets from spec §6.3's git-rev-parse partition.
type RunArgs struct {
	Sub       string
	Revs      []string
	DiffFlags []string
	Paths     []string
}

// Run waits for a usable terminal, opens the view ra.Sub names (the default
// log/main view for plain `tig`), then hands off to the gocui main loop.
func (app *App) Run(ra RunArgs) error {
	if err := waitForTerminalSpace(); err != nil {
		return err
	}
	v, err := app.openForSub(ra)
	if err != nil {
		return err
	}
	app.Gui.Engine.Views = []*gui.View{v}
	return app.Gui.Run()
}

// openForSub dispatches ra.Sub to the matching Gui.Open* method, building
// each one's argv the way spec §6.3 maps `tig log|show|blame|status|stash`
// onto its own view kind.
func (app *App) openForSub(ra RunArgs) (*gui.View, error) {
	switch ra.Sub {
	case "show":
		return app.Gui.OpenShow(app.showArgv(ra))
	case "blame":
		return app.Gui.OpenBlame(app.blamePath(ra), app.blameRef(ra))
	case "status":
		return app.Gui.OpenStatus()
	case "stash":
		return app.Gui.OpenStash()
	default:
		return app.Gui.OpenLog(app.logArgv(ra))
	}
}

// logArgv builds the `git log --pretty=raw` invocation CommitParser expects
// for the main/log view, folding in the caller-supplied revs/flags/paths.
func (app *App) logArgv(ra RunArgs) []string {
	argv := []string{"git", "log", "--pretty=raw"}
	argv = append(argv, vcs.LogArgvForCommitOrder(vcs.CommitOrderModeLike(app.Store.Options.CommitOrder))...)
	argv = append(argv, ra.DiffFlags...)
	argv = append(argv, ra.Revs...)
	if len(ra.Paths) > 0 {
		argv = append(argv, "--")
		argv = append(argv, ra.Paths...)
	}
	return argv
}

func (app *App) showArgv(ra RunArgs) []string {
	argv := []string{"git", "show"}
	argv = append(argv, ra.DiffFlags...)
	argv = append(argv, ra.Revs...)
	if len(ra.Paths) > 0 {
		argv = append(argv, "--")
		argv = append(argv, ra.Paths...)
	}
	return argv
}

func (app *App) blamePath(ra RunArgs) string {
	if len(ra.Paths) > 0 {
		return ra.Paths[0]
	}
	return ""
}

func (app *App) blameRef(ra RunArgs) string {
	if len(ra.Revs) > 0 {
		return ra.Revs[0]
	}
	return ""
}

func waitForTerminalSpace() error {
	width, height, err := terminal.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	if width > 0 && height > 0 {
		return nil
	}
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	select {
	case <-winch:
		return nil
	case <-time.After(time.Second):
		return fmt.Errorf("there is no available terminal space")
	}
}

// Close releases any resources opened during the App's lifetime.
func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError recognizes a handful of errors worth surfacing as a short
// message instead of a stack trace.
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "not a git repository",
			newError:      "not a git repository (or any of the parent directories): .git",
		},
		{
			originalError: "no available terminal space",
			newError:      "terminal window is too small",
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
