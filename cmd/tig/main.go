package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/google/uuid"
	"github.com/integrii/flaggy"
	"github.com/samber/lo"

	"github.com/stupied4ever/tig/internal/configcli"
	"github.com/stupied4ever/tig/internal/trace2"
	"github.com/stupied4ever/tig/pkg/app"
	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/vcs"
)

const defaultVersion = "unversioned"

var (
	commit  string
	version = defaultVersion
	date    string

	debuggingFlag = false
	trace2LogFlag = ""
)

// subArgs is what the CLI layer parses: the subcommand named on the
// command line (empty for plain `tig`), the rev/flag/path buckets from
// spec §6.3's git-rev-parse partition, and a jump-to-line target from a
// `+<n>` argument. Only Sub and the three buckets are handed to App;
// JumpLine is not passed on, so `+<n>` does not move the cursor.
type subArgs struct {
	Sub       string
	Revs      []string
	DiffFlags []string
	Paths     []string
	JumpLine  int
}

func main() {
	updateBuildInfo()

	info := fmt.Sprintf("%s\nDate: %s\nCommit: %s\nOS: %s\nArch: %s",
		version, date, commit, runtime.GOOS, runtime.GOARCH)

	flaggy.SetName("tig")
	flaggy.SetDescription("text-mode interface for git")
	flaggy.Bool(&debuggingFlag, "d", "debug", "a boolean")
	flaggy.String(&trace2LogFlag, "", "trace2-log", "write a trace2-style subprocess log to this path")
	flaggy.SetVersion(info)
	flaggy.Parse()

	rest := flaggy.TrailingArguments
	if len(rest) > 0 && rest[0] == "config" {
		if err := configcli.Execute(rest[1:]); err != nil {
			log.Fatal(err.Error())
		}
		return
	}

	sa, err := parseArgs(rest)
	if err != nil {
		log.Fatal(err.Error())
	}

	rt, err := config.NewRuntimeConfig(version, commit, date, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Fatal(err.Error())
	}

	a, err := app.NewApp(rt, dir)
	if err == nil {
		if trace2LogFlag != "" {
			if sink, serr := trace2.NewSink(trace2LogFlag, uuid.NewString()); serr == nil {
				defer sink.Close()
				a.Runner.Trace = func(argv []string, dur time.Duration, exitCode int) {
					sink.ChildExit(argv, dur, exitCode)
				}
			}
		}

		revs, flags, paths, perr := vcs.PartitionArgs(a.Runner, append(sa.Revs, append(sa.DiffFlags, sa.Paths...)...))
		if perr == nil {
			sa.Revs, sa.DiffFlags, sa.Paths = revs, flags, paths
		}
		err = a.Run(app.RunArgs{Sub: sa.Sub, Revs: sa.Revs, DiffFlags: sa.DiffFlags, Paths: sa.Paths})
	}
	if a != nil {
		_ = a.Close()
	}

	if err != nil {
		if a != nil {
			if msg, known := a.KnownError(err); known {
				log.Println(msg)
				os.Exit(1)
			}
		}
		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		if a != nil {
			a.Log.Error(stackTrace)
		}
		log.Fatalf("tig: %s", stackTrace)
	}
}

// parseArgs implements spec §6.3's surface grammar ahead of the
// git-rev-parse-driven re-partition that happens once a repository has
// been discovered: it recognizes `tig log|show|blame|status|stash`, a
// leading `+<n>` jump target, and `--` as the end of tig's own options.
func parseArgs(args []string) (subArgs, error) {
	var sa subArgs
	if len(args) == 0 {
		return sa, nil
	}

	i := 0
	switch args[0] {
	case "log", "show", "blame", "status", "stash":
		sa.Sub = args[0]
		i = 1
	}

	for ; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			sa.Paths = append(sa.Paths, args[i+1:]...)
			break
		}
		if n, ok := parseJump(a); ok {
			sa.JumpLine = n
			continue
		}
		if strings.HasPrefix(a, "-") {
			sa.DiffFlags = append(sa.DiffFlags, a)
			continue
		}
		sa.Revs = append(sa.Revs, a)
	}

	return sa, nil
}

func parseJump(a string) (int, bool) {
	if !strings.HasPrefix(a, "+") {
		return 0, false
	}
	n, err := strconv.Atoi(a[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func updateBuildInfo() {
	if version != defaultVersion {
		return
	}
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if revision, ok := lo.Find(buildInfo.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	}); ok {
		commit = revision.Value
		if len(commit) > 7 {
			version = commit[:7]
		} else {
			version = commit
		}
	}
	if t, ok := lo.Find(buildInfo.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.time"
	}); ok {
		date = t.Value
	}
}
