package config

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

func envHome() string { return os.Getenv("HOME") }

// DefaultSystemRC is the fixed fallback used when TIGRC_SYSTEM is unset
// (spec §4.A load order step 1); the user rc falls back to ~/.tigrc.
const DefaultSystemRC = "/etc/tigrc"

// LoadFile reads path line by line, feeding each to ParseLine. A bad line
// does not abort the load; every line error is returned, joined in line
// order, for the caller to log. A missing file returns ErrFileMissing once
// for the whole file.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newParseError(path, 0, ErrFileMissing, path)
		}
		return errors.Wrap(err, 0)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	var lineErrs []error
	for scanner.Scan() {
		lineno++
		if err := s.ParseLine(path, lineno, scanner.Text()); err != nil {
			lineErrs = append(lineErrs, err)
			// per spec §7: warn and continue with the next line.
		}
	}
	return stderrors.Join(lineErrs...)
}

// LoadOptionFile expands ~ and loads path, per the public API named in
// spec §4.A ("load_option_file(path)").
func (s *Store) LoadOptionFile(path string) error {
	expanded, err := ExpandHome(path)
	if err != nil {
		return newParseError(path, 0, ErrHomeUnresolvable, path)
	}
	return s.LoadFile(expanded)
}

// LoadRCFiles implements the full load order from spec §4.A:
//  1. system rc (env TIGRC_SYSTEM or DefaultSystemRC)
//  2. user rc (env TIGRC_USER or ~/.tigrc)
//  3. built-in bindings are registered by NewStore before this runs, so
//     bindings from the rc files replace them
//  4. optional env-sourced diff option list (TIG_DIFF_OPTS)
func (s *Store) LoadRCFiles() []error {
	var errs []error

	systemRC := os.Getenv("TIGRC_SYSTEM")
	if systemRC == "" {
		systemRC = DefaultSystemRC
	}
	if err := s.LoadOptionFile(systemRC); err != nil {
		errs = append(errs, err)
	}

	userRC := os.Getenv("TIGRC_USER")
	if userRC == "" {
		home := envHome()
		if home != "" {
			userRC = filepath.Join(home, ".tigrc")
		}
	}
	if userRC != "" {
		if err := s.LoadOptionFile(userRC); err != nil {
			errs = append(errs, err)
		}
	}

	if diffOpts := os.Getenv("TIG_DIFF_OPTS"); diffOpts != "" {
		argv, kind := Tokenize(diffOpts)
		if kind != ErrNone {
			errs = append(errs, newParseError("$TIG_DIFF_OPTS", 0, kind, diffOpts))
		} else {
			s.Options.WithLock(func() { s.Options.DiffOptions = argv })
		}
	}

	return errs
}

// VCSConfigReader is the minimal surface tig-go needs from the git config
// subprocess (`git config --list`), abstracted so pkg/config does not
// depend on pkg/vcs (which in turn may depend on pkg/config for options).
type VCSConfigReader interface {
	// Each returns one "key=value" pair per git config entry, in file order.
	Each(fn func(key, value string) error) error
}

// WorktreeResolution is returned by LoadVCSConfig when core.worktree
// triggers the chdir dance described in spec §4.A.
type WorktreeResolution struct {
	GitDir    string
	WorkTree  string
	ShouldCD  bool
}

// LoadVCSConfig is the second-phase load from repository metadata (spec
// §4.A). It recognizes i18n.commitencoding/gui.encoding (gui.encoding
// wins), core.editor, core.worktree, core.abbrev, tig.color.*, tig.bind.*,
// tig.* (as `set *`), color.* (mapped to line categories), and
// branch.<head>.remote/.merge. headBranch is the short branch name used to
// select the right branch.<head>.* keys.
func (s *Store) LoadVCSConfig(r VCSConfigReader, headBranch string) (*WorktreeResolution, []error) {
	var errs []error
	var worktree WorktreeResolution
	var commitEncoding, guiEncoding string

	err := r.Each(func(key, value string) error {
		lower := strings.ToLower(key)
		switch {
		case lower == "i18n.commitencoding":
			commitEncoding = value
		case lower == "gui.encoding":
			guiEncoding = value
		case lower == "core.editor":
			s.Options.WithLock(func() { s.Options.Editor = value })
		case lower == "core.worktree":
			worktree.WorkTree = value
			worktree.ShouldCD = true
		case lower == "core.abbrev":
			if v, convErr := strconv.Atoi(value); convErr == nil {
				s.Options.WithLock(func() {
					if !s.Options.idWidthExplicit {
						s.Options.IDWidth = v
					}
				})
			}
		case strings.HasPrefix(lower, "tig.color."):
			target := key[len("tig.color."):]
			fields := strings.Fields(value)
			if len(fields) >= 2 {
				if err := s.execColor(append([]string{target}, fields...)); err != ErrNone {
					errs = append(errs, newParseError("git config", 0, err, target))
				}
			}
		case strings.HasPrefix(lower, "tig.bind."):
			target := key[len("tig.bind."):]
			parts := strings.SplitN(target, ".", 2)
			if len(parts) == 2 {
				if err := s.execBind([]string{parts[0], parts[1], value}); err != ErrNone {
					errs = append(errs, newParseError("git config", 0, err, target))
				}
			}
		case strings.HasPrefix(lower, "tig."):
			name := key[len("tig."):]
			if err := s.setOption(name, value, strings.Fields(value)); err != ErrNone {
				errs = append(errs, newParseError("git config", 0, err, name))
			}
		case strings.HasPrefix(lower, "color."):
			name := key[len("color."):]
			fields := strings.Fields(value)
			if len(fields) >= 2 {
				if err := s.execColor(append([]string{name}, fields...)); err != ErrNone {
					errs = append(errs, newParseError("git config", 0, err, name))
				}
			}
		case headBranch != "" && lower == fmt.Sprintf("branch.%s.remote", strings.ToLower(headBranch)):
			// tracking info is consumed by the VCS repo-facts layer, not
			// stored on Options; recorded here only for completeness of
			// the recognized-keys list.
		case headBranch != "" && lower == fmt.Sprintf("branch.%s.merge", strings.ToLower(headBranch)):
		}
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}

	encoding := commitEncoding
	if guiEncoding != "" {
		encoding = guiEncoding
	}
	_ = encoding // consumed by the subprocess-argv layer (arg_encoding sentinel), not stored here

	return &worktree, errs
}
