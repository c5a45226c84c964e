package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stupied4ever/tig/pkg/keymap"
)

// Scenario 1 (spec §8): `set tab-size = 99999` reports the exact error
// format and leaves opt.tab_size at its default.
func TestScenarioConfigErrorReporting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tigrc")
	if err := os.WriteFile(path, []byte("set tab-size = 99999\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	err := s.LoadFile(path)
	if err == nil {
		t.Fatalf("expected a reported error")
	}
	want := path + " line 1: Integer value out of bound near 'tab-size'"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
	if s.Options.TabSize != 8 {
		t.Fatalf("tab_size should remain default 8, got %d", s.Options.TabSize)
	}
}

// Scenario 3 (spec §8): title-overflow boolint behavior.
func TestScenarioTitleOverflowBoolInt(t *testing.T) {
	s := NewStore()

	if err := s.ParseLine("t", 1, "set title-overflow = yes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Options.ShowTitleOverflow || s.Options.TitleOverflow != 50 {
		t.Fatalf("yes -> want true/50, got %v/%d", s.Options.ShowTitleOverflow, s.Options.TitleOverflow)
	}

	if err := s.ParseLine("t", 2, "set title-overflow = 80"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Options.ShowTitleOverflow || s.Options.TitleOverflow != 80 {
		t.Fatalf("80 -> want true/80, got %v/%d", s.Options.ShowTitleOverflow, s.Options.TitleOverflow)
	}

	err := s.ParseLine("t", 3, "set title-overflow = 9999")
	if err == nil || !strings.Contains(err.Error(), "Integer value out of bound") {
		t.Fatalf("expected out-of-bound error for title-overflow=9999, got %v", err)
	}
}

// Scenario 4 (spec §8): `bind main g !git gc` registers a foreground
// run-request in the "main" keymap.
func TestScenarioBindRunRequest(t *testing.T) {
	s := NewStore()
	if err := s.ParseLine("t", 1, "bind main g !git gc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key, _ := keymap.ParseKeySpec("g")
	binding, ok := s.Keymaps.Lookup("main", key)
	if !ok {
		t.Fatalf("expected a binding for 'g' in keymap main")
	}
	if binding.RunRequest == nil {
		t.Fatalf("expected a run-request binding")
	}
	if binding.RunRequest.Flags.Silent || binding.RunRequest.Flags.Confirm || binding.RunRequest.Flags.Exit {
		t.Fatalf("expected default foreground flags, got %+v", binding.RunRequest.Flags)
	}
	joined := strings.Join(binding.RunRequest.Argv, " ")
	if joined != "git gc" {
		t.Fatalf("expected argv 'git gc', got %q", joined)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	s := NewStore()
	s.Options.WithLock(func() {
		s.Options.TabSize = 4
		s.Options.DiffContext = 7
		s.Options.ShowLineNumbers = true
	})

	dump := s.Dump()

	replay := NewStore()
	for i, line := range strings.Split(strings.TrimRight(dump, "\n"), "\n") {
		if err := replay.ParseLine("dump", i+1, line); err != nil {
			t.Fatalf("round-trip parse failed on %q: %v", line, err)
		}
	}

	if replay.Options.TabSize != 4 || replay.Options.DiffContext != 7 || !replay.Options.ShowLineNumbers {
		t.Fatalf("round trip did not preserve options: %+v", replay.Options)
	}
}

func TestTokenizeQuoting(t *testing.T) {
	tokens, kind := Tokenize(`color "^on branch" green default`)
	if kind != ErrNone {
		t.Fatalf("unexpected error kind %v", kind)
	}
	want := []string{"color", "^on branch", "green", "default"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("token %d: got %q want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeUnmatchedQuote(t *testing.T) {
	_, kind := Tokenize(`set editor = "vim`)
	if kind != ErrUnmatchedQuote {
		t.Fatalf("expected ErrUnmatchedQuote, got %v", kind)
	}
}
