package app

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stupied4ever/tig/pkg/config"
)

func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=tig", "GIT_AUTHOR_EMAIL=tig@example.com",
			"GIT_COMMITTER_NAME=tig", "GIT_COMMITTER_EMAIL=tig@example.com",
		)
		if err := cmd.Run(); err != nil {
			t.Fatalf("git %v: %v", args, err)
		}
	}
	run("init", "-q", "-b", "main")
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run("add", "README")
	run("commit", "-q", "-m", "initial")
	return dir
}

func newTestRuntime(t *testing.T) *config.RuntimeConfig {
	t.Helper()
	t.Setenv("TIG_CONFIG_DIR", t.TempDir())
	rt, err := config.NewRuntimeConfig("test-version", "test-commit", "test-date", false)
	if err != nil {
		t.Fatal(err)
	}
	return rt
}

func TestNewAppDiscoversRepoAndWiresStore(t *testing.T) {
	dir := initTestRepo(t)
	rt := newTestRuntime(t)

	a, err := NewApp(rt, dir)
	assert.NoError(t, err)
	assert.NotNil(t, a.Repo)
	assert.Equal(t, "main", a.Repo.HeadBranch)
	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Registry)
	assert.NotNil(t, a.Gui)
	assert.NoError(t, a.Close())
}

func TestNewAppOutsideRepoReturnsError(t *testing.T) {
	rt := newTestRuntime(t)

	_, err := NewApp(rt, t.TempDir())
	assert.Error(t, err)
}

func TestKnownErrorMapsNotAGitRepository(t *testing.T) {
	a := &App{}
	msg, known := a.KnownError(errors.New("not a git repository (or any parent)"))
	assert.True(t, known)
	assert.Contains(t, msg, "not a git repository")
}

func TestKnownErrorMapsTerminalSpace(t *testing.T) {
	a := &App{}
	msg, known := a.KnownError(errors.New("there is no available terminal space"))
	assert.True(t, known)
	assert.Equal(t, "terminal window is too small", msg)
}

func TestKnownErrorUnrecognizedReturnsFalse(t *testing.T) {
	a := &App{}
	_, known := a.KnownError(errors.New("some unrelated failure"))
	assert.False(t, known)
}
