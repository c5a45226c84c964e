package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
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

func TestDiscoverFactsOnFreshRepo(t *testing.T) {
	dir := initTestRepo(t)
	r := NewRunner(logrus.NewEntry(logrus.New()), dir)

	facts, err := DiscoverFacts(r)
	assert.NoError(t, err)
	assert.Equal(t, "main", facts.HeadBranch)
	assert.False(t, facts.IsBare)
	assert.NotEmpty(t, facts.HeadOID)
	assert.NotEmpty(t, facts.WorkTree)
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 1, CountDigits(0))
	assert.Equal(t, 1, CountDigits(9))
	assert.Equal(t, 2, CountDigits(10))
	assert.Equal(t, 4, CountDigits(9999))
}

func TestAbbrevWidthExplicitWins(t *testing.T) {
	dir := initTestRepo(t)
	r := NewRunner(logrus.NewEntry(logrus.New()), dir)
	assert.Equal(t, 12, AbbrevWidth(r, 12))
}
