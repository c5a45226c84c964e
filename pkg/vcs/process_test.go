package vcs

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	return NewRunner(logrus.NewEntry(logrus.New()), t.TempDir())
}

func TestRunCaptureOutput(t *testing.T) {
	r := testRunner(t)
	out, err := r.RunCapture([]string{"echo", "-n", "123"})
	assert.NoError(t, err)
	assert.Equal(t, "123", out)
}

func TestRunCaptureErrorFromStderr(t *testing.T) {
	r := testRunner(t)
	_, err := r.RunCapture([]string{"ls", "does-not-exist-anywhere"})
	assert.Error(t, err)
}

func TestArgvFromStringTokenizes(t *testing.T) {
	argv := ArgvFromString(`git log --pretty='raw'`)
	assert.Equal(t, []string{"git", "log", "--pretty=raw"}, argv)
}

func TestOpenPipeReadsCompleteLinesIncrementally(t *testing.T) {
	r := testRunner(t)
	pipe, err := r.OpenPipe([]string{"sh", "-c", "printf 'a\\nb\\nc\\n'"}, 24, 80)
	assert.NoError(t, err)

	var all []string
	closed := false
	deadline := time.Now().Add(2 * time.Second)
	for !closed && time.Now().Before(deadline) {
		lines, c := pipe.Poll(20 * time.Millisecond)
		all = append(all, lines...)
		closed = c
	}

	assert.True(t, closed)
	assert.Equal(t, []string{"a", "b", "c"}, all)
}

func TestPipeStopKillsProcessGroup(t *testing.T) {
	r := testRunner(t)
	pipe, err := r.OpenPipe([]string{"sh", "-c", "sleep 30"}, 24, 80)
	assert.NoError(t, err)

	err = pipe.Stop()
	assert.NoError(t, err)

	_, closed := pipe.Poll(10 * time.Millisecond)
	assert.True(t, closed)
}

func TestLineScannerCarriesPartialTail(t *testing.T) {
	s := newLineScanner()
	lines := s.Feed([]byte("hel"))
	assert.Empty(t, lines)

	lines = s.Feed([]byte("lo\nworld"))
	assert.Equal(t, []string{"hello"}, lines)

	lines = s.Flush()
	assert.Equal(t, []string{"world"}, lines)
}
