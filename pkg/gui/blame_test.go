package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

func TestBlameOpsOpenUsesRefWhenSet(t *testing.T) {
	state := &BlameState{View: vcs.NewBlameView("a\nb\n", "f.go"), Ref: "deadbeef", Path: "f.go"}
	ops := &BlameOps{State: state}
	v := NewView("blame", ops)

	argv, err := ops.Open(v, false)
	assert.NoError(t, err)
	assert.Equal(t, []string{"git", "blame", "--incremental", "deadbeef", "--", "f.go"}, argv)
}

func TestBlameOpsOpenOmitsRefForWorkingCopy(t *testing.T) {
	state := &BlameState{View: vcs.NewBlameView("a\n", "f.go"), Path: "f.go"}
	ops := &BlameOps{State: state}
	v := NewView("blame", ops)

	argv, _ := ops.Open(v, false)
	assert.Equal(t, []string{"git", "blame", "--incremental", "--", "f.go"}, argv)
}

func TestBlameOpsRequestOpensParentWhenCommitHasOne(t *testing.T) {
	bv := vcs.NewBlameView("line one\nline two\n", "f.go")
	block := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa 1 1 2\n" +
		"author Jane\n" +
		"previous bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb f.go\n" +
		"filename f.go\n"
	assert.NoError(t, bv.ApplyIncremental(block))

	var gotID, gotFile string
	var gotLine int
	ops := &BlameOps{
		State: &BlameState{View: bv, Path: "f.go"},
		OpenParent: func(id, file string, line int) {
			gotID, gotFile, gotLine = id, file, line
		},
	}
	v := NewView("blame", ops)

	req := ops.Request(v, keymap.ReqEnter, 0)
	assert.Equal(t, keymap.ReqViewBlame, req)
	assert.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", gotID)
	assert.Equal(t, "f.go", gotFile)
	assert.Equal(t, 0, gotLine) // no DiffAgainstParent wired: empty diff text translates to line 0
}

func TestBlameOpsRequestNoopWithoutCommit(t *testing.T) {
	bv := vcs.NewBlameView("line one\n", "f.go")
	ops := &BlameOps{State: &BlameState{View: bv, Path: "f.go"}}
	v := NewView("blame", ops)

	req := ops.Request(v, keymap.ReqEnter, 0)
	assert.Equal(t, keymap.ReqEnter, req)
}

func TestBlameOpsNeedsFilenameColumnDelegates(t *testing.T) {
	bv := vcs.NewBlameView("a\n", "f.go")
	ops := &BlameOps{State: &BlameState{View: bv}}
	assert.True(t, ops.NeedsFilenameColumn([]string{"-C"}))
	assert.False(t, ops.NeedsFilenameColumn(nil))
}
