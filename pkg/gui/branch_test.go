package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

func TestBranchOpsRequestOpensMainForSelectedRef(t *testing.T) {
	var opened vcs.Ref
	state := &BranchState{Refs: []vcs.Ref{
		{Kind: vcs.RefAllBranches, Name: "All branches"},
		{Kind: vcs.RefBranch, Name: "main", ID: "aaaa"},
	}}
	ops := &BranchOps{State: state, OpenMainForRef: func(r vcs.Ref) { opened = r }}
	v := NewView("branch", ops)

	req := ops.Request(v, keymap.ReqEnter, 1)
	assert.Equal(t, keymap.ReqViewMain, req)
	assert.Equal(t, "main", opened.Name)
}

func TestBranchOpsRequestIgnoresOutOfRangeLine(t *testing.T) {
	state := &BranchState{}
	ops := &BranchOps{State: state}
	v := NewView("branch", ops)

	req := ops.Request(v, keymap.ReqEnter, 5)
	assert.Equal(t, keymap.ReqEnter, req)
}
