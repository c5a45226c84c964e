package gui

import (
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// BranchState holds the joined ref rows for the branch view (spec §4.J).
type BranchState struct {
	Refs       []vcs.Ref
	HeadBranch string
}

// BranchOps implements the view engine's Ops contract for the branch view:
// enter on a row opens the main view filtered to that ref (spec §4.J).
type BranchOps struct {
	State *BranchState

	OpenMainForRef func(ref vcs.Ref)
}

func (o *BranchOps) Open(v *View, reload bool) ([]string, error) {
	return []string{"git", "for-each-ref"}, nil
}

func (o *BranchOps) Read(v *View, line string, eof bool) {}

func (o *BranchOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	if req != keymap.ReqEnter {
		return req
	}
	if line < 0 || line >= len(o.State.Refs) {
		return req
	}
	if o.OpenMainForRef != nil {
		o.OpenMainForRef(o.State.Refs[line])
	}
	return keymap.ReqViewMain
}
