package gui

import (
	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
)

// Engine owns the split-view stack and dispatches requests across it,
// implementing spec §4.E's "Request dispatch" pseudocode.
type Engine struct {
	Opt *config.Options

	Views   []*View // Views[0] is the primary/parent view; Views[1], if present, is the split child
	Focused int      // index into Views

	// OpenView is called for every REQ_VIEW_* request; it returns the (possibly
	// newly created) view for that kind, or nil if the caller declines to
	// open it (e.g. REQ_VIEW_BLAME with no file selected).
	OpenView func(req keymap.Request) *View

	Quit         bool
	StopLoading  bool
	ScreenRedraw bool
	LastMessage  string
}

// Current returns the focused view, or nil if none is open.
func (e *Engine) Current() *View {
	if e.Focused < 0 || e.Focused >= len(e.Views) {
		return nil
	}
	return e.Views[e.Focused]
}

// Dispatch implements the pseudocode body of spec §4.E "Request dispatch".
func (e *Engine) Dispatch(req keymap.Request) {
	v := e.Current()
	if v != nil {
		req = v.Ops.Request(v, req, v.Pos.Lineno)
	}

	switch {
	case req == keymap.ReqMoveUp:
		v.MoveUp(1)
	case req == keymap.ReqMoveDown:
		v.MoveDown(1)
	case req == keymap.ReqMovePageUp:
		v.MovePageUp()
	case req == keymap.ReqMovePageDown:
		v.MovePageDown()
	case req == keymap.ReqMoveFirstLine:
		v.MoveFirstLine()
	case req == keymap.ReqMoveLastLine:
		v.MoveLastLine()

	case req == keymap.ReqScrollLineUp:
		v.ScrollLineUp(1)
	case req == keymap.ReqScrollLineDown:
		v.ScrollLineDown(1)
	case req == keymap.ReqScrollPageUp:
		v.ScrollPageUp()
	case req == keymap.ReqScrollPageDown:
		v.ScrollPageDown()
	case req == keymap.ReqScrollFirstCol:
		v.ScrollFirstCol()
	case req == keymap.ReqScrollLeft:
		v.ScrollLeft(e.Opt.HorizontalScroll)
	case req == keymap.ReqScrollRight:
		v.ScrollRight(e.Opt.HorizontalScroll)

	case isViewOpenRequest(req):
		e.openView(req)

	case req == keymap.ReqNext, req == keymap.ReqPrevious:
		e.moveDelegated(req)

	case req == keymap.ReqViewNext:
		e.rotateFocus()

	case req == keymap.ReqMaximize:
		e.maximize()

	case req == keymap.ReqViewClose:
		e.closeFocused()

	case req == keymap.ReqQuit:
		e.Quit = true

	case isToggleRequest(req):
		res := ToggleOption(e.Opt, req)
		e.LastMessage = res.Message
		if res.Reload && v != nil {
			v.BeginUpdate(true)
		}

	case req == keymap.ReqSearch, req == keymap.ReqSearchBack:
		// actual pattern text arrives via the prompt; nothing to do here
	case req == keymap.ReqFindNext:
		if v != nil {
			_ = v.FindNext()
		}
	case req == keymap.ReqFindPrev:
		if v != nil {
			_ = v.FindPrev()
		}

	case req == keymap.ReqStopLoading:
		e.StopLoading = true

	case req == keymap.ReqScreenRedraw:
		e.ScreenRedraw = true

	default:
		// REQ_EDIT, REQ_ENTER when unconsumed by the per-view Ops, and any
		// request not otherwise recognized: no generic default action.
	}
}

func isViewOpenRequest(req keymap.Request) bool {
	switch req {
	case keymap.ReqViewMain, keymap.ReqViewDiff, keymap.ReqViewLog, keymap.ReqViewTree,
		keymap.ReqViewBlob, keymap.ReqViewBlame, keymap.ReqViewBranch, keymap.ReqViewStatus,
		keymap.ReqViewStage, keymap.ReqViewStash, keymap.ReqViewPager, keymap.ReqViewHelp:
		return true
	default:
		return false
	}
}

func isToggleRequest(req keymap.Request) bool {
	switch req {
	case keymap.ReqToggleLineNo, keymap.ReqToggleDate, keymap.ReqToggleAuthor,
		keymap.ReqToggleRevGraph, keymap.ReqToggleGraphic, keymap.ReqToggleFilename,
		keymap.ReqToggleRefs, keymap.ReqToggleChanges, keymap.ReqToggleSortOrder,
		keymap.ReqToggleSortField, keymap.ReqToggleIgnoreSpace, keymap.ReqToggleCommitOrder,
		keymap.ReqToggleID, keymap.ReqToggleFiles, keymap.ReqToggleTitleOverflow,
		keymap.ReqToggleFileSize, keymap.ReqToggleUntrackedDirs:
		return true
	default:
		return false
	}
}

func (e *Engine) openView(req keymap.Request) {
	if e.OpenView == nil {
		return
	}
	nv := e.OpenView(req)
	if nv == nil {
		return
	}
	if len(e.Views) == 0 {
		e.Views = []*View{nv}
		e.Focused = 0
		return
	}
	e.Views[0] = nv
	e.Focused = 0
}

// moveDelegated implements spec §4.E "Next/Previous (equivalent to
// Down/Up unless the view has a parent — then operate on parent and
// synthesize Enter if its cursor moved)".
func (e *Engine) moveDelegated(req keymap.Request) {
	v := e.Current()
	if v == nil || v.Parent == nil {
		if v != nil {
			if req == keymap.ReqNext {
				v.MoveDown(1)
			} else {
				v.MoveUp(1)
			}
		}
		return
	}
	before := v.Parent.Pos.Lineno
	if req == keymap.ReqNext {
		v.Parent.MoveDown(1)
	} else {
		v.Parent.MoveUp(1)
	}
	if v.Parent.Pos.Lineno != before {
		e.Dispatch(keymap.ReqEnter)
	}
}

// rotateFocus cycles focus across currently open split panes.
func (e *Engine) rotateFocus() {
	if len(e.Views) == 0 {
		return
	}
	e.Focused = (e.Focused + 1) % len(e.Views)
}

// maximize drops every view but the focused one, per spec §4.E
// "OpenDefault maximizes".
func (e *Engine) maximize() {
	v := e.Current()
	if v == nil {
		return
	}
	e.Views = []*View{v}
	e.Focused = 0
}

// closeFocused removes the focused view from the split stack.
func (e *Engine) closeFocused() {
	if len(e.Views) == 0 {
		return
	}
	v := e.Current()
	if v != nil {
		v.State = StateClosed
	}
	e.Views = append(e.Views[:e.Focused], e.Views[e.Focused+1:]...)
	if e.Focused >= len(e.Views) {
		e.Focused = len(e.Views) - 1
	}
}
