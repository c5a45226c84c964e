package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
)

type nopOps struct{}

func (nopOps) Open(v *View, reload bool) ([]string, error) { return nil, nil }
func (nopOps) Read(v *View, line string, eof bool)          {}
func (nopOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	return req
}

func newTestView(n int, height int) *View {
	v := NewView("test", nopOps{})
	v.Height = height
	for i := 0; i < n; i++ {
		v.Lines = append(v.Lines, "line")
	}
	return v
}

func TestEngineDispatchMoveDown(t *testing.T) {
	v := newTestView(10, 5)
	e := &Engine{Opt: &config.Options{}, Views: []*View{v}}
	e.Dispatch(keymap.ReqMoveDown)
	assert.Equal(t, 1, v.Pos.Lineno)
}

func TestEngineDispatchQuitSetsFlag(t *testing.T) {
	v := newTestView(1, 5)
	e := &Engine{Opt: &config.Options{}, Views: []*View{v}}
	e.Dispatch(keymap.ReqQuit)
	assert.True(t, e.Quit)
}

func TestEngineDispatchToggleAppliesAndRecordsMessage(t *testing.T) {
	v := newTestView(1, 5)
	e := &Engine{Opt: &config.Options{}, Views: []*View{v}}
	e.Dispatch(keymap.ReqToggleLineNo)
	assert.True(t, e.Opt.ShowLineNumbers)
	assert.Contains(t, e.LastMessage, "enabled")
}

func TestEngineDispatchViewNextRotatesFocus(t *testing.T) {
	e := &Engine{Opt: &config.Options{}, Views: []*View{newTestView(1, 5), newTestView(1, 5)}}
	e.Dispatch(keymap.ReqViewNext)
	assert.Equal(t, 1, e.Focused)
	e.Dispatch(keymap.ReqViewNext)
	assert.Equal(t, 0, e.Focused)
}

func TestEngineDispatchMaximizeDropsOtherViews(t *testing.T) {
	e := &Engine{Opt: &config.Options{}, Views: []*View{newTestView(1, 5), newTestView(1, 5)}, Focused: 1}
	e.Dispatch(keymap.ReqMaximize)
	assert.Len(t, e.Views, 1)
}

func TestEngineDispatchViewCloseRemovesFocused(t *testing.T) {
	a, b := newTestView(1, 5), newTestView(1, 5)
	e := &Engine{Opt: &config.Options{}, Views: []*View{a, b}, Focused: 0}
	e.Dispatch(keymap.ReqViewClose)
	assert.Len(t, e.Views, 1)
	assert.Equal(t, StateClosed, a.State)
	assert.Same(t, b, e.Views[0])
}

func TestEngineDispatchOpenViewRequestDelegatesToCallback(t *testing.T) {
	opened := false
	newView := newTestView(1, 5)
	e := &Engine{
		Opt: &config.Options{},
		OpenView: func(req keymap.Request) *View {
			opened = true
			return newView
		},
	}
	e.Dispatch(keymap.ReqViewTree)
	assert.True(t, opened)
	assert.Same(t, newView, e.Current())
}

func TestEngineDispatchStopLoadingSetsFlag(t *testing.T) {
	e := &Engine{Opt: &config.Options{}}
	e.Dispatch(keymap.ReqStopLoading)
	assert.True(t, e.StopLoading)
}
