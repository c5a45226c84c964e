package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
)

func TestToggleOptionLineNoFlipsBoolAndRedraws(t *testing.T) {
	opt := &config.Options{}
	res := ToggleOption(opt, keymap.ReqToggleLineNo)
	assert.True(t, opt.ShowLineNumbers)
	assert.False(t, res.Reload)
	assert.Contains(t, res.Message, "enabled")

	res = ToggleOption(opt, keymap.ReqToggleLineNo)
	assert.False(t, opt.ShowLineNumbers)
	assert.Contains(t, res.Message, "disabled")
}

func TestToggleOptionDateCyclesAndReloads(t *testing.T) {
	opt := &config.Options{ShowDate: config.DateNo}
	res := ToggleOption(opt, keymap.ReqToggleDate)
	assert.Equal(t, config.DateDefault, opt.ShowDate)
	assert.True(t, res.Reload)
}

func TestToggleOptionDateWrapsAround(t *testing.T) {
	opt := &config.Options{ShowDate: config.DateShort}
	ToggleOption(opt, keymap.ReqToggleDate)
	assert.Equal(t, config.DateNo, opt.ShowDate)
}

func TestToggleOptionCommitOrderCycles(t *testing.T) {
	opt := &config.Options{CommitOrder: config.CommitOrderReverse}
	ToggleOption(opt, keymap.ReqToggleCommitOrder)
	assert.Equal(t, config.CommitOrderDefault, opt.CommitOrder)
}

func TestToggleOptionUnknownRequestIsNoop(t *testing.T) {
	opt := &config.Options{}
	res := ToggleOption(opt, keymap.ReqNone)
	assert.Equal(t, ToggleResult{}, res)
}
