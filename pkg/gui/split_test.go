package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenSplitHorizontalSizesFromStep(t *testing.T) {
	layout := OpenSplit(false, 0.25, 100)
	assert.Equal(t, 26, layout.ChildDim)
	assert.Equal(t, 74, layout.ParentDim)
}

func TestOpenSplitClampsBelowMinimum(t *testing.T) {
	layout := OpenSplit(false, 0.01, 100)
	assert.GreaterOrEqual(t, layout.ChildDim, MinViewHeight)
}

func TestOpenSplitClampsAboveMaximum(t *testing.T) {
	layout := OpenSplit(false, 0.99, 10)
	assert.LessOrEqual(t, layout.ChildDim, 10-MinViewHeight)
}

func TestOpenSplitVerticalUsesWidthMinimum(t *testing.T) {
	layout := OpenSplit(true, 0.01, 100)
	assert.GreaterOrEqual(t, layout.ChildDim, MinViewWidth)
}

func TestOpenDefaultMaximizesParent(t *testing.T) {
	layout := OpenDefault(80)
	assert.Equal(t, 80, layout.ParentDim)
	assert.Equal(t, 0, layout.ChildDim)
}
