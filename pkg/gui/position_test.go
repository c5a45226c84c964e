package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyStepWholeNumberFloors(t *testing.T) {
	assert.Equal(t, 5, ApplyStep(5.9, 100))
}

func TestApplyStepFractionIsProportionOfExtent(t *testing.T) {
	assert.Equal(t, 26, ApplyStep(0.25, 100))
}

func TestApplyStepFractionNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, ApplyStep(0.001, 10))
}

func TestClampWithinRange(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 10))
	assert.Equal(t, 0, Clamp(-3, 10))
	assert.Equal(t, 9, Clamp(50, 10))
	assert.Equal(t, 0, Clamp(0, 0))
}

func TestScrollToShowScrollsDownWhenCursorBelowWindow(t *testing.T) {
	pos := Position{Lineno: 20, Offset: 0}
	pos = ScrollToShow(pos, 10)
	assert.Equal(t, 11, pos.Offset)
}

func TestScrollToShowScrollsUpWhenCursorAboveWindow(t *testing.T) {
	pos := Position{Lineno: 2, Offset: 10}
	pos = ScrollToShow(pos, 10)
	assert.Equal(t, 2, pos.Offset)
}

func TestScrollToShowNoopWhenAlreadyVisible(t *testing.T) {
	pos := Position{Lineno: 5, Offset: 2}
	assert.Equal(t, pos, ScrollToShow(pos, 10))
}

func TestScrollLineDownClampsAtEnd(t *testing.T) {
	pos := Position{Offset: 90}
	pos = ScrollLineDown(pos, 50, 100, 10)
	assert.Equal(t, 90, pos.Offset)
}

func TestScrollLineUpClampsAtStart(t *testing.T) {
	pos := Position{Offset: 2}
	pos = ScrollLineUp(pos, 10)
	assert.Equal(t, 0, pos.Offset)
}
