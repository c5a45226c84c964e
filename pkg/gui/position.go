package gui

import "math"

// Position tracks a view's cursor row, leftmost visible column, and scroll
// offset, per spec §4.E "Scrolling"/"Moving".
type Position struct {
	Lineno int // cursor row, 0-based
	Offset int // topmost visible row
	Col    int // leftmost visible column
}

// ApplyStep implements spec §4.E's `apply_step(s, v)`: a step >= 1 is used
// verbatim (floored); a fractional step in (0,1) is a proportion of v,
// always rounded up to at least one column/row.
func ApplyStep(step float64, extent int) int {
	if step >= 1 {
		return int(math.Floor(step))
	}
	n := int(math.Floor(float64(extent) * (step + 0.01)))
	if n < 1 {
		return 1
	}
	return n
}

// Clamp pins lineno to [0, lineCount-1].
func Clamp(lineno, lineCount int) int {
	if lineCount <= 0 {
		return 0
	}
	if lineno < 0 {
		return 0
	}
	if lineno >= lineCount {
		return lineCount - 1
	}
	return lineno
}

// ScrollToShow recomputes offset so that lineno is within the visible
// window [offset, offset+height), clamping the current row to the window
// edge when it would otherwise scroll off (spec §4.E: "When the current row
// leaves the window, it is clamped to the edge of the window and redrawn").
func ScrollToShow(pos Position, height int) Position {
	if height <= 0 {
		return pos
	}
	if pos.Lineno < pos.Offset {
		pos.Offset = pos.Lineno
	} else if pos.Lineno >= pos.Offset+height {
		pos.Offset = pos.Lineno - height + 1
	}
	if pos.Offset < 0 {
		pos.Offset = 0
	}
	return pos
}

// ScrollLineUp/ScrollLineDown/ScrollPageUp/ScrollPageDown move the viewport
// without moving the cursor row, clamped against [0, lineCount-height] so
// scrolling past an edge is a no-op rather than an error (spec §4.E
// "Scrolling beyond edges reports a message, not an error").
func ScrollLineUp(pos Position, n int) Position {
	pos.Offset -= n
	if pos.Offset < 0 {
		pos.Offset = 0
	}
	return pos
}

func ScrollLineDown(pos Position, n, lineCount, height int) Position {
	maxOffset := lineCount - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	pos.Offset += n
	if pos.Offset > maxOffset {
		pos.Offset = maxOffset
	}
	return pos
}

func ScrollPageUp(pos Position, height int) Position {
	return ScrollLineUp(pos, height)
}

func ScrollPageDown(pos Position, lineCount, height int) Position {
	return ScrollLineDown(pos, height, lineCount, height)
}
