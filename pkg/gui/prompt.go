package gui

import "strings"

// PromptKind distinguishes the three prompt flavors spec §4.L describes:
// a free-text `:` command line, a yes/no confirmation, and a menu pick.
type PromptKind int

const (
	PromptLine PromptKind = iota
	PromptYesNo
	PromptMenu
)

// LineEditor is a minimal single-line text editor backing the `:` command
// prompt and free-text input requests (spec §4.L "Prompt & menu").
type LineEditor struct {
	Text   string
	Cursor int
}

// Insert inserts s at the cursor and advances it.
func (e *LineEditor) Insert(s string) {
	e.Text = e.Text[:e.Cursor] + s + e.Text[e.Cursor:]
	e.Cursor += len(s)
}

// Backspace deletes the rune before the cursor, if any.
func (e *LineEditor) Backspace() {
	if e.Cursor == 0 {
		return
	}
	e.Text = e.Text[:e.Cursor-1] + e.Text[e.Cursor:]
	e.Cursor--
}

// Delete deletes the rune at the cursor, if any.
func (e *LineEditor) Delete() {
	if e.Cursor >= len(e.Text) {
		return
	}
	e.Text = e.Text[:e.Cursor] + e.Text[e.Cursor+1:]
}

// MoveLeft/MoveRight/Home/End move the cursor within bounds.
func (e *LineEditor) MoveLeft() {
	if e.Cursor > 0 {
		e.Cursor--
	}
}

func (e *LineEditor) MoveRight() {
	if e.Cursor < len(e.Text) {
		e.Cursor++
	}
}

func (e *LineEditor) Home() { e.Cursor = 0 }
func (e *LineEditor) End()  { e.Cursor = len(e.Text) }

// MenuItem is one selectable row of a menu prompt (spec §4.L, also used by
// REQ_OPTIONS to present the toggle table, spec §4.E "Toggles").
type MenuItem struct {
	Label    string
	HotKey   rune
	Request  string // symbolic request name resolved via keymap.GetRequest by the caller
	Selected bool
}

// FindMenuItemByHotKey returns the index of the item bound to key, or -1.
func FindMenuItemByHotKey(items []MenuItem, key rune) int {
	for i, it := range items {
		if it.HotKey == key {
			return i
		}
	}
	return -1
}

// ParseYesNoAnswer interprets a yes/no prompt keystroke: 'y'/'Y' confirms,
// everything else (including Esc/'n') declines.
func ParseYesNoAnswer(key rune) bool {
	return key == 'y' || key == 'Y'
}

// SplitCommandLine splits a `:` command line into its command word and the
// remaining argument text, trimming surrounding space (spec §4.L "`:`
// command").
func SplitCommandLine(line string) (cmd, rest string) {
	line = strings.TrimSpace(line)
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
