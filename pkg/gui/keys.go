package gui

import (
	"github.com/jesseduffield/gocui"

	"github.com/stupied4ever/tig/pkg/keymap"
)

// namedGocuiKeys translates the handful of keymap.KeySpec values that do not
// already share gocui's own numeric encoding: the printable/Ctrl range lines
// up by construction (spec §4.B's Ctrl formula is the same `c & 0x1f` gocui
// itself uses), but the named specials (arrows, function keys, paging) live
// at a keymap-private offset and need an explicit table.
var namedGocuiKeys = map[keymap.KeySpec]gocui.Key{
	keymap.KeySpace:     gocui.KeySpace,
	keymap.KeyTab:       gocui.KeyTab,
	keymap.KeyEnter:     gocui.KeyEnter,
	keymap.KeyEsc:       gocui.KeyEsc,
	keymap.KeyBackspace: gocui.KeyBackspace,
	keymap.KeyF1:        gocui.KeyF1,
	keymap.KeyF2:        gocui.KeyF2,
	keymap.KeyF3:        gocui.KeyF3,
	keymap.KeyF4:        gocui.KeyF4,
	keymap.KeyF5:        gocui.KeyF5,
	keymap.KeyF6:        gocui.KeyF6,
	keymap.KeyF7:        gocui.KeyF7,
	keymap.KeyF8:        gocui.KeyF8,
	keymap.KeyF9:        gocui.KeyF9,
	keymap.KeyF10:       gocui.KeyF10,
	keymap.KeyF11:       gocui.KeyF11,
	keymap.KeyF12:       gocui.KeyF12,
	keymap.KeyUp:        gocui.KeyArrowUp,
	keymap.KeyDown:      gocui.KeyArrowDown,
	keymap.KeyLeft:      gocui.KeyArrowLeft,
	keymap.KeyRight:     gocui.KeyArrowRight,
	keymap.KeyPgUp:      gocui.KeyPgup,
	keymap.KeyPgDn:      gocui.KeyPgdn,
	keymap.KeyHome:      gocui.KeyHome,
	keymap.KeyEnd:       gocui.KeyEnd,
}

// ctrlGocuiKeys lists every Ctrl-letter gocui exposes as a named constant.
// <c-h>/<c-i>/<c-m> are deliberately absent: those codes collide with
// Backspace/Tab/Enter and are reached through namedGocuiKeys instead.
var ctrlGocuiKeys = map[byte]gocui.Key{
	'a': gocui.KeyCtrlA, 'b': gocui.KeyCtrlB, 'c': gocui.KeyCtrlC, 'd': gocui.KeyCtrlD,
	'e': gocui.KeyCtrlE, 'f': gocui.KeyCtrlF, 'g': gocui.KeyCtrlG,
	'j': gocui.KeyCtrlJ, 'k': gocui.KeyCtrlK, 'l': gocui.KeyCtrlL,
	'n': gocui.KeyCtrlN, 'o': gocui.KeyCtrlO, 'p': gocui.KeyCtrlP, 'q': gocui.KeyCtrlQ,
	'r': gocui.KeyCtrlR, 's': gocui.KeyCtrlS, 't': gocui.KeyCtrlT, 'u': gocui.KeyCtrlU,
	'v': gocui.KeyCtrlV, 'w': gocui.KeyCtrlW, 'x': gocui.KeyCtrlX, 'y': gocui.KeyCtrlY,
	'z': gocui.KeyCtrlZ,
}

// keybindings installs one gocui handler per keyspec the engine can
// represent, routed through handleKey so every bound request actually
// reaches keymap.Registry.Lookup and Engine.Dispatch (or, for prompt and
// run-request bindings, the prompt/run-request machinery in prompt.go and
// runrequest.go).
func (gui *Gui) keybindings(g *gocui.Gui) error {
	for spec, key := range namedGocuiKeys {
		if err := gui.bindKey(g, key, spec); err != nil {
			return err
		}
	}
	for letter, key := range ctrlGocuiKeys {
		spec := keymap.KeySpec(letter & 0x1f)
		if err := gui.bindKey(g, key, spec); err != nil {
			return err
		}
	}
	for r := rune('!'); r <= '~'; r++ {
		if err := gui.bindKey(g, r, keymap.KeySpec(r)); err != nil {
			return err
		}
	}
	return nil
}

func (gui *Gui) bindKey(g *gocui.Gui, key interface{}, spec keymap.KeySpec) error {
	return g.SetKeybinding("", key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
		return gui.handleKey(spec)
	})
}

// handleKey is the single entry point every bound key funnels through: a
// prompt in progress consumes the key first, otherwise the key resolves
// against the focused view's keymap (or the generic one) and is either run
// as a user run-request or handed to the Engine.
func (gui *Gui) handleKey(spec keymap.KeySpec) error {
	if gui.prompt != nil {
		return gui.feedPrompt(spec)
	}

	keymapName := keymap.GenericKeyMapName
	v := gui.Engine.Current()
	if v != nil {
		keymapName = v.Kind
	}

	binding, ok := gui.Registry.Lookup(keymapName, spec)
	if !ok {
		return nil
	}

	if binding.RunRequest != nil {
		return gui.dispatchRunRequest(binding.RunRequest)
	}

	switch binding.Request {
	case keymap.ReqSearch:
		gui.openSearchPrompt(false)
		return nil
	case keymap.ReqSearchBack:
		gui.openSearchPrompt(true)
		return nil
	case keymap.ReqPrompt:
		gui.openCommandPrompt()
		return nil
	}

	gui.Engine.Dispatch(binding.Request)
	if gui.Engine.Quit {
		return gocui.ErrQuit
	}
	return nil
}
