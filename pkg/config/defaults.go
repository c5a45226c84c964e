package config

import (
	"github.com/stupied4ever/tig/pkg/keymap"
)

// registerDefaultKeymap installs the generic keymap's built-in bindings:
// the bindings tig ships even with an empty tigrc (spec §4.B's "generic"
// scope). The on-disk default tigrc that normally defines these wasn't part
// of the retrieval pack's original_source/ excerpt, so this table is
// reconstructed from tig's well-known default keybindings rather than
// transliterated from a source file (an explicit Open Question resolution,
// see DESIGN.md).
func registerDefaultKeymap(reg *keymap.Registry) {
	bind := func(key keymap.KeySpec, req keymap.Request) {
		reg.Bind(keymap.GenericKeyMapName, key, keymap.Binding{Request: req})
	}

	bind('q', keymap.ReqViewClose)
	bind('Q', keymap.ReqQuit)
	bind(keymap.KeySpec('c'&0x1f), keymap.ReqQuit) // <C-c>

	bind('k', keymap.ReqMoveUp)
	bind('j', keymap.ReqMoveDown)
	bind(keymap.KeyUp, keymap.ReqMoveUp)
	bind(keymap.KeyDown, keymap.ReqMoveDown)
	bind(keymap.KeyPgUp, keymap.ReqMovePageUp)
	bind(keymap.KeyPgDn, keymap.ReqMovePageDown)
	bind('b', keymap.ReqMovePageUp)
	bind(keymap.KeySpec('f'&0x1f), keymap.ReqMovePageDown) // <C-f>
	bind(keymap.KeySpec('b'&0x1f), keymap.ReqMovePageUp)   // <C-b>
	bind('g', keymap.ReqMoveFirstLine)
	bind('G', keymap.ReqMoveLastLine)
	bind(keymap.KeyHome, keymap.ReqMoveFirstLine)
	bind(keymap.KeyEnd, keymap.ReqMoveLastLine)

	bind(keymap.KeySpec('e'&0x1f), keymap.ReqScrollLineDown) // <C-e>
	bind(keymap.KeySpec('y'&0x1f), keymap.ReqScrollLineUp)   // <C-y>
	bind(keymap.KeyLeft, keymap.ReqScrollLeft)
	bind(keymap.KeyRight, keymap.ReqScrollRight)

	bind(keymap.KeyEnter, keymap.ReqEnter)
	bind(keymap.KeyTab, keymap.ReqViewNext)
	bind('n', keymap.ReqNext)
	bind('N', keymap.ReqPrevious)
	bind(keymap.KeyEsc, keymap.ReqViewClose)

	bind('m', keymap.ReqViewMain)
	bind('d', keymap.ReqViewDiff)
	bind('l', keymap.ReqViewLog)
	bind('t', keymap.ReqViewTree)
	bind('s', keymap.ReqViewStatus)
	bind(keymap.KeyF1, keymap.ReqViewHelp)
	bind('o', keymap.ReqMaximize)

	bind('/', keymap.ReqSearch)
	bind('?', keymap.ReqSearchBack)
	bind(':', keymap.ReqPrompt)

	bind('u', keymap.ReqStatusUpdate)
	bind('!', keymap.ReqStatusRevert)
	bind(keymap.KeySpec('o'&0x1f), keymap.ReqStatusMerge) // <C-o>, avoiding <C-m>'s collision with Enter
	bind('1', keymap.ReqStageUpdateLine)
	bind('>', keymap.ReqStageNext)

	bind('[', keymap.ReqDiffContextDown)
	bind(']', keymap.ReqDiffContextUp)

	bind('D', keymap.ReqToggleDate)
	bind('A', keymap.ReqToggleAuthor)
	bind('~', keymap.ReqToggleGraphic)
	bind('F', keymap.ReqToggleRefs)
	bind('^', keymap.ReqToggleRevGraph)
	bind('|', keymap.ReqToggleLineNo)
	bind('I', keymap.ReqToggleIgnoreSpace)

	bind(keymap.KeySpec('l'&0x1f), keymap.ReqScreenRedraw) // <C-l>
	bind(keymap.KeySpec('g'&0x1f), keymap.ReqStopLoading)  // <C-g>
	bind('R', keymap.ReqRefresh)
	bind('e', keymap.ReqEdit)
	bind('J', keymap.ReqJumpCommit)
	bind('v', keymap.ReqShowVersion)
}
