package gui

import (
	"fmt"

	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
)

// ToggleResult reports what happened to a toggle: a status-line message and
// whether every open view depending on this option must reload rather than
// merely redraw (spec §4.E "Toggles": "a set of view flags indicating which
// open views must reload vs. merely redraw").
type ToggleResult struct {
	Message string
	Reload  bool
}

// ToggleOption mutates opt per req, mirroring spec §4.E's static
// req -> (field, enum map, view flags) toggle table. Unrecognized requests
// are a no-op returning an empty result.
func ToggleOption(opt *config.Options, req keymap.Request) ToggleResult {
	switch req {
	case keymap.ReqToggleLineNo:
		opt.ShowLineNumbers = !opt.ShowLineNumbers
		return ToggleResult{boolMsg("line numbers", opt.ShowLineNumbers), false}

	case keymap.ReqToggleDate:
		opt.ShowDate = config.DateMode((int(opt.ShowDate) + 1) % 5)
		return ToggleResult{fmt.Sprintf("date display: %d", opt.ShowDate), true}

	case keymap.ReqToggleAuthor:
		opt.ShowAuthor = config.AuthorMode((int(opt.ShowAuthor) + 1) % 5)
		return ToggleResult{fmt.Sprintf("author display: %d", opt.ShowAuthor), true}

	case keymap.ReqToggleRevGraph:
		opt.ShowRevGraph = !opt.ShowRevGraph
		return ToggleResult{boolMsg("revision graph", opt.ShowRevGraph), true}

	case keymap.ReqToggleGraphic:
		opt.LineGraphics = config.GraphicMode((int(opt.LineGraphics) + 1) % 3)
		return ToggleResult{fmt.Sprintf("line graphics: %d", opt.LineGraphics), false}

	case keymap.ReqToggleFilename:
		opt.ShowFilename = config.FilenameMode((int(opt.ShowFilename) + 1) % 3)
		return ToggleResult{fmt.Sprintf("filename display: %d", opt.ShowFilename), true}

	case keymap.ReqToggleRefs:
		opt.ShowRefs = !opt.ShowRefs
		return ToggleResult{boolMsg("branch/tag refs", opt.ShowRefs), true}

	case keymap.ReqToggleChanges:
		opt.ShowChanges = !opt.ShowChanges
		return ToggleResult{boolMsg("local changes", opt.ShowChanges), true}

	case keymap.ReqToggleIgnoreSpace:
		opt.IgnoreSpace = config.IgnoreSpaceMode((int(opt.IgnoreSpace) + 1) % 4)
		return ToggleResult{fmt.Sprintf("ignore-space mode: %d", opt.IgnoreSpace), true}

	case keymap.ReqToggleCommitOrder:
		opt.CommitOrder = config.CommitOrderMode((int(opt.CommitOrder) + 1) % 4)
		return ToggleResult{fmt.Sprintf("commit order: %d", opt.CommitOrder), true}

	case keymap.ReqToggleID:
		opt.ShowID = !opt.ShowID
		return ToggleResult{boolMsg("commit IDs", opt.ShowID), false}

	case keymap.ReqToggleFileSize:
		opt.ShowFileSize = config.FileSizeMode((int(opt.ShowFileSize) + 1) % 3)
		return ToggleResult{fmt.Sprintf("file size display: %d", opt.ShowFileSize), true}

	case keymap.ReqToggleUntrackedDirs:
		opt.StatusUntrackedDirs = !opt.StatusUntrackedDirs
		return ToggleResult{boolMsg("untracked directories", opt.StatusUntrackedDirs), true}

	default:
		return ToggleResult{}
	}
}

func boolMsg(name string, on bool) string {
	state := "disabled"
	if on {
		state = "enabled"
	}
	return name + " " + state
}
