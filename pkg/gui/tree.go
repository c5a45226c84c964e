package gui

import (
	"path"

	"github.com/stupied4ever/tig/pkg/config"
	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/vcs"
)

// TreeState holds one tree view's current directory, entries, and
// navigation stack (spec §4.H).
type TreeState struct {
	Dir      string
	Entries  []vcs.TreeEntry
	Stack    vcs.DirStack
	Sort     vcs.TreeSortField
	Reverse  bool
	SizeMode config.FileSizeMode
}

// TreeOps implements the view engine's Ops contract for the tree view.
// Enter on a directory row pushes the stack and descends; enter on a file
// row requests the blob view (spec §4.H "Enter on directory pushes; on file
// opens blob view").
type TreeOps struct {
	State *TreeState

	// OpenBlob is invoked with the selected file's path when Enter is
	// pressed on a TreeFile row.
	OpenBlob func(relPath string)
}

func (o *TreeOps) Open(v *View, reload bool) ([]string, error) {
	argv := []string{"git", "ls-tree", "-l", "HEAD", o.State.Dir}
	return argv, nil
}

func (o *TreeOps) Read(v *View, line string, eof bool) {
	if eof {
		parsed := vcs.ParseLsTreeL(joinLines(v.Lines))
		vcs.SortTreeEntries(parsed, o.State.Sort, o.State.Reverse)
		o.State.Entries = vcs.WithSyntheticRows(parsed, o.State.Dir)
		v.Lines = RenderTreeLines(o.State.Entries, o.State.SizeMode, v.Width)
	}
}

func (o *TreeOps) Request(v *View, req keymap.Request, line int) keymap.Request {
	if req != keymap.ReqEnter {
		return req
	}
	if line < 0 || line >= len(o.State.Entries) {
		return req
	}
	entry := o.State.Entries[line]
	switch entry.Kind {
	case vcs.TreeParent:
		if frame, ok := o.State.Stack.Pop(); ok {
			o.State.Dir = path.Dir(o.State.Dir)
			v.Pos.Lineno = frame.PrevLineno
		}
		return keymap.ReqRefresh
	case vcs.TreeDir:
		o.State.Stack.Push(len(o.State.Dir), v.Pos.Lineno)
		o.State.Dir = path.Join(o.State.Dir, entry.Name)
		return keymap.ReqRefresh
	case vcs.TreeFile:
		if o.OpenBlob != nil {
			o.OpenBlob(path.Join(o.State.Dir, entry.Name))
		}
		return keymap.ReqViewBlob
	default:
		return req
	}
}

func joinLines(lines []string) string {
	out := make([]byte, 0, 64*len(lines))
	for _, l := range lines {
		out = append(out, l...)
		out = append(out, '\n')
	}
	return string(out)
}

// BlobOps streams a spooled blob through the generic pager (spec §4.H
// "Blob view streams cat-file blob into the pager").
type BlobOps struct {
	PagerOps
	Path string
}
