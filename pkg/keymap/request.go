// Package keymap implements the key map & request registry (spec component
// B): a discriminated set of symbolic user-action requests, per-view keymaps
// mapping keyspec -> request, and the user-defined "run request" mechanism
// that attaches external shell invocations to keys.
//
// Grounded on orig/request.h and orig/request.c (the req_info table and
// get_request lookup), reshaped from C's offset-from-KEY_MAX enum into a
// plain Go int enum disjoint from gocui's key range by construction (gocui
// keys and runes are always < requestBase).
package keymap

import "strings"

// Request is a symbolic user action, dispatched by the view engine.
type Request int

// requestBase offsets all requests clear of any rune or gocui.Key value
// (gocui keys/runes fit in an int32; this keeps Request values unambiguous
// when both are carried in the same interface{} slot during dispatch).
const requestBase = 1 << 20

const (
	ReqNone Request = requestBase + iota
	ReqUnknown

	// View switching
	ReqViewMain
	ReqViewDiff
	ReqViewLog
	ReqViewTree
	ReqViewBlob
	ReqViewBlame
	ReqViewBranch
	ReqViewStatus
	ReqViewStage
	ReqViewStash
	ReqViewPager
	ReqViewHelp

	// View manipulation
	ReqEnter
	ReqNext
	ReqPrevious
	ReqParent
	ReqViewNext
	ReqRefresh
	ReqMaximize
	ReqViewClose
	ReqQuit

	// View specific requests
	ReqStatusUpdate
	ReqStatusRevert
	ReqStatusMerge
	ReqStageUpdateLine
	ReqStageNext
	ReqDiffContextDown
	ReqDiffContextUp

	// Cursor navigation
	ReqMoveUp
	ReqMoveDown
	ReqMovePageDown
	ReqMovePageUp
	ReqMoveFirstLine
	ReqMoveLastLine

	// Scrolling
	ReqScrollFirstCol
	ReqScrollLeft
	ReqScrollRight
	ReqScrollLineUp
	ReqScrollLineDown
	ReqScrollPageUp
	ReqScrollPageDown

	// Searching
	ReqSearch
	ReqSearchBack
	ReqFindNext
	ReqFindPrev

	// Option manipulation
	ReqOptions
	ReqToggleLineNo
	ReqToggleDate
	ReqToggleAuthor
	ReqToggleRevGraph
	ReqToggleGraphic
	ReqToggleFilename
	ReqToggleRefs
	ReqToggleChanges
	ReqToggleSortOrder
	ReqToggleSortField
	ReqToggleIgnoreSpace
	ReqToggleCommitOrder
	ReqToggleID
	ReqToggleFiles
	ReqToggleTitleOverflow
	ReqToggleFileSize
	ReqToggleUntrackedDirs

	// Misc
	ReqPrompt
	ReqScreenRedraw
	ReqShowVersion
	ReqStopLoading
	ReqEdit

	// Internal
	ReqJumpCommit
)

var requestNames = map[string]Request{
	"view-main":    ReqViewMain,
	"view-diff":    ReqViewDiff,
	"view-log":     ReqViewLog,
	"view-tree":    ReqViewTree,
	"view-blob":    ReqViewBlob,
	"view-blame":   ReqViewBlame,
	"view-branch":  ReqViewBranch,
	"view-status":  ReqViewStatus,
	"view-stage":   ReqViewStage,
	"view-stash":   ReqViewStash,
	"view-pager":   ReqViewPager,
	"view-help":    ReqViewHelp,

	"enter":          ReqEnter,
	"next":           ReqNext,
	"previous":       ReqPrevious,
	"parent":         ReqParent,
	"view-next":      ReqViewNext,
	"refresh":        ReqRefresh,
	"maximize":       ReqMaximize,
	"view-close":     ReqViewClose,
	"quit":           ReqQuit,

	"status-update":     ReqStatusUpdate,
	"status-revert":     ReqStatusRevert,
	"status-merge":      ReqStatusMerge,
	"stage-update-line": ReqStageUpdateLine,
	"stage-next":        ReqStageNext,
	"diff-context-down": ReqDiffContextDown,
	"diff-context-up":   ReqDiffContextUp,

	"move-up":         ReqMoveUp,
	"move-down":       ReqMoveDown,
	"move-page-down":  ReqMovePageDown,
	"move-page-up":    ReqMovePageUp,
	"move-first-line": ReqMoveFirstLine,
	"move-last-line":  ReqMoveLastLine,

	"scroll-first-col": ReqScrollFirstCol,
	"scroll-left":      ReqScrollLeft,
	"scroll-right":     ReqScrollRight,
	"scroll-line-up":   ReqScrollLineUp,
	"scroll-line-down": ReqScrollLineDown,
	"scroll-page-up":   ReqScrollPageUp,
	"scroll-page-down": ReqScrollPageDown,

	"search":      ReqSearch,
	"search-back": ReqSearchBack,
	"find-next":   ReqFindNext,
	"find-prev":   ReqFindPrev,

	"options":                 ReqOptions,
	"toggle-lineno":           ReqToggleLineNo,
	"toggle-date":             ReqToggleDate,
	"toggle-author":           ReqToggleAuthor,
	"toggle-rev-graph":        ReqToggleRevGraph,
	"toggle-graphic":          ReqToggleGraphic,
	"toggle-filename":         ReqToggleFilename,
	"toggle-refs":             ReqToggleRefs,
	"toggle-changes":          ReqToggleChanges,
	"toggle-sort-order":       ReqToggleSortOrder,
	"toggle-sort-field":       ReqToggleSortField,
	"toggle-ignore-space":     ReqToggleIgnoreSpace,
	"toggle-commit-order":     ReqToggleCommitOrder,
	"toggle-id":               ReqToggleID,
	"toggle-files":            ReqToggleFiles,
	"toggle-title-overflow":   ReqToggleTitleOverflow,
	"toggle-file-size":        ReqToggleFileSize,
	"toggle-untracked-dirs":   ReqToggleUntrackedDirs,

	"prompt":        ReqPrompt,
	"screen-redraw": ReqScreenRedraw,
	"show-version":  ReqShowVersion,
	"stop-loading":  ReqStopLoading,
	"edit":          ReqEdit,
	"none":          ReqNone,
}

// GetRequest looks up a request by case-insensitive name, mirroring
// orig/request.c's get_request. Returns ReqUnknown if no match.
func GetRequest(name string) Request {
	if r, ok := requestNames[strings.ToLower(name)]; ok {
		return r
	}
	return ReqUnknown
}

var requestDisplayNames = buildRequestDisplayNames()

func buildRequestDisplayNames() map[Request]string {
	m := make(map[Request]string, len(requestNames))
	for name, r := range requestNames {
		if _, ok := m[r]; !ok {
			m[r] = name
		}
	}
	return m
}

// RequestName is GetRequest's inverse, used by the help/cheatsheet view to
// render a symbolic name for each bound request.
func RequestName(r Request) string {
	if name, ok := requestDisplayNames[r]; ok {
		return name
	}
	return "none"
}
