// Package config implements the option store and command language described
// in the "Option store & command language" component: a typed record of
// display/behavior options mutated only by the set/color/bind/source
// statements of a config file or by reading the VCS's own configuration.
package config

import "sync"

// GraphicMode selects how ancestry-graph and line-number separators render.
type GraphicMode int

const (
	GraphicASCII GraphicMode = iota
	GraphicDefault
	GraphicUTF8
)

// DateMode selects commit-date rendering.
type DateMode int

const (
	DateNo DateMode = iota
	DateDefault
	DateLocal
	DateRelative
	DateShort
)

// AuthorMode selects commit-author rendering.
type AuthorMode int

const (
	AuthorNo AuthorMode = iota
	AuthorFull
	AuthorAbbreviated
	AuthorEmail
	AuthorEmailUser
)

// FilenameMode selects when the Filename column is shown.
type FilenameMode int

const (
	FilenameNo FilenameMode = iota
	FilenameAlways
	FilenameAuto
)

// FileSizeMode selects file-size formatting.
type FileSizeMode int

const (
	FileSizeNo FileSizeMode = iota
	FileSizeDefault
	FileSizeUnits
)

// IgnoreSpaceMode mirrors git's --ignore-space-change family.
type IgnoreSpaceMode int

const (
	IgnoreSpaceNo IgnoreSpaceMode = iota
	IgnoreSpaceAll
	IgnoreSpaceSome
	IgnoreSpaceAtEOL
)

// CommitOrderMode selects the --*-order flag passed to git log.
type CommitOrderMode int

const (
	CommitOrderDefault CommitOrderMode = iota
	CommitOrderTopo
	CommitOrderDate
	CommitOrderReverse
)

// Defaults mirror orig/options.h's OPTION_INFO table verbatim.
const (
	DefaultAuthorWidth   = 19
	DefaultFilenameWidth = 16
	DefaultIDWidth       = 8
	SizeofRev            = 41 // 40 hex chars + NUL, mirrors SIZEOF_REV
)

// Options is the process-wide singleton option record (spec §3 "Option set").
// It is mutated only by the command-language dispatcher in lang.go or by
// LoadVCSConfig; there are no concurrent writers, but a mutex still guards
// it since toggles may run from a confirmed-foreground-request callback
// invoked off the main goroutine's defer chain.
type Options struct {
	mu sync.Mutex

	LineGraphics GraphicMode
	ShowDate     DateMode
	ShowAuthor   AuthorMode
	ShowFilename FilenameMode
	ShowFileSize FileSizeMode

	ShowRevGraph       bool
	ShowLineNumbers    bool
	ShowRefs           bool
	ShowChanges        bool
	StatusUntrackedDirs bool
	ReadGitColors      bool
	WrapLines          bool
	IgnoreCase         bool
	FocusChild         bool

	DiffContext  int
	IgnoreSpace  IgnoreSpaceMode
	CommitOrder  CommitOrderMode

	ShowNotes bool
	NotesArg  string

	LineNumberInterval int
	HorizontalScroll   float64
	SplitViewHeight    float64
	ScaleVsplitView    float64
	VerticalSplit      bool

	TabSize       int
	AuthorWidth   int
	FilenameWidth int

	Path string
	File string
	Ref  string

	GotoLine uint
	Search   string

	Editor           string
	EditorLineNumber bool

	DiffOptions  []string
	RevArgv      []string
	FileArgv     []string
	BlameOptions []string

	Lineno int

	ShowID bool
	IDWidth int
	// idWidthExplicit records whether the user (via set/bind) picked
	// id-width themselves; if not, core.abbrev from VCS config is allowed
	// to override it (SPEC_FULL.md §5 "id-width / abbrev interaction").
	idWidthExplicit bool

	FileFilter bool

	ShowTitleOverflow bool
	TitleOverflow     int
}

// NewOptions returns the default option record, matching orig/options.h.
func NewOptions() *Options {
	return &Options{
		LineGraphics:        GraphicDefault,
		ShowDate:            DateDefault,
		ShowAuthor:          AuthorFull,
		ShowFilename:        FilenameAuto,
		ShowFileSize:        FileSizeDefault,
		ShowRevGraph:        true,
		ShowLineNumbers:     false,
		ShowRefs:            true,
		ShowChanges:         true,
		StatusUntrackedDirs: true,
		ReadGitColors:       true,
		WrapLines:           false,
		IgnoreCase:          false,
		FocusChild:          true,
		DiffContext:         3,
		IgnoreSpace:         IgnoreSpaceNo,
		CommitOrder:         CommitOrderDefault,
		ShowNotes:           true,
		NotesArg:            "--show-notes",
		LineNumberInterval:  5,
		HorizontalScroll:    0.50,
		SplitViewHeight:     2.0 / 3.0,
		ScaleVsplitView:     0.5,
		VerticalSplit:       false,
		TabSize:             8,
		AuthorWidth:         DefaultAuthorWidth,
		FilenameWidth:       DefaultFilenameWidth,
		EditorLineNumber:    true,
		ShowID:              false,
		IDWidth:             DefaultIDWidth,
		FileFilter:          true,
		ShowTitleOverflow:   false,
		TitleOverflow:       50,
	}
}

// ApplyStep implements apply_step(s, v) from spec §4.E:
//
//	apply_step(s, v) = s >= 1 ? floor(s) : max(1, floor(v*(s+0.01)))
func ApplyStep(s float64, v int) int {
	if s >= 1 {
		return int(s)
	}
	step := int(float64(v) * (s + 0.01))
	if step < 1 {
		return 1
	}
	return step
}

// WithLock runs fn while holding the option-store lock, for command-language
// handlers and toggle_option.
func (o *Options) WithLock(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn()
}
