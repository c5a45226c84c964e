package config

import (
	"fmt"
	"strings"

	"github.com/stupied4ever/tig/pkg/keymap"
	"github.com/stupied4ever/tig/pkg/lineinfo"
)

// Store is the full mutable state touched by the command language: the
// typed option record, the line classifier, and the keymap registry. A
// single Store is process-wide (spec §3/§5: "process-wide singletons").
type Store struct {
	Options  *Options
	Lines    *lineinfo.Table
	Keymaps  *keymap.Registry
	RunOnKey func(rr *keymap.RunRequest, key keymap.KeySpec)
}

// NewStore wires a fresh, default-valued Store.
func NewStore() *Store {
	s := &Store{
		Options: NewOptions(),
		Lines:   lineinfo.New(),
		Keymaps: keymap.NewRegistry(),
	}
	registerDefaultKeymap(s.Keymaps)
	return s
}

// Tokenize splits a config line into whitespace-separated tokens honoring
// '/" quoting, per spec §4.A. An unterminated quote is reported as
// ErrUnmatchedQuote.
func Tokenize(line string) ([]string, ErrKind) {
	var tokens []string
	var cur strings.Builder
	inQuote := byte(0)
	hasCur := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '"' || c == '\'':
			inQuote = c
			hasCur = true
		case c == ' ' || c == '\t':
			if hasCur {
				tokens = append(tokens, cur.String())
				cur.Reset()
				hasCur = false
			}
		default:
			cur.WriteByte(c)
			hasCur = true
		}
	}
	if inQuote != 0 {
		return nil, ErrUnmatchedQuote
	}
	if hasCur {
		tokens = append(tokens, cur.String())
	}
	return tokens, ErrNone
}

// stripComment removes a trailing `# ...` comment, honoring quotes so a '#'
// inside a quoted value is not treated as a comment start.
func stripComment(line string) string {
	inQuote := byte(0)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inQuote != 0 {
			if c == inQuote {
				inQuote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			inQuote = c
		case '#':
			return line[:i]
		}
	}
	return line
}

// ParseLine dispatches one config-language statement. path/lineno are used
// only for error formatting; errors from this function are meant to be
// logged and swallowed by the caller (spec §7: "the option loader never
// aborts; it only warns").
func (s *Store) ParseLine(path string, lineno int, raw string) error {
	line := strings.TrimSpace(stripComment(raw))
	if line == "" {
		return nil
	}

	tokens, kind := Tokenize(line)
	if kind != ErrNone {
		return newParseError(path, lineno, kind, raw)
	}
	if len(tokens) == 0 {
		return nil
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	var errKind ErrKind
	switch verb {
	case "set":
		errKind = s.execSet(args)
	case "color":
		errKind = s.execColor(args)
	case "bind":
		errKind = s.execBind(args)
	case "source":
		return s.execSource(args, path, lineno)
	default:
		errKind = ErrUnknownVariable
	}

	if errKind != ErrNone {
		prefix := tokens[0]
		if len(tokens) > 1 {
			prefix = tokens[1]
		}
		return newParseError(path, lineno, errKind, prefix)
	}
	return nil
}

// execSet handles `set name = value`.
func (s *Store) execSet(args []string) ErrKind {
	// tolerate both `set name = value` and `set name=value` (args[0] may
	// already have had '=' stripped by the tokenizer only if quoted; the
	// common on-disk form is three tokens: name "=" value).
	if len(args) < 2 {
		return ErrNoValueAssigned
	}
	name := args[0]
	rest := args[1:]
	if rest[0] == "=" {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return ErrNoValueAssigned
	}
	value := strings.Join(rest, " ")
	return s.setOption(name, value, rest)
}

// execColor handles `color target fg bg attr*`.
func (s *Store) execColor(args []string) ErrKind {
	if len(args) < 3 {
		return ErrTooManyArgs
	}
	target := args[0]
	var info *lineinfo.Info
	if strings.HasPrefix(target, "\"") || strings.HasPrefix(target, "'") {
		prefix := strings.Trim(target, "\"'")
		info = s.Lines.AddCustom(prefix, -1, -1, 0)
	} else {
		found, ok := s.Lines.ByName(target)
		if !ok {
			return ErrUnknownColorName
		}
		info = found
	}

	fg, ok := ParseColor(args[1])
	if !ok {
		return ErrUnknownColor
	}
	bg, ok := ParseColor(args[2])
	if !ok {
		return ErrUnknownColor
	}
	info.FG = fg
	info.BG = bg

	attr := 0
	for _, a := range args[3:] {
		bit, ok := ParseAttr(a)
		if !ok {
			return ErrUnknownAttribute
		}
		attr |= bit
	}
	info.Attr = attr
	return ErrNone
}

// execBind handles `bind keymap keyspec request...`, including run-request
// flag prefixes on the request token (spec §4.B).
func (s *Store) execBind(args []string) ErrKind {
	if len(args) < 3 {
		return ErrTooManyArgs
	}
	keymapName := args[0]
	keySpecStr := args[1]
	reqTokens := args[2:]

	key, err := keymap.ParseKeySpec(keySpecStr)
	if err != nil {
		return ErrUnmatchedQuote
	}

	flags, rest := keymap.ParseRunRequestToken(reqTokens[0])
	fullRest := append([]string{rest}, reqTokens[1:]...)
	joined := strings.TrimSpace(strings.Join(fullRest, " "))

	if flags.Silent || flags.Confirm || flags.Exit || flags.Prompt || len(reqTokens) > 1 || (rest != "" && keymap.GetRequest(rest) == keymap.ReqUnknown) {
		if joined == "" {
			return ErrUnknownRequest
		}
		rr := &keymap.RunRequest{
			KeyMap: keymapName,
			Key:    keySpecStr,
			Argv:   strings.Fields(joined),
			Flags:  flags,
		}
		s.Keymaps.RegisterRunRequest(rr, key)
		return ErrNone
	}

	req := keymap.GetRequest(rest)
	if req == keymap.ReqUnknown {
		return ErrUnknownRequest
	}
	s.Keymaps.Bind(keymapName, key, keymap.Binding{Request: req})
	return ErrNone
}

// execSource handles `source path`, recursively loading another config
// file. ~ expands via $HOME per spec §6.1.
func (s *Store) execSource(args []string, fromPath string, fromLine int) error {
	if len(args) != 1 {
		return newParseError(fromPath, fromLine, ErrTooManyArgs, "source")
	}
	path, err := ExpandHome(args[0])
	if err != nil {
		return newParseError(fromPath, fromLine, ErrHomeUnresolvable, args[0])
	}
	return s.LoadFile(path)
}

// dispatch is the static (name, kind, field) table described in spec Design
// Note §9 ("a simple lookup table suffices" in place of macro generation).
type optKind int

const (
	kindInt optKind = iota
	kindStep
	kindBool
	kindEnum
	kindBoolInt
	kindString
	kindArgv
)

type optEntry struct {
	name    string
	kind    optKind
	min     int
	max     int
	enum    []EnumMap
	setInt  func(*Options, int)
	setBool func(*Options, bool)
	setF64  func(*Options, float64)
	setStr  func(*Options, string)
	setArgv func(*Options, []string)
}

var authorEnum = []EnumMap{
	{"no", int(AuthorNo)}, {"full", int(AuthorFull)}, {"abbreviated", int(AuthorAbbreviated)},
	{"email", int(AuthorEmail)}, {"email-user", int(AuthorEmailUser)},
}
var filenameEnum = []EnumMap{
	{"no", int(FilenameNo)}, {"always", int(FilenameAlways)}, {"auto", int(FilenameAuto)},
}
var graphicEnum = []EnumMap{
	{"ascii", int(GraphicASCII)}, {"default", int(GraphicDefault)}, {"utf-8", int(GraphicUTF8)},
}
var dateEnum = []EnumMap{
	{"no", int(DateNo)}, {"default", int(DateDefault)}, {"local", int(DateLocal)},
	{"relative", int(DateRelative)}, {"short", int(DateShort)},
}
var fileSizeEnum = []EnumMap{
	{"no", int(FileSizeNo)}, {"default", int(FileSizeDefault)}, {"units", int(FileSizeUnits)},
}
var ignoreSpaceEnum = []EnumMap{
	{"no", int(IgnoreSpaceNo)}, {"all", int(IgnoreSpaceAll)},
	{"some", int(IgnoreSpaceSome)}, {"at-eol", int(IgnoreSpaceAtEOL)},
}
var commitOrderEnum = []EnumMap{
	{"default", int(CommitOrderDefault)}, {"topo", int(CommitOrderTopo)},
	{"date", int(CommitOrderDate)}, {"reverse", int(CommitOrderReverse)},
}

var optionTable = []optEntry{
	{name: "line-graphics", kind: kindEnum, enum: graphicEnum, setInt: func(o *Options, v int) { o.LineGraphics = GraphicMode(v) }},
	{name: "show-date", kind: kindEnum, enum: dateEnum, setInt: func(o *Options, v int) { o.ShowDate = DateMode(v) }},
	{name: "show-author", kind: kindEnum, enum: authorEnum, setInt: func(o *Options, v int) { o.ShowAuthor = AuthorMode(v) }},
	{name: "show-filename", kind: kindEnum, enum: filenameEnum, setInt: func(o *Options, v int) { o.ShowFilename = FilenameMode(v) }},
	{name: "show-file-size", kind: kindEnum, enum: fileSizeEnum, setInt: func(o *Options, v int) { o.ShowFileSize = FileSizeMode(v) }},
	{name: "show-rev-graph", kind: kindBool, setBool: func(o *Options, v bool) { o.ShowRevGraph = v }},
	{name: "show-line-numbers", kind: kindBool, setBool: func(o *Options, v bool) { o.ShowLineNumbers = v }},
	{name: "show-refs", kind: kindBool, setBool: func(o *Options, v bool) { o.ShowRefs = v }},
	{name: "show-changes", kind: kindBool, setBool: func(o *Options, v bool) { o.ShowChanges = v }},
	{name: "status-untracked-dirs", kind: kindBool, setBool: func(o *Options, v bool) { o.StatusUntrackedDirs = v }},
	{name: "read-git-colors", kind: kindBool, setBool: func(o *Options, v bool) { o.ReadGitColors = v }},
	{name: "wrap-lines", kind: kindBool, setBool: func(o *Options, v bool) { o.WrapLines = v }},
	{name: "ignore-case", kind: kindBool, setBool: func(o *Options, v bool) { o.IgnoreCase = v }},
	{name: "focus-child", kind: kindBool, setBool: func(o *Options, v bool) { o.FocusChild = v }},
	{name: "diff-context", kind: kindInt, min: 0, max: 999999, setInt: func(o *Options, v int) { o.DiffContext = v }},
	{name: "ignore-space", kind: kindEnum, enum: ignoreSpaceEnum, setInt: func(o *Options, v int) { o.IgnoreSpace = IgnoreSpaceMode(v) }},
	{name: "commit-order", kind: kindEnum, enum: commitOrderEnum, setInt: func(o *Options, v int) { o.CommitOrder = CommitOrderMode(v) }},
	{name: "show-notes", kind: kindBool, setBool: func(o *Options, v bool) { o.ShowNotes = v }},
	{name: "line-number-interval", kind: kindInt, min: 1, max: 1024, setInt: func(o *Options, v int) { o.LineNumberInterval = v }},
	{name: "horizontal-scroll", kind: kindStep, setF64: func(o *Options, v float64) { o.HorizontalScroll = v }},
	{name: "split-view-height", kind: kindStep, setF64: func(o *Options, v float64) { o.SplitViewHeight = v }},
	{name: "scale-vsplit-view", kind: kindStep, setF64: func(o *Options, v float64) { o.ScaleVsplitView = v }},
	{name: "vertical-split", kind: kindBool, setBool: func(o *Options, v bool) { o.VerticalSplit = v }},
	{name: "tab-size", kind: kindInt, min: 1, max: 1024, setInt: func(o *Options, v int) { o.TabSize = v }},
	{name: "author-width", kind: kindInt, min: 0, max: 1024, setInt: func(o *Options, v int) { o.AuthorWidth = v }},
	{name: "filename-width", kind: kindInt, min: 0, max: 1024, setInt: func(o *Options, v int) { o.FilenameWidth = v }},
	{name: "editor", kind: kindString, setStr: func(o *Options, v string) { o.Editor = v }},
	{name: "editor-line-number", kind: kindBool, setBool: func(o *Options, v bool) { o.EditorLineNumber = v }},
	{name: "blame-options", kind: kindArgv, setArgv: func(o *Options, v []string) { o.BlameOptions = v }},
	{name: "diff-options", kind: kindArgv, setArgv: func(o *Options, v []string) { o.DiffOptions = v }},
	{name: "notes_arg", kind: kindArgv, setArgv: func(o *Options, v []string) {
		if len(v) > 0 {
			o.NotesArg = v[0]
		}
	}},
	{name: "show-id", kind: kindBool, setBool: func(o *Options, v bool) { o.ShowID = v }},
	{name: "id-width", kind: kindInt, min: 4, max: SizeofRev - 1, setInt: func(o *Options, v int) {
		o.IDWidth = v
		o.idWidthExplicit = true
	}},
	{name: "file-filter", kind: kindBool, setBool: func(o *Options, v bool) { o.FileFilter = v }},
	{name: "title-overflow", kind: kindBoolInt, min: 2, max: 1024, setInt: func(o *Options, v int) {
		o.ShowTitleOverflow = true
		o.TitleOverflow = v
	}},
}

func findOption(name string) (optEntry, bool) {
	lower := strings.ToLower(name)
	for _, e := range optionTable {
		if e.name == lower {
			return e, true
		}
	}
	return optEntry{}, false
}

// setOption applies `name = value` against the static dispatch table.
func (s *Store) setOption(name, value string, argvTokens []string) ErrKind {
	entry, ok := findOption(name)
	if !ok {
		return ErrUnknownVariable
	}

	var errKind ErrKind
	s.Options.WithLock(func() {
		switch entry.kind {
		case kindInt:
			v, k := ParseInt(value, entry.min, entry.max)
			if k != ErrNone {
				errKind = k
				return
			}
			entry.setInt(s.Options, v)
		case kindStep:
			v, k := ParseStep(value)
			if k != ErrNone {
				errKind = k
			}
			entry.setF64(s.Options, v)
		case kindBool:
			entry.setBool(s.Options, ParseBool(value))
		case kindEnum:
			entry.setInt(s.Options, ParseEnum(entry.enum, value))
		case kindBoolInt:
			enabled, v, k := ParseBoolInt(value, entry.min, entry.max, s.defaultTitleOverflow())
			if k != ErrNone {
				errKind = k
				return
			}
			s.Options.ShowTitleOverflow = enabled
			if enabled {
				entry.setInt(s.Options, v)
			}
		case kindString:
			entry.setStr(s.Options, strings.Trim(value, "\"'"))
		case kindArgv:
			entry.setArgv(s.Options, argvTokens)
		}
	})
	return errKind
}

func (s *Store) defaultTitleOverflow() int { return 50 }

// ExpandHome expands a leading "~/" using $HOME, per spec §6.1.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home := envHome()
	if home == "" {
		return "", fmt.Errorf("HOME not set")
	}
	return home + path[1:], nil
}
