package keymap

import (
	"fmt"
	"strings"
)

// KeySpec is a resolved key value: either a rune (printable byte) or one of
// the named special keys below, optionally Escape-composed (+0x80) per spec
// §4.B ("Escape composes with next key by adding 0x80").
type KeySpec int32

const (
	KeyEnter     KeySpec = 13
	KeyEsc       KeySpec = 27
	KeySpace     KeySpec = 32
	KeyTab       KeySpec = 9
	KeyBackspace KeySpec = 127

	// function keys and arrows live well above any printable rune or
	// Ctrl-combination so they never collide with ParseKeySpec's output.
	keySpecBase = 1 << 16
	KeyF1       = keySpecBase + 1
	KeyF2       = keySpecBase + 2
	KeyF3       = keySpecBase + 3
	KeyF4       = keySpecBase + 4
	KeyF5       = keySpecBase + 5
	KeyF6       = keySpecBase + 6
	KeyF7       = keySpecBase + 7
	KeyF8       = keySpecBase + 8
	KeyF9       = keySpecBase + 9
	KeyF10      = keySpecBase + 10
	KeyF11      = keySpecBase + 11
	KeyF12      = keySpecBase + 12
	KeyUp       = keySpecBase + 20
	KeyDown     = keySpecBase + 21
	KeyLeft     = keySpecBase + 22
	KeyRight    = keySpecBase + 23
	KeyPgUp     = keySpecBase + 24
	KeyPgDn     = keySpecBase + 25
	KeyHome     = keySpecBase + 26
	KeyEnd      = keySpecBase + 27
)

var namedKeys = map[string]KeySpec{
	"<space>": KeySpace,
	"<tab>":   KeyTab,
	"<enter>": KeyEnter,
	"<f1>":    KeyF1, "<f2>": KeyF2, "<f3>": KeyF3, "<f4>": KeyF4,
	"<f5>": KeyF5, "<f6>": KeyF6, "<f7>": KeyF7, "<f8>": KeyF8,
	"<f9>": KeyF9, "<f10>": KeyF10, "<f11>": KeyF11, "<f12>": KeyF12,
	"<up>": KeyUp, "<down>": KeyDown, "<left>": KeyLeft, "<right>": KeyRight,
	"<pgup>": KeyPgUp, "<pgdn>": KeyPgDn, "<home>": KeyHome, "<end>": KeyEnd,
}

// ParseKeySpec resolves a keyspec token per spec §4.B: a literal printable
// byte; <Ctrl-X>; <Esc-X> (adds 0x80 to X's resolved value); <Space>; <Tab>;
// <Enter>; <F1>..<F12>.
func ParseKeySpec(s string) (KeySpec, error) {
	if s == "" {
		return 0, fmt.Errorf("empty keyspec")
	}

	lower := strings.ToLower(s)
	if k, ok := namedKeys[lower]; ok {
		return k, nil
	}

	if strings.HasPrefix(lower, "<ctrl-") && strings.HasSuffix(lower, ">") {
		inner := lower[len("<ctrl-") : len(lower)-1]
		if len(inner) != 1 {
			return 0, fmt.Errorf("invalid ctrl keyspec %q", s)
		}
		c := inner[0]
		return KeySpec(c & 0x1f), nil
	}

	if strings.HasPrefix(lower, "<esc-") && strings.HasSuffix(lower, ">") {
		inner := s[len("<esc-") : len(s)-1]
		base, err := ParseKeySpec(inner)
		if err != nil {
			return 0, err
		}
		return base | 0x80, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return KeySpec(runes[0]), nil
	}

	return 0, fmt.Errorf("unrecognized keyspec %q", s)
}

// RunRequestFlags control foreground/background/confirm/exit/internal
// semantics for a user-defined run request (spec §4.B).
type RunRequestFlags struct {
	Force   bool // registered despite a pre-existing binding (bind vs generic precedence)
	Silent  bool // '@' run in background
	Confirm bool // '?' confirm with yes/no showing the command
	Exit    bool // '<' REQ_QUIT after running
	Prompt  bool // ':' remainder is a tig prompt command
}

// RunRequest is an immutable user-defined external command bound to a key.
type RunRequest struct {
	KeyMap string
	Key    string
	Argv   []string
	Flags  RunRequestFlags
}

// ParseRunRequestToken splits the leading flag characters (!@?<:) from a
// run-request token per spec §4.B, returning the flags and the remaining
// command string. Default (no prefix) is foreground.
func ParseRunRequestToken(token string) (RunRequestFlags, string) {
	var flags RunRequestFlags
	rest := token
	for len(rest) > 0 {
		switch rest[0] {
		case '!':
			rest = rest[1:]
			continue
		case '@':
			flags.Silent = true
			rest = rest[1:]
			continue
		case '?':
			flags.Confirm = true
			rest = rest[1:]
			continue
		case '<':
			flags.Exit = true
			rest = rest[1:]
			continue
		case ':':
			flags.Prompt = true
			rest = rest[1:]
			return flags, rest
		}
		break
	}
	return flags, rest
}

// Binding is a single keymap entry.
type Binding struct {
	Request    Request
	RunRequest *RunRequest // non-nil if this binding is a user run-request
}

// KeyMap holds the bindings for one named scope (e.g. "main", "diff").
type KeyMap struct {
	Name     string
	bindings map[KeySpec]Binding
}

func newKeyMap(name string) *KeyMap {
	return &KeyMap{Name: name, bindings: map[KeySpec]Binding{}}
}

// GenericKeyMapName is the fallback scope consulted when a view's own
// keymap has no binding for a key (spec §4.B: "falls back to generic").
const GenericKeyMapName = "generic"

// Registry owns every named keymap plus the registered run-requests.
type Registry struct {
	maps map[string]*KeyMap
}

// NewRegistry returns an empty registry with the generic map pre-created.
func NewRegistry() *Registry {
	r := &Registry{maps: map[string]*KeyMap{}}
	r.mapFor(GenericKeyMapName)
	return r
}

func (r *Registry) mapFor(name string) *KeyMap {
	if m, ok := r.maps[name]; ok {
		return m
	}
	m := newKeyMap(name)
	r.maps[name] = m
	return m
}

// Bind registers keyspec -> request in keymap (or across all maps when
// keymap == "generic"). Duplicate bindings overwrite, except when the
// existing binding is a forced run-request (spec §4.B).
func (r *Registry) Bind(keymapName string, key KeySpec, b Binding) {
	m := r.mapFor(keymapName)
	if existing, ok := m.bindings[key]; ok && existing.RunRequest != nil && existing.RunRequest.Flags.Force {
		return
	}
	m.bindings[key] = b
}

// Lookup resolves a key for the given keymap, consulting keymap then the
// generic fallback.
func (r *Registry) Lookup(keymapName string, key KeySpec) (Binding, bool) {
	if m, ok := r.maps[keymapName]; ok {
		if b, ok := m.bindings[key]; ok {
			return b, true
		}
	}
	if keymapName != GenericKeyMapName {
		if b, ok := r.maps[GenericKeyMapName].bindings[key]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// RegisterRunRequest wraps a RunRequest in a binding and installs it,
// honoring the `force` flag semantics from custom_commands-style built-ins.
func (r *Registry) RegisterRunRequest(rr *RunRequest, key KeySpec) {
	r.Bind(rr.KeyMap, key, Binding{Request: ReqPrompt, RunRequest: rr})
}

// KeyMapNames lists every keymap name currently registered (used by the
// help view and the cheatsheet generator).
func (r *Registry) KeyMapNames() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	return names
}

// Bindings returns a copy of a keymap's bindings, for listing/help.
func (r *Registry) Bindings(keymapName string) map[KeySpec]Binding {
	m, ok := r.maps[keymapName]
	if !ok {
		return nil
	}
	out := make(map[KeySpec]Binding, len(m.bindings))
	for k, v := range m.bindings {
		out[k] = v
	}
	return out
}
