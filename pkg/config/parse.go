package config

import (
	"strconv"
	"strings"
)

// ParseStep ports orig/options.c's parse_step: a bare integer, or an integer
// followed by '%' which is shifted down so that "100%" and "1" never
// collide ((n-1)/100, clamped to [0, 0.99]).
func ParseStep(arg string) (float64, ErrKind) {
	hasPercent := strings.Contains(arg, "%")
	trimmed := strings.TrimSuffix(arg, "%")
	n, _ := strconv.Atoi(trimmed)

	if !hasPercent {
		return float64(n), ErrNone
	}

	v := (float64(n) - 1) / 100
	if v >= 1.0 {
		return 0.99, ErrInvalidStep
	}
	if v < 0.0 {
		return 1, ErrInvalidStep
	}
	return v, ErrNone
}

// ParseInt ports parse_int: atoi then inclusive range check.
func ParseInt(arg string, min, max int) (int, ErrKind) {
	value, _ := strconv.Atoi(arg)
	if min <= value && value <= max {
		return value, ErrNone
	}
	return 0, ErrOutOfRange
}

// ParseBoolMatched ports parse_bool_matched: "1"/"true"/"yes" -> true,
// anything else -> false, with `matched` reporting whether the token was one
// of the six recognized spellings.
func ParseBoolMatched(arg string) (value bool, matched bool) {
	switch arg {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	default:
		return false, false
	}
}

// ParseBool is ParseBoolMatched without the matched flag, mirroring the
// parse_bool macro.
func ParseBool(arg string) bool {
	v, _ := ParseBoolMatched(arg)
	return v
}

// EnumMap is a case-insensitive, prefix-matched enum table entry.
type EnumMap struct {
	Name  string
	Value int
}

// MapEnum finds a case-insensitive match of arg among map, mirroring
// map_enum/map_enum_do in orig/options.c (the original matches by shared
// prefix length against enum_equals). An exact name match wins; otherwise
// the first entry, in table order, whose name starts with arg is taken.
func MapEnum(m []EnumMap, arg string) (int, bool) {
	lower := strings.ToLower(arg)
	best := -1
	bestLen := -1
	for _, e := range m {
		name := strings.ToLower(e.Name)
		if name == lower {
			return e.Value, true
		}
		if strings.HasPrefix(name, lower) && len(lower) > bestLen {
			best = e.Value
			bestLen = len(lower)
		}
	}
	if best >= 0 {
		return best, true
	}
	return 0, false
}

// ParseEnum ports parse_enum_do: try the named map first; on failure fall
// back to treating arg as a bool and selecting map[1] (true) or map[0]
// (false). map must have at least two entries, ordered {false-ish, true-ish}.
func ParseEnum(m []EnumMap, arg string) int {
	if v, ok := MapEnum(m, arg); ok {
		return v
	}
	if ParseBool(arg) {
		return m[1].Value
	}
	return m[0].Value
}

// ParseBoolInt ports the "boolint" kind used by title-overflow: parse as a
// bool first; if that matches, the companion bool takes the parsed bool and
// the int field takes defaultValue. Otherwise parse as int(min,max) and
// implicitly set the companion bool true.
func ParseBoolInt(arg string, min, max, defaultValue int) (enabled bool, value int, kind ErrKind) {
	if _, matched := ParseBoolMatched(arg); matched {
		b := ParseBool(arg)
		return b, defaultValue, ErrNone
	}
	v, errKind := ParseInt(arg, min, max)
	if errKind != ErrNone {
		return false, 0, errKind
	}
	return true, v, ErrNone
}

// ParseArgv shell-tokenizes a value into an argv vector, honoring ' and "
// quoting; used for the `argv` option kind (diff-options, blame-options) and
// for run-request command templates.
func ParseArgv(s string) ([]string, ErrKind) {
	return Tokenize(s)
}

var colorNames = []EnumMap{
	{"default", -1},
	{"black", 0},
	{"red", 1},
	{"green", 2},
	{"yellow", 3},
	{"blue", 4},
	{"magenta", 5},
	{"cyan", 6},
	{"white", 7},
}

// ParseColor ports set_color: a named color, "colorN", or a bare decimal in
// [0,255] (the last form is used when importing colors straight from git
// config, which supplies plain ints without a prefix).
func ParseColor(name string) (int, bool) {
	if v, ok := MapEnum(colorNames, name); ok {
		return v, true
	}
	if strings.HasPrefix(name, "color") {
		v, kind := ParseInt(strings.TrimPrefix(name, "color"), 0, 255)
		return v, kind == ErrNone
	}
	v, kind := ParseInt(name, 0, 255)
	return v, kind == ErrNone
}

var attrNames = []EnumMap{
	{"normal", 0},
	{"blink", 1 << 0},
	{"bold", 1 << 1},
	{"dim", 1 << 2},
	{"reverse", 1 << 3},
	{"standout", 1 << 4},
	{"underline", 1 << 5},
}

// ParseAttr resolves a single attribute token to its bit, per orig's attr_map.
func ParseAttr(name string) (int, bool) {
	return MapEnum(attrNames, name)
}
