package keymap

import "testing"

func TestParseKeySpecNamed(t *testing.T) {
	k, err := ParseKeySpec("<Enter>")
	if err != nil || k != KeyEnter {
		t.Fatalf("got %v,%v want KeyEnter", k, err)
	}
}

func TestParseKeySpecCtrl(t *testing.T) {
	k, err := ParseKeySpec("<Ctrl-A>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != KeySpec('a'&0x1f) {
		t.Fatalf("got %v want %v", k, KeySpec('a'&0x1f))
	}
}

func TestParseKeySpecEscComposition(t *testing.T) {
	k, err := ParseKeySpec("<Esc-j>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != KeySpec('j')|0x80 {
		t.Fatalf("got %v want %v", k, KeySpec('j')|0x80)
	}
}

func TestParseKeySpecLiteral(t *testing.T) {
	k, err := ParseKeySpec("q")
	if err != nil || k != KeySpec('q') {
		t.Fatalf("got %v,%v want 'q'", k, err)
	}
}

func TestParseKeySpecDisjointFromRequests(t *testing.T) {
	// spec §4.B: request values must never collide with any resolvable
	// keyspec, including the highest-valued named keys.
	if int32(requestBase) <= int32(KeyEnd) {
		t.Fatalf("requestBase %d must exceed every named key value %d", requestBase, KeyEnd)
	}
}

func TestParseRunRequestTokenFlags(t *testing.T) {
	flags, rest := ParseRunRequestToken("@?<git push")
	if !flags.Silent || !flags.Confirm || !flags.Exit || flags.Prompt {
		t.Fatalf("got %+v", flags)
	}
	if rest != "git push" {
		t.Fatalf("got rest %q", rest)
	}
}

func TestParseRunRequestTokenPromptStopsParsing(t *testing.T) {
	flags, rest := ParseRunRequestToken(":log --all")
	if !flags.Prompt {
		t.Fatalf("expected Prompt flag set")
	}
	if rest != "log --all" {
		t.Fatalf("got rest %q", rest)
	}
}

func TestRegistryGenericFallback(t *testing.T) {
	r := NewRegistry()
	key, _ := ParseKeySpec("q")
	r.Bind(GenericKeyMapName, key, Binding{Request: ReqQuit})

	b, ok := r.Lookup("main", key)
	if !ok || b.Request != ReqQuit {
		t.Fatalf("expected fallback to generic keymap, got %+v,%v", b, ok)
	}
}

func TestRegistryMapOverridesGeneric(t *testing.T) {
	r := NewRegistry()
	key, _ := ParseKeySpec("q")
	r.Bind(GenericKeyMapName, key, Binding{Request: ReqQuit})
	r.Bind("main", key, Binding{Request: ReqViewClose})

	b, ok := r.Lookup("main", key)
	if !ok || b.Request != ReqViewClose {
		t.Fatalf("expected main-specific binding to win, got %+v,%v", b, ok)
	}
}

func TestGetRequestUnknown(t *testing.T) {
	if GetRequest("does-not-exist") != ReqUnknown {
		t.Fatalf("expected ReqUnknown for unrecognized name")
	}
}
