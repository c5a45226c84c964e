package gui

import (
	"github.com/jesseduffield/gocui"

	"github.com/stupied4ever/tig/pkg/keymap"
)

// promptSession holds the state of one open prompt: the `:` command line,
// a forward/backward search line, or a run-request yes/no confirmation
// (spec §4.L "Prompt & menu").
type promptSession struct {
	kind           PromptKind
	editor         LineEditor
	label          string // ":" / "/" / "?"
	searchBackward bool
	confirm        *keymap.RunRequest
}

// openCommandPrompt starts a `:` command-language prompt.
func (gui *Gui) openCommandPrompt() {
	gui.prompt = &promptSession{kind: PromptLine, label: ":"}
}

// openSearchPrompt starts a `/` (forward) or `?` (backward) search prompt.
func (gui *Gui) openSearchPrompt(backward bool) {
	label := "/"
	if backward {
		label = "?"
	}
	gui.prompt = &promptSession{kind: PromptLine, label: label, searchBackward: backward}
}

// openConfirmPrompt starts a yes/no confirmation ahead of running rr, for
// the '?' run-request flag (spec §4.B).
func (gui *Gui) openConfirmPrompt(rr *keymap.RunRequest) {
	gui.prompt = &promptSession{kind: PromptYesNo, confirm: rr}
}

// feedPrompt consumes one keystroke into the active prompt, submitting or
// cancelling it when appropriate.
func (gui *Gui) feedPrompt(spec keymap.KeySpec) error {
	p := gui.prompt

	if p.kind == PromptYesNo {
		answered := ParseYesNoAnswer(rune(spec))
		gui.prompt = nil
		if answered && p.confirm != nil {
			return gui.runRequestNow(p.confirm)
		}
		return nil
	}

	switch spec {
	case keymap.KeyEsc:
		gui.prompt = nil
		return nil
	case keymap.KeyEnter:
		gui.prompt = nil
		return gui.submitPrompt(p)
	case keymap.KeyBackspace:
		p.editor.Backspace()
		return nil
	}

	if spec >= '!' && spec <= '~' || spec == keymap.KeySpace {
		p.editor.Insert(string(rune(spec)))
	}
	return nil
}

// submitPrompt dispatches a completed prompt line: search prompts feed
// View.Search, the `:` prompt is resolved as a symbolic request name first
// and falls back to the full command-language parser (spec §4.L, §4.A).
func (gui *Gui) submitPrompt(p *promptSession) error {
	text := p.editor.Text
	v := gui.Engine.Current()

	if p.label == "/" || p.label == "?" {
		if v != nil && text != "" {
			_ = v.Search(text, p.searchBackward, gui.Opt.IgnoreCase)
		}
		return nil
	}

	cmd, _ := SplitCommandLine(text)
	if req := keymap.GetRequest(cmd); req != keymap.ReqUnknown {
		gui.Engine.Dispatch(req)
		if gui.Engine.Quit {
			return gocui.ErrQuit
		}
		return nil
	}

	if err := gui.Store.ParseLine("<prompt>", 0, text); err != nil {
		gui.Log.WithError(err).Warn("prompt command error")
	}
	return nil
}
