package gui

import (
	"github.com/jesseduffield/gocui"

	"github.com/stupied4ever/tig/pkg/keymap"
)

// dispatchRunRequest implements spec §4.B's run-request flags: '?' asks for
// confirmation first, '@' runs detached through the task manager, '<' quits
// once the command returns, plain runs in the foreground and reloads.
func (gui *Gui) dispatchRunRequest(rr *keymap.RunRequest) error {
	if rr.Flags.Confirm {
		gui.openConfirmPrompt(rr)
		return nil
	}
	return gui.runRequestNow(rr)
}

// runRequestNow expands rr's argv against the focused view and actually
// runs it, per the flag combination already parsed onto rr.Flags.
func (gui *Gui) runRequestNow(rr *keymap.RunRequest) error {
	argv := gui.expandRunRequestArgv(rr)

	if rr.Flags.Silent {
		gui.tasks.NewTask(func(stop chan struct{}) {
			if err := gui.Runner.RunSilent(argv); err != nil {
				gui.Log.WithError(err).Warn("background run-request failed")
			}
		})
	} else if err := gui.Runner.RunForeground(argv); err != nil {
		gui.Log.WithError(err).Warn("run-request failed")
	}

	if v := gui.Engine.Current(); v != nil {
		_ = v.BeginUpdate(true)
	}

	if rr.Flags.Exit {
		gui.Engine.Quit = true
		return gocui.ErrQuit
	}
	return nil
}

// expandRunRequestArgv substitutes the %(...) placeholders a run-request's
// argv template may carry (spec §4.E begin_update / §4.B). Only the
// substitutions the engine can resolve without per-view cursor tracking are
// filled in; the rest expand to empty strings.
func (gui *Gui) expandRunRequestArgv(rr *keymap.RunRequest) []string {
	sub := Substitutions{
		Directory: gui.Runner.Dir,
		Head:      gui.Repo.HeadOID,
	}
	return ExpandArgvTemplate(rr.Argv, sub)
}
