package console

import "github.com/pterm/pterm"

const (
	actionHit  = "Hit"
	actionStay = "Stay"
)

var turnOptions = []string{actionHit, actionStay}

// Prompter asks the player for decisions.
type Prompter interface {
	Select(text string, options []string) (string, error)
	Confirm(text string) (bool, error)
}

// TerminalPrompter uses pterm's interactive widgets.
type TerminalPrompter struct{}

func (TerminalPrompter) Select(text string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(text).
		WithOptions(options).
		Show()
}

func (TerminalPrompter) Confirm(text string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText(text).
		Show()
}
