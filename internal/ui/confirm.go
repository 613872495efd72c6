package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ConfirmApply asks the user to confirm an in-place run before anything is
// mutated. It returns true without prompting when assumeYes is set or when
// stdin is not a terminal (scripted runs must not hang on a prompt).
func ConfirmApply(root string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return true, nil
	}

	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Rename files under %s in place?", root)).
			Description("There is no undo beyond a fresh dry run.").
			Affirmative("Apply").
			Negative("Cancel").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}
