package cmd

import (
	"errors"
	"fmt"

	"github.com/flo-mic/pipsweep/internal/pip"
	"github.com/flo-mic/pipsweep/internal/policy"
	"github.com/flo-mic/pipsweep/internal/pyenv"
	"github.com/flo-mic/pipsweep/internal/report"
)

type cleanupMode int

const (
	cleanupLocal cleanupMode = iota
	cleanupGlobal
)

// runCleanup drives the full pipeline for one mode: environment gate,
// inventory, removable set, report, confirmation, removal.
func (a *app) runCleanup(mode cleanupMode) error {
	if err := a.checkMode(mode); err != nil {
		return err
	}

	switch mode {
	case cleanupLocal:
		fmt.Fprintln(a.stdout, report.TitleStyle.Render("Virtual environment cleanup"))
		fmt.Fprintf(a.stdout, "Environment: %s\n\n", pyenv.Prefix())
	case cleanupGlobal:
		fmt.Fprintln(a.stdout, report.WarningStyle.Render("GLOBAL CLEANUP - USE WITH CAUTION"))
		fmt.Fprintln(a.stdout, "This affects every project that does not use a virtual environment.")
		fmt.Fprintln(a.stdout)
	}

	inventory := a.pip.ListInstalled()
	protected := a.policy.Protected()
	removable := policy.Removable(inventory, protected)

	report.Analysis(a.stdout, inventory, removable, protected)

	if len(removable) == 0 {
		return nil
	}

	if !a.autoConfirm {
		approved, err := a.confirmRemoval(mode, len(removable))
		if err != nil {
			return err
		}
		if !approved {
			fmt.Fprintln(a.stdout, "Operation cancelled.")
			return &ExitError{Code: exitFailure, Err: errors.New("cleanup cancelled")}
		}
	}

	ok := a.pip.RemoveAll(removable, pip.RemoveOptions{
		BatchSize: a.cfg.BatchSize,
		Strict:    a.strict,
		Progress:  a.stdout,
	})
	if !ok {
		fmt.Fprintln(a.stdout, report.ErrorStyle.Render("Cleanup failed."))
		return &ExitError{Code: exitFailure, Err: errors.New("some packages could not be removed")}
	}

	fmt.Fprintln(a.stdout, report.SuccessStyle.Render("Cleanup completed successfully."))
	return nil
}

// checkMode enforces the environment safety gate before anything touches pip.
func (a *app) checkMode(mode cleanupMode) error {
	switch mode {
	case cleanupLocal:
		if !a.inVenv() {
			fmt.Fprintln(a.stderr, report.WarningStyle.Render("You are not inside a virtual environment."))
			fmt.Fprintln(a.stderr, "--local only runs inside an activated virtual environment.")
			fmt.Fprintln(a.stderr, "For a global cleanup, use --global --confirm.")
			return &ExitError{Code: exitWrongMode, Err: errors.New("not in a virtual environment")}
		}
	case cleanupGlobal:
		if a.inVenv() {
			fmt.Fprintln(a.stderr, report.WarningStyle.Render("You are inside a virtual environment."))
			fmt.Fprintln(a.stderr, "Deactivate it first for a global cleanup:")
			fmt.Fprintln(a.stderr, "  deactivate")
			return &ExitError{Code: exitWrongMode, Err: errors.New("still inside a virtual environment")}
		}
	}
	return nil
}

func (a *app) confirmRemoval(mode cleanupMode, count int) (bool, error) {
	prompt := fmt.Sprintf("Remove %d packages?", count)
	if mode == cleanupGlobal {
		fmt.Fprintln(a.stdout, report.WarningStyle.Render("This operation may affect other projects."))
		fmt.Fprintln(a.stdout, "Make sure you know what you are doing.")
		prompt = fmt.Sprintf("Remove %d packages GLOBALLY?", count)
	}
	return a.confirm(prompt)
}
