package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// confirmPrompt asks the user to approve removal. On a terminal it runs a huh
// confirm form; with piped stdin it falls back to a plain line read matched
// against the accepted tokens.
func confirmPrompt(prompt string) (bool, error) {
	if stdinIsTerminal() {
		var approved bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&approved),
		))
		if err := form.Run(); err != nil {
			return false, err
		}
		return approved, nil
	}

	fmt.Printf("%s (y/N): ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	return acceptedToken(line), nil
}

// acceptedToken reports whether a typed response counts as approval.
// Anything outside the fixed token set cancels.
func acceptedToken(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
