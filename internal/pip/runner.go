package pip

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Result holds the outcome of one external pip invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExecFunc runs one external command; argv[0] is the executable. When capture
// is true the child's output is collected for parsing, otherwise it streams to
// the invoking terminal. A nil result means the process could not be spawned
// at all; callers must treat that as "unknown" and degrade.
type ExecFunc func(argv []string, capture bool) *Result

// systemExec spawns exactly one process per call. No retry and no timeout: an
// unresponsive pip blocks until the surrounding shell kills it.
func systemExec(logger *log.Logger) ExecFunc {
	return func(argv []string, capture bool) *Result {
		cmd := exec.Command(argv[0], argv[1:]...)

		var stdout, stderr strings.Builder
		if capture {
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
		} else {
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
		}

		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				logger.Error("cannot execute command", "cmd", strings.Join(argv, " "), "err", err)
				return nil
			}
		}

		return &Result{
			ExitCode: cmd.ProcessState.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}
}
