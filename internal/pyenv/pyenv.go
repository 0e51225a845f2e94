package pyenv

import (
	"os"
	"os/exec"
)

// getenv is swapped out in tests.
var getenv = os.Getenv

// InVirtualEnv reports whether the process runs inside an activated Python
// virtual environment. Activation scripts export VIRTUAL_ENV with the
// environment prefix; in a global interpreter session the variable is unset,
// meaning the active installation path coincides with the base one.
func InVirtualEnv() bool {
	return getenv("VIRTUAL_ENV") != ""
}

// Prefix returns the virtual environment root, or "" outside one.
func Prefix() string {
	return getenv("VIRTUAL_ENV")
}

// PythonExecutable resolves the Python interpreter on PATH, preferring
// python3. Returns "" when no interpreter is found.
func PythonExecutable() string {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
