// Package pip wraps the external pip executable: inventory queries, version
// lookup, and batched uninstalls. pip is treated as an opaque collaborator;
// every query degrades to an empty value when it cannot be reached.
package pip

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"
)

// Client runs pip subcommands through an injected ExecFunc.
type Client struct {
	pip    []string // argv prefix, e.g. ["pip"] or ["python3", "-m", "pip"]
	exec   ExecFunc
	logger *log.Logger
}

// NewClient builds a pip client. pipCmd is the argv prefix for every
// invocation (defaults to ["pip"]). A nil exec falls back to spawning real
// processes; tests substitute a recording implementation.
func NewClient(pipCmd []string, exec ExecFunc, logger *log.Logger) *Client {
	if len(pipCmd) == 0 {
		pipCmd = []string{"pip"}
	}
	if exec == nil {
		exec = systemExec(logger)
	}
	return &Client{pip: pipCmd, exec: exec, logger: logger}
}

func (c *Client) run(args []string, capture bool) *Result {
	argv := append(append([]string{}, c.pip...), args...)
	return c.exec(argv, capture)
}

// listedPackage mirrors one entry of `pip list --format=json`.
type listedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListInstalled returns installed packages keyed by lowercased name. The
// inventory is queried fresh on every call. A pip that cannot be spawned,
// exits non-zero, or prints unparseable output yields an empty map so that
// callers never crash on a broken environment.
func (c *Client) ListInstalled() map[string]string {
	packages := map[string]string{}

	res := c.run([]string{"list", "--format=json"}, true)
	if res == nil {
		return packages
	}
	if res.ExitCode != 0 {
		c.logger.Warn("pip list failed", "exit", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return packages
	}

	var listed []listedPackage
	if err := json.Unmarshal([]byte(res.Stdout), &listed); err != nil {
		c.logger.Error("cannot decode pip package list", "err", err)
		return packages
	}

	for _, p := range listed {
		packages[strings.ToLower(p.Name)] = p.Version
	}
	return packages
}

// Version returns pip's own version line, or "" when pip cannot be queried.
func (c *Client) Version() string {
	res := c.run([]string{"--version"}, true)
	if res == nil || res.ExitCode != 0 {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

// NamesWithPrefix returns the lowercased names of installed packages starting
// with prefix. It re-queries the inventory so supplemental protection always
// sees the live state; a failed query contributes nothing.
func (c *Client) NamesWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var names []string
	for name := range c.ListInstalled() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}
