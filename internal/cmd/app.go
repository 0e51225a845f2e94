package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/flo-mic/pipsweep/internal/config"
	"github.com/flo-mic/pipsweep/internal/pip"
	"github.com/flo-mic/pipsweep/internal/policy"
	"github.com/flo-mic/pipsweep/internal/pyenv"
)

// app is the composition root for one invocation. Every handler runs against
// its fields, so tests can substitute the pip exec func, the environment
// check, and the confirmation capability.
type app struct {
	cfg         *config.Config
	pip         *pip.Client
	policy      *policy.Policy
	logger      *log.Logger
	confirm     func(prompt string) (bool, error)
	inVenv      func() bool
	autoConfirm bool
	strict      bool
	stdout      io.Writer
	stderr      io.Writer
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load configuration: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pipsweep"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	client := pip.NewClient(cfg.PipCommand, nil, logger)

	pol, err := buildPolicy(cfg, client)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		pip:         client,
		policy:      pol,
		logger:      logger,
		confirm:     confirmPrompt,
		inVenv:      pyenv.InVirtualEnv,
		autoConfirm: flagConfirm,
		strict:      flagStrict || cfg.Strict,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}, nil
}

// buildPolicy assembles the protection policy: built-in essentials, config
// additions, the optional per-project overlay, and one supplemental inventory
// source per protected prefix.
func buildPolicy(cfg *config.Config, client *pip.Client) (*policy.Policy, error) {
	static := policy.DefaultEssential()
	static = append(static, cfg.Protect...)
	prefixes := append([]string{}, cfg.ProtectPrefixes...)

	path := policyFile
	if path == "" {
		path = cfg.PolicyFile
	}
	if path != "" {
		overlay, err := policy.LoadFile(path)
		if err != nil {
			return nil, err
		}
		static = append(static, overlay.Protect...)
		prefixes = append(prefixes, overlay.ProtectPrefixes...)
	}

	var sources []policy.Source
	for _, prefix := range prefixes {
		sources = append(sources, func() []string {
			return client.NamesWithPrefix(prefix)
		})
	}
	return policy.New(static, sources...), nil
}
