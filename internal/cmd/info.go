package cmd

import (
	"fmt"

	"github.com/flo-mic/pipsweep/internal/policy"
	"github.com/flo-mic/pipsweep/internal/pyenv"
	"github.com/flo-mic/pipsweep/internal/report"
)

// runInfo prints the environment summary. Terminal, no mutation.
func (a *app) runInfo() error {
	report.EnvironmentInfo(a.stdout, report.EnvInfo{
		VirtualEnv:    a.inVenv(),
		Prefix:        pyenv.Prefix(),
		Python:        pyenv.PythonExecutable(),
		PipVersion:    a.pip.Version(),
		TotalPackages: len(a.pip.ListInstalled()),
	})
	return nil
}

// runDryRun computes and reports the removal plan without executing any
// mutation, regardless of environment mode.
func (a *app) runDryRun() error {
	fmt.Fprintln(a.stdout, report.SubtitleStyle.Render("Dry run - no changes will be made"))
	fmt.Fprintln(a.stdout)

	inventory := a.pip.ListInstalled()
	protected := a.policy.Protected()
	report.Analysis(a.stdout, inventory, policy.Removable(inventory, protected), protected)
	return nil
}
