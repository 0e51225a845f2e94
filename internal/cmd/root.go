// Package cmd contains the pipsweep CLI.
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	policyFile string
	verbose    bool

	flagLocal   bool
	flagGlobal  bool
	flagConfirm bool
	flagInfo    bool
	flagDryRun  bool
	flagStrict  bool

	rootCmd = &cobra.Command{
		Use:   "pipsweep",
		Short: "Safe cleanup of installed Python packages",
		Long: `pipsweep removes installed Python packages that are not on a protected
essential list, either inside the active virtual environment or against
the global interpreter.

The essential list covers pip itself, build backends, pip's core
dependencies, and common SSL/HTTP primitives; platform GUI bindings
(pyobjc-*) are detected and protected dynamically. Extra names can be
protected via configuration or a per-project policy file.

Examples:
  pipsweep --info                 Show environment information
  pipsweep --dry-run              Show what would be removed
  pipsweep --local                Clean the current virtual environment
  pipsweep --global --confirm     Clean the global installation`,
		SilenceUsage: true,
		RunE:         runRoot,
	}
)

func init() {
	rootCmd.Flags().BoolVar(&flagLocal, "local", false, "clean packages from the current virtual environment")
	rootCmd.Flags().BoolVar(&flagGlobal, "global", false, "clean packages from the global installation")
	rootCmd.Flags().BoolVar(&flagConfirm, "confirm", false, "skip the interactive confirmation prompt")
	rootCmd.Flags().BoolVar(&flagInfo, "info", false, "show environment information and exit")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be removed without removing")
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "treat any failed removal batch as overall failure")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pipsweep/config.yaml)")
	rootCmd.Flags().StringVar(&policyFile, "policy", "", "yaml policy overlay with extra protected packages")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.MarkFlagsMutuallyExclusive("local", "global")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !flagInfo && !flagDryRun && !flagLocal && !flagGlobal {
		return cmd.Help()
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	switch {
	case flagInfo:
		return app.runInfo()
	case flagDryRun:
		return app.runDryRun()
	case flagLocal:
		return app.runCleanup(cleanupLocal)
	default:
		return app.runCleanup(cleanupGlobal)
	}
}

// Execute runs the root command and maps ExitError codes onto the process
// exit status. Called once from main.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
