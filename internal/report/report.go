// Package report renders inventory analysis and environment summaries for the
// terminal. Output is purely presentational; nothing here is parsed back.
package report

import (
	"fmt"
	"io"
	"sort"
)

// Analysis writes the package analysis: totals, the removable list, and the
// installed-and-protected list, each with versions. An empty removable set is
// reported affirmatively rather than as an empty table.
func Analysis(w io.Writer, inventory map[string]string, removable []string, protected map[string]struct{}) {
	fmt.Fprintln(w, TitleStyle.Render("Package analysis"))
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("Total installed packages:"), len(inventory))
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("Protected packages (kept):"), len(inventory)-len(removable))
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("Removable packages:"), len(removable))

	if len(removable) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SuccessStyle.Render("No non-essential packages found to remove."))
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, WarningStyle.Render("Packages to be removed:"))
		for _, name := range removable {
			fmt.Fprintf(w, "  - %s (%s)\n", name, versionOf(inventory, name))
		}
	}

	kept := protectedInstalled(inventory, protected)
	if len(kept) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SuccessStyle.Render("Protected packages (kept):"))
		for _, name := range kept {
			fmt.Fprintf(w, "  - %s (%s)\n", name, versionOf(inventory, name))
		}
	}
	fmt.Fprintln(w)
}

// EnvInfo is the data behind the --info view.
type EnvInfo struct {
	VirtualEnv    bool
	Prefix        string
	Python        string
	PipVersion    string
	TotalPackages int
}

// EnvironmentInfo writes the environment summary.
func EnvironmentInfo(w io.Writer, info EnvInfo) {
	fmt.Fprintln(w, TitleStyle.Render("Environment information"))

	venv := "no"
	if info.VirtualEnv {
		venv = "yes"
	}
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Virtual environment:"), venv)
	if info.VirtualEnv && info.Prefix != "" {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Venv path:"), info.Prefix)
	}
	if info.Python != "" {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Python executable:"), info.Python)
	}
	if info.PipVersion != "" {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("Pip version:"), info.PipVersion)
	}
	fmt.Fprintf(w, "  %s %d\n", labelStyle.Render("Total installed packages:"), info.TotalPackages)
}

// protectedInstalled returns the sorted inventory names that are protected.
func protectedInstalled(inventory map[string]string, protected map[string]struct{}) []string {
	var names []string
	for name := range inventory {
		if _, ok := protected[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func versionOf(inventory map[string]string, name string) string {
	if v, ok := inventory[name]; ok && v != "" {
		return v
	}
	return "unknown"
}
