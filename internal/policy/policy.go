// Package policy decides which installed packages must never be removed and
// derives the removable set from an inventory snapshot.
package policy

import (
	"sort"
	"strings"
)

// DefaultEssential returns the built-in allow-list of foundational packages:
// pip itself, build backends, pip's core transitive dependencies, and the
// SSL/HTTP primitives most environments silently depend on.
func DefaultEssential() []string {
	return []string{
		"pip", "setuptools", "wheel", "distlib", "packaging", "pyobjc-core",
		"certifi", "urllib3", "charset-normalizer", "idna", "requests",
		"six", "python-dateutil", "pytz", "platformdirs", "virtualenv",
	}
}

// Source supplies additional protected package names discovered at runtime,
// e.g. platform GUI bindings found by prefix in the live inventory. A source
// that finds nothing (or fails) leaves the static protection unchanged.
type Source func() []string

// Policy combines an immutable static allow-list with supplemental sources.
type Policy struct {
	static  []string
	sources []Source
}

// New builds a policy from an explicit static allow-list plus optional
// supplemental sources. The list is copied so later mutation of the caller's
// slice cannot change the policy.
func New(static []string, sources ...Source) *Policy {
	return &Policy{
		static:  append([]string{}, static...),
		sources: sources,
	}
}

// Protected returns the union of the static list and every supplemental
// source, case-normalized. Sources are queried once per call.
func (p *Policy) Protected() map[string]struct{} {
	protected := make(map[string]struct{}, len(p.static))
	for _, name := range p.static {
		protected[strings.ToLower(name)] = struct{}{}
	}
	for _, source := range p.sources {
		for _, name := range source() {
			protected[strings.ToLower(name)] = struct{}{}
		}
	}
	return protected
}

// Removable returns the sorted names present in inventory but absent from
// protected. Inventory keys are matched case-insensitively; the result is
// duplicate-free. An empty inventory yields an empty result.
func Removable(inventory map[string]string, protected map[string]struct{}) []string {
	removable := make([]string, 0, len(inventory))
	for name := range inventory {
		if _, ok := protected[strings.ToLower(name)]; !ok {
			removable = append(removable, name)
		}
	}
	sort.Strings(removable)
	return removable
}
