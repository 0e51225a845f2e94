package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is an optional per-project policy overlay, e.g. .pipsweep.yaml:
//
//	protect:
//	  - my-internal-tool
//	protect_prefixes:
//	  - mycorp-
//
// Names listed here are added to the static allow-list; prefixes become
// supplemental inventory sources.
type File struct {
	Protect         []string `yaml:"protect"`
	ProtectPrefixes []string `yaml:"protect_prefixes"`
}

// LoadFile reads and parses a policy overlay file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return &f, nil
}
