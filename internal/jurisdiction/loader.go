package jurisdiction

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the YAML shape for jurisdiction profile overrides. Profiles
// are keyed by two-letter code and replace the built-in profile wholesale.
type overrideFile struct {
	Profiles map[string]*Profile `yaml:"profiles"`
}

// LoadOverrides reads a YAML override file and returns a registry with the
// listed profiles replacing (or extending) the built-in 2024 tables. The
// merged registry is re-validated, so a malformed override fails at load.
func LoadOverrides(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jurisdiction overrides: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse jurisdiction overrides: %w", err)
	}

	merged := make(map[string]*Profile)
	for _, p := range provinces2024() {
		merged[p.Code] = p
	}
	for code, p := range file.Profiles {
		if p == nil {
			return nil, fmt.Errorf("jurisdiction override %q is empty", code)
		}
		p.Code = code
		merged[code] = p
	}

	profiles := make([]*Profile, 0, len(merged))
	for _, p := range merged {
		profiles = append(profiles, p)
	}
	return New(federal2024(), payroll2024(), benefits2024(), profiles)
}
