// Package compiler declares the set of solc versions and optimizer settings a project builds with.
package compiler

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// DefaultRuns is the optimizer run count used by solc when none is given.
const DefaultRuns = 200

var ErrInvalidSetting = errors.New("invalid compiler setting")

type Optimizer struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	Runs    int  `yaml:"runs" json:"runs"`
}

type Settings struct {
	Optimizer Optimizer `yaml:"optimizer" json:"optimizer"`
}

// Spec is one compiler version the build system may select for a source file.
type Spec struct {
	Version  string   `yaml:"version" json:"version"`
	Settings Settings `yaml:"settings" json:"settings"`
}

// Builder accumulates compiler specs in declaration order.
type Builder struct {
	specs []Spec
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a compiler version with the given optimizer settings.
func (b *Builder) Add(version string, optimizerEnabled bool, runs int) *Builder {
	return b.AddSpec(Spec{
		Version: version,
		Settings: Settings{
			Optimizer: Optimizer{Enabled: optimizerEnabled, Runs: runs},
		},
	})
}

func (b *Builder) AddSpec(spec Spec) *Builder {
	b.specs = append(b.specs, spec)
	return b
}

// Build validates every spec and returns them in the order they were added.
func (b *Builder) Build() ([]Spec, error) {
	if len(b.specs) == 0 {
		return nil, fmt.Errorf("%w: at least one compiler version is required", ErrInvalidSetting)
	}

	seen := make(map[string]bool, len(b.specs))
	out := make([]Spec, 0, len(b.specs))
	for _, spec := range b.specs {
		if err := Validate(spec); err != nil {
			return nil, err
		}
		if seen[spec.Version] {
			return nil, fmt.Errorf("%w: version %s declared more than once", ErrInvalidSetting, spec.Version)
		}
		seen[spec.Version] = true
		out = append(out, spec)
	}
	return out, nil
}

// Validate checks a single spec: a full MAJOR.MINOR.PATCH version and a positive run count.
func Validate(spec Spec) error {
	if spec.Version == "" {
		return fmt.Errorf("%w: version is empty", ErrInvalidSetting)
	}
	v := "v" + spec.Version
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return fmt.Errorf("%w: version %q is not of the form MAJOR.MINOR.PATCH", ErrInvalidSetting, spec.Version)
	}
	if spec.Settings.Optimizer.Runs <= 0 {
		return fmt.Errorf("%w: version %s: optimizer runs must be a positive integer, got %d",
			ErrInvalidSetting, spec.Version, spec.Settings.Optimizer.Runs)
	}
	return nil
}

// Latest returns the highest version in specs.
func Latest(specs []Spec) (Spec, bool) {
	if len(specs) == 0 {
		return Spec{}, false
	}
	latest := specs[0]
	for _, s := range specs[1:] {
		if semver.Compare("v"+s.Version, "v"+latest.Version) > 0 {
			latest = s
		}
	}
	return latest, true
}
