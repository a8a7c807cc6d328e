// File: bench/config.go
// Author: momentics <momentics@gmail.com>
//
// Harness profiles: defaults, YAML loading, and validation.

package bench

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-pool/api"
)

// Profile parametrizes one harness run.
type Profile struct {
	Name       string   `yaml:"name"`
	Capacity   int      `yaml:"capacity"`
	Iterations int      `yaml:"iterations"`
	SizeClass  string   `yaml:"size_class"`
	Strategies []string `yaml:"strategies"`

	// Pool tuning applied to every pool strategy in the run.
	TraceDepth int  `yaml:"trace_depth"`
	LockMemory bool `yaml:"lock_memory"`
	Prefault   bool `yaml:"prefault"`
}

// DefaultProfile mirrors the classic comparison: a thousand cycles over
// 1 MiB elements with every strategy enabled.
func DefaultProfile() Profile {
	return Profile{
		Name:       "default",
		Capacity:   1000,
		Iterations: 1000,
		SizeClass:  Size1MiB,
		Strategies: AllStrategies(),
	}
}

// LoadProfile reads a YAML profile from path. Missing fields inherit the
// defaults, so a file may override only what it cares about.
func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p := DefaultProfile()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate rejects profiles the runner cannot execute.
func (p Profile) Validate() error {
	if p.Name == "" {
		return api.NewError(api.ErrCodeInvalidArgument, "profile name must not be empty")
	}
	if p.Capacity < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "profile capacity must be positive").
			WithContext("capacity", p.Capacity)
	}
	if p.Iterations < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "profile iterations must be positive").
			WithContext("iterations", p.Iterations)
	}
	if _, ok := sizeClassBytes[p.SizeClass]; !ok {
		return api.NewError(api.ErrCodeInvalidArgument, "unknown size class").
			WithContext("size_class", p.SizeClass)
	}
	if len(p.Strategies) == 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "profile needs at least one strategy")
	}
	for _, s := range p.Strategies {
		if !knownStrategies[s] {
			return api.NewError(api.ErrCodeInvalidArgument, "unknown strategy").
				WithContext("strategy", s)
		}
	}
	return nil
}
