// Package config loads the optional cwlink profile: default flag values and
// user-defined metric families. Profiles are YAML, validated against an
// embedded CUE schema before anything builds a tree from them.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource string

// Config is a parsed profile.
type Config struct {
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	Families []Family `yaml:"families" json:"families,omitempty"`
}

// Defaults supplies values for flags the command line omits.
type Defaults struct {
	Region string `yaml:"region" json:"region,omitempty"`
	Period string `yaml:"period" json:"period,omitempty"`
}

// Family is a user-defined metric family: one namespace, one dimension key
// and a set of metric names graphed per resource.
type Family struct {
	Name      string   `yaml:"name" json:"name"`
	Namespace string   `yaml:"namespace" json:"namespace"`
	Dimension string   `yaml:"dimension" json:"dimension"`
	Stat      string   `yaml:"stat" json:"stat"`
	Metrics   []string `yaml:"metrics" json:"metrics"`
	Visible   bool     `yaml:"visible" json:"visible,omitempty"`
	Math      *Math    `yaml:"math" json:"math,omitempty"`
}

// Math is an optional metric-math template. The placeholders {id},
// {resource} and {metric} expand per generated series.
type Math struct {
	Expression string `yaml:"expression" json:"expression"`
	Label      string `yaml:"label" json:"label"`
}

// Load reads and validates a profile file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &cfg, nil
}

// FamilyByName returns the named user-defined family.
func (c *Config) FamilyByName(name string) (Family, bool) {
	for _, f := range c.Families {
		if f.Name == name {
			return f, true
		}
	}
	return Family{}, false
}

// validate unifies the decoded profile with the embedded #Config schema.
func validate(cfg *Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling profile schema: %w", err)
	}
	unified := schema.Unify(ctx.Encode(cfg))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}
