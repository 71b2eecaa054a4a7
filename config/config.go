/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration for the token pipeline.
//
// A Config is an immutable value handed to each component at
// construction; components never fetch configuration from ambient
// state. Missing fields mean "use the built-in default".
package config

import (
	"fmt"

	"bennypowers.dev/tsinor/token"
	"bennypowers.dev/tsinor/transform"
)

// Config is the pipeline configuration.
type Config struct {
	// Source is the token source file path. Empty means auto-discover
	// from the conventional file names.
	Source string `yaml:"source" json:"source"`

	// RequiredCategories must be present and non-empty in input.
	// Default: colors.
	RequiredCategories []string `yaml:"requiredCategories" json:"requiredCategories"`

	// OptionalCategories warn when absent. Default: spacing, typography.
	OptionalCategories []string `yaml:"optionalCategories" json:"optionalCategories"`

	// Transforms are applied in order to the resolved tree.
	// Default: color/hex, size/rem, name/kebab.
	Transforms []string `yaml:"transforms" json:"transforms"`

	// Filters are ANDed over the resolved tree before transforms.
	Filters []string `yaml:"filters" json:"filters"`

	// Platforms selects which platform variants to produce.
	Platforms []string `yaml:"platforms" json:"platforms"`

	// PlatformTransforms overrides the built-in per-platform
	// transform lists, keyed by platform name.
	PlatformTransforms map[string][]string `yaml:"platformTransforms" json:"platformTransforms"`

	// Strict promotes unresolved references from silent degradation
	// to warnings.
	Strict bool `yaml:"strict" json:"strict"`

	// Force lets generation proceed despite validation errors.
	Force bool `yaml:"force" json:"force"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// TransformNames returns the configured transforms, or the default set.
func (c *Config) TransformNames() []string {
	if len(c.Transforms) == 0 {
		return transform.DefaultTransforms
	}
	return c.Transforms
}

// TransformsForPlatform returns the transform list for a platform:
// the config override when present, the built-in list otherwise.
func (c *Config) TransformsForPlatform(platform string) []string {
	if names, ok := c.PlatformTransforms[platform]; ok {
		return names
	}
	return transform.PlatformTransforms(platform)
}

// Validate checks the configuration schema. Violations are reported
// immediately and distinctly from token-content errors: they indicate
// a setup mistake, not a data-quality issue.
func (c *Config) Validate() error {
	for _, name := range c.Transforms {
		if _, ok := transform.Lookup(name); !ok {
			return fmt.Errorf("%w: transforms: %w: %q", token.ErrInvalidConfig, token.ErrUnknownTransform, name)
		}
	}
	for _, name := range c.Filters {
		if _, ok := transform.LookupFilter(name); !ok {
			return fmt.Errorf("%w: filters: %w: %q", token.ErrInvalidConfig, token.ErrUnknownFilter, name)
		}
	}
	for platform, names := range c.PlatformTransforms {
		for _, name := range names {
			if _, ok := transform.Lookup(name); !ok {
				return fmt.Errorf("%w: platformTransforms.%s: %w: %q", token.ErrInvalidConfig, platform, token.ErrUnknownTransform, name)
			}
		}
	}
	return nil
}
