/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	tsinorfs "bennypowers.dev/tsinor/fs"
	"bennypowers.dev/tsinor/token"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tsinor"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// sourcePatterns are the glob patterns tried, in order, when no token
// source is configured. They match the common token file conventions.
var sourcePatterns = []string{
	"tokens.json",
	"tokens.yaml",
	"tokens.yml",
	"design-tokens.json",
	"design-tokens.yaml",
	"**/*.tokens.json",
	"**/*.tokens.yaml",
}

// Load searches for .config/tsinor.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tsinorfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}

		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found or unreadable.
func LoadOrDefault(filesystem tsinorfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ResolveSource returns the token source path: the configured Source
// when set, otherwise the first match of the conventional patterns.
// No match is a missing token source, which halts the pipeline.
func (c *Config) ResolveSource(filesystem tsinorfs.FileSystem, rootDir string) (string, error) {
	if c.Source != "" {
		path := c.Source
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		if !containsGlob(path) {
			if !filesystem.Exists(path) {
				return "", token.ErrMissingSource
			}
			return path, nil
		}
		matches, err := expandGlob(filesystem, path)
		if err != nil {
			return "", err
		}
		if len(matches) == 0 {
			return "", token.ErrMissingSource
		}
		return matches[0], nil
	}

	for _, pattern := range sourcePatterns {
		matches, err := expandGlob(filesystem, filepath.Join(rootDir, pattern))
		if err != nil {
			continue
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}

	return "", token.ErrMissingSource
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem tsinorfs.FileSystem, pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		if filesystem.Exists(pattern) {
			return []string{pattern}, nil
		}
		return nil, nil
	}

	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matchDoublestar(relPattern, relPath) {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}

// matchDoublestar provides ** glob matching using the doublestar library.
func matchDoublestar(pattern, path string) bool {
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
