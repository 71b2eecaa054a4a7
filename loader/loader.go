/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader reads and parses token source files.
//
// The loader is the pipeline's only asynchronous boundary. Concurrent
// Load calls coalesce: if a load is requested while one is in flight,
// the caller waits for the in-flight load instead of starting a second
// one. The guard is process-wide loaded-state, not per-path.
package loader

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	tsinorfs "bennypowers.dev/tsinor/fs"
	"bennypowers.dev/tsinor/token"
)

// Loader loads token documents from a filesystem.
type Loader struct {
	filesystem tsinorfs.FileSystem
	group      singleflight.Group
}

// New creates a Loader over the given filesystem.
func New(filesystem tsinorfs.FileSystem) *Loader {
	return &Loader{filesystem: filesystem}
}

// Load reads and parses the token source at path. Every call re-reads
// the source: the file may change between runs, so no parsed tree is
// cached beyond the single-flight window.
func (l *Loader) Load(path string) (*token.Group, error) {
	v, err, _ := l.group.Do("load", func() (any, error) {
		return l.load(path)
	})
	if err != nil {
		return nil, err
	}
	return v.(*token.Group), nil
}

func (l *Loader) load(path string) (*token.Group, error) {
	if !l.filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: %s", token.ErrMissingSource, path)
	}
	data, err := l.filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token source %s: %w", path, err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing token source %s: %w", path, err)
	}
	return tree, nil
}

// Parse parses JSON (with comments) or YAML token data into a typed
// token tree.
func Parse(data []byte) (*token.Group, error) {
	var raw any

	if isLikelyJSON(data) {
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		var yamlRaw any
		if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		raw = normalizeMap(yamlRaw)
	}

	return token.Parse(raw)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any. YAML with numeric keys (like "500:") creates
// map[interface{}]interface{}, which must be normalized for our
// string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
