/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform applies named value and name transforms, and named
// predicate filters, over a resolved token tree to produce platform
// specific variants.
package transform

import (
	"fmt"
	"sort"

	"bennypowers.dev/tsinor/token"
)

// Token is the per-leaf shape seen by matchers, transformers, and
// filter predicates during a tree walk.
type Token struct {
	// Name is the leaf's key in its parent group.
	Name string

	// Value is the leaf's (resolved) value.
	Value any

	// Type is the leaf's semantic type, if declared.
	Type string

	// Path is the full path from the root, including Name.
	Path []string
}

// Kind distinguishes value transforms from name transforms.
type Kind int

const (
	// KindValue transforms rewrite the token's value.
	KindValue Kind = iota

	// KindName transforms rewrite the token's name.
	KindName
)

// Transform is a named, conditionally-applied token rewrite.
type Transform struct {
	// Name identifies the transform (e.g. "size/rem").
	Name string

	// Kind selects whether Apply returns a new value or a new name.
	Kind Kind

	// Matcher gates application. A nil Matcher always fires.
	Matcher func(Token) bool

	// Apply returns the new value (KindValue) or new name (KindName).
	Apply func(Token) any
}

// DefaultTransforms is the transform set applied when none are
// configured.
var DefaultTransforms = []string{"color/hex", "size/rem", "name/kebab"}

// Lookup returns the registered transform by name.
func Lookup(name string) (Transform, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns all registered transform names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps transform names to transforms, in order. An unknown
// name is a configuration error, distinct from token-content errors.
func Resolve(names []string) ([]Transform, error) {
	transforms := make([]Transform, 0, len(names))
	for _, name := range names {
		t, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", token.ErrUnknownTransform, name)
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

// Apply applies the named transforms, in order, to every leaf of a
// copy of the tree. Each transform fires only when its matcher accepts
// the token. The input tree is never mutated.
func Apply(tree *token.Group, names []string) (*token.Group, error) {
	transforms, err := Resolve(names)
	if err != nil {
		return nil, err
	}
	result := tree.Clone()
	applyGroup(result, nil, transforms)
	return result, nil
}

func applyGroup(group *token.Group, path []string, transforms []Transform) {
	for _, key := range group.Keys() {
		childPath := append(path[:len(path):len(path)], key)
		switch child := group.Children[key].(type) {
		case *token.Leaf:
			tok := Token{Name: key, Value: child.Value, Type: child.Type, Path: childPath}
			for _, t := range transforms {
				if t.Matcher != nil && !t.Matcher(tok) {
					continue
				}
				switch t.Kind {
				case KindValue:
					tok.Value = t.Apply(tok)
				case KindName:
					if name, ok := t.Apply(tok).(string); ok && name != "" {
						tok.Name = name
					}
				}
			}
			child.Value = tok.Value
			if tok.Name != key {
				delete(group.Children, key)
				group.Children[tok.Name] = child
			}
		case *token.Group:
			applyGroup(child, childPath, transforms)
		}
	}
}
