/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"fmt"
	"strings"

	"bennypowers.dev/tsinor/token"
)

// Filter is a named predicate over tokens.
type Filter struct {
	// Name identifies the filter.
	Name string

	// Predicate returns true to keep the token.
	Predicate func(Token) bool
}

// filterRegistry holds the built-in filters by name.
var filterRegistry = map[string]Filter{
	"color": {
		Name: "color",
		Predicate: func(t Token) bool {
			return isColorToken(t)
		},
	},
	"dimension": {
		Name: "dimension",
		Predicate: func(t Token) bool {
			if t.Type == "dimension" {
				return true
			}
			s, ok := t.Value.(string)
			return ok && pxPattern.MatchString(s)
		},
	},
	"public": {
		Name: "public",
		Predicate: func(t Token) bool {
			for _, segment := range t.Path {
				if strings.HasPrefix(segment, "_") || strings.HasPrefix(segment, ".") {
					return false
				}
			}
			return true
		},
	},
	"resolved": {
		Name: "resolved",
		Predicate: func(t Token) bool {
			return !token.IsReference(t.Value)
		},
	},
}

// LookupFilter returns the registered filter by name.
func LookupFilter(name string) (Filter, bool) {
	f, ok := filterRegistry[name]
	return f, ok
}

// ResolveFilters maps filter names to filters. An unknown name is a
// configuration error.
func ResolveFilters(names []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(names))
	for _, name := range names {
		f, ok := filterRegistry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", token.ErrUnknownFilter, name)
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// ApplyFilters rebuilds a copy of the tree keeping only leaves that
// pass ALL supplied filters. Surviving branches keep their original
// nesting; branches left empty are pruned.
func ApplyFilters(tree *token.Group, filters []Filter) *token.Group {
	return filterGroup(tree, nil, filters)
}

// ApplyNamedFilters is ApplyFilters over registered filter names.
func ApplyNamedFilters(tree *token.Group, names []string) (*token.Group, error) {
	filters, err := ResolveFilters(names)
	if err != nil {
		return nil, err
	}
	return ApplyFilters(tree, filters), nil
}

func filterGroup(group *token.Group, path []string, filters []Filter) *token.Group {
	result := token.NewGroup()
	for _, key := range group.Keys() {
		childPath := append(path[:len(path):len(path)], key)
		switch child := group.Children[key].(type) {
		case *token.Leaf:
			tok := Token{Name: key, Value: child.Value, Type: child.Type, Path: childPath}
			if passesAll(tok, filters) {
				result.Children[key] = child.Clone()
			}
		case *token.Group:
			filtered := filterGroup(child, childPath, filters)
			if len(filtered.Children) > 0 {
				result.Children[key] = filtered
			}
		}
	}
	return result
}

func passesAll(tok Token, filters []Filter) bool {
	for _, f := range filters {
		if !f.Predicate(tok) {
			return false
		}
	}
	return true
}
