/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// value field names recognized as leaf markers, in priority order.
// "$value" is the DTCG dialect, "value" the Token Studio dialect.
var valueKeys = []string{"$value", "value"}

// Parse builds a typed token tree from a parsed JSON/YAML document.
// The root must be an object; anything else is a malformed document and
// raises ErrMalformedRoot rather than producing diagnostics, since a
// non-object root indicates a setup mistake, not a data-quality issue.
func Parse(raw any) (*Group, error) {
	rootMap, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedRoot, raw)
	}
	return parseGroup(rootMap, ""), nil
}

func parseGroup(data map[string]any, inheritedType string) *Group {
	group := NewGroup()

	// Group-level $type is inherited by child tokens that don't
	// declare their own.
	currentType := inheritedType
	if groupType, ok := data["$type"].(string); ok {
		currentType = groupType
	}

	for key, value := range data {
		if len(key) > 0 && key[0] == '$' {
			continue
		}
		group.Children[key] = parseNode(value, currentType)
	}

	return group
}

func parseNode(value any, inheritedType string) Node {
	valueMap, ok := value.(map[string]any)
	if !ok {
		// Bare scalars and arrays are leaves with no declared type.
		return &Leaf{Value: value, Type: inheritedType}
	}

	if leafValue, ok := leafValueOf(valueMap); ok {
		leaf := &Leaf{Value: leafValue, Type: inheritedType}
		if t, ok := stringField(valueMap, "$type", "type"); ok {
			leaf.Type = t
		}
		if d, ok := stringField(valueMap, "$description", "description"); ok {
			leaf.Description = d
		}
		return leaf
	}

	return parseGroup(valueMap, inheritedType)
}

// leafValueOf reports whether the map is a token leaf, returning its
// value field. Presence of the field is the leaf marker, even when the
// value is nil.
func leafValueOf(m map[string]any) (any, bool) {
	for _, key := range valueKeys {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

// ToMap converts the tree back to a plain map, suitable for JSON or
// YAML serialization. Leaves with no type or description collapse to
// their bare value; others serialize as {value, type?, description?}.
func (g *Group) ToMap() map[string]any {
	result := make(map[string]any, len(g.Children))
	for key, child := range g.Children {
		switch c := child.(type) {
		case *Leaf:
			if c.Type == "" && c.Description == "" {
				result[key] = cloneValue(c.Value)
				continue
			}
			leaf := map[string]any{"value": cloneValue(c.Value)}
			if c.Type != "" {
				leaf["type"] = c.Type
			}
			if c.Description != "" {
				leaf["description"] = c.Description
			}
			result[key] = leaf
		case *Group:
			result[key] = c.ToMap()
		}
	}
	return result
}
