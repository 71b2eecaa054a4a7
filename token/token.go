/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the typed design token tree.
//
// A token document is a tree of groups and leaves. Whether a node is a
// leaf is decided once, at parse time, by the presence of a value field
// ("$value" in DTCG dialect, "value" in Token Studio dialect), rather
// than re-inferred on every walk.
package token

import (
	"sort"
	"strings"
)

// Node is a node in a token tree: either a *Leaf or a *Group.
type Node interface {
	node()
}

// Leaf is a single design token.
type Leaf struct {
	// Value is the token value: a literal (string/number/array),
	// a composite object, or a reference string like "{color.primary.500}".
	Value any

	// Type is the token's semantic type (color, dimension, etc.), if declared.
	Type string

	// Description is optional documentation for the token.
	Description string
}

func (*Leaf) node() {}

// Group is a collection of named tokens and nested groups.
type Group struct {
	// Children maps key to child node.
	Children map[string]Node
}

func (*Group) node() {}

// NewGroup creates a new empty token group.
func NewGroup() *Group {
	return &Group{Children: make(map[string]Node)}
}

// Keys returns the group's child keys in sorted order, for deterministic walks.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.Children))
	for k := range g.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup descends the tree by path segments. It returns the node at the
// path and true, or nil and false if any segment is missing.
func (g *Group) Lookup(path []string) (Node, bool) {
	var current Node = g
	for _, segment := range path {
		group, ok := current.(*Group)
		if !ok {
			return nil, false
		}
		child, ok := group.Children[segment]
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// LookupPath is Lookup over a dot-separated path string.
func (g *Group) LookupPath(path string) (Node, bool) {
	return g.Lookup(strings.Split(path, "."))
}

// Group returns the child group at the given key, or nil if the key is
// absent or names a leaf.
func (g *Group) Group(key string) *Group {
	child, ok := g.Children[key].(*Group)
	if !ok {
		return nil
	}
	return child
}

// Walk visits every leaf in the tree in sorted key order, passing the
// path segments from the root.
func (g *Group) Walk(fn func(path []string, leaf *Leaf)) {
	g.walk(nil, fn)
}

func (g *Group) walk(path []string, fn func(path []string, leaf *Leaf)) {
	for _, key := range g.Keys() {
		childPath := append(path[:len(path):len(path)], key)
		switch child := g.Children[key].(type) {
		case *Leaf:
			fn(childPath, child)
		case *Group:
			child.walk(childPath, fn)
		}
	}
}

// CountLeaves returns the number of leaf tokens in the tree.
func (g *Group) CountLeaves() int {
	count := 0
	g.Walk(func([]string, *Leaf) { count++ })
	return count
}

// Clone returns a deep copy of the group. Pipeline stages copy before
// they transform, so no stage aliases another stage's tree.
func (g *Group) Clone() *Group {
	clone := NewGroup()
	for key, child := range g.Children {
		switch c := child.(type) {
		case *Leaf:
			clone.Children[key] = c.Clone()
		case *Group:
			clone.Children[key] = c.Clone()
		}
	}
	return clone
}

// Clone returns a deep copy of the leaf, including composite values.
func (l *Leaf) Clone() *Leaf {
	return &Leaf{
		Value:       cloneValue(l.Value),
		Type:        l.Type,
		Description: l.Description,
	}
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		clone := make(map[string]any, len(x))
		for k, val := range x {
			clone[k] = cloneValue(val)
		}
		return clone
	case []any:
		clone := make([]any, len(x))
		for i, val := range x {
			clone[i] = cloneValue(val)
		}
		return clone
	default:
		return v
	}
}
