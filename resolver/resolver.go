/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
//
// Resolution never fails the pipeline: a reference that cannot be
// resolved (missing path, or a cycle) keeps its original braced string
// so a single broken reference does not abort everything downstream.
// Unresolved references are recorded on the Resolver and logged in
// verbose mode; callers opting into strict mode may surface them as
// warnings.
package resolver

import (
	"bennypowers.dev/tsinor/internal/logger"
	"bennypowers.dev/tsinor/token"
)

// Resolver resolves token references against a fixed raw tree.
//
// References always resolve against the original raw tree, never a
// partially-resolved one, so earlier failed resolutions within a run
// cannot compound. A Resolver is not safe for concurrent use.
type Resolver struct {
	root       *token.Group
	unresolved []string
}

// New creates a Resolver over the given raw tree.
func New(root *token.Group) *Resolver {
	return &Resolver{root: root}
}

// Unresolved returns the reference strings that failed to resolve, in
// the order they were encountered.
func (r *Resolver) Unresolved() []string {
	return r.unresolved
}

// ResolveValue resolves a single value. Reference strings of the form
// "{dot.separated.path}" are dereferenced recursively until a literal
// is reached; chains of any depth are supported. Composite values
// (objects, arrays) are resolved element-wise. Non-reference values
// are returned unchanged.
func (r *Resolver) ResolveValue(value any) any {
	return r.resolve(value, make(map[string]bool))
}

// ResolveTree deep-copies the tree and resolves every leaf value.
// The input is never mutated, and resolving an already-resolved tree
// yields an identical tree.
func (r *Resolver) ResolveTree(tree *token.Group) *token.Group {
	resolved := tree.Clone()
	r.resolveGroup(resolved)
	return resolved
}

func (r *Resolver) resolveGroup(group *token.Group) {
	for _, key := range group.Keys() {
		switch child := group.Children[key].(type) {
		case *token.Leaf:
			child.Value = r.ResolveValue(child.Value)
		case *token.Group:
			r.resolveGroup(child)
		}
	}
}

// resolve walks reference chains. inProgress tracks the paths under
// resolution in this call; revisiting one is a cycle, and resolution
// fails closed by retaining the original reference string.
func (r *Resolver) resolve(value any, inProgress map[string]bool) any {
	switch v := value.(type) {
	case string:
		path, ok := token.ReferencePath(v)
		if !ok {
			return v
		}
		if inProgress[path] {
			r.degrade(v, token.ErrCircularReference)
			return v
		}
		inProgress[path] = true
		defer delete(inProgress, path)

		node, found := r.root.Lookup(token.SplitPath(path))
		if !found {
			r.degrade(v, token.ErrUnresolvedReference)
			return v
		}
		switch n := node.(type) {
		case *token.Leaf:
			// The referenced value may itself be a reference.
			return r.resolve(n.Value, inProgress)
		case *token.Group:
			// A reference to a group yields the group's subtree
			// as a plain map, with its own values resolved.
			return r.resolveSubtree(n, inProgress)
		}
		return v

	case map[string]any:
		resolved := make(map[string]any, len(v))
		for key, val := range v {
			resolved[key] = r.resolve(val, inProgress)
		}
		return resolved

	case []any:
		resolved := make([]any, len(v))
		for i, val := range v {
			resolved[i] = r.resolve(val, inProgress)
		}
		return resolved

	default:
		return v
	}
}

func (r *Resolver) resolveSubtree(group *token.Group, inProgress map[string]bool) map[string]any {
	result := make(map[string]any, len(group.Children))
	for key, child := range group.Children {
		switch c := child.(type) {
		case *token.Leaf:
			result[key] = r.resolve(c.Value, inProgress)
		case *token.Group:
			result[key] = r.resolveSubtree(c, inProgress)
		}
	}
	return result
}

func (r *Resolver) degrade(ref string, reason error) {
	r.unresolved = append(r.unresolved, ref)
	logger.Debug("unresolved reference %s: %v", ref, reason)
}

// Resolve is a convenience for one-shot whole-tree resolution.
func Resolve(tree *token.Group) *token.Group {
	return New(tree).ResolveTree(tree)
}
