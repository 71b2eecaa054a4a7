/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/tsinor/token"
)

// DependencyGraph is a directed graph of token reference dependencies,
// keyed by dot-separated token path. It exists for diagnostics: the
// resolver itself fails closed on cycles, but the graph can name the
// offending path for the user up front.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds a dependency graph from a token tree.
func BuildDependencyGraph(tree *token.Group) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	tree.Walk(func(path []string, leaf *token.Leaf) {
		name := strings.Join(path, ".")
		graph.nodes[name] = true
		for _, dep := range extractDependencies(leaf.Value) {
			graph.dependencies[name] = append(graph.dependencies[name], dep)
			graph.dependents[dep] = append(graph.dependents[dep], name)
		}
	})

	return graph
}

// extractDependencies returns the token paths the value references,
// including references nested in composite values.
func extractDependencies(value any) []string {
	var deps []string
	switch v := value.(type) {
	case string:
		if path, ok := token.ReferencePath(v); ok {
			deps = append(deps, path)
		}
	case map[string]any:
		for _, val := range v {
			deps = append(deps, extractDependencies(val)...)
		}
	case []any:
		for _, val := range v {
			deps = append(deps, extractDependencies(val)...)
		}
	}
	return deps
}

// Dependencies returns the token paths the given token depends on.
func (g *DependencyGraph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the token paths that depend on the given token.
func (g *DependencyGraph) Dependents(path string) []string {
	if deps, ok := g.dependents[path]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns a cycle path if one exists, or nil.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		// Edges to undeclared paths are broken references, not cycles.
		if !g.nodes[dep] {
			continue
		}
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}
