/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalizer produces the canonical token category model.
//
// Token documents arrive in several dialects: flat category maps,
// core/semantic/component tiers, singular category names ("color"),
// and Token Studio nested-with-value trees. The normalizer locates
// each category through a priority-ordered alias list and emits one
// fixed-shape Model so downstream generators never null-check top
// level categories.
package normalizer

import (
	"strconv"
	"strings"

	"bennypowers.dev/tsinor/token"
)

// Model is the canonical category model. Every field is always
// non-nil: populated from input, or filled with the documented default
// set when the category is wholly absent from input.
type Model struct {
	// Colors preserves two-level nesting: category name to shade to value.
	Colors map[string]map[string]string `json:"colors"`

	Spacing      map[string]string `json:"spacing"`
	Typography   Typography        `json:"typography"`
	BorderRadius map[string]string `json:"borderRadius"`
	Sizing       map[string]string `json:"sizing"`
	Shadows      map[string]any    `json:"shadows"`
	Opacity      map[string]string `json:"opacity"`
	ZIndex       map[string]string `json:"zIndex"`
	Transitions  Transitions       `json:"transitions"`
	Breakpoints  map[string]string `json:"breakpoints"`

	// Semantic preserves the nested purpose-named alias trees.
	Semantic map[string]any `json:"semantic"`

	// Component maps component name to property name to value (or a
	// nested variant map), preserved for per-component generation.
	Component map[string]map[string]any `json:"component"`
}

// Typography holds the canonical typography sub-categories.
type Typography struct {
	FontFamily    map[string]string `json:"fontFamily"`
	FontSize      map[string]string `json:"fontSize"`
	FontWeight    map[string]string `json:"fontWeight"`
	LineHeight    map[string]string `json:"lineHeight"`
	LetterSpacing map[string]string `json:"letterSpacing"`
}

// Transitions holds the canonical transition sub-categories.
type Transitions struct {
	Duration map[string]string `json:"duration"`
	Easing   map[string]string `json:"easing"`
}

// categoryAliases lists the subtree locations tried per category, in
// priority order. Dotted entries descend through tiers.
var categoryAliases = map[string][]string{
	"spacing":      {"core.spacing", "spacing", "space"},
	"borderRadius": {"core.borderRadius", "borderRadius", "radii", "radius"},
	"sizing":       {"core.sizing", "sizing", "size"},
	"shadows":      {"core.shadows", "shadows", "boxShadow", "elevation"},
	"opacity":      {"core.opacity", "opacity"},
	"zIndex":       {"core.zIndex", "zIndex", "zIndices"},
	"breakpoints":  {"core.breakpoints", "breakpoints", "screens"},
	"transitions":  {"core.transitions", "transitions", "motion"},
	"typography":   {"core.typography", "typography"},
}

// Normalize builds the canonical Model from a resolved token tree.
func Normalize(tree *token.Group) *Model {
	m := &Model{
		Colors:       normalizeColors(tree),
		Spacing:      scalarCategory(tree, "spacing"),
		Typography:   normalizeTypography(tree),
		BorderRadius: scalarCategory(tree, "borderRadius"),
		Sizing:       scalarCategory(tree, "sizing"),
		Shadows:      normalizeShadows(tree),
		Opacity:      scalarCategory(tree, "opacity"),
		ZIndex:       scalarCategory(tree, "zIndex"),
		Transitions:  normalizeTransitions(tree),
		Breakpoints:  scalarCategory(tree, "breakpoints"),
		Semantic:     normalizeSemantic(tree),
		Component:    normalizeComponent(tree),
	}
	return m
}

// locate finds the first alias whose subtree exists and is a group.
func locate(tree *token.Group, category string) *token.Group {
	for _, alias := range categoryAliases[category] {
		if node, ok := tree.LookupPath(alias); ok {
			if group, ok := node.(*token.Group); ok {
				return group
			}
		}
	}
	return nil
}

// scalarCategory flattens a category into a single-level mapping with
// dash-joined path keys, or returns the documented default set when
// the category is wholly absent.
func scalarCategory(tree *token.Group, category string) map[string]string {
	group := locate(tree, category)
	if group == nil || len(group.Children) == 0 {
		return defaultsFor(category)
	}
	result := make(map[string]string)
	Flatten(group, result)
	return result
}

// Flatten recursively flattens a group into dst, joining nested keys
// with "-". Leaves flatten at their own key; groups recurse.
func Flatten(group *token.Group, dst map[string]string) {
	flattenInto(group, "", dst)
}

func flattenInto(group *token.Group, prefix string, dst map[string]string) {
	for _, key := range group.Keys() {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
		}
		switch child := group.Children[key].(type) {
		case *token.Leaf:
			dst[name] = Stringify(child.Value)
		case *token.Group:
			flattenInto(child, name, dst)
		}
	}
}

// normalizeColors preserves two levels: category to shade to value.
// core.colors is the base; semantic.colors merges over it; failing
// both, the "color" singular and "colors" top-level dialects apply.
func normalizeColors(tree *token.Group) map[string]map[string]string {
	result := make(map[string]map[string]string)

	merged := false
	for _, alias := range []string{"core.colors", "semantic.colors"} {
		if node, ok := tree.LookupPath(alias); ok {
			if group, ok := node.(*token.Group); ok {
				mergeColors(group, result)
				merged = true
			}
		}
	}
	if !merged {
		for _, alias := range []string{"color", "colors"} {
			if group := tree.Group(alias); group != nil {
				mergeColors(group, result)
				break
			}
		}
	}

	return result
}

func mergeColors(group *token.Group, dst map[string]map[string]string) {
	for _, key := range group.Keys() {
		switch child := group.Children[key].(type) {
		case *token.Leaf:
			// A color without shades maps to the DEFAULT shade.
			if dst[key] == nil {
				dst[key] = make(map[string]string)
			}
			dst[key]["DEFAULT"] = Stringify(child.Value)
		case *token.Group:
			if dst[key] == nil {
				dst[key] = make(map[string]string)
			}
			// Below the shade level, keys flatten with dashes.
			Flatten(child, dst[key])
		}
	}
}

// textDialectFields maps Token Studio "text" dialect sub-keys onto the
// canonical camelCase typography fields.
var textDialectFields = map[string]string{
	"font family":      "fontFamily",
	"font-family":      "fontFamily",
	"font-size":        "fontSize",
	"font size":        "fontSize",
	"font weight":      "fontWeight",
	"font-weight":      "fontWeight",
	"font line height": "lineHeight",
	"line height":      "lineHeight",
	"letter spacing":   "letterSpacing",
	"letter-spacing":   "letterSpacing",
}

func normalizeTypography(tree *token.Group) Typography {
	t := Typography{
		FontFamily:    make(map[string]string),
		FontSize:      make(map[string]string),
		FontWeight:    make(map[string]string),
		LineHeight:    make(map[string]string),
		LetterSpacing: make(map[string]string),
	}

	fields := map[string]map[string]string{
		"fontFamily":    t.FontFamily,
		"fontSize":      t.FontSize,
		"fontWeight":    t.FontWeight,
		"lineHeight":    t.LineHeight,
		"letterSpacing": t.LetterSpacing,
	}

	if group := locate(tree, "typography"); group != nil {
		for field, dst := range fields {
			if sub := group.Group(field); sub != nil {
				Flatten(sub, dst)
			}
		}
		return t
	}

	// Token Studio "text" top-level dialect with space-separated
	// sub-group names.
	if text := tree.Group("text"); text != nil {
		for _, key := range text.Keys() {
			field, ok := textDialectFields[strings.ToLower(key)]
			if !ok {
				continue
			}
			if sub := text.Group(key); sub != nil {
				Flatten(sub, fields[field])
			}
		}
	}

	return t
}

func normalizeShadows(tree *token.Group) map[string]any {
	group := locate(tree, "shadows")
	result := make(map[string]any)
	if group == nil {
		return result
	}
	for _, key := range group.Keys() {
		result[key] = plainValue(group.Children[key])
	}
	return result
}

func normalizeTransitions(tree *token.Group) Transitions {
	group := locate(tree, "transitions")
	if group == nil {
		return Transitions{
			Duration: defaultsFor("transitions.duration"),
			Easing:   defaultsFor("transitions.easing"),
		}
	}

	tr := Transitions{
		Duration: make(map[string]string),
		Easing:   make(map[string]string),
	}
	if sub := group.Group("duration"); sub != nil {
		Flatten(sub, tr.Duration)
	} else {
		tr.Duration = defaultsFor("transitions.duration")
	}
	if sub := group.Group("easing"); sub != nil {
		Flatten(sub, tr.Easing)
	} else {
		tr.Easing = defaultsFor("transitions.easing")
	}
	return tr
}

// normalizeSemantic preserves semantic trees one level deeper than the
// scalar categories: semantic category name to nested subtree.
func normalizeSemantic(tree *token.Group) map[string]any {
	result := make(map[string]any)
	semantic := tree.Group("semantic")
	if semantic == nil {
		return result
	}
	for _, key := range semantic.Keys() {
		result[key] = plainValue(semantic.Children[key])
	}
	return result
}

// normalizeComponent preserves component bundles: component name to
// property name to resolved value or nested variant map.
func normalizeComponent(tree *token.Group) map[string]map[string]any {
	result := make(map[string]map[string]any)
	var components *token.Group
	for _, alias := range []string{"component", "components"} {
		if group := tree.Group(alias); group != nil {
			components = group
			break
		}
	}
	if components == nil {
		return result
	}
	for _, name := range components.Keys() {
		group, ok := components.Children[name].(*token.Group)
		if !ok {
			continue
		}
		props := make(map[string]any, len(group.Children))
		for _, prop := range group.Keys() {
			props[prop] = plainValue(group.Children[prop])
		}
		result[name] = props
	}
	return result
}

// plainValue converts a node to a plain value: leaves yield their
// value, groups yield nested maps.
func plainValue(node token.Node) any {
	switch n := node.(type) {
	case *token.Leaf:
		return n.Value
	case *token.Group:
		result := make(map[string]any, len(n.Children))
		for key, child := range n.Children {
			result[key] = plainValue(child)
		}
		return result
	}
	return nil
}

// Stringify renders a scalar token value as a string. Arrays (font
// stacks) join with commas; numbers render without a trailing ".0".
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
