/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsinor/token"
	"bennypowers.dev/tsinor/transform"
)

func parse(t *testing.T, raw map[string]any) *token.Group {
	t.Helper()
	tree, err := token.Parse(raw)
	require.NoError(t, err)
	return tree
}

func leafValue(t *testing.T, tree *token.Group, path string) any {
	t.Helper()
	node, ok := tree.LookupPath(path)
	require.True(t, ok, "path %s not found", path)
	leaf, ok := node.(*token.Leaf)
	require.True(t, ok, "path %s is not a leaf", path)
	return leaf.Value
}

func TestSizeRem_Deterministic(t *testing.T) {
	cases := map[string]string{
		"16px":  "1rem",
		"24px":  "1.5rem",
		"4px":   "0.25rem",
		"0.5px": "0.03125rem",
	}
	for input, want := range cases {
		tree := parse(t, map[string]any{"size": map[string]any{"value": input}})
		result, err := transform.Apply(tree, []string{"size/rem"})
		require.NoError(t, err)
		assert.Equal(t, want, leafValue(t, result, "size"), "input %s", input)
	}
}

func TestSizeRem_LeavesNonPxAlone(t *testing.T) {
	tree := parse(t, map[string]any{
		"rem":     map[string]any{"value": "1rem"},
		"percent": map[string]any{"value": "50%"},
		"word":    map[string]any{"value": "auto"},
	})
	result, err := transform.Apply(tree, []string{"size/rem"})
	require.NoError(t, err)

	assert.Equal(t, "1rem", leafValue(t, result, "rem"))
	assert.Equal(t, "50%", leafValue(t, result, "percent"))
	assert.Equal(t, "auto", leafValue(t, result, "word"))
}

func TestColorHex_NormalizesShortHex(t *testing.T) {
	tree := parse(t, map[string]any{
		"short": map[string]any{"value": "#fff", "type": "color"},
		"full":  map[string]any{"value": "#3b82f6", "type": "color"},
	})
	result, err := transform.Apply(tree, []string{"color/hex"})
	require.NoError(t, err)

	assert.Equal(t, "#ffffff", leafValue(t, result, "short"))
	assert.Equal(t, "#3b82f6", leafValue(t, result, "full"))
}

func TestColorHex_LeavesFunctionalNotationUntouched(t *testing.T) {
	tree := parse(t, map[string]any{
		"rgb": map[string]any{"value": "rgb(59, 130, 246)", "type": "color"},
		"hsl": map[string]any{"value": "hsl(217, 91%, 60%)", "type": "color"},
	})
	result, err := transform.Apply(tree, []string{"color/hex"})
	require.NoError(t, err)

	assert.Equal(t, "rgb(59, 130, 246)", leafValue(t, result, "rgb"))
	assert.Equal(t, "hsl(217, 91%, 60%)", leafValue(t, result, "hsl"))
}

func TestNameKebab(t *testing.T) {
	tree := parse(t, map[string]any{
		"colors": map[string]any{
			"primaryColor": map[string]any{"value": "#fff"},
		},
	})
	result, err := transform.Apply(tree, []string{"name/kebab"})
	require.NoError(t, err)

	_, ok := result.LookupPath("colors.primary-color")
	assert.True(t, ok, "expected camelCase key renamed to kebab-case")
	_, ok = result.LookupPath("colors.primaryColor")
	assert.False(t, ok, "original key should be gone")
}

func TestNameCamelAndSnake(t *testing.T) {
	tree := parse(t, map[string]any{
		"background-color": map[string]any{"value": "#fff"},
	})

	camel, err := transform.Apply(tree, []string{"name/camel"})
	require.NoError(t, err)
	_, ok := camel.LookupPath("backgroundColor")
	assert.True(t, ok)

	snake, err := transform.Apply(tree, []string{"name/snake"})
	require.NoError(t, err)
	_, ok = snake.LookupPath("background_color")
	assert.True(t, ok)
}

func TestTypographyShorthand(t *testing.T) {
	tree := parse(t, map[string]any{
		"body": map[string]any{
			"value": map[string]any{
				"fontWeight": "400",
				"fontSize":   "16px",
				"lineHeight": "1.5",
				"fontFamily": "Inter",
			},
		},
	})
	result, err := transform.Apply(tree, []string{"typography/css/shorthand"})
	require.NoError(t, err)

	assert.Equal(t, "400 16px/1.5 Inter", leafValue(t, result, "body"))
}

func TestApply_OrderAndMatcherGating(t *testing.T) {
	tree := parse(t, map[string]any{
		"spacingBase": map[string]any{"value": "16px"},
	})
	result, err := transform.Apply(tree, []string{"size/rem", "name/kebab"})
	require.NoError(t, err)

	assert.Equal(t, "1rem", leafValue(t, result, "spacing-base"))
}

func TestApply_UnknownTransform(t *testing.T) {
	tree := parse(t, map[string]any{"a": map[string]any{"value": "1"}})
	_, err := transform.Apply(tree, []string{"size/parsec"})
	assert.True(t, errors.Is(err, token.ErrUnknownTransform))
}

func TestApply_InputNotMutated(t *testing.T) {
	tree := parse(t, map[string]any{"size": map[string]any{"value": "16px"}})
	_, err := transform.Apply(tree, []string{"size/rem"})
	require.NoError(t, err)

	assert.Equal(t, "16px", leafValue(t, tree, "size"))
}

func TestFilters_Conjunction(t *testing.T) {
	tree := parse(t, map[string]any{
		"a": map[string]any{"value": "#fff", "type": "color"},
		"b": map[string]any{"value": "#000", "type": "color"},
	})

	passAll := transform.Filter{Name: "pass", Predicate: func(transform.Token) bool { return true }}
	rejectAll := transform.Filter{Name: "reject", Predicate: func(transform.Token) bool { return false }}

	result := transform.ApplyFilters(tree, []transform.Filter{passAll, rejectAll})
	assert.Empty(t, result.Children, "AND semantics: one rejecting filter rejects everything")
}

func TestFilters_PruneEmptyBranches(t *testing.T) {
	tree := parse(t, map[string]any{
		"colors": map[string]any{
			"primary": map[string]any{"value": "#fff", "type": "color"},
		},
		"spacing": map[string]any{
			"sm": map[string]any{"value": "4px", "type": "dimension"},
		},
	})

	result, err := transform.ApplyNamedFilters(tree, []string{"color"})
	require.NoError(t, err)

	_, ok := result.LookupPath("colors.primary")
	assert.True(t, ok)
	assert.NotContains(t, result.Children, "spacing", "empty branches must be pruned")
}

func TestFilters_PublicExcludesUnderscorePaths(t *testing.T) {
	tree := parse(t, map[string]any{
		"_internal": map[string]any{
			"debug": map[string]any{"value": "#f00"},
		},
		"colors": map[string]any{
			"primary": map[string]any{"value": "#fff"},
		},
	})

	result, err := transform.ApplyNamedFilters(tree, []string{"public"})
	require.NoError(t, err)

	assert.NotContains(t, result.Children, "_internal")
	assert.Contains(t, result.Children, "colors")
}

func TestFilters_UnknownName(t *testing.T) {
	tree := parse(t, map[string]any{"a": map[string]any{"value": "1"}})
	_, err := transform.ApplyNamedFilters(tree, []string{"nope"})
	assert.True(t, errors.Is(err, token.ErrUnknownFilter))
}

func TestPlatformTokens_KnownPlatform(t *testing.T) {
	tree := parse(t, map[string]any{
		"spacingBase": map[string]any{"value": "16px"},
	})

	web := transform.PlatformTokens(tree, "web")
	assert.Equal(t, "1rem", leafValue(t, web, "spacing-base"))

	android := transform.PlatformTokens(tree, "android")
	assert.Equal(t, "16px", leafValue(t, android, "spacing_base"),
		"android list has no size/rem")
}

func TestPlatformTokens_UnknownPlatformIsIdentity(t *testing.T) {
	tree := parse(t, map[string]any{
		"spacingBase": map[string]any{"value": "16px"},
	})

	result := transform.PlatformTokens(tree, "roku")
	assert.Equal(t, "16px", leafValue(t, result, "spacingBase"))
}

func TestDefaultTransforms(t *testing.T) {
	assert.Equal(t, []string{"color/hex", "size/rem", "name/kebab"}, transform.DefaultTransforms)
	for _, name := range transform.DefaultTransforms {
		_, ok := transform.Lookup(name)
		assert.True(t, ok, "default transform %s must be registered", name)
	}
}
