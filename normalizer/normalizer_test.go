/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tsinor/normalizer"
	"bennypowers.dev/tsinor/token"
)

func parse(t *testing.T, raw map[string]any) *token.Group {
	t.Helper()
	tree, err := token.Parse(raw)
	require.NoError(t, err)
	return tree
}

func TestNormalize_ColorDialectEquivalence(t *testing.T) {
	dialects := map[string]map[string]any{
		"flat plural": {
			"colors": map[string]any{
				"primary": map[string]any{"500": "#fff"},
			},
		},
		"flat singular": {
			"color": map[string]any{
				"primary": map[string]any{"500": "#fff"},
			},
		},
		"core tier with value leaves": {
			"core": map[string]any{
				"colors": map[string]any{
					"primary": map[string]any{
						"500": map[string]any{"value": "#fff"},
					},
				},
			},
		},
	}

	for name, raw := range dialects {
		t.Run(name, func(t *testing.T) {
			model := normalizer.Normalize(parse(t, raw))
			require.Contains(t, model.Colors, "primary")
			assert.Equal(t, "#fff", model.Colors["primary"]["500"])
		})
	}
}

func TestNormalize_SemanticColorsMergeOverCore(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"core": map[string]any{
			"colors": map[string]any{
				"primary": map[string]any{"500": "#3b82f6"},
			},
		},
		"semantic": map[string]any{
			"colors": map[string]any{
				"brand": map[string]any{"primary": "#3b82f6"},
			},
		},
	}))

	assert.Equal(t, "#3b82f6", model.Colors["primary"]["500"])
	assert.Equal(t, "#3b82f6", model.Colors["brand"]["primary"])
}

func TestNormalize_ShadelessColorGetsDefaultShade(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"colors": map[string]any{"white": "#ffffff"},
	}))

	assert.Equal(t, "#ffffff", model.Colors["white"]["DEFAULT"])
}

func TestNormalize_FlattenCorrectness(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"colors": map[string]any{"primary": map[string]any{"500": "#fff"}},
		"spacing": map[string]any{
			"sm": map[string]any{"value": "4px"},
			"group": map[string]any{
				"lg": map[string]any{"value": "8px"},
			},
		},
	}))

	assert.Equal(t, "4px", model.Spacing["sm"])
	assert.Equal(t, "8px", model.Spacing["group-lg"])
}

func TestNormalize_DefaultsOnWhollyAbsentCategory(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"colors": map[string]any{"primary": map[string]any{"500": "#fff"}},
	}))

	assert.Equal(t, "9999px", model.BorderRadius["full"])
	assert.Equal(t, "0.125rem", model.BorderRadius["sm"])
	assert.Equal(t, "768px", model.Breakpoints["md"])
	assert.Equal(t, "150ms", model.Transitions.Duration["fast"])
	assert.Equal(t, "linear", model.Transitions.Easing["linear"])
}

func TestNormalize_NoDefaultsWhenPartiallyPopulated(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"colors":       map[string]any{"primary": map[string]any{"500": "#fff"}},
		"borderRadius": map[string]any{"pill": "999px"},
	}))

	assert.Equal(t, "999px", model.BorderRadius["pill"])
	assert.NotContains(t, model.BorderRadius, "full",
		"defaults must not pad a partially populated category")
}

func TestNormalize_CategoriesNeverNil(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{}))

	assert.NotNil(t, model.Colors)
	assert.NotNil(t, model.Spacing)
	assert.NotNil(t, model.Sizing)
	assert.NotNil(t, model.Shadows)
	assert.NotNil(t, model.Opacity)
	assert.NotNil(t, model.ZIndex)
	assert.NotNil(t, model.Semantic)
	assert.NotNil(t, model.Component)
	assert.NotNil(t, model.Typography.FontFamily)
	assert.NotNil(t, model.Typography.LetterSpacing)
}

func TestNormalize_TypographyCanonical(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"typography": map[string]any{
			"fontFamily": map[string]any{
				"sans": []any{"Inter", "sans-serif"},
			},
			"fontSize": map[string]any{
				"base": map[string]any{"value": "16px"},
			},
			"fontWeight": map[string]any{"bold": 700.0},
		},
	}))

	assert.Equal(t, "Inter, sans-serif", model.Typography.FontFamily["sans"])
	assert.Equal(t, "16px", model.Typography.FontSize["base"])
	assert.Equal(t, "700", model.Typography.FontWeight["bold"])
}

func TestNormalize_TokenStudioTextDialect(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"text": map[string]any{
			"font family":      map[string]any{"sans": "Inter"},
			"font-size":        map[string]any{"base": "1rem"},
			"font weight":      map[string]any{"bold": "700"},
			"font line height": map[string]any{"normal": "1.5"},
		},
	}))

	assert.Equal(t, "Inter", model.Typography.FontFamily["sans"])
	assert.Equal(t, "1rem", model.Typography.FontSize["base"])
	assert.Equal(t, "700", model.Typography.FontWeight["bold"])
	assert.Equal(t, "1.5", model.Typography.LineHeight["normal"])
}

func TestNormalize_CanonicalTypographyWinsOverTextDialect(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"typography": map[string]any{
			"fontFamily": map[string]any{"sans": "Inter"},
		},
		"text": map[string]any{
			"font family": map[string]any{"sans": "Helvetica"},
		},
	}))

	assert.Equal(t, "Inter", model.Typography.FontFamily["sans"])
}

func TestNormalize_SemanticPreservesNesting(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"semantic": map[string]any{
			"feedback": map[string]any{
				"danger": map[string]any{"value": "#dc2626"},
			},
		},
	}))

	feedback, ok := model.Semantic["feedback"].(map[string]any)
	require.True(t, ok, "semantic trees must keep their nesting")
	assert.Equal(t, "#dc2626", feedback["danger"])
}

func TestNormalize_ComponentPreservesProperties(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"component": map[string]any{
			"button": map[string]any{
				"backgroundColor": map[string]any{"value": "#3b82f6"},
				"hover": map[string]any{
					"backgroundColor": map[string]any{"value": "#2563eb"},
				},
			},
		},
	}))

	require.Contains(t, model.Component, "button")
	button := model.Component["button"]
	assert.Equal(t, "#3b82f6", button["backgroundColor"])

	hover, ok := button["hover"].(map[string]any)
	require.True(t, ok, "variant maps must stay nested")
	assert.Equal(t, "#2563eb", hover["backgroundColor"])
}

func TestNormalize_AliasedScalarCategories(t *testing.T) {
	model := normalizer.Normalize(parse(t, map[string]any{
		"radii":   map[string]any{"card": "8px"},
		"screens": map[string]any{"tablet": "768px"},
		"motion": map[string]any{
			"duration": map[string]any{"quick": "100ms"},
		},
	}))

	assert.Equal(t, "8px", model.BorderRadius["card"])
	assert.Equal(t, "768px", model.Breakpoints["tablet"])
	assert.Equal(t, "100ms", model.Transitions.Duration["quick"])
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "4px", normalizer.Stringify("4px"))
	assert.Equal(t, "700", normalizer.Stringify(700.0))
	assert.Equal(t, "1.5", normalizer.Stringify(1.5))
	assert.Equal(t, "Inter, sans-serif", normalizer.Stringify([]any{"Inter", "sans-serif"}))
}
