/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsinor/token"
)

var (
	hexPattern       = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern       = regexp.MustCompile(`^rgba?\(`)
	hslPattern       = regexp.MustCompile(`^hsla?\(`)
	colorNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

	// dimensionPattern matches a number with an optional CSS unit.
	dimensionPattern = regexp.MustCompile(`^-?(\d*\.)?\d+([a-z%]+)?$`)
)

// shade scale style guidance bounds.
const (
	shadeMin  = 50
	shadeMax  = 950
	shadeStep = 50
)

// commonShades is the canonical 100-900 scale checked for gaps.
var commonShades = []int{100, 200, 300, 400, 500, 600, 700, 800, 900}

// commonSpacingIncrements are the spacing keys whose absence warrants
// a warning.
var commonSpacingIncrements = []string{"0", "1", "2", "4", "8", "16"}

// isValidColorValue reports whether a color string is syntactically
// acceptable. An unresolved {...} reference is provisionally valid:
// resolution is a separate pass from structural validity.
func isValidColorValue(s string) bool {
	if token.IsReference(s) {
		return true
	}
	return hexPattern.MatchString(s) ||
		rgbPattern.MatchString(s) ||
		hslPattern.MatchString(s) ||
		colorNamePattern.MatchString(s)
}

// isValidDimension reports whether a value is a number with optional
// unit, the literal "0", or an unresolved reference.
func isValidDimension(s string) bool {
	if s == "0" || token.IsReference(s) {
		return true
	}
	return dimensionPattern.MatchString(s)
}

// checkColors validates every leaf under the colors category and the
// shade-scale style guidance.
func (v *Validator) checkColors(tree *token.Group, d *Diagnostics) {
	colors := categoryGroup(tree, "colors")
	if colors == nil {
		return
	}

	for _, category := range colors.Keys() {
		switch child := colors.Children[category].(type) {
		case *token.Leaf:
			v.checkColorLeaf([]string{"colors", category}, child, d)
		case *token.Group:
			v.checkColorScale(category, child, d)
		}
	}
}

func (v *Validator) checkColorScale(category string, scale *token.Group, d *Diagnostics) {
	numericShades := map[int]bool{}

	for _, shade := range scale.Keys() {
		path := []string{"colors", category, shade}
		switch child := scale.Children[shade].(type) {
		case *token.Leaf:
			v.checkColorLeaf(path, child, d)
		case *token.Group:
			child.Walk(func(nested []string, leaf *token.Leaf) {
				v.checkColorLeaf(append(path, nested...), leaf, d)
			})
		}

		if n, err := strconv.Atoi(shade); err == nil {
			numericShades[n] = true
			if n < shadeMin || n > shadeMax || n%shadeStep != 0 {
				d.warnf("colors.%s.%s: shade %d is outside the conventional 50-950 scale in steps of 50", category, shade, n)
			}
		}
	}

	if len(numericShades) > 0 {
		var missing []int
		for _, shade := range commonShades {
			if !numericShades[shade] {
				missing = append(missing, shade)
			}
		}
		if len(missing) > 0 {
			d.warnf("colors.%s: missing common shades %v from the 100-900 scale", category, missing)
		}
	}

	v.checkScaleLightness(category, scale, numericShades, d)
}

func (v *Validator) checkColorLeaf(path []string, leaf *token.Leaf, d *Diagnostics) {
	s, ok := leaf.Value.(string)
	if !ok {
		d.errorf("%s: color value must be a string, got %T", joinPath(path), leaf.Value)
		return
	}
	if !isValidColorValue(s) {
		d.errorf("%s: invalid color value %q", joinPath(path), s)
		return
	}
	// Style guidance: a bare name that no CSS color parser knows is
	// probably a typo, but syntactically it stays valid.
	if colorNamePattern.MatchString(s) {
		if _, err := csscolorparser.Parse(s); err != nil {
			d.warnf("%s: %q is not a recognized CSS color name", joinPath(path), s)
		}
	}
}

// checkSpacing validates the spacing category: common increments and
// per-value syntax.
func (v *Validator) checkSpacing(tree *token.Group, d *Diagnostics) {
	spacing := categoryGroup(tree, "spacing")
	if spacing == nil {
		return
	}

	var missing []string
	for _, increment := range commonSpacingIncrements {
		if _, ok := spacing.Children[increment]; !ok {
			missing = append(missing, increment)
		}
	}
	if len(missing) > 0 {
		d.warnf("spacing: missing common increments %v", missing)
	}

	spacing.Walk(func(path []string, leaf *token.Leaf) {
		full := append([]string{"spacing"}, path...)
		switch value := leaf.Value.(type) {
		case string:
			if !isValidDimension(value) {
				d.errorf("%s: invalid spacing value %q", joinPath(full), value)
			}
		case float64, int:
			// Bare numbers are valid; YAML sources produce int,
			// JSON sources float64.
		default:
			d.errorf("%s: spacing value must be a number with optional unit, got %T", joinPath(full), leaf.Value)
		}
	})
}

// checkTypography validates the typography category when present.
// fontFamily.sans is the baseline requirement; everything else in
// typography is style guidance or per-value syntax.
func (v *Validator) checkTypography(tree *token.Group, d *Diagnostics) {
	typography := categoryGroup(tree, "typography")
	if typography == nil {
		return
	}

	fontFamily := typography.Group("fontFamily")
	if fontFamily == nil {
		d.warnf("typography: fontFamily sub-category is missing")
	} else {
		if _, ok := fontFamily.Children["sans"]; !ok {
			d.errorf("typography.fontFamily.sans is required")
		}
		for _, key := range fontFamily.Keys() {
			leaf, ok := fontFamily.Children[key].(*token.Leaf)
			if !ok {
				continue
			}
			if !isValidFontFamily(leaf.Value) {
				d.errorf("typography.fontFamily.%s: font family must be a non-empty string", key)
			}
		}
	}

	if fontSize := typography.Group("fontSize"); fontSize != nil {
		fontSize.Walk(func(path []string, leaf *token.Leaf) {
			full := append([]string{"typography", "fontSize"}, path...)
			s, ok := leaf.Value.(string)
			if !ok || !isValidDimension(s) {
				d.errorf("%s: invalid font size value %v", joinPath(full), leaf.Value)
			}
		})
	}
}

// isValidFontFamily accepts a non-empty string, a non-empty array of
// strings (a font stack), or a reference.
func isValidFontFamily(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case []any:
		if len(v) == 0 {
			return false
		}
		for _, item := range v {
			s, ok := item.(string)
			if !ok || s == "" {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// sortedIntKeys returns map keys in sorted order for deterministic output.
func sortedIntKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
