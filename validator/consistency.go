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
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"bennypowers.dev/tsinor/token"
)

var (
	camelPattern = regexp.MustCompile(`^[a-z]+[A-Z]`)

	// leadingNumberPattern extracts the numeric magnitude of a
	// dimension value for scale-ratio analysis.
	leadingNumberPattern = regexp.MustCompile(`^-?(\d*\.)?\d+`)
)

// scale-ratio heuristic bounds: warn when more than 30% of successive
// ratios deviate from the mean ratio by more than 0.5.
const (
	ratioDeviationLimit = 0.5
	ratioOutlierShare   = 0.3
)

// checkConsistency runs the cross-token heuristics. These are
// warnings only, never errors.
func (v *Validator) checkConsistency(tree *token.Group, d *Diagnostics) {
	v.checkNamingConventions(tree, d)
	v.checkDuplicateValues(tree, d)
	v.checkSpacingScale(tree, d)
}

// checkNamingConventions warns once when kebab-case, camelCase, and
// snake_case keys coexist anywhere in the document.
func (v *Validator) checkNamingConventions(tree *token.Group, d *Diagnostics) {
	conventions := map[string]bool{}
	collectConventions(tree, conventions)

	if len(conventions) > 1 {
		names := make([]string, 0, len(conventions))
		for name := range conventions {
			names = append(names, name)
		}
		sort.Strings(names)
		d.warnf("mixed naming conventions across token keys: %s", strings.Join(names, ", "))
	}
}

func collectConventions(group *token.Group, conventions map[string]bool) {
	for key, child := range group.Children {
		switch {
		case strings.Contains(key, "-"):
			conventions["kebab-case"] = true
		case strings.Contains(key, "_"):
			conventions["snake_case"] = true
		case camelPattern.MatchString(key):
			conventions["camelCase"] = true
		}
		if nested, ok := child.(*token.Group); ok {
			collectConventions(nested, conventions)
		}
	}
}

// checkDuplicateValues warns once per group of distinct token paths
// sharing the same literal value. References are excluded: aliasing
// is the point of references.
func (v *Validator) checkDuplicateValues(tree *token.Group, d *Diagnostics) {
	byValue := map[string][]string{}
	tree.Walk(func(path []string, leaf *token.Leaf) {
		s, ok := leaf.Value.(string)
		if !ok || token.IsReference(s) {
			return
		}
		byValue[s] = append(byValue[s], joinPath(path))
	})

	values := make([]string, 0, len(byValue))
	for value, paths := range byValue {
		if len(paths) > 1 {
			values = append(values, value)
		}
	}
	sort.Strings(values)

	for _, value := range values {
		paths := byValue[value]
		sort.Strings(paths)
		d.warnf("duplicate value %q shared by %s", value, strings.Join(paths, ", "))
	}
}

// checkSpacingScale computes successive ratios between the sorted
// numeric spacing magnitudes and warns when the scale looks
// non-modular.
func (v *Validator) checkSpacingScale(tree *token.Group, d *Diagnostics) {
	spacing := categoryGroup(tree, "spacing")
	if spacing == nil {
		return
	}

	seen := map[float64]bool{}
	var magnitudes []float64
	spacing.Walk(func(path []string, leaf *token.Leaf) {
		magnitude, ok := numericMagnitude(leaf.Value)
		if !ok || magnitude <= 0 || seen[magnitude] {
			return
		}
		seen[magnitude] = true
		magnitudes = append(magnitudes, magnitude)
	})

	if len(magnitudes) < 3 {
		return
	}
	sort.Float64s(magnitudes)

	ratios := make([]float64, 0, len(magnitudes)-1)
	for i := 1; i < len(magnitudes); i++ {
		ratios = append(ratios, magnitudes[i]/magnitudes[i-1])
	}

	var sum float64
	for _, r := range ratios {
		sum += r
	}
	mean := sum / float64(len(ratios))

	outliers := 0
	for _, r := range ratios {
		if r-mean > ratioDeviationLimit || mean-r > ratioDeviationLimit {
			outliers++
		}
	}

	if float64(outliers) > ratioOutlierShare*float64(len(ratios)) {
		d.warnf("spacing scale is not modular: %d of %d successive ratios deviate from the mean by more than %.1f", outliers, len(ratios), ratioDeviationLimit)
	}
}

// checkScaleLightness warns when a numeric color scale's perceived
// lightness does not decrease as the shade number increases (50 light,
// 950 dark). References and non-hex values are skipped.
func (v *Validator) checkScaleLightness(category string, scale *token.Group, numericShades map[int]bool, d *Diagnostics) {
	if len(numericShades) < 2 {
		return
	}

	type shadeLightness struct {
		shade     int
		lightness float64
	}
	var shades []shadeLightness

	for _, shade := range sortedIntKeys(numericShades) {
		s, ok := leafString(scale.Children[strconv.Itoa(shade)])
		if !ok || !strings.HasPrefix(s, "#") {
			continue
		}
		color, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		_, _, l := color.Hsl()
		shades = append(shades, shadeLightness{shade: shade, lightness: l})
	}

	for i := 1; i < len(shades); i++ {
		if shades[i].lightness > shades[i-1].lightness {
			d.warnf("colors.%s: shade %d is lighter than shade %d; scales conventionally darken as the number grows", category, shades[i].shade, shades[i-1].shade)
			return
		}
	}
}

// numericMagnitude extracts the leading numeric magnitude of a value.
func numericMagnitude(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if token.IsReference(v) {
			return 0, false
		}
		match := leadingNumberPattern.FindString(v)
		if match == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
