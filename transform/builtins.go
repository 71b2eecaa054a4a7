/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tsinor/normalizer"
)

// remBase is the root font size used for px to rem conversion.
const remBase = 16

var pxPattern = regexp.MustCompile(`^-?(\d*\.)?\d+px$`)

// registry holds the built-in transforms by name.
var registry = map[string]Transform{
	"color/hex": {
		Name:    "color/hex",
		Kind:    KindValue,
		Matcher: isColorToken,
		Apply:   normalizeHex,
	},
	"size/rem": {
		Name: "size/rem",
		Kind: KindValue,
		Matcher: func(t Token) bool {
			s, ok := t.Value.(string)
			return ok && pxPattern.MatchString(s)
		},
		Apply: pxToRem,
	},
	"typography/css/shorthand": {
		Name: "typography/css/shorthand",
		Kind: KindValue,
		Matcher: func(t Token) bool {
			m, ok := t.Value.(map[string]any)
			if !ok {
				return false
			}
			_, hasSize := m["fontSize"]
			return hasSize
		},
		Apply: typographyShorthand,
	},
	"name/kebab": {
		Name: "name/kebab",
		Kind: KindName,
		Apply: func(t Token) any {
			return strcase.ToKebab(t.Name)
		},
	},
	"name/camel": {
		Name: "name/camel",
		Kind: KindName,
		Apply: func(t Token) any {
			return strcase.ToLowerCamel(t.Name)
		},
	},
	"name/snake": {
		Name: "name/snake",
		Kind: KindName,
		Apply: func(t Token) any {
			return strcase.ToSnake(t.Name)
		},
	},
}

func isColorToken(t Token) bool {
	if t.Type == "color" {
		return true
	}
	s, ok := t.Value.(string)
	if !ok {
		return false
	}
	return strings.HasPrefix(s, "#") ||
		strings.HasPrefix(s, "rgb") ||
		strings.HasPrefix(s, "hsl")
}

// normalizeHex expands short hex colors to six digits. Functional
// notations (rgb(), hsl()) pass through untouched, since rewriting
// them would change the author's chosen notation.
func normalizeHex(t Token) any {
	s, ok := t.Value.(string)
	if !ok || !strings.HasPrefix(s, "#") {
		return t.Value
	}
	color, err := csscolorparser.Parse(s)
	if err != nil {
		return t.Value
	}
	return color.HexString()
}

// pxToRem converts a trailing-px dimension to rem at the 16px base.
func pxToRem(t Token) any {
	s, ok := t.Value.(string)
	if !ok {
		return t.Value
	}
	number, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return t.Value
	}
	return strconv.FormatFloat(number/remBase, 'f', -1, 64) + "rem"
}

// typographyShorthand folds a structured typography value into the CSS
// font shorthand: weight size/lineHeight family.
func typographyShorthand(t Token) any {
	m, ok := t.Value.(map[string]any)
	if !ok {
		return t.Value
	}

	size := normalizer.Stringify(m["fontSize"])
	if size == "" {
		return t.Value
	}

	var sb strings.Builder
	if weight := normalizer.Stringify(m["fontWeight"]); weight != "" {
		sb.WriteString(weight)
		sb.WriteString(" ")
	}
	sb.WriteString(size)
	if lineHeight := normalizer.Stringify(m["lineHeight"]); lineHeight != "" {
		sb.WriteString("/")
		sb.WriteString(lineHeight)
	}
	if family := normalizer.Stringify(m["fontFamily"]); family != "" {
		sb.WriteString(" ")
		sb.WriteString(family)
	}
	return sb.String()
}
