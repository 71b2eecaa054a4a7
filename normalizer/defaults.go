/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalizer

// Default value sets, applied only when a category is wholly absent
// from input; a partially populated category is never padded with
// defaults. Categories without an entry here default to an empty map.
var categoryDefaults = map[string]map[string]string{
	"borderRadius": {
		"none": "0",
		"sm":   "0.125rem",
		"md":   "0.375rem",
		"lg":   "0.5rem",
		"xl":   "0.75rem",
		"2xl":  "1rem",
		"3xl":  "1.5rem",
		"full": "9999px",
	},
	"breakpoints": {
		"sm":  "640px",
		"md":  "768px",
		"lg":  "1024px",
		"xl":  "1280px",
		"2xl": "1536px",
	},
	"transitions.duration": {
		"fast":   "150ms",
		"normal": "300ms",
		"slow":   "500ms",
	},
	"transitions.easing": {
		"linear": "linear",
		"in":     "cubic-bezier(0.4, 0, 1, 1)",
		"out":    "cubic-bezier(0, 0, 0.2, 1)",
		"inOut":  "cubic-bezier(0.4, 0, 0.2, 1)",
	},
}

// defaultsFor returns a fresh copy of the category's default set, or
// an empty map for categories with no documented defaults. Always
// non-nil, so generators never null-check top-level categories.
func defaultsFor(category string) map[string]string {
	defaults, ok := categoryDefaults[category]
	if !ok {
		return make(map[string]string)
	}
	result := make(map[string]string, len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	return result
}
