/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks token tree integrity before generation.
//
// Validation runs over the raw, pre-resolution tree. Every check runs
// even after errors are found, so one pass yields the full diagnostic
// report. Data-quality problems never raise errors to the caller; they
// are collected in the returned Diagnostics. Errors block generation
// unless the caller forces; warnings never block.
package validator

import (
	"fmt"
	"strings"

	"bennypowers.dev/tsinor/token"
)

// Config controls which categories are required and optional.
type Config struct {
	// RequiredCategories must be present and non-empty. Default: colors.
	RequiredCategories []string

	// OptionalCategories produce warnings when absent.
	// Default: spacing, typography.
	OptionalCategories []string
}

// Summary aggregates the validation result counts.
type Summary struct {
	// Categories is the number of canonical categories found in input.
	Categories int `json:"categories"`

	// Tokens is the total leaf token count.
	Tokens int `json:"tokens"`

	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Diagnostics is the structured validation report.
type Diagnostics struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Summary  Summary  `json:"summary"`
}

// Valid reports whether validation found no errors.
func (d *Diagnostics) Valid() bool {
	return len(d.Errors) == 0
}

func (d *Diagnostics) errorf(format string, args ...any) {
	d.Errors = append(d.Errors, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Validator runs structural validation with a fixed configuration.
// It is stateless per call: nothing persists between Validate
// invocations.
type Validator struct {
	required []string
	optional []string
}

// New creates a Validator. Missing config fields use the built-in
// defaults.
func New(cfg Config) *Validator {
	v := &Validator{
		required: cfg.RequiredCategories,
		optional: cfg.OptionalCategories,
	}
	if v.required == nil {
		v.required = []string{"colors"}
	}
	if v.optional == nil {
		v.optional = []string{"spacing", "typography"}
	}
	return v
}

// knownCategories is the canonical category key set, used for the
// summary count and typo detection.
var knownCategories = []string{
	"colors", "spacing", "typography", "borderRadius", "sizing",
	"shadows", "opacity", "zIndex", "transitions", "breakpoints",
	"semantic", "component",
}

// typoSuggestions maps common category misspellings to canonical names.
var typoSuggestions = map[string]string{
	"colour":   "colors",
	"colours":  "colors",
	"spacings": "spacing",
	"typo":     "typography",
	"fonts":    "typography",
}

// Validate checks the raw tree and returns the full diagnostic report.
func (v *Validator) Validate(tree *token.Group) *Diagnostics {
	d := &Diagnostics{
		Errors:   []string{},
		Warnings: []string{},
	}

	v.checkStructure(tree, d)
	v.checkCategories(tree, d)
	v.checkColors(tree, d)
	v.checkSpacing(tree, d)
	v.checkTypography(tree, d)
	v.checkConsistency(tree, d)

	d.Summary = Summary{
		Categories: countCategories(tree),
		Tokens:     tree.CountLeaves(),
		Errors:     len(d.Errors),
		Warnings:   len(d.Warnings),
	}
	return d
}

// checkStructure warns on common category misspellings, but only when
// the canonical key is itself absent: a document carrying both is
// assumed intentional.
func (v *Validator) checkStructure(tree *token.Group, d *Diagnostics) {
	for typo, canonical := range typoSuggestions {
		if _, hasTypo := tree.Children[typo]; !hasTypo {
			continue
		}
		if categoryGroup(tree, canonical) != nil {
			continue
		}
		d.warnf("unknown category %q: did you mean %q?", typo, canonical)
	}
}

// checkCategories enforces the required and optional category lists.
// colors and colors.primary are always required, regardless of what
// the configuration lists.
func (v *Validator) checkCategories(tree *token.Group, d *Diagnostics) {
	colors := categoryGroup(tree, "colors")
	if colors == nil || len(colors.Children) == 0 {
		d.errorf("required category %q is missing or empty", "colors")
	}

	for _, name := range v.required {
		if name == "colors" {
			continue
		}
		group := categoryGroup(tree, name)
		if group == nil || len(group.Children) == 0 {
			d.errorf("required category %q is missing or empty", name)
		}
	}
	for _, name := range v.optional {
		if categoryGroup(tree, name) == nil {
			d.warnf("optional category %q is missing", name)
		}
	}

	if colors == nil {
		d.errorf("colors.primary is required")
		return
	}
	primary, ok := colors.Children["primary"]
	if !ok {
		d.errorf("colors.primary is required")
		return
	}
	if group, isGroup := primary.(*token.Group); isGroup && len(group.Children) == 0 {
		d.errorf("colors.primary is empty")
	}
}

// categoryGroup locates a category subtree, honoring the core tier
// and the singular "color" dialect.
func categoryGroup(tree *token.Group, name string) *token.Group {
	aliases := []string{name, "core." + name}
	if name == "colors" {
		aliases = append(aliases, "color")
	}
	for _, alias := range aliases {
		if node, ok := tree.LookupPath(alias); ok {
			if group, ok := node.(*token.Group); ok {
				return group
			}
		}
	}
	return nil
}

func countCategories(tree *token.Group) int {
	count := 0
	for _, name := range knownCategories {
		if categoryGroup(tree, name) != nil {
			count++
		}
	}
	return count
}

// leafString returns a leaf's value when it is a plain string.
func leafString(node token.Node) (string, bool) {
	leaf, ok := node.(*token.Leaf)
	if !ok {
		return "", false
	}
	s, ok := leaf.Value.(string)
	return s, ok
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
