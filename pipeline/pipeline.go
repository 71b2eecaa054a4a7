/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline orchestrates one token sync run: validation,
// reference resolution, normalization, and platform transformation.
//
// Each run works on its own deep copies, so concurrent runs over
// different inputs share no state. The run itself is synchronous,
// single-threaded, pure computation over in-memory trees.
package pipeline

import (
	"errors"
	"fmt"

	"bennypowers.dev/tsinor/config"
	"bennypowers.dev/tsinor/internal/logger"
	"bennypowers.dev/tsinor/normalizer"
	"bennypowers.dev/tsinor/resolver"
	"bennypowers.dev/tsinor/token"
	"bennypowers.dev/tsinor/transform"
	"bennypowers.dev/tsinor/validator"
)

// ErrValidationFailed indicates validation errors blocked the run.
// The diagnostics on the returned Context carry the details.
var ErrValidationFailed = errors.New("validation failed")

// Phase names a pipeline stage for hook registration.
type Phase string

const (
	PhaseValidate  Phase = "validate"
	PhaseResolve   Phase = "resolve"
	PhaseNormalize Phase = "normalize"
	PhaseTransform Phase = "transform"
)

// Context is the value threaded through a pipeline run. Hooks receive
// it after each phase populates its field.
type Context struct {
	// Raw is the input tree. The pipeline never mutates it.
	Raw *token.Group

	// Diagnostics is the validation report.
	Diagnostics *validator.Diagnostics

	// Resolved is the fully dereferenced tree.
	Resolved *token.Group

	// Transformed is the resolved tree after the configured default
	// transform set.
	Transformed *token.Group

	// Model is the canonical category model.
	Model *normalizer.Model

	// Platforms holds the per-platform tree variants.
	Platforms map[string]*token.Group
}

// Hook runs around a pipeline phase. A failing hook is logged and
// skipped; it never aborts the remaining stages.
type Hook func(*Context) error

// Pipeline runs the sync stages with a fixed configuration.
type Pipeline struct {
	cfg       *config.Config
	validator *validator.Validator
	before    map[Phase][]Hook
	after     map[Phase][]Hook
}

// New creates a Pipeline. Configuration schema violations are
// reported immediately, before any token content is seen.
func New(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg: cfg,
		validator: validator.New(validator.Config{
			RequiredCategories: cfg.RequiredCategories,
			OptionalCategories: cfg.OptionalCategories,
		}),
		before: make(map[Phase][]Hook),
		after:  make(map[Phase][]Hook),
	}, nil
}

// Before registers a hook to run before the given phase.
func (p *Pipeline) Before(phase Phase, hook Hook) {
	p.before[phase] = append(p.before[phase], hook)
}

// After registers a hook to run after the given phase.
func (p *Pipeline) After(phase Phase, hook Hook) {
	p.after[phase] = append(p.after[phase], hook)
}

func (p *Pipeline) runHooks(hooks []Hook, phase Phase, ctx *Context) {
	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			logger.Warn("hook for phase %s failed: %v", phase, err)
		}
	}
}

// Run executes one sync over the raw tree and returns the populated
// Context. Validation errors halt the run with ErrValidationFailed
// unless the config forces generation; the Context still carries the
// diagnostics either way.
func (p *Pipeline) Run(raw *token.Group) (*Context, error) {
	ctx := &Context{Raw: raw, Platforms: make(map[string]*token.Group)}

	p.runHooks(p.before[PhaseValidate], PhaseValidate, ctx)
	ctx.Diagnostics = p.validator.Validate(raw)
	p.runHooks(p.after[PhaseValidate], PhaseValidate, ctx)

	if !ctx.Diagnostics.Valid() && !p.cfg.Force {
		return ctx, fmt.Errorf("%w: %d errors", ErrValidationFailed, len(ctx.Diagnostics.Errors))
	}

	// Cycles are diagnosed by name up front; resolution below fails
	// closed on them regardless.
	if cycle := resolver.BuildDependencyGraph(raw).FindCycle(); cycle != nil {
		ctx.Diagnostics.Warnings = append(ctx.Diagnostics.Warnings,
			fmt.Sprintf("circular reference: %v", cycle))
	}

	p.runHooks(p.before[PhaseResolve], PhaseResolve, ctx)
	r := resolver.New(raw)
	ctx.Resolved = r.ResolveTree(raw)
	if p.cfg.Strict {
		for _, ref := range r.Unresolved() {
			ctx.Diagnostics.Warnings = append(ctx.Diagnostics.Warnings,
				fmt.Sprintf("unresolved reference %s", ref))
		}
	}
	p.runHooks(p.after[PhaseResolve], PhaseResolve, ctx)

	if len(p.cfg.Filters) > 0 {
		filtered, err := transform.ApplyNamedFilters(ctx.Resolved, p.cfg.Filters)
		if err != nil {
			return ctx, err
		}
		ctx.Resolved = filtered
	}

	p.runHooks(p.before[PhaseNormalize], PhaseNormalize, ctx)
	ctx.Model = normalizer.Normalize(ctx.Resolved)
	p.runHooks(p.after[PhaseNormalize], PhaseNormalize, ctx)

	p.runHooks(p.before[PhaseTransform], PhaseTransform, ctx)
	transformed, err := transform.Apply(ctx.Resolved, p.cfg.TransformNames())
	if err != nil {
		return ctx, err
	}
	ctx.Transformed = transformed

	for _, platform := range p.cfg.Platforms {
		names := p.cfg.TransformsForPlatform(platform)
		if names == nil {
			// Unknown platform: identity.
			ctx.Platforms[platform] = ctx.Resolved.Clone()
			continue
		}
		variant, err := transform.Apply(ctx.Resolved, names)
		if err != nil {
			return ctx, err
		}
		ctx.Platforms[platform] = variant
	}
	p.runHooks(p.after[PhaseTransform], PhaseTransform, ctx)

	return ctx, nil
}
