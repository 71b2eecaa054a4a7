/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tsinor.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsinor/config"
	"bennypowers.dev/tsinor/fs"
	"bennypowers.dev/tsinor/loader"
	"bennypowers.dev/tsinor/resolver"
	"bennypowers.dev/tsinor/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a design token file",
	Long:  `Validate a design token file for structural integrity: required categories, value syntax, and cross-token consistency.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	source, err := resolveSource(cfg, filesystem, args)
	if err != nil {
		return err
	}

	tree, err := loader.New(filesystem).Load(source)
	if err != nil {
		return err
	}

	v := validator.New(validator.Config{
		RequiredCategories: cfg.RequiredCategories,
		OptionalCategories: cfg.OptionalCategories,
	})
	diagnostics := v.Validate(tree)

	for _, message := range diagnostics.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", message)
	}
	if !quiet {
		for _, message := range diagnostics.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", message)
		}
	}

	if cycle := resolver.BuildDependencyGraph(tree).FindCycle(); cycle != nil {
		fmt.Fprintf(os.Stderr, "error: circular reference: %v\n", cycle)
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		summary := diagnostics.Summary
		fmt.Printf("%s: %d categories, %d tokens, %d errors, %d warnings\n",
			source, summary.Categories, summary.Tokens, summary.Errors, summary.Warnings)
	}

	if !diagnostics.Valid() {
		return fmt.Errorf("validation failed")
	}
	if strict && len(diagnostics.Warnings) > 0 {
		return fmt.Errorf("validation failed: %d warnings in strict mode", len(diagnostics.Warnings))
	}
	return nil
}

func resolveSource(cfg *config.Config, filesystem *fs.OSFileSystem, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if tokens := viper.GetString("tokens"); tokens != "" {
		return tokens, nil
	}
	return cfg.ResolveSource(filesystem, ".")
}
