/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for tsinor.
package build

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsinor/config"
	"bennypowers.dev/tsinor/fs"
	"bennypowers.dev/tsinor/loader"
	"bennypowers.dev/tsinor/pipeline"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Run the full pipeline and print the category model",
	Long: `Run the full token pipeline: validate, resolve references, normalize
into the canonical category model, and apply platform transforms.
Prints the model as JSON for downstream generators.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("force", false, "Build despite validation errors")
	Cmd.Flags().StringSlice("platform", nil, "Platforms to produce variants for (web, ios, android, react, flutter)")
}

func run(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	platforms, _ := cmd.Flags().GetStringSlice("platform")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")
	if force {
		cfg.Force = true
	}
	if len(platforms) > 0 {
		cfg.Platforms = platforms
	}

	source := viper.GetString("tokens")
	if len(args) == 1 {
		source = args[0]
	}
	if source == "" {
		var err error
		source, err = cfg.ResolveSource(filesystem, ".")
		if err != nil {
			return err
		}
	}

	tree, err := loader.New(filesystem).Load(source)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx, err := p.Run(tree)
	if ctx != nil && ctx.Diagnostics != nil {
		for _, message := range ctx.Diagnostics.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", message)
		}
		for _, message := range ctx.Diagnostics.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", message)
		}
	}
	if err != nil {
		if errors.Is(err, pipeline.ErrValidationFailed) {
			return fmt.Errorf("%w (use --force to build anyway)", err)
		}
		return err
	}

	output := map[string]any{"model": ctx.Model}
	if len(ctx.Platforms) > 0 {
		variants := make(map[string]any, len(ctx.Platforms))
		for platform, variant := range ctx.Platforms {
			variants[platform] = variant.ToMap()
		}
		output["platforms"] = variants
	}

	out, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling model: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
