/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tsinor.
package resolve

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsinor/config"
	"bennypowers.dev/tsinor/fs"
	"bennypowers.dev/tsinor/loader"
	"bennypowers.dev/tsinor/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Resolve token references and print the dereferenced tree",
	Long:  `Resolve every {dot.path} reference in a token file and print the fully dereferenced tree as JSON. Unresolved references keep their original form.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

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

	resolved := resolver.Resolve(tree)

	out, err := json.MarshalIndent(resolved.ToMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling resolved tree: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
