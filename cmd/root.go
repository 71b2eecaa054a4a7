/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tsinor.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tsinor/cmd/build"
	"bennypowers.dev/tsinor/cmd/resolve"
	"bennypowers.dev/tsinor/cmd/validate"
	"bennypowers.dev/tsinor/cmd/version"
	"bennypowers.dev/tsinor/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tsinor",
	Short: "Resolve, validate, and transform design tokens",
	Long: `tsinor resolves design token references, validates token integrity,
and produces the canonical category model and per-platform variants
consumed by output generators.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("tokens", "t", "", "Token source file (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log silent degradations, like unresolved references")

	_ = viper.BindPFlag("tokens", rootCmd.PersistentFlags().Lookup("tokens"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
