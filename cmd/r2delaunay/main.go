// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "r2delaunay",
		Short:        "Delaunay triangulation of random planar point sets",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML settings file")

	cmd.AddCommand(renderCmd(&configPath))
	cmd.AddCommand(verifyCmd(&configPath))
	return cmd
}

func renderCmd(configPath *string) *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Triangulate random points and draw the mesh to an SVG or PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(cmd, *configPath, &flags)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), cfg)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func verifyCmd(configPath *string) *cobra.Command {
	var flags settingsFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Triangulate random points and check the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(cmd, *configPath, &flags)
			if err != nil {
				return err
			}
			return runVerify(cmd.OutOrStdout(), cfg)
		},
	}
	flags.register(cmd, false)
	return cmd
}
