// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorcalc converts a color between RGB, HSV,
// CIE XYZ, and CIE L*a*b*.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/colorcalc/base/logx"
	"cogentcore.org/colorcalc/cli"
	"cogentcore.org/colorcalc/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cli.Flags{}
	cmd := &cobra.Command{
		Use:   "colorcalc [flags] [rgb|hsv|xyz|lab] [c1 c2 c3]",
		Short: "Convert a color between RGB, HSV, CIE XYZ, and CIE L*a*b*",
		Long: `colorcalc converts a color between RGB, HSV, CIE XYZ, and CIE L*a*b*.

The color is given as a model followed by its three channel values:
  rgb  red, green, and blue (0..1)
  hsv  hue (0..360), saturation (0..1), and value (0..1)
  xyz  X (0..2), Y (0..1), and Z (0..2)
  lab  L* (0..100), a* (-128..128), and b* (-128..128)

Flags must come before the color, so that negative values are not read
as flags. When the model or the values are missing and the input is a
terminal, they are asked for interactively.

Settings are read from ~/.config/colorcalc/config.toml if it exists.
The config command prints the settings in effect.`,
		Example: `  colorcalc rgb 0.5 0.2 0.1
  colorcalc --space "Adobe RGB (1998)" --white D65 lab 50 -20 30
  colorcalc --hex "#336699" --format json`,
		Args:         cobra.MaximumNArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	flags.Bind(cmd.Flags())

	cmd.AddCommand(&cobra.Command{
		Use:   "spaces",
		Short: "List the working spaces, illuminants, and adaptation methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Spaces(cmd.OutOrStdout())
		},
	})

	cfgFlags := &cli.Flags{}
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration in effect, after the config file and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgFlags)
			if err != nil {
				return err
			}
			return config.Write(cfg, cmd.OutOrStdout())
		},
	}
	cfgFlags.Bind(cfgCmd.Flags())
	cmd.AddCommand(cfgCmd)
	return cmd
}

// loadConfig returns the config file overlaid with the flags that were set.
func loadConfig(cmd *cobra.Command, flags *cli.Flags) (*config.Config, error) {
	base, err := config.Load(flags.Config)
	if err != nil {
		return nil, err
	}
	return flags.Apply(cmd.Flags(), base)
}

func run(cmd *cobra.Command, flags *cli.Flags, args []string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	logx.SetDefault(cmd.ErrOrStderr(), logx.LevelFromFlags(cfg.Verbose, false, false))
	slog.Debug("config", "space", cfg.Space, "white", cfg.White, "adaptation", cfg.Adaptation, "includes", cfg.Includes)

	r := &cli.Runner{
		Config:      cfg,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Interactive: cmd.InOrStdin() == os.Stdin && cli.IsTerminal(os.Stdin),
	}
	if cmd.OutOrStdout() == os.Stdout && cli.IsTerminal(os.Stdout) {
		r.Terminal = termenv.NewOutput(os.Stdout)
	}
	in, err := r.Input(args, flags.Hex)
	if err != nil {
		return err
	}
	return r.Run(in)
}
